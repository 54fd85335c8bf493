// Package spellcheck is the public facade over the domain-aware
// spelling correction core: tokenizer, frequency model, edit-distance
// engine, homophone detector, and domain term set wired together behind
// a single Engine.
package spellcheck

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rrvrs/spell-checker/internal/config"
	"github.com/rrvrs/spell-checker/internal/corpus"
	"github.com/rrvrs/spell-checker/internal/domain"
	"github.com/rrvrs/spell-checker/internal/editdistance"
	"github.com/rrvrs/spell-checker/internal/frequency"
	"github.com/rrvrs/spell-checker/internal/homophone"
	"github.com/rrvrs/spell-checker/internal/pipeline"
	"github.com/rrvrs/spell-checker/internal/tokenizer"
)

// Engine is the top-level entry point a caller constructs once and
// reuses for every query, per spec §5's resource-ownership model: the
// caller owns the instance, and releasing it releases all model memory.
type Engine struct {
	cfg  *config.Config
	freq *frequency.Model
	ed   *editdistance.Engine
	tok  *tokenizer.Tokenizer
	hom  *homophone.Detector
	dom  *domain.TermSet

	pipeline *pipeline.Pipeline

	logger *zap.Logger
}

// NewEngine wires every collaborator from cfg. The engine is not ready
// to answer queries until Train or Load populates the frequency model;
// calling CheckText before then returns an error rather than silently
// answering with an empty vocabulary, per spec §7.
func NewEngine(cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("spellcheck: config must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tok, err := tokenizer.New()
	if err != nil {
		return nil, fmt.Errorf("spellcheck: failed to build tokenizer: %w", err)
	}

	ed := editdistance.New(
		cfg.EditDistance.MaxDistance,
		cfg.EditDistance.AllowTranspose,
		cfg.EditDistance.MaxCandidates,
		editdistance.Costs{
			Substitution: cfg.EditDistance.SubstitutionCost,
			Insertion:    cfg.EditDistance.InsertionCost,
			Deletion:     cfg.EditDistance.DeletionCost,
			Transpose:    cfg.EditDistance.TransposeCost,
		},
		logger,
	)

	terms := domain.Load(cfg.Domain.MedicalTermsFile, cfg.Domain.DomainWeight, logger)

	return &Engine{
		cfg:    cfg,
		freq:   frequency.New(cfg.NGram.Smoothing, logger),
		ed:     ed,
		tok:    tok,
		hom:    homophone.New(),
		dom:    terms,
		logger: logger,
	}, nil
}

// Train builds the frequency model from the corpus named in
// cfg.Corpus.MergedCorpus (or from an explicit path override, if given)
// and activates the pipeline. It is the "build models" step of spec
// §2's training data flow.
func (e *Engine) Train(corpusPathOverride ...string) error {
	path := e.cfg.Corpus.MergedCorpus
	if len(corpusPathOverride) > 0 && corpusPathOverride[0] != "" {
		path = corpusPathOverride[0]
	}

	text, err := corpus.ReadText(path)
	if err != nil {
		return fmt.Errorf("spellcheck: failed to train: %w", err)
	}

	seq, err := e.tok.Tokenize(text)
	if err != nil {
		return fmt.Errorf("spellcheck: failed to tokenize corpus: %w", err)
	}

	e.freq.Build(seq.Words())
	e.activatePipeline()

	e.logger.Info("engine trained",
		zap.String("corpus_path", path),
		zap.Int("vocabulary_size", e.freq.VocabularySize()))

	return nil
}

// Load restores a previously persisted frequency model from path and
// activates the pipeline.
func (e *Engine) Load(path string) error {
	m, err := frequency.Load(path, e.logger)
	if err != nil {
		return fmt.Errorf("spellcheck: failed to load model: %w", err)
	}
	e.freq = m
	e.activatePipeline()
	return nil
}

// Save persists the current frequency model to path.
func (e *Engine) Save(path string) error {
	if err := frequency.Save(e.freq, path); err != nil {
		return fmt.Errorf("spellcheck: failed to save model: %w", err)
	}
	return nil
}

func (e *Engine) activatePipeline() {
	e.pipeline = pipeline.New(e.freq, e.ed, e.hom, e.dom, e.tok, pipeline.Config{
		MaxSuggestions:   e.cfg.ErrorHandling.MaxSuggestions,
		HomophoneEnabled: e.cfg.ErrorHandling.ErrorTypes.Homophone,
	}, e.logger)
}

// CheckText runs the correction pipeline over text, per spec §6's
// check_text(text, model_type) -> CorrectionResult.
func (e *Engine) CheckText(text string, modelType string) (pipeline.CorrectionResult, error) {
	if e.pipeline == nil {
		return pipeline.CorrectionResult{}, fmt.Errorf("spellcheck: engine has no trained model; call Train or Load first")
	}
	return e.pipeline.CheckText(text, modelType)
}

// Evaluate runs the pipeline against a labeled test set, per spec
// §4.5's evaluate(pairs).
func (e *Engine) Evaluate(pairs []pipeline.CorrectionPair) (pipeline.EvaluationResult, error) {
	if e.pipeline == nil {
		return pipeline.EvaluationResult{}, fmt.Errorf("spellcheck: engine has no trained model; call Train or Load first")
	}
	return e.pipeline.Evaluate(pairs)
}

// AnalyzeErrorPatterns surfaces the edit-distance engine's
// operation-kind analytics over a batch of known corrections.
func (e *Engine) AnalyzeErrorPatterns(pairs []editdistance.CorrectionPair) editdistance.ErrorPatternReport {
	return e.ed.AnalyzeErrorPatterns(pairs)
}

// Statistics reports the trained frequency model's summary statistics,
// the original_source FrequencyManager.get_statistics supplement.
func (e *Engine) Statistics() frequency.Statistics {
	return e.freq.Statistics()
}

// VocabularySize reports the size of the trained vocabulary.
func (e *Engine) VocabularySize() int {
	return e.freq.VocabularySize()
}
