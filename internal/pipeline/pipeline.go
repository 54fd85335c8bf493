// Package pipeline orchestrates the per-token correction loop described
// in spec §4.5: it fuses the frequency model, edit-distance candidate
// generator, homophone detector, and domain term set into ranked
// suggestions and summary statistics.
package pipeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rrvrs/spell-checker/internal/domain"
	"github.com/rrvrs/spell-checker/internal/editdistance"
	"github.com/rrvrs/spell-checker/internal/frequency"
	"github.com/rrvrs/spell-checker/internal/homophone"
	"github.com/rrvrs/spell-checker/internal/tokenizer"
)

// Config bundles the pipeline's tunable behavior, sourced from
// internal/config's ErrorHandlingConfig.
type Config struct {
	MaxSuggestions   int
	HomophoneEnabled bool
}

// Pipeline holds the immutable-after-build collaborators a CheckText
// call fuses together. Constructed once per engine instance, grounded
// on the teacher's "constructor injects a logger plus its dependencies"
// convention across internal/service.
type Pipeline struct {
	freq       *frequency.Model
	ed         *editdistance.Engine
	vocabIndex *editdistance.VocabIndex
	homophones *homophone.Detector
	domain     *domain.TermSet
	tokenizer  *tokenizer.Tokenizer
	cfg        Config

	logger *zap.Logger
}

// New builds a Pipeline over already-constructed collaborators. The
// vocabulary index is derived once from the frequency model's
// vocabulary, consistent with spec §3's Lifecycle ("the Vocabulary is
// derived from the Frequency Model and also immutable").
func New(freq *frequency.Model, ed *editdistance.Engine, homophones *homophone.Detector, terms *domain.TermSet, tok *tokenizer.Tokenizer, cfg Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		freq:       freq,
		ed:         ed,
		vocabIndex: editdistance.NewVocabIndex(freq.Vocabulary(), logger),
		homophones: homophones,
		domain:     terms,
		tokenizer:  tok,
		cfg:        cfg,
		logger:     logger,
	}
}

// CheckText runs the full per-token correction loop over text and
// returns the corrected stream, per-error records, and summary
// statistics, per spec §4.5 and §6.
func (p *Pipeline) CheckText(text string, modelType string) (CorrectionResult, error) {
	requestID := uuid.New().String()
	logger := p.logger.With(zap.String("request_id", requestID))

	seq, err := p.tokenizer.Tokenize(text)
	if err != nil {
		return CorrectionResult{}, fmt.Errorf("failed to tokenize input: %w", err)
	}

	corrected := make([]string, 0, len(seq))
	errors := []ErrorRecord{}

	for i, tok := range seq {
		word := tok.Text
		context := seq.AlphabeticBefore(i, 2)

		if !tok.IsAlphabetic || p.vocabIndex.Contains(word) {
			if tok.IsAlphabetic && p.cfg.HomophoneEnabled {
				if record, ok := p.homophoneRecord(word, i, context, modelType); ok {
					errors = append(errors, record)
				}
			}
			corrected = append(corrected, word)
			continue
		}

		candidates := p.ed.Candidates(word, p.vocabIndex)
		if len(candidates) == 0 {
			corrected = append(corrected, word)
			continue
		}

		scored := p.scoreCandidates(candidates, context, modelType)
		sort.SliceStable(scored, func(a, b int) bool {
			return scored[a].final > scored[b].final
		})

		best := scored[0]
		corrected = append(corrected, best.word)

		var total float64
		for _, s := range scored {
			total += s.final
		}

		confidence := 0.0
		if total > 0 {
			confidence = round3(best.final / total)
		}

		limit := p.cfg.MaxSuggestions
		if limit > len(scored) {
			limit = len(scored)
		}
		suggestions := make([]Suggestion, 0, limit)
		for _, s := range scored[:limit] {
			normalized := 0.0
			if total > 0 {
				normalized = round3(s.final / total)
			}
			suggestions = append(suggestions, Suggestion{
				Word:           s.word,
				Score:          normalized,
				FrequencyScore: round6(s.freqScore),
				EditDistance:   float64(s.distance),
				IsMedical:      p.domain.Contains(s.word),
			})
		}

		errType := p.classifyErrorType(word, best.word)

		errors = append(errors, ErrorRecord{
			Original:    word,
			Position:    i,
			Type:        errType,
			Confidence:  confidence,
			Context:     context,
			Suggestions: suggestions,
		})
	}

	stats := p.statistics(errors)

	logger.Info("check_text completed",
		zap.Int("token_count", len(seq)),
		zap.Int("error_count", len(errors)))

	return CorrectionResult{
		CorrectedText: joinTokens(corrected),
		Errors:        errors,
		Statistics:    stats,
	}, nil
}

type scoredCandidate struct {
	word      string
	final     float64
	freqScore float64
	distance  int
}

func (p *Pipeline) scoreCandidates(candidates []editdistance.Candidate, context []string, modelType string) []scoredCandidate {
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		freqScore := p.freq.FreqScore(c.Word, context, modelType)
		domainMultiplier := p.domain.Multiplier(c.Word)
		final := (freqScore * domainMultiplier) / (1 + float64(c.Distance))

		scored = append(scored, scoredCandidate{
			word:      c.Word,
			final:     final,
			freqScore: freqScore,
			distance:  c.Distance,
		})
	}
	return scored
}

// homophoneRecord runs the advisory homophone branch for an
// in-vocabulary alphabetic token, per spec §4.5 step 1.
func (p *Pipeline) homophoneRecord(word string, position int, context []string, modelType string) (ErrorRecord, bool) {
	isErr, alternates := p.homophones.IsError(word, p.freq.Vocabulary())
	if !isErr {
		return ErrorRecord{}, false
	}

	scored := p.homophones.Score(alternates, context)
	if len(scored) == 0 || scored[0].Score <= 0.7 {
		return ErrorRecord{}, false
	}

	limit := p.cfg.MaxSuggestions
	if limit > len(scored) {
		limit = len(scored)
	}
	suggestions := make([]Suggestion, 0, limit)
	for _, s := range scored[:limit] {
		suggestions = append(suggestions, Suggestion{
			Word:           s.Word,
			Score:          s.Score,
			FrequencyScore: round6(p.freq.FreqScore(s.Word, context, modelType)),
			EditDistance:   0,
			IsMedical:      p.domain.Contains(s.Word),
		})
	}

	return ErrorRecord{
		Original:    word,
		Position:    position,
		Type:        "homophone",
		Confidence:  scored[0].Score,
		Context:     context,
		Suggestions: suggestions,
	}, true
}

// classifyErrorType implements spec §4.5's error-type classification,
// grounded on SpellChecker._classify_error_type.
func (p *Pipeline) classifyErrorType(original, corrected string) string {
	for _, alt := range p.homophones.Get(original) {
		if alt == corrected {
			return "homophone"
		}
	}

	ops := p.ed.Operations(original, corrected)
	if len(ops) == 0 {
		return "no_error"
	}

	if len(ops) == 1 {
		switch ops[0].Kind {
		case "substitute":
			return "substitution"
		case "delete":
			return "deletion"
		case "insert":
			return "insertion"
		}
	}

	phoneticDistance := p.ed.PhoneticDistance(original, corrected)
	if phoneticDistance < len(ops) {
		return "phonetic"
	}

	return "typo"
}

func (p *Pipeline) statistics(errors []ErrorRecord) Statistics {
	if len(errors) == 0 {
		return Statistics{ErrorTypes: map[string]int{}}
	}

	errorTypes := make(map[string]int)
	var confidenceSum float64
	medicalCorrections := 0

	for _, e := range errors {
		errorTypes[e.Type]++
		confidenceSum += e.Confidence
		if len(e.Suggestions) > 0 && e.Suggestions[0].IsMedical {
			medicalCorrections++
		}
	}

	return Statistics{
		TotalErrors:           len(errors),
		ErrorTypes:            errorTypes,
		AverageConfidence:     round3(confidenceSum / float64(len(errors))),
		MedicalCorrections:    medicalCorrections,
		MedicalCorrectionRate: round3(float64(medicalCorrections) / float64(len(errors))),
	}
}

// Evaluate runs CheckText over each pair's original text and compares
// the top suggestion of its first error against the expected
// correction, per spec §4.5's evaluate(pairs).
func (p *Pipeline) Evaluate(pairs []CorrectionPair) (EvaluationResult, error) {
	result := EvaluationResult{TotalTests: len(pairs)}
	if len(pairs) == 0 {
		return result, nil
	}

	for _, pair := range pairs {
		checked, err := p.CheckText(pair.Original, "bigram")
		if err != nil {
			return result, fmt.Errorf("evaluate failed on %q: %w", pair.Original, err)
		}
		if len(checked.Errors) == 0 {
			continue
		}
		firstError := checked.Errors[0]
		if len(firstError.Suggestions) == 0 {
			continue
		}
		if firstError.Suggestions[0].Word == pair.Expected {
			result.CorrectPredictions++
		}
	}

	result.Accuracy = round3(float64(result.CorrectPredictions) / float64(len(pairs)))
	return result, nil
}

// AnalyzeErrorPatterns exposes the edit-distance engine's operation-kind
// analytics over a batch of (original, corrected) pairs, the
// original_source supplement named in SPEC_FULL.md.
func (p *Pipeline) AnalyzeErrorPatterns(pairs []editdistance.CorrectionPair) editdistance.ErrorPatternReport {
	return p.ed.AnalyzeErrorPatterns(pairs)
}

func joinTokens(tokens []string) string {
	out := ""
	for i, t := range tokens {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
