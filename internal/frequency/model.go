// Package frequency implements the unigram/bigram/trigram language model
// used to score correction candidates against their surrounding context.
package frequency

import (
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// trigramContext is the (prev1, prev2) pair key for the trigram table,
// a flat struct hash rather than a joined string, per spec design note §9.
type trigramContext struct {
	P1, P2 string
}

// Model holds the immutable-after-build frequency tables described in
// spec §3. It is built once (Build or Load) and is safe for concurrent
// reads thereafter.
type Model struct {
	mu sync.RWMutex

	unigram map[string]int64
	bigram  map[string]map[string]int64
	trigram map[trigramContext]map[string]int64

	totalTokens int64 // N
	n1          int64 // number of unigrams with count exactly 1

	mode     string
	smoother Smoother

	logger *zap.Logger
}

// New creates an empty Model using the named smoothing mode. An
// unrecognized mode degrades to "none" rather than failing, per spec §7.
func New(smoothingMode string, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		unigram:  make(map[string]int64),
		bigram:   make(map[string]map[string]int64),
		trigram:  make(map[trigramContext]map[string]int64),
		mode:     smoothingMode,
		smoother: NewSmoother(smoothingMode),
		logger:   logger,
	}
}

// Build trains the model on an already-tokenized stream, replacing any
// prior counts. It implements spec §4.2's build(text) contract, minus the
// tokenization step itself (the caller tokenizes; see pkg/spellcheck).
func (m *Model) Build(tokens []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unigram = make(map[string]int64)
	m.bigram = make(map[string]map[string]int64)
	m.trigram = make(map[trigramContext]map[string]int64)
	m.totalTokens = 0

	m.addLocked(tokens)
	m.logger.Info("frequency model trained",
		zap.Int64("total_tokens", m.totalTokens),
		zap.Int("vocabulary_size", len(m.unigram)),
		zap.String("smoothing", m.mode))
}

// Add incrementally folds more tokens into an existing model, without
// discarding prior counts. Used to merge corpus batches without
// re-tokenizing from scratch.
func (m *Model) Add(tokens []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addLocked(tokens)
}

func (m *Model) addLocked(tokens []string) {
	for _, tok := range tokens {
		m.unigram[tok]++
		m.totalTokens++
	}

	for i := 0; i+1 < len(tokens); i++ {
		prev, next := tokens[i], tokens[i+1]
		if m.bigram[prev] == nil {
			m.bigram[prev] = make(map[string]int64)
		}
		m.bigram[prev][next]++
	}

	for i := 0; i+2 < len(tokens); i++ {
		key := trigramContext{tokens[i], tokens[i+1]}
		if m.trigram[key] == nil {
			m.trigram[key] = make(map[string]int64)
		}
		m.trigram[key][tokens[i+2]]++
	}

	m.recomputeN1Locked()
}

func (m *Model) recomputeN1Locked() {
	var n1 int64
	for _, c := range m.unigram {
		if c == 1 {
			n1++
		}
	}
	m.n1 = n1
}

// Merge combines another model's counts into this one, grounded on the
// original_source corpus-merge workflow (backend/merge_corpus.py) and the
// teacher's NGramModel.Merge.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	other.mu.RLock()
	defer other.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	for w, c := range other.unigram {
		m.unigram[w] += c
	}
	m.totalTokens += other.totalTokens

	for prev, nexts := range other.bigram {
		if m.bigram[prev] == nil {
			m.bigram[prev] = make(map[string]int64)
		}
		for next, c := range nexts {
			m.bigram[prev][next] += c
		}
	}

	for ctx, nexts := range other.trigram {
		if m.trigram[ctx] == nil {
			m.trigram[ctx] = make(map[string]int64)
		}
		for next, c := range nexts {
			m.trigram[ctx][next] += c
		}
	}

	m.recomputeN1Locked()
}

// Vocabulary returns the set of tokens observed during training. The
// returned map must be treated as read-only by callers.
func (m *Model) Vocabulary() map[string]struct{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	vocab := make(map[string]struct{}, len(m.unigram))
	for w := range m.unigram {
		vocab[w] = struct{}{}
	}
	return vocab
}

// Contains reports whether w was observed during training.
func (m *Model) Contains(w string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.unigram[w]
	return ok
}

// VocabularySize returns V.
func (m *Model) VocabularySize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.unigram)
}

// TotalTokens returns N.
func (m *Model) TotalTokens() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalTokens
}

// UnigramProbability computes P(w) under the model's configured smoothing
// mode, per spec §4.2.
func (m *Model) UnigramProbability(w string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.smoother.UnigramProbability(m.unigram[w], m.totalTokens, len(m.unigram), m.n1)
}

// ConditionalProbability computes P(w | context) with the fallback chain
// trigram → bigram → unigram named in spec §4.2 and adopted as the
// resolution to the source's open contradiction (spec §9). An unknown
// modelType degrades to unigram scoring rather than erroring, per spec §7.
func (m *Model) ConditionalProbability(w string, context []string, modelType string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.conditionalProbabilityLocked(w, context, modelType)
}

func (m *Model) conditionalProbabilityLocked(w string, context []string, modelType string) float64 {
	alpha := m.smoother.Alpha()
	vocabSize := float64(len(m.unigram))

	switch modelType {
	case "bigram":
		if len(context) >= 1 {
			prev := context[len(context)-1]
			num := float64(m.bigram[prev][w]) + alpha
			den := float64(m.unigram[prev]) + alpha*vocabSize
			if den > 0 {
				return num / den
			}
		}
		return m.smoother.UnigramProbability(m.unigram[w], m.totalTokens, len(m.unigram), m.n1)

	case "trigram":
		if len(context) >= 2 {
			key := trigramContext{context[len(context)-2], context[len(context)-1]}
			num := float64(m.trigram[key][w]) + alpha
			den := float64(trigramContextTotal(m.trigram[key])) + alpha*vocabSize
			if den > 0 {
				return num / den
			}
			return m.conditionalProbabilityLocked(w, context[len(context)-1:], "bigram")
		}
		if len(context) == 1 {
			return m.conditionalProbabilityLocked(w, context, "bigram")
		}
		return m.smoother.UnigramProbability(m.unigram[w], m.totalTokens, len(m.unigram), m.n1)

	default:
		return m.smoother.UnigramProbability(m.unigram[w], m.totalTokens, len(m.unigram), m.n1)
	}
}

func trigramContextTotal(counts map[string]int64) int64 {
	var total int64
	for _, c := range counts {
		total += c
	}
	return total
}

// FreqScore is the composite score from spec §4.2:
// 0.3*P(w) + 0.7*P(w|context) when context is non-empty, P(w) otherwise.
func (m *Model) FreqScore(w string, context []string, modelType string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	unigramProb := m.smoother.UnigramProbability(m.unigram[w], m.totalTokens, len(m.unigram), m.n1)
	if len(context) == 0 {
		return unigramProb
	}
	contextualProb := m.conditionalProbabilityLocked(w, context, modelType)
	return 0.3*unigramProb + 0.7*contextualProb
}

// Perplexity computes exp(-(1/n) * Σ log P_i) over testTokens. Positions
// that lack sufficient context for modelType (the first token under
// bigram, the first two under trigram) and every position under an
// unknown modelType are scored with the unigram probability. Zero
// probabilities are floored to 1e-10 before taking the log, per spec §4.2.
func (m *Model) Perplexity(testTokens []string, modelType string) float64 {
	if len(testTokens) == 0 {
		return 0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var logProbSum float64
	for i, tok := range testTokens {
		var prob float64
		switch {
		case modelType == "trigram" && i >= 2:
			prob = m.conditionalProbabilityLocked(tok, testTokens[i-2:i], "trigram")
		case modelType == "bigram" && i >= 1:
			prob = m.conditionalProbabilityLocked(tok, testTokens[i-1:i], "bigram")
		default:
			prob = m.smoother.UnigramProbability(m.unigram[tok], m.totalTokens, len(m.unigram), m.n1)
		}

		if prob <= 0 {
			prob = 1e-10
		}
		logProbSum += math.Log(prob)
	}

	avgLogProb := logProbSum / float64(len(testTokens))
	return math.Exp(-avgLogProb)
}

// WordCount pairs a token with its raw unigram count.
type WordCount struct {
	Word  string
	Count int64
}

// Statistics summarizes the trained model, the original_source supplement
// from FrequencyManager.get_statistics (see SPEC_FULL.md).
type Statistics struct {
	TotalWords      int64
	VocabularySize  int
	UniqueBigrams   int
	UniqueTrigrams  int
	MostCommonWords []WordCount
	SmoothingMethod string
}

// Statistics returns a snapshot of the model's training statistics.
func (m *Model) Statistics() Statistics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	words := make([]WordCount, 0, len(m.unigram))
	for w, c := range m.unigram {
		words = append(words, WordCount{Word: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > 10 {
		words = words[:10]
	}

	uniqueBigrams := 0
	for _, nexts := range m.bigram {
		uniqueBigrams += len(nexts)
	}
	uniqueTrigrams := 0
	for _, nexts := range m.trigram {
		uniqueTrigrams += len(nexts)
	}

	return Statistics{
		TotalWords:      m.totalTokens,
		VocabularySize:  len(m.unigram),
		UniqueBigrams:   uniqueBigrams,
		UniqueTrigrams:  uniqueTrigrams,
		MostCommonWords: words,
		SmoothingMethod: m.mode,
	}
}
