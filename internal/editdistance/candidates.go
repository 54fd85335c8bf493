package editdistance

import (
	"sort"

	"github.com/antzucaro/matchr"
	"github.com/bits-and-blooms/bloom/v3"
	"go.uber.org/zap"
)

// Candidate is one scored replacement proposal for an out-of-vocabulary
// word, per spec §4.3's candidate-generation output.
type Candidate struct {
	Word     string
	Distance int
	Combined float64
}

// VocabIndex pre-buckets a vocabulary by word length, letting Candidates
// skip every word outside the length bound before running the expensive
// DP distance functions, and carries a bloom filter over its entries that
// Contains uses as a fast negative check. Grounded on armchr-bot-go's
// ngram/ngram_trie.go bloom-filter pre-check.
type VocabIndex struct {
	byLength map[int][]string
	bloom    *bloom.BloomFilter

	logger *zap.Logger
}

// NewVocabIndex builds an index over vocab, sized for the bloom filter
// via bloom.NewWithEstimates the way the teacher sizes its n-gram bloom
// filter from the expected item count.
func NewVocabIndex(vocab map[string]struct{}, logger *zap.Logger) *VocabIndex {
	if logger == nil {
		logger = zap.NewNop()
	}

	expected := uint(len(vocab))
	if expected == 0 {
		expected = 1
	}

	idx := &VocabIndex{
		byLength: make(map[int][]string),
		bloom:    bloom.NewWithEstimates(expected, 0.01),
		logger:   logger,
	}

	for w := range vocab {
		idx.byLength[len(w)] = append(idx.byLength[len(w)], w)
		idx.bloom.AddString(w)
	}

	logger.Debug("built vocabulary index",
		zap.Int("vocabulary_size", len(vocab)),
		zap.Int("length_buckets", len(idx.byLength)))

	return idx
}

// Contains reports whether w is present in the index, using the bloom
// filter as a fast negative pre-check before falling through to the
// exact length-bucket scan.
func (idx *VocabIndex) Contains(w string) bool {
	if !idx.bloom.TestString(w) {
		return false
	}
	for _, candidate := range idx.byLength[len(w)] {
		if candidate == w {
			return true
		}
	}
	return false
}

// candidateWords returns every vocabulary word whose length is within
// maxDistance of len(word), the first filter of spec §4.3's candidate
// generation step 1.
func (idx *VocabIndex) candidateWords(word string, maxDistance int) []string {
	var out []string
	wordLen := len(word)
	for length := wordLen - maxDistance; length <= wordLen+maxDistance; length++ {
		if length < 0 {
			continue
		}
		out = append(out, idx.byLength[length]...)
	}
	return out
}

// Candidates implements spec §4.3's candidate(word, vocab, max_candidates):
// length-bucket filter, exact distance filter, weighted/phonetic scoring,
// combined-score ranking, stable tie-break by natural string order.
//
// A Jaro-Winkler pre-rank (matchr.JaroWinkler) narrows wide length
// buckets before the O(|a|·|b|) DP functions run, addressing the
// quadratic-candidate-scan concern without a BK-tree.
func (e *Engine) Candidates(word string, idx *VocabIndex) []Candidate {
	words := idx.candidateWords(word, e.maxDistance)

	const prefilterWidth = 200
	if len(words) > prefilterWidth {
		words = prefilterByJaroWinkler(word, words, prefilterWidth)
	}

	candidates := make([]Candidate, 0, len(words))
	for _, v := range words {
		d := e.Distance(word, v)
		if d > e.maxDistance {
			continue
		}
		wd := e.WeightedDistance(word, v)
		pd := float64(e.PhoneticDistance(word, v))
		combined := 0.5*float64(d) + 0.3*wd + 0.2*pd

		candidates = append(candidates, Candidate{
			Word:     v,
			Distance: d,
			Combined: combined,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Combined != candidates[j].Combined {
			return candidates[i].Combined < candidates[j].Combined
		}
		return candidates[i].Word < candidates[j].Word
	})

	if len(candidates) > e.maxCandidates {
		candidates = candidates[:e.maxCandidates]
	}
	return candidates
}

// prefilterByJaroWinkler keeps the top-scoring words by Jaro-Winkler
// similarity, bounding the set passed to the exact DP distance
// functions when a length bucket is large.
func prefilterByJaroWinkler(word string, words []string, keep int) []string {
	type scored struct {
		word  string
		score float64
	}
	ranked := make([]scored, len(words))
	for i, w := range words {
		ranked[i] = scored{word: w, score: matchr.JaroWinkler(word, w, false)}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].word < ranked[j].word
	})
	if len(ranked) > keep {
		ranked = ranked[:keep]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.word
	}
	return out
}
