// Package editdistance implements the string-distance algorithms and
// candidate generator used to propose replacements for out-of-vocabulary
// tokens: Levenshtein, Damerau-Levenshtein, keyboard-weighted and
// phonetic distance, plus the combined-score candidate ranker.
package editdistance

import (
	"strings"

	"go.uber.org/zap"
)

// Costs bundles the per-operation costs named in spec §4.3, each
// defaulting to 1 via internal/config.
type Costs struct {
	Substitution int
	Insertion    int
	Deletion     int
	Transpose    int
}

// Engine computes distances and candidates under a fixed cost/config
// profile. Grounded on EditDistanceCalculator's constructor, which binds
// the same five knobs onto every subsequent call.
type Engine struct {
	maxDistance    int
	allowTranspose bool
	maxCandidates  int
	costs          Costs

	logger *zap.Logger
}

// New builds an Engine from the configured distance limits and costs.
func New(maxDistance int, allowTranspose bool, maxCandidates int, costs Costs, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		maxDistance:    maxDistance,
		allowTranspose: allowTranspose,
		maxCandidates:  maxCandidates,
		costs:          costs,
		logger:         logger,
	}
}

// Levenshtein computes classic edit distance with the engine's
// configured per-operation costs, using the two-row DP from spec §4.3.1.
func (e *Engine) Levenshtein(a, b string) int {
	return e.levenshteinRows(a, b, func(ca, cb byte) int {
		if ca == cb {
			return 0
		}
		return e.costs.Substitution
	})
}

// WeightedDistance is Levenshtein with keyboard-adjacent substitutions
// discounted to cost 0.5, per spec §4.3.3. Returned as a float64 because
// the 0.5 discount is not integral.
func (e *Engine) WeightedDistance(a, b string) float64 {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return float64(len(a))
	}

	previous := make([]float64, len(b)+1)
	for j := range previous {
		previous[j] = float64(j)
	}

	for i := 0; i < len(a); i++ {
		current := make([]float64, len(b)+1)
		current[0] = float64(i + 1)
		for j := 0; j < len(b); j++ {
			var subCost float64
			switch {
			case a[i] == b[j]:
				subCost = 0
			case isAdjacentKey(a[i], b[j]):
				subCost = 0.5
			default:
				subCost = float64(e.costs.Substitution)
			}

			insertion := previous[j+1] + float64(e.costs.Insertion)
			deletion := current[j] + float64(e.costs.Deletion)
			substitution := previous[j] + subCost
			current[j+1] = minFloat(insertion, minFloat(deletion, substitution))
		}
		previous = current
	}

	return previous[len(b)]
}

// PhoneticDistance lowercases and normalizes both words through the
// fixed phonetic pattern list, then computes Levenshtein distance on the
// normalized forms, per spec §4.3.4.
func (e *Engine) PhoneticDistance(a, b string) int {
	return e.Levenshtein(normalizePhonetic(a), normalizePhonetic(b))
}

func normalizePhonetic(word string) string {
	word = strings.ToLower(word)
	for _, p := range phoneticPatterns {
		word = strings.ReplaceAll(word, p.pattern, p.replacement)
	}
	return word
}

// levenshteinRows is the shared two-row DP core parameterized on a
// substitution-cost function, reused by Levenshtein.
func (e *Engine) levenshteinRows(a, b string, subCost func(byte, byte) int) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 0; i < len(a); i++ {
		current := make([]int, len(b)+1)
		current[0] = i + 1
		for j := 0; j < len(b); j++ {
			insertion := previous[j+1] + e.costs.Insertion
			deletion := current[j] + e.costs.Deletion
			substitution := previous[j] + subCost(a[i], b[j])
			current[j+1] = minInt(insertion, minInt(deletion, substitution))
		}
		previous = current
	}

	return previous[len(b)]
}

// DamerauLevenshtein computes the restricted (adjacent-transposition)
// Damerau-Levenshtein distance, maintaining the classic "last row each
// character appeared in" auxiliary map, per spec §4.3.2.
func (e *Engine) DamerauLevenshtein(a, b string) int {
	lenA, lenB := len(a), len(b)

	charSet := make(map[byte]struct{})
	for i := 0; i < lenA; i++ {
		charSet[a[i]] = struct{}{}
	}
	for i := 0; i < lenB; i++ {
		charSet[b[i]] = struct{}{}
	}
	lastRow := make(map[byte]int, len(charSet))
	for c := range charSet {
		lastRow[c] = 0
	}

	maxDist := lenA + lenB
	h := make([][]int, lenA+2)
	for i := range h {
		h[i] = make([]int, lenB+2)
		for j := range h[i] {
			h[i][j] = maxDist
		}
	}

	h[0][0] = maxDist
	for i := 0; i <= lenA; i++ {
		h[i+1][0] = maxDist
		h[i+1][1] = i
	}
	for j := 0; j <= lenB; j++ {
		h[0][j+1] = maxDist
		h[1][j+1] = j
	}

	for i := 1; i <= lenA; i++ {
		lastMatchCol := 0
		for j := 1; j <= lenB; j++ {
			k := lastRow[b[j-1]]
			l := lastMatchCol

			var cost int
			if a[i-1] == b[j-1] {
				cost = 0
				lastMatchCol = j
			} else {
				cost = e.costs.Substitution
			}

			h[i+1][j+1] = minInt(
				h[i][j]+cost,
				minInt(
					h[i+1][j]+e.costs.Insertion,
					minInt(
						h[i][j+1]+e.costs.Deletion,
						h[k][l]+(i-k-1)+e.costs.Transpose+(j-l-1),
					),
				),
			)
		}
		lastRow[a[i-1]] = i
	}

	return h[lenA+1][lenB+1]
}

// Distance picks Damerau-Levenshtein or plain Levenshtein according to
// the engine's allow_transpose setting, per spec §4.3 candidate-
// generation step 2.
func (e *Engine) Distance(a, b string) int {
	if e.allowTranspose {
		return e.DamerauLevenshtein(a, b)
	}
	return e.Levenshtein(a, b)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
