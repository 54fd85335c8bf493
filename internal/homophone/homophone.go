// Package homophone implements the fixed-table homophone confusion
// detector described in spec §4.4.
package homophone

import "sort"

// groups is the fixed homophone table, grounded on
// HomophoneDetector.homophone_groups verbatim, with the self-mapping
// entry ('its' -> ['its']) dropped per the spec's open-question
// resolution (a word cannot be its own homophone alternate).
var groups = map[string][]string{
	"ileum":       {"ilium"},
	"ilium":       {"ileum"},
	"humerus":     {"humorous"},
	"humorous":    {"humerus"},
	"mucus":       {"mucous"},
	"mucous":      {"mucus"},
	"perineal":    {"peroneal"},
	"peroneal":    {"perineal"},
	"discreet":    {"discrete"},
	"discrete":    {"discreet"},
	"aphagia":     {"aphasia"},
	"aphasia":     {"aphagia"},
	"their":       {"there", "theyre"},
	"there":       {"their", "theyre"},
	"theyre":      {"their", "there"},
	"to":          {"too", "two"},
	"too":         {"to", "two"},
	"two":         {"to", "too"},
	"your":        {"youre"},
	"youre":       {"your"},
	"affect":      {"effect"},
	"effect":      {"affect"},
	"accept":      {"except"},
	"except":      {"accept"},
	"principal":   {"principle"},
	"principle":   {"principal"},
	"complement":  {"compliment"},
	"compliment":  {"complement"},
	"stationary":  {"stationery"},
	"stationery":  {"stationary"},
}

// medicalContextTriggers is the fixed trigger-word set from spec §4.4:
// when any of these appears in the left context, medical homophones
// score higher.
var medicalContextTriggers = map[string]struct{}{
	"patient":   {},
	"diagnosis": {},
	"treatment": {},
	"medical":   {},
}

// medicalHomophones is the fixed set of candidates eligible for the
// raised 0.8 score when the context is medical.
var medicalHomophones = map[string]struct{}{
	"ileum":    {},
	"ilium":    {},
	"humerus":  {},
	"mucus":    {},
	"mucous":   {},
	"perineal": {},
	"peroneal": {},
}

// Detector holds no mutable state; its table is fixed at compile time.
type Detector struct{}

// New returns a homophone Detector over the fixed table.
func New() *Detector {
	return &Detector{}
}

// Get returns the stored alternates for w, or an empty slice if w has
// none.
func (d *Detector) Get(w string) []string {
	return groups[w]
}

// IsError reports whether w has homophone alternates that are also
// in-vocabulary, returning the intersection when non-empty, per
// spec §4.4's is_error(word, context, vocab).
func (d *Detector) IsError(w string, vocab map[string]struct{}) (bool, []string) {
	alternates := groups[w]
	if len(alternates) == 0 {
		return false, nil
	}

	var valid []string
	for _, alt := range alternates {
		if _, ok := vocab[alt]; ok {
			valid = append(valid, alt)
		}
	}
	if len(valid) == 0 {
		return false, nil
	}
	return true, valid
}

// ScoredCandidate pairs a homophone alternate with its context score.
type ScoredCandidate struct {
	Word  string
	Score float64
}

// Score ranks candidates per spec §4.4: each starts at 0.5, rising to
// 0.8 when the left context contains a medical trigger word and the
// candidate is in the fixed medical-homophone set. Results are sorted
// descending by score, ties broken by natural string order for
// determinism.
func (d *Detector) Score(candidates []string, context []string) []ScoredCandidate {
	medicalContext := false
	for _, w := range context {
		if _, ok := medicalContextTriggers[w]; ok {
			medicalContext = true
			break
		}
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		score := 0.5
		if medicalContext {
			if _, ok := medicalHomophones[c]; ok {
				score = 0.8
			}
		}
		scored = append(scored, ScoredCandidate{Word: c, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Word < scored[j].Word
	})

	return scored
}
