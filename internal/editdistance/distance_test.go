package editdistance

import "testing"

func defaultEngine() *Engine {
	return New(2, true, 10, Costs{Substitution: 1, Insertion: 1, Deletion: 1, Transpose: 1}, nil)
}

func TestLevenshtein_KnownPairs(t *testing.T) {
	e := defaultEngine()

	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"", "", 0},
		{"abc", "", 3},
		{"same", "same", 0},
	}
	for _, c := range cases {
		if got := e.Levenshtein(c.a, c.b); got != c.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDamerauLevenshtein_Transposition(t *testing.T) {
	e := defaultEngine()

	if got := e.DamerauLevenshtein("ab", "ba"); got != 1 {
		t.Errorf("expected transposition distance 1, got %d", got)
	}
	if got := e.DamerauLevenshtein("hello", "ehllo"); got != 1 {
		t.Errorf("expected start-of-string transposition distance 1, got %d", got)
	}
	// With no transposition available, should equal substitution-based
	// Levenshtein distance.
	lev := e.Levenshtein("kitten", "sitting")
	dam := e.DamerauLevenshtein("kitten", "sitting")
	if dam != lev {
		t.Errorf("expected Damerau to match Levenshtein with no transpositions: %d vs %d", dam, lev)
	}
}

func TestWeightedDistance_AdjacentKeyDiscount(t *testing.T) {
	e := defaultEngine()

	// 'q' and 'w' are keyboard-adjacent: substitution should cost 0.5
	// instead of 1.
	got := e.WeightedDistance("q", "w")
	if got != 0.5 {
		t.Errorf("expected adjacent-key substitution cost 0.5, got %v", got)
	}

	// 'q' and 'p' are not adjacent: full substitution cost.
	got2 := e.WeightedDistance("q", "p")
	if got2 != 1.0 {
		t.Errorf("expected non-adjacent substitution cost 1.0, got %v", got2)
	}
}

func TestPhoneticDistance_NormalizesBeforeComparing(t *testing.T) {
	e := defaultEngine()

	// "fone" and "phone" normalize to the same phonetic form ("fone"),
	// since "ph" -> "f".
	if got := e.PhoneticDistance("phone", "fone"); got != 0 {
		t.Errorf("expected phonetic distance 0 for phone/fone, got %d", got)
	}
}

func TestDistance_RespectsAllowTranspose(t *testing.T) {
	withTranspose := New(2, true, 10, Costs{Substitution: 1, Insertion: 1, Deletion: 1, Transpose: 1}, nil)
	withoutTranspose := New(2, false, 10, Costs{Substitution: 1, Insertion: 1, Deletion: 1, Transpose: 1}, nil)

	if got := withTranspose.Distance("ab", "ba"); got != 1 {
		t.Errorf("expected transpose-aware distance 1, got %d", got)
	}
	if got := withoutTranspose.Distance("ab", "ba"); got != 2 {
		t.Errorf("expected plain Levenshtein distance 2 when transpose disabled, got %d", got)
	}
}
