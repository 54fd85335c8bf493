package homophone

import "testing"

func TestGet_KnownAndUnknownWords(t *testing.T) {
	d := New()

	if got := d.Get("their"); len(got) != 2 {
		t.Errorf("expected 2 alternates for 'their', got %v", got)
	}
	if got := d.Get("nonexistentword"); len(got) != 0 {
		t.Errorf("expected no alternates, got %v", got)
	}
}

func TestGet_NoSelfMapping(t *testing.T) {
	d := New()
	for _, alt := range d.Get("its") {
		if alt == "its" {
			t.Error("'its' must not list itself as a homophone alternate")
		}
	}
}

func TestIsError_IntersectsWithVocabulary(t *testing.T) {
	d := New()
	vocab := map[string]struct{}{"there": {}, "patient": {}}

	isErr, alts := d.IsError("their", vocab)
	if !isErr {
		t.Fatal("expected 'their' to be flagged as a possible homophone error")
	}
	if len(alts) != 1 || alts[0] != "there" {
		t.Errorf("expected intersection ['there'], got %v", alts)
	}
}

func TestIsError_NoVocabularyOverlap(t *testing.T) {
	d := New()
	vocab := map[string]struct{}{"patient": {}}

	isErr, alts := d.IsError("their", vocab)
	if isErr || len(alts) != 0 {
		t.Errorf("expected no homophone error, got isErr=%v alts=%v", isErr, alts)
	}
}

func TestScore_MedicalContextRaisesMedicalHomophones(t *testing.T) {
	d := New()

	scored := d.Score([]string{"ilium", "there"}, []string{"the", "patient", "has"})
	if len(scored) != 2 {
		t.Fatalf("expected 2 scored candidates, got %d", len(scored))
	}
	if scored[0].Word != "ilium" || scored[0].Score != 0.8 {
		t.Errorf("expected 'ilium' ranked first with score 0.8, got %+v", scored[0])
	}
	if scored[1].Score != 0.5 {
		t.Errorf("expected non-medical candidate to keep baseline 0.5, got %+v", scored[1])
	}
}

func TestScore_NoMedicalContextKeepsBaseline(t *testing.T) {
	d := New()

	scored := d.Score([]string{"ilium", "ileum"}, []string{"the", "bone"})
	for _, s := range scored {
		if s.Score != 0.5 {
			t.Errorf("expected baseline score 0.5 without medical context, got %+v", s)
		}
	}
}
