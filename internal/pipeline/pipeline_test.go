package pipeline

import (
	"testing"

	"github.com/rrvrs/spell-checker/internal/domain"
	"github.com/rrvrs/spell-checker/internal/editdistance"
	"github.com/rrvrs/spell-checker/internal/frequency"
	"github.com/rrvrs/spell-checker/internal/homophone"
	"github.com/rrvrs/spell-checker/internal/tokenizer"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()

	freq := frequency.New("add-one", nil)
	freq.Build([]string{
		"the", "patient", "has", "diabetes", ".",
		"the", "doctor", "treats", "diabetes", "with", "insulin", ".",
		"their", "diagnosis", "confirmed", "the", "condition", ".",
	})

	ed := editdistance.New(2, true, 10, editdistance.Costs{
		Substitution: 1, Insertion: 1, Deletion: 1, Transpose: 1,
	}, nil)

	terms := domain.New(map[string]struct{}{"diabetes": {}, "insulin": {}}, 1.5)

	tok, err := tokenizer.New()
	if err != nil {
		t.Fatalf("failed to build tokenizer: %v", err)
	}

	return New(freq, ed, homophone.New(), terms, tok, Config{
		MaxSuggestions:   5,
		HomophoneEnabled: true,
	}, nil)
}

func TestCheckText_CorrectsOutOfVocabularyWord(t *testing.T) {
	p := newTestPipeline(t)

	result, err := p.CheckText("the patient has diabetis.", "bigram")
	if err != nil {
		t.Fatalf("CheckText returned error: %v", err)
	}

	if len(result.Errors) == 0 {
		t.Fatal("expected at least one error record for 'diabetis'")
	}

	found := false
	for _, e := range result.Errors {
		if e.Original == "diabetis" {
			found = true
			if len(e.Suggestions) == 0 {
				t.Fatal("expected suggestions for 'diabetis'")
			}
			if e.Suggestions[0].Word != "diabetes" {
				t.Errorf("expected top suggestion 'diabetes', got %q", e.Suggestions[0].Word)
			}
			if !e.Suggestions[0].IsMedical {
				t.Error("expected 'diabetes' to be flagged as medical")
			}
		}
	}
	if !found {
		t.Error("expected an error record for 'diabetis'")
	}
}

func TestCheckText_LeavesInVocabularyTokensUnchanged(t *testing.T) {
	p := newTestPipeline(t)

	result, err := p.CheckText("the patient has diabetes.", "bigram")
	if err != nil {
		t.Fatalf("CheckText returned error: %v", err)
	}
	if result.CorrectedText != "the patient has diabetes ." {
		t.Errorf("expected unchanged text, got %q", result.CorrectedText)
	}
}

func TestCheckText_ErrorsOrderedByPosition(t *testing.T) {
	p := newTestPipeline(t)

	result, err := p.CheckText("the paitent has diabetis and needs insullin.", "bigram")
	if err != nil {
		t.Fatalf("CheckText returned error: %v", err)
	}
	for i := 1; i < len(result.Errors); i++ {
		if result.Errors[i].Position <= result.Errors[i-1].Position {
			t.Errorf("expected strictly ascending positions, got %d then %d",
				result.Errors[i-1].Position, result.Errors[i].Position)
		}
	}
}

func TestStatistics_EmptyWhenNoErrors(t *testing.T) {
	p := newTestPipeline(t)

	result, err := p.CheckText("the patient has diabetes.", "bigram")
	if err != nil {
		t.Fatalf("CheckText returned error: %v", err)
	}
	if result.Statistics.TotalErrors != 0 {
		t.Errorf("expected zero errors, got %d", result.Statistics.TotalErrors)
	}
}

func TestEvaluate_ReportsAccuracy(t *testing.T) {
	p := newTestPipeline(t)

	result, err := p.Evaluate([]CorrectionPair{
		{Original: "the patient has diabetis.", Expected: "diabetes"},
	})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if result.TotalTests != 1 {
		t.Errorf("expected 1 total test, got %d", result.TotalTests)
	}
	if result.CorrectPredictions != 1 {
		t.Errorf("expected 1 correct prediction, got %d", result.CorrectPredictions)
	}
	if result.Accuracy != 1.0 {
		t.Errorf("expected accuracy 1.0, got %v", result.Accuracy)
	}
}

func TestEvaluate_EmptyPairsReturnsZero(t *testing.T) {
	p := newTestPipeline(t)

	result, err := p.Evaluate(nil)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if result.TotalTests != 0 || result.Accuracy != 0 {
		t.Errorf("expected zero-value result for empty pairs, got %+v", result)
	}
}

func TestAnalyzeErrorPatterns_DelegatesToEditDistance(t *testing.T) {
	p := newTestPipeline(t)

	report := p.AnalyzeErrorPatterns([]editdistance.CorrectionPair{
		{Original: "diabetis", Corrected: "diabetes"},
	})
	if len(report.PatternCounts) == 0 {
		t.Error("expected non-empty pattern counts")
	}
}
