package spellcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rrvrs/spell-checker/internal/config"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()

	corpusPath := writeFixture(t, dir, "corpus.txt",
		"the patient has diabetes. the doctor treats diabetes with insulin. ")
	termsPath := writeFixture(t, dir, "terms.txt", "diabetes\ninsulin\n")

	cfg := &config.Config{}
	cfg.Corpus.MergedCorpus = corpusPath
	cfg.Domain.MedicalTermsFile = termsPath
	cfg.Domain.DomainWeight = 1.5
	cfg.NGram.Smoothing = "add-one"
	cfg.NGram.MaxCandidates = 10
	cfg.EditDistance.MaxDistance = 2
	cfg.EditDistance.AllowTranspose = true
	cfg.EditDistance.SubstitutionCost = 1
	cfg.EditDistance.InsertionCost = 1
	cfg.EditDistance.DeletionCost = 1
	cfg.EditDistance.TransposeCost = 1
	cfg.EditDistance.MaxCandidates = 10
	cfg.ErrorHandling.MaxSuggestions = 5
	cfg.ErrorHandling.ErrorTypes.Homophone = true

	return cfg
}

func TestNewEngine_RejectsNilConfig(t *testing.T) {
	if _, err := NewEngine(nil, nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestCheckText_BeforeTrainReturnsError(t *testing.T) {
	dir := t.TempDir()
	engine, err := NewEngine(testConfig(t, dir), nil)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	if _, err := engine.CheckText("the patient has diabetis.", "bigram"); err == nil {
		t.Fatal("expected error calling CheckText before Train/Load")
	}
}

func TestTrainAndCheckText(t *testing.T) {
	dir := t.TempDir()
	engine, err := NewEngine(testConfig(t, dir), nil)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	if err := engine.Train(); err != nil {
		t.Fatalf("Train returned error: %v", err)
	}
	if engine.VocabularySize() == 0 {
		t.Fatal("expected non-empty vocabulary after training")
	}

	result, err := engine.CheckText("the patient has diabetis.", "bigram")
	if err != nil {
		t.Fatalf("CheckText returned error: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one error for 'diabetis'")
	}
}

func TestSaveLoad_RoundTripsThroughEngine(t *testing.T) {
	dir := t.TempDir()
	engine, err := NewEngine(testConfig(t, dir), nil)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	if err := engine.Train(); err != nil {
		t.Fatalf("Train returned error: %v", err)
	}

	modelPath := filepath.Join(dir, "model.gob")
	if err := engine.Save(modelPath); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loadedEngine, err := NewEngine(testConfig(t, dir), nil)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	if err := loadedEngine.Load(modelPath); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if loadedEngine.VocabularySize() != engine.VocabularySize() {
		t.Errorf("expected matching vocabulary sizes, got %d vs %d",
			loadedEngine.VocabularySize(), engine.VocabularySize())
	}

	result, err := loadedEngine.CheckText("the patient has diabetis.", "bigram")
	if err != nil {
		t.Fatalf("CheckText returned error: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one error after loading a saved model")
	}
}
