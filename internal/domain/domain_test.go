package domain

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ParsesLowercasedTerms(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terms.txt")
	content := "Diabetes\nHYPERTENSION\n\n  asthma  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	ts := Load(path, 1.5, nil)
	if ts.Size() != 3 {
		t.Fatalf("expected 3 terms, got %d", ts.Size())
	}
	for _, w := range []string{"diabetes", "hypertension", "asthma"} {
		if !ts.Contains(w) {
			t.Errorf("expected %q to be present", w)
		}
	}
}

func TestLoad_MissingFileDegradesGracefully(t *testing.T) {
	ts := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"), 1.5, nil)
	if ts.Size() != 0 {
		t.Errorf("expected empty term set, got %d terms", ts.Size())
	}
	if ts.Contains("diabetes") {
		t.Error("did not expect any term to be present")
	}
}

func TestMultiplier_AppliesWeightOnlyForMedicalTerms(t *testing.T) {
	ts := New(map[string]struct{}{"diabetes": {}}, 1.5)

	if got := ts.Multiplier("diabetes"); got != 1.5 {
		t.Errorf("expected multiplier 1.5 for medical term, got %v", got)
	}
	if got := ts.Multiplier("the"); got != 1.0 {
		t.Errorf("expected multiplier 1.0 for non-medical term, got %v", got)
	}
}
