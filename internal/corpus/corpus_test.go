package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadText_LowercasesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(path, []byte("The Patient Has DIABETES.\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	text, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText returned error: %v", err)
	}
	if text != "the patient has diabetes.\n" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestReadText_MissingFileReturnsError(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing corpus file")
	}
}
