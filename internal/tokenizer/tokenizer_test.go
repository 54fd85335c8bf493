package tokenizer

import "testing"

func TestTokenize_WordsAndPunctuation(t *testing.T) {
	tok, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	seq, err := tok.Tokenize("The patient's temperature is 98.6, stable.")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	words := seq.Words()
	expected := []string{"the", "patient's", "temperature", "is", "98.6", ",", "stable", "."}
	if len(words) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(words), words)
	}
	for i, w := range expected {
		if words[i] != w {
			t.Errorf("token %d: expected %q, got %q", i, w, words[i])
		}
	}

	for i, tk := range seq {
		if tk.Position != i {
			t.Errorf("token %d has position %d", i, tk.Position)
		}
	}

	if !seq[0].IsAlphabetic {
		t.Error("expected 'the' to be alphabetic")
	}
	if seq[4].IsAlphabetic {
		t.Error("expected '98.6' to not be alphabetic")
	}
	if seq[5].IsAlphabetic {
		t.Error("expected ',' to not be alphabetic")
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	tok, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	seq, err := tok.Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(seq) != 0 {
		t.Errorf("expected empty sequence, got %d tokens", len(seq))
	}
}

func TestAlphabeticBefore(t *testing.T) {
	tok, _ := New()
	seq, _ := tok.Tokenize("the patient has diabetis today")

	// index of "diabetis" is 3
	ctx := seq.AlphabeticBefore(3, 2)
	if len(ctx) != 2 || ctx[0] != "patient" || ctx[1] != "has" {
		t.Errorf("unexpected context: %v", ctx)
	}
}
