// Package tokenizer splits free text into the lowercase word and
// punctuation tokens the rest of the engine operates on.
package tokenizer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/rrvrs/spell-checker/internal/model/token"
)

// wordPattern matches, in priority order: a decimal number not followed by
// another ".digit" group (so "98.6" stays one token but "1.2.3" still
// splits sensibly), a run of word characters optionally joined by internal
// hyphens or apostrophes (so "patient's" and "x-ray" stay one token), or a
// single non-space character for everything else (punctuation). The
// decimal-number alternative needs a negative lookahead, which the stdlib
// regexp package (RE2) cannot express.
const wordPattern = `\d+\.\d+(?!\.\d)|\w+(?:[-']\w+)*|[^\s]`

// Tokenizer splits text into an ordered token.Sequence.
type Tokenizer struct {
	re *regexp2.Regexp
}

// New builds a Tokenizer. Construction cannot fail in practice since the
// pattern is a compile-time constant, but the error return keeps the
// constructor consistent with the rest of the engine's fallible
// constructors.
func New() (*Tokenizer, error) {
	re, err := regexp2.Compile(wordPattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("failed to compile tokenizer pattern: %w", err)
	}
	return &Tokenizer{re: re}, nil
}

// Tokenize splits text into a lowercase token.Sequence, preserving
// zero-based position order. A token is alphabetic iff every rune in it is
// a letter.
func (t *Tokenizer) Tokenize(text string) (token.Sequence, error) {
	if strings.TrimSpace(text) == "" {
		return token.Sequence{}, nil
	}

	lowered := strings.ToLower(text)

	var seq token.Sequence
	m, err := t.re.FindStringMatch(lowered)
	if err != nil {
		return nil, fmt.Errorf("tokenizer match failed: %w", err)
	}
	position := 0
	for m != nil {
		value := m.String()
		seq = append(seq, token.Token{
			Text:         value,
			Position:     position,
			IsAlphabetic: isAlphabetic(value),
		})
		position++

		m, err = t.re.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("tokenizer match failed: %w", err)
		}
	}

	return seq, nil
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
