// Package token holds the value types shared by the tokenizer, the
// frequency model, and the correction pipeline.
package token

// Token is a single lexical unit produced by the tokenizer: a lowercased
// string, its zero-based position in the token stream, and whether it is
// purely alphabetic.
type Token struct {
	Text         string
	Position     int
	IsAlphabetic bool
}

// Sequence is an ordered stream of tokens.
type Sequence []Token

// Words returns the text of every token in the sequence, in order.
func (s Sequence) Words() []string {
	words := make([]string, len(s))
	for i, t := range s {
		words[i] = t.Text
	}
	return words
}

// AlphabeticBefore returns up to n alphabetic tokens immediately preceding
// position i, in left-to-right order. Used to build the left context window
// for n-gram scoring and homophone detection.
func (s Sequence) AlphabeticBefore(i, n int) []string {
	var context []string
	for j := i - 1; j >= 0 && len(context) < n; j-- {
		if s[j].IsAlphabetic {
			context = append([]string{s[j].Text}, context...)
		}
	}
	return context
}
