// Package domain loads and holds the medical term set used to boost
// in-domain correction candidates, per spec §3 and §6.
package domain

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"
)

// TermSet is the immutable-after-load set of lowercased medical terms.
type TermSet struct {
	terms  map[string]struct{}
	weight float64
}

// New wraps an already-loaded term set with its configured boost weight.
func New(terms map[string]struct{}, weight float64) *TermSet {
	return &TermSet{terms: terms, weight: weight}
}

// Load reads a newline-separated, lowercase medical-terms file. A
// missing file is not fatal: the engine runs with an empty term set
// (no domain boost applies), per spec §7's "degrade, don't fail" policy
// for optional collaborators.
func Load(path string, weight float64, logger *zap.Logger) *TermSet {
	if logger == nil {
		logger = zap.NewNop()
	}

	terms := make(map[string]struct{})

	file, err := os.Open(path)
	if err != nil {
		logger.Warn("medical terms file unavailable, continuing without domain boost",
			zap.String("path", path), zap.Error(err))
		return New(terms, weight)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		term := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if term == "" {
			continue
		}
		terms[term] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("error reading medical terms file", zap.String("path", path), zap.Error(err))
	}

	logger.Info("loaded medical term set", zap.Int("term_count", len(terms)))
	return New(terms, weight)
}

// Contains reports whether w is a recognized medical term.
func (t *TermSet) Contains(w string) bool {
	_, ok := t.terms[w]
	return ok
}

// Multiplier returns the configured domain boost if w is a medical
// term, or 1.0 otherwise, per spec §4.5's domain_multiplier.
func (t *TermSet) Multiplier(w string) float64 {
	if t.Contains(w) {
		return t.weight
	}
	return 1.0
}

// Size returns the number of loaded terms.
func (t *TermSet) Size() int {
	return len(t.terms)
}
