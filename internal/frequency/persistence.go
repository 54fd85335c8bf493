package frequency

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// modelFormatVersion is bumped whenever the serialized layout changes, so
// Load can refuse to decode an incompatible file loudly (spec §7: a
// corrupted persisted model must fail loudly, not silently).
const modelFormatVersion = "1"

// serializableModel is the gob-encoded, self-describing representation of
// a Model, grounded on armchr-bot-go's SerializableNGramModel /
// NGramPersistence.saveToFile/loadFromFile.
type serializableModel struct {
	Version     string
	Mode        string
	Unigram     map[string]int64
	Bigram      map[string]map[string]int64
	Trigram     map[trigramContext]map[string]int64
	TotalTokens int64
	N1          int64
}

// Save writes the model to path using gob encoding. The round-trip
// invariant required by spec §8.7 holds: Load(Save(m)) answers every
// probability and candidate query identically to m.
func Save(m *Model, path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}

	payload := serializableModel{
		Version:     modelFormatVersion,
		Mode:        m.mode,
		Unigram:     m.unigram,
		Bigram:      m.bigram,
		Trigram:     m.trigram,
		TotalTokens: m.totalTokens,
		N1:          m.n1,
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(&payload); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	return nil
}

// Load reconstructs a Model previously written by Save. A missing or
// corrupted file is an initialization failure surfaced to the caller,
// per spec §7.
func Load(path string, logger *zap.Logger) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer file.Close()

	var payload serializableModel
	if err := gob.NewDecoder(file).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode model file (corrupted?): %w", err)
	}

	if payload.Version != modelFormatVersion {
		return nil, fmt.Errorf("unsupported model format version %q (want %q)", payload.Version, modelFormatVersion)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		unigram:     payload.Unigram,
		bigram:      payload.Bigram,
		trigram:     payload.Trigram,
		totalTokens: payload.TotalTokens,
		n1:          payload.N1,
		mode:        payload.Mode,
		smoother:    NewSmoother(payload.Mode),
		logger:      logger,
	}
	if m.unigram == nil {
		m.unigram = make(map[string]int64)
	}
	if m.bigram == nil {
		m.bigram = make(map[string]map[string]int64)
	}
	if m.trigram == nil {
		m.trigram = make(map[trigramContext]map[string]int64)
	}

	logger.Info("loaded frequency model",
		zap.String("path", path),
		zap.Int64("total_tokens", m.totalTokens),
		zap.Int("vocabulary_size", len(m.unigram)),
		zap.String("smoothing", m.mode))

	return m, nil
}

// ModelPath returns the conventional file path for a named model within
// dir, grounded on NGramPersistence.GetModelPath.
func ModelPath(dir, name string) string {
	return filepath.Join(dir, fmt.Sprintf("%s.medspell.gob", name))
}
