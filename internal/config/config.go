// Package config loads and validates the spelling engine's YAML
// configuration.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v2"
)

// NGramConfig controls the frequency / language model.
type NGramConfig struct {
	Size              int    `yaml:"size"`
	MinFreqThreshold  int    `yaml:"min_freq_threshold"`
	MaxCandidates     int    `yaml:"max_candidates"`
	Smoothing         string `yaml:"smoothing"`
}

// CorpusConfig names the training corpus location.
type CorpusConfig struct {
	MergedCorpus string `yaml:"merged_corpus"`
}

// DomainConfig controls the medical-vocabulary boost.
type DomainConfig struct {
	MedicalTermsFile string  `yaml:"medical_terms_file"`
	DomainWeight     float64 `yaml:"domain_weight"`
}

// EditDistanceConfig controls the candidate generator.
type EditDistanceConfig struct {
	MaxDistance      int  `yaml:"max_distance"`
	AllowTranspose   bool `yaml:"allow_transpose"`
	SubstitutionCost int  `yaml:"substitution_cost"`
	InsertionCost    int  `yaml:"insertion_cost"`
	DeletionCost     int  `yaml:"deletion_cost"`
	TransposeCost    int  `yaml:"transpose_cost"`
	MaxCandidates    int  `yaml:"max_candidates"`
}

// ErrorTypesConfig toggles individual error-detection features.
type ErrorTypesConfig struct {
	Homophone bool `yaml:"homophone"`
}

// ErrorHandlingConfig controls suggestion output and feature toggles.
type ErrorHandlingConfig struct {
	MaxSuggestions int              `yaml:"max_suggestions"`
	ErrorTypes     ErrorTypesConfig `yaml:"error_types"`
}

// Config is the root configuration object recognized by the engine.
type Config struct {
	NGram         NGramConfig         `yaml:"ngram"`
	Corpus        CorpusConfig        `yaml:"corpus"`
	Domain        DomainConfig        `yaml:"domain"`
	EditDistance  EditDistanceConfig  `yaml:"edit_distance"`
	ErrorHandling ErrorHandlingConfig `yaml:"error_handling"`
}

// applyDefaults fills in the zero-value defaults named in spec §4.3 and
// §4.5 for fields the YAML document leaves unset.
func (c *Config) applyDefaults() {
	if c.NGram.Size == 0 {
		c.NGram.Size = 3
	}
	if c.NGram.MaxCandidates == 0 {
		c.NGram.MaxCandidates = 10
	}
	if c.NGram.Smoothing == "" {
		c.NGram.Smoothing = "add-one"
	}
	if c.Domain.DomainWeight == 0 {
		c.Domain.DomainWeight = 1.5
	}
	if c.EditDistance.MaxDistance == 0 {
		c.EditDistance.MaxDistance = 2
	}
	if c.EditDistance.SubstitutionCost == 0 {
		c.EditDistance.SubstitutionCost = 1
	}
	if c.EditDistance.InsertionCost == 0 {
		c.EditDistance.InsertionCost = 1
	}
	if c.EditDistance.DeletionCost == 0 {
		c.EditDistance.DeletionCost = 1
	}
	if c.EditDistance.TransposeCost == 0 {
		c.EditDistance.TransposeCost = 1
	}
	if c.EditDistance.MaxCandidates == 0 {
		c.EditDistance.MaxCandidates = 20
	}
	if c.ErrorHandling.MaxSuggestions == 0 {
		c.ErrorHandling.MaxSuggestions = 5
	}
}

// LoadConfig reads a YAML configuration file from path, expanding shell-style
// environment variable references before parsing.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := expandEnvVars(string(raw))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandEnvVars replaces ${VAR}, ${VAR:-default}, and $VAR references with
// the corresponding environment variable, or the given default when the
// variable is unset. $VAR with no default and no matching environment
// variable is left untouched.
func expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)

		// Braced form: ${VAR} or ${VAR:-default}
		if groups[1] != "" {
			name := groups[1]
			hasDefault := strings.Contains(match, ":-")
			if val, ok := os.LookupEnv(name); ok {
				return val
			}
			if hasDefault {
				return groups[3]
			}
			return ""
		}

		// Bare form: $VAR
		name := groups[4]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}
