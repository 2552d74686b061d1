package emergency

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of the emergency vocabulary file
type Config struct {
	Vocabulary     []string `yaml:"vocabulary"`
	FoldDiacritics bool     `yaml:"fold_diacritics"`
}

// DefaultConfig returns the built-in vocabulary with folding disabled
func DefaultConfig() Config {
	return Config{
		Vocabulary: DefaultVocabulary().Terms(),
	}
}

// LoadConfig reads a vocabulary file.
// An empty path or a missing file yields DefaultConfig and no error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read vocabulary file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse vocabulary file %s: %w", path, err)
	}

	if len(cfg.Vocabulary) == 0 {
		cfg.Vocabulary = DefaultVocabulary().Terms()
	}
	for i, term := range cfg.Vocabulary {
		if strings.TrimSpace(term) == "" {
			return Config{}, fmt.Errorf("vocabulary entry %d is empty", i)
		}
	}

	return cfg, nil
}

// NewDetectorFromConfig builds a detector honoring the config's options
func NewDetectorFromConfig(cfg Config) *Detector {
	var opts []Option
	if cfg.FoldDiacritics {
		opts = append(opts, WithDiacriticFolding())
	}
	return NewDetector(NewVocabulary(cfg.Vocabulary), opts...)
}
