package config

import (
	"fmt"

	"github.com/heartmarshall/langmix/internal/domain"
	"github.com/heartmarshall/langmix/internal/generator"
	"github.com/heartmarshall/langmix/internal/output"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. All
// violations wrap domain.ErrInvalidConfig and are reported before any
// generation work starts.
func (c *Config) Validate() error {
	if c.Generator.NumSentences <= 0 {
		return fmt.Errorf("generator.num_sentences must be positive (got %d): %w", c.Generator.NumSentences, domain.ErrInvalidConfig)
	}
	if c.Generator.MinWords < 1 {
		return fmt.Errorf("generator.min_words must be at least 1 (got %d): %w", c.Generator.MinWords, domain.ErrInvalidConfig)
	}
	if c.Generator.MinWords > c.Generator.MaxWords {
		return fmt.Errorf("generator.min_words %d exceeds max_words %d: %w", c.Generator.MinWords, c.Generator.MaxWords, domain.ErrInvalidConfig)
	}
	if _, err := generator.ParseWeights(c.Generator.DifficultyWeights); err != nil {
		return fmt.Errorf("generator.difficulty_weights: %w", err)
	}

	if !output.Format(c.Output.Format).IsValid() {
		return fmt.Errorf("output.format must be json or jsonl (got %q): %w", c.Output.Format, domain.ErrInvalidConfig)
	}

	switch c.Vocabulary.Source {
	case "file":
		if c.Vocabulary.Path == "" {
			return fmt.Errorf("vocabulary.path is required for the file source: %w", domain.ErrInvalidConfig)
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres source: %w", domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("vocabulary.source must be file or postgres (got %q): %w", c.Vocabulary.Source, domain.ErrInvalidConfig)
	}

	return nil
}
