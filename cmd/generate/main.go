// Command generate produces a synthetic multilingual dataset: pseudo-
// sentences assembled from per-language, per-difficulty word lists, each
// word annotated with its source language.
//
// Flags (overriding config values):
//
//	-n                   number of sentences
//	--min-words          minimum words per sentence
//	--max-words          maximum words per sentence
//	-o                   output file path
//	--format             output format: json or jsonl
//	--seed               random seed for reproducibility
//	--wordlist           path to the vocabulary JSON file
//	--difficulty-weights sampling weights like "easy:0.2,medium:0.5,hard:0.3"
//	--source             vocabulary source: file or postgres
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/langmix/internal/adapter/postgres"
	"github.com/heartmarshall/langmix/internal/adapter/postgres/vocabentry"
	"github.com/heartmarshall/langmix/internal/app"
	"github.com/heartmarshall/langmix/internal/config"
	"github.com/heartmarshall/langmix/internal/domain"
	"github.com/heartmarshall/langmix/internal/generator"
	"github.com/heartmarshall/langmix/internal/output"
	"github.com/heartmarshall/langmix/internal/report"
	"github.com/heartmarshall/langmix/internal/vocab"
)

func main() {
	numFlag := flag.Int("n", 0, "number of sentences to generate")
	minWordsFlag := flag.Int("min-words", 0, "minimum words per sentence")
	maxWordsFlag := flag.Int("max-words", 0, "maximum words per sentence")
	outputFlag := flag.String("o", "", "output file path")
	formatFlag := flag.String("format", "", "output format: json or jsonl")
	seedFlag := flag.Int64("seed", 0, "random seed for reproducibility")
	wordlistFlag := flag.String("wordlist", "", "path to the vocabulary JSON file")
	weightsFlag := flag.String("difficulty-weights", "", `sampling weights like "easy:0.2,medium:0.5,hard:0.3"`)
	sourceFlag := flag.String("source", "", "vocabulary source: file or postgres")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Generator.NumSentences = *numFlag
		case "min-words":
			cfg.Generator.MinWords = *minWordsFlag
		case "max-words":
			cfg.Generator.MaxWords = *maxWordsFlag
		case "o":
			cfg.Output.Path = *outputFlag
		case "format":
			cfg.Output.Format = *formatFlag
		case "seed":
			cfg.Generator.Seed = *seedFlag
		case "wordlist":
			cfg.Vocabulary.Path = *wordlistFlag
		case "difficulty-weights":
			cfg.Generator.DifficultyWeights = *weightsFlag
		case "source":
			cfg.Vocabulary.Source = *sourceFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("validate config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	store, err := loadStore(ctx, cfg)
	if err != nil {
		logger.Error("load vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Count anomalies are observability only; the run proceeds.
	for _, w := range store.ValidateCounts(domain.ExpectedTierCounts) {
		logger.Warn("vocabulary count mismatch",
			slog.String("lang", w.Lang),
			slog.String("tier", w.Tier.String()),
			slog.Int("expected", w.Expected),
			slog.Int("actual", w.Actual),
		)
	}
	for _, lang := range store.EmptyLanguages() {
		logger.Warn("no words found for language", slog.String("lang", lang))
	}

	weights, err := generator.ParseWeights(cfg.Generator.DifficultyWeights)
	if err != nil {
		logger.Error("parse difficulty weights", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gen, err := generator.New(store, generator.Config{
		NumSentences: cfg.Generator.NumSentences,
		MinWords:     cfg.Generator.MinWords,
		MaxWords:     cfg.Generator.MaxWords,
		Seed:         cfg.Generator.Seed,
		Weights:      weights,
	})
	if err != nil {
		logger.Error("build generator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	start := time.Now()
	records, err := gen.Generate()
	if err != nil {
		logger.Error("generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := output.Write(cfg.Output.Path, output.Format(cfg.Output.Format), records); err != nil {
		logger.Error("write output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	report.Summarize(records).Log(logger)
	logger.Info("dataset written",
		slog.Int("sentences", len(records)),
		slog.String("path", cfg.Output.Path),
		slog.String("format", cfg.Output.Format),
		slog.Duration("duration", time.Since(start)),
	)
}

// loadStore builds the vocabulary store from the configured source.
func loadStore(ctx context.Context, cfg *config.Config) (*vocab.Store, error) {
	switch cfg.Vocabulary.Source {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		repo := vocabentry.New(pool, postgres.NewTxManager(pool))
		words, err := repo.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		return vocab.FromTierMap(words), nil
	default:
		return vocab.LoadFile(cfg.Vocabulary.Path)
	}
}
