// Package importer loads a vocabulary wordlist into PostgreSQL, one
// language per phase, so a partially failed import can be retried for the
// remaining languages only.
package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/langmix/internal/domain"
	"github.com/heartmarshall/langmix/internal/vocab"
)

// VocabRepo is the persistence surface the importer needs.
type VocabRepo interface {
	ReplaceLanguage(ctx context.Context, importID uuid.UUID, lang string, tiers map[domain.Tier][]string) (int, error)
}

// Result holds the outcome of importing a single language.
type Result struct {
	Inserted int
	Duration time.Duration
	Err      error
}

// Importer orchestrates the per-language import phases.
type Importer struct {
	log     *slog.Logger
	repo    VocabRepo
	dryRun  bool
	results map[string]Result
}

// New creates a new Importer. With dryRun set, wordlists are parsed and
// counted but nothing is written.
func New(log *slog.Logger, repo VocabRepo, dryRun bool) *Importer {
	return &Importer{
		log:     log,
		repo:    repo,
		dryRun:  dryRun,
		results: make(map[string]Result),
	}
}

// Results returns per-language results after Run completes.
func (im *Importer) Results() map[string]Result {
	return im.results
}

// HasErrors returns true if any language failed to import.
func (im *Importer) HasErrors() bool {
	for _, r := range im.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run imports every language of the store under a single import batch ID.
// If langs is non-empty, only the listed languages are imported. A failed
// language is recorded and skipped; the remaining languages still run.
func (im *Importer) Run(ctx context.Context, store *vocab.Store, langs []string) error {
	importID := uuid.New()
	im.log.Info("starting vocabulary import",
		slog.String("import_id", importID.String()),
		slog.Bool("dry_run", im.dryRun),
	)

	toRun := store.Languages()
	if len(langs) > 0 {
		filter := make(map[string]bool, len(langs))
		for _, lang := range langs {
			filter[lang] = true
		}
		var filtered []string
		for _, lang := range toRun {
			if filter[lang] {
				filtered = append(filtered, lang)
			}
		}
		toRun = filtered
	}

	for _, lang := range toRun {
		start := time.Now()

		result := im.importLanguage(ctx, importID, store, lang)
		result.Duration = time.Since(start)
		im.results[lang] = result

		if result.Err != nil {
			im.log.Warn("language import failed",
				slog.String("lang", lang),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			im.log.Info("language imported",
				slog.String("lang", lang),
				slog.Int("inserted", result.Inserted),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	im.log.Info("vocabulary import completed", slog.Int("languages", len(toRun)))
	return ctx.Err()
}

func (im *Importer) importLanguage(ctx context.Context, importID uuid.UUID, store *vocab.Store, lang string) Result {
	tiers := make(map[domain.Tier][]string, len(domain.AllTiers))
	total := 0
	for _, tier := range domain.AllTiers {
		words, err := store.Words(lang, tier)
		if err != nil {
			return Result{Err: err}
		}
		tiers[tier] = words
		total += len(words)
	}

	if im.dryRun {
		return Result{Inserted: total}
	}

	inserted, err := im.repo.ReplaceLanguage(ctx, importID, lang, tiers)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Inserted: inserted}
}
