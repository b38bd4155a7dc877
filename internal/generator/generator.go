// Package generator assembles pseudo-sentences from per-language,
// per-difficulty word lists. It owns all randomness: every sampling
// decision in a run is made here, from a single seeded source.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/heartmarshall/langmix/internal/domain"
	"github.com/heartmarshall/langmix/internal/vocab"
)

// Config holds the generation parameters. Validated eagerly in New.
type Config struct {
	// NumSentences is the number of records a full run produces.
	NumSentences int

	// MinWords and MaxWords bound the per-sentence length, inclusive.
	MinWords int
	MaxWords int

	// Seed initializes the random source. Equal seeds over equal
	// vocabulary and configuration reproduce the output byte for byte.
	Seed int64

	// Weights is the tier sampling distribution. nil means uniform.
	Weights Weights
}

func (c Config) validate() error {
	if c.NumSentences <= 0 {
		return fmt.Errorf("num sentences must be positive (got %d): %w", c.NumSentences, domain.ErrInvalidConfig)
	}
	if c.MinWords < 1 {
		return fmt.Errorf("min words must be at least 1 (got %d): %w", c.MinWords, domain.ErrInvalidConfig)
	}
	if c.MinWords > c.MaxWords {
		return fmt.Errorf("min words %d exceeds max words %d: %w", c.MinWords, c.MaxWords, domain.ErrInvalidConfig)
	}
	if c.Weights != nil {
		if err := c.Weights.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Generator produces dataset records from a vocabulary store. It is
// stateful (the random source advances with each draw) and not safe for
// concurrent use; a sequence is restarted by constructing a new Generator
// with the same seed.
type Generator struct {
	store *vocab.Store
	cfg   Config
	rng   *rand.Rand
	langs []string
	tiers *tierSampler
}

// New validates cfg and builds a Generator over store. The vocabulary must
// expose at least one language.
func New(store *vocab.Store, cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	langs := store.Languages()
	if len(langs) == 0 {
		return nil, fmt.Errorf("vocabulary has no languages: %w", domain.ErrInvalidConfig)
	}

	weights := cfg.Weights
	if weights == nil {
		weights = Uniform()
	}

	return &Generator{
		store: store,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		langs: langs,
		tiers: newTierSampler(weights),
	}, nil
}

// Next produces one record. Draw order is fixed so reimplementations can
// reproduce a run: sentence length first, then per word slot the language,
// the tier, and the word index, in that order.
func (g *Generator) Next() (domain.Record, error) {
	length := g.cfg.MinWords + g.rng.Intn(g.cfg.MaxWords-g.cfg.MinWords+1)

	spans := make([]domain.Span, 0, length)
	for slot := 0; slot < length; slot++ {
		lang := g.langs[g.rng.Intn(len(g.langs))]
		tier := g.tiers.sample(g.rng)

		words, err := g.store.Words(lang, tier)
		if err != nil {
			return domain.Record{}, err
		}
		if len(words) == 0 {
			return domain.Record{}, fmt.Errorf("%s/%s has no words: %w", lang, tier, domain.ErrEmptyVocabularySlot)
		}

		spans = append(spans, domain.Span{
			Text: words[g.rng.Intn(len(words))],
			Lang: lang,
		})
	}

	return domain.NewRecord(spans), nil
}

// Generate produces the configured number of records. The first fatal
// sampling error aborts the run; no partial result is returned.
func (g *Generator) Generate() ([]domain.Record, error) {
	records := make([]domain.Record, 0, g.cfg.NumSentences)
	for i := 0; i < g.cfg.NumSentences; i++ {
		rec, err := g.Next()
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
