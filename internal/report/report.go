// Package report aggregates a generated dataset into a distribution
// summary: language slot shares and the sentence-length histogram. It is a
// consumer of records, outside the sampling contract.
package report

import (
	"log/slog"
	"sort"

	"github.com/heartmarshall/langmix/internal/domain"
)

// Summary describes the distributional shape of one generation run.
type Summary struct {
	Sentences    int
	WordSlots    int
	LangSlots    map[string]int
	LengthCounts map[int]int
}

// Summarize builds a Summary from the emitted records.
func Summarize(records []domain.Record) Summary {
	s := Summary{
		Sentences:    len(records),
		LangSlots:    make(map[string]int),
		LengthCounts: make(map[int]int),
	}
	for _, rec := range records {
		s.LengthCounts[rec.Length()]++
		for _, span := range rec.Spans {
			s.LangSlots[span.Lang]++
			s.WordSlots++
		}
	}
	return s
}

// LangShare returns the fraction of all word slots attributed to lang.
func (s Summary) LangShare(lang string) float64 {
	if s.WordSlots == 0 {
		return 0
	}
	return float64(s.LangSlots[lang]) / float64(s.WordSlots)
}

// Log writes the summary through the logger, one line per language and one
// per observed sentence length, in stable order.
func (s Summary) Log(log *slog.Logger) {
	log.Info("distribution summary",
		slog.Int("sentences", s.Sentences),
		slog.Int("word_slots", s.WordSlots),
	)

	langs := make([]string, 0, len(s.LangSlots))
	for lang := range s.LangSlots {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		log.Info("language share",
			slog.String("lang", lang),
			slog.Int("slots", s.LangSlots[lang]),
			slog.Float64("share", s.LangShare(lang)),
		)
	}

	lengths := make([]int, 0, len(s.LengthCounts))
	for l := range s.LengthCounts {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	for _, l := range lengths {
		log.Info("sentence length",
			slog.Int("words", l),
			slog.Int("sentences", s.LengthCounts[l]),
		)
	}
}
