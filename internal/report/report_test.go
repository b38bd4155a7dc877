package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/langmix/internal/domain"
)

func TestSummarize(t *testing.T) {
	records := []domain.Record{
		domain.NewRecord([]domain.Span{
			{Text: "cat", Lang: "en"},
			{Text: "дом", Lang: "ru"},
			{Text: "dog", Lang: "en"},
		}),
		domain.NewRecord([]domain.Span{
			{Text: "кот", Lang: "ru"},
			{Text: "sun", Lang: "en"},
		}),
		domain.NewRecord([]domain.Span{
			{Text: "заря", Lang: "ru"},
			{Text: "утро", Lang: "ru"},
		}),
	}

	s := Summarize(records)

	assert.Equal(t, 3, s.Sentences)
	assert.Equal(t, 7, s.WordSlots)
	assert.Equal(t, map[string]int{"en": 3, "ru": 4}, s.LangSlots)
	assert.Equal(t, map[int]int{3: 1, 2: 2}, s.LengthCounts)
	assert.InDelta(t, 3.0/7.0, s.LangShare("en"), 1e-9)
	assert.Zero(t, s.LangShare("fr"))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Sentences)
	assert.Zero(t, s.WordSlots)
	assert.Zero(t, s.LangShare("en"))
}
