package domain

import "strings"

// SpanDelimiter joins the chosen words into the sentence text. Splitting the
// text on this delimiter must reproduce the span texts exactly.
const SpanDelimiter = " "

// Span is one annotated word of a generated sentence: the word text and the
// language code it was drawn from.
type Span struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Record is one generated sentence plus its aligned spans, the atomic unit
// of the output dataset. Records carry no identity beyond their position in
// the output sequence and are immutable once emitted.
type Record struct {
	Text  string `json:"text"`
	Spans []Span `json:"spans"`
}

// NewRecord builds a Record from ordered spans, joining their texts with
// SpanDelimiter.
func NewRecord(spans []Span) Record {
	words := make([]string, len(spans))
	for i, s := range spans {
		words[i] = s.Text
	}
	return Record{
		Text:  strings.Join(words, SpanDelimiter),
		Spans: spans,
	}
}

// Length returns the number of word slots in the record.
func (r Record) Length() int { return len(r.Spans) }
