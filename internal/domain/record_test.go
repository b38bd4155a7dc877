package domain

import (
	"strings"
	"testing"
)

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name     string
		spans    []Span
		wantText string
	}{
		{
			name: "mixed languages",
			spans: []Span{
				{Text: "cat", Lang: "en"},
				{Text: "дом", Lang: "ru"},
				{Text: "soleil", Lang: "fr"},
			},
			wantText: "cat дом soleil",
		},
		{
			name:     "single word",
			spans:    []Span{{Text: "zeitgeist", Lang: "de"}},
			wantText: "zeitgeist",
		},
		{
			name:     "no spans",
			spans:    []Span{},
			wantText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord(tt.spans)
			if rec.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", rec.Text, tt.wantText)
			}
			if rec.Length() != len(tt.spans) {
				t.Errorf("Length() = %d, want %d", rec.Length(), len(tt.spans))
			}
		})
	}
}

// Splitting Text on the delimiter must reproduce the span texts exactly.
func TestRecord_RoundTrip(t *testing.T) {
	rec := NewRecord([]Span{
		{Text: "hola", Lang: "es"},
		{Text: "world", Lang: "en"},
		{Text: "猫", Lang: "zh"},
	})

	parts := strings.Split(rec.Text, SpanDelimiter)
	if len(parts) != len(rec.Spans) {
		t.Fatalf("split produced %d parts, want %d", len(parts), len(rec.Spans))
	}
	for i, p := range parts {
		if p != rec.Spans[i].Text {
			t.Errorf("part %d = %q, want %q", i, p, rec.Spans[i].Text)
		}
	}
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "cat", "cat"},
		{"surrounding space", "  cat ", "cat"},
		{"internal run", "ice  cream", "ice cream"},
		{"tabs and newlines", "\tice\ncream\t", "ice cream"},
		{"case preserved", "Zeitgeist", "Zeitgeist"},
		{"apostrophe preserved", "l'été", "l'été"},
		{"blank", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWord(tt.in); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
