package output

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/langmix/internal/domain"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		domain.NewRecord([]domain.Span{
			{Text: "cat", Lang: "en"},
			{Text: "дом", Lang: "ru"},
		}),
		domain.NewRecord([]domain.Span{
			{Text: "soleil", Lang: "fr"},
		}),
	}
}

func TestWrite_JSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "dataset.jsonl")
	require.NoError(t, Write(path, FormatJSONL, sampleRecords()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []domain.Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec domain.Record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		lines = append(lines, rec)
	}
	require.NoError(t, scanner.Err())

	assert.Equal(t, sampleRecords(), lines)
}

func TestWrite_JSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, Write(path, FormatJSON, sampleRecords()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []domain.Record
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, sampleRecords(), got)

	// Multilingual text stays readable, not \u-escaped.
	assert.Contains(t, string(raw), "дом")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "x"), Format("xml"), sampleRecords())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatJSONL.IsValid())
	assert.False(t, Format("csv").IsValid())
}
