package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/langmix/internal/domain"
)

const sampleDoc = `{
	"ru": {"easy": ["дом", "кот"], "medium": ["заря"], "hard": ["всегда"]},
	"en": {"easy": ["cat", "dog"], "medium": ["ephemeral"], "hard": ["zeitgeist"]}
}`

func TestLoad(t *testing.T) {
	store, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	// Languages come back sorted regardless of document order.
	assert.Equal(t, []string{"en", "ru"}, store.Languages())

	words, err := store.Words("en", domain.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, words)

	words, err = store.Words("ru", domain.TierHard)
	require.NoError(t, err)
	assert.Equal(t, []string{"всегда"}, words)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not an object", `["en"]`},
		{"bucket not an object", `{"en": ["cat"]}`},
		{"missing tier", `{"en": {"easy": [], "medium": []}}`},
		{"tier not a list", `{"en": {"easy": "cat", "medium": [], "hard": []}}`},
		{"tier list of objects", `{"en": {"easy": [{"w": "cat"}], "medium": [], "hard": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedVocabulary)
		})
	}
}

func TestLoad_DedupePreservesOrder(t *testing.T) {
	doc := `{"en": {"easy": [" cat ", "dog", "cat", "", "  ", "dog"], "medium": [], "hard": []}}`
	store, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	words, err := store.Words("en", domain.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, words)
}

func TestStore_Words_UnknownKeys(t *testing.T) {
	store, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	_, err = store.Words("xx", domain.TierEasy)
	assert.ErrorIs(t, err, domain.ErrUnknownLanguage)

	_, err = store.Words("en", domain.Tier("impossible"))
	assert.ErrorIs(t, err, domain.ErrUnknownTier)
}

func TestStore_ValidateCounts(t *testing.T) {
	// fr has 18 easy words instead of 20: exactly one warning, no failure.
	words := map[string]map[domain.Tier][]string{
		"fr": {
			domain.TierEasy:   makeWords("fr-easy", 18),
			domain.TierMedium: makeWords("fr-medium", 50),
			domain.TierHard:   makeWords("fr-hard", 30),
		},
	}
	store := FromTierMap(words)

	warnings := store.ValidateCounts(domain.ExpectedTierCounts)
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.CountWarning{
		Lang:     "fr",
		Tier:     domain.TierEasy,
		Expected: 20,
		Actual:   18,
	}, warnings[0])
}

func TestStore_ValidateCounts_AllCanonical(t *testing.T) {
	words := map[string]map[domain.Tier][]string{
		"en": {
			domain.TierEasy:   makeWords("e", 20),
			domain.TierMedium: makeWords("m", 50),
			domain.TierHard:   makeWords("h", 30),
		},
	}
	store := FromTierMap(words)
	assert.Empty(t, store.ValidateCounts(domain.ExpectedTierCounts))
}

func TestStore_EmptyLanguages(t *testing.T) {
	words := map[string]map[domain.Tier][]string{
		"en": {domain.TierEasy: {"cat"}, domain.TierMedium: {}, domain.TierHard: {}},
		"xx": {domain.TierEasy: {}, domain.TierMedium: {}, domain.TierHard: {}},
		"yy": {domain.TierEasy: {}, domain.TierMedium: {}, domain.TierHard: {}},
	}
	store := FromTierMap(words)
	assert.Equal(t, []string{"xx", "yy"}, store.EmptyLanguages())
}

func makeWords(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + "-" + string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	return out
}
