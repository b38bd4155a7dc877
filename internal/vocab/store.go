// Package vocab owns the per-language, per-tier word lists the generator
// samples from. A Store is built once at startup and immutable thereafter.
package vocab

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/heartmarshall/langmix/internal/domain"
)

// Store holds an ordered word list for every (language, tier) pair.
type Store struct {
	langs []string // sorted, for deterministic iteration
	words map[string]map[domain.Tier][]string
}

// Load parses a vocabulary document of the shape
//
//	{"en": {"easy": [...], "medium": [...], "hard": [...]}, ...}
//
// into a Store. Every language must carry all three tiers and every tier
// must be an array of strings; anything else fails with
// domain.ErrMalformedVocabulary naming the offending key. Words are
// whitespace-normalized and de-duplicated preserving first occurrence;
// blank entries are dropped.
func Load(r io.Reader) (*Store, error) {
	var doc map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %v: %w", err, domain.ErrMalformedVocabulary)
	}

	words := make(map[string]map[domain.Tier][]string, len(doc))
	for lang, raw := range doc {
		var buckets map[domain.Tier]json.RawMessage
		if err := json.Unmarshal(raw, &buckets); err != nil {
			return nil, fmt.Errorf("language %q must map to an object with easy/medium/hard arrays: %w", lang, domain.ErrMalformedVocabulary)
		}

		tiers := make(map[domain.Tier][]string, len(domain.AllTiers))
		for _, tier := range domain.AllTiers {
			rawList, ok := buckets[tier]
			if !ok {
				return nil, fmt.Errorf("language %q is missing tier %q: %w", lang, tier, domain.ErrMalformedVocabulary)
			}
			var list []string
			if err := json.Unmarshal(rawList, &list); err != nil {
				return nil, fmt.Errorf("%s/%s must be a list of strings: %w", lang, tier, domain.ErrMalformedVocabulary)
			}
			tiers[tier] = dedupe(list)
		}
		words[lang] = tiers
	}

	return FromTierMap(words), nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	store, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return store, nil
}

// FromTierMap builds a Store directly from an already-parsed tier map.
// Used by the postgres-backed loader. The map is not copied; callers must
// not mutate it afterwards.
func FromTierMap(words map[string]map[domain.Tier][]string) *Store {
	langs := make([]string, 0, len(words))
	for lang := range words {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	return &Store{langs: langs, words: words}
}

// Words returns the ordered word list for the given (language, tier).
func (s *Store) Words(lang string, tier domain.Tier) ([]string, error) {
	tiers, ok := s.words[lang]
	if !ok {
		return nil, fmt.Errorf("language %q: %w", lang, domain.ErrUnknownLanguage)
	}
	list, ok := tiers[tier]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", lang, tier, domain.ErrUnknownTier)
	}
	return list, nil
}

// Languages returns the available language codes in sorted order.
func (s *Store) Languages() []string {
	return s.langs
}

// ValidateCounts compares every tier's actual word count against the
// expected ones and returns one warning per mismatch, ordered by language
// then canonical tier order. Detection only: surfacing the warnings is the
// caller's concern, and the store stays fully usable regardless.
func (s *Store) ValidateCounts(expected map[domain.Tier]int) []domain.CountWarning {
	var warnings []domain.CountWarning
	for _, lang := range s.langs {
		for _, tier := range domain.AllTiers {
			want, ok := expected[tier]
			if !ok {
				continue
			}
			if got := len(s.words[lang][tier]); got != want {
				warnings = append(warnings, domain.CountWarning{
					Lang:     lang,
					Tier:     tier,
					Expected: want,
					Actual:   got,
				})
			}
		}
	}
	return warnings
}

// EmptyLanguages returns the languages whose tiers are all empty, in sorted
// order. Such languages make every sentence drawing them fail, so callers
// warn about them up front.
func (s *Store) EmptyLanguages() []string {
	var empty []string
	for _, lang := range s.langs {
		total := 0
		for _, tier := range domain.AllTiers {
			total += len(s.words[lang][tier])
		}
		if total == 0 {
			empty = append(empty, lang)
		}
	}
	return empty
}

// dedupe trims and de-duplicates a word list preserving first occurrence.
func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = domain.NormalizeWord(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
