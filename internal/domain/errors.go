package domain

import "errors"

// Sentinel errors used across all layers. All of them are fatal: the run
// aborts with a descriptive message identifying the offending key.
var (
	// ErrMalformedVocabulary marks a vocabulary input that is missing a
	// required tier or has the wrong shape. Detected at load time.
	ErrMalformedVocabulary = errors.New("malformed vocabulary")

	// ErrUnknownLanguage marks a lookup for a language code absent from
	// the vocabulary store.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrUnknownTier marks a lookup for a difficulty tier absent from the
	// vocabulary store.
	ErrUnknownTier = errors.New("unknown tier")

	// ErrInvalidConfig marks a misconfiguration (length bounds, sentence
	// count, difficulty weights). Detected before any generation begins.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyVocabularySlot marks a sampled (language, tier) pair with
	// zero words available. Not retried: the same inputs would reproduce
	// the same empty set deterministically.
	ErrEmptyVocabularySlot = errors.New("empty vocabulary slot")
)
