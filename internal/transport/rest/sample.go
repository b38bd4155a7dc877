package rest

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/langmix/internal/config"
	"github.com/heartmarshall/langmix/internal/domain"
	"github.com/heartmarshall/langmix/internal/generator"
	"github.com/heartmarshall/langmix/internal/vocab"
)

// SampleHandler serves on-demand generation previews. Each request builds
// its own Generator, so concurrent requests never share a random source.
type SampleHandler struct {
	store    *vocab.Store
	defaults config.GeneratorConfig
	maxSize  int
}

// NewSampleHandler creates a SampleHandler. Request parameters fall back to
// the configured generator defaults; n is additionally capped at maxSize.
func NewSampleHandler(store *vocab.Store, defaults config.GeneratorConfig, maxSize int) *SampleHandler {
	return &SampleHandler{store: store, defaults: defaults, maxSize: maxSize}
}

// SampleResponse is the JSON response for /v1/sample.
type SampleResponse struct {
	ID      string          `json:"id"`
	Seed    int64           `json:"seed"`
	Records []domain.Record `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Sample handles GET /v1/sample. Query parameters:
//
//	n           number of sentences (default 10, capped)
//	min_words   minimum sentence length
//	max_words   maximum sentence length
//	seed        random seed; omitted means a fresh random seed
//	weights     difficulty weights, e.g. "easy:1,hard:2"
func (h *SampleHandler) Sample(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	n, err := intParam(q.Get("n"), 10)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "n must be an integer"})
		return
	}
	if n > h.maxSize {
		n = h.maxSize
	}

	minWords, err := intParam(q.Get("min_words"), h.defaults.MinWords)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "min_words must be an integer"})
		return
	}
	maxWords, err := intParam(q.Get("max_words"), h.defaults.MaxWords)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "max_words must be an integer"})
		return
	}

	seed := rand.Int63()
	if raw := q.Get("seed"); raw != "" {
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "seed must be an integer"})
			return
		}
	}

	weightSpec := q.Get("weights")
	if weightSpec == "" {
		weightSpec = h.defaults.DifficultyWeights
	}
	weights, err := generator.ParseWeights(weightSpec)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	gen, err := generator.New(h.store, generator.Config{
		NumSentences: n,
		MinWords:     minWords,
		MaxWords:     maxWords,
		Seed:         seed,
		Weights:      weights,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	records, err := gen.Generate()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrEmptyVocabularySlot) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, SampleResponse{
		ID:      uuid.New().String(),
		Seed:    seed,
		Records: records,
	})
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
