package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/heartmarshall/langmix/internal/domain"
)

// Weights maps a difficulty tier to a non-negative sampling weight.
// Weights need not sum to 1 — they are normalized at sampling time.
type Weights map[domain.Tier]float64

// Uniform returns equal weights over the three tiers.
func Uniform() Weights {
	w := make(Weights, len(domain.AllTiers))
	for _, tier := range domain.AllTiers {
		w[tier] = 1
	}
	return w
}

// ParseWeights parses a comma-separated "tier:weight" spec, e.g.
// "easy:0.2,medium:0.5,hard:0.3". Tiers left out get weight 0.
// Unknown tiers, malformed pairs, negative weights, and a non-positive
// total are configuration errors.
func ParseWeights(spec string) (Weights, error) {
	w := make(Weights, len(domain.AllTiers))
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("difficulty weight %q must be tier:weight: %w", part, domain.ErrInvalidConfig)
		}
		tier := domain.Tier(strings.ToLower(strings.TrimSpace(key)))
		if !tier.IsValid() {
			return nil, fmt.Errorf("unknown tier %q in difficulty weights: %w", key, domain.ErrInvalidConfig)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("difficulty weight for %s: %v: %w", tier, err, domain.ErrInvalidConfig)
		}
		w[tier] = weight
	}

	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w Weights) validate() error {
	sum := 0.0
	for tier, weight := range w {
		if !tier.IsValid() {
			return fmt.Errorf("unknown tier %q in difficulty weights: %w", tier, domain.ErrInvalidConfig)
		}
		if weight < 0 {
			return fmt.Errorf("difficulty weight for %s must be non-negative (got %v): %w", tier, weight, domain.ErrInvalidConfig)
		}
		sum += weight
	}
	if sum <= 0 {
		return fmt.Errorf("difficulty weights must sum to a positive value: %w", domain.ErrInvalidConfig)
	}
	return nil
}

// tierSampler draws tiers from the normalized weight distribution via a
// precomputed CDF. Tiers with zero weight are excluded outright so they
// can never be selected through rounding fallback.
type tierSampler struct {
	tiers []domain.Tier
	cdf   []float64
}

func newTierSampler(w Weights) *tierSampler {
	sum := 0.0
	for _, tier := range domain.AllTiers {
		sum += w[tier]
	}

	s := &tierSampler{}
	acc := 0.0
	for _, tier := range domain.AllTiers {
		if w[tier] <= 0 {
			continue
		}
		acc += w[tier] / sum
		s.tiers = append(s.tiers, tier)
		s.cdf = append(s.cdf, acc)
	}
	return s
}

// sample consumes exactly one draw from rng.
func (s *tierSampler) sample(rng *rand.Rand) domain.Tier {
	r := rng.Float64()
	for i, c := range s.cdf {
		if r < c {
			return s.tiers[i]
		}
	}
	// Rounding errors can leave the final cumulative value a hair below 1.
	return s.tiers[len(s.tiers)-1]
}
