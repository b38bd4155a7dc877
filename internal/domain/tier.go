package domain

// Tier represents one of the three fixed difficulty levels partitioning
// each language's vocabulary.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// AllTiers lists the tiers in canonical order. Loaders and samplers iterate
// this slice instead of ranging over maps so runs stay deterministic.
var AllTiers = []Tier{TierEasy, TierMedium, TierHard}

// ExpectedTierCounts holds the canonical wordlist sizes per tier.
// Deviations are reported as warnings, never errors.
var ExpectedTierCounts = map[Tier]int{
	TierEasy:   20,
	TierMedium: 50,
	TierHard:   30,
}

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}
