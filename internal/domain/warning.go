package domain

import "fmt"

// CountWarning reports a vocabulary tier whose word count deviates from the
// canonical size. Warnings are observability only and never abort a run.
type CountWarning struct {
	Lang     string
	Tier     Tier
	Expected int
	Actual   int
}

func (w CountWarning) String() string {
	return fmt.Sprintf("%s/%s has %d words (expected %d)", w.Lang, w.Tier, w.Actual, w.Expected)
}
