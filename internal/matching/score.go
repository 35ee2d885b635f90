// Package matching implements the sponsor-match engine: pairwise
// compatibility scoring between organizations and sponsors, and an optimal
// one-to-one assignment solver over the resulting score matrix.
package matching

import (
	"strings"

	"github.com/jonathan/sponsor-match/internal/types"
)

// Weights for scoring components. These are policy constants: category
// alignment dominates, budget fit matters, geography is a tiebreaker.
const (
	categoryOverlapWeight   = 0.5
	budgetSuitabilityWeight = 0.3
	geoProximityWeight      = 0.2
)

// Score returns the compatibility score between an organization and a
// sponsor, always in [0,1]. It is pure and total: identical inputs yield
// the identical float, and missing fields degrade to empty sets or zero
// rather than failing.
func Score(org *types.Organization, sp *types.Sponsor) float64 {
	category := computeCategoryOverlapScore(org.Sector, sp.ImpactAreas)
	budget := computeBudgetSuitabilityScore(sp.CSRBudget, org.NeedsBudget)
	geo := computeGeoProximityScore(org, sp)

	return (categoryOverlapWeight * category) +
		(budgetSuitabilityWeight * budget) +
		(geoProximityWeight * geo)
}

// tagSet splits a comma-delimited tag field into a normalized set.
// Tags are trimmed and lowercased; blanks are discarded, so an empty or
// missing field yields an empty set.
func tagSet(field string) map[string]bool {
	set := make(map[string]bool)
	for _, tag := range strings.Split(field, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			set[tag] = true
		}
	}
	return set
}

// computeCategoryOverlapScore is the Jaccard similarity of the two tag
// fields. The union size is floored at 1 so two empty sets score 0.0
// instead of dividing by zero.
func computeCategoryOverlapScore(sectors, impactAreas string) float64 {
	a := tagSet(sectors)
	b := tagSet(impactAreas)

	intersection := 0
	for tag := range a {
		if b[tag] {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union < 1 {
		union = 1
	}
	return float64(intersection) / float64(union)
}

// computeBudgetSuitabilityScore is the ratio of the sponsor's available
// budget to the organization's stated need, clamped to 1.0 so oversupply
// never scores beyond parity. The need is floored at 1, which means a
// stated need of 0 is treated as a need of 1 (known policy, kept as is).
func computeBudgetSuitabilityScore(budget, need float64) float64 {
	if need < 1 {
		need = 1
	}
	ratio := budget / need
	if ratio > 1.0 {
		return 1.0
	}
	if ratio < 0.0 {
		return 0.0
	}
	return ratio
}

// computeGeoProximityScore returns 1.0 for the same city, 0.5 for the same
// state, and 0.0 otherwise. Components are compared case-sensitively as
// given and country is never consulted: state-level granularity is treated
// as sufficient signal. Two empty components compare equal, so entities
// that both omit a city count as being in the same city (kept
// deliberately; see DESIGN.md).
func computeGeoProximityScore(org *types.Organization, sp *types.Sponsor) float64 {
	if org.City == sp.City {
		return 1.0
	}
	if org.State == sp.State {
		return 0.5
	}
	return 0.0
}
