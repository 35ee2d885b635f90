package matching

import (
	"context"

	"github.com/jonathan/sponsor-match/internal/types"
)

// ComputeScores returns the full pairwise score table between the two
// populations: |ngos| x |corporates| entries in row-major order, no
// matching performed. Either list being empty is an input error.
func ComputeScores(ngos []types.Organization, corporates []types.Sponsor) ([]types.MatchPair, error) {
	if err := checkPopulations(ngos, corporates); err != nil {
		return nil, err
	}

	pairs := make([]types.MatchPair, 0, len(ngos)*len(corporates))
	for i := range ngos {
		for j := range corporates {
			pairs = append(pairs, newPair(&ngos[i], &corporates[j], Score(&ngos[i], &corporates[j])))
		}
	}
	return pairs, nil
}

// ComputeOptimalMatching scores every pair and solves for the one-to-one
// assignment maximizing total score. Exactly min(|ngos|, |corporates|)
// pairs come back, ordered by NGO position in the input; surplus entities
// on the larger side stay unmatched. The whole matrix is built fresh per
// call and discarded with it; nothing is cached across calls.
func ComputeOptimalMatching(ctx context.Context, ngos []types.Organization, corporates []types.Sponsor) ([]types.MatchPair, error) {
	if err := checkPopulations(ngos, corporates); err != nil {
		return nil, err
	}

	matrix := BuildScoreMatrix(ngos, corporates)
	assigned, err := Solve(ctx, matrix)
	if err != nil {
		return nil, err
	}

	pairs := make([]types.MatchPair, 0, len(assigned))
	for _, p := range assigned {
		pairs = append(pairs, newPair(&ngos[p.Row], &corporates[p.Col], p.Score))
	}
	return pairs, nil
}

func checkPopulations(ngos []types.Organization, corporates []types.Sponsor) error {
	if len(ngos) == 0 {
		return &ErrEmptyPopulation{Side: "ngos"}
	}
	if len(corporates) == 0 {
		return &ErrEmptyPopulation{Side: "corporates"}
	}
	return nil
}

func newPair(org *types.Organization, sp *types.Sponsor, score float64) types.MatchPair {
	return types.MatchPair{
		NGOID:         org.ID,
		NGOName:       org.Name,
		CorporateID:   sp.ID,
		CorporateName: sp.Name,
		MatchScore:    score,
	}
}
