package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchRequest is the payload accepted by the matching endpoints: the two
// populations to pair. Emptiness of either list is checked by the engine
// so the caller gets an error naming the offending side.
type MatchRequest struct {
	NGOs       []Organization `json:"ngos" validate:"dive"`
	Corporates []Sponsor      `json:"corporates" validate:"dive"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// MatchPair is one scored NGO/corporate pairing.
type MatchPair struct {
	NGOID         ID      `json:"ngo_id"`
	NGOName       string  `json:"ngo_name"`
	CorporateID   ID      `json:"corporate_id"`
	CorporateName string  `json:"corporate_name"`
	MatchScore    float64 `json:"match_score"`
}

// MatchScoresResponse wraps the full pairwise score table.
type MatchScoresResponse struct {
	MatchScores []MatchPair `json:"match_scores"`
}

// MatchedPairsResponse wraps the optimal one-to-one assignment.
type MatchedPairsResponse struct {
	MatchedPairs []MatchPair `json:"matched_pairs"`
}
