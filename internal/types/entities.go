// Package types provides type definitions for structured data used throughout the sponsor-match system.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ID is an opaque entity identifier. Payloads may carry it as either a JSON
// string or a JSON number; both decode to the same stable value for the
// lifetime of a request, and numeric identifiers are re-emitted unquoted.
type ID string

// UnmarshalJSON accepts both `"n-42"` and `42`.
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON re-emits identifiers that arrived as numbers without quotes.
func (id ID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if isJSONNumber(s) {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func isJSONNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" || (strings.HasPrefix(s, "0") && len(s) > 1) {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Organization is an entity on the demand side of a match: a non-profit
// with a set of sectors it operates in and a stated budget need.
// Every field except ID is optional; missing values degrade to empty
// strings or zero and never fail scoring.
type Organization struct {
	ID          ID      `json:"id" validate:"required"`
	Name        string  `json:"name"`
	Sector      string  `json:"sector,omitempty"` // comma-delimited tags, e.g. "health, education"
	NeedsBudget float64 `json:"needs_budget,omitempty" validate:"gte=0"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
}

// Sponsor is an entity on the supply side of a match: a corporate with
// impact areas its CSR program targets and a budget it can commit.
type Sponsor struct {
	ID          ID      `json:"id" validate:"required"`
	Name        string  `json:"name"`
	ImpactAreas string  `json:"impact_areas,omitempty"` // comma-delimited tags
	CSRBudget   float64 `json:"csr_budget,omitempty" validate:"gte=0"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
}
