package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalStringAndNumber(t *testing.T) {
	var org Organization
	require.NoError(t, json.Unmarshal([]byte(`{"id": "ngo-7", "name": "Seven"}`), &org))
	assert.Equal(t, ID("ngo-7"), org.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "name": "Seven"}`), &org))
	assert.Equal(t, ID("7"), org.ID)
}

func TestID_MarshalPreservesNumericForm(t *testing.T) {
	out, err := json.Marshal(Organization{ID: "7", Name: "Seven"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"id":7`)

	out, err = json.Marshal(Organization{ID: "ngo-7", Name: "Seven"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"id":"ngo-7"`)

	// Leading zeros are not a JSON number; keep them quoted.
	out, err = json.Marshal(Organization{ID: "007", Name: "Bond"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"id":"007"`)
}

func TestID_RejectsNonScalar(t *testing.T) {
	var org Organization
	err := json.Unmarshal([]byte(`{"id": {"nested": true}}`), &org)
	require.Error(t, err)
}

func TestMatchRequest_Validate(t *testing.T) {
	valid := MatchRequest{
		NGOs:       []Organization{{ID: "1", NeedsBudget: 100}},
		Corporates: []Sponsor{{ID: "10", CSRBudget: 500}},
	}
	require.NoError(t, valid.Validate())

	missingID := MatchRequest{
		NGOs:       []Organization{{Name: "anonymous"}},
		Corporates: []Sponsor{{ID: "10"}},
	}
	require.Error(t, missingID.Validate())

	negativeBudget := MatchRequest{
		NGOs:       []Organization{{ID: "1"}},
		Corporates: []Sponsor{{ID: "10", CSRBudget: -5}},
	}
	require.Error(t, negativeBudget.Validate())
}

func TestEntities_DecodeFullPayload(t *testing.T) {
	payload := `{
		"ngos": [
			{"id": 1, "name": "NGO1", "sector": "health, education", "needs_budget": 1000, "city": "Pune", "state": "MH", "country": "IN"}
		],
		"corporates": [
			{"id": "c-1", "name": "Corp1", "impact_areas": "health", "csr_budget": 2500.5, "city": "Mumbai", "state": "MH", "country": "IN"}
		]
	}`

	var req MatchRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.Len(t, req.NGOs, 1)
	require.Len(t, req.Corporates, 1)

	assert.Equal(t, ID("1"), req.NGOs[0].ID)
	assert.Equal(t, "health, education", req.NGOs[0].Sector)
	assert.Equal(t, 1000.0, req.NGOs[0].NeedsBudget)
	assert.Equal(t, ID("c-1"), req.Corporates[0].ID)
	assert.Equal(t, 2500.5, req.Corporates[0].CSRBudget)
}
