package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/sponsor-match/internal/config"
	"github.com/jonathan/sponsor-match/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{Port: 8080, MaxConcurrentMatches: 2}
	srv, err := New(cfg)
	require.NoError(t, err)
	return srv
}

func doRequest(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

const scenarioPayload = `{
	"ngos": [
		{"id": 1, "name": "NGO1", "sector": "health", "needs_budget": 1000, "city": "X"}
	],
	"corporates": [
		{"id": 10, "name": "Corp1", "impact_areas": "health", "csr_budget": 500, "city": "X"}
	]
}`

func TestHandleMatchOptimal_SinglePair(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/match/optimal", scenarioPayload)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.MatchedPairsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.MatchedPairs, 1)

	pair := resp.MatchedPairs[0]
	assert.Equal(t, types.ID("1"), pair.NGOID)
	assert.Equal(t, types.ID("10"), pair.CorporateID)
	assert.InDelta(t, 0.85, pair.MatchScore, 1e-9)

	// Numeric identifiers come back unquoted, as they went in.
	assert.Contains(t, rec.Body.String(), `"ngo_id":1`)
}

func TestHandleMatchOptimal_UnequalPopulations(t *testing.T) {
	payload := `{
		"ngos": [
			{"id": 1, "name": "NGO1", "sector": "health"},
			{"id": 2, "name": "NGO2", "sector": "education"},
			{"id": 3, "name": "NGO3", "sector": "water"}
		],
		"corporates": [
			{"id": 10, "name": "Corp1", "impact_areas": "education", "csr_budget": 100},
			{"id": 11, "name": "Corp2", "impact_areas": "water", "csr_budget": 100}
		]
	}`

	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/match/optimal", payload)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.MatchedPairsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.MatchedPairs, 2)
}

func TestHandleMatchOptimal_EmptyNGOs(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/match/optimal", `{"ngos": [], "corporates": [{"id": 10}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "ngos")
}

func TestHandleMatchOptimal_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/match/optimal", `{"ngos": [`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatchOptimal_SchemaRejection(t *testing.T) {
	// ngos must be an array of objects with ids.
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/match/optimal", `{"ngos": "nope", "corporates": []}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "ngos")
}

func TestHandleMatchScores_FullTable(t *testing.T) {
	payload := `{
		"ngos": [
			{"id": 1, "name": "NGO1", "sector": "health"},
			{"id": 2, "name": "NGO2", "sector": "education"}
		],
		"corporates": [
			{"id": 10, "name": "Corp1", "impact_areas": "health"},
			{"id": 11, "name": "Corp2", "impact_areas": "education"},
			{"id": 12, "name": "Corp3", "impact_areas": "water"}
		]
	}`

	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/match/scores", payload)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.MatchScoresResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.MatchScores, 6)
}

func TestHandleMatchScores_EmptyCorporates(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodPost, "/match/scores", `{"ngos": [{"id": 1}], "corporates": []}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "corporates")
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(&config.Config{Port: -1})
	require.Error(t, err)
}
