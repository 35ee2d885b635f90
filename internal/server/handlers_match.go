package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/sponsor-match/internal/matching"
	"github.com/jonathan/sponsor-match/internal/schemas"
	"github.com/jonathan/sponsor-match/internal/types"
)

// maxPayloadBytes bounds the request body; a million-entity payload would
// hit the solver's cubic cost long before memory becomes the problem.
const maxPayloadBytes = 32 << 20

// handleMatchScores returns the full pairwise score table, no matching.
func (s *Server) handleMatchScores(w http.ResponseWriter, r *http.Request) {
	req, reqID, ok := s.decodeMatchRequest(w, r)
	if !ok {
		return
	}

	pairs, err := matching.ComputeScores(req.NGOs, req.Corporates)
	if err != nil {
		log.Printf("[%s] score computation rejected: %v", reqID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.MatchScoresResponse{MatchScores: pairs})
}

// handleMatchOptimal scores both populations and returns the one-to-one
// pairing maximizing total score.
func (s *Server) handleMatchOptimal(w http.ResponseWriter, r *http.Request) {
	req, reqID, ok := s.decodeMatchRequest(w, r)
	if !ok {
		return
	}

	// The solve is the only expensive step; cap how many run at once.
	// A cancelled client connection releases the slot via request context.
	if err := s.solveSem.Acquire(r.Context(), 1); err != nil {
		log.Printf("[%s] request cancelled while waiting for solver slot: %v", reqID, err)
		s.errorResponse(w, http.StatusServiceUnavailable, "request cancelled before matching could start")
		return
	}
	defer s.solveSem.Release(1)

	pairs, err := matching.ComputeOptimalMatching(r.Context(), req.NGOs, req.Corporates)
	if err != nil {
		log.Printf("[%s] matching failed: %v", reqID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	log.Printf("[%s] matched %d pairs (%d NGOs x %d corporates)", reqID, len(pairs), len(req.NGOs), len(req.Corporates))
	s.jsonResponse(w, http.StatusOK, types.MatchedPairsResponse{MatchedPairs: pairs})
}

// decodeMatchRequest reads, schema-validates and decodes a match payload.
// On failure it writes the error response and returns ok=false.
func (s *Server) decodeMatchRequest(w http.ResponseWriter, r *http.Request) (*types.MatchRequest, string, bool) {
	reqID := uuid.New().String()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return nil, reqID, false
	}

	if err := schemas.ValidateMatchRequest(body); err != nil {
		log.Printf("[%s] payload rejected by schema: %v", reqID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, reqID, false
	}

	var req types.MatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, reqID, false
	}

	if err := req.Validate(); err != nil {
		log.Printf("[%s] payload rejected by validator: %v", reqID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, reqID, false
	}

	return &req, reqID, true
}
