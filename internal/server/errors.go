package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/sponsor-match/internal/matching"
	"github.com/jonathan/sponsor-match/internal/schemas"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Empty populations and malformed payloads are the caller's fault; an
// invalid matrix reaching the solver is a bug on our side of the boundary.
func HTTPStatus(err error) int {
	var emptyPop *matching.ErrEmptyPopulation
	var schemaErr *schemas.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &emptyPop), errors.As(err, &schemaErr), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
