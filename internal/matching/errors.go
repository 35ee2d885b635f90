package matching

import "fmt"

// ErrEmptyPopulation indicates one of the two entity lists was empty.
type ErrEmptyPopulation struct {
	Side string // "ngos" or "corporates"
}

func (e *ErrEmptyPopulation) Error() string {
	return fmt.Sprintf("invalid input: %q list is empty, both populations are required", e.Side)
}

// ErrInvalidMatrix indicates a jagged or non-finite score matrix reached
// the solver. The scoring engine never produces one, so seeing this error
// means the caller built the matrix by hand and got it wrong.
type ErrInvalidMatrix struct {
	Row    int
	Reason string
}

func (e *ErrInvalidMatrix) Error() string {
	return fmt.Sprintf("invalid score matrix at row %d: %s", e.Row, e.Reason)
}
