package matching

import (
	"fmt"
	"math"

	"github.com/jonathan/sponsor-match/internal/types"
)

// BuildScoreMatrix computes the dense |ngos| x |corporates| score matrix.
// The matrix is explicitly sized and fully populated; every cell holds a
// finite value in [0,1] because Score is total over well-typed entities.
func BuildScoreMatrix(ngos []types.Organization, corporates []types.Sponsor) [][]float64 {
	matrix := make([][]float64, len(ngos))
	for i := range ngos {
		row := make([]float64, len(corporates))
		for j := range corporates {
			row[j] = Score(&ngos[i], &corporates[j])
		}
		matrix[i] = row
	}
	return matrix
}

// validateMatrix rejects jagged rows and non-finite cells before they can
// reach the solver.
func validateMatrix(matrix [][]float64) error {
	if len(matrix) == 0 {
		return nil
	}
	width := len(matrix[0])
	for i, row := range matrix {
		if len(row) != width {
			return &ErrInvalidMatrix{
				Row:    i,
				Reason: fmt.Sprintf("jagged row: %d columns, want %d", len(row), width),
			}
		}
		for j, cell := range row {
			if math.IsNaN(cell) || math.IsInf(cell, 0) {
				return &ErrInvalidMatrix{
					Row:    i,
					Reason: fmt.Sprintf("non-finite value %v at column %d", cell, j),
				}
			}
		}
	}
	return nil
}
