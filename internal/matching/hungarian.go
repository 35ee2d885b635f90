package matching

import (
	"context"
	"math"
	"sort"
)

// Pair is one assignment produced by the solver: row i of the matrix
// matched to column j, carrying the matrix value at that cell.
type Pair struct {
	Row   int
	Col   int
	Score float64
}

// Solve finds a one-to-one assignment of maximum total score over a dense
// rectangular matrix using the Kuhn-Munkres (Hungarian) method. It returns
// exactly min(m, n) pairs sorted by row index, with each row and each
// column used at most once; the surplus rows or columns of a non-square
// matrix stay unmatched. When several assignments tie on total score the
// lowest row and column indices win, so identical inputs always produce
// the identical pairing.
//
// The matrix must be rectangular with finite entries; anything else is a
// caller bug and returns *ErrInvalidMatrix. An empty dimension yields an
// empty assignment. Cancelling ctx aborts the solve between augmenting
// rows, which bounds the latency of very large inputs.
func Solve(ctx context.Context, matrix [][]float64) ([]Pair, error) {
	if err := validateMatrix(matrix); err != nil {
		return nil, err
	}

	m := len(matrix)
	if m == 0 || len(matrix[0]) == 0 {
		return []Pair{}, nil
	}

	// The augmenting-path formulation wants rows <= cols and a minimization
	// objective, so negate the scores and transpose when the NGO side is
	// the larger one.
	cost := negate(matrix)
	transposed := m > len(matrix[0])
	if transposed {
		cost = transpose(cost)
	}

	rowToCol, err := assignMin(ctx, cost)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(rowToCol))
	for i, j := range rowToCol {
		row, col := i, j
		if transposed {
			row, col = j, i
		}
		pairs = append(pairs, Pair{Row: row, Col: col, Score: matrix[row][col]})
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].Row < pairs[b].Row })
	return pairs, nil
}

// assignMin solves the minimum-cost rectangular assignment for a matrix
// with rows <= cols, via the potential (dual variable) formulation with
// shortest augmenting paths, O(rows^2 * cols) overall. Potentials are
// updated by exact deltas taken from matrix entries, so no error
// accumulates across iterations. Returns the matched column for each row.
//
// Indices are 1-based internally; column 0 is the virtual root of each
// augmenting path and row 0 marks a free column.
func assignMin(ctx context.Context, cost [][]float64) ([]int, error) {
	n := len(cost)    // rows
	m := len(cost[0]) // cols, m >= n

	u := make([]float64, n+1) // row potentials
	v := make([]float64, m+1) // column potentials
	match := make([]int, m+1) // match[j]: row assigned to column j, 0 if free
	way := make([]int, m+1)   // way[j]: previous column on the augmenting path

	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		match[0] = i
		j0 := 0
		minv := make([]float64, m+1) // minimal reduced cost to reach column j
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 := match[j0]
			delta := math.Inf(1)
			j1 := 0

			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				// Strict comparison keeps the lowest column index on ties.
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= m; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if match[j0] == 0 {
				break
			}
		}

		// Flip the path, extending the matching by one.
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= m; j++ {
		if match[j] != 0 {
			rowToCol[match[j]-1] = j - 1
		}
	}
	return rowToCol, nil
}

func negate(matrix [][]float64) [][]float64 {
	out := make([][]float64, len(matrix))
	for i, row := range matrix {
		neg := make([]float64, len(row))
		for j, cell := range row {
			neg[j] = -cell
		}
		out[i] = neg
	}
	return out
}

func transpose(matrix [][]float64) [][]float64 {
	rows, cols := len(matrix), len(matrix[0])
	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i] = matrix[i][j]
		}
		out[j] = col
	}
	return out
}
