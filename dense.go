package simplex

import "gonum.org/v1/gonum/mat"

// SolveDense adapts a gonum matrix to Solve: row 0 is the objective row
// and the last column is the RHS, exactly as in the slice form. The
// matrix is copied out before solving, so a, like the slice input to
// Solve, is never mutated.
//
// Errors: ErrNilMatrix for a nil or zero-sized matrix, then everything
// Solve returns.
//
// Complexity: O(R·C) for the copy plus the cost of Solve.
func SolveDense(a mat.Matrix, opts *Options) (Solution, error) {
	if a == nil {
		return Solution{}, ErrNilMatrix
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return Solution{}, ErrNilMatrix
	}

	m := make([][]float64, r)
	for y := 0; y < r; y++ {
		row := make([]float64, c)
		for x := 0; x < c; x++ {
			row[x] = a.At(y, x)
		}
		m[y] = row
	}

	return Solve(m, opts)
}
