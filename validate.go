// Package simplex: input and option validation shared by all entry points.
//
// Deterministic, side-effect free, sentinel errors only; the kernel
// never panics on user input.
package simplex

import "math"

// validateOptions checks option ranges: Precision within [0, MaxPrecision]
// and a non-negative MaxPivots. Complexity: O(1).
func validateOptions(o Options) error {
	if o.Precision < 0 || o.Precision > MaxPrecision {
		return ErrBadOptions
	}
	if o.MaxPivots < 0 {
		return ErrBadOptions
	}

	return nil
}

// validateMatrix enforces the construction contract: non-empty,
// at least one objective row plus one constraint row, at least one
// structural column plus the RHS column, rectangular, finite entries.
// Complexity: O(R·C).
func validateMatrix(m [][]float64) error {
	if len(m) == 0 {
		return ErrNilMatrix
	}
	if len(m) < 2 {
		return ErrTooFewRows
	}
	width := len(m[0])
	if width < 2 {
		return ErrTooFewColumns
	}
	for _, row := range m {
		if len(row) != width {
			return ErrNonRectangular
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFinite
			}
		}
	}

	return nil
}
