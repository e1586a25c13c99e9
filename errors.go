package simplex

import "errors"

var (
	// ErrNilMatrix indicates the input matrix is nil or has no rows.
	ErrNilMatrix = errors.New("simplex: matrix must be non-empty")

	// ErrTooFewRows indicates the matrix lacks an objective row plus at
	// least one constraint row.
	ErrTooFewRows = errors.New("simplex: matrix needs an objective row and at least one constraint row")

	// ErrTooFewColumns indicates a row shorter than one structural
	// variable plus the RHS slot.
	ErrTooFewColumns = errors.New("simplex: rows need at least one variable column and an RHS column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("simplex: all rows must have the same length")

	// ErrNonFinite indicates a NaN or ±Inf entry in the input matrix.
	ErrNonFinite = errors.New("simplex: matrix entries must be finite")

	// ErrBadOptions indicates an out-of-range Options field.
	ErrBadOptions = errors.New("simplex: invalid options")

	// ErrInfeasible indicates the constraint system admits no
	// non-negative solution: phase one converged with a non-zero
	// artificial cost.
	ErrInfeasible = errors.New("simplex: problem is infeasible")

	// ErrUnbounded indicates the objective grows without bound along the
	// chosen entering column: no constraint row passed the minimum-ratio
	// test.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrNoBasis indicates a constraint row has no canonical basic
	// column. The pivot loop maintains one per row, so this is an
	// internal invariant violation, not a user-recoverable condition.
	ErrNoBasis = errors.New("simplex: no basic variable found for row")

	// ErrPivotLimit indicates Options.MaxPivots was exceeded before
	// convergence, usually a sign of degenerate cycling.
	ErrPivotLimit = errors.New("simplex: pivot limit exceeded")
)
