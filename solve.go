package simplex

// Solve runs two-phase simplex for standard-form maximization.
//
// Description:
//
//	Maximizes c·x subject to Ax = b, x ≥ 0. Row 0 of m holds the
//	objective coefficients c (natural sign; the trailing slot only pads
//	the row to uniform length and is ignored). Rows 1..R−1 hold the
//	constraint coefficients with the RHS b in the final column.
//
// Algorithm Outline:
//  1. Validate shape and finiteness; resolve options (nil ⇒ defaults).
//  2. Deep-copy m and rewrite row 0 into z − c·x = 0 form, so the
//     shared most-negative entering rule maximizes the objective and
//     the converged row-0 RHS reads the optimal value directly.
//  3. Phase one: augment with one artificial variable per constraint,
//     canonicalize the artificial-cost row, pivot to convergence.
//  4. Feasibility gate: non-zero artificial cost ⇒ ErrInfeasible.
//  5. Transfer the reduced basis back into the working copy, dropping
//     artificial columns.
//  6. Phase two: canonicalize the real objective against that basis and
//     pivot to convergence.
//  7. Extract one value per structural variable plus the objective.
//
// The caller's matrix is never mutated; repeated calls on equal inputs
// return identical solutions (fixed entering and leaving tie-breaks).
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows, ErrTooFewColumns, ErrNonRectangular,
//     ErrNonFinite, ErrBadOptions — input validation.
//   - ErrInfeasible — no non-negative solution satisfies the constraints.
//   - ErrUnbounded — the objective grows without bound.
//   - ErrNoBasis — internal invariant violation (non-canonical tableau).
//   - ErrPivotLimit — Options.MaxPivots exceeded before convergence.
//
// Complexity: O(pivots·R·(C+R)) time; O(R·(C+R)) memory for the
// phase-one tableau plus O(R·C) for the working copy. The pivot count
// is unbounded by default (see Options.MaxPivots).
func Solve(m [][]float64, opts *Options) (Solution, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if err := validateOptions(cfg); err != nil {
		return Solution{}, err
	}
	if err := validateMatrix(m); err != nil {
		return Solution{}, err
	}

	round := newRounder(cfg.Precision)
	work := cloneNegated(m)

	// Phase one: feasibility sub-problem on a disposable tableau.
	ph1 := newPhaseOneTableau(work, round, cfg.Verbose)
	ph1.reduceObjective()
	if err := ph1.iterate(cfg.MaxPivots); err != nil {
		return Solution{}, err
	}
	if !ph1.feasible() {
		return Solution{}, ErrInfeasible
	}
	ph1.transferBasis(work)

	// Phase two: optimize the real objective in place on the copy.
	ph2 := &tableau{rows: work, round: round, verbose: cfg.Verbose, phase: 2}
	if err := ph2.canonicalizeObjective(); err != nil {
		return Solution{}, err
	}
	if err := ph2.iterate(cfg.MaxPivots); err != nil {
		return Solution{}, err
	}

	return ph2.extractSolution()
}

// cloneNegated deep-copies m and rewrites row 0 into tableau form:
// objective coefficients negated (z − c·x = 0) and the unused trailing
// slot zeroed so it can accumulate the objective value during phase two.
func cloneNegated(m [][]float64) [][]float64 {
	work := make([][]float64, len(m))
	for y, row := range m {
		work[y] = make([]float64, len(row))
		copy(work[y], row)
	}
	obj := work[0]
	for c := range obj {
		obj[c] = -obj[c]
	}
	obj[len(obj)-1] = 0

	return work
}

// extractSolution reads the converged tableau off: each constraint row
// contributes its basic variable's value (that row's RHS); variables
// outside the basis stay 0. The objective value is the objective row's
// RHS entry. The basic-column lookup includes the objective row, so a
// non-basic column that merely mirrors an identity pattern in the
// constraint rows cannot be mistaken for the basis.
func (t *tableau) extractSolution() (Solution, error) {
	rhs := t.rhs()
	values := make([]float64, rhs)
	for y := 1; y < len(t.rows); y++ {
		c, err := t.basicColumn(y, true)
		if err != nil {
			return Solution{}, err
		}
		values[c] = t.rows[y][rhs]
	}

	return Solution{Values: values, Objective: t.rows[0][rhs]}, nil
}
