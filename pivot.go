package simplex

import "fmt"

// tableau is a working simplex tableau: rows[0] is the objective row,
// rows[1..] are constraint rows, and the last column of every row is
// the RHS. Both phases drive the same methods; only the row contents
// differ. Rows are addressed by index into an owned buffer, never by
// reference identity, so cloned instances stay independent.
type tableau struct {
	rows    [][]float64
	round   rounder
	verbose bool
	phase   int // 1 or 2, used only by verbose output
}

// rhs returns the index of the RHS column.
func (t *tableau) rhs() int {
	return len(t.rows[0]) - 1
}

// enteringColumn selects the pivot column: among objective-row entries
// (RHS excluded) that truncate negative, the greatest magnitude wins,
// and the first such column wins ties (strict comparison). ok=false
// means no candidate exists: the tableau is optimal.
func (t *tableau) enteringColumn() (col int, ok bool) {
	obj := t.rows[0]
	col = -1
	best := 0.0
	for c := 0; c < t.rhs(); c++ {
		if t.round.isNegative(obj[c]) && obj[c] < best {
			best = obj[c]
			col = c
		}
	}

	return col, col >= 0
}

// leavingRow runs the minimum-ratio test: among constraint rows whose
// entry in column pc truncates strictly positive, pick the row
// minimizing RHS/entry. The first row achieving the minimum is kept
// (strict <); that tie-break is arbitrary among degenerate alternatives
// but load-bearing for reproducibility, so it must not change.
// Returns ErrUnbounded when no row qualifies.
func (t *tableau) leavingRow(pc int) (int, error) {
	rhs := t.rhs()
	row := -1
	best := 0.0
	for y := 1; y < len(t.rows); y++ {
		entry := t.rows[y][pc]
		if !t.round.isPositive(entry) {
			continue
		}
		ratio := t.rows[y][rhs] / entry
		if row < 0 || ratio < best {
			best = ratio
			row = y
		}
	}
	if row < 0 {
		return 0, ErrUnbounded
	}

	return row, nil
}

// reduce pivots on (pr, pc): the pivot row is normalized so the pivot
// entry becomes exactly 1, then column pc is eliminated from every
// other row, objective row included, via row[y] += pivotRow·(−row[y][pc]).
func (t *tableau) reduce(pr, pc int) {
	prow := t.rows[pr]
	pivot := prow[pc]
	for c := range prow {
		prow[c] /= pivot
	}
	for y := range t.rows {
		if y == pr {
			continue
		}
		row := t.rows[y]
		factor := -row[pc]
		if factor == 0 {
			continue
		}
		for c := range row {
			row[c] += prow[c] * factor
		}
	}
}

// optimal reports whether the objective row has no negative entry
// (RHS excluded) at the working precision.
func (t *tableau) optimal() bool {
	obj := t.rows[0]
	for c := 0; c < t.rhs(); c++ {
		if t.round.isNegative(obj[c]) {
			return false
		}
	}

	return true
}

// iterate repeats entering/leaving/reduce until the optimality test
// holds. maxPivots caps the loop when positive; 0 leaves it unbounded,
// matching classic simplex, which may cycle on degenerate inputs.
func (t *tableau) iterate(maxPivots int) error {
	for n := 0; ; n++ {
		pc, ok := t.enteringColumn()
		if !ok {
			return nil
		}
		if maxPivots > 0 && n >= maxPivots {
			return ErrPivotLimit
		}
		pr, err := t.leavingRow(pc)
		if err != nil {
			return err
		}
		if t.verbose {
			fmt.Printf("phase %d pivot %d: enter column %d, leave row %d\n", t.phase, n+1, pc, pr)
		}
		t.reduce(pr, pc)
	}
}

// basicColumn finds the canonical column of constraint row y: the
// non-RHS column whose entry truncates to 1 in row y and to 0 in every
// other constraint row. includeObjective extends the zero check to the
// objective row. Phase-two canonicalization must pass false, since it
// calls this while row 0 still carries raw objective coefficients; at
// extraction the check must include row 0, or a non-basic column that
// kept an identity pattern in the constraint rows but still prices a
// non-zero reduced cost could shadow the true basic column. At
// optimality every basic column has zero reduced cost, so the stricter
// lookup always succeeds on a canonical tableau. Returns ErrNoBasis
// when no column qualifies, which means the tableau left canonical form.
func (t *tableau) basicColumn(y int, includeObjective bool) (int, error) {
	for c := 0; c < t.rhs(); c++ {
		if !t.round.isOne(t.rows[y][c]) {
			continue
		}
		if includeObjective && !t.round.isZero(t.rows[0][c]) {
			continue
		}
		canonical := true
		for i := 1; i < len(t.rows); i++ {
			if i != y && !t.round.isZero(t.rows[i][c]) {
				canonical = false
				break
			}
		}
		if canonical {
			return c, nil
		}
	}

	return 0, ErrNoBasis
}
