package simplex

// newPhaseOneTableau builds the augmented tableau for the feasibility
// sub-problem. An R×C input becomes R rows of
// (C−1) structural + (R−1) artificial + 1 RHS columns.
//
// The objective row is zero except for a 1 in every artificial column:
// the cost of each artificial variable under the phase-one
// minimization, framed as maximizing the negated artificial sum.
// Constraint row y copies its original coefficients, moves its RHS to
// the new last column, zeroes the old RHS slot, and sets a 1 in the
// artificial column assigned to that row alone. The row is then
// already the canonical form for its basic artificial variable.
//
// The tableau is disposable: it does not outlive phase one.
// Complexity: O(R·(C+R)) time and memory.
func newPhaseOneTableau(m [][]float64, round rounder, verbose bool) *tableau {
	nrows := len(m)
	structural := len(m[0]) - 1
	artificial := nrows - 1
	width := structural + artificial + 1
	rhs := width - 1

	t := &tableau{
		rows:    make([][]float64, nrows),
		round:   round,
		verbose: verbose,
		phase:   1,
	}

	obj := make([]float64, width)
	for a := 0; a < artificial; a++ {
		obj[structural+a] = 1
	}
	t.rows[0] = obj

	for y := 1; y < nrows; y++ {
		row := make([]float64, width)
		copy(row, m[y][:structural])
		row[structural+y-1] = 1
		row[rhs] = m[y][structural]
		t.rows[y] = row
	}

	return t
}

// reduceObjective canonicalizes the phase-one objective row: every
// entry drops the sum of its column over all constraint rows. Each
// artificial column sums to exactly 1, so those entries land on 0 and
// the row then prices the problem purely in non-basic variables, the
// precondition for the optimality test to be meaningful.
// Complexity: O(R·(C+R)).
func (t *tableau) reduceObjective() {
	obj := t.rows[0]
	for c := range obj {
		sum := 0.0
		for y := 1; y < len(t.rows); y++ {
			sum += t.rows[y][c]
		}
		obj[c] -= sum
	}
}

// feasible reports whether phase one drove the artificial cost to zero:
// the converged objective row's RHS must truncate to 0, otherwise the
// original constraints admit no non-negative solution.
func (t *tableau) feasible() bool {
	return t.round.isZero(t.rows[0][t.rhs()])
}

// transferBasis copies the reduced constraint rows back into dst,
// discarding the artificial columns entirely: structural coefficients
// first, then the tableau RHS into dst's last column. dst's objective
// row is left untouched; canonicalizeObjective handles it next.
func (t *tableau) transferBasis(dst [][]float64) {
	structural := len(dst[0]) - 1
	rhs := t.rhs()
	for y := 1; y < len(dst); y++ {
		copy(dst[y][:structural], t.rows[y][:structural])
		dst[y][structural] = t.rows[y][rhs]
	}
}

// canonicalizeObjective re-expresses the objective row in terms of the
// basis phase one established: for each constraint row, its basic
// column is eliminated from row 0 with the same add-multiple step the
// pivot engine uses. Returns ErrNoBasis if any constraint row lacks a
// canonical column.
func (t *tableau) canonicalizeObjective() error {
	obj := t.rows[0]
	for y := 1; y < len(t.rows); y++ {
		c, err := t.basicColumn(y, false)
		if err != nil {
			return err
		}
		factor := -obj[c]
		if factor == 0 {
			continue
		}
		row := t.rows[y]
		for i := range obj {
			obj[i] += row[i] * factor
		}
	}

	return nil
}
