package simplex

import (
	"errors"
	"math"
	"testing"
)

// testTableau wraps rows in a tableau at the default precision.
func testTableau(rows [][]float64) *tableau {
	return &tableau{rows: rows, round: newRounder(DefaultPrecision)}
}

// TestNewPhaseOneTableau_Layout verifies the augmented layout for a 3×3
// input: 2 structural columns, 2 artificial columns, 1 RHS column.
func TestNewPhaseOneTableau_Layout(t *testing.T) {
	m := [][]float64{
		{7, 8, 0},
		{1, 2, 3},
		{4, 5, 6},
	}
	tab := newPhaseOneTableau(m, newRounder(DefaultPrecision), false)

	want := [][]float64{
		{0, 0, 1, 1, 0},
		{1, 2, 1, 0, 3},
		{4, 5, 0, 1, 6},
	}
	for y, row := range want {
		if len(tab.rows[y]) != len(row) {
			t.Fatalf("row %d width = %d; want %d", y, len(tab.rows[y]), len(row))
		}
		for c, v := range row {
			if tab.rows[y][c] != v {
				t.Errorf("rows[%d][%d] = %v; want %v", y, c, tab.rows[y][c], v)
			}
		}
	}
}

// TestReduceObjective verifies that canonicalization zeroes the
// artificial columns and loads the negated column sums elsewhere.
func TestReduceObjective(t *testing.T) {
	m := [][]float64{
		{1, 0, 0},
		{1, 2, 3},
		{4, 5, 6},
	}
	tab := newPhaseOneTableau(m, newRounder(DefaultPrecision), false)
	tab.reduceObjective()

	want := []float64{-5, -7, 0, 0, -9}
	for c, v := range want {
		if tab.rows[0][c] != v {
			t.Errorf("objective[%d] = %v; want %v", c, tab.rows[0][c], v)
		}
	}
}

// TestEnteringColumn_TieBreak confirms the greatest-magnitude negative
// entry wins and that the first column keeps ties.
func TestEnteringColumn_TieBreak(t *testing.T) {
	tab := testTableau([][]float64{
		{-1, -3, -3, 2, 0},
		{1, 1, 1, 1, 4},
	})

	col, ok := tab.enteringColumn()
	if !ok || col != 1 {
		t.Errorf("enteringColumn() = (%d, %v); want (1, true)", col, ok)
	}
}

// TestEnteringColumn_Optimal confirms a non-negative objective row
// yields no candidate.
func TestEnteringColumn_Optimal(t *testing.T) {
	tab := testTableau([][]float64{
		{0, 2, 0.5, -7},
		{1, 1, 1, 4},
	})

	if _, ok := tab.enteringColumn(); ok {
		t.Error("enteringColumn() found a candidate in a non-negative objective row (RHS must be excluded)")
	}
	if !tab.optimal() {
		t.Error("optimal() = false for a non-negative objective row")
	}
}

// TestLeavingRow_MinimumRatio verifies the minimum-ratio test and the
// first-row tie-break, which must be preserved exactly.
func TestLeavingRow_MinimumRatio(t *testing.T) {
	tab := testTableau([][]float64{
		{-1, 0, 0},
		{2, 0, 8},  // ratio 4
		{-1, 0, 1}, // negative entry: not eligible
		{1, 0, 2},  // ratio 2: minimum
		{2, 0, 4},  // ratio 2: ties, but row 3 came first
	})

	row, err := tab.leavingRow(0)
	if err != nil {
		t.Fatalf("leavingRow error: %v", err)
	}
	if row != 3 {
		t.Errorf("leavingRow(0) = %d; want 3 (first minimum-ratio row)", row)
	}
}

// TestLeavingRow_Unbounded verifies ErrUnbounded when no constraint row
// has a positive entry in the entering column.
func TestLeavingRow_Unbounded(t *testing.T) {
	tab := testTableau([][]float64{
		{-1, 0, 0},
		{-2, 1, 4},
		{0, 1, 2},
	})

	if _, err := tab.leavingRow(0); !errors.Is(err, ErrUnbounded) {
		t.Errorf("leavingRow error = %v; want ErrUnbounded", err)
	}
}

// TestReduce_CanonicalColumn asserts the core row-reduction invariant:
// right after reduce, the pivot column truncates to 1 in the pivot row
// and to 0 in every other row.
func TestReduce_CanonicalColumn(t *testing.T) {
	tab := testTableau([][]float64{
		{-3, -2, 0, 0, 0},
		{1, 1, 1, 0, 4},
		{1, 3, 0, 1, 6},
	})
	pr, pc := 2, 1
	tab.reduce(pr, pc)

	for y := range tab.rows {
		got := tab.round.trunc(tab.rows[y][pc])
		want := 0.0
		if y == pr {
			want = 1
		}
		if got != want {
			t.Errorf("after reduce, rows[%d][%d] truncates to %v; want %v", y, pc, got, want)
		}
	}
}

// TestIterate_FixedPoint runs the loop to convergence, then verifies
// one more entering scan is a no-op.
func TestIterate_FixedPoint(t *testing.T) {
	tab := testTableau([][]float64{
		{-3, -2, 0, 0, 0},
		{1, 1, 1, 0, 4},
		{1, 3, 0, 1, 6},
	})
	if err := tab.iterate(0); err != nil {
		t.Fatalf("iterate error: %v", err)
	}
	if !tab.optimal() {
		t.Error("iterate converged but optimal() = false")
	}
	if _, ok := tab.enteringColumn(); ok {
		t.Error("optimality must be a fixed point: no entering column after convergence")
	}
}

// TestBasicColumn identifies canonical columns and rejects rows without
// one. The lenient mode ignores the objective row, the strict mode does
// not.
func TestBasicColumn(t *testing.T) {
	tab := testTableau([][]float64{
		{-5, 9, 0}, // raw objective coefficients must not block lenient detection
		{1.00005, 0, 4},
		{0.00004, 1, 6},
	})

	c1, err := tab.basicColumn(1, false)
	if err != nil || c1 != 0 {
		t.Errorf("basicColumn(1, false) = (%d, %v); want (0, nil)", c1, err)
	}
	c2, err := tab.basicColumn(2, false)
	if err != nil || c2 != 1 {
		t.Errorf("basicColumn(2, false) = (%d, %v); want (1, nil)", c2, err)
	}

	broken := testTableau([][]float64{
		{0, 0, 0},
		{2, 3, 4},
	})
	if _, err = broken.basicColumn(1, false); !errors.Is(err, ErrNoBasis) {
		t.Errorf("basicColumn on a non-canonical row = %v; want ErrNoBasis", err)
	}
}

// TestBasicColumn_ReducedCost exercises the strict mode on a converged
// tableau where column 0 keeps an identity pattern in the constraint
// rows yet prices a positive reduced cost: row 1's basic variable is
// column 1, and only the strict lookup finds it.
func TestBasicColumn_ReducedCost(t *testing.T) {
	tab := testTableau([][]float64{
		{1, 0, 0, 4},
		{1, 1, 0, 4},
		{0, 0, 1, 3},
	})

	c, err := tab.basicColumn(1, false)
	if err != nil || c != 0 {
		t.Errorf("basicColumn(1, false) = (%d, %v); want (0, nil)", c, err)
	}
	c, err = tab.basicColumn(1, true)
	if err != nil || c != 1 {
		t.Errorf("basicColumn(1, true) = (%d, %v); want (1, nil)", c, err)
	}
	c, err = tab.basicColumn(2, true)
	if err != nil || c != 2 {
		t.Errorf("basicColumn(2, true) = (%d, %v); want (2, nil)", c, err)
	}
}

// TestTransferBasisAndFeasibility drives phase one end to end on a tiny
// system and checks the gate plus the copy-back.
func TestTransferBasisAndFeasibility(t *testing.T) {
	m := [][]float64{
		{1, 0},
		{1, 5},
	}
	work := cloneNegated(m)
	tab := newPhaseOneTableau(work, newRounder(DefaultPrecision), false)
	tab.reduceObjective()
	if err := tab.iterate(0); err != nil {
		t.Fatalf("phase one iterate error: %v", err)
	}
	if !tab.feasible() {
		t.Fatal("x = 5 must be feasible")
	}

	tab.transferBasis(work)
	if math.Abs(work[1][0]-1) > 1e-12 || math.Abs(work[1][1]-5) > 1e-12 {
		t.Errorf("transferred row = %v; want [1 5]", work[1])
	}
}

// TestFeasible_Negative checks the gate on a contradictory system.
func TestFeasible_Negative(t *testing.T) {
	m := [][]float64{
		{1, 0},
		{1, 1},
		{1, 2},
	}
	tab := newPhaseOneTableau(m, newRounder(DefaultPrecision), false)
	tab.reduceObjective()
	if err := tab.iterate(0); err != nil {
		t.Fatalf("phase one iterate error: %v", err)
	}
	if tab.feasible() {
		t.Error("x=1 and x=2 cannot both hold; phase one must leave a non-zero artificial cost")
	}
}
