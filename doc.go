// Package simplex solves standard-form linear-programming maximization
// problems (maximize a linear objective subject to linear equality
// constraints with non-negative variables) using the two-phase simplex
// method.
//
// 🚀 What is two-phase simplex?
//
//	Phase one augments the constraint system with one artificial variable
//	per row and minimizes their sum to find (or rule out) a feasible
//	basic solution. Phase two restarts from that basis and optimizes the
//	real objective. Both phases share a single pivot engine: entering
//	column by the most-negative rule, leaving row by the minimum-ratio
//	test, then a full row reduction.
//
// ✨ Key features:
//   - Pure function API: Solve never mutates the caller's matrix
//   - Deterministic pivoting: fixed, documented tie-break rules
//   - Tolerant comparisons: fixed-precision truncation absorbs FP drift
//   - Closed sentinel error set: ErrInfeasible, ErrUnbounded, ErrNoBasis, …
//   - Optional pivot cap as a defense against degenerate cycling
//   - gonum adapter: SolveDense accepts any mat.Matrix
//
// ⚙️ Usage:
//
//	import "github.com/ssg/simplex"
//
//	// maximize 3x + 2y  s.t.  x + y + s1 = 4,  x + 3y + s2 = 6
//	m := [][]float64{
//	  {3, 2, 0, 0, 0}, // objective row; last slot unused
//	  {1, 1, 1, 0, 4},
//	  {1, 3, 0, 1, 6},
//	}
//	sol, err := simplex.Solve(m, nil)
//	// sol.Objective == 12, sol.Values == [4 0 0 2]
//
// The kernel owns no I/O: reading problem data, converting inequality
// systems to standard form, and presenting results all belong to the
// hosting application. Minimization, integer constraints, and
// sensitivity analysis are out of scope.
//
// Performance:
//
//   - One pivot costs O(R·C) over the working tableau.
//   - Phase one works on a fresh (R)×(C+R−1) tableau; phase two works
//     in place on a private copy of the input.
//
// See example_test.go for runnable scenarios.
//
//	go get github.com/ssg/simplex
package simplex
