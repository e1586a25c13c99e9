package simplex

import "math"

// rounder truncates values to a fixed decimal precision before they are
// compared against an exact expected value. Repeated row operations
// accumulate floating-point drift; raw equality on such sums would make
// canonical-form and feasibility checks flaky, so every 0/1 comparison
// and every sign test in the kernel goes through a rounder.
type rounder struct {
	scale float64 // 10^precision
}

// newRounder builds a rounder for the given decimal precision.
func newRounder(precision int) rounder {
	return rounder{scale: math.Pow(10, float64(precision))}
}

// trunc truncates x toward zero at the configured precision.
func (r rounder) trunc(x float64) float64 {
	return math.Trunc(x*r.scale) / r.scale
}

// isZero reports whether x truncates to exactly 0.
func (r rounder) isZero(x float64) bool {
	return r.trunc(x) == 0
}

// isOne reports whether x truncates to exactly 1.
func (r rounder) isOne(x float64) bool {
	return r.trunc(x) == 1
}

// isNegative reports whether x truncates below 0.
func (r rounder) isNegative(x float64) bool {
	return r.trunc(x) < 0
}

// isPositive reports whether x truncates above 0.
func (r rounder) isPositive(x float64) bool {
	return r.trunc(x) > 0
}

// Truncate truncates x toward zero at the given decimal precision. It
// is the comparator the solver applies internally before equality and
// sign checks; callers post-processing a Solution can use it to clean
// near-zero residue the same way.
func Truncate(x float64, digits int) float64 {
	return newRounder(digits).trunc(x)
}
