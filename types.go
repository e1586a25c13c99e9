// Package simplex: options and result types.
package simplex

const (
	// DefaultPrecision is the decimal precision of the tolerant
	// comparator: values are truncated to 10^-DefaultPrecision before
	// any comparison against an exact 0 or 1.
	DefaultPrecision = 4

	// MaxPrecision bounds Options.Precision; beyond 15 digits the
	// truncation scale exceeds what float64 can represent faithfully.
	MaxPrecision = 15

	// DefaultMaxPivots places no cap on pivot iterations: classic
	// simplex may cycle forever on degenerate inputs. Set
	// Options.MaxPivots to a positive value to trade that fidelity for
	// guaranteed termination.
	DefaultMaxPivots = 0
)

// Options configures a solve.
//
//   - Precision: decimal digits kept by the tolerant comparator
//     (0..15). Comparisons against exact 0/1 and all sign tests use
//     values truncated to this precision, absorbing floating-point
//     drift from repeated row operations.
//   - MaxPivots: upper bound on pivot iterations per phase; 0 means
//     unlimited. A positive cap turns degenerate cycling into
//     ErrPivotLimit instead of non-termination.
//   - Verbose: if true, prints each pivot (phase, entering column,
//     leaving row) via fmt.Printf.
type Options struct {
	Precision int
	MaxPivots int
	Verbose   bool
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Precision: DefaultPrecision,
		MaxPivots: DefaultMaxPivots,
	}
}

// Solution holds the outcome of a successful solve.
type Solution struct {
	// Values holds one value per original structural variable, in the
	// input's column order. Variables outside the final basis are 0.
	Values []float64

	// Objective is the optimal objective value.
	Objective float64
}

// Vector flattens the solution into the classic tableau output shape:
// the variable values in column order followed by the objective value
// as the final element.
func (s Solution) Vector() []float64 {
	v := make([]float64, len(s.Values)+1)
	copy(v, s.Values)
	v[len(s.Values)] = s.Objective

	return v
}
