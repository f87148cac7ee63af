package simplex

import (
	"io"
	"os"
)

// Defaults applied when Options, or a field of it, is left zero.
const (
	// DefaultTolerance is the zero threshold used by the optimality test
	// and the ratio test.
	DefaultTolerance = 1e-10

	// DefaultIterationFactor scales the default pivot cap: 10*(m+n)
	// pivots for an m-constraint, n-variable instance.
	DefaultIterationFactor = 10

	// MinIterationCap is the floor for the default pivot cap, so tiny
	// instances still get enough room to walk degenerate ties.
	MinIterationCap = 200
)

// PivotRule selects the entering-variable policy.
//
//   - Dantzig — enter on the most negative reduced cost, ratio ties broken
//     by lowest row index. Simple and fast, but can cycle on degenerate
//     instances; the iteration cap is the liveness guarantee.
//   - Bland — enter on the lowest-index negative reduced cost, ratio ties
//     broken by lowest basic-variable index. Slower in practice, cannot
//     cycle.
type PivotRule int

const (
	// Dantzig rule: most negative reduced cost enters.
	Dantzig PivotRule = iota

	// Bland rule: lowest-index negative reduced cost enters.
	Bland
)

// Options configures a single Solve call. The zero value (or a nil
// pointer) means all defaults. No state persists across calls.
//
// Fields:
//   - Tolerance     — zero threshold for the optimality and ratio tests.
//   - MaxIterations — pivot cap; 0 means 10*(m+n), at least 200.
//   - Rule          — entering-variable policy, Dantzig by default.
//   - Verbose       — emit a per-pivot trace to Trace.
//   - Trace         — trace sink; os.Stdout when nil.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Rule          PivotRule
	Verbose       bool
	Trace         io.Writer
}

// withDefaults resolves the effective settings for an m x n instance.
func (o *Options) withDefaults(numRows, numCols int) Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Tolerance <= 0 {
		out.Tolerance = DefaultTolerance
	}
	if out.MaxIterations <= 0 {
		out.MaxIterations = max(DefaultIterationFactor*(numRows+numCols), MinIterationCap)
	}
	if out.Trace == nil {
		out.Trace = os.Stdout
	}
	return out
}
