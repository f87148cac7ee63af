// Package simplex solves linear programs
//
//	optimize c'x  subject to  Ax <= b, x >= 0, b >= 0
//
// by the primal simplex method on an explicit dense tableau. Solve is
// the single entry point; it is a pure computation with no shared
// state, so concurrent calls on independent problems need no locking.
package simplex

import (
	"fmt"

	"q.log/tableau/model"
)

// Solve runs the simplex method on p and returns the outcome.
//
// Structural defects fail fast with an error before any tableau is
// built: dimension mismatches surface as model.ErrDimension at problem
// construction, and a negative right-hand side entry is rejected here
// with ErrInfeasibleOrigin. Unboundedness and hitting the pivot cap
// are legitimate answers about the problem, reported through
// Result.Status rather than as errors.
//
// opts may be nil for all defaults.
func Solve(p *model.Problem, opts *Options) (*Result, error) {
	o := opts.withDefaults(p.NumRows, p.NumCols)

	for r := 0; r < p.NumRows; r++ {
		if rhs := p.B.At(r, 0); rhs < 0 {
			return &Result{Status: StatusInfeasibleOrigin},
				fmt.Errorf("simplex: b[%d] = %v: %w", r, rhs, ErrInfeasibleOrigin)
		}
	}

	tb := newTableau(p)
	if o.Verbose {
		p.Dump(o.Trace)
		tb.dump(o.Trace)
	}

	iter := 0
	for {
		entering := tb.entering(o.Rule, o.Tolerance)

		// optimality condition
		if entering == -1 {
			res := &Result{
				Value:      tb.objective(p.Maximize),
				Solution:   tb.solution(),
				Status:     StatusOptimal,
				Iterations: iter,
			}
			if o.Verbose {
				fmt.Fprintf(o.Trace, "Z = %v\n", res.Value)
			}
			return res, nil
		}

		if iter == o.MaxIterations {
			return &Result{Status: StatusMaxIterations, Iterations: iter}, nil
		}

		leaving, ok := tb.leaving(entering, o.Rule, o.Tolerance)
		// problem is unbounded
		if !ok {
			if o.Verbose {
				fmt.Fprintf(o.Trace, "no positive direction in column %v\n", entering)
			}
			return &Result{Status: StatusUnbounded, Iterations: iter}, nil
		}

		if o.Verbose {
			fmt.Fprintf(o.Trace, "-------------------- BASE CHANGE %v -> %v ----------------------\n", tb.basis[leaving], entering)
		}
		tb.pivot(leaving, entering)
		iter++
		if o.Verbose {
			fmt.Fprintf(o.Trace, "-------------------- ITERATION %v ----------------------\n", iter)
			tb.dump(o.Trace)
		}
	}
}
