package simplex

import "fmt"

// Status is the terminal state of a Solve call.
type Status int

const (
	// StatusOptimal means an optimal basic feasible solution was found.
	StatusOptimal Status = iota

	// StatusUnbounded means the objective improves without limit along
	// some feasible ray; there is no finite optimum.
	StatusUnbounded

	// StatusInfeasibleOrigin means a right-hand side entry was negative
	// and the instance was rejected before pivoting.
	StatusInfeasibleOrigin

	// StatusMaxIterations means the pivot cap was hit before the
	// optimality test passed, typically from degenerate cycling.
	StatusMaxIterations
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	case StatusInfeasibleOrigin:
		return "infeasible_origin"
	case StatusMaxIterations:
		return "max_iterations_exceeded"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a Solve call.
//
// Value and Solution are only meaningful when Status is StatusOptimal.
// Value is sign-corrected for maximization; Solution holds the original
// decision variables only, with slack values dropped.
type Result struct {
	Value      float64
	Solution   []float64
	Status     Status
	Iterations int
}

// String renders a one-line summary of the outcome.
func (r *Result) String() string {
	if r.Status != StatusOptimal {
		return fmt.Sprintf("%v after %d iterations", r.Status, r.Iterations)
	}
	return fmt.Sprintf("optimal Z = %v at x = %v after %d iterations", r.Value, r.Solution, r.Iterations)
}
