package simplex

import "errors"

// ErrInfeasibleOrigin indicates a negative right-hand side entry. The
// all-slack starting basis of the standard-form construction is only
// feasible when b >= 0; instances violating that would need two-phase or
// Big-M handling, which this solver does not do, so they are rejected
// before any tableau is built.
var ErrInfeasibleOrigin = errors.New("simplex: negative rhs, all-slack origin is infeasible")
