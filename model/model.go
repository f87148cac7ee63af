// Package model holds linear programming problem instances in the form
//
//	optimize c'x  subject to  Ax <= b, x >= 0
//
// A Problem is built once, validated at construction, and never mutated
// by the solver.
package model

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// ErrDimension indicates that the shapes of c, A and b are mutually
// inconsistent. It is returned before any matrix is allocated.
var ErrDimension = errors.New("model: dimension mismatch")

// Problem is an LP instance in inequality form.
type Problem struct {
	//C objective function coefficients, 1 x NumCols
	C *mat.Dense

	//A constraints matrix, NumRows x NumCols
	A *mat.Dense

	//B constraints rhs, NumRows x 1
	B *mat.Dense

	//Maximize selects the optimization direction
	Maximize bool

	NumRows int
	NumCols int
}

// New builds a Problem from an objective vector c, a row-major
// constraint matrix a of len(b) x len(c) entries, and a right-hand
// side b. It fails with ErrDimension before allocating anything if the
// shapes do not agree.
func New(c, a, b []float64, maximize bool) (*Problem, error) {
	numRows, numCols := len(b), len(c)
	if numRows == 0 || numCols == 0 {
		return nil, fmt.Errorf("%w: need at least one variable and one constraint, got %d x %d", ErrDimension, numRows, numCols)
	}
	if len(a) != numRows*numCols {
		return nil, fmt.Errorf("%w: A has %d entries, want %d x %d = %d", ErrDimension, len(a), numRows, numCols, numRows*numCols)
	}

	return &Problem{
		C:        mat.NewDense(1, numCols, c),
		A:        mat.NewDense(numRows, numCols, a),
		B:        mat.NewDense(numRows, 1, b),
		Maximize: maximize,
		NumRows:  numRows,
		NumCols:  numCols,
	}, nil
}

// NewFromDense is New for callers that already hold A as a *mat.Dense.
// The matrix is copied, so later writes to a do not leak into the Problem.
func NewFromDense(c []float64, a *mat.Dense, b []float64, maximize bool) (*Problem, error) {
	numRows, numCols := len(b), len(c)
	if numRows == 0 || numCols == 0 {
		return nil, fmt.Errorf("%w: need at least one variable and one constraint, got %d x %d", ErrDimension, numRows, numCols)
	}
	ar, ac := a.Dims()
	if ar != numRows || ac != numCols {
		return nil, fmt.Errorf("%w: A is %d x %d, want %d x %d", ErrDimension, ar, ac, numRows, numCols)
	}

	return &Problem{
		C:        mat.NewDense(1, numCols, c),
		A:        mat.DenseCopyOf(a),
		B:        mat.NewDense(numRows, 1, b),
		Maximize: maximize,
		NumRows:  numRows,
		NumCols:  numCols,
	}, nil
}

// Dump writes a formatted view of the instance to w.
func (p *Problem) Dump(w io.Writer) {
	caux := mat.Formatted(p.C, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "c = %v\n", caux)
	aaux := mat.Formatted(p.A, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "A = %v\n", aaux)
	baux := mat.Formatted(p.B, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "b = %v\n", baux)
}

// Objective evaluates c'x for a candidate assignment of the decision
// variables.
func (p *Problem) Objective(x []float64) (float64, error) {
	if len(x) != p.NumCols {
		return 0, fmt.Errorf("%w: x has %d entries, want %d", ErrDimension, len(x), p.NumCols)
	}
	z := float64(0)
	for c := 0; c < p.NumCols; c++ {
		z += p.C.At(0, c) * x[c]
	}
	return z, nil
}
