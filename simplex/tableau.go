package simplex

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
)

// tableau is the standard-form working matrix
//
//	[ A | I | b ]
//	[ c | 0 | 0 ]
//
// of shape (m+1) x (n+m+1). The identity block carries the m slack
// variables that turn Ax <= b into equalities; the last row holds the
// reduced costs of all n+m variables and, in its last cell, the negated
// objective of the minimization form. Row operations preserve the
// solution set, so the tableau always encodes a system equivalent to
// the original one.
type tableau struct {
	t *mat.Dense

	// basis[r] is the column currently basic in constraint row r. It is
	// updated only at pivot time, never re-derived by scanning columns,
	// so float noise cannot misidentify a coincidental unit column.
	basis []int

	numRows int // m, constraints
	numCols int // n, original decision variables
}

// newTableau builds the initial tableau for p with the all-slack basis.
// Maximization is reduced to minimization by negating c; the sign is
// restored only when the objective value is reported.
func newTableau(p *model.Problem) *tableau {
	m, n := p.NumRows, p.NumCols
	t := mat.NewDense(m+1, n+m+1, nil)
	basis := make([]int, m)
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			t.Set(r, c, p.A.At(r, c))
		}
		t.Set(r, n+r, 1)
		t.Set(r, n+m, p.B.At(r, 0))
		basis[r] = n + r
	}
	for c := 0; c < n; c++ {
		coef := p.C.At(0, c)
		if p.Maximize {
			coef = -coef
		}
		t.Set(m, c, coef)
	}

	return &tableau{
		t:       t,
		basis:   basis,
		numRows: m,
		numCols: n,
	}
}

// entering picks the entering column per the pivot rule, or -1 when
// every reduced cost is >= -tol and the current basis is optimal.
func (tb *tableau) entering(rule PivotRule, tol float64) int {
	chosenJ := -1
	best := -tol
	for j := 0; j < tb.numCols+tb.numRows; j++ {
		rc := tb.t.At(tb.numRows, j)
		if rc >= -tol {
			continue
		}
		if rule == Bland {
			return j
		}
		if rc < best {
			best = rc
			chosenJ = j
		}
	}
	return chosenJ
}

// leaving runs the minimal ratio test against the entering column and
// reports the pivot row. ok is false when no row has a positive entry
// in the column, i.e. the problem is unbounded along that direction.
func (tb *tableau) leaving(entering int, rule PivotRule, tol float64) (row int, ok bool) {
	rhs := tb.numCols + tb.numRows
	minimalRatio := 0.0
	row = -1
	for r := 0; r < tb.numRows; r++ {
		d := tb.t.At(r, entering)
		if d <= tol {
			continue
		}
		ratio := tb.t.At(r, rhs) / d
		switch {
		case row == -1 || ratio < minimalRatio-tol:
			minimalRatio = ratio
			row = r
		case rule == Bland && ratio <= minimalRatio+tol && tb.basis[r] < tb.basis[row]:
			// tie: smallest basic variable index leaves
			minimalRatio = ratio
			row = r
		}
	}
	return row, row != -1
}

// pivot makes column entering basic in the given row: the pivot row is
// normalized by the pivot element and eliminated from every other row,
// including the objective row, so the column becomes a unit vector.
func (tb *tableau) pivot(row, entering int) {
	width := tb.numCols + tb.numRows + 1
	pivotElem := tb.t.At(row, entering)
	for c := 0; c < width; c++ {
		tb.t.Set(row, c, tb.t.At(row, c)/pivotElem)
	}
	for r := 0; r < tb.numRows+1; r++ {
		if r == row {
			continue
		}
		factor := tb.t.At(r, entering)
		if factor == 0 {
			continue
		}
		for c := 0; c < width; c++ {
			tb.t.Set(r, c, tb.t.At(r, c)-factor*tb.t.At(row, c))
		}
	}
	tb.basis[row] = entering
}

// solution reads the current assignment of the original decision
// variables from the basis: a basic original column takes its row's
// rhs value, everything else is 0.
func (tb *tableau) solution() []float64 {
	rhs := tb.numCols + tb.numRows
	x := make([]float64, tb.numCols)
	for r, j := range tb.basis {
		if j < tb.numCols {
			x[j] = tb.t.At(r, rhs)
		}
	}
	return x
}

// objective returns the current objective value in the caller's sign
// convention. The last cell holds the negated minimization objective,
// so it is the maximization value as stored.
func (tb *tableau) objective(maximize bool) float64 {
	z := tb.t.At(tb.numRows, tb.numCols+tb.numRows)
	if !maximize {
		z = -z
	}
	return z
}

func (tb *tableau) dump(w io.Writer) {
	taux := mat.Formatted(tb.t, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "T = %v\n", taux)
	fmt.Fprintf(w, "basis = %v\n", tb.basis)
}
