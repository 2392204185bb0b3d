package core

import (
	"fmt"
	"math"
)

// UnitWeights is the default DistanceMatrix: every edge weighs 1.
// Using it turns both engines into unweighted shortest-path searches.
type UnitWeights struct{}

// Weight always returns 1.
func (UnitWeights) Weight(_, _ int) float64 { return 1 }

// Dense is a square float64 weight matrix. Off-diagonal cells default to
// +Inf ("no path") and diagonal cells to 0, the usual distance-matrix
// convention; Set overrides individual cells.
type Dense struct {
	n     int
	cells []float64
}

// NewDense allocates an n×n matrix with 0 on the diagonal and +Inf
// elsewhere. Negative n is treated as zero.
// Complexity: O(n²).
func NewDense(n int) *Dense {
	if n < 0 {
		n = 0
	}
	d := &Dense{n: n, cells: make([]float64, n*n)}
	inf := math.Inf(1)
	for i := range d.cells {
		d.cells[i] = inf
	}
	for i := 0; i < n; i++ {
		d.cells[i*n+i] = 0
	}

	return d
}

// FromRows builds a Dense from explicit rows. Every row must have
// exactly len(rows) entries; otherwise ErrNotSquare is returned.
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	d := &Dense{n: n, cells: make([]float64, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
		d.cells = append(d.cells, row...)
	}

	return d, nil
}

// Rows returns the dimension of the matrix.
func (d *Dense) Rows() int { return d.n }

// Weight returns the stored weight for the ordered pair (u, v).
// Indices are the caller's contract; they are not re-checked on the
// lookup hot path.
func (d *Dense) Weight(u, v int) float64 { return d.cells[u*d.n+v] }

// Set stores w as the weight of (u, v). Returns ErrVertexOutOfRange for
// invalid indices.
func (d *Dense) Set(u, v int, w float64) error {
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		return fmt.Errorf("%w: cell (%d,%d) in %d×%d matrix", ErrVertexOutOfRange, u, v, d.n, d.n)
	}
	d.cells[u*d.n+v] = w

	return nil
}
