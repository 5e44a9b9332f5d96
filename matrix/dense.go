// Package matrix provides a dense int64 cost table used by generator's
// dense instance family, where nearly every ordered vertex pair carries a
// candidate arc and an adjacency-list representation would waste more
// memory than a flat row-major array.
package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major n×n table of arc costs with a parallel present bit
// per cell, so a zero-cost arc is distinguishable from an absent one.
type Dense struct {
	n       int
	cost    []int64
	present []bool
}

// NewDense creates an n×n Dense table with every cell absent.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slices.
// Complexity: O(n^2) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{
		n:       n,
		cost:    make([]int64, n*n),
		present: make([]bool, n*n),
	}, nil
}

// Size returns the table's row (== column) count.
func (m *Dense) Size() int {
	return m.n
}

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.n {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	return row*m.n + col, nil
}

// At reports the cost and presence of the arc (row, col).
func (m *Dense) At(row, col int) (cost int64, ok bool, err error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, false, err
	}
	return m.cost[idx], m.present[idx], nil
}

// Set records an arc (row, col) with the given cost.
func (m *Dense) Set(row, col int, cost int64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.cost[idx] = cost
	m.present[idx] = true
	return nil
}

// Clone returns a deep copy of the table.
func (m *Dense) Clone() *Dense {
	cost := make([]int64, len(m.cost))
	copy(cost, m.cost)
	present := make([]bool, len(m.present))
	copy(present, m.present)
	return &Dense{n: m.n, cost: cost, present: present}
}
