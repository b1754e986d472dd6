// Package pap builds the presence-absence profile index (spec §2 item 2,
// §3 "PAP"): for each lexical character, a fixed-length bit vector over the
// canonical taxon order, plus the bookkeeping (singleton detection, ones/
// zeros counts) every downstream component needs.
package pap

import "fmt"

// denseErrorf wraps a bit-matrix error with method and coordinate context,
// matching the teacher's matrix.Dense error-wrapping convention.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("pap.bitMatrix.%s(%d,%d): %w", method, row, col, err)
}

// bitMatrix is a row-major, character × taxon presence matrix: row i is
// character i's PAP vector. It is the same flat-storage, row-major layout
// as the teacher's matrix.Dense, specialized from float64 to bool since a
// PAP is never anything but a presence/absence bit.
type bitMatrix struct {
	rows, cols int
	data       []bool // len == rows*cols, row-major
}

func newBitMatrix(rows, cols int) (*bitMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	return &bitMatrix{rows: rows, cols: cols, data: make([]bool, rows*cols)}, nil
}

func (m *bitMatrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	return row*m.cols + col, nil
}

func (m *bitMatrix) at(row, col int) (bool, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return false, err
	}
	return m.data[off], nil
}

func (m *bitMatrix) set(row, col int, v bool) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[off] = v
	return nil
}

// rowSlice returns a read-only view of row i as a fresh []bool copy.
func (m *bitMatrix) rowSlice(row int) []bool {
	out := make([]bool, m.cols)
	copy(out, m.data[row*m.cols:(row+1)*m.cols])
	return out
}
