// SPDX-License-Identifier: MIT

// Package csc - compressed sparse column storage & safe accessors.
//
// Purpose:
//   - Provide the column-major sparse layout every symbolic and triangular kernel consumes.
//   - Keep the public surface safe: At/Set/Remove return errors instead of panicking.
//   - Expose the raw arrays (ColIdx, NzRows, NzValues) for hot loops; kernels read them directly.
//
// Layout invariants:
//   - len(ColIdx) >= NumCols+1, ColIdx[0] == 0, ColIdx non-decreasing, ColIdx[NumCols] == NzLength.
//   - Column j owns NzRows[ColIdx[j]:ColIdx[j+1]] and the parallel NzValues slice.
//   - IndicesSorted reports whether every column lists its rows in ascending order.
//
// Complexity quicksheet:
//   - New/Reshape: O(cols + nz) zero-init; Get/At: O(column length); Set/Remove: O(nz) shift.

package csc

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opAt         = "At"
	opSet        = "Set"
	opRemove     = "Remove"
	opPermute    = "Permute"
	opPermSym    = "PermuteSymmetric"
	opConcatRows = "ConcatRows"
	opFixture    = "Fixture"
	opValidate   = "ValidateStructure"
)

// cscErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func cscErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a sparse matrix in compressed sparse column (CSC) format.
type Matrix struct {
	NumRows int // number of rows
	NumCols int // number of columns

	ColIdx   []int     // column pointers, len >= NumCols+1
	NzRows   []int     // row index of each stored entry
	NzValues []float64 // value of each stored entry, parallel to NzRows
	NzLength int       // number of stored entries in use

	IndicesSorted bool // rows ascending inside every column
}

// New creates an empty rows×cols matrix with room for nzCap entries.
//
// Errors:
//   - ErrInvalidDimensions when rows, cols or nzCap is negative.
//
// Complexity: O(cols + nzCap).
func New(rows, cols, nzCap int) (*Matrix, error) {
	if rows < 0 || cols < 0 || nzCap < 0 {
		return nil, cscErrorf(opNew, ErrInvalidDimensions)
	}
	m := &Matrix{}
	m.Reshape(rows, cols, nzCap)
	m.IndicesSorted = true

	return m, nil
}

// MustNew is New for statically known shapes; it panics on invalid dimensions.
func MustNew(rows, cols, nzCap int) *Matrix {
	m, err := New(rows, cols, nzCap)
	if err != nil {
		panic(err)
	}

	return m
}

// Reshape changes the shape, drops every stored entry and ensures room for nzCap entries.
// Existing backing arrays are reused when large enough.
func (m *Matrix) Reshape(rows, cols, nzCap int) {
	m.NumRows, m.NumCols = rows, cols
	if cap(m.ColIdx) < cols+1 {
		m.ColIdx = make([]int, cols+1)
	} else {
		m.ColIdx = m.ColIdx[:cols+1]
		clear(m.ColIdx)
	}
	m.NzLength = 0
	m.GrowMaxLength(nzCap, false)
	m.IndicesSorted = false
}

// GrowMaxLength makes sure at least n entries can be stored. When preserve is
// true the first NzLength entries survive a reallocation.
func (m *Matrix) GrowMaxLength(n int, preserve bool) {
	if len(m.NzRows) >= n && len(m.NzValues) >= n {
		return
	}
	rows := make([]int, n)
	values := make([]float64, n)
	if preserve {
		copy(rows, m.NzRows[:m.NzLength])
		copy(values, m.NzValues[:m.NzLength])
	}
	m.NzRows, m.NzValues = rows, values
}

// Zero drops every stored entry while keeping the shape.
func (m *Matrix) Zero() {
	clear(m.ColIdx[:m.NumCols+1])
	m.NzLength = 0
}

// NonZeroCount returns the number of stored entries.
func (m *Matrix) NonZeroCount() int { return m.NzLength }

// ColSum turns a per-column histogram into column pointers. On return
// hist[j] holds the start offset of column j, ready to be used as an
// insertion cursor, and storage is grown to the total.
func (m *Matrix) ColSum(hist []int) {
	m.ColIdx[0] = 0
	sum := 0
	var c int
	for j := 0; j < m.NumCols; j++ {
		c = hist[j]
		hist[j] = sum
		sum += c
		m.ColIdx[j+1] = sum
	}
	m.NzLength = sum
	m.GrowMaxLength(sum, false)
}

// nzIndex returns the storage offset of (row, col) or -1 if not stored.
func (m *Matrix) nzIndex(row, col int) int {
	for p := m.ColIdx[col]; p < m.ColIdx[col+1]; p++ {
		if m.NzRows[p] == row {
			return p
		}
	}

	return -1
}

// Get returns A[row,col], or 0 when the entry is not stored. Indices are not checked.
func (m *Matrix) Get(row, col int) float64 {
	if p := m.nzIndex(row, col); p >= 0 {
		return m.NzValues[p]
	}

	return 0
}

// IsAssigned reports whether (row, col) is a stored entry.
func (m *Matrix) IsAssigned(row, col int) bool {
	return m.nzIndex(row, col) >= 0
}

// At is the bounds-checked form of Get.
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, cscErrorf(opAt, err)
	}

	return m.Get(row, col), nil
}

// Set assigns A[row,col] = v, inserting a new entry when needed. In a matrix
// with sorted indices the new entry keeps its column sorted.
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.checkIndex(row, col); err != nil {
		return cscErrorf(opSet, err)
	}
	if p := m.nzIndex(row, col); p >= 0 {
		m.NzValues[p] = v

		return nil
	}

	// insertion point: after the last smaller row when sorted, else at column end
	idx1 := m.ColIdx[col+1]
	pos := idx1
	if m.IndicesSorted {
		pos = m.ColIdx[col]
		for pos < idx1 && m.NzRows[pos] < row {
			pos++
		}
	}

	if m.NzLength+1 > len(m.NzRows) {
		m.GrowMaxLength(2*m.NzLength+1, true)
	}
	copy(m.NzRows[pos+1:m.NzLength+1], m.NzRows[pos:m.NzLength])
	copy(m.NzValues[pos+1:m.NzLength+1], m.NzValues[pos:m.NzLength])
	m.NzRows[pos] = row
	m.NzValues[pos] = v
	m.NzLength++
	for j := col + 1; j <= m.NumCols; j++ {
		m.ColIdx[j]++
	}

	return nil
}

// Remove deletes the stored entry at (row, col). Removing an absent entry is a no-op.
func (m *Matrix) Remove(row, col int) error {
	if err := m.checkIndex(row, col); err != nil {
		return cscErrorf(opRemove, err)
	}
	p := m.nzIndex(row, col)
	if p < 0 {
		return nil
	}
	copy(m.NzRows[p:m.NzLength-1], m.NzRows[p+1:m.NzLength])
	copy(m.NzValues[p:m.NzLength-1], m.NzValues[p+1:m.NzLength])
	m.NzLength--
	for j := col + 1; j <= m.NumCols; j++ {
		m.ColIdx[j]--
	}

	return nil
}

func (m *Matrix) checkIndex(row, col int) error {
	if row < 0 || row >= m.NumRows || col < 0 || col >= m.NumCols {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.NumRows, m.NumCols, ErrOutOfRange)
	}

	return nil
}

// Copy returns a deep copy trimmed to the stored entries.
func (m *Matrix) Copy() *Matrix {
	out := &Matrix{
		NumRows:       m.NumRows,
		NumCols:       m.NumCols,
		ColIdx:        make([]int, m.NumCols+1),
		NzRows:        make([]int, m.NzLength),
		NzValues:      make([]float64, m.NzLength),
		NzLength:      m.NzLength,
		IndicesSorted: m.IndicesSorted,
	}
	copy(out.ColIdx, m.ColIdx[:m.NumCols+1])
	copy(out.NzRows, m.NzRows[:m.NzLength])
	copy(out.NzValues, m.NzValues[:m.NzLength])

	return out
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	values := make([]float64, n)
	for i := range values {
		values[i] = 1
	}

	return Diag(values...)
}

// Diag returns a square matrix with the given values on its diagonal.
func Diag(values ...float64) *Matrix {
	n := len(values)
	m := MustNew(n, n, n)
	for i, v := range values {
		m.NzRows[i] = i
		m.NzValues[i] = v
		m.ColIdx[i+1] = i + 1
	}
	m.NzLength = n
	m.IndicesSorted = true

	return m
}

// CheckStructure reports whether m satisfies the CSC invariants.
func CheckStructure(m *Matrix) bool {
	return ValidateStructure(m) == nil
}

// ValidateStructure checks the CSC invariants: monotonic column pointers
// starting at 0 and ending at NzLength, in-range row indices and no
// duplicate rows in a column.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrBadStructure naming the first offending column.
//
// Complexity: O(rows + cols + nz).
func ValidateStructure(m *Matrix) error {
	if m == nil {
		return cscErrorf(opValidate, ErrNilMatrix)
	}
	if len(m.ColIdx) < m.NumCols+1 || m.ColIdx[0] != 0 {
		return cscErrorf(opValidate, fmt.Errorf("column pointers: %w", ErrBadStructure))
	}
	if m.ColIdx[m.NumCols] != m.NzLength || m.NzLength > len(m.NzRows) || m.NzLength > len(m.NzValues) {
		return cscErrorf(opValidate, fmt.Errorf("nz length %d: %w", m.NzLength, ErrBadStructure))
	}
	seen := make([]int, m.NumRows)
	for i := range seen {
		seen[i] = -1
	}
	for j := 0; j < m.NumCols; j++ {
		if m.ColIdx[j] > m.ColIdx[j+1] {
			return cscErrorf(opValidate, fmt.Errorf("column %d: %w", j, ErrBadStructure))
		}
		for p := m.ColIdx[j]; p < m.ColIdx[j+1]; p++ {
			r := m.NzRows[p]
			if r < 0 || r >= m.NumRows || seen[r] == j {
				return cscErrorf(opValidate, fmt.Errorf("column %d row %d: %w", j, r, ErrBadStructure))
			}
			seen[r] = j
		}
	}

	return nil
}

// String renders the stored entries column by column.
func (m *Matrix) String() string {
	s := fmt.Sprintf("csc %dx%d nz=%d\n", m.NumRows, m.NumCols, m.NzLength)
	for j := 0; j < m.NumCols; j++ {
		for p := m.ColIdx[j]; p < m.ColIdx[j+1]; p++ {
			s += fmt.Sprintf("  (%d,%d) %g\n", m.NzRows[p], j, m.NzValues[p])
		}
	}

	return s
}
