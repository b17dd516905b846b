package ring

import (
	"fmt"
	"strings"
)

// Matrix is a dense polynomial matrix. In module computations columns are
// generators and rows are free-module coordinates. Matrices are built once
// and read afterwards; the mutating Set is for assembly only.
type Matrix struct {
	r          *Ring
	rows, cols int
	data       [][]Poly
}

// NewMatrix returns a zero-filled rows x cols matrix over r.
func NewMatrix(r *Ring, rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("ring: negative matrix dimension %dx%d", rows, cols))
	}
	data := make([][]Poly, rows)
	for i := range data {
		data[i] = make([]Poly, cols)
		for j := range data[i] {
			data[i][j] = r.Zero()
		}
	}
	return &Matrix{r: r, rows: rows, cols: cols, data: data}
}

func (m *Matrix) Ring() *Ring { return m.r }
func (m *Matrix) Rows() int   { return m.rows }
func (m *Matrix) Cols() int   { return m.cols }

func (m *Matrix) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("ring: matrix index out of range [%d,%d] for %dx%d", row, col, m.rows, m.cols))
	}
}

func (m *Matrix) Get(row, col int) Poly {
	m.checkBounds(row, col)
	return m.data[row][col]
}

func (m *Matrix) Set(row, col int, val Poly) {
	m.checkBounds(row, col)
	m.data[row][col] = val
}

// Column returns a copy of the j-th column.
func (m *Matrix) Column(j int) []Poly {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("ring: column index %d out of range for %d columns", j, m.cols))
	}
	out := make([]Poly, m.rows)
	for i := range out {
		out[i] = m.data[i][j]
	}
	return out
}

// FirstRows returns the submatrix of the first s rows, all columns. This is
// the projection of a kernel matrix onto the primary block of unknowns,
// which by construction always occupies the first s coordinates.
func (m *Matrix) FirstRows(s int) *Matrix {
	if s < 0 || s > m.rows {
		panic(fmt.Sprintf("ring: cannot take first %d rows of a %dx%d matrix", s, m.rows, m.cols))
	}
	out := NewMatrix(m.r, s, m.cols)
	for i := 0; i < s; i++ {
		copy(out.data[i], m.data[i])
	}
	return out
}

// DropZeroColumns removes columns that are identically zero.
func (m *Matrix) DropZeroColumns() *Matrix {
	var keep []int
	for j := 0; j < m.cols; j++ {
		for i := 0; i < m.rows; i++ {
			if !m.data[i][j].IsZero() {
				keep = append(keep, j)
				break
			}
		}
	}
	out := NewMatrix(m.r, m.rows, len(keep))
	for i := 0; i < m.rows; i++ {
		for jj, j := range keep {
			out.data[i][jj] = m.data[i][j]
		}
	}
	return out
}

// DropZeroRows removes rows that are identically zero.
func (m *Matrix) DropZeroRows() *Matrix {
	var keep []int
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if !m.data[i][j].IsZero() {
				keep = append(keep, i)
				break
			}
		}
	}
	out := NewMatrix(m.r, len(keep), m.cols)
	for ii, i := range keep {
		copy(out.data[ii], m.data[i])
	}
	return out
}

func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if !m.data[i][j].Equal(other.data[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i][j].String())
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

// Det returns the determinant by cofactor expansion along the first row.
func (m *Matrix) Det() Poly {
	if m.rows != m.cols {
		panic("ring: Det requires a square matrix")
	}
	if m.rows == 0 {
		return m.r.One()
	}
	return matDet(m.r, m.data, m.rows)
}

func matDet(r *Ring, data [][]Poly, n int) Poly {
	if n == 1 {
		return data[0][0]
	}
	if n == 2 {
		return data[0][0].Mul(data[1][1]).Sub(data[0][1].Mul(data[1][0]))
	}
	det := r.Zero()
	for j := 0; j < n; j++ {
		if data[0][j].IsZero() {
			continue
		}
		minor := makeMinor(data, n, 0, j)
		t := data[0][j].Mul(matDet(r, minor, n-1))
		if j%2 == 1 {
			t = t.Neg()
		}
		det = det.Add(t)
	}
	return det
}

func makeMinor(data [][]Poly, n, skipRow, skipCol int) [][]Poly {
	minor := make([][]Poly, n-1)
	mi := 0
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		minor[mi] = make([]Poly, n-1)
		mj := 0
		for j := 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			minor[mi][mj] = data[i][j]
			mj++
		}
		mi++
	}
	return minor
}

// Submatrix returns the matrix restricted to the given row and column indices.
func (m *Matrix) Submatrix(rows, cols []int) *Matrix {
	out := NewMatrix(m.r, len(rows), len(cols))
	for i, ri := range rows {
		for j, cj := range cols {
			out.data[i][j] = m.Get(ri, cj)
		}
	}
	return out
}

// Jacobian returns the Jacobian matrix of the generator sequence: one row
// per generator, one column per ring variable.
func Jacobian(r *Ring, I Ideal) *Matrix {
	out := NewMatrix(r, len(I), r.Nvars())
	for i, f := range I {
		for j := 0; j < r.Nvars(); j++ {
			out.data[i][j] = f.Deriv(j)
		}
	}
	return out
}

// Minors returns all order-k minors of m as an ideal: one block per choice
// of k rows, each block listing the minors over the k-column subsets in
// lexicographic order. C(rows,k)*C(cols,k) entries in total.
func (m *Matrix) Minors(k int) Ideal {
	rowSets := Subsets(m.rows, k)
	colSets := Subsets(m.cols, k)
	out := make(Ideal, 0, len(rowSets)*len(colSets))
	for _, rs := range rowSets {
		for _, cs := range colSets {
			out = append(out, m.Submatrix(rs, cs).Det())
		}
	}
	return out
}
