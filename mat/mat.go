// Copyright 2025 The fulllu Authors. SPDX-License-Identifier: Apache-2.0

// Package mat provides the strided 2D views the lu package operates
// on: a single mutable view type backed by one flat slice plus
// independent row/column strides. Views alias freely — Submatrix, Col,
// Row, and Transpose all share the parent's storage — so the
// factorization can hand out trailing-submatrix and pivot-row/column
// views without copying.
package mat

import "github.com/kjellberg/fulllu/scalar"

// Matrix is an m×n grid of scalars with independent row and column
// strides (in element units, signed). RowStride == 1 means column-major
// with contiguous columns; ColStride == 1 means row-major. A Matrix may
// alias another Matrix's backing
// slice — Submatrix, Col, Row, and Transpose all return views over the
// same storage, never a copy.
type Matrix[T scalar.Scalar] struct {
	data                 []T
	offset               int
	rows, cols           int
	rowStride, colStride int
}

// NewColMajor allocates a new, zeroed, column-major (contiguous columns)
// matrix, the default and SIMD-friendly layout.
func NewColMajor[T scalar.Scalar](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("mat: negative dimension")
	}
	return Matrix[T]{
		data:      make([]T, rows*cols),
		rows:      rows,
		cols:      cols,
		rowStride: 1,
		colStride: rows,
	}
}

// NewRowMajor allocates a new, zeroed, row-major (contiguous rows) matrix.
func NewRowMajor[T scalar.Scalar](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("mat: negative dimension")
	}
	return Matrix[T]{
		data:      make([]T, rows*cols),
		rows:      rows,
		cols:      cols,
		rowStride: cols,
		colStride: 1,
	}
}

// FromColMajorSlice wraps an existing flat slice as a column-major view
// without copying. len(data) must be at least rows*cols.
func FromColMajorSlice[T scalar.Scalar](data []T, rows, cols int) Matrix[T] {
	if len(data) < rows*cols {
		panic("mat: backing slice too small")
	}
	return Matrix[T]{data: data, rows: rows, cols: cols, rowStride: 1, colStride: rows}
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// RowStride returns the row stride in elements.
func (m Matrix[T]) RowStride() int { return m.rowStride }

// ColStride returns the column stride in elements.
func (m Matrix[T]) ColStride() int { return m.colStride }

// IsColContiguous reports whether columns are contiguous in memory
// (row_stride == 1), the precondition for the SIMD column-scan kernels.
func (m Matrix[T]) IsColContiguous() bool { return m.rowStride == 1 }

// IsRowContiguous reports whether rows are contiguous in memory
// (col_stride == 1).
func (m Matrix[T]) IsRowContiguous() bool { return m.colStride == 1 }

func (m Matrix[T]) index(i, j int) int {
	return m.offset + i*m.rowStride + j*m.colStride
}

// At returns the element at (i, j).
func (m Matrix[T]) At(i, j int) T {
	return m.data[m.index(i, j)]
}

// Set assigns the element at (i, j).
func (m Matrix[T]) Set(i, j int, v T) {
	m.data[m.index(i, j)] = v
}

// Col returns a view of column j as a Vector of length Rows().
func (m Matrix[T]) Col(j int) Vector[T] {
	return Vector[T]{data: m.data, offset: m.index(0, j), stride: m.rowStride, n: m.rows}
}

// Row returns a view of row i as a Vector of length Cols().
func (m Matrix[T]) Row(i int) Vector[T] {
	return Vector[T]{data: m.data, offset: m.index(i, 0), stride: m.colStride, n: m.cols}
}

// Submatrix returns the rows×cols block starting at (i0, j0), aliasing
// the same backing storage.
func (m Matrix[T]) Submatrix(i0, j0, rows, cols int) Matrix[T] {
	if i0 < 0 || j0 < 0 || i0+rows > m.rows || j0+cols > m.cols {
		panic("mat: submatrix out of bounds")
	}
	return Matrix[T]{
		data:      m.data,
		offset:    m.index(i0, j0),
		rows:      rows,
		cols:      cols,
		rowStride: m.rowStride,
		colStride: m.colStride,
	}
}

// Transpose returns a view of the same storage with rows and columns
// (and their strides) swapped — the logical transpose that lets the
// column-major SIMD kernels handle row-major inputs.
func (m Matrix[T]) Transpose() Matrix[T] {
	return Matrix[T]{
		data:      m.data,
		offset:    m.offset,
		rows:      m.cols,
		cols:      m.rows,
		rowStride: m.colStride,
		colStride: m.rowStride,
	}
}

// SwapRows exchanges rows i and j across every column, in place.
func (m Matrix[T]) SwapRows(i, j int) {
	if i == j {
		return
	}
	for c := 0; c < m.cols; c++ {
		ii, jj := m.index(i, c), m.index(j, c)
		m.data[ii], m.data[jj] = m.data[jj], m.data[ii]
	}
}

// SwapCols exchanges columns i and j across every row, in place.
func (m Matrix[T]) SwapCols(i, j int) {
	if i == j {
		return
	}
	for r := 0; r < m.rows; r++ {
		ii, jj := m.index(r, i), m.index(r, j)
		m.data[ii], m.data[jj] = m.data[jj], m.data[ii]
	}
}

// Vector is a 1D strided view over a shared backing slice, used for rows
// and columns pulled out of a Matrix.
type Vector[T scalar.Scalar] struct {
	data   []T
	offset int
	stride int
	n      int
}

// Len returns the number of elements in the vector.
func (v Vector[T]) Len() int { return v.n }

// At returns element i.
func (v Vector[T]) At(i int) T { return v.data[v.offset+i*v.stride] }

// Set assigns element i.
func (v Vector[T]) Set(i int, x T) { v.data[v.offset+i*v.stride] = x }

// Slice returns the length-n sub-vector starting at index start, aliasing
// the same backing storage — used to pull the trailing part of a pivot
// row/column out of a full-width Row/Col view.
func (v Vector[T]) Slice(start, n int) Vector[T] {
	if start < 0 || n < 0 || start+n > v.n {
		panic("mat: vector slice out of bounds")
	}
	return Vector[T]{data: v.data, offset: v.offset + start*v.stride, stride: v.stride, n: n}
}

// AsColumn views the vector as an n×1 matrix, the shape the external
// matmul primitive (linalg.MatMul) expects for a rank-one update's
// left-hand factor.
func (v Vector[T]) AsColumn() Matrix[T] {
	return Matrix[T]{data: v.data, offset: v.offset, rows: v.n, cols: 1, rowStride: v.stride, colStride: 0}
}

// AsRow views the vector as a 1×n matrix, the shape linalg.MatMul expects
// for a rank-one update's right-hand factor.
func (v Vector[T]) AsRow() Matrix[T] {
	return Matrix[T]{data: v.data, offset: v.offset, rows: 1, cols: v.n, rowStride: 0, colStride: v.stride}
}

// Contiguous returns the vector as a plain Go slice when its stride is
// 1 (the precondition for the SIMD column-scan kernels), and false
// otherwise: adjacent contiguous elements can be viewed as a flat slice
// whenever the stride says they really are adjacent.
func (v Vector[T]) Contiguous() ([]T, bool) {
	if v.stride != 1 {
		return nil, false
	}
	return v.data[v.offset : v.offset+v.n], true
}
