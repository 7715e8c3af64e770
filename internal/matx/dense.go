// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matx provides a dense complex matrix type generic over the two
// precisions the solver supports (complex64 and complex128), in the shape
// of gonum's mat.CDense but monomorphizable from one source as recommended
// for the precision-specialized modules (see DESIGN.md).
package matx

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Complex is the set of scalar kinds the solver operates on.
type Complex interface {
	~complex64 | ~complex128
}

// Dense is a row-major dense complex matrix of rows*cols elements.
type Dense[T Complex] struct {
	rows, cols int
	data       []T
}

// NewDense creates an r x c matrix. If data is nil a zeroed backing slice is
// allocated; otherwise data is used directly and must have length r*c.
func NewDense[T Complex](r, c int, data []T) *Dense[T] {
	if r <= 0 || c <= 0 {
		panic("matx: non-positive dimension")
	}
	if data == nil {
		data = make([]T, r*c)
	} else if len(data) != r*c {
		panic("matx: data has wrong length")
	}
	return &Dense[T]{rows: r, cols: c, data: data}
}

// Identity returns the d x d identity matrix.
func Identity[T Complex](d int) *Dense[T] {
	m := NewDense[T](d, d, nil)
	var one T = 1
	for i := 0; i < d; i++ {
		m.Set(i, i, one)
	}
	return m
}

// Dims returns the matrix shape.
func (m *Dense[T]) Dims() (r, c int) { return m.rows, m.cols }

// At returns element (i,j).
func (m *Dense[T]) At(i, j int) T {
	m.checkBounds(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns element (i,j).
func (m *Dense[T]) Set(i, j int, v T) {
	m.checkBounds(i, j)
	m.data[i*m.cols+j] = v
}

// RawData returns the backing row-major slice. Mutating it mutates m.
func (m *Dense[T]) RawData() []T { return m.data }

func (m *Dense[T]) checkBounds(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matx: index (%d,%d) out of bounds for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Clone returns a deep copy of m.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Dense[T]{rows: m.rows, cols: m.cols, data: data}
}

// H returns a fresh conjugate transpose of m.
func (m *Dense[T]) H() *Dense[T] {
	out := NewDense[T](m.cols, m.rows, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, conjT(m.At(i, j)))
		}
	}
	return out
}

// Trace returns the sum of the diagonal elements.
func (m *Dense[T]) Trace() T {
	if m.rows != m.cols {
		panic("matx: trace of non-square matrix")
	}
	var sum T
	for i := 0; i < m.rows; i++ {
		sum += m.At(i, i)
	}
	return sum
}

// Scale returns a fresh matrix alpha*m.
func (m *Dense[T]) Scale(alpha T) *Dense[T] {
	out := NewDense[T](m.rows, m.cols, nil)
	for i, v := range m.data {
		out.data[i] = alpha * v
	}
	return out
}

// Combine returns a fresh matrix alpha*a + beta*b. a and b must share shape.
func Combine[T Complex](alpha T, a *Dense[T], beta T, b *Dense[T]) *Dense[T] {
	if a.rows != b.rows || a.cols != b.cols {
		panic("matx: shape mismatch")
	}
	out := NewDense[T](a.rows, a.cols, nil)
	for i := range out.data {
		out.data[i] = alpha*a.data[i] + beta*b.data[i]
	}
	return out
}

// Sub returns a fresh matrix a-b.
func Sub[T Complex](a, b *Dense[T]) *Dense[T] {
	var one T = 1
	return Combine(one, a, -one, b)
}

func conjT[T Complex](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(complex(real(x), -imag(x)))).(T)
	case complex128:
		return any(complex128(complex(real(x), -imag(x)))).(T)
	default:
		panic("matx: unsupported scalar kind")
	}
}

// toC128 upcasts a complex64/complex128 matrix to a fresh *mat.CDense.
func toC128[T Complex](m *Dense[T]) *mat.CDense {
	data := make([]complex128, len(m.data))
	for i, v := range m.data {
		data[i] = toComplex128(v)
	}
	return mat.NewCDense(m.rows, m.cols, data)
}

func fromC128[T Complex](cd *mat.CDense) *Dense[T] {
	r, c := cd.Dims()
	out := NewDense[T](r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, fromComplex128[T](cd.At(i, j)))
		}
	}
	return out
}

func toComplex128[T Complex](v T) complex128 {
	switch x := any(v).(type) {
	case complex64:
		return complex128(x)
	case complex128:
		return x
	default:
		panic("matx: unsupported scalar kind")
	}
}

func fromComplex128[T Complex](v complex128) T {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return any(complex64(v)).(T)
	case complex128:
		return any(v).(T)
	default:
		panic("matx: unsupported scalar kind")
	}
}
