// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package precision selects, at task construction time, which of the two
// monomorphized instantiations of the generic solver (complex64/float32
// or complex128/float64) a task runs at, and loads a MatrixMarket matrix
// into the chosen concrete type.
package precision

import (
	"fmt"

	"github.com/wiesnim9/CSSFinder/internal/cssfproject"
	"github.com/wiesnim9/CSSFinder/internal/matx"
	"github.com/wiesnim9/CSSFinder/internal/mmarket"
)

// FromProject maps a project's declared precision to the matx.Complex
// scalar kind it runs the solver at.
func FromProject(p cssfproject.Precision) (any, error) {
	switch p {
	case cssfproject.Single:
		return complex64(0), nil
	case cssfproject.Double:
		return complex128(0), nil
	default:
		return nil, fmt.Errorf("precision: unknown precision %q", p)
	}
}

// ToDense converts an mmarket.Matrix, always read as complex128, to the
// matx.Dense instantiation for T.
func ToDense[T matx.Complex](m *mmarket.Matrix) *matx.Dense[T] {
	data := make([]T, len(m.Data))
	for i, v := range m.Data {
		data[i] = fromComplex128[T](v)
	}
	return matx.NewDense[T](m.Rows, m.Cols, data)
}

// FromDense converts a matx.Dense back to an mmarket.Matrix for
// persistence, always widening to complex128.
func FromDense[T matx.Complex](d *matx.Dense[T]) *mmarket.Matrix {
	r, c := d.Dims()
	m := mmarket.NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, toComplex128(d.At(i, j)))
		}
	}
	return m
}

func toComplex128[T matx.Complex](v T) complex128 {
	switch x := any(v).(type) {
	case complex64:
		return complex128(x)
	case complex128:
		return x
	default:
		panic("precision: unsupported scalar kind")
	}
}

func fromComplex128[T matx.Complex](v complex128) T {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return any(complex64(v)).(T)
	case complex128:
		return any(v).(T)
	default:
		panic("precision: unsupported scalar kind")
	}
}
