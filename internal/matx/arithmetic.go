// Copyright ©2013 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matx

import "gonum.org/v1/gonum/mat"

// Mul returns a fresh matrix a*b.
//
// The complex128 instantiation delegates to gonum's mat.CDense, which wraps
// a cblas128-backed Gemm; gonum ships no public complex64 BLAS surface (see
// DESIGN.md), so the complex64 instantiation uses a direct triple loop.
func Mul[T Complex](a, b *Dense[T]) *Dense[T] {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic("matx: dimension mismatch in Mul")
	}

	var zero T
	if _, ok := any(zero).(complex128); ok {
		ca := toC128(a)
		cb := toC128(b)
		var cp mat.CDense
		cp.Mul(ca, cb)
		return fromC128[T](&cp)
	}

	out := NewDense[T](ar, bc, nil)
	for i := 0; i < ar; i++ {
		for k := 0; k < ac; k++ {
			aik := a.At(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < bc; j++ {
				out.data[i*bc+j] += aik * b.At(k, j)
			}
		}
	}
	return out
}

// Kron returns the Kronecker product a (x) b, of shape
// (rows(a)*rows(b)) x (cols(a)*cols(b)).
func Kron[T Complex](a, b *Dense[T]) *Dense[T] {
	var zero T
	if _, ok := any(zero).(complex128); ok {
		ca := toC128(a)
		cb := toC128(b)
		var kp mat.CDense
		kp.Kronecker(ca, cb)
		return fromC128[T](&kp)
	}

	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := NewDense[T](ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			aij := a.At(i, j)
			for p := 0; p < br; p++ {
				for q := 0; q < bc; q++ {
					out.Set(i*br+p, j*bc+q, aij*b.At(p, q))
				}
			}
		}
	}
	return out
}
