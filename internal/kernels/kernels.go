// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernels implements the primitive, precision-parametric matrix
// operations the solver is built from: scalar product, Kronecker product,
// unitary rotation, rank-1 projection, and Haar-measure sampling. Every
// function is pure and generic over the two supported scalar kinds,
// complex64 and complex128 (see internal/matx), monomorphized over a
// numeric trait rather than carrying two near-duplicate source files.
package kernels

import (
	"math"
	"math/rand/v2"

	"github.com/wiesnim9/CSSFinder/internal/matx"
)

// Product computes trace(A*B), returning the real part. For Hermitian A, B
// the imaginary part vanishes up to floating error, so this also serves as
// the Hilbert-Schmidt inner product used throughout the Gilbert recursion.
func Product[T matx.Complex](a, b *matx.Dense[T]) float64 {
	p := matx.Mul(a, b)
	return realPart(p.Trace())
}

// Kronecker computes the standard Kronecker product of a and b.
func Kronecker[T matx.Complex](a, b *matx.Dense[T]) *matx.Dense[T] {
	return matx.Kron(a, b)
}

// Rotate computes U*rho*U^H.
func Rotate[T matx.Complex](rho, u *matx.Dense[T]) *matx.Dense[T] {
	return matx.Mul(matx.Mul(u, rho), u.H())
}

// Project builds the rank-1 projector v*v^H from a column vector v.
func Project[T matx.Complex](v []T) *matx.Dense[T] {
	d := len(v)
	col := matx.NewDense[T](d, 1, append([]T(nil), v...))
	row := col.H()
	return matx.Mul(col, row)
}

// Identity returns the d x d identity matrix.
func Identity[T matx.Complex](d int) *matx.Dense[T] {
	return matx.Identity[T](d)
}

// Normalize returns v / sqrt(<v,v>).
func Normalize[T matx.Complex](v []T) []T {
	var sumSq float64
	for _, c := range v {
		sumSq += realPart(conjProd(c, c))
	}
	norm := math.Sqrt(sumSq)
	out := make([]T, len(v))
	for i, c := range v {
		out[i] = scaleReal(c, 1/norm)
	}
	return out
}

// HaarVector draws a complex vector of dimension d whose direction is
// Haar-uniform, using the Box-Muller-style recipe:
//
//	component = exp(2*pi*i*u1) * sqrt(-ln(u2))
//
// with u1, u2 independently uniform on (0,1). The result is not normalized;
// callers that need a unit vector should call Normalize.
func HaarVector[T matx.Complex](rng *rand.Rand, d int) []T {
	out := make([]T, d)
	for i := 0; i < d; i++ {
		u1 := rng.Float64()
		for u1 == 0 {
			u1 = rng.Float64()
		}
		u2 := rng.Float64()
		for u2 == 0 {
			u2 = rng.Float64()
		}
		angle := 2 * math.Pi * u1
		radius := math.Sqrt(-math.Log(u2))
		out[i] = fromComplex128[T](complex(radius*math.Cos(angle), radius*math.Sin(angle)))
	}
	return out
}

func realPart[T matx.Complex](v T) float64 {
	switch x := any(v).(type) {
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	default:
		panic("kernels: unsupported scalar kind")
	}
}

func conjProd[T matx.Complex](a, b T) T {
	switch x := any(a).(type) {
	case complex64:
		y := any(b).(complex64)
		return any(complex64(complex(real(x), -imag(x))) * y).(T)
	case complex128:
		y := any(b).(complex128)
		return any(complex128(complex(real(x), -imag(x))) * y).(T)
	default:
		panic("kernels: unsupported scalar kind")
	}
}

func scaleReal[T matx.Complex](v T, s float64) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(complex(float64(real(x))*s, float64(imag(x))*s))).(T)
	case complex128:
		return any(complex(real(x)*s, imag(x)*s)).(T)
	default:
		panic("kernels: unsupported scalar kind")
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
		panic("kernels: unsupported scalar kind")
	}
}
