// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sampler draws random candidate product states for each
// separability mode: full n-qudit separability (FSnQd), bipartite
// separability (SBiPa), and the biseparable building block genuine
// 3-/4-partite witnesses cycle through their bipartition variants with
// (G3PaE3qD, G4PaE3qD).
package sampler

import (
	"math/rand/v2"

	"github.com/wiesnim9/CSSFinder/internal/kernels"
	"github.com/wiesnim9/CSSFinder/internal/matx"
)

// FullySeparable draws a rank-1 projector on the tensor product of n
// independent Haar-uniform unit vectors in C^depth.
func FullySeparable[T matx.Complex](rng *rand.Rand, depth, quantity int) *matx.Dense[T] {
	vector := kernels.Normalize(kernels.HaarVector[T](rng, depth))
	for i := 1; i < quantity; i++ {
		next := kernels.Normalize(kernels.HaarVector[T](rng, depth))
		vector = outer(vector, next)
	}
	return kernels.Project(vector)
}

// Bipartite draws a rank-1 projector on the tensor product of two
// independent Haar-uniform unit vectors in C^d1 and C^d2.
func Bipartite[T matx.Complex](rng *rand.Rand, d1, d2 int) *matx.Dense[T] {
	a := kernels.Normalize(kernels.HaarVector[T](rng, d1))
	b := kernels.Normalize(kernels.HaarVector[T](rng, d2))
	return kernels.Project(outer(a, b))
}

// Tripartite draws a biseparable state for one of the three bipartitions of
// a 3-qu(d)it system (aBC, AbC, ABc), cycling on variant i in {0,1,2}.
// Variant 1 (AbC) is realized by rotating the aBC generator with swap123.
func Tripartite[T matx.Complex](rng *rand.Rand, d int, variant int, swap123 *matx.Dense[T]) *matx.Dense[T] {
	switch variant % 3 {
	case 0: // aBC
		return Bipartite[T](rng, d, d*d)
	case 1: // AbC
		return kernels.Rotate(Bipartite[T](rng, d, d*d), swap123)
	default: // ABc
		return Bipartite[T](rng, d*d, d)
	}
}

// Quadripartite draws a biseparable state for one of the seven
// bipartitions of a 4-qu(d)it system, cycling on variant i in {0..6}.
// swaps must be [swap124, swap134, swap234, swap34] as returned by
// geometry.QuadripartiteSwaps.
func Quadripartite[T matx.Complex](rng *rand.Rand, d int, variant int, swaps []*matx.Dense[T]) *matx.Dense[T] {
	swap124, swap134, swap234, swap34 := swaps[0], swaps[1], swaps[2], swaps[3]
	switch variant % 7 {
	case 0: // aBCD
		return Bipartite[T](rng, d, d*d*d)
	case 1: // AbCD
		return kernels.Rotate(Bipartite[T](rng, d, d*d*d), swap124)
	case 2: // ABcD
		return kernels.Rotate(Bipartite[T](rng, d*d*d, d), swap34)
	case 3: // ABCd
		return Bipartite[T](rng, d*d*d, d)
	case 4: // abCD
		return Bipartite[T](rng, d*d, d*d)
	case 5: // aBcD
		return kernels.Rotate(Bipartite[T](rng, d*d, d*d), swap234)
	default: // aBCd
		return kernels.Rotate(Bipartite[T](rng, d*d, d*d), swap134)
	}
}

// outer flattens the tensor (outer) product of two vectors into one.
func outer[T matx.Complex](a, b []T) []T {
	out := make([]T, len(a)*len(b))
	for i, av := range a {
		for j, bv := range b {
			out[i*len(b)+j] = av * bv
		}
	}
	return out
}
