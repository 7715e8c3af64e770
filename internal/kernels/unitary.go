// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/wiesnim9/CSSFinder/internal/matx"
)

// NearIdentityTheta is the fixed small rotation angle (0.01*pi) the
// optimizer uses to build near-identity subsystem unitaries.
const NearIdentityTheta = 0.01 * math.Pi

// nearIdentityValue returns e^{i*theta} - 1, the scalar coefficient applied
// to a freshly-sampled rank-1 projector to build a near-identity unitary.
func nearIdentityValue[T matx.Complex]() T {
	v := cmplx.Exp(complex(0, NearIdentityTheta)) - 1
	return fromComplex128[T](v)
}

// NearIdentityOperator draws a fresh Haar-random unit vector phi in
// dimension d and returns I_d + (e^{i*theta}-1)*|phi><phi|, a unitary
// acting non-trivially in a single d-dimensional subsystem.
func NearIdentityOperator[T matx.Complex](rng *rand.Rand, d int) *matx.Dense[T] {
	phi := Normalize(HaarVector[T](rng, d))
	proj := Project(phi)
	var one T = 1
	return matx.Combine(nearIdentityValue[T](), proj, one, Identity[T](d))
}

// Expand embeds op, acting on a preDim*dim(op)*postDim space, by tensoring
// identities on either side: I_preDim (x) op (x) I_postDim.
func Expand[T matx.Complex](op *matx.Dense[T], preDim, postDim int) *matx.Dense[T] {
	out := op
	if preDim > 1 {
		out = Kronecker(Identity[T](preDim), out)
	}
	if postDim > 1 {
		out = Kronecker(out, Identity[T](postDim))
	}
	return out
}

// IPow returns base**exp for non-negative integer exp.
func IPow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
