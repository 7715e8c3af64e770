// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/wiesnim9/CSSFinder/internal/matx"
)

func TestProductIsSymmetric(t *testing.T) {
	a := matx.NewDense[complex128](2, 2, []complex128{1, 2i, -2i, 3})
	b := matx.NewDense[complex128](2, 2, []complex128{2, 1i, -1i, 1})
	if got, want := Product(a, b), Product(b, a); math.Abs(got-want) > 1e-12 {
		t.Errorf("Product(a,b) = %v, Product(b,a) = %v, want equal", got, want)
	}
}

func TestKroneckerIdentityIdentity(t *testing.T) {
	got := Kronecker(Identity[complex128](2), Identity[complex128](2))
	r, c := got.Dims()
	if r != 4 || c != 4 {
		t.Fatalf("dims = (%d,%d), want (4,4)", r, c)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if got.At(i, j) != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got.At(i, j), want)
			}
		}
	}
}

func TestRotatePreservesTraceAndHermiticity(t *testing.T) {
	rho := matx.NewDense[complex128](2, 2, []complex128{0.6, 0.2 + 0.1i, 0.2 - 0.1i, 0.4})
	rng := rand.New(rand.NewPCG(1, 2))
	u := NearIdentityOperator[complex128](rng, 2)

	rotated := Rotate(rho, u)

	origTrace := rho.Trace()
	gotTrace := rotated.Trace()
	if math.Abs(real(gotTrace)-real(origTrace)) > 1e-9 || math.Abs(imag(gotTrace)) > 1e-9 {
		t.Errorf("Rotate did not preserve trace: got %v, want %v", gotTrace, origTrace)
	}

	r, c := rotated.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			got := rotated.At(i, j)
			want := complex(real(rotated.At(j, i)), -imag(rotated.At(j, i)))
			if math.Abs(real(got)-real(want)) > 1e-9 || math.Abs(imag(got)-imag(want)) > 1e-9 {
				t.Errorf("Rotate result not Hermitian at (%d,%d): %v vs conj(%d,%d)=%v", i, j, got, j, i, want)
			}
		}
	}
}

func TestProjectTraceEqualsNormSquared(t *testing.T) {
	v := []complex128{3, 4i}
	p := Project(v)
	var normSq float64
	for _, c := range v {
		normSq += real(c)*real(c) + imag(c)*imag(c)
	}
	if got := real(p.Trace()); math.Abs(got-normSq) > 1e-9 {
		t.Errorf("Project trace = %v, want %v", got, normSq)
	}
}

func TestNormalizeProducesUnitVector(t *testing.T) {
	v := []complex128{3, 4}
	n := Normalize(v)
	var sumSq float64
	for _, c := range n {
		sumSq += real(c)*real(c) + imag(c)*imag(c)
	}
	if math.Abs(sumSq-1) > 1e-9 {
		t.Errorf("||Normalize(v)||^2 = %v, want 1", sumSq)
	}
}

func TestHaarVectorDeterministicWithSeed(t *testing.T) {
	rng1 := rand.New(rand.NewPCG(7, 11))
	rng2 := rand.New(rand.NewPCG(7, 11))
	a := HaarVector[complex128](rng1, 4)
	b := HaarVector[complex128](rng2, 4)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("same-seed HaarVector differs at %d: %v != %v", i, a[i], b[i])
		}
	}
}
