// Copyright ©2013 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matx

import "testing"

func TestMulComplex128AgainstIdentity(t *testing.T) {
	a := NewDense[complex128](2, 2, []complex128{1, 2i, 3, 4 - 1i})
	id := Identity[complex128](2)
	got := Mul(a, id)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got.At(i, j) != a.At(i, j) {
				t.Errorf("Mul(a,I).At(%d,%d) = %v, want %v", i, j, got.At(i, j), a.At(i, j))
			}
		}
	}
}

func TestMulComplex64MatchesComplex128(t *testing.T) {
	a64 := NewDense[complex64](2, 2, []complex64{1, 2, 3, 4})
	b64 := NewDense[complex64](2, 2, []complex64{5, 6, 7, 8})
	a128 := NewDense[complex128](2, 2, []complex128{1, 2, 3, 4})
	b128 := NewDense[complex128](2, 2, []complex128{5, 6, 7, 8})

	got := Mul(a64, b64)
	want := Mul(a128, b128)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			g := complex128(got.At(i, j))
			w := want.At(i, j)
			if g != w {
				t.Errorf("Mul complex64 vs complex128 at (%d,%d): %v != %v", i, j, g, w)
			}
		}
	}
}

func TestKronOfIdentitiesIsIdentity(t *testing.T) {
	i2 := Identity[complex128](2)
	i3 := Identity[complex128](3)
	got := Kron(i2, i3)
	r, c := got.Dims()
	if r != 6 || c != 6 {
		t.Fatalf("Kron(I2,I3) dims = (%d,%d), want (6,6)", r, c)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if got.At(i, j) != want {
				t.Errorf("Kron(I2,I3).At(%d,%d) = %v, want %v", i, j, got.At(i, j), want)
			}
		}
	}
}

func TestKronShape(t *testing.T) {
	a := NewDense[complex128](2, 3, make([]complex128, 6))
	b := NewDense[complex128](4, 5, make([]complex128, 20))
	got := Kron(a, b)
	r, c := got.Dims()
	if r != 8 || c != 15 {
		t.Errorf("Kron shape = (%d,%d), want (8,15)", r, c)
	}
}
