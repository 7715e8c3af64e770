// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"testing"

	"github.com/wiesnim9/CSSFinder/internal/matx"
)

// assertInvolution checks that m*m = I, the defining property of a swap
// (transposition) permutation matrix.
func assertInvolution(t *testing.T, name string, m *matx.Dense[complex128]) {
	t.Helper()
	sq := matx.Mul(m, m)
	n, _ := sq.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if got := sq.At(i, j); got != want {
				t.Errorf("%s: (M*M).At(%d,%d) = %v, want %v", name, i, j, got, want)
			}
		}
	}
}

func TestSwap123IsInvolution(t *testing.T) {
	assertInvolution(t, "Swap123(d=2)", Swap123[complex128](2))
	assertInvolution(t, "Swap123(d=3)", Swap123[complex128](3))
}

func TestSwap4PartyMatricesAreInvolutions(t *testing.T) {
	d := 2
	assertInvolution(t, "Swap124", Swap124[complex128](d))
	assertInvolution(t, "Swap134", Swap134[complex128](d))
	assertInvolution(t, "Swap234", Swap234[complex128](d))
	assertInvolution(t, "Swap34", Swap34[complex128](d))
}

func TestSwap123EachRowHasExactlyOneOne(t *testing.T) {
	m := Swap123[complex128](2)
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		count := 0
		for j := 0; j < n; j++ {
			if m.At(i, j) != 0 {
				count++
			}
		}
		if count != 1 {
			t.Errorf("row %d has %d nonzero entries, want 1", i, count)
		}
	}
}

func TestQuadripartiteSwapsReturnsFourInOrder(t *testing.T) {
	swaps := QuadripartiteSwaps[complex128](2)
	if len(swaps) != 4 {
		t.Fatalf("len(QuadripartiteSwaps) = %d, want 4", len(swaps))
	}
	want := []*matx.Dense[complex128]{
		Swap124[complex128](2), Swap134[complex128](2), Swap234[complex128](2), Swap34[complex128](2),
	}
	for i := range want {
		wr, wc := want[i].Dims()
		gr, gc := swaps[i].Dims()
		if wr != gr || wc != gc {
			t.Errorf("swaps[%d] dims = (%d,%d), want (%d,%d)", i, gr, gc, wr, wc)
		}
		for r := 0; r < wr; r++ {
			for c := 0; c < wc; c++ {
				if want[i].At(r, c) != swaps[i].At(r, c) {
					t.Errorf("swaps[%d].At(%d,%d) mismatch", i, r, c)
				}
			}
		}
	}
}
