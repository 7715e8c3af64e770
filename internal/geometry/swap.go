// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import "github.com/wiesnim9/CSSFinder/internal/matx"

// Swap123 returns the permutation matrix on (C^d)^(x)3 that swaps the first
// two parties: |i1,i2,i3> -> |i2,i1,i3>. It realizes the AbC bipartition of
// G3PaE3qD from the aBC generator.
func Swap123[T matx.Complex](d int) *matx.Dense[T] {
	n := d * d * d
	m := matx.NewDense[T](n, n, nil)
	var one T = 1
	for i1 := 0; i1 < d; i1++ {
		for i2 := 0; i2 < d; i2++ {
			for i3 := 0; i3 < d; i3++ {
				row := i1*d*d + i2*d + i3
				col := i2*d*d + i1*d + i3
				m.Set(row, col, one)
			}
		}
	}
	return m
}

// Swap124 returns the permutation matrix on (C^d)^(x)4 swapping parties 1
// and 2: |i1,i2,i3,i4> -> |i2,i1,i3,i4>.
func Swap124[T matx.Complex](d int) *matx.Dense[T] {
	return permute4[T](d, func(i1, i2, i3, i4 int) (int, int, int, int) {
		return i2, i1, i3, i4
	})
}

// Swap134 returns the permutation matrix on (C^d)^(x)4 swapping parties 1
// and 3: |i1,i2,i3,i4> -> |i3,i2,i1,i4>.
func Swap134[T matx.Complex](d int) *matx.Dense[T] {
	return permute4[T](d, func(i1, i2, i3, i4 int) (int, int, int, int) {
		return i3, i2, i1, i4
	})
}

// Swap234 returns the permutation matrix on (C^d)^(x)4 swapping parties 2
// and 3: |i1,i2,i3,i4> -> |i1,i3,i2,i4>.
func Swap234[T matx.Complex](d int) *matx.Dense[T] {
	return permute4[T](d, func(i1, i2, i3, i4 int) (int, int, int, int) {
		return i1, i3, i2, i4
	})
}

// Swap34 returns the permutation matrix on (C^d)^(x)4 swapping parties 3
// and 4: |i1,i2,i3,i4> -> |i1,i2,i4,i3>.
func Swap34[T matx.Complex](d int) *matx.Dense[T] {
	return permute4[T](d, func(i1, i2, i3, i4 int) (int, int, int, int) {
		return i1, i2, i4, i3
	})
}

func permute4[T matx.Complex](d int, perm func(i1, i2, i3, i4 int) (int, int, int, int)) *matx.Dense[T] {
	n := d * d * d * d
	m := matx.NewDense[T](n, n, nil)
	var one T = 1
	for i1 := 0; i1 < d; i1++ {
		for i2 := 0; i2 < d; i2++ {
			for i3 := 0; i3 < d; i3++ {
				for i4 := 0; i4 < d; i4++ {
					row := ((i1*d+i2)*d+i3)*d + i4
					j1, j2, j3, j4 := perm(i1, i2, i3, i4)
					col := ((j1*d+j2)*d+j3)*d + j4
					m.Set(row, col, one)
				}
			}
		}
	}
	return m
}

// TripartiteSwaps returns the one swap matrix the G3PaE3qD sampler and
// optimizer cycle through its three bipartition variants with (variant 0,
// aBC, needs no swap; variant 1, AbC, is rotated by it; variant 2, ABc,
// uses the (d*d, d) split directly and needs no swap either).
func TripartiteSwaps[T matx.Complex](d int) []*matx.Dense[T] {
	return []*matx.Dense[T]{Swap123[T](d)}
}

// QuadripartiteSwaps returns the swap124, swap134, swap234, swap34
// matrices the G4PaE3qD sampler and optimizer cycle through its seven
// bipartition variants with.
func QuadripartiteSwaps[T matx.Complex](d int) []*matx.Dense[T] {
	return []*matx.Dense[T]{Swap124[T](d), Swap134[T](d), Swap234[T](d), Swap34[T](d)}
}
