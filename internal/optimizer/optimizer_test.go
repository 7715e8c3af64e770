// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimizer

import (
	"math/rand/v2"
	"testing"

	"github.com/wiesnim9/CSSFinder/internal/geometry"
	"github.com/wiesnim9/CSSFinder/internal/kernels"
	"github.com/wiesnim9/CSSFinder/internal/sampler"
)

func TestBudgetsAreMonotonicInDepth(t *testing.T) {
	if FullySeparableBudget(2, 2) >= FullySeparableBudget(3, 2) {
		t.Error("FullySeparableBudget should increase with depth")
	}
	if BipartiteBudget(2, 2) >= BipartiteBudget(3, 2) {
		t.Error("BipartiteBudget should increase with d1")
	}
	if TripartiteBudget(2) >= TripartiteBudget(3) {
		t.Error("TripartiteBudget should increase with depth")
	}
	if QuadripartiteBudget(2) >= QuadripartiteBudget(3) {
		t.Error("QuadripartiteBudget should increase with depth")
	}
}

func TestHillClimbNeverDecreasesOverlap(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	candidate := sampler.FullySeparable[complex128](rng, 2, 2)
	residual := sampler.FullySeparable[complex128](rng, 2, 2)

	before := kernels.Product(candidate, residual)
	climbed := FullySeparable[complex128](rng, candidate, residual, 2, 2, 10)
	after := kernels.Product(climbed, residual)

	if after < before-1e-12 {
		t.Errorf("hillClimb decreased overlap: before=%v after=%v", before, after)
	}
}

func TestBipartiteHillClimbNeverDecreasesOverlap(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	candidate := sampler.Bipartite[complex128](rng, 2, 3)
	residual := sampler.Bipartite[complex128](rng, 2, 3)

	before := kernels.Product(candidate, residual)
	climbed := Bipartite[complex128](rng, candidate, residual, 2, 3, 10)
	after := kernels.Product(climbed, residual)

	if after < before-1e-12 {
		t.Errorf("Bipartite hillClimb decreased overlap: before=%v after=%v", before, after)
	}
}

func TestTripartiteAllVariantsRun(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	swap123 := geometry.Swap123[complex128](2)
	for variant := 0; variant < 3; variant++ {
		candidate := sampler.Tripartite[complex128](rng, 2, variant, swap123)
		residual := sampler.Tripartite[complex128](rng, 2, variant, swap123)
		before := kernels.Product(candidate, residual)
		climbed := Tripartite[complex128](rng, candidate, residual, 2, variant, 5, swap123)
		after := kernels.Product(climbed, residual)
		if after < before-1e-12 {
			t.Errorf("variant %d: overlap decreased: before=%v after=%v", variant, before, after)
		}
	}
}

func TestQuadripartiteAllVariantsRun(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	swaps := geometry.QuadripartiteSwaps[complex128](2)
	for variant := 0; variant < 7; variant++ {
		candidate := sampler.Quadripartite[complex128](rng, 2, variant, swaps)
		residual := sampler.Quadripartite[complex128](rng, 2, variant, swaps)
		before := kernels.Product(candidate, residual)
		climbed := Quadripartite[complex128](rng, candidate, residual, 2, variant, 5, swaps)
		after := kernels.Product(climbed, residual)
		if after < before-1e-12 {
			t.Errorf("variant %d: overlap decreased: before=%v after=%v", variant, before, after)
		}
	}
}
