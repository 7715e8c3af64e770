// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gilbert

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/wiesnim9/CSSFinder/internal/matx"
)

// bellState returns the 4x4 density matrix of the maximally entangled
// Bell state (|00>+|11>)/sqrt(2) on two qubits.
func bellState() *matx.Dense[complex128] {
	m := matx.NewDense[complex128](4, 4, nil)
	m.Set(0, 0, 0.5)
	m.Set(0, 3, 0.5)
	m.Set(3, 0, 0.5)
	m.Set(3, 3, 0.5)
	return m
}

func assertHermitianUnitTrace(t *testing.T, name string, m *matx.Dense[complex128]) {
	t.Helper()
	tr := m.Trace()
	if math.Abs(real(tr)-1) > 1e-6 || math.Abs(imag(tr)) > 1e-6 {
		t.Errorf("%s: trace = %v, want 1", name, tr)
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			got := m.At(i, j)
			want := complex(real(m.At(j, i)), -imag(m.At(j, i)))
			if math.Abs(real(got)-real(want)) > 1e-6 || math.Abs(imag(got)-imag(want)) > 1e-6 {
				t.Errorf("%s: not Hermitian at (%d,%d)", name, i, j)
			}
		}
	}
}

func TestNewRejectsNonSquareTarget(t *testing.T) {
	m := matx.NewDense[complex128](2, 3, nil)
	if _, err := New[complex128](m, Options[complex128]{Mode: SBiPa, Visibility: 1}); err == nil {
		t.Error("New: want error for non-square target, got nil")
	}
}

func TestNewRejectsVisibilityOutOfRange(t *testing.T) {
	m := bellState()
	if _, err := New[complex128](m, Options[complex128]{Mode: SBiPa, Visibility: 1.5}); err == nil {
		t.Error("New: want error for visibility > 1, got nil")
	}
}

func TestNewStateStartsDiagonalAndValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	e, err := New[complex128](bellState(), Options[complex128]{
		Mode: SBiPa, Visibility: 0.8, Depth: 2, Quantity: 2, Rand: rng,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assertHermitianUnitTrace(t, "initial state", e.State())
	st := e.State()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j && st.At(i, j) != 0 {
				t.Errorf("initial state At(%d,%d) = %v, want 0", i, j, st.At(i, j))
			}
		}
	}
}

func TestRunEpochNeverIncreasesResidual(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	e, err := New[complex128](bellState(), Options[complex128]{
		Mode: SBiPa, Visibility: 0.7, Depth: 2, Quantity: 2, Rand: rng,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	prev := e.ResidualSquaredNorm()
	for epoch := 0; epoch < 5; epoch++ {
		e.RunEpoch(10, epoch)
		cur := e.ResidualSquaredNorm()
		if cur > prev+1e-9 {
			t.Errorf("epoch %d: residual increased: %v -> %v", epoch, prev, cur)
		}
		prev = cur
		assertHermitianUnitTrace(t, "state after epoch", e.State())
	}
}

func TestCorrectionsOrdinalsAreStrictlyIncreasing(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	e, err := New[complex128](bellState(), Options[complex128]{
		Mode: SBiPa, Visibility: 0.6, Depth: 2, Quantity: 2, Rand: rng,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for epoch := 0; epoch < 10; epoch++ {
		e.RunEpoch(10, epoch)
	}
	recs := e.Corrections()
	for i := 1; i < len(recs); i++ {
		if recs[i].Ordinal != recs[i-1].Ordinal+1 {
			t.Errorf("ordinal[%d]=%d not successor of ordinal[%d]=%d", i, recs[i].Ordinal, i-1, recs[i-1].Ordinal)
		}
	}
	if e.CorrectionsCount() != len(recs) {
		t.Errorf("CorrectionsCount() = %d, want %d", e.CorrectionsCount(), len(recs))
	}
}

func TestRunStopsAtMaxCorrections(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	e, err := New[complex128](bellState(), Options[complex128]{
		Mode: SBiPa, Visibility: 0.6, Depth: 2, Quantity: 2, Rand: rng,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// The cap is checked at epoch boundaries: Run stops after the first
	// epoch that ends with at least 3 corrections.
	var counts []int
	err = e.Run(1000, 5, 3, func(int) error {
		counts = append(counts, e.CorrectionsCount())
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	last := len(counts) - 1
	for i := 0; i < last; i++ {
		if counts[i] >= 3 {
			t.Errorf("epoch %d ended with %d corrections, want Run to stop there", i, counts[i])
		}
	}
	if last < 999 && e.ResidualSquaredNorm() >= ConvergenceThreshold*ConvergenceThreshold && counts[last] < 3 {
		t.Errorf("Run stopped after epoch %d with %d corrections, want >= 3", last, counts[last])
	}
}

func TestRunPropagatesOnEpochError(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	e, err := New[complex128](bellState(), Options[complex128]{
		Mode: SBiPa, Visibility: 0.6, Depth: 2, Quantity: 2, Rand: rng,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	boom := errTest("boom")
	err = e.Run(1000, 5, -1, func(epochIndex int) error {
		if epochIndex == 0 {
			return boom
		}
		return nil
	})
	if err != boom {
		t.Errorf("Run: err = %v, want %v", err, boom)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
