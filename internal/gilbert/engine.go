// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gilbert implements the Gilbert convex-combination search: it
// maintains a target ρ_v, a current approximant ρ1 drawn from a mode's
// convex set of non-entangled states, and moves ρ1 along the segment to
// the next sampled vertex that minimizes squared Hilbert-Schmidt distance.
package gilbert

import (
	"fmt"
	"math/rand/v2"

	"github.com/wiesnim9/CSSFinder/internal/corrections"
	"github.com/wiesnim9/CSSFinder/internal/geometry"
	"github.com/wiesnim9/CSSFinder/internal/kernels"
	"github.com/wiesnim9/CSSFinder/internal/matx"
	"github.com/wiesnim9/CSSFinder/internal/optimizer"
	"github.com/wiesnim9/CSSFinder/internal/sampler"
)

// SymmetryEvery is the default cadence (in accepted corrections) at which
// configured symmetries are re-applied to ρ1 (see DESIGN.md for why 50
// was picked as the default, and Options.SymmetryEvery to override it).
const SymmetryEvery = 50

// Options configures one Engine run.
type Options[T matx.Complex] struct {
	Mode       Mode
	Visibility float64
	Depth      int
	Quantity   int

	// Symmetries is an ordered list of orbits; each orbit is an ordered
	// list of unitaries applied and summed before re-normalizing ρ1.
	Symmetries [][]*matx.Dense[T]
	// Projection, if non-nil, is applied as ρ1 <- P ρ1 P^H after every
	// accepted update, followed by trace re-normalization.
	Projection *matx.Dense[T]
	// SymmetryEvery overrides SymmetryEvery when positive.
	SymmetryEvery int

	// Initial, if non-nil, seeds ρ1 from a prior, persisted run instead
	// of the diagonal of ρ_v.
	Initial *matx.Dense[T]

	Rand *rand.Rand
}

// Engine owns ρ_v, ρ1, the residual, cached scalar products, and the
// growing corrections log for one task.
type Engine[T matx.Complex] struct {
	mode       Mode
	depth      int
	quantity   int
	dim        int
	visibility *matx.Dense[T]
	state      *matx.Dense[T]
	residual   *matx.Dense[T]

	aa4 float64
	aa6 float64
	dd1 float64

	symmetries    [][]*matx.Dense[T]
	projection    *matx.Dense[T]
	symmetryEvery int

	swap123   *matx.Dense[T]
	swapQuad  []*matx.Dense[T]

	rng *rand.Rand

	records []corrections.Record
}

// New constructs an Engine from a target density matrix ρ and an Options
// describing the mode, visibility, and optional symmetries/projection.
func New[T matx.Complex](rho *matx.Dense[T], opts Options[T]) (*Engine[T], error) {
	r, c := rho.Dims()
	if r != c {
		return nil, fmt.Errorf("gilbert: target matrix is not square (%dx%d)", r, c)
	}
	if opts.Visibility < 0 || opts.Visibility > 1 {
		return nil, fmt.Errorf("gilbert: visibility %g out of [0,1]", opts.Visibility)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 1))
	}

	e := &Engine[T]{
		mode:          opts.Mode,
		depth:         opts.Depth,
		quantity:      opts.Quantity,
		dim:           r,
		symmetries:    opts.Symmetries,
		projection:    opts.Projection,
		symmetryEvery: opts.SymmetryEvery,
		rng:           rng,
	}
	if e.symmetryEvery <= 0 {
		e.symmetryEvery = SymmetryEvery
	}

	if e.depth == 0 || (e.mode != G3PaE3qD && e.mode != G4PaE3qD && e.quantity == 0) {
		if err := e.detectDimensions(); err != nil {
			return nil, err
		}
	}
	if e.mode == G3PaE3qD {
		e.swap123 = geometry.Swap123[T](e.depth)
	}
	if e.mode == G4PaE3qD {
		e.swapQuad = geometry.QuadripartiteSwaps[T](e.depth)
	}

	e.visibility = noisyTarget(rho, opts.Visibility)

	if opts.Initial != nil {
		e.state = opts.Initial.Clone()
	} else {
		e.state = diagonalOf(e.visibility)
	}

	if len(e.symmetries) > 0 {
		e.applySymmetries()
	}
	if e.projection != nil {
		e.applyProjection()
	}

	e.refreshCaches()
	return e, nil
}

func (e *Engine[T]) detectDimensions() error {
	var dims geometry.Dimensions
	var err error
	switch e.mode {
	case FSnQd:
		dims, err = geometry.DetectFullySeparable(e.dim)
	case SBiPa:
		dims, err = geometry.DetectBipartite(e.dim)
	case G3PaE3qD:
		dims, err = geometry.DetectTripartite(e.dim)
	case G4PaE3qD:
		dims, err = geometry.DetectQuadripartite(e.dim)
	}
	if err != nil {
		return err
	}
	e.depth, e.quantity = dims.Depth, dims.Quantity
	return nil
}

// noisyTarget computes ρ_v = v*ρ + (1-v)/D * I.
func noisyTarget[T matx.Complex](rho *matx.Dense[T], v float64) *matx.Dense[T] {
	d, _ := rho.Dims()
	ident := kernels.Identity[T](d)
	return matx.Combine(scalarT[T](v), rho, scalarT[T]((1-v)/float64(d)), ident)
}

// diagonalOf returns a matrix with the same diagonal as m and zero
// off-diagonal entries: the trivially separable starting approximant.
func diagonalOf[T matx.Complex](m *matx.Dense[T]) *matx.Dense[T] {
	d, _ := m.Dims()
	out := matx.NewDense[T](d, d, nil)
	for i := 0; i < d; i++ {
		out.Set(i, i, m.At(i, i))
	}
	return out
}

func scalarT[T matx.Complex](v float64) T {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return any(complex64(complex(float32(v), 0))).(T)
	case complex128:
		return any(complex(v, 0)).(T)
	default:
		panic("gilbert: unsupported scalar kind")
	}
}

func (e *Engine[T]) refreshCaches() {
	e.residual = matx.Sub(e.visibility, e.state)
	e.aa4 = 2 * kernels.Product(e.visibility, e.state)
	e.aa6 = kernels.Product(e.state, e.state)
	e.dd1 = e.aa4/2 - e.aa6
}

// State returns a copy of the current approximant ρ1.
func (e *Engine[T]) State() *matx.Dense[T] { return e.state.Clone() }

// Corrections returns a copy of the accepted-update log.
func (e *Engine[T]) Corrections() []corrections.Record {
	out := make([]corrections.Record, len(e.records))
	copy(out, e.records)
	return out
}

// CorrectionsCount returns the number of accepted updates so far.
func (e *Engine[T]) CorrectionsCount() int { return len(e.records) }

// ResidualSquaredNorm returns <R,R> for the current residual.
func (e *Engine[T]) ResidualSquaredNorm() float64 {
	return kernels.Product(e.residual, e.residual)
}

// ConvergenceThreshold is the residual norm below which a run is
// considered converged.
const ConvergenceThreshold = 1e-7

// Run drives epochs until max_epochs is reached, max_corrections is
// reached (disabled when negative), or the residual norm drops below
// ConvergenceThreshold. After each epoch it invokes onEpoch, allowing the
// caller to persist state/corrections and observe progress; a non-nil
// error from onEpoch aborts the run.
func (e *Engine[T]) Run(maxEpochs, itersPerEpoch, maxCorrections int, onEpoch func(epochIndex int) error) error {
	for epoch := 0; epoch < maxEpochs; epoch++ {
		e.RunEpoch(itersPerEpoch, epoch)

		if onEpoch != nil {
			if err := onEpoch(epoch); err != nil {
				return err
			}
		}

		if maxCorrections >= 0 && e.CorrectionsCount() >= maxCorrections {
			return nil
		}
		if e.ResidualSquaredNorm() < ConvergenceThreshold*ConvergenceThreshold {
			return nil
		}
	}
	return nil
}

// RunEpoch runs `iterations` proposals without checking any stopping
// condition.
func (e *Engine[T]) RunEpoch(iterations, epochIndex int) {
	for k := 0; k < iterations; k++ {
		variant := epochIndex*iterations + k
		candidate := e.sample(variant)

		s := kernels.Product(candidate, e.residual)
		if s <= e.dd1 {
			continue
		}

		candidate = e.optimize(candidate, variant)
		e.tryAccept(candidate, iterations, epochIndex, k)
	}
}

func (e *Engine[T]) sample(variant int) *matx.Dense[T] {
	switch e.mode {
	case FSnQd:
		return sampler.FullySeparable[T](e.rng, e.depth, e.quantity)
	case SBiPa:
		return sampler.Bipartite[T](e.rng, e.depth, e.quantity)
	case G3PaE3qD:
		return sampler.Tripartite[T](e.rng, e.depth, variant%3, e.swap123)
	case G4PaE3qD:
		return sampler.Quadripartite[T](e.rng, e.depth, variant%7, e.swapQuad)
	default:
		panic("gilbert: unsupported mode")
	}
}

func (e *Engine[T]) optimize(candidate *matx.Dense[T], variant int) *matx.Dense[T] {
	switch e.mode {
	case FSnQd:
		budget := optimizer.FullySeparableBudget(e.depth, e.quantity)
		return optimizer.FullySeparable[T](e.rng, candidate, e.residual, e.depth, e.quantity, budget)
	case SBiPa:
		budget := optimizer.BipartiteBudget(e.depth, e.quantity)
		return optimizer.Bipartite[T](e.rng, candidate, e.residual, e.depth, e.quantity, budget)
	case G3PaE3qD:
		budget := optimizer.TripartiteBudget(e.depth)
		return optimizer.Tripartite[T](e.rng, candidate, e.residual, e.depth, variant%3, budget, e.swap123)
	case G4PaE3qD:
		budget := optimizer.QuadripartiteBudget(e.depth)
		return optimizer.Quadripartite[T](e.rng, candidate, e.residual, e.depth, variant%7, budget, e.swapQuad)
	default:
		panic("gilbert: unsupported mode")
	}
}

func (e *Engine[T]) tryAccept(candidate *matx.Dense[T], iterations, epochIndex, k int) {
	aa3 := kernels.Product(candidate, candidate)
	aa2 := 2 * kernels.Product(e.visibility, candidate)
	aa5 := 2 * kernels.Product(e.state, candidate)

	bb2 := -e.aa4 + aa2 + aa5 - 2*aa3
	bb3 := e.aa6 - aa5 + aa3
	c := -bb2 / (2 * bb3)

	if c < 0 || c > 1 {
		return
	}

	e.state = matx.Combine(scalarT[T](c), e.state, scalarT[T](1-c), candidate)

	if len(e.symmetries) > 0 && (len(e.records)+1)%e.symmetryEvery == 0 {
		e.applySymmetries()
	}
	if e.projection != nil {
		e.applyProjection()
	}

	e.refreshCaches()

	e.records = append(e.records, corrections.Record{
		Iteration:           epochIndex*iterations + k + 1,
		Ordinal:             len(e.records) + 1,
		ResidualSquaredNorm: e.ResidualSquaredNorm(),
	})
}

// applySymmetries adds, for each orbit, the sum of its rotated copies of
// ρ1 to ρ1, then re-normalizes to unit trace.
func (e *Engine[T]) applySymmetries() {
	for _, orbit := range e.symmetries {
		acc := e.state
		for _, u := range orbit {
			acc = matx.Combine(scalarT[T](1), acc, scalarT[T](1), kernels.Rotate(e.state, u))
		}
		e.state = acc
	}
	tr := e.state.Trace()
	e.state = e.state.Scale(reciprocal(tr))
}

// applyProjection applies ρ1 <- P ρ1 P^H, then re-normalizes to unit trace.
func (e *Engine[T]) applyProjection() {
	e.state = kernels.Rotate(e.state, e.projection)
	tr := e.state.Trace()
	e.state = e.state.Scale(reciprocal(tr))
}

func reciprocal[T matx.Complex](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(1 / x).(T)
	case complex128:
		return any(1 / x).(T)
	default:
		panic("gilbert: unsupported scalar kind")
	}
}
