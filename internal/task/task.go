// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package task drives a single CSSFinder run: it loads a project file,
// builds the matching precision instantiation of gilbert.Engine, runs
// epochs until convergence or a budget is exhausted, and persists
// state.mtx/corrections.json after every epoch so the run can resume.
package task

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/wiesnim9/CSSFinder/internal/corrections"
	"github.com/wiesnim9/CSSFinder/internal/cssflog"
	"github.com/wiesnim9/CSSFinder/internal/cssfproject"
	"github.com/wiesnim9/CSSFinder/internal/gilbert"
	"github.com/wiesnim9/CSSFinder/internal/matx"
	"github.com/wiesnim9/CSSFinder/internal/mmarket"
	"github.com/wiesnim9/CSSFinder/internal/precision"
)

const (
	stateFileName       = "state.mtx"
	correctionsFileName = "corrections.json"
)

// Task binds a loaded project to the output directory its state and
// corrections are persisted under.
type Task struct {
	Name    string
	Project *cssfproject.Project
	Dir     string

	// Seed, if non-zero, seeds the task's RNG deterministically.
	Seed uint64
}

// Load reads and validates projectPath and pairs it with dir as the
// task's persisted output directory.
func Load(name, projectPath, dir string) (*Task, error) {
	p, err := cssfproject.Load(projectPath)
	if err != nil {
		return nil, err
	}
	return &Task{Name: name, Project: p, Dir: dir}, nil
}

// Run executes the task to completion or until ctx is cancelled,
// dispatching to the complex64 or complex128 engine instantiation
// per the project's declared precision.
func (t *Task) Run(ctx context.Context) error {
	log := cssflog.Task(t.Name)
	log.Info().Str("mode", t.Project.Mode).Str("precision", string(t.Project.Precision)).Msg("starting task")

	switch t.Project.Precision {
	case cssfproject.Single:
		return runTyped[complex64](ctx, t)
	case cssfproject.Double:
		return runTyped[complex128](ctx, t)
	default:
		return fmt.Errorf("task %s: unsupported precision %q", t.Name, t.Project.Precision)
	}
}

func runTyped[T matx.Complex](ctx context.Context, t *Task) error {
	log := cssflog.Task(t.Name)

	target, err := loadTarget[T](t.Project.Input)
	if err != nil {
		return fmt.Errorf("task %s: %w", t.Name, err)
	}

	if err := os.MkdirAll(t.Dir, 0o755); err != nil {
		return fmt.Errorf("task %s: create output dir: %w", t.Name, err)
	}

	mode, _ := gilbert.ParseMode(t.Project.Mode)

	opts := gilbert.Options[T]{
		Mode:       mode,
		Visibility: t.Project.Visibility,
		Depth:      t.Project.Depth,
		Quantity:   t.Project.Quantity,
	}
	if t.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(t.Seed, t.Seed))
	}

	if sym, err := loadSymmetries[T](t.Project.Symmetries); err != nil {
		return fmt.Errorf("task %s: %w", t.Name, err)
	} else {
		opts.Symmetries = sym
	}
	if t.Project.Projection != "" {
		proj, err := loadTarget[T](t.Project.Projection)
		if err != nil {
			return fmt.Errorf("task %s: projection: %w", t.Name, err)
		}
		opts.Projection = proj
	}

	if init, err := resumeState[T](t); err == nil && init != nil {
		opts.Initial = init
		log.Info().Msg("resuming from persisted state")
	}

	engine, err := gilbert.New(target, opts)
	if err != nil {
		return fmt.Errorf("task %s: %w", t.Name, err)
	}

	return engine.Run(t.Project.MaxEpochs, t.Project.ItersPerEpoch, t.Project.MaxCorrections, func(epochIndex int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug().Int("epoch", epochIndex).Float64("residual", engine.ResidualSquaredNorm()).Msg("epoch complete")
		return persistState(t, engine.State(), engine.Corrections())
	})
}

func (t *Task) statePath() string       { return filepath.Join(t.Dir, stateFileName) }
func (t *Task) correctionsPath() string { return filepath.Join(t.Dir, correctionsFileName) }

// persistState writes the current approximant and corrections log,
// overwriting any prior contents so the task's output directory always
// reflects the latest completed epoch. It is a free function, not a
// method, because Go methods cannot carry their own type parameter
// beyond the receiver's.
func persistState[T matx.Complex](t *Task, state *matx.Dense[T], recs []corrections.Record) error {
	f, err := os.Create(t.statePath())
	if err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	defer f.Close()
	if err := mmarket.NewWriter(f).Write(precision.FromDense(state)); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	if err := corrections.Save(t.correctionsPath(), recs); err != nil {
		return fmt.Errorf("persist corrections: %w", err)
	}
	return nil
}

func loadTarget[T matx.Complex](path string) (*matx.Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	m, err := mmarket.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return precision.ToDense[T](m), nil
}

func loadSymmetries[T matx.Complex](groups []cssfproject.Symmetry) ([][]*matx.Dense[T], error) {
	if len(groups) == 0 {
		return nil, nil
	}
	out := make([][]*matx.Dense[T], len(groups))
	for i, group := range groups {
		orbit := make([]*matx.Dense[T], len(group))
		for j, path := range group {
			m, err := loadTarget[T](path)
			if err != nil {
				return nil, fmt.Errorf("symmetries[%d][%d]: %w", i, j, err)
			}
			orbit[j] = m
		}
		out[i] = orbit
	}
	return out, nil
}

// resumeState loads a previously persisted state.mtx, if present, so a
// task can continue from where it left off.
func resumeState[T matx.Complex](t *Task) (*matx.Dense[T], error) {
	f, err := os.Open(t.statePath())
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := mmarket.NewReader(f).Read()
	if err != nil {
		return nil, err
	}
	return precision.ToDense[T](m), nil
}
