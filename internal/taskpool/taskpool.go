// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package taskpool runs independent CSSFinder tasks concurrently, bounded
// by a configurable width, using golang.org/x/sync/errgroup with a
// semaphore-style gate so one task's fatal error never cancels its
// siblings.
package taskpool

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/wiesnim9/CSSFinder/internal/cssflog"
	"github.com/wiesnim9/CSSFinder/internal/task"
)

// Result is one task's outcome.
type Result struct {
	Name string
	Err  error
}

// Pool runs a set of tasks with bounded concurrency.
type Pool struct {
	MaxParallel int
}

// New returns a Pool of the given width. A non-positive width defaults to
// runtime.GOMAXPROCS(0); width 1 runs tasks sequentially (--force-sequential).
func New(maxParallel int) *Pool {
	if maxParallel <= 0 {
		maxParallel = runtime.GOMAXPROCS(0)
	}
	return &Pool{MaxParallel: maxParallel}
}

// Run executes every task in tasks, returning one Result per task in
// completion order. A task's error is collected, not propagated as a
// group-cancelling error: siblings keep running. Run itself only returns
// an error if ctx is cancelled before all tasks finish.
func (p *Pool) Run(ctx context.Context, tasks []*task.Task) ([]Result, error) {
	sem := semaphore.NewWeighted(int64(p.MaxParallel))
	g, ctx := errgroup.WithContext(ctx)

	results := make([]Result, 0, len(tasks))
	var mu sync.Mutex

	for _, tk := range tasks {
		tk := tk
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		g.Go(func() error {
			defer sem.Release(1)
			err := tk.Run(ctx)
			if err != nil {
				cssflog.Task(tk.Name).Error().Err(err).Msg("task failed")
			}
			mu.Lock()
			results = append(results, Result{Name: tk.Name, Err: err})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
