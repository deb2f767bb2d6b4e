// SPDX-License-Identifier: MIT
//
// File: bfb.go
// Role: Compute, the bounded-pool driver over independent (t,u) programs.
// Concurrency:
//   - Tasks share the read-only graph and distances.
//   - Results are merged into the schedule under one mutex.

package bfb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/topocast/bfs"
	"github.com/katalvlaran/topocast/core"
	"github.com/katalvlaran/topocast/lp"
	"github.com/katalvlaran/topocast/schedule"
)

// Compute returns the BFB schedule of g.
//
// Steps:
//  1. All-pairs hop distances and the diameter D.
//  2. One task per (t, u), t ∈ [1, D], with a non-empty source set.
//  3. Tasks solved on a pool of Options.Workers goroutines.
//  4. Optimal solutions become entries; every other outcome is dropped.
//
// Errors: ErrGraphNil, ErrOptionViolation, or the context error when ctx is
// cancelled. Per-task failures never surface here.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (schedule.Schedule, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	log := o.Logger.WithName("bfb")
	o.Logger = log
	begin := time.Now()

	dist, err := bfs.AllPairs(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	tasks, err := buildTasks(g, dist, func(t schedule.TimeStep, u, source string) {
		log.V(1).Info("skipping destination: source has no admissible via", "t", t, "u", u, "source", source)
	})
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	o.Metrics.RecordTasks(len(tasks))
	log.V(1).Info("tasks built", "diameter", dist.Diameter(), "tasks", len(tasks), "workers", o.Workers)

	var (
		mu  sync.Mutex
		out = make(schedule.Schedule)
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for _, tk := range tasks {
		if egCtx.Err() != nil {
			break
		}
		tk := tk
		eg.Go(func() error {
			e, ok := solve(egCtx, tk, &o)
			if err := egCtx.Err(); err != nil {
				return err
			}
			if ok {
				mu.Lock()
				out.Set(tk.t, tk.u, e)
				mu.Unlock()
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	tl, tb := schedule.Summarize(out)
	log.Info("BFB schedule computed",
		"vertices", g.VertexCount(), "tasks", len(tasks), "entries", out.Len(),
		"TL", tl, "TB", tb, "elapsed", time.Since(begin).String())

	return out, nil
}

// solve runs one task and reports whether it produced an entry.
func solve(ctx context.Context, tk task, o *Options) (schedule.Entry, bool) {
	if o.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.SolveTimeout)
		defer cancel()
	}
	start := time.Now()
	res, err := o.Solver.Solve(ctx, tk.problem())
	elapsed := time.Since(start)
	if err != nil {
		o.Metrics.RecordLPSolve("error", elapsed)
		o.Logger.Error(err, "LP solve failed", "t", tk.t, "u", tk.u)
		return schedule.Entry{}, false
	}
	o.Metrics.RecordLPSolve(res.Status.String(), elapsed)
	if res.Status != lp.Optimal {
		o.Logger.V(1).Info("LP not optimal", "t", tk.t, "u", tk.u, "status", res.Status.String())
		return schedule.Entry{}, false
	}

	if len(res.X) != len(tk.pairs)+1 {
		o.Logger.Error(lp.ErrSolverFailure, "solution has wrong arity", "t", tk.t, "u", tk.u, "len", len(res.X))
		return schedule.Entry{}, false
	}

	e, ok := tk.entry(res.X, o.Epsilon)
	if !ok {
		o.Logger.V(1).Info("no transfer above epsilon", "t", tk.t, "u", tk.u)
	}

	return e, ok
}
