// SPDX-License-Identifier: MIT
//
// File: task.go
// Role: per-(t,u) task construction and its LP formulation.

package bfb

import (
	"github.com/katalvlaran/topocast/bfs"
	"github.com/katalvlaran/topocast/core"
	"github.com/katalvlaran/topocast/lp"
	"github.com/katalvlaran/topocast/schedule"
)

// pair is an admissible transfer: source v through via w.
type pair struct {
	v, w string
}

// task is one independent (t, u) program.
type task struct {
	t       schedule.TimeStep
	u       string
	sources []string
	pairs   []pair
}

// buildTasks enumerates the (t, u) programs of g for t = 1..diameter.
// Destinations with no sources at t are not tasks. A destination where some
// source has no admissible via is skipped and reported through skipped.
func buildTasks(g *core.Graph, dist bfs.Distances, skipped func(t schedule.TimeStep, u, source string)) ([]task, error) {
	vertices := g.Vertices()
	var tasks []task
	for t := 1; t <= dist.Diameter(); t++ {
		for _, u := range vertices {
			var sources []string
			for _, v := range vertices {
				if dist.Is(v, u, t) {
					sources = append(sources, v)
				}
			}
			if len(sources) == 0 {
				continue
			}
			vias, err := g.Predecessors(u)
			if err != nil {
				return nil, err
			}

			tk := task{t: schedule.TimeStep(t), u: u, sources: sources}
			complete := true
			for _, v := range sources {
				found := false
				for _, w := range vias {
					if dist.Is(v, w, t-1) {
						tk.pairs = append(tk.pairs, pair{v: v, w: w})
						found = true
					}
				}
				if !found {
					complete = false
					if skipped != nil {
						skipped(tk.t, u, v)
					}
					break
				}
			}
			if complete {
				tasks = append(tasks, tk)
			}
		}
	}

	return tasks, nil
}

// problem formulates tk. Variables 0..len(pairs)-1 are x[v,w] in pair
// order; the last variable is U.
func (tk task) problem() *lp.Problem {
	u := len(tk.pairs)
	p := lp.NewProblem(u + 1)
	p.C[u] = 1

	byVia := make(map[string]map[int]float64)
	var viaOrder []string
	bySource := make(map[string]map[int]float64, len(tk.sources))
	for i, pr := range tk.pairs {
		if _, ok := byVia[pr.w]; !ok {
			byVia[pr.w] = map[int]float64{u: -1}
			viaOrder = append(viaOrder, pr.w)
		}
		byVia[pr.w][i] = 1
		if _, ok := bySource[pr.v]; !ok {
			bySource[pr.v] = make(map[int]float64)
		}
		bySource[pr.v][i] = 1
	}
	core.SortIDs(viaOrder)
	for _, w := range viaOrder {
		p.AddLeq(byVia[w], 0)
	}
	for _, v := range tk.sources {
		p.AddEq(bySource[v], 1)
	}

	return p
}

// entry turns an optimal LP solution into a schedule entry. ok is false
// when no transfer exceeds eps.
func (tk task) entry(x []float64, eps float64) (schedule.Entry, bool) {
	transfers := make(map[schedule.TransferKey]float64)
	for i, pr := range tk.pairs {
		if x[i] > eps {
			transfers[schedule.TransferKey{From: pr.v, Via: pr.w}] = x[i]
		}
	}
	if len(transfers) == 0 {
		return schedule.Entry{}, false
	}

	return schedule.Entry{LoadU: x[len(tk.pairs)], Transfers: transfers}, true
}
