// SPDX-License-Identifier: MIT
//
// File: linegraph.go
// Role: line-graph expansion L(G) with schedule adaptation.
//
// L(G) has one vertex "(u,v)" per edge u→v of G and an edge
// (u,v)→(v,w) for every edge v→w. A schedule of G with TL steps becomes a
// schedule of L(G) with TL+1 steps:
//   - step 1: every (x,y) takes its whole shard from each in-neighbor p,
//     with p as its own via;
//   - step t+1: a transfer (v, via u) into w at step t feeds every (w,w′),
//     re-keyed as ((v′,v), via (u,w)) for each in-neighbor v′ of v, except
//     the destination itself.

package expansion

import (
	"fmt"

	"github.com/katalvlaran/topocast/core"
	"github.com/katalvlaran/topocast/schedule"
)

// LineGraph returns L(g) and, when s is non-nil, the adapted schedule.
// With a nil s the returned schedule is nil.
//
// Errors: ErrGraphNil.
// Complexity: O(E·d) for the graph, O(|s|·d²) for the schedule.
func LineGraph(g *core.Graph, s schedule.Schedule) (*core.Graph, schedule.Schedule, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	lg := newLike(g)
	edges := g.Edges()
	for _, e := range edges {
		if err := lg.AddVertex(core.Tuple(e.From, e.To)); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodLineGraph, err)
		}
	}
	for _, e := range edges {
		next, err := g.Successors(e.To)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodLineGraph, err)
		}
		for _, w := range next {
			if err = lg.AddEdge(core.Tuple(e.From, e.To), core.Tuple(e.To, w)); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", methodLineGraph, err)
			}
		}
	}
	if s == nil {
		return lg, nil, nil
	}

	out, err := lineSchedule(g, lg, s)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodLineGraph, err)
	}

	return lg, out, nil
}

func lineSchedule(g, lg *core.Graph, s schedule.Schedule) (schedule.Schedule, error) {
	out := make(schedule.Schedule, len(s)+1)

	for _, node := range lg.Vertices() {
		preds, err := lg.Predecessors(node)
		if err != nil {
			return nil, err
		}
		e := schedule.Entry{LoadU: 1, Transfers: make(map[schedule.TransferKey]float64, len(preds))}
		for _, p := range preds {
			e.Transfers[schedule.TransferKey{From: p, Via: p}] = 1
		}
		out.Set(1, node, e)
	}

	for _, t := range s.Steps() {
		next := t + 1
		step := make(map[string]schedule.Entry)
		out[next] = step
		for _, w := range s.Destinations(t) {
			fanout, err := g.Successors(w)
			if err != nil {
				return nil, err
			}
			for _, k := range s[t][w].SortedKeys() {
				fraction := s[t][w].Transfers[k]
				preds, err := g.Predecessors(k.From)
				if err != nil {
					return nil, err
				}
				for _, w2 := range fanout {
					dest := core.Tuple(w, w2)
					e, ok := step[dest]
					if !ok {
						e = schedule.Entry{Transfers: make(map[schedule.TransferKey]float64)}
						step[dest] = e
					}
					for _, vp := range preds {
						from := core.Tuple(vp, k.From)
						if from == dest {
							continue
						}
						e.Transfers[schedule.TransferKey{From: from, Via: core.Tuple(k.Via, w)}] = fraction
					}
				}
			}
		}
		for dest, e := range step {
			e.LoadU = e.MaxViaLoad()
			step[dest] = e
		}
	}

	return out, nil
}
