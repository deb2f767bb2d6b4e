// SPDX-License-Identifier: MIT
//
// File: degree.go
// Role: degree expansion G∗n with schedule adaptation.

package expansion

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/topocast/core"
	"github.com/katalvlaran/topocast/schedule"
)

// replica names copy i of v.
func replica(v string, i int) string {
	return core.Tuple(v, strconv.Itoa(i))
}

// Degree returns G∗n: n replicas "(v,i)" of every vertex, with an edge
// (w,j)→(v,i) for every edge w→v of g and every pair of replica indices.
// Out-degree grows from d to n·d.
//
// When s is non-nil it is adapted: every step of s is replayed inside each
// replica layer with LoadU unchanged, then one extra step lets replica j of
// u pull the shard of every other replica i through each in-neighbor of
// (u,j), each carrying 1/(n·d) of it. Every via then forwards n−1 such
// pieces, so that step's LoadU is (n−1)/(n·d).
//
// g is expected to be out-degree regular; d is taken from its first vertex
// and a warning is logged otherwise.
//
// Errors: ErrGraphNil; ErrInvalidArgument when n ≤ 1, or when s is given
// and d == 0.
// Complexity: O(E·n²) for the graph.
func Degree(g *core.Graph, s schedule.Schedule, n int, opts ...Option) (*core.Graph, schedule.Schedule, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if n <= 1 {
		return nil, nil, fmt.Errorf("%s: n=%d ≤ 1: %w", methodDegree, n, ErrInvalidArgument)
	}
	o := newOptions(opts...)

	vertices := g.Vertices()
	d := 0
	if len(vertices) > 0 {
		d, _ = g.OutDegree(vertices[0])
		if _, regular := g.RegularOutDegree(); !regular {
			o.log.Info("graph is not out-degree regular; degree expansion assumes it is",
				"vertices", len(vertices), "firstDegree", d)
		}
	}

	gn := newLike(g)
	for j := 0; j < n; j++ {
		for _, v := range vertices {
			if err := gn.AddVertex(replica(v, j)); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", methodDegree, err)
			}
		}
	}
	for _, e := range g.Edges() {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				if err := gn.AddEdge(replica(e.From, j), replica(e.To, i)); err != nil {
					return nil, nil, fmt.Errorf("%s: %w", methodDegree, err)
				}
			}
		}
	}
	if s == nil {
		return gn, nil, nil
	}
	if d == 0 {
		return nil, nil, fmt.Errorf("%s: out-degree 0 cannot carry the replica exchange: %w", methodDegree, ErrInvalidArgument)
	}

	out := make(schedule.Schedule, len(s)+1)
	tmax := schedule.TimeStep(0)
	for _, t := range s.Steps() {
		if t > tmax {
			tmax = t
		}
		step := make(map[string]schedule.Entry, len(s[t])*n)
		out[t] = step
		for _, w := range s.Destinations(t) {
			src := s[t][w]
			for i := 0; i < n; i++ {
				transfers := make(map[schedule.TransferKey]float64, len(src.Transfers)*n)
				for k, f := range src.Transfers {
					for j := 0; j < n; j++ {
						transfers[schedule.TransferKey{From: replica(k.From, j), Via: replica(k.Via, j)}] = f
					}
				}
				step[replica(w, i)] = schedule.Entry{LoadU: src.LoadU, Transfers: transfers}
			}
		}
	}

	share := 1 / float64(n*d)
	load := float64(n-1) * share
	final := make(map[string]schedule.Entry, len(vertices)*n)
	out[tmax+1] = final
	for _, u := range vertices {
		for j := 0; j < n; j++ {
			uj := replica(u, j)
			vias, err := gn.Predecessors(uj)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", methodDegree, err)
			}
			e := schedule.Entry{LoadU: load, Transfers: make(map[schedule.TransferKey]float64, (n-1)*len(vias))}
			for i := 0; i < n; i++ {
				if i == j {
					continue
				}
				for _, via := range vias {
					e.Transfers[schedule.TransferKey{From: replica(u, i), Via: via}] = share
				}
			}
			final[uj] = e
		}
	}

	return gn, out, nil
}
