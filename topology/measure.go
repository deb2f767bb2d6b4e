// SPDX-License-Identifier: MIT

package topology

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/topocast/bfb"
	"github.com/katalvlaran/topocast/core"
	"github.com/katalvlaran/topocast/schedule"
)

// MeasureGraph schedules g with BFB and summarizes it as an Entry named
// name. TB is normalized by d/N so that OptimalTB(N) means optimal, and
// BWOptimal is set when TB is within FrontierEpsilon of it.
//
// g must be regular and strongly connected with at least two vertices;
// otherwise the error wraps ErrPreconditionViolation.
func MeasureGraph(ctx context.Context, g *core.Graph, name string, opts ...bfb.Option) (Entry, error) {
	if g == nil || g.VertexCount() < 2 {
		return Entry{}, fmt.Errorf("MeasureGraph: need at least two vertices: %w", ErrPreconditionViolation)
	}
	lb, err := schedule.Bound(g)
	if err != nil {
		return Entry{}, fmt.Errorf("MeasureGraph: %w: %w", ErrPreconditionViolation, err)
	}
	s, err := bfb.Compute(ctx, g, opts...)
	if err != nil {
		return Entry{}, fmt.Errorf("MeasureGraph: %w", err)
	}
	tl, tb := schedule.Summarize(s)
	if tl < 0 {
		return Entry{}, fmt.Errorf("MeasureGraph: empty schedule: %w", ErrPreconditionViolation)
	}

	norm := tb * float64(lb.Degree) / float64(lb.N)

	return Entry{
		N:         lb.N,
		D:         lb.Degree,
		Name:      name,
		TL:        tl,
		TB:        norm,
		BWOptimal: math.Abs(norm-OptimalTB(lb.N)) <= FrontierEpsilon,
	}, nil
}
