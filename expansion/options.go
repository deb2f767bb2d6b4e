// SPDX-License-Identifier: MIT

package expansion

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/topocast/core"
)

// Option configures an expansion operator.
type Option func(*options)

type options struct {
	log logr.Logger
}

func newOptions(opts ...Option) options {
	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes operator warnings to l.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// newLike returns an empty graph that accepts loops when any of gs has one.
func newLike(gs ...*core.Graph) *core.Graph {
	for _, x := range gs {
		if x.Looped() {
			return core.NewGraph(core.WithLoops())
		}
	}

	return core.NewGraph()
}
