// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/topocast/bfb"
	"github.com/katalvlaran/topocast/builder"
	"github.com/katalvlaran/topocast/config"
	"github.com/katalvlaran/topocast/core"
	"github.com/katalvlaran/topocast/expansion"
	"github.com/katalvlaran/topocast/metrics"
	"github.com/katalvlaran/topocast/schedule"
)

func runSchedule(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	kind := fs.String("graph", "biring", "ring|biring|circulant|complete|bipartite|kautz|torus")
	n := fs.Int("n", 6, "vertex count (ring, circulant, complete, kautz) or partition size (bipartite)")
	d := fs.Int("d", 2, "Kautz degree")
	gens := fs.String("gens", "1,2", "circulant generators, comma separated")
	dims := fs.String("dims", "3,3", "torus dimensions, comma separated")
	ids := fs.String("ids", "decimal", "vertex ID scheme: decimal, hex or prefix:<p>")
	sides := fs.String("sides", "L,R", "bipartite side prefixes, comma separated")
	expand := fs.String("expand", "", "adapt the schedule to an expansion: line or degree=<n>")
	cfgPath := fs.String("config", "", "run configuration (scheduler section is used)")
	full := fs.Bool("full", false, "print every transfer")
	out := fs.String("o", "", "write the schedule to this .yaml or .json file")
	verbosity := fs.Int("v", 0, "log verbosity")
	showMetrics := fs.Bool("metrics", false, "print collected metrics when done")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	con, err := constructor(*kind, *n, *d, *gens, *dims)
	if err != nil {
		return err
	}
	bopts, err := builderOptions(*ids, *sides)
	if err != nil {
		return err
	}
	g, err := builder.Build(con, bopts...)
	if err != nil {
		return err
	}

	log := newLogger(*verbosity)
	reg := metrics.NewRegistry()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := bfb.Compute(ctx, g,
		bfb.WithWorkers(cfg.Scheduler.Workers),
		bfb.WithSolveTimeout(time.Duration(cfg.Scheduler.SolveTimeout)),
		bfb.WithEpsilon(cfg.Scheduler.Epsilon),
		bfb.WithLogger(log),
		bfb.WithMetrics(reg))
	if err != nil {
		return err
	}
	if *expand != "" {
		if g, s, err = applyExpansion(g, s, *expand, log); err != nil {
			return err
		}
	}
	if err = schedule.Validate(s, 1e-4); err != nil {
		log.Error(err, "schedule violates its invariants")
	}

	if _, _, err = schedule.Fprint(stdout, s, *full); err != nil {
		return err
	}
	if lb, err := schedule.Bound(g); err == nil {
		if err = schedule.FprintBound(stdout, lb); err != nil {
			return err
		}
	} else {
		log.V(1).Info("no lower bound", "reason", err.Error())
	}
	if *out != "" {
		if err = schedule.WriteFile(*out, s); err != nil {
			return err
		}
	}
	if *showMetrics {
		fmt.Fprintln(stdout)
		return dumpMetrics(stdout, reg)
	}

	return nil
}

func constructor(kind string, n, d int, gens, dims string) (builder.Constructor, error) {
	switch kind {
	case "ring":
		return builder.Ring(n, true), nil
	case "biring":
		return builder.Ring(n, false), nil
	case "circulant":
		a, err := ints(gens)
		if err != nil {
			return nil, err
		}
		return builder.Circulant(n, a, false), nil
	case "complete":
		return builder.Complete(n), nil
	case "bipartite":
		return builder.CompleteBipartite(n, n), nil
	case "kautz":
		return builder.GeneralizedKautz(d, n), nil
	case "torus":
		ds, err := ints(dims)
		if err != nil {
			return nil, err
		}
		return builder.Torus(ds...), nil
	default:
		return nil, fmt.Errorf("unknown graph kind %q", kind)
	}
}

func builderOptions(ids, sides string) ([]builder.BuilderOption, error) {
	scheme, err := builder.ParseIDScheme(ids)
	if err != nil {
		return nil, err
	}
	left, right, ok := strings.Cut(sides, ",")
	if !ok {
		return nil, fmt.Errorf("bipartite sides must be <left>,<right>, got %q", sides)
	}

	return []builder.BuilderOption{scheme, builder.WithPartitionPrefix(left, right)}, nil
}

func applyExpansion(g *core.Graph, s schedule.Schedule, op string, log logr.Logger) (*core.Graph, schedule.Schedule, error) {
	name, arg, _ := strings.Cut(op, "=")
	switch name {
	case "line":
		return expansion.LineGraph(g, s)
	case "degree":
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("degree expansion needs degree=<n>: %w", err)
		}
		return expansion.Degree(g, s, k, expansion.WithLogger(log))
	default:
		return nil, nil, errors.New("expansion must be line or degree=<n>")
	}
}

func ints(csv string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(csv, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad integer list %q: %w", csv, err)
		}
		out = append(out, v)
	}

	return out, nil
}
