// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/topocast/config"
	"github.com/katalvlaran/topocast/metrics"
	"github.com/katalvlaran/topocast/topology"
)

func runSearch(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "run configuration (YAML or JSON)")
	maxNodes := fs.Int("max-nodes", 0, "override search.max_nodes")
	maxDegree := fs.Int("max-degree", 0, "override search.max_degree")
	reference := fs.String("reference", "", "override search.reference_path")
	out := fs.String("o", "", "override output.path (.csv or .yaml)")
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
	if *maxNodes > 0 {
		cfg.Search.MaxNodes = *maxNodes
	}
	if *maxDegree > 0 {
		cfg.Search.MaxDegree = *maxDegree
	}
	if *reference != "" {
		cfg.Search.ReferencePath = *reference
	}
	if *out != "" {
		cfg.Output.Path = *out
		cfg.Output.Format = config.FormatFor(*out)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(*verbosity)
	reg := metrics.NewRegistry()
	f, err := topology.New(cfg.Search.MaxNodes, cfg.Search.MaxDegree,
		topology.WithLogger(log), topology.WithMetrics(reg))
	if err != nil {
		return err
	}
	log.Info("search started", "run", f.RunID().String(), "maxN", cfg.Search.MaxNodes, "maxD", cfg.Search.MaxDegree)

	if cfg.Search.SeedKnown {
		f.SeedKnown()
	}
	if cfg.Search.ReferencePath != "" {
		if _, err = os.Stat(cfg.Search.ReferencePath); err == nil {
			if _, err = f.LoadReferenceFile(cfg.Search.ReferencePath); err != nil {
				return err
			}
		} else {
			log.Info("reference dataset not found, skipping", "path", cfg.Search.ReferencePath)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err = f.Search(ctx); err != nil {
		return err
	}

	switch {
	case cfg.Output.Path != "":
		if err = f.WriteFile(cfg.Output.Path); err != nil {
			return err
		}
		log.Info("catalogue written", "path", cfg.Output.Path, "entries", f.Table().Len())
	case cfg.Output.Format == "csv":
		err = topology.WriteCSV(stdout, f.Table())
	default:
		err = topology.Fprint(stdout, f.Table())
	}
	if err != nil {
		return err
	}
	if *showMetrics {
		fmt.Fprintln(stdout)
		return dumpMetrics(stdout, reg)
	}

	return nil
}
