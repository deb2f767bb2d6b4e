// SPDX-License-Identifier: MIT

// Command topocast computes BFB broadcast schedules and searches for
// Pareto-optimal topologies.
//
// Usage:
//
//	topocast search   [-config run.yaml] [-max-nodes N] [-max-degree D] [-reference graph.csv] [-o catalogue.yaml]
//	topocast schedule -graph biring -n 6 [-expand degree=2] [-full] [-o schedule.yaml]
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/topocast/metrics"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "search":
		err = runSearch(os.Args[2:], os.Stdout)
	case "schedule":
		err = runSchedule(os.Args[2:], os.Stdout)
	case "-h", "--help", "help":
		usage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "topocast: unknown command %q\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "topocast:", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: topocast <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  search     build the Pareto catalogue of topologies")
	fmt.Fprintln(w, "  schedule   compute the BFB schedule of one generated topology")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'topocast <command> -h' for the flags of a command.")
}

// newLogger returns a stderr logger at verbosity v.
func newLogger(v int) logr.Logger {
	stdr.SetVerbosity(v)

	return stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("topocast")
}

// dumpMetrics writes every sample of reg as "name{labels} value".
func dumpMetrics(w io.Writer, reg *metrics.Registry) error {
	families, err := reg.Gatherer().Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels(m), value(mf.GetType(), m))
		}
	}

	return nil
}

func labels(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	sort.Strings(parts)

	return "{" + strings.Join(parts, ",") + "}"
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return 0
	}
}
