// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Fprint, the human-readable schedule report.

package schedule

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the report of s to w and returns Summarize(s).
// With full set it lists every step, destination and transfer; otherwise
// only the closing "total" line is written.
func Fprint(w io.Writer, s Schedule, full bool) (int, float64, error) {
	tl, tb := Summarize(s)
	if tl < 0 {
		if full {
			_, err := fmt.Fprintln(w, "empty schedule")
			return tl, tb, err
		}
		return tl, tb, nil
	}

	var b strings.Builder
	if full {
		b.WriteString(strings.Repeat("=", 60) + "\n")
		b.WriteString("print schedule begin\n")
		b.WriteString(strings.Repeat("=", 45) + "\n")
		for i, t := range s.Steps() {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "t = %d\n", t)
			for _, u := range s.Destinations(t) {
				e := s[t][u]
				fmt.Fprintf(&b, "    to %s: (U = %.4f)\n", u, e.LoadU)
				for _, k := range e.SortedKeys() {
					fmt.Fprintf(&b, "        from %s, via %s, load=%.4f\n", k.From, k.Via, e.Transfers[k])
				}
			}
		}
		b.WriteString(strings.Repeat("=", 45) + "\n")
	}
	fmt.Fprintf(&b, "total T: %d, U: %.4f\n", tl, tb)
	if full {
		b.WriteString("print schedule end\n")
		b.WriteString(strings.Repeat("=", 60) + "\n")
	}

	_, err := io.WriteString(w, b.String())

	return tl, tb, err
}

// FprintBound writes the "ideal" line for lb.
func FprintBound(w io.Writer, lb LowerBound) error {
	_, err := fmt.Fprintf(w, "ideal T: %d, U: %.4f\n", lb.Diameter, lb.IdealTB)

	return err
}
