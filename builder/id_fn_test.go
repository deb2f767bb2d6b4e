package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/topocast/builder"
)

// assertPanics fails the test if the provided function does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns verifies each IDFn for valid outputs and panics on invalid input.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"HexIDFn_low", builder.HexIDFn, 10, "a", false},
		{"HexIDFn_high", builder.HexIDFn, 255, "ff", false},
		{"HexIDFn_neg", builder.HexIDFn, -1, "", true},
		{"SymbolNumber_v", builder.SymbolNumberIDFn("v"), 4, "v4", false},
		{"SymbolNumber_neg", builder.SymbolNumberIDFn("v"), -4, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d) = %q; want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}

// TestWithIDScheme_NilPanics checks option validation.
func TestWithIDScheme_NilPanics(t *testing.T) {
	assertPanics(t, func() { builder.WithIDScheme(nil) }, "WithIDScheme(nil)")
}

// TestParseIDScheme maps names to schemes and rejects unknown ones.
func TestParseIDScheme(t *testing.T) {
	cases := []struct {
		name  string
		first string
	}{
		{"", "0"},
		{"decimal", "0"},
		{"hex", "0"},
		{"prefix:n", "n0"},
	}
	for _, tc := range cases {
		opt, err := builder.ParseIDScheme(tc.name)
		if err != nil {
			t.Fatalf("ParseIDScheme(%q): %v", tc.name, err)
		}
		g, err := builder.Build(builder.Ring(12, true), opt)
		if err != nil {
			t.Fatalf("Build with %q: %v", tc.name, err)
		}
		if !g.HasVertex(tc.first) {
			t.Errorf("%q: vertex %q missing from %v", tc.name, tc.first, g.Vertices())
		}
	}

	opt, _ := builder.ParseIDScheme("hex")
	g, _ := builder.Build(builder.Ring(12, true), opt)
	if !g.HasEdge("a", "b") {
		t.Errorf("hex ring: edge a→b missing")
	}

	for _, bad := range []string{"octal", "prefix:"} {
		if _, err := builder.ParseIDScheme(bad); !errors.Is(err, builder.ErrInvalidArgument) {
			t.Errorf("ParseIDScheme(%q): want ErrInvalidArgument, got %v", bad, err)
		}
	}
}
