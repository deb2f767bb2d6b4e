// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	cfgDefault := newBuilderConfig()
	if got := cfgDefault.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	cfgHex := newBuilderConfig(WithHexIDs())
	if got := cfgHex.idFn(255); got != "ff" {
		t.Errorf("WithHexIDs: expected \"ff\", got %q", got)
	}

	cfgReset := newBuilderConfig(WithHexIDs(), WithDefaultIDs())
	if got := cfgReset.idFn(11); got != "11" {
		t.Errorf("WithDefaultIDs override: expected \"11\", got %q", got)
	}
}

// TestPartitionPrefixDefaults verifies that empty prefixes fall back to L/R.
func TestPartitionPrefixDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPartitionPrefix("", ""))
	if cfg.leftPrefix != defaultLeftPrefix || cfg.rightPrefix != defaultRightPrefix {
		t.Errorf("empty prefixes: got %q/%q", cfg.leftPrefix, cfg.rightPrefix)
	}
	cfg = newBuilderConfig(WithPartitionPrefix("A", "B"))
	if cfg.leftPrefix != "A" || cfg.rightPrefix != "B" {
		t.Errorf("custom prefixes: got %q/%q", cfg.leftPrefix, cfg.rightPrefix)
	}
}

// TestMod covers negative operands.
func TestMod(t *testing.T) {
	t.Parallel()

	cases := []struct{ a, m, want int }{
		{5, 3, 2}, {-1, 4, 3}, {-8, 4, 0}, {0, 7, 0},
	}
	for _, c := range cases {
		if got := mod(c.a, c.m); got != c.want {
			t.Errorf("mod(%d,%d) = %d; want %d", c.a, c.m, got, c.want)
		}
	}
}
