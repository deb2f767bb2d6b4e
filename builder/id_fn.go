// Package builder provides ID schemes for index-based graph constructors.
package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates a vertex identifier from its zero‐based index.
// It must be a pure, deterministic function.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// HexIDFn returns the lowercase hexadecimal representation of idx,
// e.g. 0→"0", 10→"a", 255→"ff". Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithHexIDs sets the ID scheme to HexIDFn.
func WithHexIDs() BuilderOption {
	return WithIDScheme(HexIDFn)
}

// ParseIDScheme maps a textual scheme name to its option:
//
//	"" or "decimal"  → WithDefaultIDs
//	"hex"            → WithHexIDs
//	"prefix:<p>"     → WithSymbNumb(p), p non-empty
//
// Unknown names wrap ErrInvalidArgument.
func ParseIDScheme(name string) (BuilderOption, error) {
	switch {
	case name == "" || name == "decimal":
		return WithDefaultIDs(), nil
	case name == "hex":
		return WithHexIDs(), nil
	case strings.HasPrefix(name, "prefix:") && len(name) > len("prefix:"):
		return WithSymbNumb(strings.TrimPrefix(name, "prefix:")), nil
	default:
		return nil, fmt.Errorf("builder: ID scheme %q: %w", name, ErrInvalidArgument)
	}
}
