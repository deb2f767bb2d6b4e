// SPDX-License-Identifier: MIT
// Package: topocast/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, n1, n2, ring
// dimension) is smaller than the allowed minimum for the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidArgument indicates a parameter outside the constructor's domain
// (e.g. Kautz degree d < 1, empty torus dimension list, no usable generator).
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrConstructFailed indicates the graph could not be assembled, e.g. a nil
// constructor or a core mutation that was rejected.
var ErrConstructFailed = errors.New("builder: construction failed")
