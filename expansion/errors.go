// SPDX-License-Identifier: MIT

package expansion

import "errors"

// Sentinel errors for expansion operators.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("expansion: graph is nil")

	// ErrInvalidArgument indicates a replica count, exponent or degree
	// outside the operator's domain.
	ErrInvalidArgument = errors.New("expansion: invalid argument")
)

const (
	methodLineGraph = "LineGraph"
	methodDegree    = "Degree"
	methodProduct   = "CartesianProduct"
	methodPower     = "CartesianPower"
)
