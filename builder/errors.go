// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (see builderErrorf).
//   • Generate never panics; option constructors (WithX) panic on nonsense input.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the requested vertex count is below one.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a density is outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrBadCostRange indicates minCost < 1 or maxCost < minCost.
var ErrBadCostRange = errors.New("builder: invalid cost range")

// builderErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
