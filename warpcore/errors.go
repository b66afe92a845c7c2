// SPDX-License-Identifier: MIT
// Package: lvwarp/warpcore
//
// errors.go — sentinel errors for the warp core.
//
// Error policy:
//   • Only sentinel variables are exposed; match them with errors.Is.
//   • Context is attached with %w at the call site, never baked into the sentinel.
//   • ConstructWarp never fails once its inputs are validated.

package warpcore

import "errors"

var (
	// ErrParameter indicates a rejected configuration value or change.
	ErrParameter = errors.New("warpcore: bad parameter")

	// ErrEmptySequence indicates the reference or the target is empty.
	ErrEmptySequence = errors.New("warpcore: input sequences must be non-empty")

	// ErrBadKnots indicates knots that are not strictly increasing within
	// [0, len(reference)].
	ErrBadKnots = errors.New("warpcore: knots must be strictly increasing within the reference")
)
