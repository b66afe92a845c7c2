// SPDX-License-Identifier: MIT
// Package: lvwarp/synth
//
// errors.go — sentinel errors for the synth package.
//
// Callers branch with errors.Is; context is attached with %w.

package synth

import "errors"

// ErrAnchorMismatch indicates anchor lists of different lengths.
var ErrAnchorMismatch = errors.New("synth: anchor lists differ in length")
