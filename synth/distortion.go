// SPDX-License-Identifier: MIT
// Package: lvwarp/synth
//
// distortion.go — piecewise-linear retention-time distortion.
//
// A Distortion pairs anchor times of run A with anchor times of run B.
// Warp maps a B time to the A time it corresponds to; Unwarp maps back.
//
// Edge policy (both directions):
//   • No anchors: identity.
//   • Before the first anchor: shifted by the first anchor's offset.
//   • At or past the last anchor: the last target anchor.
//   • Between anchors: linear interpolation; zero-length source intervals
//     map to their left target.

package synth

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"sort"
)

// Distortion maps times between two runs through matching anchors.
// The zero Distortion is the identity.
type Distortion struct {
	timeA []float64
	timeB []float64
}

// NewDistortion builds a Distortion from matching anchors. Each list is
// stably sorted independently of the other.
// Returns ErrAnchorMismatch if the lists differ in length.
func NewDistortion(timeA, timeB []float64) (Distortion, error) {
	if len(timeA) != len(timeB) {
		return Distortion{}, fmt.Errorf("NewDistortion: len(timeA)=%d, len(timeB)=%d: %w",
			len(timeA), len(timeB), ErrAnchorMismatch)
	}

	d := Distortion{timeA: slices.Clone(timeA), timeB: slices.Clone(timeB)}
	slices.SortStableFunc(d.timeA, cmp.Compare[float64])
	slices.SortStableFunc(d.timeB, cmp.Compare[float64])

	return d, nil
}

// Anchors returns copies of the sorted anchor lists.
func (d Distortion) Anchors() (timeA, timeB []float64) {
	return slices.Clone(d.timeA), slices.Clone(d.timeB)
}

// Warp maps a time of run B onto run A.
func (d Distortion) Warp(t float64) float64 { return mapTime(d.timeB, d.timeA, t) }

// Unwarp maps a time of run A onto run B.
func (d Distortion) Unwarp(t float64) float64 { return mapTime(d.timeA, d.timeB, t) }

// mapTime applies the piecewise-linear map src → dst to t.
func mapTime(src, dst []float64, t float64) float64 {
	if len(src) == 0 {
		return t
	}

	// idx = last anchor ≤ t, or −1
	idx := sort.Search(len(src), func(i int) bool { return src[i] > t }) - 1
	switch {
	case idx < 0:
		return dst[0] - (src[0] - t)
	case idx == len(src)-1:
		return dst[idx]
	}

	span := src[idx+1] - src[idx]
	alpha := 0.0
	if span != 0 {
		alpha = min(max((t-src[idx])/span, 0), 1)
	}

	return dst[idx] + (dst[idx+1]-dst[idx])*alpha
}

// PerturbKnots returns knots shifted by a random walk: the first knot is
// unchanged and every following knot carries the previous shift plus a
// uniform draw from [−maxDeviation, maxDeviation).
//
// Panics if rng is nil.
func PerturbKnots(knots []float64, maxDeviation float64, rng *rand.Rand) []float64 {
	if rng == nil {
		panic("synth: PerturbKnots(rng=nil)")
	}

	out := slices.Clone(knots)
	deviation := 0.0
	for i := range out {
		out[i] += deviation
		deviation += (2*rng.Float64() - 1) * maxDeviation
	}

	return out
}
