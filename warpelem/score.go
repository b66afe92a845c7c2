// SPDX-License-Identifier: MIT
// Package: lvwarp/warpelem
//
// score.go — the engine-facing contract: AverageIntensity, Interpolate, Score.
//
// Contract:
//   • All functions are pure and allocation-free except AverageIntensity.
//   • Score is ≤ 0; 0 means identical. Larger is better.
//   • Legacy on either side switches both Interpolate and Score to the
//     slot-0 intensity path.

package warpelem

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// onePPM converts parts-per-million into a relative factor.
const onePPM = 1e-6

// Pair weights used by Score.
const (
	matchedWeight   = 1.0
	unmatchedWeight = 0.5
)

// Bookkeeping markers for the pair-matching maps in Score.
const (
	unmatched = -1
	used      = -2
)

// WithinPPM reports whether two m/z values agree within ppm, relative to
// the larger of the two.
func WithinPPM(mzA, mzB, ppm float64) bool {
	margin := max(mzA, mzB) * ppm * onePPM

	return math.Abs(mzB-mzA) <= margin
}

// AverageIntensity returns the mean Intensity over seq, or 0 for an empty
// sequence.
func AverageIntensity(seq []Element) float64 {
	if len(seq) == 0 {
		return 0
	}
	xs := make([]float64, len(seq))
	for i := range seq {
		xs[i] = seq[i].Intensity()
	}

	return stat.Mean(xs, nil)
}

// Interpolate blends a and b at fraction t (0 → a, 1 → b).
//
// If either side is legacy the result is a legacy element whose intensity
// is the linear interpolation of the two slot-0 intensities. Keyed
// elements are not blended pair by pair: the nearer neighbour is returned.
// ppm is part of the contract for keyed blending and is currently unused.
func Interpolate(a, b Element, ppm float64, t float64) Element {
	if a.IsLegacy() || b.IsLegacy() {
		ia, ib := a.slots[0].Intensity, b.slots[0].Intensity
		return Legacy(ia + (ib-ia)*t)
	}
	if t < 0.5 {
		return a
	}

	return b
}

// Score returns the similarity of a and b under an m/z tolerance of ppm.
//
// Legacy on either side: −(Ia₀ − Ib₀)².
// Keyed: over the first n = min(a.Len(), b.Len()) pairs of each side, pair
// i of a matches pair j of b when their m/z agree WithinPPM (the last
// matching j wins). A matched couple contributes −(Ia − Ib)² once; every
// unmatched pair contributes −0.5·I².
func Score(a, b Element, ppm float64) float64 {
	if a.IsLegacy() || b.IsLegacy() {
		d := a.slots[0].Intensity - b.slots[0].Intensity
		return -d * d
	}

	var matchAB, matchBA [MaxPairs]int
	for i := range matchAB {
		matchAB[i] = unmatched
		matchBA[i] = unmatched
	}

	n := min(a.count, b.count)
	for ia := 0; ia < n; ia++ {
		for ib := 0; ib < n; ib++ {
			if WithinPPM(a.slots[ia].Mz, b.slots[ib].Mz, ppm) {
				matchAB[ia] = ib
				matchBA[ib] = ia
			}
		}
	}

	var ret float64

	// pairs of a, consuming their partners in b
	for i := 0; i < n; i++ {
		weight := unmatchedWeight
		i1 := a.slots[i].Intensity
		i2 := 0.0
		if j := matchAB[i]; j >= 0 {
			weight = matchedWeight
			i2 = b.slots[j].Intensity
			matchBA[j] = used
		}
		d := i2 - i1
		ret -= weight * d * d
	}

	// pairs of b not consumed above
	for i := 0; i < n; i++ {
		j := matchBA[i]
		if j == used {
			continue
		}
		weight := unmatchedWeight
		i2 := b.slots[i].Intensity
		i1 := 0.0
		if j >= 0 {
			weight = matchedWeight
			i1 = a.slots[j].Intensity
		}
		d := i2 - i1
		ret -= weight * d * d
	}

	return ret
}
