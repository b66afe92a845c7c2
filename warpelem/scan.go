// SPDX-License-Identifier: MIT
// Package: lvwarp/warpelem
//
// scan.go — building elements from centroided scans.
//
// A scan is a list of (m/z, intensity) points in any order. FromScan keeps
// its dominant points, skipping any point that falls within mzWindow of a
// point already kept, so one isotope envelope does not fill every slot.

package warpelem

import (
	"cmp"
	"slices"
)

// ExtractMaxima returns up to count points of scan in descending intensity,
// skipping points whose m/z lies within [m−mzWindow, m+mzWindow] of an
// already extracted point m. Equal intensities keep scan order.
//
// Complexity: O(n log n + n·count).
func ExtractMaxima(scan []Pair, count int, mzWindow float64) []Pair {
	if count <= 0 || len(scan) == 0 {
		return nil
	}

	sorted := slices.Clone(scan)
	slices.SortStableFunc(sorted, func(x, y Pair) int {
		return cmp.Compare(y.Intensity, x.Intensity)
	})

	maxima := make([]Pair, 0, count)
	for _, p := range sorted {
		if nearAny(maxima, p.Mz, mzWindow) {
			continue
		}
		maxima = append(maxima, p)
		if len(maxima) == count {
			break
		}
	}

	return maxima
}

// nearAny reports whether mz lies within window of any m/z in kept.
func nearAny(kept []Pair, mz, window float64) bool {
	for _, k := range kept {
		if mz >= k.Mz-window && mz <= k.Mz+window {
			return true
		}
	}

	return false
}

// FromScan converts a scan into an Element.
//
//   - Empty scan: the zero (legacy, intensity 0) element.
//   - pairCount <= 0: a legacy element carrying the base-peak intensity.
//   - Otherwise: the ExtractMaxima of the scan, at most MaxPairs of them.
func FromScan(scan []Pair, pairCount int, mzWindow float64) Element {
	if len(scan) == 0 {
		return Element{}
	}
	if pairCount <= 0 {
		base := slices.MaxFunc(scan, func(x, y Pair) int {
			return cmp.Compare(x.Intensity, y.Intensity)
		})
		return Legacy(base.Intensity)
	}

	return New(ExtractMaxima(scan, min(pairCount, MaxPairs), mzWindow)...)
}
