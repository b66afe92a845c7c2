// SPDX-License-Identifier: MIT
// Package: lvwarp/warpelem
//
// element.go — the Element value type and its accessors.
//
// Contract:
//   • Present pairs occupy slots [0, count); everything at index ≥ count is absent.
//   • New sorts pairs by descending intensity, so slot 0 is the dominant pair.
//   • count == 0 marks a legacy element: only slots[0].Intensity is meaningful.

package warpelem

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// MaxPairs is the fixed capacity K of an Element.
const MaxPairs = 4

// Pair is one (m/z, intensity) feature of a scan.
type Pair struct {
	Mz        float64 // matching key
	Intensity float64 // non-negative signal level
}

// Element is the per-time-point sample value: up to MaxPairs locally
// dominant pairs, or a single key-blind intensity (legacy mode).
//
// The zero Element is a legacy element of intensity 0.
type Element struct {
	slots [MaxPairs]Pair
	count int
}

// New returns an Element holding the given pairs, ordered by descending
// intensity. Pairs beyond MaxPairs (after ordering) are dropped.
// New() with no pairs returns a legacy element of intensity 0.
func New(pairs ...Pair) Element {
	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(x, y Pair) int {
		return cmp.Compare(y.Intensity, x.Intensity)
	})

	var e Element
	e.count = min(len(sorted), MaxPairs)
	copy(e.slots[:], sorted[:e.count])

	return e
}

// Legacy returns a key-blind element carrying only an intensity.
func Legacy(intensity float64) Element {
	var e Element
	e.slots[0].Intensity = intensity

	return e
}

// Blind collapses e to a legacy element that keeps the dominant intensity.
// Blind of a legacy element is the element itself.
func (e Element) Blind() Element {
	return Legacy(e.slots[0].Intensity)
}

// IsLegacy reports whether e carries no keyed pairs.
func (e Element) IsLegacy() bool { return e.count == 0 }

// Len returns the number of present pairs (0 for legacy elements).
func (e Element) Len() int { return e.count }

// Pair returns the i-th present pair. It panics if i is out of [0, Len()).
func (e Element) Pair(i int) Pair {
	if i < 0 || i >= e.count {
		panic("warpelem: pair index out of range")
	}

	return e.slots[i]
}

// Pairs returns a copy of the present pairs.
func (e Element) Pairs() []Pair {
	return slices.Clone(e.slots[:e.count])
}

// Intensity returns the total intensity of e: the slot-0 intensity for a
// legacy element, the sum over present pairs otherwise.
func (e Element) Intensity() float64 {
	if e.IsLegacy() {
		return e.slots[0].Intensity
	}

	var sum float64
	for i := 0; i < e.count; i++ {
		sum += e.slots[i].Intensity
	}

	return sum
}

// MinMz returns the smallest present m/z, or 0 for a legacy element.
func (e Element) MinMz() float64 {
	if e.IsLegacy() {
		return 0
	}
	ret := e.slots[0].Mz
	for i := 1; i < e.count; i++ {
		ret = min(ret, e.slots[i].Mz)
	}

	return ret
}

// MaxMz returns the largest present m/z, or 0 for a legacy element.
func (e Element) MaxMz() float64 {
	if e.IsLegacy() {
		return 0
	}
	ret := e.slots[0].Mz
	for i := 1; i < e.count; i++ {
		ret = max(ret, e.slots[i].Mz)
	}

	return ret
}

// DominantMz returns the m/z of the most intense pair (0 for legacy).
func (e Element) DominantMz() float64 { return e.slots[0].Mz }

// DominantIntensity returns the intensity held in slot 0.
func (e Element) DominantIntensity() float64 { return e.slots[0].Intensity }

// Scale returns e with every participating intensity multiplied by factor.
func (e Element) Scale(factor float64) Element {
	if e.IsLegacy() {
		e.slots[0].Intensity *= factor
		return e
	}
	for i := 0; i < e.count; i++ {
		e.slots[i].Intensity *= factor
	}

	return e
}

// WithIntensityOffset returns e with delta added to the intensity of slot i.
// Slot 0 of a legacy element is addressable; other absent slots are left
// untouched. Order is not re-established afterwards.
func (e Element) WithIntensityOffset(i int, delta float64) Element {
	if i == 0 || (i > 0 && i < e.count) {
		e.slots[i].Intensity += delta
	}

	return e
}

// CSVLabels returns the CSV header for elements with pairCount pairs,
// e.g. "mz 0,int 0,mz 1,int 1".
func CSVLabels(pairCount int) string {
	labels := make([]string, 0, 2*max(pairCount, 0))
	for i := 0; i < pairCount; i++ {
		idx := strconv.Itoa(i)
		labels = append(labels, "mz "+idx, "int "+idx)
	}

	return strings.Join(labels, ",")
}

// CSVValues returns the present pairs as one comma-joined CSV row.
func (e Element) CSVValues() string {
	values := make([]string, 0, 2*e.count)
	for i := 0; i < e.count; i++ {
		values = append(values,
			strconv.FormatFloat(e.slots[i].Mz, 'g', -1, 64),
			strconv.FormatFloat(e.slots[i].Intensity, 'g', -1, 64))
	}

	return strings.Join(values, ",")
}
