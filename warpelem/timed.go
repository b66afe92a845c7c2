// SPDX-License-Identifier: MIT
// Package: lvwarp/warpelem
//
// timed.go — time-stamped element lists (the Element analogue of a plot).
//
// Contract:
//   • Methods that search by time (Bounds, Evaluate, Resample, ClosestIndices)
//     assume the list is sorted by ascending Minutes; IsSorted checks it.
//   • Nothing here mutates the receiver.

package warpelem

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// uniformMinMagnitude keeps relative comparisons of tiny durations (minutes)
// from dividing by ~0.
const uniformMinMagnitude = 1e-5

// TimedElement is an Element observed at a retention time in minutes.
type TimedElement struct {
	Minutes float64
	Element Element
}

// TimedList is a sequence of TimedElement, normally sorted by Minutes.
type TimedList []TimedElement

// Bounds returns the first and last time of the list, or (0, 0) if empty.
func (l TimedList) Bounds() (start, end float64) {
	if len(l) == 0 {
		return 0, 0
	}

	return l[0].Minutes, l[len(l)-1].Minutes
}

// IsSorted reports whether times never decrease.
func (l TimedList) IsSorted() bool {
	for i := 1; i < len(l); i++ {
		if l[i].Minutes < l[i-1].Minutes {
			return false
		}
	}

	return true
}

// Evaluate returns the element at the given time, interpolating between the
// bracketing samples with Interpolate. Times outside the list clamp to the
// first or last element. An empty list yields the zero Element.
func (l TimedList) Evaluate(ppm, minutes float64) Element {
	switch {
	case len(l) == 0:
		return Element{}
	case len(l) == 1, minutes <= l[0].Minutes:
		return l[0].Element
	case minutes >= l[len(l)-1].Minutes:
		return l[len(l)-1].Element
	}

	// first index strictly after minutes; 1 ≤ end ≤ len-1 here
	end := sort.Search(len(l), func(i int) bool { return l[i].Minutes > minutes })
	start := end - 1

	span := l[end].Minutes - l[start].Minutes
	if span <= 0 {
		return l[start].Element
	}

	return Interpolate(l[start].Element, l[end].Element, ppm, (minutes-l[start].Minutes)/span)
}

// Resample returns n points spaced uniformly over [start, end] of l.
//
// Trivial inputs: n ≤ 0 → empty; empty l → n zero points; a single point,
// n == 1 or a zero-length span → n copies of the first point.
func (l TimedList) Resample(n int, ppm float64) TimedList {
	if n <= 0 {
		return TimedList{}
	}
	if len(l) == 0 {
		return make(TimedList, n)
	}
	start, end := l.Bounds()
	if len(l) == 1 || n == 1 || end <= start {
		out := make(TimedList, n)
		for i := range out {
			out[i] = l[0]
		}
		return out
	}

	period := (end - start) / float64(n-1)
	out := make(TimedList, 0, n)

	// b walks forward and stays on the first sample strictly after t
	b := 1
	for i := 0; i < n; i++ {
		t := start + period*float64(i)
		for b < len(l) && l[b].Minutes <= t {
			b++
		}
		if b >= len(l) {
			out = append(out, TimedElement{Minutes: t, Element: l[len(l)-1].Element})
			continue
		}

		sa, sb := l[b-1], l[b]
		span := sb.Minutes - sa.Minutes
		if span <= 0 {
			out = append(out, TimedElement{Minutes: t, Element: sa.Element})
			continue
		}
		frac := (t - sa.Minutes) / span
		out = append(out, TimedElement{Minutes: t, Element: Interpolate(sa.Element, sb.Element, ppm, frac)})
	}

	return out
}

// IsUniform reports whether l is sampled at a constant rate, allowing a
// relative deviation of negligibleRatio. Lists with fewer than 3 points are
// uniform.
func (l TimedList) IsUniform(negligibleRatio float64) bool {
	if len(l) < 3 {
		return true
	}

	// small per-step errors must not stack up
	if !l.globallyUniform(0, len(l), negligibleRatio) {
		return false
	}

	steps := make([]float64, len(l)-1)
	for i := 1; i < len(l); i++ {
		steps[i-1] = l[i].Minutes - l[i-1].Minutes
	}

	return fuzzyEqual(floats.Min(steps), floats.Max(steps), negligibleRatio)
}

// globallyUniform splits [from, to) into two equal halves, compares their
// durations and recurses into each half.
func (l TimedList) globallyUniform(from, to int, negligibleRatio float64) bool {
	size := to - from
	if size < 4 {
		return true
	}

	half := size / 2
	aStart, aEnd := from, from+half
	bStart, bEnd := aEnd, aEnd+half

	durA := l[aEnd-1].Minutes - l[aStart].Minutes
	durB := l[bEnd-1].Minutes - l[bStart].Minutes
	if !fuzzyEqual(durA, durB, negligibleRatio/float64(half)) {
		return false
	}

	return l.globallyUniform(aStart, aEnd, negligibleRatio) &&
		l.globallyUniform(bStart, bEnd, negligibleRatio)
}

// fuzzyEqual reports whether a and b agree within a relative tolerance.
func fuzzyEqual(a, b, tolerance float64) bool {
	diff := math.Abs(b - a)
	mag := max(math.Abs(a), math.Abs(b), uniformMinMagnitude)

	return diff/mag <= tolerance
}

// MaxPoint returns the first point of maximal Intensity, or the zero value
// for an empty list.
func (l TimedList) MaxPoint() TimedElement {
	if len(l) == 0 {
		return TimedElement{}
	}
	best := 0
	for i := 1; i < len(l); i++ {
		if l[i].Element.Intensity() > l[best].Element.Intensity() {
			best = i
		}
	}

	return l[best]
}

// ClosestIndices returns, for every requested time, the index of the
// closest point of l. Each lookup starts from the previous answer, so
// ascending requests are cheap. Every entry is -1 when l is empty.
func (l TimedList) ClosestIndices(minutes []float64) []int {
	out := make([]int, len(minutes))
	hint := 0
	for i, t := range minutes {
		hint = l.closestIndex(t, hint)
		out[i] = hint
	}

	return out
}

// closestIndex scans left and right from hint and keeps the nearer side;
// ties go right.
func (l TimedList) closestIndex(t float64, hint int) int {
	if len(l) == 0 {
		return -1
	}
	hint = min(max(hint, 0), len(l)-1)

	left, leftDiff := l.scanClosest(t, hint, -1)
	right, rightDiff := l.scanClosest(t, hint, 1)
	if leftDiff < rightDiff {
		return left
	}

	return right
}

// scanClosest walks from start in direction dir and returns the first index
// of minimal distance to t together with that distance.
func (l TimedList) scanClosest(t float64, start, dir int) (int, float64) {
	best, bestDiff := start, math.Inf(1)
	for i := start; i >= 0 && i < len(l); i += dir {
		if d := math.Abs(t - l[i].Minutes); d < bestDiff {
			best, bestDiff = i, d
		}
	}

	return best, bestDiff
}

// Between returns the points whose time lies within (start, end), or
// [start, end] when inclusive is set.
func (l TimedList) Between(start, end float64, inclusive bool) TimedList {
	out := TimedList{}
	for _, p := range l {
		in := p.Minutes > start && p.Minutes < end
		if inclusive {
			in = p.Minutes >= start && p.Minutes <= end
		}
		if in {
			out = append(out, p)
		}
	}

	return out
}
