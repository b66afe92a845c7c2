package warpcore

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvwarp/warpelem"
)

// SegmentMatchScore — similarity of a[beginA:endA] and b[beginB:endB]
//
// Description:
//
//	Resamples B's range onto A's length by linear index mapping and sums
//	warpelem.Score over the samples. Larger (closer to 0) is better.
//
// Algorithm Outline:
//  1. Return 0 if either range is empty, or if one range is shorter than
//     half of the other (integer halves).
//  2. stepB = durB / durA.
//  3. For i in [beginA, endA):
//     x  = beginB + (i−beginA)·stepB
//     lo = min(floor(x), len(b)−1), hi = min(lo+1, len(b)−1), t = x − lo
//     sum += Score(a[i], Interpolate(b[lo], b[hi], ppm, t), ppm)
//
// a[beginA:endA] must be a valid range of a. B positions past the end of b
// read its last element.
//
// Complexity: O(endA − beginA).
func SegmentMatchScore(a []warpelem.Element, beginA, endA int,
	b []warpelem.Element, beginB, endB int, ppm float64) float64 {
	if endB <= beginB || endA <= beginA || len(b) == 0 {
		return 0
	}

	durA := endA - beginA
	durB := endB - beginB
	if durB < durA/2 || durA < durB/2 {
		return 0
	}

	stepB := float64(durB) / float64(durA)
	last := len(b) - 1

	var sum float64
	for i := beginA; i < endA; i++ {
		x := float64(beginB) + float64(i-beginA)*stepB
		lo := min(int(math.Floor(x)), last)
		hi := min(lo+1, last)
		sampleB := warpelem.Interpolate(b[lo], b[hi], ppm, x-float64(lo))
		sum += warpelem.Score(a[i], sampleB, ppm)
	}

	return sum
}

// ConstructWarp — maps knotsA (indices into a) onto indices into b
//
// Description:
//
//	Finds knotsB maximizing Σ SegmentMatchScore over segments minus
//	f·(durB − durA)² per segment, where f = cfg.StretchPenalty ·
//	AverageIntensity(a).
//
// Algorithm Outline:
//  1. len(knotsA) < 2: return a copy of knotsA (nothing to align).
//  2. Allocate the compressed table (see newTable for the bands).
//  3. Row 0: cell j = SegmentMatchScore(a, 0, d0, b, 0, j) − f·(j − d0)².
//  4. Row i: for each j in the band and each start k in
//     [max(0, j − ceil(1.51·durA)), max(0, j − floor(0.49·durA))) that lies
//     in row i−1's band:
//     score = row[i−1][k] + SegmentMatchScore(a, startA, endA, b, k, j)
//     − f·(j − k − durA)²
//     keep the first maximum and remember k.
//  5. Backtrack: knotsB[last] = len(b); starting from end = len(b)−1,
//     knotsB[i] = row[i][end].segmentStart, end = knotsB[i].
//
// Backtrack policy: a lookup outside a row's band reads the nearest
// materialized cell, and every knot is clamped to at most the knot after
// it, so knotsB is always non-decreasing.
//
// Errors:
//   - ErrEmptySequence — a or b is empty (only checked with ≥ 2 knots).
//   - ErrBadKnots      — knotsA not strictly increasing within [0, len(a)].
//
// Complexity:
//
//	Time   = O(Σ_i band(i) · 1.02·durA(i) · durA(i))
//	Memory = O(segments · cfg.GlobalSkew)
func ConstructWarp(cfg Config, a, b []warpelem.Element, knotsA []int) ([]int, error) {
	knotsB, _, err := construct(cfg, a, b, knotsA)

	return knotsB, err
}

// construct runs ConstructWarp and also returns the table, for logging.
func construct(cfg Config, a, b []warpelem.Element, knotsA []int) ([]int, *table, error) {
	if len(knotsA) < 2 {
		return slices.Clone(knotsA), nil, nil
	}
	if err := validateInputs(a, b, knotsA); err != nil {
		return nil, nil, err
	}

	t := newTable(knotsA, len(b), cfg.GlobalSkew)
	penalty := cfg.StretchPenalty * warpelem.AverageIntensity(a)

	fillFirstRow(t, a, b, knotsA, penalty, cfg.MzMatchPPM)
	for i := 1; i < len(t.rows); i++ {
		fillRow(t, i, a, b, knotsA, penalty, cfg.MzMatchPPM)
	}

	return backtrack(t, len(b)), t, nil
}

// validateInputs rejects shapes the table cannot index.
func validateInputs(a, b []warpelem.Element, knotsA []int) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptySequence
	}
	if knotsA[0] < 0 {
		return fmt.Errorf("knot[0]=%d < 0: %w", knotsA[0], ErrBadKnots)
	}
	for i := 1; i < len(knotsA); i++ {
		if knotsA[i] <= knotsA[i-1] {
			return fmt.Errorf("knot[%d]=%d ≤ knot[%d]=%d: %w", i, knotsA[i], i-1, knotsA[i-1], ErrBadKnots)
		}
	}
	if last := knotsA[len(knotsA)-1]; last > len(a) {
		return fmt.Errorf("last knot %d > len(a)=%d: %w", last, len(a), ErrBadKnots)
	}

	return nil
}

// fillFirstRow scores every admissible end of segment 0, which always
// starts at 0 in both signals.
func fillFirstRow(t *table, a, b []warpelem.Element, knotsA []int, penalty, ppm float64) {
	d0 := knotsA[1] - knotsA[0]
	r := &t.rows[0]
	for j := r.offset; j < r.end(); j++ {
		c := r.at(j)
		s := float64(j - d0)
		c.score = SegmentMatchScore(a, 0, d0, b, 0, j, ppm) - penalty*s*s
	}
}

// fillRow relaxes row i from row i−1. Starts outside row i−1's band have an
// unreachable predecessor and are skipped.
func fillRow(t *table, i int, a, b []warpelem.Element, knotsA []int, penalty, ppm float64) {
	startA, endA := knotsA[i], knotsA[i+1]
	durA := float64(endA - startA)
	shortest := int(math.Floor(minStretch * durA))
	longest := int(math.Ceil(maxStretch * durA))

	prev, cur := &t.rows[i-1], &t.rows[i]
	for j := cur.offset; j < cur.end(); j++ {
		kFrom := max(0, j-longest, prev.offset)
		kTo := min(max(0, j-shortest), prev.end())

		c := cur.at(j)
		for k := kFrom; k < kTo; k++ {
			score := prev.at(k).score + SegmentMatchScore(a, startA, endA, b, k, j, ppm)
			diff := float64(j-k) - durA
			score -= penalty * diff * diff
			if score > c.score {
				c.score = score
				c.segmentStart = k
			}
		}
	}
}

// backtrack walks the table from the last segment to the first.
func backtrack(t *table, nB int) []int {
	segments := len(t.rows)
	knotsB := make([]int, segments+1)
	knotsB[segments] = nB

	end := nB - 1
	for i := segments - 1; i >= 0; i-- {
		start := 0
		if c, ok := t.rows[i].nearest(end); ok {
			start = c.segmentStart
		}
		start = min(start, knotsB[i+1])
		knotsB[i] = start
		end = start
	}

	return knotsB
}
