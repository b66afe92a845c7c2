// SPDX-License-Identifier: MIT
// Package: lvwarp/warpcore
//
// table.go — the compressed dynamic-programming table.
//
// Layout:
//   • One row per segment of A. Cell j of row i answers: "what is the best
//     accumulated score if segment i ends at index j of B, and where in B
//     did that segment start?"
//   • Only the band [offset, offset+len(cells)) of each row is stored.
//     Positions outside the band are unreachable (−MaxFloat64), never zero.
//   • Total size is Σ band widths, i.e. O(segments · GlobalSkew).

package warpcore

import (
	"fmt"
	"math"
)

// unreachable is the score of cells no alignment can end in.
const unreachable = -math.MaxFloat64

// cell is one entry of the table.
type cell struct {
	score        float64 // best accumulated score ending here
	segmentStart int     // start in B of the segment that produced score
}

// row is the materialized band of one table row.
type row struct {
	offset int
	cells  []cell
}

// newRow allocates the band [start, end), all cells unreachable.
// An inverted band is treated as empty.
func newRow(start, end int) row {
	width := max(end-start, 0)
	cells := make([]cell, width)
	for i := range cells {
		cells[i].score = unreachable
	}

	return row{offset: start, cells: cells}
}

// end returns the exclusive upper bound of the band.
func (r *row) end() int { return r.offset + len(r.cells) }

// contains reports whether position j of B is materialized.
func (r *row) contains(j int) bool { return j >= r.offset && j < r.end() }

// at returns the cell for position j. Out-of-band access is a programming
// error and panics.
func (r *row) at(j int) *cell {
	if !r.contains(j) {
		panic(fmt.Sprintf("warpcore: position %d outside band [%d, %d)", j, r.offset, r.end()))
	}

	return &r.cells[j-r.offset]
}

// nearest returns the cell closest to position j, clamping j into the band.
// ok is false for an empty band.
func (r *row) nearest(j int) (c cell, ok bool) {
	if len(r.cells) == 0 {
		return cell{}, false
	}
	j = min(max(j, r.offset), r.end()-1)

	return *r.at(j), true
}

// table is the full compressed table.
type table struct {
	rows []row
}

// newTable computes the admissible band of every segment and allocates it.
//
// Bands (all clamped to [0, nB]):
//
//	row 0:   [floor(0.49·d0), ceil(1.51·d0))           d0 = knotsA[1] − knotsA[0]
//	row i>0: [endA − h, endA + h)                       endA = knotsA[i+1]
//	         h = min(skew, int(0.51·endA))
//
// knotsA must hold at least two entries.
func newTable(knotsA []int, nB, skew int) *table {
	segments := len(knotsA) - 1
	t := &table{rows: make([]row, segments)}

	d0 := float64(knotsA[1] - knotsA[0])
	start := clamp(int(math.Floor(minStretch*d0)), 0, nB)
	end := clamp(int(math.Ceil(maxStretch*d0)), 0, nB)
	t.rows[0] = newRow(start, end)

	for i := 1; i < segments; i++ {
		endA := knotsA[i+1]
		half := min(skew, int(stretch*float64(endA)))
		t.rows[i] = newRow(clamp(endA-half, 0, nB), clamp(endA+half, 0, nB))
	}

	return t
}

// cellCount returns the number of materialized cells.
func (t *table) cellCount() int {
	var n int
	for i := range t.rows {
		n += len(t.rows[i].cells)
	}

	return n
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
