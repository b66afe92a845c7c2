package warpcore

// TableCells exposes the materialized size of the compressed table.
func TableCells(knotsA []int, nB, skew int) int {
	return newTable(knotsA, nB, skew).cellCount()
}
