package parser

// DefaultHeaderScan is how many leading rows are searched for a header row.
const DefaultHeaderScan = 50

// findHeaderRow returns the index of the row holding column names.
// The first row among the leading scan rows with a cell naming field wins;
// otherwise the first non-empty row is used. Returns -1 for an empty sheet.
func findHeaderRow(rows [][]string, field string, scan int) int {
	if scan <= 0 {
		scan = DefaultHeaderScan
	}

	if want := Normalize(field); want != "" {
		for rowIdx := 0; rowIdx < len(rows) && rowIdx < scan; rowIdx++ {
			for _, cell := range rows[rowIdx] {
				if Normalize(cell) == want {
					return rowIdx
				}
			}
		}
	}

	minRow, _, _, _ := findDataBounds(rows)
	return minRow
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
