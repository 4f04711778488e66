package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/ukaji3/custos-inspect/pkg/inspect/models"
	"github.com/xuri/excelize/v2"
)

// SheetParams holds parameters for reading records from a sheet.
type SheetParams struct {
	// Field is the column name used to locate the header row.
	// The matching column is keyed by Field exactly, whatever its spelling.
	Field string
	// Area restricts extraction to a cell range (nil reads the whole sheet).
	Area *models.Area
	// HeaderScan is how many leading rows are searched for the header.
	HeaderScan int
}

// DefaultSheetParams returns default sheet extraction parameters.
func DefaultSheetParams() SheetParams {
	return SheetParams{
		HeaderScan: DefaultHeaderScan,
	}
}

// ExtractRecords reads a sheet as a sequence of records.
// Each non-empty row below the header row becomes one record keyed by
// header text; cells under an empty header are keyed by column letter.
func ExtractRecords(f *excelize.File, sheetName string, params SheetParams) ([]models.Record, error) {
	// Stored values, not display text: a styled 1234.5 must not read as "1,234.50".
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	colOffset := 0
	if params.Area != nil {
		rows, colOffset = cropRows(rows, *params.Area)
	}

	headerIdx := findHeaderRow(rows, params.Field, params.HeaderScan)
	if headerIdx < 0 {
		return nil, nil
	}
	keys, err := headerKeys(rows[headerIdx], params.Field, colOffset)
	if err != nil {
		return nil, err
	}

	var result []models.Record
	for _, row := range rows[headerIdx+1:] {
		cellMap := make(map[string]interface{})
		hasData := false

		for colIdx, cellValue := range row {
			cellValue = strings.TrimSpace(cellValue)
			if cellValue == "" {
				continue
			}
			hasData = true

			key := ""
			if colIdx < len(keys) {
				key = keys[colIdx]
			}
			if key == "" {
				key, err = excelize.ColumnNumberToName(colIdx + colOffset + 1)
				if err != nil {
					return nil, err
				}
			}
			cellMap[key] = parseValue(cellValue)
		}

		if hasData {
			raw, err := json.Marshal(cellMap)
			if err != nil {
				return nil, fmt.Errorf("encode row %d: %w", len(result)+1, err)
			}
			result = append(result, models.Record{Index: len(result), Raw: raw})
		}
	}

	return result, nil
}

// headerKeys turns a header row into record keys.
// A repeated header gets its column letter appended ("Total_D") so no
// column overwrites another.
func headerKeys(header []string, field string, colOffset int) ([]string, error) {
	want := Normalize(field)
	keys := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, cell := range header {
		cell = strings.TrimSpace(cell)
		if want != "" && Normalize(cell) == want {
			cell = field
		}
		if cell != "" && seen[cell] {
			col, err := excelize.ColumnNumberToName(i + colOffset + 1)
			if err != nil {
				return nil, err
			}
			cell = cell + "_" + col
		}
		seen[cell] = true
		keys[i] = cell
	}
	return keys, nil
}

// cropRows restricts rows to an area and returns the column offset of the
// first kept column.
func cropRows(rows [][]string, area models.Area) ([][]string, int) {
	var out [][]string
	for rowIdx := area.R1 - 1; rowIdx < area.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		var cropped []string
		if area.C1-1 < len(row) {
			cropped = row[area.C1-1 : min(area.C2, len(row))]
		}
		out = append(out, cropped)
	}
	return out, area.C1 - 1
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and Inf have no JSON form
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
