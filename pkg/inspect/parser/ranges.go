package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/custos-inspect/pkg/inspect/models"
	"github.com/xuri/excelize/v2"
)

// ParseReference parses a range reference restricting which cells of a
// sheet are read.
// Format: 'SheetName'!$A$1:$D$10, SheetName!A1:D10 or A1:D10.
// The returned sheet name is empty when the reference has no sheet part.
func ParseReference(ref string) (string, *models.Area, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	rangeStr := ref
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area, err := ParseRange(rangeStr)
	if err != nil {
		return "", nil, err
	}
	return sheetName, area, nil
}

// ParseRange parses a range string like $A$1:$D$10 to an Area.
// Corners may be given in any order.
func ParseRange(rangeStr string) (*models.Area, error) {
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range %q: want two cells separated by ':'", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	return &models.Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}
