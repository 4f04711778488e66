// Package inspect loads record datasets and reports on them.
package inspect

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultPath is the dataset read when no path is given.
const DefaultPath = "src/data/custos.json"

// DefaultField is the field previewed when none is given.
const DefaultField = "Valores"

// DefaultLimit is how many records are previewed by default.
const DefaultLimit = 5

// Format represents the report output format.
type Format string

const (
	// FormatText writes the count and each previewed value on its own line.
	FormatText Format = "text"
	// FormatJSON writes a single JSON document.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be text or json)", s)
	}
}

// Options configures loading and reporting.
type Options struct {
	// Path is the dataset file (.json or .xlsx).
	Path string
	// Field is the record field to preview.
	Field string
	// Limit is the maximum number of records previewed.
	Limit int
	// Sheet selects the sheet of an xlsx workbook (empty means the first).
	Sheet string
	// Range restricts an xlsx sheet to a cell range such as "A1:F200".
	// A sheet prefix ("Custos!A1:F200") also selects the sheet.
	Range string
	// HeaderScan is how many leading sheet rows are searched for the header.
	HeaderScan int
	// Format selects the report format.
	Format Format
	// Pretty indents JSON output.
	Pretty bool
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		Path:   DefaultPath,
		Field:  DefaultField,
		Limit:  DefaultLimit,
		Format: FormatText,
	}
}

// Validate checks option values that cannot be corrected silently.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return fmt.Errorf("invalid limit: %d (must not be negative)", o.Limit)
	}
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
