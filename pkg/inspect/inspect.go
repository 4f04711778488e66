package inspect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ukaji3/custos-inspect/pkg/inspect/models"
	"github.com/ukaji3/custos-inspect/pkg/inspect/output"
	"github.com/ukaji3/custos-inspect/pkg/inspect/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Inspect loads the dataset at opts.Path and writes its report to w.
func Inspect(w io.Writer, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	ds, err := Load(opts.Path, opts)
	if err != nil {
		return err
	}
	return Report(w, ds, opts)
}

// Load reads a dataset from a file. Workbooks (.xlsx, .xlsm) are read
// sheet-wise; any other file is decoded as a JSON array.
func Load(path string, opts Options) (*models.Dataset, error) {
	log := opts.logger()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	start := time.Now()
	var (
		records []models.Record
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = loadSheet(path, opts)
	default:
		records, err = loadJSON(path)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("dataset loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)))

	return &models.Dataset{
		Source:  path,
		Records: records,
	}, nil
}

func loadJSON(path string) ([]models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w: not UTF-8 text", path, ErrInvalidFormat)
	}

	records, err := parser.DecodeJSON(data)
	switch {
	case errors.Is(err, parser.ErrNotArray):
		return nil, fmt.Errorf("%s: %w", path, ErrNotSequence)
	case err != nil:
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidFormat, err)
	}
	return records, nil
}

func loadSheet(path string, opts Options) ([]models.Record, error) {
	log := opts.logger()

	sheetName := opts.Sheet
	var area *models.Area
	if opts.Range != "" {
		refSheet, a, err := parser.ParseReference(opts.Range)
		if err != nil {
			return nil, err
		}
		if refSheet != "" {
			if sheetName != "" && sheetName != refSheet {
				return nil, fmt.Errorf("range %q names sheet %q but sheet %q was requested", opts.Range, refSheet, sheetName)
			}
			sheetName = refSheet
		}
		area = a
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidFormat, err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrSheetNotFound)
		}
		sheetName = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%s: %w: %s", path, ErrSheetNotFound, sheetName)
	}

	params := parser.DefaultSheetParams()
	params.Field = opts.Field
	params.Area = area
	if opts.HeaderScan > 0 {
		params.HeaderScan = opts.HeaderScan
	}

	log.Debug("reading sheet", zap.String("sheet", sheetName), zap.String("range", opts.Range))
	records, err := parser.ExtractRecords(f, sheetName, params)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheetName, err)
	}
	return records, nil
}

// Report writes the record count followed by the field value of each of
// the first opts.Limit records.
// In text format each line is written as soon as it is known, so a failed
// lookup leaves the count and the earlier values on w.
func Report(w io.Writer, ds *models.Dataset, opts Options) error {
	if opts.Format == FormatJSON {
		return reportJSON(w, ds, opts)
	}

	if _, err := fmt.Fprintln(w, ds.Len()); err != nil {
		return err
	}
	for _, rec := range ds.Head(opts.Limit) {
		value, err := fieldText(rec, opts.Field)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, value); err != nil {
			return err
		}
	}
	return nil
}

func reportJSON(w io.Writer, ds *models.Dataset, opts Options) error {
	preview := models.Preview{
		Source: ds.Source,
		Count:  ds.Len(),
		Field:  opts.Field,
		Values: []string{},
	}
	for _, rec := range ds.Head(opts.Limit) {
		value, err := fieldText(rec, opts.Field)
		if err != nil {
			return err
		}
		preview.Values = append(preview.Values, value)
	}

	data, err := output.ToJSON(&preview, opts.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func fieldText(rec models.Record, field string) (string, error) {
	value, ok, err := rec.Lookup(field)
	if err != nil {
		return "", NewFieldError(rec.Index, field, err)
	}
	if !ok {
		return "", NewFieldError(rec.Index, field, ErrMissingField)
	}
	return value.String(), nil
}
