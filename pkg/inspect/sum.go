package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/custos-inspect/pkg/inspect/models"
	"github.com/ukaji3/custos-inspect/pkg/inspect/output"
	"github.com/ukaji3/custos-inspect/pkg/inspect/parser"
)

// Summarize totals field across every record of ds.
// Numbers count as-is and strings are read with parser.ParseNumber.
// An object value maps period labels to amounts; its entries are added
// both to the total and to the per-period totals.
// Records without any numeric value are counted as skipped.
func Summarize(ds *models.Dataset, field string) models.Summary {
	s := models.Summary{
		Source: ds.Source,
		Field:  field,
		Count:  ds.Len(),
	}
	periods := make(map[string]int)

	for _, rec := range ds.Records {
		value, ok, err := rec.Lookup(field)
		if err != nil || !ok {
			s.Skipped++
			continue
		}

		if value.IsObject() {
			found := false
			value.ForEach(func(label string, member models.Value) bool {
				n, ok := amount(member)
				if !ok {
					return true
				}
				found = true
				s.Total += n

				key := parser.Normalize(label)
				idx, seen := periods[key]
				if !seen {
					idx = len(s.Periods)
					periods[key] = idx
					s.Periods = append(s.Periods, models.PeriodTotal{Label: strings.TrimSpace(label)})
				}
				s.Periods[idx].Total += n
				return true
			})
			if found {
				s.Numeric++
			} else {
				s.Skipped++
			}
			continue
		}

		if n, ok := amount(value); ok {
			s.Total += n
			s.Numeric++
		} else {
			s.Skipped++
		}
	}

	return s
}

// amount reads a number or a pt-BR formatted string.
func amount(v models.Value) (float64, bool) {
	switch {
	case v.IsNumber():
		return v.Float(), true
	case v.IsString():
		return parser.ParseNumber(v.String())
	default:
		return 0, false
	}
}

// WriteSummary writes s to w in the format selected by opts.
func WriteSummary(w io.Writer, s models.Summary, opts Options) error {
	if opts.Format == FormatJSON {
		data, err := output.SummaryToJSON(&s, opts.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	_, err := fmt.Fprintf(w, "count %d\nnumeric %d\nskipped %d\ntotal %s\n",
		s.Count, s.Numeric, s.Skipped, formatAmount(s.Total))
	if err != nil {
		return err
	}
	for _, p := range s.Periods {
		if _, err := fmt.Fprintf(w, "period %s %s\n", p.Label, formatAmount(p.Total)); err != nil {
			return err
		}
	}
	return nil
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
