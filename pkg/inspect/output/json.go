// Package output serializes inspection results.
package output

import (
	"github.com/goccy/go-json"
	"github.com/ukaji3/custos-inspect/pkg/inspect/models"
)

// ToJSON serializes a preview report.
func ToJSON(p *models.Preview, pretty bool) ([]byte, error) {
	return marshal(p, pretty)
}

// SummaryToJSON serializes a field summary.
func SummaryToJSON(s *models.Summary, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
