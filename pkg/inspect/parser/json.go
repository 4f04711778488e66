// Package parser decodes dataset files into records.
package parser

import (
	"errors"

	"github.com/tidwall/gjson"
	"github.com/ukaji3/custos-inspect/pkg/inspect/models"
)

// ErrSyntax indicates the input is not valid JSON.
var ErrSyntax = errors.New("invalid JSON")

// ErrNotArray indicates valid JSON whose top-level value is not an array.
var ErrNotArray = errors.New("top-level value is not an array")

// DecodeJSON splits a top-level JSON array into raw records.
func DecodeJSON(data []byte) ([]models.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrSyntax
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	records := []models.Record{}
	root.ForEach(func(_, elem gjson.Result) bool {
		records = append(records, models.Record{Index: len(records), Raw: []byte(elem.Raw)})
		return true
	})
	return records, nil
}
