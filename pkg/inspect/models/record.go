// Package models defines data structures for dataset inspection.
package models

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// ErrNotObject indicates a record is not a JSON object and has no fields.
var ErrNotObject = errors.New("record is not an object")

// Record is one element of a dataset's top-level sequence.
type Record struct {
	// Index is the position of the record in the sequence (0-based).
	Index int
	// Raw is the record's source JSON text.
	Raw []byte
}

// Lookup returns the value stored under field.
// The boolean is false when the record is an object without that key.
// When a key repeats, the last occurrence wins.
func (r Record) Lookup(field string) (Value, bool, error) {
	res := gjson.ParseBytes(r.Raw)
	if !res.IsObject() {
		return Value{}, false, ErrNotObject
	}

	var (
		found gjson.Result
		ok    bool
	)
	res.ForEach(func(key, value gjson.Result) bool {
		if key.String() == field {
			found = value
			ok = true
		}
		return true
	})
	if !ok {
		return Value{}, false, nil
	}
	return Value{res: found}, true, nil
}

// Value is a single decoded field value.
type Value struct {
	res gjson.Result
}

// String renders the value as plain text: strings unquoted, numbers as
// written, null as "null", and objects or arrays as compact JSON.
func (v Value) String() string {
	switch v.res.Type {
	case gjson.Null:
		return "null"
	case gjson.String:
		return v.res.Str
	case gjson.Number:
		return v.res.Raw
	case gjson.JSON:
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(v.res.Raw)); err != nil {
			return v.res.Raw
		}
		return buf.String()
	default:
		return v.res.String()
	}
}

// IsNumber reports whether the value is a JSON number.
func (v Value) IsNumber() bool {
	return v.res.Type == gjson.Number
}

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool {
	return v.res.IsObject()
}

// ForEach calls fn for each member of an object value, in source order,
// until fn returns false.
func (v Value) ForEach(fn func(key string, member Value) bool) {
	if !v.res.IsObject() {
		return
	}
	v.res.ForEach(func(key, value gjson.Result) bool {
		return fn(key.String(), Value{res: value})
	})
}

// IsString reports whether the value is a JSON string.
func (v Value) IsString() bool {
	return v.res.Type == gjson.String
}

// Float returns the numeric value. It is only meaningful when IsNumber is true.
func (v Value) Float() float64 {
	return v.res.Num
}

// Raw returns the value's source JSON text.
func (v Value) Raw() string {
	return v.res.Raw
}
