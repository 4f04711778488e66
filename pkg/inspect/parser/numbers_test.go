package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"1.234,56", 1234.56, true},
		{"R$ 1.234,56", 1234.56, true},
		{"-10,5", -10.5, true},
		{"42", 42, true},
		{"1.000", 1000, true},
		{"  7,25 ", 7.25, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"--", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.input)
		assert.Equal(t, tt.wantOK, ok, "ParseNumber(%q)", tt.input)
		assert.InDelta(t, tt.want, got, 1e-9, "ParseNumber(%q)", tt.input)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Valores", "valores"},
		{"  VALORES ", "valores"},
		{"Vlr. Total", "vlrtotal"},
		{"Março", "marco"},
		{"Célula robótica", "celularobotica"},
		{"Prensençadez", "prensencadez"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestFindHeaderRow(t *testing.T) {
	rows := [][]string{
		{},
		{"Relatório"},
		{"Centro", "Valôres"},
		{"Solda", "10"},
	}

	assert.Equal(t, 2, findHeaderRow(rows, "Valores", 0))
	assert.Equal(t, 1, findHeaderRow(rows, "Valores", 2), "header outside scan falls back to first data row")
	assert.Equal(t, 1, findHeaderRow(rows, "", 0))
	assert.Equal(t, -1, findHeaderRow(nil, "Valores", 0))
}
