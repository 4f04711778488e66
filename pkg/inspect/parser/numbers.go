package parser

import (
	"strconv"
	"strings"
)

// ParseNumber reads a number written in Brazilian notation, as found in
// exported cost sheets: "." groups thousands and "," marks decimals.
// Currency symbols and other stray characters are ignored, so
// "R$ 1.234,56" yields 1234.56. The boolean is false when no number remains.
func ParseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
