package models

// Preview is the machine-readable form of an inspection report.
type Preview struct {
	// Source is the path the dataset was loaded from.
	Source string `json:"source"`
	// Count is the total number of records.
	Count int `json:"count"`
	// Field is the previewed field name.
	Field string `json:"field"`
	// Values holds the rendered field value of each previewed record.
	Values []string `json:"values"`
}

// Summary aggregates a field across every record of a dataset.
type Summary struct {
	// Source is the path the dataset was loaded from.
	Source string `json:"source"`
	// Field is the aggregated field name.
	Field string `json:"field"`
	// Count is the total number of records.
	Count int `json:"count"`
	// Numeric is the number of records whose value could be read as a number.
	Numeric int `json:"numeric"`
	// Skipped is the number of records without a numeric value.
	Skipped int `json:"skipped"`
	// Total is the sum of all numeric values.
	Total float64 `json:"total"`
	// Periods holds per-label totals for values that are objects keyed by
	// period ("Janeiro", "03/2025"), in first-seen order.
	Periods []PeriodTotal `json:"periods,omitempty"`
}

// PeriodTotal is the total of one period label across all records.
type PeriodTotal struct {
	// Label is the period key as written in the first record holding it.
	Label string `json:"label"`
	// Total is the sum of the numeric entries under Label.
	Total float64 `json:"total"`
}
