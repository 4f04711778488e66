package models

// Dataset is an ordered, read-only sequence of records loaded in full.
type Dataset struct {
	// Source is the path the dataset was loaded from.
	Source string
	// Records holds the records in source order.
	Records []Record
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Head returns the first min(n, Len()) records.
func (d *Dataset) Head(n int) []Record {
	if n < 0 {
		n = 0
	}
	if n > len(d.Records) {
		n = len(d.Records)
	}
	return d.Records[:n]
}
