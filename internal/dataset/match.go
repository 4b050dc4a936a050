package dataset

import "strings"

// Find returns the first row whose certificate number equals query after
// normalization. Rows are scanned in file order.
func (d *Dataset) Find(query string) (Row, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Row{}, ErrEmptyQuery
	}
	if d.Len() == 0 {
		return Row{}, ErrNotLoaded
	}

	want := Normalize(trimmed)
	for _, row := range d.rows {
		if row.CertificateNo == "" {
			continue
		}
		if Normalize(row.CertificateNo) == want {
			return row, nil
		}
	}
	return Row{}, &NotFoundError{Query: trimmed}
}
