package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable marks any failure to fetch or parse the dataset.
	ErrUnavailable = errors.New("dataset unavailable")

	// ErrEmptyQuery is returned for a blank query; no scan is performed.
	ErrEmptyQuery = errors.New("empty certificate number")

	// ErrNotLoaded is returned when a lookup runs before rows are available.
	ErrNotLoaded = errors.New("dataset not loaded")
)

// NotFoundError reports a query that matched no row.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("certificate %q not found", e.Query)
}

// Dataset is the ordered, read-only table of certificate rows.
type Dataset struct {
	rows []Row
}

// New returns a Dataset holding a copy of rows.
func New(rows []Row) *Dataset {
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return &Dataset{rows: dup}
}

// Len returns the number of rows. A nil Dataset has none.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Row returns the row at index i.
func (d *Dataset) Row(i int) (Row, bool) {
	if d == nil || i < 0 || i >= len(d.rows) {
		return Row{}, false
	}
	return d.rows[i], true
}

// Normalize folds case and trims surrounding whitespace for comparison.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
