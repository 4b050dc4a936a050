// Package dataset holds the certificate table and the lookup over it.
//
// The table comes from a headerless delimited file (or an XLSX workbook)
// with six positional columns:
//
//	certificate number, training name, student name,
//	board roll number, training period, college name
//
// A Source fetches the raw bytes (local file or static HTTP URL), Parse turns
// them into a Dataset, and Dataset.Find performs the lookup. A Dataset is
// built once and never changes; Find is a pure function of the dataset and the
// query.
//
// # Matching
//
// Both the query and each row's first column are trimmed and lower-cased
// before comparison. The first equal row wins. Rows are scanned linearly.
//
// # Errors
//
//   - ErrUnavailable wraps any fetch or parse failure.
//   - ErrEmptyQuery is returned for a blank query before any scan.
//   - ErrNotLoaded is returned when the dataset has no rows.
//   - *NotFoundError carries the query that matched nothing.
//
// # Leniency
//
// CSV input tolerates a UTF-8 BOM, blank lines, stray quotes and ragged
// rows. Short rows are padded with empty fields, which Record renders as
// Placeholder. Extra columns are dropped.
package dataset
