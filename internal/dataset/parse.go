package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"
)

// Format identifies the encoding of the dataset resource.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseFormat validates a configured format name. Empty means auto-detect.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return "", nil
	case "csv", "txt":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported dataset format %q", value)
	}
}

// DetectFormat guesses the format from a path or URL extension, defaulting
// to CSV.
func DetectFormat(location string) Format {
	p := strings.TrimSpace(location)
	if u, err := url.Parse(p); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	if strings.EqualFold(path.Ext(p), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Parse decodes raw resource bytes into a Dataset.
func Parse(data []byte, format Format, sheet string) (*Dataset, error) {
	var (
		rows []Row
		err  error
	)
	switch format {
	case FormatXLSX:
		rows, err = parseXLSX(data, sheet)
	case FormatCSV, "":
		rows, err = parseCSV(data)
	default:
		err = fmt.Errorf("unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return New(rows), nil
}

func parseCSV(data []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	dec, err := csvutil.NewDecoder(fixedWidth{r: reader}, columnNames...)
	if err != nil {
		return nil, fmt.Errorf("create csv decoder: %w", err)
	}

	var rows []Row
	for {
		var row Row
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// fixedWidth pads or truncates every record to the dataset's column count so
// ragged lines decode instead of failing the whole file.
type fixedWidth struct {
	r *csv.Reader
}

func (f fixedWidth) Read() ([]string, error) {
	record, err := f.r.Read()
	if err != nil {
		return nil, err
	}
	if len(record) == Columns {
		return record, nil
	}
	out := make([]string, Columns)
	copy(out, record)
	return out, nil
}

func parseXLSX(data []byte, sheet string) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	name := strings.TrimSpace(sheet)
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		name = sheets[0]
	}

	cells, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}

	rows := make([]Row, 0, len(cells))
	for _, cols := range cells {
		if isBlank(cols) {
			continue
		}
		rows = append(rows, RowFromFields(cols))
	}
	return rows, nil
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
