package sample

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoData is returned when a CSV source yields no complete rows.
var ErrNoData = errors.New("no valid data found in CSV")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Columns      []string // Column names to load (default: last column)
	FilterColumn string   // Column name to filter rows by (optional)
	FilterValue  string   // Value FilterColumn must hold for a row to be kept
	Delimiter    rune     // Field delimiter (default: ',')
	SkipRows     int      // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
	}
}

// LoadCSV loads one sample per requested column from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) ([]*Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s failed", filename)
	}
	defer file.Close()

	samples, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s failed", filename)
	}
	return samples, nil
}

// LoadCSVFromReader loads one sample per requested column from an io.Reader.
//
// The first row (after SkipRows) is the header. Rows may have any number of
// fields. Rows where any requested column is missing or absent are dropped
// for all columns, so the returned samples always have equal length and
// stay paired row by row.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) ([]*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	line := 0
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrapf(err, "skipping row %d", i+1)
		}
		line++
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	line++

	names := headerNames(header)
	indices, columnNames, err := columnIndices(names, opts.Columns)
	if err != nil {
		return nil, err
	}

	filterIdx := -1
	if opts.FilterColumn != "" {
		filterIdx = indexOf(names, opts.FilterColumn)
		if filterIdx == -1 {
			return nil, errors.Errorf("filter column %q not found in header", opts.FilterColumn)
		}
	}

	columns := make([][]float64, len(indices))
	for i := range columns {
		columns[i] = []float64{}
	}

	row := make([]float64, len(indices))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading line %d", line+1)
		}
		line++

		// Filter by column value if specified
		if filterIdx >= 0 {
			if filterIdx >= len(record) || cleanField(record[filterIdx]) != opts.FilterValue {
				continue
			}
		}

		complete := true
		for i, idx := range indices {
			if idx >= len(record) {
				complete = false
				break
			}
			v, ok, err := parseValue(record[idx])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %q", line, columnNames[i])
			}
			if !ok {
				complete = false
				break
			}
			row[i] = v
		}
		if !complete {
			continue
		}

		for i := range columns {
			columns[i] = append(columns[i], row[i])
		}
	}

	if len(columns[0]) == 0 {
		return nil, ErrNoData
	}

	samples := make([]*Sample, len(columns))
	for i, values := range columns {
		samples[i] = New(columnNames[i], values)
	}
	return samples, nil
}

// LoadCSVColumn loads a single column from a CSV file as a sample.
func LoadCSVColumn(filename, column string) (*Sample, error) {
	opts := DefaultCSVOptions()
	opts.Columns = []string{column}

	samples, err := LoadCSV(filename, opts)
	if err != nil {
		return nil, err
	}
	return samples[0], nil
}

// LoadCSVPair loads two columns from a CSV file as paired samples.
func LoadCSVPair(filename, x, y string) (*Sample, *Sample, error) {
	opts := DefaultCSVOptions()
	opts.Columns = []string{x, y}

	samples, err := LoadCSV(filename, opts)
	if err != nil {
		return nil, nil, err
	}
	return samples[0], samples[1], nil
}

// LoadCSVFiltered loads the given columns from the rows of a CSV file where
// filterColumn equals filterValue.
func LoadCSVFiltered(filename, filterColumn, filterValue string, columns ...string) ([]*Sample, error) {
	opts := DefaultCSVOptions()
	opts.Columns = columns
	opts.FilterColumn = filterColumn
	opts.FilterValue = filterValue
	return LoadCSV(filename, opts)
}

func cleanField(field string) string {
	return strings.TrimSpace(strings.Trim(field, "\""))
}

func headerNames(header []string) []string {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = cleanField(h)
	}
	return names
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func columnIndices(names, columns []string) ([]int, []string, error) {
	// Default to last column if not specified
	if len(columns) == 0 {
		last := len(names) - 1
		return []int{last}, []string{names[last]}, nil
	}

	indices := make([]int, len(columns))
	for i, c := range columns {
		indices[i] = indexOf(names, c)
		if indices[i] == -1 {
			return nil, nil, errors.Errorf("column %q not found in header", c)
		}
	}
	return indices, append([]string(nil), columns...), nil
}

// parseValue reports ok=false for the missing-value markers.
// Infinities and out-of-range numbers are rejected.
func parseValue(field string) (float64, bool, error) {
	s := cleanField(field)
	switch s {
	case "", "NA", "NaN", "null":
		return 0, false, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false, errors.Errorf("invalid number %q", s)
	}
	return v, true, nil
}
