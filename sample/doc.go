// Package sample provides named numeric samples and CSV loading.
//
// A Sample is a column of observations with a name. Its statistics methods
// delegate to package stats, so the same error contract applies.
//
// # Creating a Sample
//
//	s := sample.New("height", []float64{1.62, 1.75, 1.80})
//	avg, err := s.Average()
//	v, err := s.Variance()
//
// # Loading from CSV
//
// Load a single column:
//
//	s, err := sample.LoadCSVColumn("data.csv", "height")
//
// Load two columns as paired samples for covariance:
//
//	x, y, err := sample.LoadCSVPair("data.csv", "height", "weight")
//	cov, err := x.Covariance(y)
//
// Values "", "NA", "NaN" and "null" are treated as missing. A row with a
// missing value in any requested column is dropped from every column.
//
// Load only the rows where a column holds a value:
//
//	samples, err := sample.LoadCSVFiltered("data.csv", "country", "Australia", "population")
//
// Infinite or out-of-range numbers are rejected with an error naming the line
// and column. Rows shorter than the header count as missing for the absent
// columns.
//
// # CSV Options
//
//	opts := &sample.CSVOptions{
//	    Columns:      []string{"height", "weight"},
//	    FilterColumn: "country",
//	    FilterValue:  "Australia",
//	    Delimiter:    ';',
//	    SkipRows:     2,
//	}
//	samples, err := sample.LoadCSVFromReader(reader, opts)
package sample
