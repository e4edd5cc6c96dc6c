package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sartorproj/descstats/internal/conf"
	"github.com/sartorproj/descstats/sample"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Report holds the statistics of one column and, when a second column is
// given, their covariance.
type Report struct {
	Column     string
	Count      int
	Average    float64
	Variance   float64
	With       string
	Covariance *float64
}

// Build computes the report for x, and the covariance with y when y is not nil.
func Build(x, y *sample.Sample) (*Report, error) {
	avg, err := x.Average()
	if err != nil {
		return nil, errors.Wrapf(err, "column %q", x.Name)
	}
	variance, err := x.Variance()
	if err != nil {
		return nil, errors.Wrapf(err, "column %q", x.Name)
	}

	r := &Report{
		Column:   x.Name,
		Count:    x.Len(),
		Average:  avg,
		Variance: variance,
	}

	if y != nil {
		cov, err := x.Covariance(y)
		if err != nil {
			return nil, errors.Wrapf(err, "columns %q and %q", x.Name, y.Name)
		}
		if math.IsNaN(cov) || math.IsInf(cov, 0) {
			logrus.Warnf("covariance of %q and %q is %v with %d observations", x.Name, y.Name, cov, x.Len())
		}
		r.With = y.Name
		r.Covariance = &cov
	}

	return r, nil
}

// formatValue renders v with the given number of decimals, or in full
// precision when decimals is negative. Non-finite values are spelled out.
func formatValue(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	d := decimal.NewFromFloat(v)
	if decimals < 0 {
		return d.String()
	}
	return d.StringFixed(int32(decimals))
}

// jsonValue is a float rendered as a JSON number, or as a string when non-finite.
type jsonValue struct {
	v        float64
	decimals int
}

func (j jsonValue) MarshalJSON() ([]byte, error) {
	s := formatValue(j.v, j.decimals)
	if math.IsNaN(j.v) || math.IsInf(j.v, 0) {
		return json.Marshal(s)
	}
	return []byte(s), nil
}

type jsonReport struct {
	Column     string     `json:"column"`
	Count      int        `json:"count"`
	Average    jsonValue  `json:"average"`
	Variance   jsonValue  `json:"variance"`
	With       string     `json:"with,omitempty"`
	Covariance *jsonValue `json:"covariance,omitempty"`
}

// Write renders the report to w in the given format.
func (r *Report) Write(w io.Writer, format string, decimals int) error {
	switch format {
	case conf.FormatJSON:
		out := jsonReport{
			Column:   r.Column,
			Count:    r.Count,
			Average:  jsonValue{r.Average, decimals},
			Variance: jsonValue{r.Variance, decimals},
			With:     r.With,
		}
		if r.Covariance != nil {
			out.Covariance = &jsonValue{*r.Covariance, decimals}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(out), "encoding report")

	case conf.FormatText, "":
		tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
		fmt.Fprintf(tw, "column:\t%s\n", r.Column)
		fmt.Fprintf(tw, "count:\t%d\n", r.Count)
		fmt.Fprintf(tw, "average:\t%s\n", formatValue(r.Average, decimals))
		fmt.Fprintf(tw, "variance:\t%s\n", formatValue(r.Variance, decimals))
		if r.Covariance != nil {
			fmt.Fprintf(tw, "covariance:\t%s (with %s)\n", formatValue(*r.Covariance, decimals), r.With)
		}
		return errors.Wrap(tw.Flush(), "writing report")

	default:
		return errors.Errorf("unknown format %q", format)
	}
}
