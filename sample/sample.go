// Package sample provides named numeric samples and loading them from CSV.
package sample

import (
	"github.com/sartorproj/descstats/stats"
)

// Sample represents a named, ordered sequence of observations.
// Values are never modified by the methods below.
type Sample struct {
	Name   string
	Values []float64
}

// New creates a new sample from values.
func New(name string, values []float64) *Sample {
	return &Sample{
		Name:   name,
		Values: values,
	}
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Average returns the arithmetic mean of the sample.
func (s *Sample) Average() (float64, error) {
	return stats.Average(s.Values)
}

// Variance returns the population variance of the sample.
func (s *Sample) Variance() (float64, error) {
	return stats.Variance(s.Values)
}

// Covariance returns the sample covariance between s and other.
// A nil other is reported as stats.ErrNilInput.
func (s *Sample) Covariance(other *Sample) (float64, error) {
	if other == nil {
		return stats.Covariance(s.Values, nil)
	}
	return stats.Covariance(s.Values, other.Values)
}
