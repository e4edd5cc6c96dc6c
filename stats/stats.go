// Package stats provides descriptive statistics over slices of float64.
package stats

import "github.com/pkg/errors"

// Average calculates the arithmetic mean of x.
// Returns 0 for an empty, non-nil slice and ErrNilInput for a nil one.
func Average(x []float64) (float64, error) {
	if x == nil {
		return 0, errors.Wrap(ErrNilInput, "average")
	}
	if len(x) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x)), nil
}

// Variance calculates the population variance of x as
// sum(x[k]*x[k])/n - Average(x)^2.
//
// The denominator is n, not n-1. x must contain at least one element.
func Variance(x []float64) (float64, error) {
	if x == nil {
		return 0, errors.Wrap(ErrNilInput, "variance")
	}
	n := len(x)
	if n == 0 {
		return 0, errors.Wrap(ErrInvalidArgument, "variance of empty sequence")
	}

	sumSq := 0.0
	for _, v := range x {
		sumSq += v * v
	}

	mean, err := Average(x)
	if err != nil {
		return 0, err
	}
	return sumSq/float64(n) - mean*mean, nil
}

// Covariance calculates the sample covariance between x and y:
//
//	sum((x[k] - Average(x)) * (y[k] - Average(y))) / (n - 1)
//
// x and y must have the same, nonzero length. With a single element the
// denominator is zero and the result is NaN; no error is returned for that case.
//
// Covariance(x, x) is the sample variance of x, which is Variance(x)*n/(n-1).
func Covariance(x, y []float64) (float64, error) {
	if x == nil || y == nil {
		return 0, errors.Wrap(ErrNilInput, "covariance")
	}
	n := len(x)
	if n != len(y) || n == 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "covariance of sequences with lengths %d and %d", len(x), len(y))
	}

	avgX, err := Average(x)
	if err != nil {
		return 0, err
	}
	avgY, err := Average(y)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += (x[i] - avgX) * (y[i] - avgY)
	}
	return sum / float64(n-1), nil
}
