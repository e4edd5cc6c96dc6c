// Package stats provides descriptive statistics over fixed slices of float64.
//
// All functions are pure: they never modify their inputs, hold no state and
// are safe to call concurrently on shared slices.
//
// # Average
//
// The arithmetic mean. An empty slice averages to 0; a nil slice is an error:
//
//	avg, err := stats.Average([]float64{1, 2, 3}) // 2
//	avg, err = stats.Average([]float64{})         // 0, nil
//	_, err = stats.Average(nil)                   // errors.Is(err, stats.ErrNilInput)
//
// # Variance
//
// Population variance (denominator n), computed as the mean of squares
// minus the squared mean:
//
//	v, err := stats.Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9}) // 4
//	_, err = stats.Variance([]float64{})                        // ErrInvalidArgument
//
// # Covariance
//
// Sample covariance (denominator n-1) of two equal-length slices:
//
//	c, err := stats.Covariance([]float64{1, 2, 3}, []float64{2, 4, 6}) // 2
//
// Mismatched or zero lengths return ErrInvalidArgument. Single-element
// inputs pass validation and yield NaN.
//
// Note that Covariance(x, x) is the sample variance of x and is larger than
// Variance(x) by a factor of n/(n-1).
//
// # Errors
//
// Returned errors wrap ErrNilInput or ErrInvalidArgument and can be matched
// with errors.Is or errors.Cause.
package stats
