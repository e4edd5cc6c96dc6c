// Package descstats provides descriptive statistics over slices of float64.
//
// The library computes the arithmetic average, the population variance and
// the sample covariance of fixed, in-memory samples. All computations are
// pure functions that never modify their input.
//
// # Quick Start
//
//	avg, err := stats.Average(values)
//	v, err := stats.Variance(values)    // denominator n
//	c, err := stats.Covariance(xs, ys)  // denominator n-1
//
// Load columns from CSV:
//
//	x, y, err := sample.LoadCSVPair("data.csv", "height", "weight")
//	cov, err := x.Covariance(y)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - stats: Average, Variance and Covariance with their error contract
//   - sample: Named samples and CSV loading
//
// The descstats command in cmd/descstats prints these statistics for CSV
// columns from the command line.
package descstats
