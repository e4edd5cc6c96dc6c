package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"single negative", []float64{-7.25}, -7.25},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Average(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, result, 1e-10)
		})
	}
}

func TestAverageNil(t *testing.T) {
	_, err := Average(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNilInput), "expected ErrNilInput, got %v", err)
	assert.Equal(t, ErrNilInput, errors.Cause(err))
}

func TestAverageOrderIndependent(t *testing.T) {
	values := []float64{3, -8, 12, 0, 41, 7, -2, 19, 5, 5}
	expected, err := Average(values)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]float64(nil), values...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		result, err := Average(shuffled)
		require.NoError(t, err)
		assert.Equal(t, expected, result, "permutation %v", shuffled)
	}
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"textbook", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 4.0},
		{"single", []float64{3.5}, 0.0},
		{"constant", []float64{6, 6, 6, 6}, 0.0},
		{"two points", []float64{1, 3}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Variance(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, result, 1e-10)
		})
	}
}

func TestVarianceSingleIsZero(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 0.1, 123456.75, -9.5e3} {
		result, err := Variance([]float64{a})
		require.NoError(t, err)
		assert.Equal(t, 0.0, result, "variance of [%v]", a)
	}
}

func TestVarianceErrors(t *testing.T) {
	_, err := Variance([]float64{})
	assert.True(t, errors.Is(err, ErrInvalidArgument), "empty: got %v", err)

	_, err = Variance(nil)
	assert.True(t, errors.Is(err, ErrNilInput), "nil: got %v", err)
}

func TestCovariance(t *testing.T) {
	tests := []struct {
		name     string
		x, y     []float64
		expected float64
	}{
		{"scaled", []float64{1, 2, 3}, []float64{2, 4, 6}, 2.0},
		{"negated", []float64{1, 2, 3}, []float64{-1, -2, -3}, -1.0},
		{"constant y", []float64{1, 2, 3, 4}, []float64{5, 5, 5, 5}, 0.0},
		{"two points", []float64{0, 10}, []float64{1, 3}, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Covariance(tt.x, tt.y)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, result, 1e-10)
		})
	}
}

func TestCovarianceWithItselfIsSampleVariance(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	n := float64(len(x))

	cov, err := Covariance(x, x)
	require.NoError(t, err)

	// sum((x-5)^2) = 32 over n-1 = 7
	assert.InDelta(t, 32.0/7.0, cov, 1e-10)

	population, err := Variance(x)
	require.NoError(t, err)
	assert.NotEqual(t, population, cov)
	assert.InDelta(t, population*n/(n-1), cov, 1e-10)
}

func TestCovarianceErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		kind error
	}{
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, ErrInvalidArgument},
		{"both empty", []float64{}, []float64{}, ErrInvalidArgument},
		{"x empty", []float64{}, []float64{1}, ErrInvalidArgument},
		{"y empty", []float64{1}, []float64{}, ErrInvalidArgument},
		{"x nil", nil, []float64{1}, ErrNilInput},
		{"y nil", []float64{1}, nil, ErrNilInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Covariance(tt.x, tt.y)
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.Cause(err))
		})
	}
}

func TestCovarianceSingleElementIsNaN(t *testing.T) {
	result, err := Covariance([]float64{4}, []float64{9})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(result), "expected NaN, got %v", result)
}

func TestInputsNotModified(t *testing.T) {
	x := []float64{3, 1, 2}
	y := []float64{9, 7, 8}

	_, _ = Average(x)
	_, _ = Variance(x)
	_, _ = Covariance(x, y)

	assert.Equal(t, []float64{3, 1, 2}, x)
	assert.Equal(t, []float64{9, 7, 8}, y)
}
