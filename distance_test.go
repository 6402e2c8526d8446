package kmeans

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"3-4-5", []float64{0, 0}, []float64{3, 4}, 25},
		{"negative coordinates", []float64{-1, -1}, []float64{1, 1}, 8},
		{"one dimension", []float64{2.5}, []float64{-0.5}, 9},
		{"empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SquaredDistance(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			rev, err := SquaredDistance(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, rev, "distance must be symmetric")
		})
	}
}

func TestSquaredDistanceMismatch(t *testing.T) {
	d, err := SquaredDistance([]float64{0, 0, 0}, []float64{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Zero(t, d)

	var dm *DimensionMismatchError
	require.True(t, errors.As(err, &dm))
	assert.Equal(t, 3, dm.Want)
	assert.Equal(t, 2, dm.Got)
	assert.Equal(t, "kmeans: dimension mismatch: point has 2 dimensions, want 3", err.Error())
}

func TestValidateDims(t *testing.T) {
	dims, err := validateDims([][]float64{{0, 0, 0}}, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, dims)

	_, err = validateDims([][]float64{{0, 0, 0}}, [][]float64{{1, 2, 3}, {4, 5}})
	var dm *DimensionMismatchError
	require.True(t, errors.As(err, &dm))
	assert.Equal(t, DimensionMismatchError{Role: "instance", Index: 1, Want: 3, Got: 2}, *dm)
	assert.Equal(t, "kmeans: dimension mismatch: instance 1 has 2 dimensions, want 3", err.Error())

	_, err = validateDims([][]float64{{0, 0}, {0}}, [][]float64{{1, 2}})
	require.True(t, errors.As(err, &dm))
	assert.Equal(t, "centroid", dm.Role)
	assert.Equal(t, 1, dm.Index)
}
