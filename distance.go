package kmeans

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SquaredDistance returns the squared Euclidean distance between a and b.
// The square root is never taken: every comparison the clusterer makes
// (nearest centroid, worst-fit instance, distortion) is order-preserving
// under squaring.
//
// Points of different lengths cannot be compared and yield a
// *DimensionMismatchError rather than a distance.
func SquaredDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionMismatchError{Role: "point", Index: -1, Want: len(a), Got: len(b)}
	}
	return sumOfSquares(a, b), nil
}

// sumOfSquares is SquaredDistance without the length check, for inner loops
// whose inputs were validated at the start of a run.
func sumOfSquares(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// validateDims checks that every centroid and instance has the same
// dimensionality as the first centroid and only finite coordinates, and
// returns the dimensionality.
func validateDims(centroids, instances [][]float64) (int, error) {
	if len(centroids) == 0 || len(instances) == 0 {
		return 0, ErrEmptyInput
	}
	dims := len(centroids[0])
	if dims == 0 {
		return 0, ErrEmptyInput
	}
	for i, c := range centroids {
		if len(c) != dims {
			return 0, &DimensionMismatchError{Role: "centroid", Index: i, Want: dims, Got: len(c)}
		}
		if !finite(c) {
			return 0, fmt.Errorf("%w: centroid %d", ErrNonFinite, i)
		}
	}
	for i, x := range instances {
		if len(x) != dims {
			return 0, &DimensionMismatchError{Role: "instance", Index: i, Want: dims, Got: len(x)}
		}
		if !finite(x) {
			return 0, fmt.Errorf("%w: instance %d", ErrNonFinite, i)
		}
	}
	return dims, nil
}

// finite reports whether p has neither NaN nor infinite coordinates.
func finite(p []float64) bool {
	if floats.HasNaN(p) {
		return false
	}
	for _, v := range p {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
