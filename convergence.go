package kmeans

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// distortion returns the sum of squared distances between each instance and
// its assigned centroid. buf must have one slot per instance and receives the
// per-instance terms.
func distortion(centroids, instances [][]float64, assignment []int, buf []float64) float64 {
	for i, x := range instances {
		buf[i] = sumOfSquares(centroids[assignment[i]], x)
	}
	return floats.Sum(buf)
}

// converged reports whether the relative change between the last two
// distortions is at most threshold. A trajectory shorter than two entries has
// not converged. A previous distortion of zero counts as converged instead of
// dividing by zero.
func converged(distortions []float64, threshold float64) bool {
	n := len(distortions)
	if n < 2 {
		return false
	}
	last, prev := distortions[n-1], distortions[n-2]
	if prev == 0 {
		return true
	}
	return math.Abs(last-prev)/prev <= threshold
}
