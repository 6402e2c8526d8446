package kmeans

// Nearest returns the index of the centroid with the smallest squared
// distance to point. Ties go to the lowest index.
func Nearest(centroids [][]float64, point []float64) (int, error) {
	if len(centroids) == 0 {
		return -1, ErrEmptyInput
	}
	best := -1
	var bestDist float64
	for j, c := range centroids {
		d, err := SquaredDistance(point, c)
		if err != nil {
			return -1, withRole(err, "centroid", j)
		}
		if best == -1 || d < bestDist {
			best, bestDist = j, d
		}
	}
	return best, nil
}

// nearest is Nearest for validated inputs. centroids must be non-empty and
// share point's dimensionality.
func nearest(centroids [][]float64, point []float64) int {
	best := 0
	bestDist := sumOfSquares(point, centroids[0])
	for j := 1; j < len(centroids); j++ {
		// Strict comparison keeps the lower index on ties.
		if d := sumOfSquares(point, centroids[j]); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// assignRange writes the nearest centroid of instances[start:end] into the
// matching entries of assignment.
func assignRange(centroids, instances [][]float64, assignment []int, start, end int) {
	for i := start; i < end; i++ {
		assignment[i] = nearest(centroids, instances[i])
	}
}

// assignSerial reassigns every instance on the calling goroutine.
func assignSerial(centroids, instances [][]float64, assignment []int) {
	assignRange(centroids, instances, assignment, 0, len(instances))
}
