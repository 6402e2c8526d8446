package kmeans

import "gonum.org/v1/gonum/floats"

// updateCentroids moves every centroid to the center of mass of its members.
// counts must hold the member count of each centroid for assignment, and
// every count must be positive, which orphan repair guarantees.
func updateCentroids(centroids, instances [][]float64, assignment, counts []int) {
	for _, c := range centroids {
		clear(c)
	}
	for i, x := range instances {
		floats.Add(centroids[assignment[i]], x)
	}
	for j, c := range centroids {
		floats.Scale(1/float64(counts[j]), c)
	}
}
