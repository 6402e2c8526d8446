package kmeans

import (
	"fmt"
	"math"
)

// countMembers fills counts with the number of instances assigned to each
// centroid.
func countMembers(assignment []int, counts []int) {
	clear(counts)
	for _, c := range assignment {
		counts[c]++
	}
}

// findOrphan returns the lowest centroid index with no members, or -1.
func findOrphan(counts []int) int {
	for j, c := range counts {
		if c == 0 {
			return j
		}
	}
	return -1
}

// WorstPoint returns the index of the instance farthest from its assigned
// centroid together with that squared distance. The first instance wins ties.
func WorstPoint(centroids, instances [][]float64, assignment []int) (int, float64, error) {
	if len(instances) == 0 {
		return -1, 0, ErrEmptyInput
	}
	if len(assignment) != len(instances) {
		return -1, 0, fmt.Errorf("%w: %d entries for %d instances", ErrAssignmentLength, len(assignment), len(instances))
	}

	worst := -1
	var worstDist float64
	for i, x := range instances {
		c := assignment[i]
		if c < 0 || c >= len(centroids) {
			return -1, 0, fmt.Errorf("%w: instance %d assigned to centroid %d, have %d centroids", ErrAssignmentRange, i, c, len(centroids))
		}
		d, err := SquaredDistance(centroids[c], x)
		if err != nil {
			return -1, 0, withRole(err, "instance", i)
		}
		if worst == -1 || d > worstDist {
			worst, worstDist = i, d
		}
	}
	return worst, worstDist, nil
}

// worstPoint is WorstPoint for validated inputs.
func worstPoint(centroids, instances [][]float64, assignment []int) (int, float64) {
	worst := 0
	worstDist := sumOfSquares(centroids[assignment[0]], instances[0])
	for i := 1; i < len(instances); i++ {
		if d := sumOfSquares(centroids[assignment[i]], instances[i]); d > worstDist {
			worst, worstDist = i, d
		}
	}
	return worst, worstDist
}

// repairOrphans reseeds orphan centroids until every centroid has at least
// one member, reassigning all instances after each relocation. It returns
// the number of relocations.
//
// The loop terminates: an orphan owns no instances, so moving it can only
// lower each instance's nearest distance, and the worst instance drops from
// a positive distance to zero. Total assignment cost therefore strictly
// decreases while every relocated centroid sits on one of finitely many
// instance positions. A worst distance of zero means no relocation can win
// an instance, which is reported as ErrUnrepairableOrphan. Distances that
// are not finite and positive break that argument and are reported the same
// way; the context is checked before every relocation.
func (r *run) repairOrphans() (int, error) {
	repairs := 0
	for {
		if err := r.ctx.Err(); err != nil {
			return repairs, err
		}
		countMembers(r.assignment, r.counts)
		orphan := findOrphan(r.counts)
		if orphan < 0 {
			return repairs, nil
		}

		worst, dist := worstPoint(r.centroids, r.instances, r.assignment)
		if dist == 0 {
			return repairs, fmt.Errorf("%w: centroid %d has no members and every instance lies on its centroid", ErrUnrepairableOrphan, orphan)
		}
		if !(dist > 0) || math.IsInf(dist, 1) {
			return repairs, fmt.Errorf("%w: centroid %d has no members and the worst distance is %g", ErrUnrepairableOrphan, orphan, dist)
		}

		// Copy, never alias: centroids are overwritten by the update step.
		copy(r.centroids[orphan], r.instances[worst])
		repairs++
		r.log.logRepair(r.ctx, orphan, worst, dist)

		if err := r.assign(); err != nil {
			return repairs, err
		}
	}
}
