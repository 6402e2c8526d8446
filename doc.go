// Package kmeans implements k-means clustering with orphan repair.
//
// Starting from caller-supplied centroids, each iteration assigns every
// instance to its nearest centroid (squared Euclidean distance, lowest index
// wins ties), moves each centroid to the mean of its members and records the
// total distortion. The run stops once the relative change between two
// consecutive distortions is at most the threshold.
//
// A centroid left with no members after assignment is an orphan. Orphans are
// repaired inside the iteration: the lowest-indexed orphan is moved onto the
// instance that fits its own centroid worst, all instances are reassigned,
// and the check repeats until every centroid has a member.
//
// Basic usage:
//
//	result, err := kmeans.Cluster(centroids, instances, 1e-4)
//	// result.Centroids[j] is the final position of cluster j
//	// result.Assignment[i] is the cluster of instance i
//	// result.Distortions[t] is the distortion after iteration t+1
//
// For more control, build a Clusterer from a Config:
//
//	cfg := kmeans.DefaultConfig()
//	cfg.MaxIterations = 100
//	cfg.Assignment = kmeans.AssignmentParallel
//	c, err := kmeans.New(cfg)
//	result, err := c.Cluster(ctx, centroids, instances)
//
// Mismatched dimensionality is always an error, never a zero distance;
// see ErrDimensionMismatch and DimensionMismatchError.
package kmeans
