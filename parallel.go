package kmeans

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// assignParallel computes the same assignment as assignSerial using up to
// numWorkers goroutines. Instances are split into contiguous row ranges and
// each worker writes only the assignment entries of its own range, so no
// synchronization is needed beyond waiting for the group. Centroids must not
// change while it runs.
//
// Falls back to assignSerial if numWorkers <= 1.
func assignParallel(ctx context.Context, centroids, instances [][]float64, assignment []int, numWorkers int) error {
	n := len(instances)
	if numWorkers <= 1 || n <= 1 {
		assignSerial(centroids, instances, assignment)
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)

	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		if startRow >= n {
			break
		}
		endRow := min(startRow+rowsPerWorker, n)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			assignRange(centroids, instances, assignment, startRow, endRow)
			return nil
		})
	}

	return g.Wait()
}
