package kmeans

import (
	"context"
	"fmt"
	"math"
	"runtime"
)

// Config controls k-means clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Threshold is the stopping criterion: the run ends once the relative
	// change in distortion between two consecutive iterations,
	// |last-prev|/prev, is at most Threshold. Must be > 0 and finite.
	// Default: 1e-4.
	Threshold float64

	// MaxIterations caps the number of outer iterations. A run that hits the
	// cap returns its result with Converged set to false. 0 means no cap.
	// Must be >= 0. Default: 0.
	MaxIterations int

	// Assignment selects how instances are assigned to their nearest
	// centroid. "auto" picks "parallel" for large inputs when more than one
	// worker is available. Default: "auto".
	Assignment Assignment

	// Workers controls the number of goroutines used by parallel assignment.
	// 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// ParallelThreshold is the smallest n*k*dims for which "auto" assignment
	// goes parallel. Default: 65536.
	ParallelThreshold int

	// Logger receives per-iteration debug events and a summary at the end of
	// the run. nil discards everything.
	Logger *Logger
}

// Result contains the output of a k-means run.
type Result struct {
	// Centroids holds the final centroids. The slices are owned by the
	// Result and never alias the caller's input.
	Centroids [][]float64

	// Assignment maps each instance index to its centroid index in the last
	// iteration. Every centroid index appears at least once.
	Assignment []int

	// Distortions is the total distortion after each completed iteration.
	Distortions []float64

	// Sizes is the number of instances assigned to each centroid.
	Sizes []int

	// Iterations is the number of completed outer iterations,
	// equal to len(Distortions).
	Iterations int

	// Repairs counts orphan centroid relocations over the whole run.
	Repairs int

	// Converged is false only when MaxIterations ended the run before the
	// distortion change fell to Threshold.
	Converged bool
}

// Predict returns the index of the final centroid nearest to point.
func (r *Result) Predict(point []float64) (int, error) {
	return Nearest(r.Centroids, point)
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Threshold:         1e-4,
		Assignment:        AssignmentAuto,
		ParallelThreshold: 1 << 16,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if !(cfg.Threshold > 0) || math.IsInf(cfg.Threshold, 1) {
		return fmt.Errorf("%w: Threshold must be > 0 and finite, got %g", ErrInvalidConfig, cfg.Threshold)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("%w: MaxIterations must be >= 0, got %d", ErrInvalidConfig, cfg.MaxIterations)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", ErrInvalidConfig, cfg.Workers)
	}
	if cfg.ParallelThreshold < 0 {
		return fmt.Errorf("%w: ParallelThreshold must be >= 0, got %d", ErrInvalidConfig, cfg.ParallelThreshold)
	}
	if _, err := ParseAssignment(string(cfg.Assignment)); err != nil {
		return err
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
// Threshold has no default here: a zero Threshold is rejected by validation.
func applyDefaults(cfg *Config) {
	if cfg.Assignment == "" {
		cfg.Assignment = AssignmentAuto
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = 1 << 16
	}
	if cfg.Logger == nil {
		cfg.Logger = NoopLogger()
	}
}

// Clusterer runs k-means with a fixed Config. It holds no per-run state and
// is safe for concurrent use.
type Clusterer struct {
	cfg Config
}

// New validates cfg and returns a Clusterer for it.
func New(cfg Config) (*Clusterer, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Clusterer{cfg: cfg}, nil
}

// Config returns the effective configuration, defaults applied.
func (c *Clusterer) Config() Config {
	return c.cfg
}

// Cluster partitions instances around k = len(centroids) centroids using
// the default config with the given threshold. centroids are the starting
// positions and are not modified.
func Cluster(centroids, instances [][]float64, threshold float64) (*Result, error) {
	cfg := DefaultConfig()
	cfg.Threshold = threshold
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return c.Cluster(context.Background(), centroids, instances)
}

// run holds the mutable state of a single Cluster call.
type run struct {
	ctx        context.Context
	centroids  [][]float64
	instances  [][]float64
	assignment []int
	counts     []int
	strategy   Assignment
	workers    int
	log        *Logger
}

// assign recomputes the full assignment against the current centroids.
func (r *run) assign() error {
	if r.strategy == AssignmentParallel {
		return assignParallel(r.ctx, r.centroids, r.instances, r.assignment, r.workers)
	}
	assignSerial(r.centroids, r.instances, r.assignment)
	return nil
}

// Cluster partitions instances around len(centroids) clusters.
//
// Each iteration assigns every instance to its nearest centroid, repairs
// orphan centroids, moves each centroid to the mean of its members and
// records the resulting distortion. The run stops once the relative change
// between the last two distortions is at most Config.Threshold.
//
// All centroids and instances must share one dimensionality, there must be
// at least as many instances as centroids, and neither may be empty.
// Inputs are never modified. The context is checked once per iteration.
func (c *Clusterer) Cluster(ctx context.Context, centroids, instances [][]float64) (*Result, error) {
	dims, err := validateDims(centroids, instances)
	if err != nil {
		return nil, err
	}
	k, n := len(centroids), len(instances)
	if n < k {
		return nil, fmt.Errorf("%w: %d instances for %d centroids", ErrInsufficientInstances, n, k)
	}

	r := &run{
		ctx:        ctx,
		centroids:  clonePoints(centroids),
		instances:  instances,
		assignment: make([]int, n),
		counts:     make([]int, k),
		strategy:   selectAssignment(c.cfg, n, k, dims),
		workers:    c.cfg.Workers,
		log:        c.cfg.Logger,
	}
	terms := make([]float64, n)

	var distortions []float64
	totalRepairs := 0
	done := false
	for !done {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := r.assign(); err != nil {
			return nil, err
		}
		repairs, err := r.repairOrphans()
		totalRepairs += repairs
		if err != nil {
			return nil, err
		}

		updateCentroids(r.centroids, r.instances, r.assignment, r.counts)
		d := distortion(r.centroids, r.instances, r.assignment, terms)
		distortions = append(distortions, d)
		r.log.logIteration(ctx, len(distortions), d, repairs)

		done = converged(distortions, c.cfg.Threshold)
		if !done && c.cfg.MaxIterations > 0 && len(distortions) >= c.cfg.MaxIterations {
			break
		}
	}
	r.log.logDone(ctx, len(distortions), distortions[len(distortions)-1], done)

	return &Result{
		Centroids:   r.centroids,
		Assignment:  r.assignment,
		Distortions: distortions,
		Sizes:       append([]int(nil), r.counts...),
		Iterations:  len(distortions),
		Repairs:     totalRepairs,
		Converged:   done,
	}, nil
}

// clonePoints returns a deep copy of points.
func clonePoints(points [][]float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = append([]float64(nil), p...)
	}
	return out
}
