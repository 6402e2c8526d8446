package kmeans

import "fmt"

// Assignment selects how the nearest-centroid step is executed.
type Assignment string

const (
	AssignmentAuto     Assignment = "auto"
	AssignmentSerial   Assignment = "serial"
	AssignmentParallel Assignment = "parallel"
)

// ParseAssignment converts a flag or document value into an Assignment.
// The empty string maps to AssignmentAuto.
func ParseAssignment(s string) (Assignment, error) {
	switch a := Assignment(s); a {
	case "":
		return AssignmentAuto, nil
	case AssignmentAuto, AssignmentSerial, AssignmentParallel:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown assignment %q", ErrInvalidConfig, s)
	}
}

// selectAssignment resolves AssignmentAuto into a concrete strategy. Parallel
// assignment only pays off once a single pass does enough distance work to
// amortize starting the workers, measured as n*k*dims coordinate differences.
func selectAssignment(cfg Config, n, k, dims int) Assignment {
	switch cfg.Assignment {
	case AssignmentSerial:
		return AssignmentSerial
	case AssignmentParallel:
		if cfg.Workers <= 1 {
			return AssignmentSerial
		}
		return AssignmentParallel
	}

	if cfg.Workers > 1 && n > 1 && n*k*dims >= cfg.ParallelThreshold {
		return AssignmentParallel
	}
	return AssignmentSerial
}
