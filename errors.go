package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no centroids, no instances, or
	// the points have zero dimensions.
	ErrEmptyInput = errors.New("kmeans: empty input")

	// ErrInsufficientInstances is returned when there are fewer instances than
	// centroids. Orphan repair cannot give every centroid a member in that case.
	ErrInsufficientInstances = errors.New("kmeans: fewer instances than centroids")

	// ErrDimensionMismatch is matched by every *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("kmeans: dimension mismatch")

	// ErrUnrepairableOrphan is returned when a centroid has no members but every
	// instance already sits exactly on its assigned centroid, so relocating the
	// orphan cannot win any instance. This happens when the instances have fewer
	// than k distinct positions.
	ErrUnrepairableOrphan = errors.New("kmeans: orphan centroid cannot be repaired")

	// ErrAssignmentLength is returned when an assignment does not have one entry
	// per instance.
	ErrAssignmentLength = errors.New("kmeans: assignment length does not match instance count")

	// ErrAssignmentRange is returned when an assignment refers to a centroid
	// index outside [0,k).
	ErrAssignmentRange = errors.New("kmeans: assignment refers to a missing centroid")

	// ErrNonFinite is returned when a centroid or instance has a NaN or
	// infinite coordinate. Distances involving such points do not order.
	ErrNonFinite = errors.New("kmeans: non-finite coordinate")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("kmeans: invalid config")
)

// DimensionMismatchError reports two points that cannot be compared.
// Role names the collection the offending point came from ("centroid",
// "instance" or "point") and Index is its position there, or -1 when the
// point is not part of a collection.
type DimensionMismatchError struct {
	Role  string
	Index int
	Want  int
	Got   int
}

func (e *DimensionMismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("kmeans: dimension mismatch: %s has %d dimensions, want %d", e.Role, e.Got, e.Want)
	}
	return fmt.Sprintf("kmeans: dimension mismatch: %s %d has %d dimensions, want %d", e.Role, e.Index, e.Got, e.Want)
}

// Is makes errors.Is(err, ErrDimensionMismatch) true.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// withRole fills in the collection context of a mismatch raised by
// SquaredDistance. Other errors pass through unchanged.
func withRole(err error, role string, index int) error {
	var dm *DimensionMismatchError
	if errors.As(err, &dm) {
		return &DimensionMismatchError{Role: role, Index: index, Want: dm.Want, Got: dm.Got}
	}
	return err
}
