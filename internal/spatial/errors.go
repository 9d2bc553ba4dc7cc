package spatial

import "errors"

var (
	// ErrDegenerateQuat indicates a quaternion whose norm is numerically zero,
	// which has no inverse and cannot be normalized.
	ErrDegenerateQuat = errors.New("spatial: degenerate quaternion (near-zero norm)")

	// ErrSingularMatrix indicates a matrix with a numerically zero determinant.
	ErrSingularMatrix = errors.New("spatial: singular matrix")
)
