package element

import "errors"

var (
	// ErrInvalidGeometry indicates a non-positive mass or shape dimension.
	ErrInvalidGeometry = errors.New("element: invalid geometry (non-positive mass or dimension)")

	// ErrFrozen indicates a reposition attempt on a static element whose
	// owning design has already been locked.
	ErrFrozen = errors.New("element: static element frozen by locked design")
)
