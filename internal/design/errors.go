package design

import "errors"

// Domain errors for design operations. Every operation either fully succeeds
// or fails with one of these before any state is written.
var (
	// ErrDuplicateID indicates an element id already present in the design.
	ErrDuplicateID = errors.New("design: duplicate element id")

	// ErrUnknownID indicates an element id not present in the design.
	ErrUnknownID = errors.New("design: unknown element id")

	// ErrLocked indicates a mutation of a static element after lock.
	ErrLocked = errors.New("design: static element immutable after lock")

	// ErrAlreadyLocked indicates a second call to Lock.
	ErrAlreadyLocked = errors.New("design: already locked")

	// ErrInvalidState indicates a kinematic update with non-finite values or
	// an unnormalizable attitude quaternion.
	ErrInvalidState = errors.New("design: invalid kinematic update (non-finite or degenerate)")
)
