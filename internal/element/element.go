// Package element models the individual rigid parts composed into a design:
// a closed set of geometry kinds, each with a closed-form inertia tensor, and
// the Element carrying mass, local tensor, pose and the static/dynamic
// classification.
package element

import (
	"fmt"

	"github.com/san-kum/rocketsim/internal/spatial"
)

// Element is one rigid part of a design. Its mass and local inertia tensor
// are fixed at construction; its pose (relative to the design origin) may be
// overwritten until a static element is frozen by the design's lock.
type Element struct {
	geo    Geometry
	mass   float64
	tensor spatial.Mat3 // about the element's own center of mass, local axes
	pos    spatial.Vec3
	att    spatial.Quat
	static bool
	frozen bool
}

// New constructs an element from a geometry, a positive mass and the
// static/dynamic classification. The pose starts at identity: center of mass
// on the design origin, local axes aligned with the design axes.
func New(geo Geometry, mass float64, static bool) (*Element, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("%w: mass=%g", ErrInvalidGeometry, mass)
	}
	tensor, err := geo.Tensor(mass)
	if err != nil {
		return nil, err
	}
	return &Element{
		geo:    geo,
		mass:   mass,
		tensor: tensor,
		att:    spatial.IdentityQuat(),
		static: static,
	}, nil
}

func (e *Element) Kind() string              { return e.geo.Kind() }
func (e *Element) Mass() float64             { return e.mass }
func (e *Element) Static() bool              { return e.static }
func (e *Element) Position() spatial.Vec3    { return e.pos }
func (e *Element) Attitude() spatial.Quat    { return e.att }
func (e *Element) LocalTensor() spatial.Mat3 { return e.tensor }

// Reposition sets the absolute pose relative to the design origin. Repeated
// calls overwrite; they do not compound. Static elements refuse once frozen.
func (e *Element) Reposition(pos spatial.Vec3, att spatial.Quat) error {
	if e.static && e.frozen {
		return ErrFrozen
	}
	norm, err := att.Normalize()
	if err != nil {
		return err
	}
	e.pos = pos
	e.att = norm
	return nil
}

// SetMass rescales a dynamic element's mass, recomputing the local tensor
// from the geometry. Used for consumable parts such as draining propellant.
// Static elements keep their construction mass for good.
func (e *Element) SetMass(mass float64) error {
	if e.static {
		return ErrFrozen
	}
	if mass <= 0 {
		return fmt.Errorf("%w: mass=%g", ErrInvalidGeometry, mass)
	}
	tensor, err := e.geo.Tensor(mass)
	if err != nil {
		return err
	}
	e.mass = mass
	e.tensor = tensor
	return nil
}

// Freeze permanently fixes a static element's pose. Called by the owning
// design at lock time; dynamic elements are unaffected.
func (e *Element) Freeze() {
	if e.static {
		e.frozen = true
	}
}

// WorldInertia transports the element's tensor into the design frame about
// the given reference point: R·I·Rᵀ plus the parallel-axis term for the
// displacement from the element's center of mass to ref.
func (e *Element) WorldInertia(ref spatial.Vec3) spatial.Mat3 {
	rotated := e.tensor.Rotated(e.att.Mat3())
	return spatial.ParallelAxis(rotated, e.mass, ref.Sub(e.pos))
}
