package element

import (
	"fmt"

	"github.com/san-kum/rocketsim/internal/spatial"
)

// Geometry is the closed set of rigid-body shapes. Each shape computes its
// inertia tensor about its own center of mass, in its canonical local axes
// with z along the natural axis of symmetry.
type Geometry interface {
	Kind() string
	// Tensor returns the local inertia tensor for the given mass, or
	// ErrInvalidGeometry when a dimension is non-positive.
	Tensor(mass float64) (spatial.Mat3, error)
}

// Cylinder is a solid cylinder of uniform density.
type Cylinder struct {
	Radius float64
	Height float64
}

func (c Cylinder) Kind() string { return "cylinder" }

func (c Cylinder) Tensor(mass float64) (spatial.Mat3, error) {
	if c.Radius <= 0 || c.Height <= 0 {
		return spatial.Mat3{}, fmt.Errorf("%w: cylinder radius=%g height=%g", ErrInvalidGeometry, c.Radius, c.Height)
	}
	r2 := c.Radius * c.Radius
	h2 := c.Height * c.Height
	lateral := mass * (3*r2 + h2) / 12
	axial := mass * r2 / 2
	return diag(lateral, lateral, axial), nil
}

// Tube is a hollow cylinder (thick-walled shell) of uniform density.
type Tube struct {
	Outer  float64
	Inner  float64
	Height float64
}

func (t Tube) Kind() string { return "tube" }

func (t Tube) Tensor(mass float64) (spatial.Mat3, error) {
	if t.Outer <= 0 || t.Inner <= 0 || t.Height <= 0 || t.Inner >= t.Outer {
		return spatial.Mat3{}, fmt.Errorf("%w: tube outer=%g inner=%g height=%g", ErrInvalidGeometry, t.Outer, t.Inner, t.Height)
	}
	rr := t.Outer*t.Outer + t.Inner*t.Inner
	h2 := t.Height * t.Height
	lateral := mass * (3*rr + h2) / 12
	axial := mass * rr / 2
	return diag(lateral, lateral, axial), nil
}

// Cone is a solid right cone with its apex up the +z axis; the tensor is
// about the center of mass, a quarter height above the base.
type Cone struct {
	Radius float64
	Height float64
}

func (c Cone) Kind() string { return "cone" }

func (c Cone) Tensor(mass float64) (spatial.Mat3, error) {
	if c.Radius <= 0 || c.Height <= 0 {
		return spatial.Mat3{}, fmt.Errorf("%w: cone radius=%g height=%g", ErrInvalidGeometry, c.Radius, c.Height)
	}
	r2 := c.Radius * c.Radius
	h2 := c.Height * c.Height
	lateral := mass * (3*r2/20 + 3*h2/80)
	axial := mass * 3 * r2 / 10
	return diag(lateral, lateral, axial), nil
}

// Sphere is a solid sphere of uniform density.
type Sphere struct {
	Radius float64
}

func (s Sphere) Kind() string { return "sphere" }

func (s Sphere) Tensor(mass float64) (spatial.Mat3, error) {
	if s.Radius <= 0 {
		return spatial.Mat3{}, fmt.Errorf("%w: sphere radius=%g", ErrInvalidGeometry, s.Radius)
	}
	i := 2 * mass * s.Radius * s.Radius / 5
	return diag(i, i, i), nil
}

// Box is a solid rectangular prism with edge lengths X, Y, Z.
type Box struct {
	X, Y, Z float64
}

func (b Box) Kind() string { return "box" }

func (b Box) Tensor(mass float64) (spatial.Mat3, error) {
	if b.X <= 0 || b.Y <= 0 || b.Z <= 0 {
		return spatial.Mat3{}, fmt.Errorf("%w: box %gx%gx%g", ErrInvalidGeometry, b.X, b.Y, b.Z)
	}
	x2, y2, z2 := b.X*b.X, b.Y*b.Y, b.Z*b.Z
	return diag(
		mass*(y2+z2)/12,
		mass*(x2+z2)/12,
		mass*(x2+y2)/12,
	), nil
}

// Point is an idealized point mass with a zero local tensor. Its entire
// contribution to an aggregate comes from the parallel-axis term.
type Point struct{}

func (Point) Kind() string { return "point" }

func (Point) Tensor(mass float64) (spatial.Mat3, error) {
	return spatial.Mat3{}, nil
}

func diag(x, y, z float64) spatial.Mat3 {
	return spatial.Mat3{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	}
}
