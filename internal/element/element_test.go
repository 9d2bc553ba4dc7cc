package element

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/rocketsim/internal/spatial"
)

func TestNewRejectsNonPositiveMass(t *testing.T) {
	for _, mass := range []float64{0, -1} {
		if _, err := New(Sphere{Radius: 0.1}, mass, true); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("mass %g: expected ErrInvalidGeometry, got %v", mass, err)
		}
	}
}

func TestRepositionOverwrites(t *testing.T) {
	e, err := New(Cylinder{Radius: 0.036, Height: 0.12}, 0.18, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := e.Reposition(spatial.NewVec3(0, 0, 0.1), spatial.IdentityQuat()); err != nil {
		t.Fatalf("first reposition: %v", err)
	}
	if err := e.Reposition(spatial.NewVec3(0, 0, 0.15), spatial.IdentityQuat()); err != nil {
		t.Fatalf("second reposition: %v", err)
	}

	// absolute, not compounded
	if got := e.Position(); got != spatial.NewVec3(0, 0, 0.15) {
		t.Errorf("expected (0,0,0.15), got %v", got)
	}
}

func TestRepositionAfterFreeze(t *testing.T) {
	e, _ := New(Cylinder{Radius: 0.036, Height: 0.12}, 0.18, true)
	e.Freeze()

	err := e.Reposition(spatial.NewVec3(1, 0, 0), spatial.IdentityQuat())
	if !errors.Is(err, ErrFrozen) {
		t.Errorf("expected ErrFrozen, got %v", err)
	}
	if e.Position() != (spatial.Vec3{}) {
		t.Error("failed reposition must not move the element")
	}
}

func TestFreezeIgnoresDynamic(t *testing.T) {
	e, _ := New(Sphere{Radius: 0.02}, 0.05, false)
	e.Freeze()

	if err := e.Reposition(spatial.NewVec3(0, 0.1, 0), spatial.IdentityQuat()); err != nil {
		t.Errorf("dynamic element should stay mutable after freeze: %v", err)
	}
}

func TestSetMass(t *testing.T) {
	e, _ := New(Cylinder{Radius: 0.02, Height: 0.1}, 0.3, false)

	if err := e.SetMass(0.15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Mass() != 0.15 {
		t.Errorf("expected mass 0.15, got %g", e.Mass())
	}

	// tensor scales linearly with mass for a fixed shape
	half, _ := Cylinder{Radius: 0.02, Height: 0.1}.Tensor(0.15)
	if e.LocalTensor() != half {
		t.Error("tensor not recomputed for new mass")
	}

	if err := e.SetMass(-1); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}

	s, _ := New(Cylinder{Radius: 0.02, Height: 0.1}, 0.3, true)
	if err := s.SetMass(0.1); !errors.Is(err, ErrFrozen) {
		t.Errorf("static element mass must be fixed, got %v", err)
	}
}

func TestWorldInertiaAtOwnCenter(t *testing.T) {
	e, _ := New(Cylinder{Radius: 0.036, Height: 0.12}, 0.18, true)
	if err := e.Reposition(spatial.NewVec3(0, 0, 0.15), spatial.IdentityQuat()); err != nil {
		t.Fatalf("reposition: %v", err)
	}

	// reference point on the center of mass: no parallel-axis term
	got := e.WorldInertia(spatial.NewVec3(0, 0, 0.15))
	want := e.LocalTensor()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("tensor mismatch at %d: %g vs %g", i, got[i], want[i])
		}
	}
}

func TestWorldInertiaRotated(t *testing.T) {
	// rotating a cylinder 90° about x swaps its axial moment onto y
	e, _ := New(Cylinder{Radius: 0.036, Height: 0.12}, 0.18, false)
	local := e.LocalTensor()

	q := spatial.FromAxisAngle(spatial.NewVec3(1, 0, 0), math.Pi/2)
	if err := e.Reposition(spatial.Vec3{}, q); err != nil {
		t.Fatalf("reposition: %v", err)
	}

	world := e.WorldInertia(spatial.Vec3{})
	if math.Abs(world[4]-local[8]) > 1e-12 {
		t.Errorf("expected Iyy %g after rotation, got %g", local[8], world[4])
	}
	if math.Abs(world[8]-local[4]) > 1e-12 {
		t.Errorf("expected Izz %g after rotation, got %g", local[4], world[8])
	}
}

func TestWorldInertiaParallelAxis(t *testing.T) {
	// a point mass offset by d contributes m·d² about perpendicular axes
	m, d := 0.4, 0.25
	e, _ := New(Point{}, m, true)
	if err := e.Reposition(spatial.NewVec3(d, 0, 0), spatial.IdentityQuat()); err != nil {
		t.Fatalf("reposition: %v", err)
	}

	tensor := e.WorldInertia(spatial.Vec3{})
	if math.Abs(tensor[4]-m*d*d) > 1e-12 || math.Abs(tensor[8]-m*d*d) > 1e-12 {
		t.Errorf("expected %g on yy/zz, got %g / %g", m*d*d, tensor[4], tensor[8])
	}
	if math.Abs(tensor[0]) > 1e-12 {
		t.Errorf("expected zero xx, got %g", tensor[0])
	}
}
