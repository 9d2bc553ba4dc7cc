package element

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/rocketsim/internal/spatial"
)

func TestCylinderTensorDiagonal(t *testing.T) {
	c := Cylinder{Radius: 0.036, Height: 0.12}
	mass := 0.18

	tensor, err := c.Tensor(mass)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// off-diagonals vanish for a symmetric shape
	for _, i := range []int{1, 2, 3, 5, 6, 7} {
		if tensor[i] != 0 {
			t.Errorf("expected zero off-diagonal at %d, got %f", i, tensor[i])
		}
	}

	// the two lateral moments are equal
	if math.Abs(tensor[0]-tensor[4]) > 1e-15 {
		t.Errorf("lateral moments differ: %g vs %g", tensor[0], tensor[4])
	}

	expectedLateral := mass * (3*0.036*0.036 + 0.12*0.12) / 12
	expectedAxial := mass * 0.036 * 0.036 / 2
	if math.Abs(tensor[0]-expectedLateral) > 1e-12 {
		t.Errorf("lateral moment: expected %g, got %g", expectedLateral, tensor[0])
	}
	if math.Abs(tensor[8]-expectedAxial) > 1e-12 {
		t.Errorf("axial moment: expected %g, got %g", expectedAxial, tensor[8])
	}
}

func TestTubeHeavierThanCylinderAboutAxis(t *testing.T) {
	// at equal mass, pushing material outward raises the axial moment
	cyl, _ := Cylinder{Radius: 0.05, Height: 0.3}.Tensor(1)
	tube, _ := Tube{Outer: 0.05, Inner: 0.048, Height: 0.3}.Tensor(1)

	if tube[8] <= cyl[8] {
		t.Errorf("tube axial moment %g should exceed solid cylinder %g", tube[8], cyl[8])
	}
}

func TestSphereIsotropic(t *testing.T) {
	tensor, err := Sphere{Radius: 0.1}.Tensor(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := 2 * 2.0 * 0.01 / 5
	for _, i := range []int{0, 4, 8} {
		if math.Abs(tensor[i]-expected) > 1e-12 {
			t.Errorf("moment %d: expected %g, got %g", i, expected, tensor[i])
		}
	}
}

func TestConeTensor(t *testing.T) {
	mass, r, h := 0.05, 0.036, 0.09
	tensor, err := Cone{Radius: r, Height: h}.Tensor(mass)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(tensor[8]-mass*3*r*r/10) > 1e-12 {
		t.Errorf("cone axial moment wrong: %g", tensor[8])
	}
	if math.Abs(tensor[0]-mass*(3*r*r/20+3*h*h/80)) > 1e-12 {
		t.Errorf("cone lateral moment wrong: %g", tensor[0])
	}
}

func TestPointTensorZero(t *testing.T) {
	tensor, err := Point{}.Tensor(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tensor != (spatial.Mat3{}) {
		t.Errorf("point mass should carry a zero tensor, got %v", tensor)
	}
}

func TestInvalidDimensions(t *testing.T) {
	cases := []Geometry{
		Cylinder{Radius: 0, Height: 1},
		Cylinder{Radius: 0.1, Height: -1},
		Tube{Outer: 0.05, Inner: 0.05, Height: 0.3}, // inner must be < outer
		Tube{Outer: 0.05, Inner: -0.01, Height: 0.3},
		Cone{Radius: -0.1, Height: 0.2},
		Sphere{},
		Box{X: 1, Y: 1, Z: 0},
	}
	for _, geo := range cases {
		if _, err := geo.Tensor(1); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%s %+v: expected ErrInvalidGeometry, got %v", geo.Kind(), geo, err)
		}
	}
}
