package spatial

import (
	"errors"
	"math"
	"testing"
)

func matClose(a, b Mat3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMat3MulIdentity(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 10}
	if got := m.Mul(Identity()); !matClose(got, m, 1e-12) {
		t.Errorf("m * I != m: %v", got)
	}
	if got := Identity().Mul(m); !matClose(got, m, 1e-12) {
		t.Errorf("I * m != m: %v", got)
	}
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3{2, 0, 1, 0, 3, 0, 1, 0, 1}
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Mul(inv); !matClose(got, Identity(), 1e-12) {
		t.Errorf("m * m⁻¹ != I: %v", got)
	}
}

func TestMat3InverseSingular(t *testing.T) {
	var zero Mat3
	_, err := zero.Inverse()
	if !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("expected ErrSingularMatrix, got %v", err)
	}
}

func TestParallelAxisPointMass(t *testing.T) {
	// point mass m at distance d from axis: I about the offset point is
	// m d² on the two axes perpendicular to the displacement.
	m, d := 2.0, 3.0
	shifted := ParallelAxis(Mat3{}, m, Vec3{X: d})

	if math.Abs(shifted[0]) > 1e-12 {
		t.Errorf("expected zero Ixx, got %f", shifted[0])
	}
	if math.Abs(shifted[4]-m*d*d) > 1e-12 {
		t.Errorf("expected Iyy %f, got %f", m*d*d, shifted[4])
	}
	if math.Abs(shifted[8]-m*d*d) > 1e-12 {
		t.Errorf("expected Izz %f, got %f", m*d*d, shifted[8])
	}
}

func TestParallelAxisComposable(t *testing.T) {
	// shifting com→A then A→B must equal one com→B shift only when done via
	// the com each time; the composable form is I(B) = I(com) + shift(B).
	base := Mat3{0.4, 0, 0, 0, 0.4, 0, 0, 0, 0.1}
	mass := 1.7
	a := NewVec3(0.2, -0.4, 1.1)
	b := NewVec3(-1.3, 0.8, 0.5)

	// transporting to B directly
	direct := ParallelAxis(base, mass, b)

	// transporting to A, undoing A, then to B
	toA := ParallelAxis(base, mass, a)
	backToCom := toA.Sub(ParallelAxis(Mat3{}, mass, a))
	viaA := ParallelAxis(backToCom, mass, b)

	if !matClose(direct, viaA, 1e-12) {
		t.Errorf("parallel-axis transport not composable:\n%v\nvs\n%v", direct, viaA)
	}
}

func TestRotatedPreservesSymmetry(t *testing.T) {
	tensor := Mat3{2, 0.1, 0, 0.1, 3, -0.2, 0, -0.2, 4}
	r := FromAxisAngle(Vec3{1, 1, 0}, 0.6).Mat3()

	got := tensor.Rotated(r)
	if !matClose(got, got.Transpose(), 1e-12) {
		t.Error("rotated symmetric tensor should stay symmetric")
	}
}
