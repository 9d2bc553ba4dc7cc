package spatial

import "math"

// degenerateNorm is the norm below which a quaternion is treated as zero.
const degenerateNorm = 1e-12

// Quat is a unit quaternion, scalar first.
type Quat struct {
	W, X, Y, Z float64
}

func IdentityQuat() Quat {
	return Quat{W: 1}
}

// FromAxisAngle builds the quaternion rotating by angle (radians) about axis.
// A near-zero axis yields the identity rotation.
func FromAxisAngle(axis Vec3, angle float64) Quat {
	n := axis.Norm()
	if n < degenerateNorm {
		return IdentityQuat()
	}
	s := math.Sin(angle/2) / n
	q := Quat{
		W: math.Cos(angle / 2),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
	q, _ = q.Normalize()
	return q
}

func (q Quat) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns the unit quaternion with q's direction, or
// ErrDegenerateQuat when the norm is numerically zero.
func (q Quat) Normalize() (Quat, error) {
	n := q.Norm()
	if n < degenerateNorm {
		return Quat{}, ErrDegenerateQuat
	}
	return Quat{q.W / n, q.X / n, q.Y / n, q.Z / n}, nil
}

func (q Quat) Conj() Quat {
	return Quat{q.W, -q.X, -q.Y, -q.Z}
}

// Inverse is the conjugate scaled by the inverse square norm. For the unit
// quaternions the package maintains it equals Conj; the general form is kept
// so callers can invert unnormalized intermediates.
func (q Quat) Inverse() (Quat, error) {
	n2 := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
	if n2 < degenerateNorm*degenerateNorm {
		return Quat{}, ErrDegenerateQuat
	}
	c := q.Conj()
	return Quat{c.W / n2, c.X / n2, c.Y / n2, c.Z / n2}, nil
}

// Mul is the Hamilton product q*o: the rotation o applied first, then q.
// The result is renormalized.
func (q Quat) Mul(o Quat) Quat {
	r := Quat{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
	if n, err := r.Normalize(); err == nil {
		return n
	}
	return r
}

// Rotate maps v through q v q⁻¹: body frame to world frame for a body→world
// attitude quaternion.
func (q Quat) Rotate(v Vec3) Vec3 {
	// expanded form of q v q⁻¹ for a unit q
	t := Vec3{q.X, q.Y, q.Z}.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(Vec3{q.X, q.Y, q.Z}.Cross(t))
}

// Mat3 returns the rotation matrix equivalent to q.
func (q Quat) Mat3() Mat3 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

func (q Quat) IsFinite() bool {
	for _, c := range [4]float64{q.W, q.X, q.Y, q.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
