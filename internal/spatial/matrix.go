package spatial

import "math"

// Mat3 is a row-major 3x3 matrix.
type Mat3 [9]float64

func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (m Mat3) Add(o Mat3) Mat3 {
	var r Mat3
	for i := range m {
		r[i] = m[i] + o[i]
	}
	return r
}

func (m Mat3) Sub(o Mat3) Mat3 {
	var r Mat3
	for i := range m {
		r[i] = m[i] - o[i]
	}
	return r
}

func (m Mat3) Scale(s float64) Mat3 {
	var r Mat3
	for i := range m {
		r[i] = m[i] * s
	}
	return r
}

func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i*3+k] * o[k*3+j]
			}
			r[i*3+j] = sum
		}
	}
	return r
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns m⁻¹ via the adjugate, or ErrSingularMatrix when the
// determinant is numerically zero.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if math.Abs(det) < 1e-300 {
		return Mat3{}, ErrSingularMatrix
	}
	inv := 1.0 / det
	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, nil
}

func (m Mat3) IsFinite() bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ParallelAxis transports an inertia tensor taken about a body's center of
// mass to a reference point displaced by d, for a body of mass m:
//
//	I' = I + m (|d|² E − d dᵀ)
func ParallelAxis(tensor Mat3, mass float64, d Vec3) Mat3 {
	shift := Identity().Scale(d.NormSq()).Sub(d.Outer(d)).Scale(mass)
	return tensor.Add(shift)
}

// Rotated conjugates the tensor into the frame reached by rotation matrix r:
// r · m · rᵀ.
func (m Mat3) Rotated(r Mat3) Mat3 {
	return r.Mul(m).Mul(r.Transpose())
}
