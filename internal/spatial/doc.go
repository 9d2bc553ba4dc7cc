// Package spatial provides the 3D math value types used across rocketsim:
// vectors, unit quaternions and 3x3 matrices.
//
// # Conventions
//
// Quaternions are scalar-first (W, X, Y, Z), right-handed, and kept at unit
// norm: every composition renormalizes. The Hamilton product a.Mul(b) is the
// rotation "b first, then a". Rotating a vector is
//
//	q.Rotate(v) = q * v * q⁻¹
//
// which maps a body-frame vector into the world frame when q is a body→world
// attitude. The inverse mapping is q.Conj().Rotate(v).
//
// All operations are pure value operations with no side effects.
package spatial
