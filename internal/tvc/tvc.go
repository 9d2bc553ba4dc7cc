// Package tvc models a two-axis thrust vectoring mount: two gimbal angles
// driven toward their setpoints at a bounded servo rate, producing a
// body-frame thrust force and the moment it exerts about the vehicle's
// center of mass.
package tvc

import (
	"math"

	"github.com/san-kum/rocketsim/internal/spatial"
)

const DefaultMaxRate = 270.0 * math.Pi / 180 // rad/s

// Mount is the gimbal state. Angles and targets are radians; thetaX tilts
// the nozzle about the body x axis, thetaY about y. Thrust acts along -z of
// the nozzle, so a centered mount pushes along body +z.
type Mount struct {
	thetaX, thetaY   float64
	targetX, targetY float64
	maxRate          float64      // rad/s
	offset           spatial.Vec3 // nozzle position in body frame
}

func NewMount() *Mount {
	return &Mount{maxRate: DefaultMaxRate}
}

// NewMountWithRate uses a custom servo rate in degrees per second.
func NewMountWithRate(degPerSec float64) *Mount {
	return &Mount{maxRate: degPerSec * math.Pi / 180}
}

func (m *Mount) Angles() (float64, float64)  { return m.thetaX, m.thetaY }
func (m *Mount) Targets() (float64, float64) { return m.targetX, m.targetY }

// SetTarget sets the commanded gimbal angles in radians.
func (m *Mount) SetTarget(tx, ty float64) {
	m.targetX = tx
	m.targetY = ty
}

// MoveTo places the nozzle in body coordinates, fixing the moment arm used
// by ForceMoment.
func (m *Mount) MoveTo(offset spatial.Vec3) {
	m.offset = offset
}

// SnapToTarget jumps both angles straight to their setpoints. Used during
// initialization before the servo-rate model matters.
func (m *Mount) SnapToTarget() {
	m.thetaX = m.targetX
	m.thetaY = m.targetY
}

// Step slews each angle toward its target by at most maxRate·dt. Inside one
// step of the target the angle snaps exactly, otherwise the bounded error
// would oscillate around an unreachable setpoint.
func (m *Mount) Step(dt float64) {
	eps := m.maxRate * dt
	m.thetaX = slew(m.thetaX, m.targetX, eps)
	m.thetaY = slew(m.thetaY, m.targetY, eps)
}

func slew(current, target, eps float64) float64 {
	err := target - current
	if math.Abs(err) > eps {
		return current + math.Copysign(eps, err)
	}
	return target
}

// ForceMoment resolves a scalar thrust through the current gimbal angles
// into a body-frame force, and the moment about the center of mass cg from
// the nozzle's moment arm.
func (m *Mount) ForceMoment(thrust float64, cg spatial.Vec3) (spatial.Vec3, spatial.Vec3) {
	sx, cx := math.Sincos(m.thetaX)
	sy, cy := math.Sincos(m.thetaY)
	force := spatial.NewVec3(sy, -sx*cy, cx*cy).Scale(thrust)
	arm := m.offset.Sub(cg)
	return force, arm.Cross(force)
}

// Attitude returns the nozzle orientation as the rotation taking the body -z
// axis onto the current thrust line.
func (m *Mount) Attitude() spatial.Quat {
	sx, cx := math.Sincos(m.thetaX)
	sy, cy := math.Sincos(m.thetaY)
	down := spatial.NewVec3(0, 0, -1)
	target := spatial.NewVec3(-sy, sx*cy, -cx*cy)

	dot := math.Max(-1, math.Min(1, down.Dot(target)))
	angle := math.Acos(dot)
	axis := down.Cross(target)
	return spatial.FromAxisAngle(axis, angle)
}
