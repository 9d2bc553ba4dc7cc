package flight

import (
	"github.com/san-kum/rocketsim/internal/design"
	"github.com/san-kum/rocketsim/internal/spatial"
	"github.com/san-kum/rocketsim/internal/tvc"
)

// Gravity pulls straight down in the world frame with no moment.
type Gravity struct {
	Accel float64 // m/s², positive down
}

func NewGravity() Gravity {
	return Gravity{Accel: 9.81}
}

func (g Gravity) ForceMoment(st State, props design.Properties, t float64) (spatial.Vec3, spatial.Vec3) {
	return spatial.NewVec3(0, 0, -props.Mass*g.Accel), spatial.Vec3{}
}

// Thrust samples a thrust curve and resolves it through a TVC mount. The
// mount works in the body frame; the result is rotated out through the
// vehicle attitude. The mount's servos advance with the loop.
type Thrust struct {
	Curve func(t float64) float64 // newtons at time t, <= 0 when burned out
	Mount *tvc.Mount
}

func (th *Thrust) ForceMoment(st State, props design.Properties, t float64) (spatial.Vec3, spatial.Vec3) {
	thrust := th.Curve(t)
	if thrust <= 0 {
		return spatial.Vec3{}, spatial.Vec3{}
	}

	// the mount wants the cg in body coordinates
	cgBody := st.Att.Conj().Rotate(props.CenterOfMass.Sub(st.Pos))
	fBody, mBody := th.Mount.ForceMoment(thrust, cgBody)
	return st.Att.Rotate(fBody), st.Att.Rotate(mBody)
}

func (th *Thrust) Advance(dt float64) {
	th.Mount.Step(dt)
}

// ConstantCurve is a flat thrust profile cut off at burnTime.
func ConstantCurve(newtons, burnTime float64) func(float64) float64 {
	return func(t float64) float64 {
		if t >= burnTime {
			return 0
		}
		return newtons
	}
}
