package design

import (
	"math"

	"github.com/san-kum/rocketsim/internal/spatial"
)

// KinematicData is one step's externally computed state update. Position and
// velocity are deltas accumulated onto the current state; attitude and
// angular velocity are absolute values that replace it. The asymmetry is the
// contract: attitude integration error must not compound inside the design,
// so the integrating caller always hands over the full orientation.
type KinematicData struct {
	DeltaPos spatial.Vec3
	DeltaVel spatial.Vec3
	Att      spatial.Quat
	AngVel   spatial.Vec3
}

// normalized validates the update and returns the unit attitude quaternion.
func (k KinematicData) normalized() (spatial.Quat, error) {
	if !k.DeltaPos.IsFinite() || !k.DeltaVel.IsFinite() || !k.AngVel.IsFinite() || !k.Att.IsFinite() {
		return spatial.Quat{}, ErrInvalidState
	}
	att, err := k.Att.Normalize()
	if err != nil {
		return spatial.Quat{}, ErrInvalidState
	}
	return att, nil
}

func validDt(dt float64) bool {
	return dt >= 0 && !math.IsNaN(dt) && !math.IsInf(dt, 0)
}
