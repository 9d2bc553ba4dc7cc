// Package metrics provides flight metrics collected over a run.
package metrics

import (
	"math"

	"github.com/san-kum/rocketsim/internal/flight"
	"github.com/san-kum/rocketsim/internal/spatial"
)

// Apogee tracks the highest altitude reached.
type Apogee struct {
	max float64
}

func NewApogee() *Apogee { return &Apogee{} }

func (a *Apogee) Name() string { return "apogee" }

func (a *Apogee) Observe(st flight.State) {
	if st.Pos.Z > a.max {
		a.max = st.Pos.Z
	}
}

func (a *Apogee) Value() float64 { return a.max }
func (a *Apogee) Reset()         { a.max = 0 }

// MaxSpeed tracks the peak speed magnitude.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(st flight.State) {
	if v := st.Vel.Norm(); v > m.max {
		m.max = v
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// Tilt tracks the largest angle between the body z axis and world vertical,
// in radians. A stable TVC flight keeps this small.
type Tilt struct {
	max float64
}

func NewTilt() *Tilt { return &Tilt{} }

func (t *Tilt) Name() string { return "max_tilt" }

func (t *Tilt) Observe(st flight.State) {
	up := st.Att.Rotate(spatial.NewVec3(0, 0, 1))
	dot := math.Max(-1, math.Min(1, up.Z))
	if angle := math.Acos(dot); angle > t.max {
		t.max = angle
	}
}

func (t *Tilt) Value() float64 { return t.max }
func (t *Tilt) Reset()         { t.max = 0 }
