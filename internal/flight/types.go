package flight

import (
	"fmt"

	"github.com/san-kum/rocketsim/internal/design"
	"github.com/san-kum/rocketsim/internal/spatial"
)

// State is a snapshot of the vehicle at one step, in the world frame.
type State struct {
	T      float64
	Pos    spatial.Vec3
	Vel    spatial.Vec3
	Att    spatial.Quat
	AngVel spatial.Vec3
	Mass   float64
}

// ForceModel contributes one world-frame force and moment (about the current
// center of mass) per step. The engine core never calls these; the loop
// samples them and feeds the integrated result back as a kinematic update.
type ForceModel interface {
	ForceMoment(st State, props design.Properties, t float64) (spatial.Vec3, spatial.Vec3)
}

// Advancer is an optional ForceModel extension for models with internal
// state that moves with time, such as servo mounts.
type Advancer interface {
	Advance(dt float64)
}

type Metric interface {
	Name() string
	Observe(st State)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(st State)
}

// ObserverFunc adapts a closure to the Observer interface.
type ObserverFunc func(st State)

func (f ObserverFunc) OnStep(st State) { f(st) }

type Config struct {
	Dt           float64
	Duration     float64
	StopOnGround bool
}

func DefaultConfig() Config {
	return Config{
		Dt:           0.01,
		Duration:     30.0,
		StopOnGround: true,
	}
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("flight: dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("flight: duration must be positive, got %g", c.Duration)
	}
	return nil
}

type Result struct {
	Times      []float64
	States     []State
	Metrics    map[string]float64
	StepsTaken int
}
