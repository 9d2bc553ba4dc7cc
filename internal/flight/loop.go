// Package flight runs the simulation loop around a locked design: per step
// it queries mass properties, samples the registered force models, converts
// force and moment to accelerations, integrates one semi-implicit Euler
// step, and commits the result to the design as a kinematic update. The
// design itself never integrates; it only receives the deltas.
package flight

import (
	"context"

	"github.com/san-kum/rocketsim/internal/design"
	"github.com/san-kum/rocketsim/internal/spatial"
)

type Loop struct {
	des       *design.Design
	forces    []ForceModel
	metrics   []Metric
	observers []Observer
}

func New(des *design.Design) *Loop {
	return &Loop{des: des}
}

func (l *Loop) AddForce(f ForceModel)  { l.forces = append(l.forces, f) }
func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) snapshot(mass float64) State {
	return State{
		T:      l.des.Elapsed(),
		Pos:    l.des.Position(),
		Vel:    l.des.Velocity(),
		Att:    l.des.Attitude(),
		AngVel: l.des.AngularVelocity(),
		Mass:   mass,
	}
}

// Run steps the vehicle until the configured duration, context cancellation,
// or ground contact when StopOnGround is set.
func (l *Loop) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	for _, m := range l.metrics {
		m.Reset()
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		States:  make([]State, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	record := func(st State) {
		result.Times = append(result.Times, st.T)
		result.States = append(result.States, st)
		for _, m := range l.metrics {
			m.Observe(st)
		}
		for _, o := range l.observers {
			o.OnStep(st)
		}
	}
	record(l.snapshot(l.des.Properties().Mass))

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		st, err := l.step(cfg.Dt)
		if err != nil {
			return result, err
		}
		result.StepsTaken++
		record(st)

		if cfg.StopOnGround && st.Pos.Z < 0 && st.Vel.Z < 0 {
			break
		}
	}

	for _, m := range l.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// StepOnce advances the vehicle a single dt outside Run, for interactive
// front ends that own the cadence.
func (l *Loop) StepOnce(dt float64) (State, error) {
	return l.step(dt)
}

// step integrates one dt: forces → accelerations → KinematicData → design.
func (l *Loop) step(dt float64) (State, error) {
	props := l.des.Properties()
	st := l.snapshot(props.Mass)
	t := st.T

	var force, moment spatial.Vec3
	for _, f := range l.forces {
		df, dm := f.ForceMoment(st, props, t)
		force = force.Add(df)
		moment = moment.Add(dm)
	}

	// linear: semi-implicit Euler
	accel := force.Scale(1 / props.Mass)
	dv := accel.Scale(dt)
	dr := st.Vel.Add(dv).Scale(dt)

	// angular: ω̇ = I⁻¹(τ − ω×Iω) about the world-frame tensor
	angVel := st.AngVel
	if inv, err := props.Inertia.Inverse(); err == nil {
		gyro := st.AngVel.Cross(props.Inertia.MulVec(st.AngVel))
		angAccel := inv.MulVec(moment.Sub(gyro))
		angVel = st.AngVel.Add(angAccel.Scale(dt))
	}

	// attitude: rotate by the angular travel over this step
	att := spatial.FromAxisAngle(angVel, angVel.Norm()*dt).Mul(st.Att)

	if err := l.des.Step(dt, design.KinematicData{
		DeltaPos: dr,
		DeltaVel: dv,
		Att:      att,
		AngVel:   angVel,
	}); err != nil {
		return State{}, err
	}

	for _, f := range l.forces {
		if a, ok := f.(Advancer); ok {
			a.Advance(dt)
		}
	}
	return l.snapshot(props.Mass), nil
}
