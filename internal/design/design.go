// Package design composes elements into one rigid body. A design starts in a
// constructing phase where every element may be posed, then locks exactly
// once: the static group is folded into a single cached aggregate and its
// individual records are discarded, so later mass-property queries cost only
// the dynamic group. The design also owns the body's kinematic state and
// commits externally computed per-step updates.
package design

import (
	"fmt"

	"github.com/san-kum/rocketsim/internal/element"
	"github.com/san-kum/rocketsim/internal/spatial"
)

// Properties are the combined mass properties of a design in the world
// frame: total mass, center of mass, and the inertia tensor about that
// center of mass.
type Properties struct {
	Mass         float64
	CenterOfMass spatial.Vec3
	Inertia      spatial.Mat3
}

// aggregate is the folded static group: mass, center of mass and tensor
// about that center, expressed in the design frame at lock time.
type aggregate struct {
	mass   float64
	com    spatial.Vec3
	tensor spatial.Mat3
}

// Design is the aggregate rigid body. Not safe for concurrent use; one
// control loop owns one design.
type Design struct {
	locked    bool
	static    map[string]*element.Element // consumed by Lock
	dynamic   map[string]*element.Element
	staticIDs map[string]struct{} // retained after Lock for error reporting
	agg       aggregate

	pos     spatial.Vec3 // world position
	vel     spatial.Vec3 // world velocity
	att     spatial.Quat // body→world
	angVel  spatial.Vec3 // world angular velocity
	elapsed float64
}

func New() *Design {
	return &Design{
		static:  make(map[string]*element.Element),
		dynamic: make(map[string]*element.Element),
		att:     spatial.IdentityQuat(),
	}
}

// AddElement registers an element under a unique id. Static elements can no
// longer be added once the design is locked; dynamic elements always can.
func (d *Design) AddElement(id string, el *element.Element) error {
	if d.has(id) {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	if el.Static() {
		if d.locked {
			return fmt.Errorf("%w: cannot add static element %q", ErrLocked, id)
		}
		d.static[id] = el
		return nil
	}
	d.dynamic[id] = el
	return nil
}

// RemoveElement drops an element. Static elements are removable only before
// lock; afterwards their records no longer exist individually.
func (d *Design) RemoveElement(id string) error {
	if _, ok := d.dynamic[id]; ok {
		delete(d.dynamic, id)
		return nil
	}
	if _, ok := d.static[id]; ok {
		delete(d.static, id)
		return nil
	}
	if _, ok := d.staticIDs[id]; ok {
		return fmt.Errorf("%w: cannot remove static element %q", ErrLocked, id)
	}
	return fmt.Errorf("%w: %q", ErrUnknownID, id)
}

// ManipulateElement sets an element's absolute pose relative to the design
// origin. Static elements refuse after lock.
func (d *Design) ManipulateElement(id string, pos spatial.Vec3, att spatial.Quat) error {
	if el, ok := d.dynamic[id]; ok {
		return el.Reposition(pos, att)
	}
	if el, ok := d.static[id]; ok {
		return el.Reposition(pos, att)
	}
	if _, ok := d.staticIDs[id]; ok {
		return fmt.Errorf("%w: %q", ErrLocked, id)
	}
	return fmt.Errorf("%w: %q", ErrUnknownID, id)
}

// Locked reports whether Lock has run.
func (d *Design) Locked() bool { return d.locked }

// Lock folds the static group into one cached aggregate and discards the
// individual static records. One-way: a second call fails and changes
// nothing. The aggregate is expressed in the design frame at lock time, so
// queries only rotate one cached tensor instead of every static element.
func (d *Design) Lock() error {
	if d.locked {
		return ErrAlreadyLocked
	}

	var agg aggregate
	for _, el := range d.static {
		agg.mass += el.Mass()
		agg.com = agg.com.Add(el.Position().Scale(el.Mass()))
	}
	if agg.mass > 0 {
		agg.com = agg.com.Scale(1 / agg.mass)
		for _, el := range d.static {
			agg.tensor = agg.tensor.Add(el.WorldInertia(agg.com))
		}
	}

	d.staticIDs = make(map[string]struct{}, len(d.static))
	for id, el := range d.static {
		el.Freeze()
		d.staticIDs[id] = struct{}{}
	}
	d.static = nil
	d.agg = agg
	d.locked = true
	return nil
}

// contribution is one mass lump in the world frame: its mass, center of
// mass, and tensor about that center in world orientation.
type contribution struct {
	mass   float64
	com    spatial.Vec3
	tensor spatial.Mat3
}

func (d *Design) worldContrib(el *element.Element) contribution {
	return contribution{
		mass:   el.Mass(),
		com:    d.pos.Add(d.att.Rotate(el.Position())),
		tensor: el.LocalTensor().Rotated(d.att.Mul(el.Attitude()).Mat3()),
	}
}

// Properties recombines the cached static aggregate with a freshly computed
// contribution from every dynamic element, all in the world frame. The
// dynamic part is never cached: each call reflects the latest poses. Before
// lock the full element set is summed directly.
func (d *Design) Properties() Properties {
	contribs := make([]contribution, 0, len(d.static)+len(d.dynamic)+1)

	if d.locked {
		if d.agg.mass > 0 {
			contribs = append(contribs, contribution{
				mass:   d.agg.mass,
				com:    d.pos.Add(d.att.Rotate(d.agg.com)),
				tensor: d.agg.tensor.Rotated(d.att.Mat3()),
			})
		}
	} else {
		for _, el := range d.static {
			contribs = append(contribs, d.worldContrib(el))
		}
	}
	for _, el := range d.dynamic {
		contribs = append(contribs, d.worldContrib(el))
	}

	var props Properties
	for _, c := range contribs {
		props.Mass += c.mass
		props.CenterOfMass = props.CenterOfMass.Add(c.com.Scale(c.mass))
	}
	if props.Mass == 0 {
		return Properties{}
	}
	props.CenterOfMass = props.CenterOfMass.Scale(1 / props.Mass)

	for _, c := range contribs {
		shifted := spatial.ParallelAxis(c.tensor, c.mass, props.CenterOfMass.Sub(c.com))
		props.Inertia = props.Inertia.Add(shifted)
	}
	return props
}

// Step atomically commits one externally computed kinematic update: position
// and velocity deltas accumulate, attitude and angular velocity replace. On
// any invalid input the design is left untouched. No physics happens here;
// the caller integrates forces and hands over the result.
func (d *Design) Step(dt float64, delta KinematicData) error {
	if !validDt(dt) {
		return fmt.Errorf("%w: dt=%g", ErrInvalidState, dt)
	}
	att, err := delta.normalized()
	if err != nil {
		return err
	}

	d.pos = d.pos.Add(delta.DeltaPos)
	d.vel = d.vel.Add(delta.DeltaVel)
	d.att = att
	d.angVel = delta.AngVel
	d.elapsed += dt
	return nil
}

func (d *Design) Position() spatial.Vec3        { return d.pos }
func (d *Design) Velocity() spatial.Vec3        { return d.vel }
func (d *Design) Attitude() spatial.Quat        { return d.att }
func (d *Design) AngularVelocity() spatial.Vec3 { return d.angVel }
func (d *Design) Elapsed() float64              { return d.elapsed }

// DynamicElement returns a registered dynamic element, for collaborators
// that mutate consumable parts (propellant drain and the like).
func (d *Design) DynamicElement(id string) (*element.Element, bool) {
	el, ok := d.dynamic[id]
	return el, ok
}

func (d *Design) has(id string) bool {
	if _, ok := d.dynamic[id]; ok {
		return true
	}
	if _, ok := d.static[id]; ok {
		return true
	}
	_, ok := d.staticIDs[id]
	return ok
}
