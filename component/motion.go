package component

import "github.com/lixenwraith/ballista/vmath"

// Axis selects the coordinate a kinematic pair oscillates along
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Of returns the component of v on this axis
func (a Axis) Of(v vmath.Vec3F) float64 {
	if a == AxisY {
		return v.Y
	}
	return v.X
}

// Set writes value into the component of v on this axis
func (a Axis) Set(v *vmath.Vec3F, value float64) {
	if a == AxisY {
		v.Y = value
		return
	}
	v.X = value
}

// MotionProfile configures bounded oscillation for a translateable entity
// Bounds are tested against the pair's platform position
type MotionProfile struct {
	Axis    Axis
	Lower   float64
	Upper   float64
	Partner EntityID
}

// Pair relates a platform and its rider sharing one velocity along one axis
type Pair struct {
	Platform EntityID
	Rider    EntityID
}

// SetMotion marks e translateable with the given profile and initial speed along the axis
func (e *Entity) SetMotion(profile MotionProfile, speed float64) {
	p := profile
	e.Motion = &p
	e.Translateable = true
	e.Velocity = vmath.Vec3F{}
	p.Axis.Set(&e.Velocity, speed)
}

// AxisSpeed returns the entity's velocity along its motion axis, 0 without a profile
func (e *Entity) AxisSpeed() float64 {
	if e.Motion == nil {
		return 0
	}
	return e.Motion.Axis.Of(e.Velocity)
}

// SetAxisSpeed overwrites the entity's velocity along its motion axis
func (e *Entity) SetAxisSpeed(speed float64) {
	if e.Motion == nil {
		return
	}
	e.Motion.Axis.Set(&e.Velocity, speed)
}

// AxisPosition returns the entity's origin along its motion axis
func (e *Entity) AxisPosition() float64 {
	if e.Motion == nil {
		return 0
	}
	return e.Motion.Axis.Of(e.Origin)
}
