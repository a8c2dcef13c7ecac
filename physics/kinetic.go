package physics

import (
	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/vmath"
)

// Integrate advances a projectile by one fixed step under gravity:
// v.y -= g*dt; p.x += v.x*dt; p.y += v.y*dt - 0.5*c*dt^2
func Integrate(e *component.Entity, dt, gravity, correction float64) {
	e.Velocity.Y -= gravity * dt
	step := vmath.V3FScale(e.Velocity, dt)
	step.Y -= 0.5 * correction * dt * dt
	e.Origin = vmath.V3FAdd(e.Origin, step)
}

// Spin turns a knocked entity by its angular velocity
func Spin(e *component.Entity, dt float64) {
	if e.Moving {
		e.RotationAngle += e.AngularVelocity * dt
	}
}

// Rotate turns an entity by a fixed number of degrees
func Rotate(e *component.Entity, deg float64) {
	e.RotationAngle += deg
}

// ClampFloor lifts a sunken entity back to floorY and stops its spin
// Returns true if the entity was clamped
func ClampFloor(e *component.Entity, floorY float64) bool {
	if e.Origin.Y < floorY {
		e.Origin.Y = floorY
		e.Moving = false
		return true
	}
	return false
}

// Escaped reports whether a ball at pos has left the playfield
// The top edge is open: a high lob falls back in
func Escaped(pos vmath.Vec3F) bool {
	return pos.Y < constant.ExitY || pos.X > constant.ExitX || pos.X < -constant.ExitX
}
