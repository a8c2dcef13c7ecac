package physics

import (
	"math"

	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/vmath"
)

// Strike is a bitmask of rectangle contact tests that matched in one frame
type Strike uint8

const (
	// StrikeBottom: ball above the rectangle within radius+width, lands on its top
	StrikeBottom Strike = 1 << iota
	// StrikeTop: rectangle above the ball within radius, ball is pushed under it
	StrikeTop
	// StrikeLeft: ball left of the rectangle's left edge within radius
	StrikeLeft
	// StrikeRight: ball right of the rectangle's left edge within radius+length
	StrikeRight
)

func (s Strike) Count() int {
	n := 0
	for b := s; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// RectangleStrikes evaluates the four rectangle tests for a ball of radius br centered at at
// All four are independent; several may match in the same frame
func RectangleStrikes(at vmath.Vec3F, br float64, rect *component.Entity) Strike {
	var s Strike

	rx, ry := rect.Origin.X, rect.Origin.Y
	overlapX := at.X+br > rx && at.X-br <= rect.Right()
	withinY := at.Y <= rect.Top() && at.Y >= ry
	gap := math.Abs(ry - at.Y)

	if gap <= br+rect.Width && overlapX && at.Y > ry {
		s |= StrikeBottom
	}
	if ry > at.Y && gap <= br && overlapX {
		s |= StrikeTop
	}
	if at.X < rx && rx-at.X <= br && withinY {
		s |= StrikeLeft
	}
	if at.X > rx && at.X-rx <= br+rect.Length && withinY {
		s |= StrikeRight
	}
	return s
}

// ResolveRectangle tests the ball's frame-start position at against rect and applies responses
// to the live ball in fixed order: bottom, top, left, right
// Responses act on the live velocity, so strikes on two rectangles in one frame compound
func ResolveRectangle(ball *component.Entity, at vmath.Vec3F, rect *component.Entity) Strike {
	s := RectangleStrikes(at, ball.Radius, rect)
	if s == 0 {
		return 0
	}

	if s&StrikeBottom != 0 {
		ball.Origin.Y = rect.Top() + ball.Radius
		ball.Velocity.Y = -ball.Velocity.Y
		rect.Moving = true
	}
	if s&StrikeTop != 0 {
		ball.Origin.Y = rect.Origin.Y - ball.Radius
		ball.Velocity.Y = -ball.Velocity.Y
	}
	if s&StrikeLeft != 0 {
		ball.Velocity.X = constant.EdgeRestitution * ball.Velocity.X
	}
	if s&StrikeRight != 0 {
		ball.Velocity.X = constant.EdgeRestitution * ball.Velocity.X
	}
	return s
}

// HitTarget reports whether a ball at at overlaps an active target
func HitTarget(at vmath.Vec3F, br float64, target *component.Entity) bool {
	return target.Active && vmath.CirclesOverlap(at, br, target.Origin, target.Radius)
}

// HitObstacle reports whether a ball at at overlaps an obstacle's circular footprint
func HitObstacle(at vmath.Vec3F, br float64, obstacle *component.Entity) bool {
	return vmath.CirclesOverlap(at, br, obstacle.Origin, obstacle.Radius)
}

// Deflect is the inelastic bounce off a spinning bar: both components inverted and halved
func Deflect(ball *component.Entity) {
	ball.Velocity.X = constant.ObstacleRestitution * ball.Velocity.X
	ball.Velocity.Y = constant.ObstacleRestitution * ball.Velocity.Y
}

// DeactivatedOrigin is where consumed targets are parked
var DeactivatedOrigin = vmath.V2F(constant.DeactivatedX, constant.DeactivatedY)
