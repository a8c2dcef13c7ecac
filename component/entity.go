package component

import (
	"math"

	"github.com/lixenwraith/ballista/vmath"
)

// Kind tags the simulated object type; kinds are mutually exclusive
type Kind uint8

const (
	KindBall Kind = iota
	KindRectangle
	KindTarget
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindRectangle:
		return "rectangle"
	case KindTarget:
		return "target"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// EntityID is the stable arena index assigned in level-creation order
type EntityID int

// NoEntity marks an absent entity reference
const NoEntity EntityID = -1

// Entity is the unit of simulation
// Rectangles are anchored at their lower-left corner; circles at their center
type Entity struct {
	ID   EntityID
	Name string
	Kind Kind

	Origin vmath.Vec3F

	// Shape: Length (x extent) and Width (y extent) for rectangles, Radius for circles
	Length float64
	Width  float64
	Radius float64

	Velocity        vmath.Vec3F
	AngularVelocity float64
	RotationAngle   float64 // degrees

	Movable       bool // floor clamp applies
	Moving        bool // knocked by a strike from above, spins with AngularVelocity
	Translateable bool // oscillates with Motion
	Collidable    bool // member of the ball's collision set
	Active        bool // false once a target is consumed
	Visible       bool // drawn by the renderer

	Motion *MotionProfile
}

// NewBall creates the projectile at the launch anchor
func NewBall(name string, x, y, radius float64) *Entity {
	return &Entity{
		ID:         NoEntity,
		Name:       name,
		Kind:       KindBall,
		Origin:     vmath.V2F(x, y),
		Radius:     radius,
		Movable:    true,
		Collidable: true,
		Active:     true,
		Visible:    true,
	}
}

// NewRectangle creates a block anchored at its lower-left corner
// Radius is the half diagonal, kept for broad checks and rendering
func NewRectangle(name string, x, y, length, width float64) *Entity {
	return &Entity{
		ID:         NoEntity,
		Name:       name,
		Kind:       KindRectangle,
		Origin:     vmath.V2F(x, y),
		Length:     length,
		Width:      width,
		Radius:     math.Sqrt(length*length+width*width) / 2,
		Movable:    true,
		Collidable: true,
		Active:     true,
		Visible:    true,
	}
}

// NewTarget creates a scoring circle; targets are always movable
func NewTarget(name string, x, y, radius float64) *Entity {
	return &Entity{
		ID:         NoEntity,
		Name:       name,
		Kind:       KindTarget,
		Origin:     vmath.V2F(x, y),
		Radius:     radius,
		Movable:    true,
		Collidable: true,
		Active:     true,
		Visible:    true,
	}
}

// Obstacle footprint and bar dimensions
const (
	ObstacleRadius   = 0.2
	ObstacleLength   = 1.0
	ObstacleWidth    = 0.1
	ObstacleStartDeg = 90.0
)

// NewObstacle creates a spinning bar with a circular collision footprint
func NewObstacle(name string, x, y float64) *Entity {
	return &Entity{
		ID:            NoEntity,
		Name:          name,
		Kind:          KindObstacle,
		Origin:        vmath.V2F(x, y),
		Length:        ObstacleLength,
		Width:         ObstacleWidth,
		Radius:        ObstacleRadius,
		RotationAngle: ObstacleStartDeg,
		Movable:       true,
		Collidable:    true,
		Active:        true,
		Visible:       true,
	}
}

// Deactivate consumes the entity: it moves to the off-stage sentinel, stops, and leaves the collision set
func (e *Entity) Deactivate(sentinel vmath.Vec3F) {
	e.Origin = sentinel
	e.Velocity = vmath.Vec3F{}
	e.Active = false
}

// Top returns the y coordinate of a rectangle's upper edge
func (e *Entity) Top() float64 {
	return e.Origin.Y + e.Width
}

// Right returns the x coordinate of a rectangle's right edge
func (e *Entity) Right() float64 {
	return e.Origin.X + e.Length
}
