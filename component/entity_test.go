package component

import (
	"math"
	"testing"

	"github.com/lixenwraith/ballista/vmath"
)

func TestConstructorDefaults(t *testing.T) {
	tests := []struct {
		name    string
		e       *Entity
		kind    Kind
		movable bool
		radius  float64
	}{
		{"ball", NewBall("ball", -3.75, -2.8, 0.2), KindBall, true, 0.2},
		{"target", NewTarget("t", 3, -2, 0.2), KindTarget, true, 0.2},
		{"obstacle", NewObstacle("o", -1.5, 0), KindObstacle, true, ObstacleRadius},
		{"rectangle", NewRectangle("r", -2, -2, 3, 4), KindRectangle, true, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.e.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", tt.e.Kind, tt.kind)
			}
			if tt.e.Movable != tt.movable {
				t.Errorf("movable = %v, want %v", tt.e.Movable, tt.movable)
			}
			if math.Abs(tt.e.Radius-tt.radius) > 1e-12 {
				t.Errorf("radius = %f, want %f", tt.e.Radius, tt.radius)
			}
			if !tt.e.Active || !tt.e.Collidable || !tt.e.Visible {
				t.Errorf("new entity should be active, collidable and visible: %+v", tt.e)
			}
			if tt.e.Origin.Z != 0 {
				t.Errorf("origin.Z = %f, want 0", tt.e.Origin.Z)
			}
		})
	}
}

func TestObstacleStartsUpright(t *testing.T) {
	o := NewObstacle("o", 0, 0)
	if o.RotationAngle != ObstacleStartDeg {
		t.Fatalf("rotation = %f, want %f", o.RotationAngle, ObstacleStartDeg)
	}
}

func TestDeactivateMovesToSentinel(t *testing.T) {
	e := NewTarget("t", 1, 1, 0.2)
	e.Velocity = vmath.V2F(0.5, 0)
	e.Deactivate(vmath.V2F(5, 5))

	if e.Active {
		t.Fatal("target still active after Deactivate")
	}
	if e.Origin.X != 5 || e.Origin.Y != 5 {
		t.Fatalf("origin = %+v, want (5,5)", e.Origin)
	}
	if e.Velocity.X != 0 || e.Velocity.Y != 0 {
		t.Fatalf("velocity = %+v, want zero", e.Velocity)
	}
}

func TestMotionAxis(t *testing.T) {
	e := NewRectangle("p", -3.1, 0, 1, 0.4)
	e.SetMotion(MotionProfile{Axis: AxisY, Lower: 0, Upper: 3}, 0.5)

	if !e.Translateable {
		t.Fatal("SetMotion should mark entity translateable")
	}
	if e.Velocity.Y != 0.5 || e.Velocity.X != 0 {
		t.Fatalf("velocity = %+v, want (0, 0.5)", e.Velocity)
	}
	if got := e.AxisPosition(); got != 0 {
		t.Fatalf("AxisPosition = %f, want 0", got)
	}

	e.SetAxisSpeed(-0.5)
	if got := e.AxisSpeed(); got != -0.5 {
		t.Fatalf("AxisSpeed = %f, want -0.5", got)
	}

	still := NewTarget("s", 0, 0, 0.2)
	still.SetAxisSpeed(3)
	if still.AxisSpeed() != 0 || still.Velocity.X != 0 {
		t.Fatal("entity without profile should ignore axis speed writes")
	}
}

func TestRectangleEdges(t *testing.T) {
	r := NewRectangle("r", -2, -2, 1, 0.5)
	if r.Top() != -1.5 {
		t.Errorf("Top = %f, want -1.5", r.Top())
	}
	if r.Right() != -1 {
		t.Errorf("Right = %f, want -1", r.Right())
	}
}
