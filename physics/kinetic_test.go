package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/vmath"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestIntegrateFixedStep(t *testing.T) {
	ball := component.NewBall("ball", 0, 0, 0.2)
	ball.Velocity = vmath.V2F(15, 0)

	Integrate(ball, constant.Step, constant.Gravity, constant.GravityCorrection)

	// dt = 0.024: vy = -0.24, x = 0.36, y = -0.24*0.024 - 5*0.024^2
	if !near(ball.Velocity.Y, -0.24) {
		t.Errorf("vy = %.12f, want -0.24", ball.Velocity.Y)
	}
	if !near(ball.Origin.X, 0.36) {
		t.Errorf("x = %.12f, want 0.36", ball.Origin.X)
	}
	if !near(ball.Origin.Y, -0.00864) {
		t.Errorf("y = %.12f, want -0.00864", ball.Origin.Y)
	}
	if ball.Velocity.X != 15 {
		t.Errorf("vx changed to %f", ball.Velocity.X)
	}
}

func TestStepIsNominal(t *testing.T) {
	if !near(constant.Step, 0.024) {
		t.Fatalf("Step = %f, want 0.0004*60", constant.Step)
	}
}

func TestSpinOnlyWhenMoving(t *testing.T) {
	r := component.NewRectangle("r", 0, 0, 1, 1)
	r.AngularVelocity = 100

	Spin(r, constant.Step)
	if r.RotationAngle != 0 {
		t.Fatalf("resting rectangle rotated to %f", r.RotationAngle)
	}

	r.Moving = true
	Spin(r, constant.Step)
	if !near(r.RotationAngle, 2.4) {
		t.Fatalf("rotation = %f, want 2.4", r.RotationAngle)
	}
}

func TestClampFloor(t *testing.T) {
	e := component.NewTarget("t", 0, -3.95, 0.2)
	e.Moving = true
	if !ClampFloor(e, constant.FloorY) {
		t.Fatal("entity below floor not clamped")
	}
	if e.Origin.Y != constant.FloorY || e.Moving {
		t.Fatalf("after clamp: y=%f moving=%v", e.Origin.Y, e.Moving)
	}
	if ClampFloor(e, constant.FloorY) {
		t.Fatal("entity on the floor clamped again")
	}
}

func TestEscaped(t *testing.T) {
	tests := []struct {
		pos  vmath.Vec3F
		want bool
	}{
		{vmath.V2F(0, 0), false},
		{vmath.V2F(0, -4.01), true},
		{vmath.V2F(4.01, 0), true},
		{vmath.V2F(-4.01, 0), true},
		{vmath.V2F(0, 9), false},
		{vmath.V2F(4, -4), false},
	}
	for _, tt := range tests {
		if got := Escaped(tt.pos); got != tt.want {
			t.Errorf("Escaped(%+v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestIntegrateKeepsPlane(t *testing.T) {
	ball := component.NewBall("ball", -3.75, -2.8, 0.2)
	ball.Velocity = vmath.Polar(12, 30)

	for i := 0; i < 50; i++ {
		vx, vy := ball.Velocity.X, ball.Velocity.Y-constant.Gravity*constant.Step
		x := ball.Origin.X + vx*constant.Step
		y := ball.Origin.Y + vy*constant.Step - 0.5*constant.GravityCorrection*constant.Step*constant.Step

		Integrate(ball, constant.Step, constant.Gravity, constant.GravityCorrection)
		if !near(ball.Origin.X, x) || !near(ball.Origin.Y, y) {
			t.Fatalf("step %d: pos %+v, want (%f,%f)", i, ball.Origin, x, y)
		}
		if ball.Origin.Z != 0 || ball.Velocity.Z != 0 {
			t.Fatalf("step %d: left the plane: pos %+v vel %+v", i, ball.Origin, ball.Velocity)
		}
	}
}
