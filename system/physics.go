package system

import (
	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/engine"
	"github.com/lixenwraith/ballista/physics"
)

// PhysicsSystem integrates the ball in flight, spins knocked and rotating pieces,
// applies the floor clamp and resolves the shot once the ball escapes
type PhysicsSystem struct{}

// NewPhysicsSystem creates the integrator pass
func NewPhysicsSystem() engine.System {
	return &PhysicsSystem{}
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return constant.PriorityPhysics
}

// Update advances every entity by one fixed step
func (s *PhysicsSystem) Update(sess *engine.Session, in *engine.Input) {
	ball := sess.World.Ball()
	inFlight := sess.Launch.Phase() == engine.PhaseInFlight

	if inFlight {
		physics.Integrate(ball, constant.Step, constant.Gravity, constant.GravityCorrection)
	}

	spin := constant.ObstacleSpinDeg * sess.State.RotationDir
	for _, e := range sess.World.Entities() {
		if e.Kind == component.KindBall {
			continue
		}
		if e.Kind == component.KindObstacle {
			physics.Rotate(e, spin)
		}
		if !e.Movable {
			continue
		}
		physics.Spin(e, constant.Step)
		physics.ClampFloor(e, constant.FloorY)
	}

	if inFlight && physics.Escaped(ball.Origin) {
		sess.Launch.Exit()
	}
}
