package system

import (
	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/engine"
	"github.com/lixenwraith/ballista/physics"
	"github.com/lixenwraith/ballista/status"
)

// CollisionSystem tests the ball against every collidable entity in creation order
// Every test reads the ball position captured at the start of the pass; responses write the live ball,
// so a strike on one entity changes the velocity seen by the next
type CollisionSystem struct{}

// NewCollisionSystem creates the collision pass
func NewCollisionSystem() engine.System {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constant.PriorityCollision
}

// Update resolves contacts and queues struck targets for scoring
func (s *CollisionSystem) Update(sess *engine.Session, in *engine.Input) {
	ball := sess.World.Ball()
	at := ball.Origin

	for _, e := range sess.World.Entities() {
		if e == ball || !e.Collidable {
			continue
		}

		switch e.Kind {
		case component.KindRectangle:
			if strikes := physics.ResolveRectangle(ball, at, e); strikes != 0 {
				sess.Metrics.Counter(status.MetricPlatformHits).Add(1)
				sess.Emit(engine.EventPlatformHit, e.ID, float64(strikes.Count()))
			}

		case component.KindTarget:
			if physics.HitTarget(at, ball.Radius, e) {
				e.Deactivate(physics.DeactivatedOrigin)
				sess.State.PendingHits = append(sess.State.PendingHits, e.ID)
			}

		case component.KindObstacle:
			if physics.HitObstacle(at, ball.Radius, e) {
				physics.Deflect(ball)
				sess.Metrics.Counter(status.MetricObstacleHits).Add(1)
				sess.Emit(engine.EventObstacleHit, e.ID, 0)
			}
		}
	}
}
