package system

import "github.com/lixenwraith/ballista/engine"

// Register installs the frame passes on a session: launch, physics, platform, collision, score
func Register(sess *engine.Session) {
	sess.AddSystem(NewLaunchSystem())
	sess.AddSystem(NewPhysicsSystem())
	sess.AddSystem(NewPlatformSystem())
	sess.AddSystem(NewCollisionSystem())
	sess.AddSystem(NewScoreSystem())
}
