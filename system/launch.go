package system

import (
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/engine"
	"github.com/lixenwraith/ballista/status"
)

// LaunchSystem feeds the frame's control signals to the launch controller
// Cursor tracking runs first so a nudge in the same frame lands on top of it
type LaunchSystem struct{}

// NewLaunchSystem creates the control pass
func NewLaunchSystem() engine.System {
	return &LaunchSystem{}
}

// Priority returns the system's priority
func (s *LaunchSystem) Priority() int {
	return constant.PriorityLaunch
}

// Update applies aim, nudge, rotation toggle, charge and release in that order
func (s *LaunchSystem) Update(sess *engine.Session, in *engine.Input) {
	lc := sess.Launch
	lc.Track(in)

	if in.NudgeUp {
		lc.Nudge(constant.AimNudgeDeg)
	}
	if in.NudgeDown {
		lc.Nudge(-constant.AimNudgeDeg)
	}
	if in.ToggleRotation {
		sess.State.RotationDir = -sess.State.RotationDir
	}

	if in.ChargeStart {
		lc.ChargeStart()
	}
	if in.Release && lc.Release() {
		sess.Metrics.Counter(status.MetricShots).Add(1)
		sess.Metrics.Gauge(status.MetricLaunchSpeed).Max(constant.LaunchSpeedFactor * sess.State.ChargeSeconds)
	}
	sess.Metrics.Gauge(status.MetricTransitions).Set(float64(lc.Transitions()))
}
