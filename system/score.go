package system

import (
	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/engine"
	"github.com/lixenwraith/ballista/status"
)

// ScoreSystem awards the frame's target hits and detects session termination
type ScoreSystem struct{}

// NewScoreSystem creates the scoring pass
func NewScoreSystem() engine.System {
	return &ScoreSystem{}
}

// Priority returns the system's priority (highest value = runs last)
func (s *ScoreSystem) Priority() int {
	return constant.PriorityScore
}

// Update awards pending hits at the current chances, then checks the exhaustion sentinel
func (s *ScoreSystem) Update(sess *engine.Session, in *engine.Input) {
	st := &sess.State

	for _, id := range st.PendingHits {
		points := engine.TargetAward(st.Chances)
		st.Score += points
		sess.Metrics.Counter(status.MetricTargetHits).Add(1)
		sess.Emit(engine.EventTargetHit, id, float64(points))
	}
	st.PendingHits = st.PendingHits[:0]

	sess.Metrics.Counter(status.MetricFrames).Add(1)

	if !st.Terminal && st.Exhausted() {
		st.Terminal = true
		sess.Emit(engine.EventSessionOver, component.NoEntity, float64(st.Score))
	}
}
