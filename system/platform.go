package system

import (
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/engine"
	"github.com/lixenwraith/ballista/physics"
	"github.com/lixenwraith/ballista/status"
)

// PlatformSystem moves oscillating platform/rider pairs
type PlatformSystem struct{}

// NewPlatformSystem creates the pair motion pass
func NewPlatformSystem() engine.System {
	return &PlatformSystem{}
}

// Priority returns the system's priority
func (s *PlatformSystem) Priority() int {
	return constant.PriorityPlatform
}

// Update advances every pair; frozen pairs are counted, not moved
func (s *PlatformSystem) Update(sess *engine.Session, in *engine.Input) {
	frozen := 0
	for _, pr := range sess.World.Pairs() {
		platform := sess.World.Get(pr.Platform)
		rider := sess.World.Get(pr.Rider)
		if platform == nil || rider == nil {
			continue
		}

		switch physics.AdvancePair(platform, rider, constant.Step) {
		case physics.PairFrozen:
			frozen++
		case physics.PairReversed:
			sess.Metrics.Counter(status.MetricPairReversals).Add(1)
		}
	}
	sess.Metrics.Gauge(status.MetricFrozenPairs).Set(float64(frozen))
}
