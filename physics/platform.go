package physics

import "github.com/lixenwraith/ballista/component"

// PairOutcome describes what a kinematic pair did this frame
type PairOutcome uint8

const (
	PairMoved PairOutcome = iota
	PairReversed
	PairFrozen
)

// AdvancePair moves a platform and its rider one step along the platform's axis
// A pair whose rider has been consumed stays frozen in place
// Otherwise the shared velocity is negated once the platform leaves [Lower, Upper]
// Both bounds are exclusive on every axis: a platform resting exactly on Upper keeps its direction
// for one more step, so a vertical lift turns one frame later than an inclusive ">= Upper" test would
func AdvancePair(platform, rider *component.Entity, dt float64) PairOutcome {
	if platform.Motion == nil || rider.Motion == nil {
		return PairFrozen
	}
	if !rider.Active {
		platform.SetAxisSpeed(0)
		rider.SetAxisSpeed(0)
		return PairFrozen
	}

	advance(platform, dt)
	advance(rider, dt)

	pos := platform.AxisPosition()
	if pos > platform.Motion.Upper || pos < platform.Motion.Lower {
		platform.SetAxisSpeed(-platform.AxisSpeed())
		rider.SetAxisSpeed(-rider.AxisSpeed())
		return PairReversed
	}
	return PairMoved
}

func advance(e *component.Entity, dt float64) {
	axis := e.Motion.Axis
	axis.Set(&e.Origin, axis.Of(e.Origin)+e.AxisSpeed()*dt)
}
