package engine

import (
	"time"

	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
)

// Phase is the launch controller state
type Phase uint8

const (
	PhaseAiming Phase = iota
	PhaseCharging
	PhaseInFlight
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseCharging:
		return "charging"
	case PhaseInFlight:
		return "in-flight"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// SessionState is the mutable per-session game state owned by the frame driver
// The renderer reads it; only Session.Step writes it
type SessionState struct {
	Frame uint64

	Score   int
	Chances int
	Shots   int // completed launches

	Phase       Phase
	AimAngle    float64 // degrees
	ChargeStart time.Time
	// ChargeSeconds is the live charge duration while charging, and the last released charge otherwise
	ChargeSeconds float64

	// RotationDir is the cosmetic obstacle spin direction, +1 or -1
	RotationDir float64

	// Terminal is set once chances hold the exhaustion sentinel; Step is a no-op afterwards
	Terminal bool

	// PendingHits are targets struck this frame, awarded by the score pass
	PendingHits []component.EntityID
}

func newSessionState(chances int) SessionState {
	return SessionState{
		Chances:     chances,
		Phase:       PhaseAiming,
		AimAngle:    constant.InitialAimDeg,
		RotationDir: 1,
	}
}

// Exhausted reports whether the chances counter holds the termination sentinel
func (s *SessionState) Exhausted() bool {
	return s.Chances == constant.ChancesExhausted
}

// TargetAward returns the points for a target hit at the given remaining chances
// Kept in its literal form 7-(7-chances-1); integer arithmetic makes it chances+1
func TargetAward(chances int) int {
	return constant.ScoreBase - (constant.ScoreBase - chances - 1)
}
