package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/engine/fsm"
	"github.com/lixenwraith/ballista/vmath"
)

// Trigger drives the launch state machine
type Trigger uint8

const (
	TriggerChargeStart Trigger = iota
	TriggerRelease
	TriggerExit
	TriggerRearm
)

// LaunchController converts aim and charge time into the ball's launch velocity
// Aiming -> Charging -> InFlight -> Resolved -> Aiming
type LaunchController struct {
	s       *Session
	machine *fsm.Machine[Phase, Trigger]
}

func newLaunchController(s *Session) (*LaunchController, error) {
	lc := &LaunchController{s: s}
	m := fsm.NewMachine[Phase, Trigger](PhaseAiming)

	m.AddTransition(PhaseAiming, fsm.Transition[Phase, Trigger]{
		Trigger: TriggerChargeStart,
		Target:  PhaseCharging,
		Guard:   lc.canCharge,
		Action:  lc.beginCharge,
	})
	m.AddTransition(PhaseCharging, fsm.Transition[Phase, Trigger]{
		Trigger: TriggerRelease,
		Target:  PhaseInFlight,
		Action:  lc.release,
	})
	m.AddTransition(PhaseInFlight, fsm.Transition[Phase, Trigger]{
		Trigger: TriggerExit,
		Target:  PhaseResolved,
		Action:  lc.resolve,
	})
	m.AddTransition(PhaseResolved, fsm.Transition[Phase, Trigger]{
		Trigger: TriggerRearm,
		Target:  PhaseAiming,
	})

	for _, p := range []Phase{PhaseAiming, PhaseCharging, PhaseInFlight, PhaseResolved} {
		m.OnEnter(p, func(Phase) { s.State.Phase = m.Current() })
	}
	// Leaving flight always parks the ball, before the shot is resolved
	m.OnExit(PhaseInFlight, func(Phase) { lc.rest() })

	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "launch controller")
	}
	lc.machine = m
	return lc, nil
}

// Phase returns the controller state
func (lc *LaunchController) Phase() Phase {
	return lc.machine.Current()
}

// Can reports whether trigger would be accepted now
func (lc *LaunchController) Can(t Trigger) bool {
	return lc.machine.Can(t)
}

// Transitions returns the number of phase changes since the session started
func (lc *LaunchController) Transitions() uint64 {
	return lc.machine.Fired()
}

// Track recomputes the aim angle from the cursor while aiming or charging,
// and refreshes the live charge duration
func (lc *LaunchController) Track(in *Input) {
	st := &lc.s.State
	phase := lc.Phase()
	if phase != PhaseAiming && phase != PhaseCharging {
		return
	}
	if in.HasCursor {
		st.AimAngle = vmath.HeadingDeg(constant.AimPivotX, constant.AimPivotY, in.CursorX, in.CursorY)
	}
	if phase == PhaseCharging {
		st.ChargeSeconds = lc.elapsed()
	}
}

// Nudge adjusts the aim angle by delta degrees while aiming
// Cursor tracking overwrites the result on the next frame that has a cursor sample
func (lc *LaunchController) Nudge(delta float64) bool {
	if lc.Phase() != PhaseAiming {
		return false
	}
	lc.s.State.AimAngle += delta
	return true
}

// ChargeStart begins charging; ignored outside Aiming or with no chances left
func (lc *LaunchController) ChargeStart() bool {
	return lc.machine.Fire(TriggerChargeStart)
}

// Release launches the ball; ignored unless charging
func (lc *LaunchController) Release() bool {
	return lc.machine.Fire(TriggerRelease)
}

// Exit resolves the shot once the ball has left the playfield and rearms the launcher
func (lc *LaunchController) Exit() bool {
	if !lc.machine.Fire(TriggerExit) {
		return false
	}
	return lc.machine.Fire(TriggerRearm)
}

func (lc *LaunchController) canCharge() bool {
	st := &lc.s.State
	return !st.Terminal && st.Chances > 0
}

func (lc *LaunchController) beginCharge() {
	st := &lc.s.State
	st.ChargeStart = lc.s.Clock.Now()
	st.ChargeSeconds = 0
	lc.rest()
}

func (lc *LaunchController) release() {
	st := &lc.s.State
	charge := lc.elapsed()
	st.ChargeSeconds = charge

	speed := constant.LaunchSpeedFactor * charge
	ball := lc.s.World.Ball()
	ball.Velocity = vmath.Polar(speed, st.AimAngle)

	st.Chances--
	st.Shots++
	lc.s.World.HideIndicator()
	lc.s.Emit(EventLaunched, ball.ID, speed)
}

func (lc *LaunchController) resolve() {
	st := &lc.s.State
	if st.Chances <= 0 {
		st.Chances = constant.ChancesExhausted
	}
	lc.s.Emit(EventShotResolved, lc.s.World.Ball().ID, 0)
}

// rest puts the ball back on the launch anchor, motionless
func (lc *LaunchController) rest() {
	ball := lc.s.World.Ball()
	ball.Origin = vmath.V2F(constant.AnchorX, constant.AnchorY)
	ball.Velocity = vmath.Vec3F{}
}

func (lc *LaunchController) elapsed() float64 {
	d := lc.s.Clock.Now().Sub(lc.s.State.ChargeStart).Seconds()
	if d < 0 {
		return 0
	}
	return d
}
