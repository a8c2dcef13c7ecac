package engine

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/level"
	"github.com/lixenwraith/ballista/status"
)

// Session owns all simulation state for one game
type Session struct {
	World   *World
	State   SessionState
	Launch  *LaunchController
	Events  *EventQueue
	Clock   TimeSource
	Metrics *status.Registry

	systems []System
}

// ErrInvalidOption is wrapped by every rejected session option
var ErrInvalidOption = errors.New("invalid session option")

// Option configures a session at construction
type Option func(*Session) error

// WithClock replaces the real time source used for charge timing
func WithClock(c TimeSource) Option {
	return func(s *Session) error {
		if c == nil {
			return errors.Wrap(ErrInvalidOption, "nil time source")
		}
		s.Clock = c
		return nil
	}
}

// WithChances overrides the launch budget
func WithChances(n int) Option {
	return func(s *Session) error {
		if n <= 0 {
			return errors.Wrapf(ErrInvalidOption, "chances %d must be positive", n)
		}
		s.State.Chances = n
		return nil
	}
}

// WithMetrics shares a metrics registry with the driver
func WithMetrics(r *status.Registry) Option {
	return func(s *Session) error {
		if r != nil {
			s.Metrics = r
		}
		return nil
	}
}

// NewSession builds the world from layout; invalid level data is rejected here and never during the frame loop
func NewSession(layout level.Layout, opts ...Option) (*Session, error) {
	arena, err := level.Build(layout)
	if err != nil {
		return nil, err
	}

	s := &Session{
		World:   newWorld(arena),
		State:   newSessionState(constant.SessionChances),
		Events:  NewEventQueue(),
		Clock:   NewTimeProvider(),
		Metrics: status.NewRegistry(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.Launch, err = newLaunchController(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AddSystem registers a per-frame pass
func (s *Session) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
}

// Systems returns registered passes in execution order
func (s *Session) Systems() []System {
	return s.systems
}

// Step advances the simulation by one frame
// Returns false without touching state once the session is terminal
func (s *Session) Step(in Input) bool {
	if s.State.Terminal {
		return false
	}
	s.State.Frame++
	s.State.PendingHits = s.State.PendingHits[:0]

	for _, sys := range s.systems {
		sys.Update(s, &in)
	}
	return true
}

// Emit queues an event stamped with the current frame, score and chances
func (s *Session) Emit(t EventType, id component.EntityID, value float64) {
	s.Events.Push(GameEvent{
		Type:    t,
		Frame:   s.State.Frame,
		Entity:  id,
		Score:   s.State.Score,
		Chances: s.State.Chances,
		Value:   value,
	})
}
