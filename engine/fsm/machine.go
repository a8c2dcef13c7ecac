package fsm

import "github.com/pkg/errors"

// Machine is a flat finite state machine over a tagged state enum S driven by trigger enum E
// Transitions are evaluated in registration order; the first whose guard passes fires
type Machine[S comparable, E comparable] struct {
	current S

	transitions map[S][]Transition[S, E]
	onEnter     map[S][]func(from S)
	onExit      map[S][]func(to S)

	// Transition counter, useful for tests and diagnostics
	fired uint64
}

// Transition links a source state to Target when Trigger is fired
type Transition[S comparable, E comparable] struct {
	Trigger E
	Target  S
	Guard   func() bool // nil = always
	Action  func()      // runs between exit and enter hooks
}

// NewMachine creates a machine resting in initial
func NewMachine[S comparable, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		current:     initial,
		transitions: make(map[S][]Transition[S, E]),
		onEnter:     make(map[S][]func(from S)),
		onExit:      make(map[S][]func(to S)),
	}
}

// AddTransition registers t on source state from
func (m *Machine[S, E]) AddTransition(from S, t Transition[S, E]) {
	m.transitions[from] = append(m.transitions[from], t)
}

// OnEnter registers a hook run after entering state
func (m *Machine[S, E]) OnEnter(state S, fn func(from S)) {
	m.onEnter[state] = append(m.onEnter[state], fn)
}

// OnExit registers a hook run before leaving state
func (m *Machine[S, E]) OnExit(state S, fn func(to S)) {
	m.onExit[state] = append(m.onExit[state], fn)
}

// Current returns the active state
func (m *Machine[S, E]) Current() S {
	return m.current
}

// Fired returns the number of transitions taken since creation
func (m *Machine[S, E]) Fired() uint64 {
	return m.fired
}

// Fire delivers trigger to the active state
// Returns true if a transition was taken; unmatched triggers are ignored
func (m *Machine[S, E]) Fire(trigger E) bool {
	for _, t := range m.transitions[m.current] {
		if t.Trigger != trigger {
			continue
		}
		if t.Guard != nil && !t.Guard() {
			continue
		}
		m.transition(t)
		return true
	}
	return false
}

// Can reports whether trigger would fire from the active state
func (m *Machine[S, E]) Can(trigger E) bool {
	for _, t := range m.transitions[m.current] {
		if t.Trigger == trigger && (t.Guard == nil || t.Guard()) {
			return true
		}
	}
	return false
}

func (m *Machine[S, E]) transition(t Transition[S, E]) {
	from := m.current
	for _, fn := range m.onExit[from] {
		fn(t.Target)
	}
	if t.Action != nil {
		t.Action()
	}
	m.current = t.Target
	m.fired++
	for _, fn := range m.onEnter[t.Target] {
		fn(from)
	}
}

// Validate checks that every transition target has been declared as a source or is in known
func (m *Machine[S, E]) Validate(known ...S) error {
	declared := make(map[S]bool, len(m.transitions)+len(known))
	for s := range m.transitions {
		declared[s] = true
	}
	for _, s := range known {
		declared[s] = true
	}
	for from, ts := range m.transitions {
		for _, t := range ts {
			if !declared[t.Target] {
				return errors.Errorf("transition %v -> %v: target has no outgoing transitions and is not terminal", from, t.Target)
			}
		}
	}
	return nil
}
