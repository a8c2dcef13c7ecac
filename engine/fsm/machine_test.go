package fsm

import "testing"

type light int

const (
	red light = iota
	green
	yellow
	off
)

type signal int

const (
	tick signal = iota
	power
)

func newLight() *Machine[light, signal] {
	m := NewMachine[light, signal](red)
	m.AddTransition(red, Transition[light, signal]{Trigger: tick, Target: green})
	m.AddTransition(green, Transition[light, signal]{Trigger: tick, Target: yellow})
	m.AddTransition(yellow, Transition[light, signal]{Trigger: tick, Target: red})
	return m
}

func TestFireFollowsTable(t *testing.T) {
	m := newLight()
	want := []light{green, yellow, red, green}
	for i, w := range want {
		if !m.Fire(tick) {
			t.Fatalf("step %d: tick not handled", i)
		}
		if m.Current() != w {
			t.Fatalf("step %d: state %d, want %d", i, m.Current(), w)
		}
	}
	if m.Fired() != uint64(len(want)) {
		t.Fatalf("Fired = %d, want %d", m.Fired(), len(want))
	}
}

func TestUnmatchedTriggerIgnored(t *testing.T) {
	m := newLight()
	if m.Fire(power) {
		t.Fatal("power has no transition from red but was handled")
	}
	if m.Current() != red {
		t.Fatalf("state changed to %d", m.Current())
	}
}

func TestGuardOrderAndHooks(t *testing.T) {
	allowed := false
	var log []string

	build := func() *Machine[light, signal] {
		m := NewMachine[light, signal](red)
		m.AddTransition(red, Transition[light, signal]{
			Trigger: power, Target: off,
			Guard:  func() bool { return allowed },
			Action: func() { log = append(log, "action-off") },
		})
		m.AddTransition(red, Transition[light, signal]{Trigger: power, Target: yellow})
		m.OnExit(red, func(to light) { log = append(log, "exit-red") })
		m.OnEnter(off, func(from light) { log = append(log, "enter-off") })
		return m
	}
	m := build()

	if !m.Can(power) {
		t.Fatal("Can(power) = false, want fallback transition")
	}

	m.Fire(power)
	if m.Current() != yellow {
		t.Fatalf("guarded transition should fall through to yellow, got %d", m.Current())
	}

	m = build()
	log = nil
	allowed = true
	m.Fire(power)
	if m.Current() != off {
		t.Fatalf("state %d, want off", m.Current())
	}
	want := []string{"exit-red", "action-off", "enter-off"}
	if len(log) != len(want) {
		t.Fatalf("hook log %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("hook log %v, want %v", log, want)
		}
	}
}

func TestValidate(t *testing.T) {
	m := newLight()
	if err := m.Validate(); err != nil {
		t.Fatalf("cycle should validate: %v", err)
	}
	m.AddTransition(red, Transition[light, signal]{Trigger: power, Target: off})
	if err := m.Validate(); err == nil {
		t.Fatal("dangling target accepted")
	}
	if err := m.Validate(off); err != nil {
		t.Fatalf("declared terminal rejected: %v", err)
	}
}
