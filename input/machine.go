package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into intents
// Mouse buttons arrive as state masks; the machine keeps the previous mask to detect edges
type Machine struct {
	keyTable *KeyTable
	buttons  tcell.ButtonMask
}

// NewMachine creates a machine with the given bindings, or the defaults when nil
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// Process parses a terminal event
// A mouse event can carry several intents (move plus button edge), so the result is a slice
func (m *Machine) Process(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return []Intent{{Type: IntentResize}}
	case *tcell.EventKey:
		if it := m.ProcessKey(ev.Key(), ev.Rune()); it.Type != IntentNone {
			return []Intent{it}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return m.ProcessMouse(x, y, ev.Buttons())
	}
	return nil
}

// ProcessKey maps one key press
func (m *Machine) ProcessKey(key tcell.Key, ch rune) Intent {
	if key == tcell.KeyRune {
		return Intent{Type: m.keyTable.Runes[ch]}
	}
	return Intent{Type: m.keyTable.SpecialKeys[key]}
}

// ProcessMouse maps a pointer sample: every sample aims, button edges charge, release and toggle rotation
func (m *Machine) ProcessMouse(x, y int, buttons tcell.ButtonMask) []Intent {
	out := []Intent{{Type: IntentAim, X: x, Y: y}}

	// Wheel notches are discrete events, not held state
	wheel := buttons & (tcell.WheelUp | tcell.WheelDown)
	buttons &^= tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

	pressed := buttons &^ m.buttons
	released := m.buttons &^ buttons
	m.buttons = buttons

	if pressed&tcell.Button1 != 0 {
		out = append(out, Intent{Type: IntentChargeStart, X: x, Y: y})
	}
	if released&tcell.Button1 != 0 {
		out = append(out, Intent{Type: IntentRelease, X: x, Y: y})
	}
	if pressed&tcell.Button2 != 0 {
		out = append(out, Intent{Type: IntentToggleRotation, X: x, Y: y})
	}
	if wheel&tcell.WheelUp != 0 {
		out = append(out, Intent{Type: IntentNudgeUp})
	}
	if wheel&tcell.WheelDown != 0 {
		out = append(out, Intent{Type: IntentNudgeDown})
	}
	return out
}
