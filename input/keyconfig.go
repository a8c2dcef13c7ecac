package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ballista/config"
)

// KeyTable maps bound runes and special keys to intents
type KeyTable struct {
	Runes       map[rune]IntentType
	SpecialKeys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return NewKeyTable(config.Default().Controls)
}

// NewKeyTable builds the table from validated control bindings
// Arrow zoom, Esc/Ctrl+C quit and the mute key are fixed
func NewKeyTable(c config.ControlsConfig) *KeyTable {
	return &KeyTable{
		Runes: map[rune]IntentType{
			config.Key(c.Charge):    IntentChargeToggle,
			config.Key(c.NudgeUp):   IntentNudgeUp,
			config.Key(c.NudgeDown): IntentNudgeDown,
			config.Key(c.Rotate):    IntentToggleRotation,
			config.Key(c.Quit):      IntentQuit,
			config.MuteKey:          IntentToggleMute,
		},
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyUp:     IntentZoomIn,
			tcell.KeyDown:   IntentZoomOut,
		},
	}
}
