package engine

// Input is the set of control signals sampled for one frame
// Signals are edge-triggered; the driver clears them after each Step
type Input struct {
	// Cursor is the pointer position already mapped into world coordinates
	CursorX, CursorY float64
	// HasCursor is false until a pointer sample arrives; aim tracking is skipped without it
	HasCursor bool

	ChargeStart    bool
	Release        bool
	NudgeUp        bool
	NudgeDown      bool
	ToggleRotation bool
	Quit           bool
}

// ClearSignals resets the edge-triggered fields and keeps the cursor sample
func (in *Input) ClearSignals() {
	cx, cy, has := in.CursorX, in.CursorY, in.HasCursor
	*in = Input{CursorX: cx, CursorY: cy, HasCursor: has}
}
