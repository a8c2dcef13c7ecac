package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // bound quit key, Esc, Ctrl+C
	IntentResize     // terminal resize event
	IntentToggleMute // m

	// Aiming and launching
	IntentAim          // pointer moved; X, Y carry the cell
	IntentChargeStart  // left button pressed
	IntentRelease      // left button released
	IntentChargeToggle // bound charge key: starts a charge, or releases one in progress
	IntentNudgeUp
	IntentNudgeDown

	// Cosmetic
	IntentToggleRotation // right button or bound rotate key
	IntentZoomIn         // Up arrow
	IntentZoomOut        // Down arrow
)

// Intent is a parsed terminal event
type Intent struct {
	Type IntentType
	X, Y int // pointer cell for IntentAim and button intents
}
