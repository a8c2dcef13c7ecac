package input

import (
	"github.com/lixenwraith/ballista/engine"
	"github.com/lixenwraith/ballista/render"
)

// Launcher answers whether the launch controller would take a trigger now
type Launcher interface {
	Can(t engine.Trigger) bool
}

// Collector folds intents into the control signals for the next frame
type Collector struct {
	view *render.Viewport
	in   engine.Input
}

func NewCollector(view *render.Viewport) *Collector {
	return &Collector{view: view}
}

// Apply folds one intent; the launcher resolves the keyboard charge toggle
// Returns true when the intent asks to quit
func (c *Collector) Apply(it Intent, lc Launcher) bool {
	switch it.Type {
	case IntentQuit:
		c.in.Quit = true
		return true
	case IntentAim:
		c.in.CursorX, c.in.CursorY = c.view.ToWorld(it.X, it.Y)
		c.in.HasCursor = true
	case IntentChargeStart:
		c.in.ChargeStart = true
	case IntentRelease:
		c.in.Release = true
	case IntentChargeToggle:
		if lc.Can(engine.TriggerRelease) || c.in.ChargeStart {
			c.in.Release = true
		} else {
			c.in.ChargeStart = true
		}
	case IntentNudgeUp:
		c.in.NudgeUp = true
	case IntentNudgeDown:
		c.in.NudgeDown = true
	case IntentToggleRotation:
		c.in.ToggleRotation = !c.in.ToggleRotation
	case IntentZoomIn:
		c.view.ZoomIn()
	case IntentZoomOut:
		c.view.ZoomOut()
	}
	return false
}

// Frame returns the signals gathered since the last frame and clears the edge-triggered ones
func (c *Collector) Frame() engine.Input {
	in := c.in
	c.in.ClearSignals()
	return in
}
