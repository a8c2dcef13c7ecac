package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/engine"
)

// TerminalRenderer draws a session onto a tcell screen
type TerminalRenderer struct {
	screen  tcell.Screen
	view    *Viewport
	palette Palette

	// ShowMetrics overlays the metric registry in the top-left corner
	ShowMetrics bool
}

// NewTerminalRenderer creates a renderer sized to the screen
// The playfield uses every row but the last, which holds the status line
func NewTerminalRenderer(screen tcell.Screen, zoom int, mono bool) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:  screen,
		view:    NewViewport(w, max(1, h-1), zoom),
		palette: NewPalette(mono),
	}
}

// Viewport exposes the world/cell mapping for pointer input
func (r *TerminalRenderer) Viewport() *Viewport {
	return r.view
}

// Resize follows a terminal resize event
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.view.Resize(w, max(1, h-1))
}

// RenderFrame draws the whole frame and shows it
func (r *TerminalRenderer) RenderFrame(s *engine.Session) {
	r.screen.SetStyle(r.palette.Background)
	r.screen.Clear()

	for _, e := range s.World.Entities() {
		if !e.Visible {
			continue
		}
		switch e.Kind {
		case component.KindRectangle:
			r.drawRectangle(e)
		case component.KindObstacle:
			r.drawObstacle(e)
		case component.KindTarget:
			r.drawTarget(e)
		}
	}

	r.drawLauncher(&s.State)
	r.drawScore(s.State.Score)

	if ball := s.World.Ball(); ball.Visible {
		r.plot(ball.Origin.X, ball.Origin.Y, constant.GlyphBall, r.palette.Ball)
	}

	if r.ShowMetrics && s.Metrics != nil {
		for i, line := range s.Metrics.Lines() {
			r.text(0, i, line, r.palette.Status)
		}
	}

	r.drawStatus(&s.State)
	if s.State.Terminal {
		r.drawGameOver(s.State.Score)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) plot(x, y float64, ch rune, style tcell.Style) {
	if col, row, ok := r.view.ToCell(x, y); ok {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// stroke samples a world segment at half-cell spacing
func (r *TerminalRenderer) stroke(x0, y0, x1, y1 float64, ch rune, style tcell.Style) {
	cw, chh := r.view.CellSize()
	step := math.Min(cw, chh) / 2
	length := math.Hypot(x1-x0, y1-y0)
	n := int(length/step) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		r.plot(x0+(x1-x0)*t, y0+(y1-y0)*t, ch, style)
	}
}

func (r *TerminalRenderer) drawRectangle(e *component.Entity) {
	c0, r0, _ := r.view.ToCell(e.Origin.X, e.Top())
	c1, r1, _ := r.view.ToCell(e.Right(), e.Origin.Y)
	// Right and lower edges are exclusive unless that would leave the rectangle empty
	if c1 > c0 {
		c1--
	}
	style := r.palette.Rectangle
	if e.Translateable {
		style = r.palette.Platform
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if col >= 0 && col < r.view.Width && row >= 0 && row < r.view.Height {
				r.screen.SetContent(col, row, constant.GlyphRectangle, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawTarget(e *component.Entity) {
	if !e.Collidable {
		r.plot(e.Origin.X, e.Origin.Y, constant.GlyphPip, r.palette.Pip)
		return
	}
	if e.Active {
		r.plot(e.Origin.X, e.Origin.Y, constant.GlyphTarget, r.palette.Target)
	}
}

func (r *TerminalRenderer) drawObstacle(e *component.Entity) {
	half := constant.ObstacleDrawLength / 2
	rad := e.RotationAngle * math.Pi / 180
	dx, dy := half*math.Cos(rad), half*math.Sin(rad)
	r.stroke(e.Origin.X-dx, e.Origin.Y-dy, e.Origin.X+dx, e.Origin.Y+dy, ObstacleGlyph(e.RotationAngle), r.palette.Obstacle)
}

// ObstacleGlyph picks the line character closest to a bar's orientation
func ObstacleGlyph(deg float64) rune {
	a := math.Mod(deg, 180)
	if a < 0 {
		a += 180
	}
	switch {
	case a < 22.5 || a >= 157.5:
		return constant.GlyphObstacle
	case a < 67.5:
		return constant.GlyphObstacleD1
	case a < 112.5:
		return constant.GlyphObstacleV
	default:
		return constant.GlyphObstacleD2
	}
}

func (r *TerminalRenderer) drawLauncher(st *engine.SessionState) {
	px, py := constant.AimPivotX, constant.AimPivotY
	if st.Phase == engine.PhaseAiming || st.Phase == engine.PhaseCharging {
		rad := st.AimAngle * math.Pi / 180
		ex := px + constant.AimBarLength*math.Cos(rad)
		ey := py + constant.AimBarLength*math.Sin(rad)
		r.stroke(px, py, ex, ey, constant.GlyphAim, r.palette.Aim)
	}
	r.plot(px, py, constant.GlyphLauncher, r.palette.Aim)
}

func (r *TerminalRenderer) drawScore(score int) {
	for _, d := range ScoreLayout(score) {
		for _, seg := range DigitSegments(d.Digit) {
			ch := constant.GlyphSegmentV
			if seg.Horizontal() {
				ch = constant.GlyphSegmentH
			}
			r.stroke(d.X+seg.X0, d.Y+seg.Y0, d.X+seg.X1, d.Y+seg.Y1, ch, r.palette.Score)
		}
	}
}

// text writes s from (x, y), advancing by display width, and returns the next column
func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

const meterCells = 10

func (r *TerminalRenderer) drawStatus(st *engine.SessionState) {
	w, h := r.screen.Size()
	if h < 1 {
		return
	}
	y := h - 1
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.palette.Status)
	}

	line := fmt.Sprintf(" score %d  chances %d  aim %+.0f°  %s  charge ", st.Score, max(st.Chances, 0), st.AimAngle, st.Phase)
	line = runewidth.Truncate(line, max(0, w-meterCells-2), "…")
	x := r.text(0, y, line, r.palette.Status)

	progress := st.ChargeSeconds / constant.ChargeMeterFull
	filled := int(math.Round(math.Min(progress, 1) * meterCells))
	if st.Phase != engine.PhaseCharging {
		filled = 0
	}
	x = r.text(x, y, "[", r.palette.Status)
	for i := 0; i < meterCells && x < w; i++ {
		style := r.palette.Status
		if i < filled {
			style = r.palette.ChargeStyle(float64(i+1) / meterCells)
		}
		r.screen.SetContent(x, y, ' ', nil, style)
		x++
	}
	r.text(x, y, "]", r.palette.Status)
}

func (r *TerminalRenderer) drawGameOver(score int) {
	w, h := r.screen.Size()
	msg := fmt.Sprintf("  GAME OVER  score %d  ", score)
	mw := runewidth.StringWidth(msg)
	x := max(0, (w-mw)/2)
	y := max(0, h/2-1)

	blank := runewidth.FillRight("", mw)
	r.text(x, y-1, blank, r.palette.Overlay)
	r.text(x, y, msg, r.palette.Overlay)
	r.text(x, y+1, blank, r.palette.Overlay)
}
