package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the styles for every drawn element
// The zero-color mono palette leaves terminal defaults in place
type Palette struct {
	Background tcell.Style
	Ball       tcell.Style
	Target     tcell.Style
	Pip        tcell.Style
	Rectangle  tcell.Style
	Platform   tcell.Style
	Obstacle   tcell.Style
	Aim        tcell.Style
	Score      tcell.Style
	Status     tcell.Style
	Overlay    tcell.Style

	mono bool
}

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbBall       = tcell.NewRGBColor(255, 255, 255)
	RgbTarget     = tcell.NewRGBColor(255, 80, 80)
	RgbPip        = tcell.NewRGBColor(255, 165, 0)
	RgbRectangle  = tcell.NewRGBColor(100, 150, 255)
	RgbPlatform   = tcell.NewRGBColor(0, 200, 200)
	RgbObstacle   = tcell.NewRGBColor(255, 255, 0)
	RgbAim        = tcell.NewRGBColor(180, 180, 180)
	RgbScore      = tcell.NewRGBColor(50, 255, 50)
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250)
	RgbOverlayBg  = tcell.NewRGBColor(128, 0, 128)
)

// Charge meter gradient endpoints, blended in HCL
var (
	chargeCold, _ = colorful.Hex("#2a9d8f")
	chargeHot, _  = colorful.Hex("#e63946")
)

// NewPalette returns the color palette, or the monochrome one
func NewPalette(mono bool) Palette {
	if mono {
		def := tcell.StyleDefault
		return Palette{
			Background: def, Ball: def.Bold(true), Target: def, Pip: def,
			Rectangle: def, Platform: def, Obstacle: def, Aim: def.Dim(true),
			Score: def.Bold(true), Status: def.Reverse(true), Overlay: def.Reverse(true).Bold(true),
			mono: true,
		}
	}
	bg := tcell.StyleDefault.Background(RgbBackground)
	return Palette{
		Background: bg,
		Ball:       bg.Foreground(RgbBall).Bold(true),
		Target:     bg.Foreground(RgbTarget),
		Pip:        bg.Foreground(RgbPip),
		Rectangle:  bg.Foreground(RgbRectangle),
		Platform:   bg.Foreground(RgbPlatform),
		Obstacle:   bg.Foreground(RgbObstacle),
		Aim:        bg.Foreground(RgbAim),
		Score:      bg.Foreground(RgbScore),
		Status:     tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg),
		Overlay:    tcell.StyleDefault.Foreground(RgbBall).Background(RgbOverlayBg).Bold(true),
	}
}

// ChargeColor returns the meter color at progress in [0,1], clamped
func ChargeColor(progress float64) tcell.Color {
	progress = max(0, min(1, progress))
	r, g, b := chargeCold.BlendHcl(chargeHot, progress).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ChargeStyle is the status style for one filled meter cell
func (p Palette) ChargeStyle(progress float64) tcell.Style {
	if p.mono {
		return p.Status
	}
	return p.Status.Background(ChargeColor(progress))
}
