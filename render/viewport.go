package render

import (
	"math"

	"github.com/lixenwraith/ballista/constant"
)

// Viewport maps the square world window [-4, 4-zoom*0.1] onto a grid of terminal cells
// Zoom only moves the right and top edges, as the launcher corner stays anchored
type Viewport struct {
	Width, Height int
	Zoom          int
}

func NewViewport(width, height, zoom int) *Viewport {
	v := &Viewport{Width: width, Height: height}
	v.SetZoom(zoom)
	return v
}

// Resize adopts a new terminal size
func (v *Viewport) Resize(width, height int) {
	v.Width, v.Height = width, height
}

// SetZoom clamps zoom into [ZoomMin, ZoomMax]
func (v *Viewport) SetZoom(zoom int) {
	v.Zoom = max(constant.ZoomMin, min(constant.ZoomMax, zoom))
}

func (v *Viewport) ZoomIn()  { v.SetZoom(v.Zoom + 1) }
func (v *Viewport) ZoomOut() { v.SetZoom(v.Zoom - 1) }

// Bounds returns the visible world range, identical on both axes
func (v *Viewport) Bounds() (lo, hi float64) {
	return constant.WorldMin, constant.WorldMax - float64(v.Zoom)*constant.ZoomUnit
}

// ToCell maps a world point to a cell; ok is false outside the grid
func (v *Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	lo, hi := v.Bounds()
	span := hi - lo
	col = int(math.Floor((x - lo) / span * float64(v.Width)))
	row = int(math.Floor((hi - y) / span * float64(v.Height)))
	ok = col >= 0 && col < v.Width && row >= 0 && row < v.Height
	return col, row, ok
}

// ToWorld maps a cell to the world point at its center
// This is the pointer-to-world transform used for aiming
func (v *Viewport) ToWorld(col, row int) (x, y float64) {
	lo, hi := v.Bounds()
	span := hi - lo
	x = lo + span*(float64(col)+0.5)/float64(v.Width)
	y = hi - span*(float64(row)+0.5)/float64(v.Height)
	return x, y
}

// CellSize returns the world extent of one cell horizontally and vertically
func (v *Viewport) CellSize() (w, h float64) {
	lo, hi := v.Bounds()
	return (hi - lo) / float64(v.Width), (hi - lo) / float64(v.Height)
}
