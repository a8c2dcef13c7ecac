package level

import "github.com/lixenwraith/ballista/component"

// PieceSpec describes one authored entity in creation order
// Rectangles use Length/Width, circles use Radius
type PieceSpec struct {
	Name   string
	Kind   component.Kind
	X, Y   float64
	Length float64
	Width  float64
	Radius float64
	// Fixed pieces ignore the floor clamp (the ground strip)
	Fixed bool
}

// PairSpec binds a platform and a rider into one oscillating unit
type PairSpec struct {
	Platform string
	Rider    string
	Axis     component.Axis
	Lower    float64
	Upper    float64
	Speed    float64
}

// BallSpec places the single projectile
type BallSpec struct {
	X, Y   float64
	Radius float64
}

// Layout is the fixed level data supplied once at session start
type Layout struct {
	Ball   BallSpec
	Pieces []PieceSpec
	Pairs  []PairSpec
	// Indicators are drawn-only pips, one hidden per launch, never collided with
	Indicators []PieceSpec
}

func rect(name string, x, y, length, width float64) PieceSpec {
	return PieceSpec{Name: name, Kind: component.KindRectangle, X: x, Y: y, Length: length, Width: width}
}

func target(name string, x, y, radius float64) PieceSpec {
	return PieceSpec{Name: name, Kind: component.KindTarget, X: x, Y: y, Radius: radius}
}

func obstacle(name string, x, y float64) PieceSpec {
	return PieceSpec{Name: name, Kind: component.KindObstacle, X: x, Y: y, Radius: component.ObstacleRadius}
}

// Default returns the arcade level: ground strip, static blocks and targets,
// two spinning bars, three oscillating platform pairs and seven chance pips
func Default() Layout {
	ground := rect("ground", -3.5, -4, 7.5, 0.1)
	ground.Fixed = true

	l := Layout{
		Ball: BallSpec{X: -3.75, Y: -2.8, Radius: 0.2},
		Pieces: []PieceSpec{
			ground,
			rect("block-low-left", -2, -2, 1, 0.5),
			rect("block-floor", 0, -3, 1, 0.5),
			target("target-right-low", 3, -2, 0.2),
			target("target-right-high", 3, 1.5, 0.2),
			obstacle("bar-low", -1.5, 0),
			obstacle("bar-high", -1.5, 2.5),
			target("target-center-high", 0.9, 1.5, 0.2),
			rect("block-right", 2, -1, 1, 0.5),
			target("target-edge", 3.8, -0.25, 0.2),
			target("target-between-bars", -1.5, 1.25, 0.2),
			rect("slider-center", -1, 0.6, 1, 0.4),
			target("rider-center", -0.5, 1.2, 0.2),
			rect("slider-right", 1, 0.6, 1, 0.4),
			target("rider-right", 1.5, 1.2, 0.2),
			rect("lift-left", -3.1, 0, 1, 0.4),
			target("rider-left", -2.5, 0.6, 0.2),
		},
		Pairs: []PairSpec{
			{Platform: "slider-center", Rider: "rider-center", Axis: component.AxisX, Lower: -1.55, Upper: -0.1, Speed: 0.5},
			{Platform: "slider-right", Rider: "rider-right", Axis: component.AxisX, Lower: 1, Upper: 2.2, Speed: 0.5},
			{Platform: "lift-left", Rider: "rider-left", Axis: component.AxisY, Lower: 0, Upper: 3, Speed: 0.5},
		},
	}

	for i := 0; i < 7; i++ {
		pip := target("pip", -3.9, 3.8-0.2*float64(i), 0.1)
		pip.Name = pipName(i)
		l.Indicators = append(l.Indicators, pip)
	}
	return l
}

func pipName(i int) string {
	return "pip-" + string(rune('1'+i))
}
