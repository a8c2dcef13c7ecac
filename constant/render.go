package constant

// Glyphs for entity kinds on the terminal grid
const (
	GlyphBall       = '●'
	GlyphTarget     = '◉'
	GlyphPip        = '•'
	GlyphRectangle  = '█'
	GlyphObstacle   = '━'
	GlyphObstacleV  = '┃'
	GlyphObstacleD1 = '╱'
	GlyphObstacleD2 = '╲'
	GlyphAim        = '·'
	GlyphSegmentH   = '▀'
	GlyphSegmentV   = '▌'
	GlyphLauncher   = '▲'
)

// Score display layout in world units
const (
	ScoreOriginX   = 3.3
	ScoreOriginY   = 3.8
	ScoreDigitStep = 0.8
	SegmentLength  = 0.5
)

// Zoom limits, each step shrinks the visible right/top edge by ZoomUnit
const (
	ZoomMin  = -4
	ZoomMax  = 10
	ZoomUnit = 0.1
)

// ObstacleDrawLength is the visual bar length; collision uses the circular footprint radius
const ObstacleDrawLength = 1.0

// AimBarLength is the launcher bar length drawn from the pivot
const AimBarLength = 1.0

// ChargeMeterFull is the charge duration in seconds that fills the meter
const ChargeMeterFull = 1.5
