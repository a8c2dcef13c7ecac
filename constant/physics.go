package constant

// Integrator timing
// The simulation advances by a fixed nominal increment per frame, never by measured wall-clock delta
const (
	// NominalDelta is the per-frame time increment in seconds
	NominalDelta = 0.0004
	// NominalFrameRate scales NominalDelta into one integration step
	NominalFrameRate = 60.0
	// Step is the integration step applied to every velocity each frame
	Step = NominalDelta * NominalFrameRate
)

// Gravity and vertical correction
const (
	Gravity = 10.0
	// GravityCorrection is the extra downward term in the vertical displacement: -0.5*GravityCorrection*Step^2
	GravityCorrection = 10.0
)

// World bounds
const (
	// FloorY clamps movable pieces that sink below the playfield
	FloorY = -3.9
	// ExitY and ExitX end a shot once the ball crosses them
	ExitY = -4.0
	ExitX = 4.0
	// WorldMin and WorldMax span the orthographic projection on both axes
	WorldMin = -4.0
	WorldMax = 4.0
)

// Launcher geometry
const (
	AnchorX = -3.75
	AnchorY = -2.8
	// AimPivotX/Y is the launcher pivot the aim angle is measured from, 0.2 below the ball anchor
	AimPivotX = -3.75
	AimPivotY = -3.0
	// InitialAimDeg is the aim angle before any cursor sample arrives
	InitialAimDeg = 45.0
	// AimNudgeDeg is the manual aim adjustment per key press
	AimNudgeDeg = 5.0
	// LaunchSpeedFactor converts charge seconds to launch speed
	LaunchSpeedFactor = 15.0
)

// Collision response
const (
	// EdgeRestitution scales horizontal velocity on a rectangle side strike
	EdgeRestitution = -0.1
	// ObstacleRestitution scales both velocity components on a spinning bar strike
	ObstacleRestitution = -0.5
	// ObstacleSpinDeg is added to every obstacle's rotation each frame
	ObstacleSpinDeg = 5.0
)

// Target deactivation sentinel, outside the playable bounds
const (
	DeactivatedX = 5.0
	DeactivatedY = 5.0
)

// Session budget and scoring
const (
	SessionChances = 7
	// ChancesExhausted marks a session that has resolved its final shot
	ChancesExhausted = -1
	// ScoreBase is the constant in the target award 7-(7-chances-1)
	ScoreBase = 7
)
