package constant

import "time"

// Game loop timing
const (
	// FrameUpdateInterval is the wall-clock pacing of the frame loop (~60 FPS)
	// Simulation speed is independent of it, see Step
	FrameUpdateInterval = 16 * time.Millisecond

	// GameOverLinger keeps the final frame on screen before the loop exits
	GameOverLinger = 3 * time.Second

	// EventQueueSize is the initial capacity of the per-frame event buffer
	EventQueueSize = 64
)

// System execution priorities (lower runs first)
// Order is part of the simulation contract: input, integrate, platforms, collide, score
const (
	PriorityLaunch    = 10
	PriorityPhysics   = 20
	PriorityPlatform  = 30
	PriorityCollision = 40
	PriorityScore     = 50
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "ballista.log"
	MaxLogSize  = 10 * 1024 * 1024
)
