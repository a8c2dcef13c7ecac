package constant

import "time"

// Audio engine
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	// AudioDefaultVolume is the master gain exponent (base 2), 0 = unity
	AudioDefaultVolume = -1.0
)

// Effect tones
const (
	LaunchToneLow   = 220.0
	LaunchToneHigh  = 660.0
	LaunchDuration  = 120 * time.Millisecond
	HitTone         = 880.0
	HitDuration     = 90 * time.Millisecond
	BounceTone      = 140.0
	BounceDuration  = 60 * time.Millisecond
	GameOverTone    = 330.0
	GameOverNote    = 180 * time.Millisecond
	GameOverNotes   = 3
	GameOverDescent = 0.8
)
