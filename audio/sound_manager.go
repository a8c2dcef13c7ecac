package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/engine"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// SoundManager plays short effects for session events
// Every method is safe before Initialize and after Cleanup; sounds are dropped silently
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a manager with a master gain exponent (base 2, 0 = unity)
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volume,
		},
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferLength)); err != nil {
		return err
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores output without dropping queued sounds
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.withSpeaker(func() { sm.volume.Silent = muted })
}

// ToggleMute flips the mute state and returns the new one
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	var muted bool
	sm.withSpeaker(func() {
		sm.volume.Silent = !sm.volume.Silent
		muted = sm.volume.Silent
	})
	return muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	var muted bool
	sm.withSpeaker(func() { muted = sm.volume.Silent })
	return muted
}

// withSpeaker runs fn under the speaker lock once the speaker is running; caller holds sm.mu
func (sm *SoundManager) withSpeaker(fn func()) {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayLaunch plays a rising sweep; a harder shot ends higher
func (sm *SoundManager) PlayLaunch(speed float64) {
	top := constant.LaunchToneLow + (constant.LaunchToneHigh-constant.LaunchToneLow)*math.Min(speed/30, 1)
	sm.play(beep.Take(sampleRate.N(constant.LaunchDuration),
		NewSweepGenerator(sampleRate, constant.LaunchToneLow, top, constant.LaunchDuration)))
}

// PlayHit plays the target chime
func (sm *SoundManager) PlayHit() {
	sm.play(tone(constant.HitTone, constant.HitDuration))
}

// PlayBounce plays the low thud for platform and bar strikes
func (sm *SoundManager) PlayBounce() {
	sm.play(tone(constant.BounceTone, constant.BounceDuration))
}

// PlayGameOver plays a short descending phrase
func (sm *SoundManager) PlayGameOver() {
	notes := make([]beep.Streamer, 0, constant.GameOverNotes)
	freq := constant.GameOverTone
	for i := 0; i < constant.GameOverNotes; i++ {
		if s := tone(freq, constant.GameOverNote); s != nil {
			notes = append(notes, s)
		}
		freq *= constant.GameOverDescent
	}
	sm.play(beep.Seq(notes...))
}

// HandleEvent maps a session event to its effect
func (sm *SoundManager) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventLaunched:
		sm.PlayLaunch(ev.Value)
	case engine.EventTargetHit:
		sm.PlayHit()
	case engine.EventObstacleHit, engine.EventPlatformHit:
		sm.PlayBounce()
	case engine.EventSessionOver:
		sm.PlayGameOver()
	}
}

// tone is a faded sine burst; nil when the frequency is out of range for the sample rate
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	n := sampleRate.N(d)
	return &fade{Streamer: beep.Take(n, sine), total: n, gain: 0.25}
}

// fade applies a linear decay envelope over total samples
type fade struct {
	beep.Streamer
	total int
	pos   int
	gain  float64
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := f.gain * (1 - float64(f.pos)/float64(f.total))
		samples[i][0] *= env
		samples[i][1] *= env
		f.pos++
	}
	return n, ok
}

// SweepGenerator glides a sine from one frequency to another over a duration, then holds
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep generator
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(1, sr.N(d)),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.2 * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
