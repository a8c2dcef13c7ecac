package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ballista/audio"
	"github.com/lixenwraith/ballista/constant"
	"github.com/lixenwraith/ballista/core"
	"github.com/lixenwraith/ballista/engine"
	"github.com/lixenwraith/ballista/input"
	"github.com/lixenwraith/ballista/render"
	"github.com/lixenwraith/ballista/trace"
)

// game is the frame-loop driver: terminal events in, one Step per tick, events out to audio, trace and log
type game struct {
	sess      *engine.Session
	screen    tcell.Screen
	renderer  *render.TerminalRenderer
	machine   *input.Machine
	collector *input.Collector
	sound     *audio.SoundManager
	recorder  *trace.Recorder
	interval  time.Duration
}

// run blocks until quit, or until the game-over screen has lingered
func (g *game) run() {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.renderer.RenderFrame(g.sess)

	var overAt time.Time
	for {
		select {
		case ev := <-events:
			if g.handle(ev) {
				return
			}

		case <-ticker.C:
			g.frame()
			if g.sess.State.Terminal {
				if overAt.IsZero() {
					overAt = time.Now()
				} else if time.Since(overAt) >= constant.GameOverLinger {
					return
				}
			}
		}
	}
}

// handle folds one terminal event into the pending input; returns true on quit
func (g *game) handle(ev tcell.Event) bool {
	for _, it := range g.machine.Process(ev) {
		switch it.Type {
		case input.IntentResize:
			g.renderer.Resize()
			g.screen.Sync()
		case input.IntentToggleMute:
			log.Printf("sound muted: %v", g.sound.ToggleMute())
		}
		if g.collector.Apply(it, g.sess.Launch) {
			return true
		}
	}
	return false
}

// frame steps the simulation once and fans its events out
func (g *game) frame() {
	if !g.sess.Step(g.collector.Frame()) {
		g.renderer.RenderFrame(g.sess)
		return
	}

	evs := g.sess.Events.Consume()
	for _, ev := range evs {
		log.Printf("frame %d: %s entity=%d score=%d chances=%d value=%.3f",
			ev.Frame, ev.Type, ev.Entity, ev.Score, ev.Chances, ev.Value)
		g.sound.HandleEvent(ev)
	}
	if g.recorder != nil {
		if err := g.recorder.Record(g.sess, evs); err != nil {
			log.Printf("trace stopped: %v", err)
			g.recorder = nil
		}
	}

	g.renderer.RenderFrame(g.sess)
}
