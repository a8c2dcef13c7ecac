package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ballista/audio"
	"github.com/lixenwraith/ballista/config"
	"github.com/lixenwraith/ballista/core"
	"github.com/lixenwraith/ballista/engine"
	"github.com/lixenwraith/ballista/input"
	"github.com/lixenwraith/ballista/level"
	"github.com/lixenwraith/ballista/render"
	"github.com/lixenwraith/ballista/system"
	"github.com/lixenwraith/ballista/trace"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/ballista.log")
	traceFlag  = flag.String("trace", "", "Record every frame to a msgpack trace file")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256, mono")
	writeFlag  = flag.String("write-config", "", "Write the effective configuration to a TOML file and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ballista: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(&cfg, visitedFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "ballista: %v\n", err)
		os.Exit(2)
	}
	if *writeFlag != "" {
		if err := config.Save(*writeFlag, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "ballista: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("configuration written to %s\n", *writeFlag)
		return
	}

	if logFile := setupLogging(cfg.Debug.Log); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("ballista starting: color=%s frame=%dms audio=%v trace=%q",
		cfg.Display.ColorMode, cfg.Display.FrameMillis, cfg.Audio.Enabled, cfg.Debug.Trace)

	sess, err := engine.NewSession(level.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ballista: %v\n", err)
		os.Exit(1)
	}
	system.Register(sess)

	applyColorMode(cfg.Display.ColorMode)
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.RegisterScreen(screen)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, cfg.Display.Zoom, cfg.Display.ColorMode == config.ColorMono)
	renderer.ShowMetrics = cfg.Display.ShowMetrics

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
		}
	}
	sound.SetMuted(*muteFlag)

	var rec *trace.Recorder
	if cfg.Debug.Trace != "" {
		rec, err = trace.Create(cfg.Debug.Trace, sess)
		if err != nil {
			log.Printf("trace disabled: %v", err)
			rec = nil
		} else {
			defer func() {
				if err := rec.Close(); err != nil {
					log.Printf("trace close: %v", err)
				}
			}()
		}
	}

	g := &game{
		sess:      sess,
		screen:    screen,
		renderer:  renderer,
		machine:   input.NewMachine(input.NewKeyTable(cfg.Controls)),
		collector: input.NewCollector(renderer.Viewport()),
		sound:     sound,
		recorder:  rec,
		interval:  time.Duration(cfg.Display.FrameMillis) * time.Millisecond,
	}
	g.run()

	log.Printf("session ended: score=%d shots=%d frames=%d", sess.State.Score, sess.State.Shots, sess.State.Frame)
	for _, line := range sess.Metrics.Lines() {
		log.Printf("metric %s", line)
	}
}

// visitedFlags returns the flags set on the command line; unset flags leave config values alone
func visitedFlags() map[string]string {
	set := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = f.Value.String()
	})
	return set
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cfg *config.Config, set map[string]string) error {
	if _, ok := set["debug"]; ok {
		cfg.Debug.Log = *debugFlag
	}
	if v, ok := set["trace"]; ok {
		cfg.Debug.Trace = v
	}
	if v, ok := set["color"]; ok {
		cfg.Display.ColorMode = v
	}
	return cfg.Validate()
}

// applyColorMode steers tcell's color detection through its environment variables
func applyColorMode(mode string) {
	switch mode {
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	case config.Color256, config.ColorMono:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}
