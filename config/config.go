package config

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/ballista/constant"
)

var (
	// ErrUnknownKey is wrapped when the file carries keys no section defines
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalid is wrapped by every validation failure
	ErrInvalid = errors.New("invalid config")
)

// MuteKey is the fixed mute binding; controls may not reuse it
const MuteKey = 'm'

// Color modes accepted by [display] color_mode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
	ColorMono      = "mono"
)

// Config is the TOML file layout
type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Audio    AudioConfig    `toml:"audio"`
	Debug    DebugConfig    `toml:"debug"`
	Controls ControlsConfig `toml:"controls"`
}

type DisplayConfig struct {
	ColorMode   string `toml:"color_mode"`
	FrameMillis int    `toml:"frame_ms"`
	ShowMetrics bool   `toml:"show_metrics"`
	Zoom        int    `toml:"zoom"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	// Volume is a beep gain exponent in base 2; 0 is unity, -1 half amplitude
	Volume float64 `toml:"volume"`
}

type DebugConfig struct {
	Log   bool   `toml:"log"`
	Trace string `toml:"trace"`
}

// ControlsConfig maps actions to single-rune keys; mouse and arrow bindings are fixed
type ControlsConfig struct {
	Charge    string `toml:"charge"`
	NudgeUp   string `toml:"nudge_up"`
	NudgeDown string `toml:"nudge_down"`
	Rotate    string `toml:"rotate"`
	Quit      string `toml:"quit"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Display: DisplayConfig{
			ColorMode:   ColorAuto,
			FrameMillis: 16,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1,
		},
		Controls: ControlsConfig{
			Charge:    " ",
			NudgeUp:   "a",
			NudgeDown: "c",
			Rotate:    "r",
			Quit:      "q",
		},
	}
}

// Load reads path over the defaults; an empty path yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Wrapf(ErrUnknownKey, "config %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.WithMessagef(err, "config %s", path)
	}
	return cfg, nil
}

// Save writes cfg as TOML
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create config")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return errors.Wrap(err, "encode config")
	}
	return nil
}

// Validate checks ranges and key bindings
func (c Config) Validate() error {
	switch c.Display.ColorMode {
	case ColorAuto, ColorTrueColor, Color256, ColorMono:
	default:
		return errors.Wrapf(ErrInvalid, "display.color_mode %q", c.Display.ColorMode)
	}
	if c.Display.FrameMillis < 1 || c.Display.FrameMillis > 1000 {
		return errors.Wrapf(ErrInvalid, "display.frame_ms %d outside [1,1000]", c.Display.FrameMillis)
	}
	if c.Display.Zoom < constant.ZoomMin || c.Display.Zoom > constant.ZoomMax {
		return errors.Wrapf(ErrInvalid, "display.zoom %d outside [%d,%d]", c.Display.Zoom, constant.ZoomMin, constant.ZoomMax)
	}
	if c.Audio.Volume < -10 || c.Audio.Volume > 2 {
		return errors.Wrapf(ErrInvalid, "audio.volume %v outside [-10,2]", c.Audio.Volume)
	}

	seen := map[rune]string{MuteKey: "mute"}
	bindings := []struct {
		name string
		key  string
	}{
		{"charge", c.Controls.Charge},
		{"nudge_up", c.Controls.NudgeUp},
		{"nudge_down", c.Controls.NudgeDown},
		{"rotate", c.Controls.Rotate},
		{"quit", c.Controls.Quit},
	}
	for _, b := range bindings {
		if utf8.RuneCountInString(b.key) != 1 {
			return errors.Wrapf(ErrInvalid, "controls.%s %q must be a single key", b.name, b.key)
		}
		r, _ := utf8.DecodeRuneInString(b.key)
		if prev, dup := seen[r]; dup {
			return errors.Wrapf(ErrInvalid, "controls.%s reuses the %s key %q", b.name, prev, b.key)
		}
		seen[r] = b.name
	}
	return nil
}

// Key returns the bound rune for a validated binding string
func Key(binding string) rune {
	r, _ := utf8.DecodeRuneInString(binding)
	return r
}
