package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 390
	WindowHeight = 720

	SmoothingFactor = 0.75

	// Avatar and heart
	AvatarWidth  = 200
	AvatarHeight = 210
	AvatarY      = 180
	HeartSize    = 240

	// Energy bar
	SegmentWidth  = 18
	SegmentHeight = 10
	SegmentGap    = 4
	EnergyBarY    = 470

	// Name field
	FieldWidth  = 160
	FieldHeight = 28
	FieldY      = 520

	// Button dimensions
	ButtonWidth  = 180
	ButtonHeight = 40
	ButtonY      = 580

	// Picker sheet
	SheetHeight = 240
	IconSize    = 40
	IconGap     = 12

	// Audio
	SampleRate   = 44100
	LevelRing    = 4096
	SqueakLength = 180 * time.Millisecond
)

// DefaultEnvFile is read on startup when present.
const DefaultEnvFile = ".env"

// Config holds the settings that may be overridden from the environment.
type Config struct {
	Avatar            string
	Muted             bool
	SqueakFile        string
	Particles         bool
	ShakeRestartDelay time.Duration
	Debug             bool
}

// NewDefault returns the settings used when nothing is overridden.
func NewDefault() Config {
	return Config{
		Avatar:            "pinkBear",
		Particles:         true,
		ShakeRestartDelay: 400 * time.Millisecond,
	}
}

// Load reads envFile into the process environment, if it exists, and
// applies SQUEEZY_* variables on top of the defaults.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, which behaves like os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := NewDefault()

	if v, ok := lookup("SQUEEZY_AVATAR"); ok && v != "" {
		cfg.Avatar = v
	}
	if v, ok := lookup("SQUEEZY_SQUEAK_FILE"); ok {
		cfg.SqueakFile = v
	}

	var err error
	if cfg.Muted, err = boolVar(lookup, "SQUEEZY_MUTED", cfg.Muted); err != nil {
		return Config{}, err
	}
	if cfg.Particles, err = boolVar(lookup, "SQUEEZY_PARTICLES", cfg.Particles); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = boolVar(lookup, "SQUEEZY_DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("SQUEEZY_SHAKE_RESTART_DELAY"); ok && v != "" {
		d, perr := time.ParseDuration(v)
		if perr != nil || d < 0 {
			return Config{}, fmt.Errorf("SQUEEZY_SHAKE_RESTART_DELAY: invalid duration %q", v)
		}
		cfg.ShakeRestartDelay = d
	}
	return cfg, nil
}

func boolVar(lookup func(string) (string, bool), name string, def bool) (bool, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
