// Command squeezy-tui is the terminal frontend of Squeezy Zoo.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/faiface/beep"
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/squeezy-zoo/internal/config"
	"github.com/iburimskiy/squeezy-zoo/internal/logger"
	"github.com/iburimskiy/squeezy-zoo/internal/sound"
	"github.com/iburimskiy/squeezy-zoo/internal/zoo"
)

const logFile = "squeezy-tui.log"

func main() {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// the screen owns stdout; debug output goes to a file
	var out io.Writer = io.Discard
	if cfg.Debug {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", logFile, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	log := logger.NewWithWriters(out, out, cfg.Debug)

	player := sound.NewPlayer(beep.SampleRate(config.SampleRate), config.SqueakLength, config.LevelRing)
	if err := player.Init(); err != nil {
		log.Warn("%v", err)
	}
	if cfg.SqueakFile != "" {
		if err := player.LoadSample(cfg.SqueakFile); err != nil {
			log.Warn("squeak sample: %v", err)
		}
	}
	player.SetMuted(cfg.Muted)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	opts := []zoo.Option{
		zoo.WithParticles(cfg.Particles),
		zoo.WithShakeRestartDelay(cfg.ShakeRestartDelay),
	}
	if a, ok := zoo.ParseAvatar(cfg.Avatar); ok {
		opts = append(opts, zoo.WithSelection(a))
	}

	newApp(screen, zoo.SystemClock{}, player, log, opts...).run()
}
