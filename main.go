package main

import (
	"errors"
	"os"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/squeezy-zoo/internal/config"
	"github.com/iburimskiy/squeezy-zoo/internal/game"
	"github.com/iburimskiy/squeezy-zoo/internal/logger"
	"github.com/iburimskiy/squeezy-zoo/internal/sound"
	"github.com/iburimskiy/squeezy-zoo/internal/zoo"
)

func main() {
	cfg, err := config.Load(config.DefaultEnvFile)
	log := logger.New(cfg.Debug)
	if err != nil {
		log.Error("config: %v", err)
		os.Exit(1)
	}

	player := sound.NewPlayer(beep.SampleRate(config.SampleRate), config.SqueakLength, config.LevelRing)
	if err := player.Init(); err != nil {
		// no audio device: keep squeezing in silence
		log.Warn("%v", err)
	}
	if cfg.SqueakFile != "" {
		if err := player.LoadSample(cfg.SqueakFile); err != nil {
			log.Warn("squeak sample: %v", err)
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Squeezy Zoo")

	g := game.NewGame(cfg, log, zoo.SystemClock{}, player, game.ZenityDialogs{})
	log.Info("squeezy zoo started")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("%v", err)
		os.Exit(1)
	}
}
