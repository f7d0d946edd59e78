package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sugarpop/common"
	"github.com/milk9111/sugarpop/config"
	"github.com/milk9111/sugarpop/levels"
	"github.com/milk9111/sugarpop/sound"
	"golang.design/x/clipboard"
)

func main() {
	configPath := flag.String("config", "", "settings YAML (defaults to the embedded settings)")
	levelsDir := flag.String("levels", "", "directory searched for level<N>.json before the embedded levels")
	startLevel := flag.Int("level", 0, "level number to start at")
	backend := flag.String("backend", "", "physics backend: chipmunk or box2d")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "restart the current level when its file changes")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sugarpop",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load settings", "err", err)
	}
	if *levelsDir != "" {
		cfg.Levels.Dir = *levelsDir
	}
	if *startLevel > 0 {
		cfg.Levels.Start = *startLevel
	}
	if *backend != "" {
		cfg.Physics.Backend = *backend
	}

	world, err := newWorld(cfg.Physics)
	if err != nil {
		logger.Fatal("physics", "err", err)
	}

	var watcher *levels.Watcher
	if *watch {
		watcher, err = levels.NewWatcher(cfg.Levels.Dir)
		if err != nil {
			logger.Warn("level watcher disabled", "dir", cfg.Levels.Dir, "err", err)
		} else {
			defer watcher.Close()
		}
	}

	var effects effectPlayer
	if cfg.Sound.Enabled && !*mute {
		p, err := sound.NewPlayer(cfg.Sound.Dir, cfg.Sound.Volume)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			effects = p
		}
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		logger.Debug("clipboard unavailable", "err", err)
		clipboardOK = false
	}

	game := NewGame(GameOptions{
		Config:    cfg,
		World:     world,
		Levels:    levels.NewLoader(cfg.Levels.Dir),
		Watcher:   watcher,
		Sound:     effects,
		Logger:    logger,
		Debug:     *debug,
		Clipboard: clipboardOK,
	})

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(common.TPS)

	logger.Info("starting", "backend", cfg.Physics.Backend, "level", cfg.Levels.Start)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
