package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/sugarpop/config"
	"github.com/milk9111/sugarpop/input"
	"github.com/milk9111/sugarpop/levels"
	"github.com/milk9111/sugarpop/physics"
	"github.com/milk9111/sugarpop/session"
	"github.com/milk9111/sugarpop/sound"
)

// debugDrawer is implemented by physics backends that can outline their shapes.
type debugDrawer interface {
	DebugDraw(screen *ebiten.Image, proj physics.Projection)
}

type effectPlayer interface {
	Play(e sound.Effect)
}

var eventEffects = map[session.EventType]sound.Effect{
	session.EventBucketExploded: sound.EffectPop,
	session.EventLevelComplete:  sound.EffectChime,
	session.EventLevelTimedOut:  sound.EffectBuzz,
	session.EventGameWon:        sound.EffectFanfare,
}

type GameOptions struct {
	Config    config.Config
	World     physics.World
	Levels    session.LevelSource
	Watcher   *levels.Watcher
	Sound     effectPlayer
	Logger    *log.Logger
	Debug     bool
	Clipboard bool
}

type Game struct {
	cfg     config.Config
	world   physics.World
	proj    physics.Projection
	session *session.Session
	input   *input.Input
	watcher *levels.Watcher
	sound   effectPlayer
	logger  *log.Logger
	ui      *ebitenui.UI
	clock   *clock
	last    time.Time

	paused      bool
	debug       bool
	quit        bool
	clipboardOK bool
}

func NewGame(opts GameOptions) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config
	proj := physics.NewProjection(cfg.Physics.Scale, float64(cfg.Window.Height))
	clk := newClock(time.Now)

	g := &Game{
		cfg:         cfg,
		world:       opts.World,
		proj:        proj,
		input:       input.NewInput(),
		watcher:     opts.Watcher,
		sound:       opts.Sound,
		logger:      logger,
		clock:       clk,
		last:        clk.Now(),
		debug:       opts.Debug,
		clipboardOK: opts.Clipboard,
	}
	g.session = session.New(session.Options{
		World:      opts.World,
		Projection: proj,
		Levels:     opts.Levels,
		Config:     cfg,
		Logger:     logger,
		Now:        clk.Now,
	})
	g.ui = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.input.Update()
	in := g.input.State

	if in.Quit || g.quit {
		return ebiten.Termination
	}
	if in.Pause {
		g.setPaused(!g.paused)
	}
	if in.ToggleDebug {
		g.debug = !g.debug
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	now := g.clock.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	if in.Restart {
		g.session.RestartLevel()
	}
	if in.Export && g.debug {
		g.exportDrawnLines()
	}
	for _, name := range g.watcher.Poll() {
		if g.session.ReloadLevel(name) {
			g.logger.Info("level file changed", "file", name)
		}
	}

	in.Dispatch(g.session)
	if err := g.session.Update(dt); err != nil {
		if errors.Is(err, session.ErrGameOver) {
			g.logger.Info("game over")
			return ebiten.Termination
		}
		return err
	}

	for _, evt := range g.session.Events().Drain() {
		g.handleEvent(evt)
	}
	return nil
}

func (g *Game) handleEvent(evt session.Event) {
	if e, ok := eventEffects[evt.Type]; ok && g.sound != nil {
		g.sound.Play(e)
	}
	switch evt.Type {
	case session.EventGrainSpawned:
	case session.EventLevelFailed:
		g.logger.Error("level failed", "level", evt.Level, "err", evt.Err)
	default:
		g.logger.Debug("event", "type", evt.Type, "level", evt.Level, "index", evt.Index)
	}
}

func (g *Game) setPaused(p bool) {
	if g.paused == p {
		return
	}
	g.paused = p
	if p {
		// the release of a drag in progress happens behind the menu
		g.session.PointerUp()
		g.clock.Pause()
	} else {
		g.clock.Resume()
		g.last = g.clock.Now()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(screen)

	hud := g.session.HUD()
	hud.Paused = g.paused
	hud.Draw(screen)

	if g.debug {
		if d, ok := g.world.(debugDrawer); ok {
			d.DebugDraw(screen, g.proj)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  state: %s  backend: %s", ebiten.ActualFPS(), g.session.State(), g.cfg.Physics.Backend), 10, g.cfg.Window.Height-20)
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
