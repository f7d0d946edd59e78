// Package session runs the level flow: loading, spawning sugar, counting
// buckets and moving between levels.
package session

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/sugarpop/common"
	"github.com/milk9111/sugarpop/config"
	"github.com/milk9111/sugarpop/entity"
	"github.com/milk9111/sugarpop/levels"
	"github.com/milk9111/sugarpop/overlay"
	"github.com/milk9111/sugarpop/physics"
)

// ErrGameOver is returned by Update once the exit delay after the final
// level has passed.
var ErrGameOver = errors.New("session: game over")

// LevelSource loads level definitions by 1-based index.
type LevelSource interface {
	Load(index int) (*levels.Definition, error)
}

type Options struct {
	World      physics.World
	Projection physics.Projection
	Levels     LevelSource
	Config     config.Config
	Logger     *log.Logger
	Overlay    *overlay.MessageOverlay
	// Now overrides the wall clock used for deadlines.
	Now func() time.Time
}

// Session owns every entity in the current level.
type Session struct {
	world  physics.World
	proj   physics.Projection
	source LevelSource
	cfg    config.Config
	logger *log.Logger
	msg    *overlay.MessageOverlay
	now    func() time.Time

	state    State
	index    int
	def      *levels.Definition
	script   *spoutScript
	complete bool
	spawned  int
	ticks    int

	grains     []*entity.SugarGrain
	buckets    []*entity.Bucket
	statics    []*entity.StaticSegment
	drawnLines []*entity.DynamicLine

	current   *entity.DynamicLine
	held      bool
	heldTicks int

	timers Timers
	events EventQueue
}

// New creates a session in the intro state. The first level loads once the
// intro delay has passed.
func New(opts Options) *Session {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config
	msg := opts.Overlay
	if msg == nil {
		msg = overlay.NewMessageOverlay(overlay.Options{
			Scale:  cfg.Message.Scale,
			Color:  cfg.Message.Color.NRGBA,
			Width:  float64(cfg.Window.Width),
			Height: float64(cfg.Window.Height),
			Now:    now,
		})
	}
	start := cfg.Levels.Start
	if start < 1 {
		start = 1
	}

	s := &Session{
		world:  opts.World,
		proj:   opts.Projection,
		source: opts.Levels,
		cfg:    cfg,
		logger: logger,
		msg:    msg,
		now:    now,
		state:  StateIntro,
		index:  start,
	}
	t := s.now()
	s.timers.Arm(timerIntro, t, config.Seconds(cfg.Timing.IntroDelay))
	if cfg.Message.Intro != "" {
		s.msg.Show(cfg.Message.Intro, config.Seconds(cfg.Message.IntroDuration))
	}
	return s
}

// Update advances the session by one tick of dt seconds.
func (s *Session) Update(dt float64) error {
	now := s.now()
	s.ticks++
	s.msg.Update()

	switch s.state {
	case StateIntro:
		if s.timers.Fired(timerIntro, now) {
			s.loadLevel(s.index)
		}
	case StateWaitingToSpawn:
		if s.timers.Fired(timerStartFlow, now) {
			s.startFlow(now)
		}
	case StateLevelComplete:
		if s.timers.Fired(timerTransition, now) {
			s.index++
			s.loadLevel(s.index)
		}
	case StateGameWon:
		if s.timers.Fired(timerExit, now) {
			return ErrGameOver
		}
	}

	if s.state.levelActive() && !s.complete && s.timers.Fired(timerTimeout, now) {
		s.timeout()
	}

	if s.world != nil {
		if step := common.ClampStep(dt, s.cfg.MaxTimeStep()); step > 0 {
			s.world.Step(step)
		}
	}

	every := s.cfg.Timing.EvaluateEvery
	if every <= 0 {
		every = 20
	}
	if s.ticks%every == 0 {
		if s.state == StateSpawning {
			s.spawn()
		}
		if s.state.levelActive() {
			s.evaluate()
		}
	}
	return nil
}

func (s *Session) startFlow(now time.Time) {
	s.state = StateSpawning
	if s.def != nil && s.def.TimeLimit > 0 {
		s.timers.Arm(timerTimeout, now, config.Seconds(s.def.TimeLimit))
	}
	if s.spawned >= s.goal() {
		s.state = StateEvaluating
	}
}

func (s *Session) timeout() {
	s.logger.Info("level timed out", "level", s.index)
	s.events.Push(Event{Type: EventLevelTimedOut, Level: s.index})
	s.loadLevel(s.index)
	if s.state.levelActive() && s.cfg.Message.OutOfTime != "" {
		s.msg.Show(s.cfg.Message.OutOfTime, config.Seconds(s.cfg.Message.OutOfTimeDuration))
	}
}

func (s *Session) goal() int {
	if s.def == nil {
		return 0
	}
	return s.def.GrainGoal
}

// loadLevel tears the current level down and builds level index. A level
// that cannot be loaded ends the game.
func (s *Session) loadLevel(index int) {
	s.state = StateLoadingLevel
	s.teardown()

	def, err := s.load(index)
	if err != nil {
		if !errors.Is(err, levels.ErrNotFound) {
			s.logger.Warn("level load failed", "level", index, "err", err)
			s.events.Push(Event{Type: EventLevelFailed, Level: index, Err: err})
		} else {
			s.logger.Info("no more levels", "level", index)
		}
		s.win()
		return
	}

	s.def = def
	s.complete = false
	s.spawned = 0

	for _, st := range def.Statics {
		style := entity.SegmentStyle{Width: st.LineWidth}
		if c, err := common.ParseColor(st.Color); err == nil {
			style.Color = c
		}
		seg := entity.NewStaticSegment(s.world, s.proj, st.X1, st.Y1, st.X2, st.Y2, s.cfg.Line.Thickness,
			physics.Material{Friction: st.Friction, Elasticity: st.Restitution}, style)
		s.statics = append(s.statics, seg)
	}
	for _, b := range def.Buckets {
		s.buckets = append(s.buckets, entity.NewBucket(s.world, s.proj, b.X, b.Y, b.Width, b.Height, b.NeededSugar, s.bucketOptions()))
	}

	if def.SpoutScript != "" {
		script, err := compileSpoutScript(def.SpoutScript)
		if err != nil {
			s.logger.Warn("spout script disabled", "level", index, "err", err)
		} else {
			s.script = script
		}
	}

	now := s.now()
	s.timers.Arm(timerStartFlow, now, config.Seconds(s.cfg.Timing.StartFlowDelay))
	if notice := s.cfg.LevelStartMessage(index); notice != "" {
		s.msg.Show(notice, config.Seconds(s.cfg.Message.LevelStartDuration))
	}
	s.state = StateWaitingToSpawn
	s.logger.Info("level loaded", "level", index, "name", def.DisplayName(index), "grains", def.GrainGoal, "buckets", len(def.Buckets))
	s.events.Push(Event{Type: EventLevelLoaded, Level: index})
}

func (s *Session) load(index int) (*levels.Definition, error) {
	if s.source == nil {
		return nil, levels.ErrNotFound
	}
	return s.source.Load(index)
}

func (s *Session) win() {
	s.def = nil
	s.state = StateGameWon
	s.timers.Arm(timerExit, s.now(), config.Seconds(s.cfg.Timing.ExitDelay))
	if s.cfg.Message.GameWon != "" {
		s.msg.Show(s.cfg.Message.GameWon, config.Seconds(s.cfg.Message.GameWonDuration))
	}
	s.events.Push(Event{Type: EventGameWon, Level: s.index})
}

// teardown releases every entity of the current level.
func (s *Session) teardown() {
	entity.DeleteAll(s.grains)
	entity.DeleteAll(s.drawnLines)
	if s.current != nil {
		s.current.Delete()
	}
	entity.DeleteAll(s.buckets)
	entity.DeleteAll(s.statics)

	s.grains = nil
	s.drawnLines = nil
	s.current = nil
	s.held = false
	s.buckets = nil
	s.statics = nil
	s.script = nil
	s.def = nil

	s.timers.Disarm(timerStartFlow)
	s.timers.Disarm(timerTimeout)
	s.timers.Disarm(timerTransition)
}

// spawn creates one grain at the spout while the goal is unmet.
func (s *Session) spawn() {
	if s.def == nil || s.spawned >= s.def.GrainGoal {
		s.state = StateEvaluating
		return
	}

	x, y := s.def.SpoutX, s.def.SpoutY
	if s.script != nil {
		dx, dy, err := s.script.Offset(s.spawned, s.ticks)
		if err != nil {
			s.logger.Debug("spout script failed", "level", s.index, "grain", s.spawned, "err", err)
		} else {
			x += dx
			y += dy
		}
	}

	g := entity.NewSugarGrain(s.world, s.proj, x, y, s.spawned, s.grainOptions())
	s.grains = append(s.grains, g)
	s.events.Push(Event{Type: EventGrainSpawned, Level: s.index, Index: s.spawned})
	s.spawned++

	if s.spawned >= s.def.GrainGoal {
		s.state = StateEvaluating
	}
}

// evaluate recounts every live bucket and explodes the full ones.
func (s *Session) evaluate() {
	if s.def == nil {
		return
	}
	deferred := s.cfg.Evaluation.DeferredExplosion
	for i, b := range s.buckets {
		if b.Exploded() {
			continue
		}
		if deferred && b.Full() {
			s.explode(i, b)
			continue
		}
		b.ResetCount()
		for _, g := range s.grains {
			b.Collect(g)
		}
		if !deferred && b.Full() {
			s.explode(i, b)
		}
	}

	if s.complete {
		return
	}
	for _, b := range s.buckets {
		if !b.Exploded() {
			return
		}
	}
	s.completeLevel()
}

func (s *Session) explode(i int, b *entity.Bucket) {
	b.Explode(s.grains)
	s.logger.Debug("bucket exploded", "level", s.index, "bucket", i, "count", b.Count())
	s.events.Push(Event{Type: EventBucketExploded, Level: s.index, Index: i})
}

func (s *Session) completeLevel() {
	s.complete = true
	s.state = StateLevelComplete
	now := s.now()
	s.timers.Disarm(timerTimeout)
	s.timers.Arm(timerTransition, now, config.Seconds(s.cfg.Timing.LevelTransitionDelay))
	if s.cfg.Message.LevelComplete != "" {
		s.msg.Show(s.cfg.Message.LevelComplete, config.Seconds(s.cfg.Message.LevelCompleteDuration))
	}
	s.logger.Info("level complete", "level", s.index, "grains", s.spawned)
	s.events.Push(Event{Type: EventLevelComplete, Level: s.index})
}

// RestartLevel reloads the current level from scratch.
func (s *Session) RestartLevel() bool {
	if s.state == StateIntro || s.state == StateGameWon {
		return false
	}
	s.logger.Info("restarting level", "level", s.index)
	s.loadLevel(s.index)
	return true
}

// ReloadLevel restarts the current level when file names it.
func (s *Session) ReloadLevel(file string) bool {
	index, ok := levels.IndexFromFileName(file)
	if !ok || index != s.index || s.def == nil {
		return false
	}
	return s.RestartLevel()
}

func (s *Session) grainOptions() entity.GrainOptions {
	g := s.cfg.Grain
	return entity.GrainOptions{
		Size:     g.Size,
		Material: physics.Material{Density: g.Density, Friction: g.Friction, Elasticity: g.Elasticity},
		Color:    g.Color.NRGBA,
	}
}

func (s *Session) bucketOptions() entity.BucketOptions {
	b := s.cfg.Bucket
	return entity.BucketOptions{
		WallThickness:    b.WallThickness,
		Friction:         b.Friction,
		Color:            b.Color.NRGBA,
		LineWidth:        b.LineWidth,
		ExplosionRadius:  b.ExplosionRadius,
		ExplosionImpulse: b.ExplosionImpulse,
		ShowCount:        true,
	}
}

func (s *Session) lineOptions() entity.LineOptions {
	l := s.cfg.Line
	return entity.LineOptions{
		Thickness: l.Thickness,
		Material:  physics.Material{Friction: l.Friction, Elasticity: l.Elasticity},
		Width:     l.Width,
		Color:     l.DrawingColor.NRGBA,
	}
}
