package main

import (
	"encoding/json"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/milk9111/sugarpop/config"
	"github.com/milk9111/sugarpop/levels"
	"github.com/milk9111/sugarpop/physics"
	"github.com/milk9111/sugarpop/physics/box2d"
	"github.com/milk9111/sugarpop/physics/chipmunk"
	"github.com/milk9111/sugarpop/physics/physicstest"
	"github.com/milk9111/sugarpop/session"
	"github.com/milk9111/sugarpop/sound"
)

type effectRecorder struct {
	played []sound.Effect
}

func (r *effectRecorder) Play(e sound.Effect) { r.played = append(r.played, e) }

func TestEventsPlayEffects(t *testing.T) {
	rec := &effectRecorder{}
	g := &Game{logger: log.New(io.Discard), sound: rec}
	for _, typ := range []session.EventType{
		session.EventGrainSpawned,
		session.EventBucketExploded,
		session.EventLevelComplete,
		session.EventLevelFailed,
		session.EventGameWon,
	} {
		g.handleEvent(session.Event{Type: typ})
	}
	want := []sound.Effect{sound.EffectPop, sound.EffectChime, sound.EffectFanfare}
	if !reflect.DeepEqual(rec.played, want) {
		t.Fatalf("played %v, want %v", rec.played, want)
	}

	g.sound = nil
	g.handleEvent(session.Event{Type: session.EventBucketExploded})
}

func TestNewWorld(t *testing.T) {
	cases := []struct {
		backend string
		check   func(any) bool
		wantErr bool
	}{
		{"", func(w any) bool { _, ok := w.(*chipmunk.World); return ok }, false},
		{"chipmunk", func(w any) bool { _, ok := w.(*chipmunk.World); return ok }, false},
		{"Box2D", func(w any) bool { _, ok := w.(*box2d.World); return ok }, false},
		{"havok", nil, true},
	}
	for _, c := range cases {
		t.Run(c.backend, func(t *testing.T) {
			w, err := newWorld(config.PhysicsConfig{Backend: c.backend, Gravity: -9.8})
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.check(w) {
				t.Fatalf("wrong backend %T", w)
			}
		})
	}
}

func TestClockStopsWhilePaused(t *testing.T) {
	base := time.Unix(100, 0)
	wall := base
	c := newClock(func() time.Time { return wall })

	wall = wall.Add(time.Second)
	if got := c.Now().Sub(base); got != time.Second {
		t.Fatalf("elapsed = %v", got)
	}

	c.Pause()
	wall = wall.Add(10 * time.Second)
	if got := c.Now().Sub(base); got != time.Second {
		t.Fatalf("paused clock moved: %v", got)
	}
	c.Resume()
	c.Resume()
	wall = wall.Add(time.Second)
	if got := c.Now().Sub(base); got != 2*time.Second {
		t.Fatalf("elapsed after resume = %v", got)
	}
}

func TestMarshalStatics(t *testing.T) {
	data, err := marshalStatics([]levels.StaticDef{{X1: 1, Y1: 2, X2: 3, Y2: 4, Color: "#0000ff", LineWidth: 3}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc struct {
		Statics []levels.StaticDef `json:"statics"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Statics) != 1 || doc.Statics[0].X2 != 3 || doc.Statics[0].Color != "#0000ff" {
		t.Fatalf("round trip = %+v", doc.Statics)
	}
}

type oneLevel struct{}

func (oneLevel) Load(index int) (*levels.Definition, error) {
	if index != 1 {
		return nil, levels.ErrNotFound
	}
	return &levels.Definition{SpoutX: 100, SpoutY: 100, GrainGoal: 1}, nil
}

func TestPauseCommitsLineInProgress(t *testing.T) {
	wall := time.Unix(100, 0)
	clk := newClock(func() time.Time { return wall })
	cfg := config.Default()
	g := &Game{logger: log.New(io.Discard), clock: clk}
	g.session = session.New(session.Options{
		World:      physicstest.New(),
		Projection: physics.NewProjection(cfg.Physics.Scale, float64(cfg.Window.Height)),
		Levels:     oneLevel{},
		Config:     cfg,
		Logger:     log.New(io.Discard),
		Now:        clk.Now,
	})
	wall = wall.Add(4 * time.Second)
	if err := g.session.Update(1.0 / 60); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.session.State() != session.StateWaitingToSpawn {
		t.Fatalf("state = %v", g.session.State())
	}

	g.session.PointerDown(200, 200)
	for i := 0; i < 10; i++ {
		g.session.PointerMove(250, 200)
	}
	g.setPaused(true)
	g.setPaused(false)
	g.session.PointerDown(300, 300)

	if n := len(g.session.DrawnLines()); n != 1 {
		t.Fatalf("drawn lines = %d, want 1", n)
	}
	if got := g.session.DrawnLines()[0].Len(); got != 2 {
		t.Fatalf("committed line has %d vertices, want 2", got)
	}
	if g.session.CurrentLine() == nil || !g.session.Drawing() {
		t.Fatalf("expected the new press to start a line")
	}
}
