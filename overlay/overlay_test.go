package overlay

import (
	"reflect"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestOverlay() (*MessageOverlay, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	return NewMessageOverlay(Options{Scale: 3, Now: clock.Now}), clock
}

func TestMessageOverlayExpires(t *testing.T) {
	m, clock := newTestOverlay()
	if _, ok := m.Current(); ok {
		t.Fatalf("new overlay should be empty")
	}

	m.Show("Level 1", 3*time.Second)
	clock.Advance(2 * time.Second)
	m.Update()
	if msg, ok := m.Current(); !ok || msg != "Level 1" {
		t.Fatalf("current = %q %v", msg, ok)
	}

	clock.Advance(time.Second)
	m.Update()
	if _, ok := m.Current(); ok {
		t.Fatalf("message should expire at its deadline")
	}
}

func TestMessageOverlayReplaces(t *testing.T) {
	m, clock := newTestOverlay()
	m.Show("first", time.Second)
	clock.Advance(900 * time.Millisecond)
	m.Show("second", time.Second)
	clock.Advance(500 * time.Millisecond)
	m.Update()
	if msg, ok := m.Current(); !ok || msg != "second" {
		t.Fatalf("current = %q %v, want second", msg, ok)
	}
}

func TestMessageOverlayFade(t *testing.T) {
	m, clock := newTestOverlay()
	m.Show("bye", time.Second)
	if a := m.alpha(); a != 1 {
		t.Fatalf("alpha = %v, want 1", a)
	}
	clock.Advance(time.Second - fadeOut/2)
	if a := m.alpha(); a <= 0.4 || a >= 0.6 {
		t.Fatalf("alpha = %v, want about 0.5", a)
	}
	m.Draw(nil)
}

func TestHUDLines(t *testing.T) {
	cases := []struct {
		name string
		hud  HUD
		want []string
	}{
		{"no_level", HUD{}, nil},
		{"plain", HUD{Level: 2, Spawned: 3, Goal: 10}, []string{"Level 2", "Sugar 3/10"}},
		{"named", HUD{Level: 1, Name: "First Pour", Goal: 5}, []string{"Level 1: First Pour", "Sugar 0/5"}},
		{"limited", HUD{Level: 3, Goal: 1, Limited: true, Remaining: 61500 * time.Millisecond}, []string{"Level 3", "Sugar 0/1", "Time 1:02"}},
		{"expired", HUD{Level: 3, Goal: 1, Limited: true, Remaining: -time.Second, Paused: true}, []string{"Level 3", "Sugar 0/1", "Time 0:00", "Paused"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.hud.Lines(); !reflect.DeepEqual(got, c.want) {
				t.Fatalf("lines = %q, want %q", got, c.want)
			}
		})
	}
}
