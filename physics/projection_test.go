package physics

import (
	"math"
	"testing"
)

func TestProjectionRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		scale  float64
		height float64
		x, y   float64
	}{
		{"origin", 30, 800, 0, 0},
		{"spout", 30, 800, 512, 40},
		{"bottom_right", 30, 800, 1024, 800},
		{"fractional", 12.5, 600, 333.333, 17.25},
		{"negative", 30, 800, -15, 950},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewProjection(c.scale, c.height)
			x, y := p.ToScreen(p.ToWorld(c.x, c.y))
			if math.Abs(x-c.x) > 1e-9 || math.Abs(y-c.y) > 1e-9 {
				t.Fatalf("round trip (%v,%v) -> (%v,%v)", c.x, c.y, x, y)
			}
		})
	}
}

func TestProjectionFlipsY(t *testing.T) {
	p := NewProjection(30, 800)
	top := p.ToWorld(0, 0)
	bottom := p.ToWorld(0, 800)
	if top.Y <= bottom.Y {
		t.Fatalf("expected screen top to be higher in physics space, got top=%v bottom=%v", top.Y, bottom.Y)
	}
	if bottom.Y != 0 {
		t.Fatalf("expected screen bottom at physics y=0, got %v", bottom.Y)
	}
	if got := p.Length(60); got != 2 {
		t.Fatalf("expected 60px to be 2 units, got %v", got)
	}
}

func TestNewProjectionRejectsZeroScale(t *testing.T) {
	p := NewProjection(0, 100)
	if p.Scale != 1 {
		t.Fatalf("expected fallback scale 1, got %v", p.Scale)
	}
}
