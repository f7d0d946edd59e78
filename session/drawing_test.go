package session

import (
	"testing"

	"github.com/milk9111/sugarpop/levels"
)

func TestDragSamplingIsThrottled(t *testing.T) {
	cases := []struct {
		name string
		held int
		want int
	}{
		{"press_only", 0, 1},
		{"under_interval", 9, 1},
		{"one_interval", 10, 2},
		{"between_intervals", 25, 3},
		{"long_drag", 100, 11},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t, fakeLevels{1: bucketLevel(0, 5)}, nil)
			h.load()
			h.s.PointerDown(100, 100)
			for i := 0; i < c.held; i++ {
				h.s.PointerMove(100+float64(i), 100+float64(i))
			}
			line := h.s.CurrentLine()
			if line.Len() != c.want || line.Len() > c.held/10+1 {
				t.Fatalf("held %d ticks: vertices = %d, want %d", c.held, line.Len(), c.want)
			}
			if got := len(line.Colliders()); got != c.want-1 {
				t.Fatalf("colliders = %d, want %d", got, c.want-1)
			}
		})
	}
}

func TestDragStopsAtBoundary(t *testing.T) {
	h := newHarness(t, fakeLevels{1: bucketLevel(0, 5)}, nil)
	h.load()
	h.s.PointerDown(100, 100)
	for i := 0; i < 10; i++ {
		h.s.PointerMove(50, 50)
	}
	h.s.PointerMove(0, 50)
	if h.s.Drawing() {
		t.Fatalf("touching the edge should cancel capture")
	}
	for i := 0; i < 30; i++ {
		h.s.PointerMove(60, 60)
	}
	if got := h.s.CurrentLine().Len(); got != 2 {
		t.Fatalf("vertices = %d, want 2", got)
	}
	h.s.PointerUp()
	if len(h.s.DrawnLines()) != 1 || h.s.CurrentLine() != nil {
		t.Fatalf("line should be committed")
	}
}

func TestNewPressDiscardsUncommittedLine(t *testing.T) {
	h := newHarness(t, fakeLevels{1: bucketLevel(0, 5)}, nil)
	h.load()
	base := h.world.Colliders()

	h.s.PointerDown(100, 100)
	for i := 0; i < 20; i++ {
		h.s.PointerMove(150, 150)
	}
	if h.world.Colliders() != base+2 {
		t.Fatalf("colliders = %d, want %d", h.world.Colliders(), base+2)
	}
	h.s.PointerDown(300, 300)
	if h.world.Colliders() != base {
		t.Fatalf("abandoned line kept %d colliders", h.world.Colliders()-base)
	}
	if len(h.s.DrawnLines()) != 0 {
		t.Fatalf("abandoned line was committed")
	}
}

func TestDrawingNeedsActiveLevel(t *testing.T) {
	h := newHarness(t, fakeLevels{1: bucketLevel(0, 5)}, nil)
	h.s.PointerDown(100, 100)
	h.s.PointerMove(100, 100)
	h.s.PointerUp()
	if h.s.CurrentLine() != nil || len(h.s.DrawnLines()) != 0 {
		t.Fatalf("drawing accepted during intro")
	}
}

func TestExportDrawnLines(t *testing.T) {
	h := newHarness(t, fakeLevels{1: bucketLevel(0, 5)}, nil)
	h.load()
	h.s.PointerDown(100, 100)
	for i := 1; i <= 20; i++ {
		h.s.PointerMove(100+float64(i)*10, 100)
	}
	h.s.PointerUp()

	got := h.s.ExportDrawnLines()
	want := []levels.StaticDef{
		{X1: 100, Y1: 100, X2: 200, Y2: 100, Color: "#0000ff", LineWidth: 3, Friction: 0.3, Restitution: 0.5},
		{X1: 200, Y1: 100, X2: 300, Y2: 100, Color: "#0000ff", LineWidth: 3, Friction: 0.3, Restitution: 0.5},
	}
	if len(got) != len(want) {
		t.Fatalf("exported %d statics, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("static %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if h.s.DrawnLines()[0].Color() != h.s.cfg.Line.CommittedColor.NRGBA {
		t.Fatalf("committed line kept drawing colour")
	}
}
