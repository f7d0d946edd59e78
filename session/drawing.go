package session

import (
	"github.com/milk9111/sugarpop/common"
	"github.com/milk9111/sugarpop/entity"
	"github.com/milk9111/sugarpop/levels"
)

// PointerDown starts a new line at (x, y). An uncommitted line left from an
// earlier press is discarded.
func (s *Session) PointerDown(x, y float64) {
	if !s.state.levelActive() {
		return
	}
	if s.current != nil {
		s.current.Delete()
	}
	s.current = entity.NewDynamicLine(s.world, s.proj, s.lineOptions())
	s.current.AddVertex(x, y)
	s.held = true
	s.heldTicks = 0
}

// PointerMove is called once per tick while the pointer is held. Vertices
// are sampled every draw_sample_every ticks. Reaching the edge of the play
// field stops sampling but keeps the line.
func (s *Session) PointerMove(x, y float64) {
	if !s.held || s.current == nil {
		return
	}
	s.heldTicks++
	if !s.inBounds(x, y) {
		s.held = false
		return
	}
	every := s.cfg.Timing.DrawSampleEvery
	if every <= 0 {
		every = 10
	}
	if s.heldTicks%every == 0 {
		s.current.AddVertex(x, y)
	}
}

// PointerUp commits the current line.
func (s *Session) PointerUp() {
	s.held = false
	if s.current == nil {
		return
	}
	s.current.SetColor(s.cfg.Line.CommittedColor.NRGBA)
	s.drawnLines = append(s.drawnLines, s.current)
	s.current = nil
}

// Drawing reports whether a press is being captured.
func (s *Session) Drawing() bool {
	return s.held
}

func (s *Session) inBounds(x, y float64) bool {
	w, h := float64(s.cfg.Window.Width), float64(s.cfg.Window.Height)
	if w <= 0 {
		w = common.BaseWidth
	}
	if h <= 0 {
		h = common.BaseHeight
	}
	return x > 0 && x < w && y > 0 && y < h
}

// ExportDrawnLines converts committed lines into level statics, one per
// segment.
func (s *Session) ExportDrawnLines() []levels.StaticDef {
	l := s.cfg.Line
	clr := common.HexColor(l.CommittedColor.NRGBA)
	var out []levels.StaticDef
	for _, line := range s.drawnLines {
		v := line.Vertices()
		for i := 1; i < len(v); i++ {
			out = append(out, levels.StaticDef{
				X1:          v[i-1].X,
				Y1:          v[i-1].Y,
				X2:          v[i].X,
				Y2:          v[i].Y,
				Color:       clr,
				LineWidth:   l.Width,
				Friction:    l.Friction,
				Restitution: l.Elasticity,
			})
		}
	}
	return out
}
