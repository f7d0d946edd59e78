package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sugarpop/physics"
)

// SegmentStyle is how a line is rendered.
type SegmentStyle struct {
	Color color.Color
	Width float64
}

// StaticSegment is a fixed line obstacle from level data.
type StaticSegment struct {
	world    physics.World
	body     physics.Body
	collider physics.Collider

	x1, y1, x2, y2 float64
	style          SegmentStyle
}

// NewStaticSegment creates a line collider between two screen points.
// thickness is in physics units.
func NewStaticSegment(w physics.World, proj physics.Projection, x1, y1, x2, y2, thickness float64, m physics.Material, style SegmentStyle) *StaticSegment {
	if style.Color == nil {
		style.Color = color.Gray{Y: 0x80}
	}
	if style.Width <= 0 {
		style.Width = 3
	}
	s := &StaticSegment{world: w, x1: x1, y1: y1, x2: x2, y2: y2, style: style}
	if w == nil {
		return s
	}
	s.body = w.CreateStaticBody(physics.Vec{})
	s.collider = w.AttachSegment(s.body, proj.ToWorld(x1, y1), proj.ToWorld(x2, y2), thickness, m)
	return s
}

// Endpoints returns the segment in screen space.
func (s *StaticSegment) Endpoints() (x1, y1, x2, y2 float64) {
	return s.x1, s.y1, s.x2, s.y2
}

// Collider returns the physics handle, invalid once deleted.
func (s *StaticSegment) Collider() physics.Collider {
	if s == nil {
		return 0
	}
	return s.collider
}

func (s *StaticSegment) Draw(screen *ebiten.Image) {
	if s == nil || screen == nil || !s.collider.Valid() {
		return
	}
	vector.StrokeLine(screen, float32(s.x1), float32(s.y1), float32(s.x2), float32(s.y2), float32(s.style.Width), s.style.Color, true)
}

func (s *StaticSegment) Delete() {
	if s == nil || !s.body.Valid() {
		return
	}
	if s.world != nil {
		s.world.DestroyBody(s.body)
	}
	s.body = 0
	s.collider = 0
}
