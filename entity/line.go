package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sugarpop/physics"
)

// Point is a vertex in screen space.
type Point struct {
	X, Y float64
}

// LineOptions describes a user-drawn line.
type LineOptions struct {
	// Thickness is the collider radius in physics units.
	Thickness float64
	Material  physics.Material
	Width     float64
	Color     color.Color
}

// DynamicLine is a polyline the player draws. It owns one static body and
// gains one segment collider for every vertex after the first.
type DynamicLine struct {
	world physics.World
	proj  physics.Projection
	opts  LineOptions

	body      physics.Body
	vertices  []Point
	colliders []physics.Collider
	deleted   bool
}

func NewDynamicLine(w physics.World, proj physics.Projection, opts LineOptions) *DynamicLine {
	if opts.Width <= 0 {
		opts.Width = 3
	}
	if opts.Color == nil {
		opts.Color = color.NRGBA{R: 0xff, A: 0xff}
	}
	l := &DynamicLine{world: w, proj: proj, opts: opts}
	if w != nil {
		l.body = w.CreateStaticBody(physics.Vec{})
	}
	return l
}

// AddVertex appends a screen point, connecting it to the previous vertex.
func (l *DynamicLine) AddVertex(x, y float64) {
	if l == nil || l.deleted {
		return
	}
	p := Point{X: x, Y: y}
	if n := len(l.vertices); n > 0 && l.world != nil {
		prev := l.vertices[n-1]
		c := l.world.AttachSegment(l.body, l.proj.ToWorld(prev.X, prev.Y), l.proj.ToWorld(x, y), l.opts.Thickness, l.opts.Material)
		l.colliders = append(l.colliders, c)
	}
	l.vertices = append(l.vertices, p)
}

// Vertices returns a copy of the drawn points.
func (l *DynamicLine) Vertices() []Point {
	if l == nil {
		return nil
	}
	return append([]Point(nil), l.vertices...)
}

// Colliders returns a copy of the segment handles in draw order.
func (l *DynamicLine) Colliders() []physics.Collider {
	if l == nil {
		return nil
	}
	return append([]physics.Collider(nil), l.colliders...)
}

func (l *DynamicLine) Len() int {
	if l == nil {
		return 0
	}
	return len(l.vertices)
}

// SetColor changes the render colour, used when a line is committed.
func (l *DynamicLine) SetColor(c color.Color) {
	if l == nil || c == nil {
		return
	}
	l.opts.Color = c
}

func (l *DynamicLine) Color() color.Color {
	if l == nil {
		return nil
	}
	return l.opts.Color
}

func (l *DynamicLine) Draw(screen *ebiten.Image) {
	if l == nil || screen == nil || l.deleted {
		return
	}
	for i := 1; i < len(l.vertices); i++ {
		a, b := l.vertices[i-1], l.vertices[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(l.opts.Width), l.opts.Color, true)
	}
}

func (l *DynamicLine) Delete() {
	if l == nil || l.deleted {
		return
	}
	l.deleted = true
	if l.world != nil {
		for _, c := range l.colliders {
			l.world.RemoveCollider(c)
		}
		l.world.DestroyBody(l.body)
	}
	l.body = 0
	l.colliders = nil
	l.vertices = nil
}
