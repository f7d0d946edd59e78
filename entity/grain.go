package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sugarpop/physics"
)

// GrainOptions describes how grains are built.
type GrainOptions struct {
	// Size is the edge length of the square grain in pixels.
	Size     float64
	Material physics.Material
	Color    color.Color
}

// SugarGrain is one falling particle.
type SugarGrain struct {
	Index int

	world physics.World
	proj  physics.Projection
	body  physics.Body
	size  float64
	color color.Color
}

// NewSugarGrain creates a grain centred on the screen point (x, y).
func NewSugarGrain(w physics.World, proj physics.Projection, x, y float64, index int, opts GrainOptions) *SugarGrain {
	size := opts.Size
	if size <= 0 {
		size = 2
	}
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	g := &SugarGrain{Index: index, world: w, proj: proj, size: size, color: clr}
	if w == nil {
		return g
	}
	half := proj.Length(size) / 2
	g.body = w.CreateDynamicBody(proj.ToWorld(x, y))
	w.AttachBox(g.body, physics.Vec{X: half, Y: half}, opts.Material)
	return g
}

// Body returns the physics handle.
func (g *SugarGrain) Body() physics.Body {
	if g == nil {
		return 0
	}
	return g.body
}

// Alive reports whether the grain still owns a body.
func (g *SugarGrain) Alive() bool {
	return g != nil && g.body.Valid()
}

// Position returns the grain centre in physics space.
func (g *SugarGrain) Position() (physics.Vec, bool) {
	if !g.Alive() || g.world == nil {
		return physics.Vec{}, false
	}
	return g.world.Position(g.body)
}

// ScreenPosition returns the grain centre in screen space.
func (g *SugarGrain) ScreenPosition() (float64, float64, bool) {
	pos, ok := g.Position()
	if !ok {
		return 0, 0, false
	}
	x, y := g.proj.ToScreen(pos)
	return x, y, true
}

// ApplyImpulse pushes the grain at its centre of mass.
func (g *SugarGrain) ApplyImpulse(impulse physics.Vec) {
	pos, ok := g.Position()
	if !ok {
		return
	}
	g.world.ApplyImpulse(g.body, impulse, pos)
}

func (g *SugarGrain) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	x, y, ok := g.ScreenPosition()
	if !ok {
		return
	}
	half := g.size / 2
	vector.FillRect(screen, float32(x-half), float32(y-half), float32(g.size), float32(g.size), g.color, false)
}

func (g *SugarGrain) Delete() {
	if !g.Alive() {
		return
	}
	if g.world != nil {
		g.world.DestroyBody(g.body)
	}
	g.body = 0
}
