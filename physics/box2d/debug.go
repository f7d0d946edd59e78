package box2d

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sugarpop/physics"
)

var (
	debugStaticColor  = color.NRGBA{R: 0x66, G: 0x66, B: 0xff, A: 0xb0}
	debugDynamicColor = color.NRGBA{R: 0xff, G: 0xcc, B: 0x1a, A: 0xb0}
)

// DebugDraw renders every fixture from the recorded local geometry.
func (w *World) DebugDraw(screen *ebiten.Image, proj physics.Projection) {
	if w == nil || screen == nil {
		return
	}
	for _, ci := range w.colliders {
		owner := w.bodies[ci.owner]
		if owner == nil {
			continue
		}
		pos := fromB2(owner.body.GetPosition())
		angle := owner.body.GetAngle()
		clr := debugDynamicColor
		if owner.static {
			clr = debugStaticColor
		}

		switch ci.shape.kind {
		case shapeSegment:
			drawWorldLine(screen, proj, local(pos, angle, ci.shape.a), local(pos, angle, ci.shape.b), clr)
		case shapeBox:
			h := ci.shape.half
			corners := []physics.Vec{{X: -h.X, Y: -h.Y}, {X: h.X, Y: -h.Y}, {X: h.X, Y: h.Y}, {X: -h.X, Y: h.Y}}
			for i := range corners {
				drawWorldLine(screen, proj, local(pos, angle, corners[i]), local(pos, angle, corners[(i+1)%len(corners)]), clr)
			}
		case shapeCircle:
			x, y := proj.ToScreen(pos)
			r := ci.shape.radius * proj.Scale
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, clr, false)
		}
	}
}

func local(pos physics.Vec, angle float64, v physics.Vec) physics.Vec {
	s, c := math.Sincos(angle)
	return physics.Vec{X: pos.X + v.X*c - v.Y*s, Y: pos.Y + v.X*s + v.Y*c}
}

func drawWorldLine(screen *ebiten.Image, proj physics.Projection, a, b physics.Vec, clr color.Color) {
	x1, y1 := proj.ToScreen(a)
	x2, y2 := proj.ToScreen(b)
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, clr, false)
}
