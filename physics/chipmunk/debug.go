package chipmunk

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sugarpop/physics"
)

const debugCircleSegments = 16

// DebugDraw renders every shape in the space as outlines.
func (w *World) DebugDraw(screen *ebiten.Image, proj physics.Projection) {
	if w == nil || w.space == nil || screen == nil {
		return
	}
	cp.DrawSpace(w.space, &debugDrawer{screen: screen, proj: proj})
}

type debugDrawer struct {
	screen *ebiten.Image
	proj   physics.Projection
}

func (d *debugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *debugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *debugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *debugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		d.drawLine(verts[i], verts[(i+1)%count], outline)
	}
}

func (d *debugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.proj.ToScreen(fromCP(pos))
	vector.FillRect(d.screen, float32(x-1), float32(y-1), 2, 2, toNRGBA(fill), false)
}

func (d *debugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *debugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *debugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.4, G: 0.4, B: 1, A: 0.7}
	}
	return cp.FColor{R: 1, G: 0.8, B: 0.1, A: 0.7}
}

func (d *debugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *debugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *debugDrawer) Data() interface{} {
	return nil
}

func (d *debugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.proj.ToScreen(fromCP(a))
	x2, y2 := d.proj.ToScreen(fromCP(b))
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), false)
}

func (d *debugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	prev := cp.Vector{X: center.X + radius, Y: center.Y}
	for i := 1; i <= debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		next := cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius}
		d.drawLine(prev, next, c)
		prev = next
	}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
