package physics

// Projection converts between screen space (pixels, Y down) and physics
// space (units, Y up).
type Projection struct {
	// Scale is pixels per physics unit.
	Scale float64
	// ScreenHeight is the play field height in pixels.
	ScreenHeight float64
}

func NewProjection(scale, screenHeight float64) Projection {
	if scale <= 0 {
		scale = 1
	}
	return Projection{Scale: scale, ScreenHeight: screenHeight}
}

// ToWorld maps a screen point to physics space.
func (p Projection) ToWorld(x, y float64) Vec {
	return Vec{X: x / p.Scale, Y: (p.ScreenHeight - y) / p.Scale}
}

// ToScreen maps a physics point to screen space.
func (p Projection) ToScreen(v Vec) (float64, float64) {
	return v.X * p.Scale, p.ScreenHeight - v.Y*p.Scale
}

// Length converts a screen distance to physics units.
func (p Projection) Length(px float64) float64 {
	return px / p.Scale
}
