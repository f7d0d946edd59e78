package entity

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sugarpop/physics"
)

// BucketOptions holds the tunables shared by every bucket.
type BucketOptions struct {
	// WallThickness is the half-thickness of each wall in physics units.
	WallThickness    float64
	Friction         float64
	Color            color.Color
	LineWidth        float64
	ExplosionRadius  float64
	ExplosionImpulse float64
	// ShowCount draws the count/needed label above the bucket.
	ShowCount bool
}

// Bucket is an open-topped container built from three static walls.
type Bucket struct {
	world physics.World
	proj  physics.Projection
	opts  BucketOptions

	left, right, bottom physics.Body
	width, height       float64 // physics units

	needed   int
	count    int
	exploded bool
	deleted  bool
}

// NewBucket builds a bucket whose top centre is the screen point (x, y).
// width and height are in pixels.
func NewBucket(w physics.World, proj physics.Projection, x, y, width, height float64, needed int, opts BucketOptions) *Bucket {
	if opts.Color == nil {
		opts.Color = color.NRGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 2
	}
	b := &Bucket{
		world:  w,
		proj:   proj,
		opts:   opts,
		width:  proj.Length(width),
		height: proj.Length(height),
		needed: needed,
	}
	if w == nil {
		return b
	}

	top := proj.ToWorld(x, y)
	mat := physics.Material{Friction: opts.Friction}
	thick := opts.WallThickness

	b.left = w.CreateStaticBody(physics.Vec{X: top.X - b.width/2, Y: top.Y - b.height/2})
	w.AttachBox(b.left, physics.Vec{X: thick, Y: b.height / 2}, mat)

	b.right = w.CreateStaticBody(physics.Vec{X: top.X + b.width/2, Y: top.Y - b.height/2})
	w.AttachBox(b.right, physics.Vec{X: thick, Y: b.height / 2}, mat)

	b.bottom = w.CreateStaticBody(physics.Vec{X: top.X, Y: top.Y - b.height})
	w.AttachBox(b.bottom, physics.Vec{X: b.width / 2, Y: thick}, mat)
	return b
}

func (b *Bucket) Needed() int    { return b.needed }
func (b *Bucket) Count() int     { return b.count }
func (b *Bucket) Exploded() bool { return b.exploded }

// Full reports whether the last evaluation collected enough grains.
func (b *Bucket) Full() bool {
	return b.count >= b.needed
}

// Walls returns the left, right and bottom wall bodies.
func (b *Bucket) Walls() (left, right, bottom physics.Body) {
	return b.left, b.right, b.bottom
}

// bounds derives the containment box from the live wall positions.
func (b *Bucket) bounds() (left, right, bottom, top float64, ok bool) {
	if b.world == nil {
		return 0, 0, 0, 0, false
	}
	l, ok1 := b.world.Position(b.left)
	r, ok2 := b.world.Position(b.right)
	bt, ok3 := b.world.Position(b.bottom)
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, 0, false
	}
	return l.X, r.X, bt.Y, l.Y + b.height/2, true
}

// Contains reports whether p, in physics space, lies within the bucket.
// The edges are inclusive.
func (b *Bucket) Contains(p physics.Vec) bool {
	left, right, bottom, top, ok := b.bounds()
	if !ok {
		return false
	}
	return p.X >= left && p.X <= right && p.Y >= bottom && p.Y <= top
}

// ResetCount clears the tally before an evaluation pass.
func (b *Bucket) ResetCount() {
	if b.exploded {
		return
	}
	b.count = 0
}

// Collect counts grain if it sits inside the bucket.
func (b *Bucket) Collect(grain *SugarGrain) bool {
	if b.exploded || b.deleted {
		return false
	}
	pos, ok := grain.Position()
	if !ok || !b.Contains(pos) {
		return false
	}
	b.count++
	return true
}

// Center is the point explosions radiate from.
func (b *Bucket) Center() (physics.Vec, bool) {
	if b.world == nil {
		return physics.Vec{}, false
	}
	bt, ok := b.world.Position(b.bottom)
	if !ok {
		return physics.Vec{}, false
	}
	return physics.Vec{X: bt.X, Y: bt.Y + b.height/2}, true
}

// Explode pushes nearby grains away and removes the walls. Later calls
// do nothing.
func (b *Bucket) Explode(grains []*SugarGrain) {
	if b.exploded || b.deleted {
		return
	}
	if center, ok := b.Center(); ok {
		for _, g := range grains {
			pos, ok := g.Position()
			if !ok {
				continue
			}
			delta := pos.Sub(center)
			d := delta.Len()
			if d >= b.opts.ExplosionRadius {
				continue
			}
			var dir physics.Vec
			if d > 0 {
				dir = delta.Scale(1 / d)
			}
			g.ApplyImpulse(dir.Scale(b.opts.ExplosionImpulse / (d + 0.1)))
		}
	}
	b.destroyWalls()
	b.exploded = true
}

func (b *Bucket) destroyWalls() {
	if b.world != nil {
		b.world.DestroyBody(b.left)
		b.world.DestroyBody(b.right)
		b.world.DestroyBody(b.bottom)
	}
	b.left, b.right, b.bottom = 0, 0, 0
}

func (b *Bucket) Draw(screen *ebiten.Image) {
	if screen == nil || b.exploded || b.deleted || b.world == nil {
		return
	}
	l, ok1 := b.world.Position(b.left)
	r, ok2 := b.world.Position(b.right)
	bt, ok3 := b.world.Position(b.bottom)
	if !ok1 || !ok2 || !ok3 {
		return
	}
	half := b.height / 2
	lx, ltop := b.proj.ToScreen(physics.Vec{X: l.X, Y: l.Y + half})
	_, lbot := b.proj.ToScreen(physics.Vec{X: l.X, Y: l.Y - half})
	rx, rtop := b.proj.ToScreen(physics.Vec{X: r.X, Y: r.Y + half})
	_, rbot := b.proj.ToScreen(physics.Vec{X: r.X, Y: r.Y - half})
	_, by := b.proj.ToScreen(bt)

	w := float32(b.opts.LineWidth)
	vector.StrokeLine(screen, float32(lx), float32(ltop), float32(lx), float32(lbot), w, b.opts.Color, true)
	vector.StrokeLine(screen, float32(rx), float32(rtop), float32(rx), float32(rbot), w, b.opts.Color, true)
	vector.StrokeLine(screen, float32(lx), float32(by), float32(rx), float32(by), w, b.opts.Color, true)

	if b.opts.ShowCount {
		label := fmt.Sprintf("%d/%d", b.count, b.needed)
		cx := (lx + rx) / 2
		ebitenutil.DebugPrintAt(screen, label, int(math.Round(cx))-len(label)*3, int(math.Round(ltop))-16)
	}
}

// Delete removes the walls if the bucket has not exploded.
func (b *Bucket) Delete() {
	if b.deleted {
		return
	}
	b.deleted = true
	if !b.exploded {
		b.destroyWalls()
	}
}
