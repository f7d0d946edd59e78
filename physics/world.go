// Package physics defines the narrow rigid-body interface the game is built
// on. Engine backends live in subpackages and never leak their own types.
package physics

import "math"

// Body is an opaque handle to a rigid body owned by a World.
type Body uint32

// Collider is an opaque handle to a shape attached to a Body.
type Collider uint32

// Valid reports whether the handle was issued by a World.
func (b Body) Valid() bool {
	return b > 0
}

// Valid reports whether the handle was issued by a World.
func (c Collider) Valid() bool {
	return c > 0
}

// Vec is a 2D vector in physics units.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Material describes the contact properties of a collider. Density is only
// meaningful for colliders attached to dynamic bodies.
type Material struct {
	Density    float64
	Friction   float64
	Elasticity float64
}

// World is the set of operations gameplay code needs from a physics engine.
//
// Destroy and remove calls are idempotent: releasing a handle twice, or a
// handle that was never issued, is a no-op.
type World interface {
	// CreateStaticBody creates an immovable body anchored at pos. Segment
	// endpoints attached to it are relative to pos.
	CreateStaticBody(pos Vec) Body
	CreateDynamicBody(pos Vec) Body

	AttachSegment(b Body, a, c Vec, thickness float64, m Material) Collider
	AttachBox(b Body, half Vec, m Material) Collider
	AttachCircle(b Body, radius float64, m Material) Collider

	Step(dt float64)

	// Position returns the body position, or false once the body is gone.
	Position(b Body) (Vec, bool)
	ApplyImpulse(b Body, impulse, at Vec)

	DestroyBody(b Body)
	RemoveCollider(c Collider)
}

// Gravity is the default downward acceleration in physics units.
const Gravity = -9.8
