// Package chipmunk implements physics.World on top of the Chipmunk2D port
// github.com/jakecoffman/cp.
package chipmunk

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sugarpop/physics"
)

const (
	collisionTypeStatic cp.CollisionType = iota + 1
	collisionTypeDynamic
)

const (
	// DefaultMaxTravel is how far a dynamic body may move in one sub-step.
	// It must stay below the thinnest wall or line a level builds.
	DefaultMaxTravel = 0.05
	// DefaultMaxSpeed is the terminal speed of dynamic bodies.
	DefaultMaxSpeed = 30.0
	// DefaultCollisionSlop is the overlap Chipmunk tolerates between shapes.
	DefaultCollisionSlop = 0.01

	maxSubSteps = 32
)

// Options configures a new World. Zero fields take the defaults above.
type Options struct {
	Gravity   float64
	MaxTravel float64
	MaxSpeed  float64
}

// World owns the Chipmunk space and maps opaque handles to cp objects.
type World struct {
	space *cp.Space

	gravity   float64
	maxTravel float64
	maxSpeed  float64

	nextBody     physics.Body
	nextCollider physics.Collider

	bodies    map[physics.Body]*bodyInfo
	colliders map[physics.Collider]*colliderInfo
}

type bodyInfo struct {
	body      *cp.Body
	static    bool
	colliders []physics.Collider
}

type colliderInfo struct {
	shape *cp.Shape
	owner physics.Body
}

var _ physics.World = (*World)(nil)

// New creates an empty Chipmunk world.
func New(opts Options) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: opts.Gravity})
	space.SetCollisionSlop(DefaultCollisionSlop)

	if opts.MaxTravel <= 0 {
		opts.MaxTravel = DefaultMaxTravel
	}
	if opts.MaxSpeed <= 0 {
		opts.MaxSpeed = DefaultMaxSpeed
	}

	return &World{
		space:     space,
		gravity:   opts.Gravity,
		maxTravel: opts.MaxTravel,
		maxSpeed:  opts.MaxSpeed,
		bodies:    make(map[physics.Body]*bodyInfo),
		colliders: make(map[physics.Collider]*colliderInfo),
	}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

func (w *World) CreateStaticBody(pos physics.Vec) physics.Body {
	if w == nil || w.space == nil {
		return 0
	}
	body := cp.NewStaticBody()
	body.SetPosition(toCP(pos))
	w.space.AddBody(body)
	return w.register(&bodyInfo{body: body, static: true})
}

func (w *World) CreateDynamicBody(pos physics.Vec) physics.Body {
	if w == nil || w.space == nil {
		return 0
	}
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForBox(mass, 1, 1))
	body.SetPosition(toCP(pos))
	maxSpeed := w.maxSpeed
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity, damping, dt)
		if v := body.Velocity(); v.Length() > maxSpeed {
			body.SetVelocityVector(v.Clamp(maxSpeed))
		}
	})
	w.space.AddBody(body)
	return w.register(&bodyInfo{body: body})
}

func (w *World) AttachSegment(b physics.Body, a, c physics.Vec, thickness float64, m physics.Material) physics.Collider {
	info := w.body(b)
	if info == nil {
		return 0
	}
	shape := cp.NewSegment(info.body, toCP(a), toCP(c), thickness)
	return w.attach(b, info, shape, m)
}

func (w *World) AttachBox(b physics.Body, half physics.Vec, m physics.Material) physics.Collider {
	info := w.body(b)
	if info == nil {
		return 0
	}
	width, height := half.X*2, half.Y*2
	if !info.static && m.Density > 0 {
		mass := m.Density * width * height
		info.body.SetMass(mass)
		info.body.SetMoment(cp.MomentForBox(mass, width, height))
	}
	shape := cp.NewBox(info.body, width, height, 0)
	return w.attach(b, info, shape, m)
}

func (w *World) AttachCircle(b physics.Body, radius float64, m physics.Material) physics.Collider {
	info := w.body(b)
	if info == nil {
		return 0
	}
	if !info.static && m.Density > 0 {
		mass := m.Density * math.Pi * radius * radius
		info.body.SetMass(mass)
		info.body.SetMoment(cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	}
	shape := cp.NewCircle(info.body, radius, cp.Vector{})
	return w.attach(b, info, shape, m)
}

// Step advances the space by dt, split into sub-steps so that no dynamic
// body travels further than MaxTravel in any one of them.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	n := w.SubSteps(dt)
	h := dt / float64(n)
	for i := 0; i < n; i++ {
		w.space.Step(h)
	}
}

// SubSteps reports how many sub-steps Step would take for dt.
func (w *World) SubSteps(dt float64) int {
	if w == nil || dt <= 0 {
		return 0
	}
	speed, dynamic := 0.0, false
	for _, info := range w.bodies {
		if info.static {
			continue
		}
		dynamic = true
		if v := info.body.Velocity().Length(); v > speed {
			speed = v
		}
	}
	if !dynamic {
		return 1
	}
	speed = math.Min(speed+math.Abs(w.gravity)*dt, w.maxSpeed)
	n := int(math.Ceil(speed * dt / w.maxTravel))
	return max(1, min(n, maxSubSteps))
}

func (w *World) Position(b physics.Body) (physics.Vec, bool) {
	info := w.body(b)
	if info == nil {
		return physics.Vec{}, false
	}
	return fromCP(info.body.Position()), true
}

func (w *World) ApplyImpulse(b physics.Body, impulse, at physics.Vec) {
	info := w.body(b)
	if info == nil || info.static {
		return
	}
	info.body.ApplyImpulseAtWorldPoint(toCP(impulse), toCP(at))
}

func (w *World) DestroyBody(b physics.Body) {
	info := w.body(b)
	if info == nil {
		return
	}
	for _, c := range info.colliders {
		if ci, ok := w.colliders[c]; ok {
			w.space.RemoveShape(ci.shape)
			delete(w.colliders, c)
		}
	}
	w.space.RemoveBody(info.body)
	delete(w.bodies, b)
}

func (w *World) RemoveCollider(c physics.Collider) {
	if w == nil || w.colliders == nil {
		return
	}
	ci, ok := w.colliders[c]
	if !ok {
		return
	}
	w.space.RemoveShape(ci.shape)
	delete(w.colliders, c)
	if owner := w.bodies[ci.owner]; owner != nil {
		owner.colliders = removeCollider(owner.colliders, c)
	}
}

// BodyCount reports the number of live bodies.
func (w *World) BodyCount() int {
	if w == nil {
		return 0
	}
	return len(w.bodies)
}

// ColliderCount reports the number of live colliders.
func (w *World) ColliderCount() int {
	if w == nil {
		return 0
	}
	return len(w.colliders)
}

func (w *World) register(info *bodyInfo) physics.Body {
	w.nextBody++
	w.bodies[w.nextBody] = info
	return w.nextBody
}

func (w *World) body(b physics.Body) *bodyInfo {
	if w == nil || w.bodies == nil || !b.Valid() {
		return nil
	}
	return w.bodies[b]
}

func (w *World) attach(b physics.Body, info *bodyInfo, shape *cp.Shape, m physics.Material) physics.Collider {
	shape.SetFriction(m.Friction)
	shape.SetElasticity(m.Elasticity)
	if info.static {
		shape.SetCollisionType(collisionTypeStatic)
	} else {
		shape.SetCollisionType(collisionTypeDynamic)
	}
	w.space.AddShape(shape)

	w.nextCollider++
	id := w.nextCollider
	w.colliders[id] = &colliderInfo{shape: shape, owner: b}
	info.colliders = append(info.colliders, id)
	return id
}

func removeCollider(list []physics.Collider, c physics.Collider) []physics.Collider {
	for i, v := range list {
		if v == c {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func toCP(v physics.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) physics.Vec {
	return physics.Vec{X: v.X, Y: v.Y}
}
