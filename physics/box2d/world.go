// Package box2d implements physics.World on top of github.com/ByteArena/box2d.
package box2d

import (
	"github.com/ByteArena/box2d"
	"github.com/milk9111/sugarpop/physics"
)

const (
	velocityIterations = 6
	positionIterations = 2
)

// Options configures a new World.
type Options struct {
	Gravity float64
}

// World owns a Box2D world and maps opaque handles to Box2D objects.
type World struct {
	world *box2d.B2World

	nextBody     physics.Body
	nextCollider physics.Collider

	bodies    map[physics.Body]*bodyInfo
	colliders map[physics.Collider]*colliderInfo
}

type bodyInfo struct {
	body      *box2d.B2Body
	static    bool
	colliders []physics.Collider
}

type colliderInfo struct {
	fixture *box2d.B2Fixture
	owner   physics.Body
	shape   shapeRecord
}

// shapeRecord keeps the local geometry of a fixture for debug drawing.
type shapeRecord struct {
	kind   shapeKind
	a, b   physics.Vec
	half   physics.Vec
	radius float64
}

type shapeKind int

const (
	shapeSegment shapeKind = iota
	shapeBox
	shapeCircle
)

var _ physics.World = (*World)(nil)

// New creates an empty Box2D world.
func New(opts Options) *World {
	w := box2d.MakeB2World(box2d.MakeB2Vec2(0, opts.Gravity))
	return &World{
		world:     &w,
		bodies:    make(map[physics.Body]*bodyInfo),
		colliders: make(map[physics.Collider]*colliderInfo),
	}
}

func (w *World) CreateStaticBody(pos physics.Vec) physics.Body {
	return w.createBody(pos, box2d.B2BodyType.B2_staticBody)
}

func (w *World) CreateDynamicBody(pos physics.Vec) physics.Body {
	return w.createBody(pos, box2d.B2BodyType.B2_dynamicBody)
}

func (w *World) createBody(pos physics.Vec, kind uint8) physics.Body {
	if w == nil || w.world == nil {
		return 0
	}
	def := box2d.MakeB2BodyDef()
	def.Type = kind
	def.Position.Set(pos.X, pos.Y)
	body := w.world.CreateBody(&def)

	w.nextBody++
	w.bodies[w.nextBody] = &bodyInfo{body: body, static: kind == box2d.B2BodyType.B2_staticBody}
	return w.nextBody
}

// AttachSegment creates an edge fixture. Box2D edges have no thickness of
// their own, so thickness is ignored.
func (w *World) AttachSegment(b physics.Body, a, c physics.Vec, thickness float64, m physics.Material) physics.Collider {
	info := w.body(b)
	if info == nil {
		return 0
	}
	shape := box2d.MakeB2EdgeShape()
	shape.Set(toB2(a), toB2(c))
	def := fixtureDef(m)
	def.Shape = &shape
	return w.attach(b, info, info.body.CreateFixtureFromDef(&def), shapeRecord{kind: shapeSegment, a: a, b: c})
}

func (w *World) AttachBox(b physics.Body, half physics.Vec, m physics.Material) physics.Collider {
	info := w.body(b)
	if info == nil {
		return 0
	}
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(half.X, half.Y)
	def := fixtureDef(m)
	def.Shape = &shape
	return w.attach(b, info, info.body.CreateFixtureFromDef(&def), shapeRecord{kind: shapeBox, half: half})
}

func (w *World) AttachCircle(b physics.Body, radius float64, m physics.Material) physics.Collider {
	info := w.body(b)
	if info == nil {
		return 0
	}
	shape := box2d.MakeB2CircleShape()
	shape.M_radius = radius
	def := fixtureDef(m)
	def.Shape = &shape
	return w.attach(b, info, info.body.CreateFixtureFromDef(&def), shapeRecord{kind: shapeCircle, radius: radius})
}

func (w *World) Step(dt float64) {
	if w == nil || w.world == nil || dt <= 0 {
		return
	}
	w.world.Step(dt, velocityIterations, positionIterations)
}

func (w *World) Position(b physics.Body) (physics.Vec, bool) {
	info := w.body(b)
	if info == nil {
		return physics.Vec{}, false
	}
	return fromB2(info.body.GetPosition()), true
}

func (w *World) ApplyImpulse(b physics.Body, impulse, at physics.Vec) {
	info := w.body(b)
	if info == nil || info.static {
		return
	}
	info.body.ApplyLinearImpulse(toB2(impulse), toB2(at), true)
}

func (w *World) DestroyBody(b physics.Body) {
	info := w.body(b)
	if info == nil {
		return
	}
	for _, c := range info.colliders {
		delete(w.colliders, c)
	}
	w.world.DestroyBody(info.body)
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
	delete(w.colliders, c)
	owner := w.bodies[ci.owner]
	if owner == nil {
		return
	}
	owner.body.DestroyFixture(ci.fixture)
	for i, v := range owner.colliders {
		if v == c {
			owner.colliders = append(owner.colliders[:i], owner.colliders[i+1:]...)
			break
		}
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

func (w *World) body(b physics.Body) *bodyInfo {
	if w == nil || w.bodies == nil || !b.Valid() {
		return nil
	}
	return w.bodies[b]
}

func (w *World) attach(b physics.Body, info *bodyInfo, fixture *box2d.B2Fixture, rec shapeRecord) physics.Collider {
	w.nextCollider++
	id := w.nextCollider
	w.colliders[id] = &colliderInfo{fixture: fixture, owner: b, shape: rec}
	info.colliders = append(info.colliders, id)
	return id
}

func fixtureDef(m physics.Material) box2d.B2FixtureDef {
	def := box2d.MakeB2FixtureDef()
	def.Density = m.Density
	def.Friction = m.Friction
	def.Restitution = m.Elasticity
	return def
}

func toB2(v physics.Vec) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromB2(v box2d.B2Vec2) physics.Vec {
	return physics.Vec{X: v.X, Y: v.Y}
}
