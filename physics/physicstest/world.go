// Package physicstest provides an in-memory physics.World for tests. Bodies
// only move when a test moves them or when an impulse is applied.
package physicstest

import "github.com/milk9111/sugarpop/physics"

// World is a deterministic physics.World fake.
type World struct {
	nextBody     physics.Body
	nextCollider physics.Collider

	bodies    map[physics.Body]*Body
	colliders map[physics.Collider]*Collider

	// Steps records every dt passed to Step.
	Steps []float64
	// Destroyed counts bodies actually released.
	Destroyed int
	// Removed counts colliders actually released.
	Removed int
}

// Body is the fake's record of a rigid body.
type Body struct {
	Static    bool
	Pos       physics.Vec
	Velocity  physics.Vec
	Impulses  []physics.Vec
	Colliders []physics.Collider
}

// Collider is the fake's record of an attached shape.
type Collider struct {
	Owner     physics.Body
	Kind      string
	A, B      physics.Vec
	Half      physics.Vec
	Radius    float64
	Thickness float64
	Material  physics.Material
}

var _ physics.World = (*World)(nil)

func New() *World {
	return &World{
		bodies:    make(map[physics.Body]*Body),
		colliders: make(map[physics.Collider]*Collider),
	}
}

func (w *World) CreateStaticBody(pos physics.Vec) physics.Body {
	return w.add(&Body{Static: true, Pos: pos})
}

func (w *World) CreateDynamicBody(pos physics.Vec) physics.Body {
	return w.add(&Body{Pos: pos})
}

func (w *World) AttachSegment(b physics.Body, a, c physics.Vec, thickness float64, m physics.Material) physics.Collider {
	return w.attach(b, &Collider{Kind: "segment", A: a, B: c, Thickness: thickness, Material: m})
}

func (w *World) AttachBox(b physics.Body, half physics.Vec, m physics.Material) physics.Collider {
	return w.attach(b, &Collider{Kind: "box", Half: half, Material: m})
}

func (w *World) AttachCircle(b physics.Body, radius float64, m physics.Material) physics.Collider {
	return w.attach(b, &Collider{Kind: "circle", Radius: radius, Material: m})
}

// Step advances dynamic bodies by their velocity.
func (w *World) Step(dt float64) {
	w.Steps = append(w.Steps, dt)
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.Pos = b.Pos.Add(b.Velocity.Scale(dt))
	}
}

func (w *World) Position(b physics.Body) (physics.Vec, bool) {
	body, ok := w.bodies[b]
	if !ok {
		return physics.Vec{}, false
	}
	return body.Pos, true
}

// ApplyImpulse records the impulse and adds it to the body velocity as if
// the body had unit mass.
func (w *World) ApplyImpulse(b physics.Body, impulse, at physics.Vec) {
	body, ok := w.bodies[b]
	if !ok || body.Static {
		return
	}
	body.Impulses = append(body.Impulses, impulse)
	body.Velocity = body.Velocity.Add(impulse)
}

func (w *World) DestroyBody(b physics.Body) {
	body, ok := w.bodies[b]
	if !ok {
		return
	}
	for _, c := range body.Colliders {
		if _, ok := w.colliders[c]; ok {
			delete(w.colliders, c)
			w.Removed++
		}
	}
	delete(w.bodies, b)
	w.Destroyed++
}

func (w *World) RemoveCollider(c physics.Collider) {
	col, ok := w.colliders[c]
	if !ok {
		return
	}
	delete(w.colliders, c)
	w.Removed++
	if body, ok := w.bodies[col.Owner]; ok {
		for i, v := range body.Colliders {
			if v == c {
				body.Colliders = append(body.Colliders[:i], body.Colliders[i+1:]...)
				break
			}
		}
	}
}

// SetPosition moves a body. Unknown bodies are ignored.
func (w *World) SetPosition(b physics.Body, pos physics.Vec) {
	if body, ok := w.bodies[b]; ok {
		body.Pos = pos
	}
}

// Body returns the record for b, or nil once destroyed.
func (w *World) Body(b physics.Body) *Body {
	return w.bodies[b]
}

// Collider returns the record for c, or nil once removed.
func (w *World) Collider(c physics.Collider) *Collider {
	return w.colliders[c]
}

// Bodies returns the number of live bodies.
func (w *World) Bodies() int {
	return len(w.bodies)
}

// Colliders returns the number of live colliders.
func (w *World) Colliders() int {
	return len(w.colliders)
}

func (w *World) add(b *Body) physics.Body {
	w.nextBody++
	w.bodies[w.nextBody] = b
	return w.nextBody
}

func (w *World) attach(b physics.Body, c *Collider) physics.Collider {
	body, ok := w.bodies[b]
	if !ok {
		return 0
	}
	c.Owner = b
	w.nextCollider++
	w.colliders[w.nextCollider] = c
	body.Colliders = append(body.Colliders, w.nextCollider)
	return w.nextCollider
}
