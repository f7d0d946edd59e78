// Package entity wraps physics bodies with the game objects that own them.
package entity

import "github.com/hajimehoshi/ebiten/v2"

// Entity is anything the session owns that can be drawn and released.
// Delete must be safe to call more than once.
type Entity interface {
	Draw(screen *ebiten.Image)
	Delete()
}

var (
	_ Entity = (*SugarGrain)(nil)
	_ Entity = (*StaticSegment)(nil)
	_ Entity = (*DynamicLine)(nil)
	_ Entity = (*Bucket)(nil)
)

// DeleteAll releases every entity in list.
func DeleteAll[T Entity](list []T) {
	for _, e := range list {
		e.Delete()
	}
}

// DrawAll draws every entity in list.
func DrawAll[T Entity](screen *ebiten.Image, list []T) {
	for _, e := range list {
		e.Draw(screen)
	}
}
