package session

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sugarpop/entity"
	"github.com/milk9111/sugarpop/levels"
	"github.com/milk9111/sugarpop/overlay"
)

// Draw renders the level and the message overlay.
func (s *Session) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	entity.DrawAll(screen, s.statics)
	entity.DrawAll(screen, s.buckets)
	entity.DrawAll(screen, s.drawnLines)
	if s.current != nil {
		s.current.Draw(screen)
	}
	entity.DrawAll(screen, s.grains)
	s.msg.Draw(screen)
}

// HUD describes the current level for the status line.
func (s *Session) HUD() overlay.HUD {
	if s.def == nil {
		return overlay.HUD{}
	}
	h := overlay.HUD{
		Level:   s.index,
		Name:    s.def.Name,
		Spawned: s.spawned,
		Goal:    s.def.GrainGoal,
	}
	if rem, ok := s.timers.Remaining(timerTimeout, s.now()); ok {
		h.Limited = true
		h.Remaining = rem
	}
	return h
}

func (s *Session) State() State                     { return s.state }
func (s *Session) LevelIndex() int                  { return s.index }
func (s *Session) Definition() *levels.Definition   { return s.def }
func (s *Session) Complete() bool                   { return s.complete }
func (s *Session) Spawned() int                     { return s.spawned }
func (s *Session) Ticks() int                       { return s.ticks }
func (s *Session) Events() *EventQueue              { return &s.events }
func (s *Session) Overlay() *overlay.MessageOverlay { return s.msg }
func (s *Session) Grains() []*entity.SugarGrain     { return s.grains }
func (s *Session) Buckets() []*entity.Bucket        { return s.buckets }
func (s *Session) Statics() []*entity.StaticSegment { return s.statics }
func (s *Session) DrawnLines() []*entity.DynamicLine {
	return s.drawnLines
}
func (s *Session) CurrentLine() *entity.DynamicLine { return s.current }
