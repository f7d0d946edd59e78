package overlay

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD is the per-frame status line.
type HUD struct {
	Level   int
	Name    string
	Spawned int
	Goal    int
	// Remaining is the time left when the level has a limit.
	Remaining time.Duration
	Limited   bool
	Paused    bool
}

func (h HUD) Lines() []string {
	if h.Level <= 0 {
		return nil
	}
	title := fmt.Sprintf("Level %d", h.Level)
	if h.Name != "" {
		title += ": " + h.Name
	}
	lines := []string{title, fmt.Sprintf("Sugar %d/%d", h.Spawned, h.Goal)}
	if h.Limited {
		secs := int((h.Remaining + time.Second - 1) / time.Second)
		if secs < 0 {
			secs = 0
		}
		lines = append(lines, fmt.Sprintf("Time %d:%02d", secs/60, secs%60))
	}
	if h.Paused {
		lines = append(lines, "Paused")
	}
	return lines
}

func (h HUD) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	for i, line := range h.Lines() {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}
}
