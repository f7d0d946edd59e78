// Package input polls the mouse and keyboard once per frame.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State is one frame of input.
type State struct {
	// CursorX/Y are the cursor position in play field pixels.
	CursorX float64
	CursorY float64
	// PointerPressed is true on the frame the left button went down.
	PointerPressed bool
	// PointerHeld is true while the left button stays down after the press frame.
	PointerHeld bool
	// PointerReleased is true on the frame the left button came up.
	PointerReleased bool

	Pause       bool
	Quit        bool
	Restart     bool
	Export      bool
	ToggleDebug bool
}

// PointerTarget receives the drag pipeline.
type PointerTarget interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
}

// Input holds the latest polled state.
type Input struct {
	State
}

func NewInput() *Input {
	return &Input{}
}

// Update polls ebiten for this frame.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.CursorX = float64(mx)
	i.CursorY = float64(my)

	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.PointerPressed = pressed
	i.PointerHeld = !pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.PointerReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.Export = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.ToggleDebug = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// Dispatch feeds the pointer part of s to t.
func (s State) Dispatch(t PointerTarget) {
	if t == nil {
		return
	}
	switch {
	case s.PointerPressed:
		t.PointerDown(s.CursorX, s.CursorY)
	case s.PointerHeld:
		t.PointerMove(s.CursorX, s.CursorY)
	}
	if s.PointerReleased {
		t.PointerUp()
	}
}
