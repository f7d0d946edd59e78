// Package overlay draws timed notices and the heads-up display.
package overlay

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/sugarpop/common"
	"golang.org/x/image/font/basicfont"
)

const fadeOut = 250 * time.Millisecond

// Options configures a MessageOverlay.
type Options struct {
	// Scale multiplies the 7x13 base font.
	Scale float64
	Color color.Color
	// Width and Height are the play field size used for centring.
	Width, Height float64
	// Now overrides the wall clock, for tests.
	Now func() time.Time
}

// MessageOverlay shows at most one message until its expiry.
type MessageOverlay struct {
	text    string
	shownAt time.Time
	expiry  time.Time
	active  bool

	now  func() time.Time
	face text.Face
	opts Options
}

func NewMessageOverlay(opts Options) *MessageOverlay {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Color == nil {
		opts.Color = color.White
	}
	if opts.Width <= 0 {
		opts.Width = common.BaseWidth
	}
	if opts.Height <= 0 {
		opts.Height = common.BaseHeight
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &MessageOverlay{
		now:  now,
		face: text.NewGoXFace(basicfont.Face7x13),
		opts: opts,
	}
}

// Show replaces any pending message.
func (m *MessageOverlay) Show(msg string, d time.Duration) {
	now := m.now()
	m.text = msg
	m.shownAt = now
	m.expiry = now.Add(d)
	m.active = true
}

// Clear drops the current message.
func (m *MessageOverlay) Clear() {
	m.text = ""
	m.active = false
}

// Update expires the message once its duration has passed.
func (m *MessageOverlay) Update() {
	if m.active && !m.now().Before(m.expiry) {
		m.Clear()
	}
}

// Current returns the visible message, if any.
func (m *MessageOverlay) Current() (string, bool) {
	if !m.active {
		return "", false
	}
	return m.text, true
}

// alpha fades the message out over its last quarter second.
func (m *MessageOverlay) alpha() float32 {
	left := m.expiry.Sub(m.now())
	if left >= fadeOut {
		return 1
	}
	if left <= 0 {
		return 0
	}
	return common.Lerp(0, 1, float32(left)/float32(fadeOut))
}

func (m *MessageOverlay) Draw(screen *ebiten.Image) {
	if screen == nil || !m.active {
		return
	}
	w, h := text.Measure(m.text, m.face, 0)
	w *= m.opts.Scale
	h *= m.opts.Scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(m.opts.Scale, m.opts.Scale)
	op.GeoM.Translate((m.opts.Width-w)/2, (m.opts.Height-h)/2)
	op.ColorScale.ScaleWithColor(m.opts.Color)
	op.ColorScale.ScaleAlpha(m.alpha())
	text.Draw(screen, m.text, m.face, op)
}
