package common

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor accepts "#rrggbb", "#rrggbbaa" or a CSS colour name such as
// "gray" or "lightgreen".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}

	if !strings.HasPrefix(s, "#") {
		name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
		c, ok := colornames.Map[name]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color name: %s", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
	}

	a := uint8(255)
	if len(hex) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// ColorOr parses s and falls back to def when s is empty or invalid.
func ColorOr(s string, def color.NRGBA) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return def
	}
	return c
}

// HexColor formats c as "#rrggbb", or "#rrggbbaa" when not opaque.
func HexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
