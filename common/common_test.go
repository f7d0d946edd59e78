package common

import (
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"hex", "#90ee90", color.NRGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}, false},
		{"hex_alpha", "#ff000080", color.NRGBA{R: 0xff, A: 0x80}, false},
		{"name", "gray", color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, false},
		{"name_mixed_case", "LightGreen", color.NRGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}, false},
		{"empty", "", color.NRGBA{}, true},
		{"bad_hex", "#12345", color.NRGBA{}, true},
		{"bad_digits", "#zzzzzz", color.NRGBA{}, true},
		{"unknown_name", "sugarpink", color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestColorOr(t *testing.T) {
	def := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	if got := ColorOr("nope", def); got != def {
		t.Fatalf("expected fallback, got %v", got)
	}
	if got := ColorOr("white", def); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("expected white, got %v", got)
	}
}

func TestClampStep(t *testing.T) {
	cases := []struct {
		name string
		dt   float64
		want float64
	}{
		{"normal", 0.01, 0.01},
		{"long_frame", 2.5, MaxTimeStep},
		{"exact", MaxTimeStep, MaxTimeStep},
		{"negative", -1, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), MaxTimeStep},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClampStep(c.dt, MaxTimeStep); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	for _, in := range []string{"#90ee90", "#ff000080"} {
		c, err := ParseColor(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got := HexColor(c); got != in {
			t.Fatalf("HexColor = %q, want %q", got, in)
		}
	}
}
