// Package picker holds the state of a color picker: one color exposed as
// synchronized HSV and RGB triples plus an independent alpha.
package picker

import "github.com/jsvensson/huepick/internal/color"

// Color is a picker color. HSV and RGB always describe the same point; the
// only way to change either is through the With* transitions, which rederive
// the other triple.
type Color struct {
	hsv   color.HSV
	rgb   color.RGB
	alpha float64
}

// Default returns opaque red, the initial picker color.
func Default() Color {
	return Color{
		hsv:   color.HSV{H: 0, S: 1, V: 1},
		rgb:   color.RGB{R: 1, G: 0, B: 0},
		alpha: 1,
	}
}

// FromRGB returns a color built from an RGB triple and alpha.
func FromRGB(rgb color.RGB, alpha float64) Color {
	return Color{alpha: alpha}.WithRGB(rgb.R, rgb.G, rgb.B)
}

// WithHSV returns c with the given HSV triple and the matching RGB triple.
func (c Color) WithHSV(h, s, v float64) Color {
	c.hsv = color.HSV{H: h, S: s, V: v}
	c.rgb = color.HSVToRGB(h, s, v)
	return c
}

// WithSV is WithHSV with the hue left as it is. Gray colors have no hue of
// their own, so this keeps the hue selected before saturation reached zero.
func (c Color) WithSV(s, v float64) Color {
	return c.WithHSV(c.hsv.H, s, v)
}

// WithRGB returns c with the given RGB triple and the matching HSV triple.
func (c Color) WithRGB(r, g, b float64) Color {
	c.rgb = color.RGB{R: r, G: g, B: b}
	c.hsv = color.RGBToHSV(r, g, b)
	return c
}

// WithAlpha returns c with a new alpha. HSV and RGB are untouched.
func (c Color) WithAlpha(a float64) Color {
	c.alpha = a
	return c
}

func (c Color) HSV() color.HSV { return c.hsv }
func (c Color) RGB() color.RGB { return c.rgb }
func (c Color) Alpha() float64 { return c.alpha }
func (c Color) RGBHex() string { return c.rgb.Hex() }
func (c Color) RGBAHex() string { return color.RGBAHex(c.rgb, c.alpha) }
func (c Color) String() string { return c.RGBAHex() }

// HueHex is the fully saturated, full value color at the current hue; the
// background of the saturation/value canvas.
func (c Color) HueHex() string {
	return color.HSVToRGB(c.hsv.H, 1, 1).Hex()
}
