package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is a color in the RGB colorspace. Each channel is a fraction of 255 in
// the [0, 1] range.
type RGB struct {
	R, G, B float64
}

// HSV is a color in the HSV colorspace. Each component is in the [0, 1] range;
// H is a fraction of the full hue circle, not degrees.
type HSV struct {
	H, S, V float64
}

// HSVToRGB converts an HSV triple to RGB using the six-sector algorithm.
// Inputs are expected in [0, 1]; out-of-range values are not clamped and give
// unspecified results.
func HSVToRGB(h, s, v float64) RGB {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch sector(i) {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	default:
		return RGB{v, p, q}
	}
}

// sector reduces floor(h*6) to 0..5. h == 1 lands on 6 and wraps to 0.
// NaN and infinities fall through to sector 0.
func sector(i float64) int {
	if math.IsNaN(i) || math.IsInf(i, 0) {
		return 0
	}
	n := int(math.Mod(i, 6))
	if n < 0 {
		n += 6
	}
	return n
}

// RGBToHSV converts an RGB triple to HSV. Gray values (including black) have
// no defined hue and report h = 0, s = 0.
func RGBToHSV(r, g, b float64) HSV {
	v := math.Max(math.Max(r, g), b)
	diff := v - math.Min(math.Min(r, g), b)
	if diff == 0 {
		return HSV{H: 0, S: 0, V: v}
	}

	term := func(c float64) float64 {
		return (v-c)/(6*diff) + 0.5
	}

	var h float64
	switch {
	case v != r && v == g:
		h = 1.0/3.0 + term(r) - term(b)
	case v != r && v == b:
		h = 2.0/3.0 + term(g) - term(r)
	default:
		// r is the maximum. Also the fallback if v matches no channel, so
		// h is always assigned.
		h = term(b) - term(g)
	}

	if h < 0 {
		h++
	} else if h > 1 {
		h--
	}

	return HSV{H: h, S: diff / v, V: v}
}

// RGB returns the RGB projection of the color.
func (c HSV) RGB() RGB {
	return HSVToRGB(c.H, c.S, c.V)
}

// HSV returns the HSV projection of the color.
func (c RGB) HSV() HSV {
	return RGBToHSV(c.R, c.G, c.B)
}

// Hex returns the color as an uppercase hex string, e.g. "#EB6F92".
func (c RGB) Hex() string {
	return ToHex(c.R, c.G, c.B)
}

// String returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", byteOf(c.R), byteOf(c.G), byteOf(c.B))
}

// String returns the color in degrees and percentages, e.g. "hsv(343°, 53%, 92%)".
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d°, %d%%, %d%%)",
		int(math.Round(c.H*360)), int(math.Round(c.S*100)), int(math.Round(c.V*100)))
}

// ToHex encodes each channel as round(c*255) in two uppercase hex digits and
// joins them behind a "#". Channels are not clamped; callers keep them in [0, 1].
func ToHex(channels ...float64) string {
	var sb strings.Builder
	sb.Grow(1 + 2*len(channels))
	sb.WriteByte('#')
	for _, c := range channels {
		sb.WriteString(hexByte(c))
	}
	return sb.String()
}

// RGBAHex returns "#RRGGBBAA": the RGB hex of c followed by the alpha byte.
func RGBAHex(c RGB, alpha float64) string {
	return c.Hex() + hexByte(alpha)
}

func hexByte(c float64) string {
	return fmt.Sprintf("%02X", byteOf(c))
}

func byteOf(c float64) int {
	return int(math.Round(c * 255))
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (leading # optional, any case).
// The alpha is 1 when the string has no alpha byte.
func ParseHex(s string) (RGB, float64, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return RGB{}, 0, fmt.Errorf("invalid hex color %q: must be 6 or 8 hex digits", s)
	}

	var channels [4]float64
	channels[3] = 1
	for i := 0; i < len(digits)/2; i++ {
		n, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		channels[i] = float64(n) / 255
	}

	return RGB{channels[0], channels[1], channels[2]}, channels[3], nil
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
