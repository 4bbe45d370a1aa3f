package picker

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/huepick/internal/color"
)

// Channel identifies one slider of the picker.
type Channel int

const (
	Hue Channel = iota
	Saturation
	Value
	Red
	Green
	Blue
	Alpha
)

var channelNames = [...]string{"H", "S", "V", "R", "G", "B", "A"}

// Channels lists every slider in display order.
var Channels = []Channel{Hue, Saturation, Value, Red, Green, Blue, Alpha}

func (ch Channel) String() string {
	if ch < 0 || int(ch) >= len(channelNames) {
		return fmt.Sprintf("Channel(%d)", int(ch))
	}
	return channelNames[ch]
}

// Max is the slider range of the channel: degrees for hue, percent for
// saturation, value and alpha, bytes for RGB.
func (ch Channel) Max() int {
	switch ch {
	case Hue:
		return 360
	case Red, Green, Blue:
		return 255
	default:
		return 100
	}
}

// ParseChannel parses a channel name like "h" or "R".
func ParseChannel(s string) (Channel, error) {
	for i, name := range channelNames {
		if strings.EqualFold(s, name) {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q (valid: %s)", s, strings.Join(channelNames[:], ", "))
}

// Fraction returns the [0, 1] component of c that ch controls.
func (c Color) Fraction(ch Channel) float64 {
	switch ch {
	case Hue:
		return c.hsv.H
	case Saturation:
		return c.hsv.S
	case Value:
		return c.hsv.V
	case Red:
		return c.rgb.R
	case Green:
		return c.rgb.G
	case Blue:
		return c.rgb.B
	default:
		return c.alpha
	}
}

// SliderValue returns the slider position of ch for c.
func SliderValue(c Color, ch Channel) int {
	return int(math.Round(c.Fraction(ch) * float64(ch.Max())))
}

// SetSlider moves one slider to position n. The position is clamped to the
// channel range and written through the matching write path, so moving an
// RGB slider rederives HSV and vice versa.
func (s *Store) SetSlider(ch Channel, n float64) Color {
	f := color.Clamp(n/float64(ch.Max()), 0, 1)
	return s.update("slider "+ch.String(), func(c Color) Color {
		hsv, rgb := c.HSV(), c.RGB()
		switch ch {
		case Hue:
			return c.WithHSV(f, hsv.S, hsv.V)
		case Saturation:
			return c.WithHSV(hsv.H, f, hsv.V)
		case Value:
			return c.WithHSV(hsv.H, hsv.S, f)
		case Red:
			return c.WithRGB(f, rgb.G, rgb.B)
		case Green:
			return c.WithRGB(rgb.R, f, rgb.B)
		case Blue:
			return c.WithRGB(rgb.R, rgb.G, f)
		default:
			return c.WithAlpha(f)
		}
	})
}

// CanvasPick maps a point on the saturation/value canvas to (s, v).
// Saturation grows to the right and value grows upward; points outside the
// canvas are clamped to its edge. A canvas with no width or height collapses
// onto its top-left corner along that axis.
func CanvasPick(x, y, width, height float64) (sat, val float64) {
	return canvasFraction(x, width), 1 - canvasFraction(y, height)
}

func canvasFraction(p, size float64) float64 {
	if !(size > 0) || math.IsNaN(p) {
		return 0
	}
	return color.Clamp(p/size, 0, 1)
}

// PickCanvas writes the saturation and value under a canvas point, keeping
// the current hue.
func (s *Store) PickCanvas(x, y, width, height float64) Color {
	sat, val := CanvasPick(x, y, width, height)
	return s.WriteSV(sat, val)
}

// CanvasMarker returns the marker position for c as fractions of the canvas
// width and height, measured from the top-left corner.
func CanvasMarker(c Color) (x, y float64) {
	return c.hsv.S, 1 - c.hsv.V
}
