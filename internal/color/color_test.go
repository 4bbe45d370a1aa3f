package color

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
)

const tolerance = 1e-9

var approx = cmpopts.EquateApprox(0, tolerance)

// hueDelta is the distance between two hues on the unit circle.
func hueDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func TestHSVToRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    RGB
	}{
		{"red", 0, 1, 1, RGB{1, 0, 0}},
		{"yellow", 1.0 / 6.0, 1, 1, RGB{1, 1, 0}},
		{"green", 1.0 / 3.0, 1, 1, RGB{0, 1, 0}},
		{"cyan", 0.5, 1, 1, RGB{0, 1, 1}},
		{"blue", 2.0 / 3.0, 1, 1, RGB{0, 0, 1}},
		{"magenta", 5.0 / 6.0, 1, 1, RGB{1, 0, 1}},
		{"full circle wraps to red", 1, 1, 1, RGB{1, 0, 0}},
		{"black", 0.4, 0.7, 0, RGB{0, 0, 0}},
		{"white", 0.4, 0, 1, RGB{1, 1, 1}},
		{"mid gray", 0.9, 0, 0.5, RGB{0.5, 0.5, 0.5}},
		{"half saturated orange", 1.0 / 12.0, 0.5, 1, RGB{1, 0.75, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVToRGB(tt.h, tt.s, tt.v)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("HSVToRGB(%v, %v, %v) mismatch (-want +got):\n%s", tt.h, tt.s, tt.v, diff)
			}
		})
	}
}

func TestHSVToRGB_HueWraparound(t *testing.T) {
	for _, sv := range [][2]float64{{1, 1}, {0.5, 0.8}, {0.25, 0.3}} {
		zero := HSVToRGB(0, sv[0], sv[1])
		full := HSVToRGB(1, sv[0], sv[1])
		if zero != full {
			t.Errorf("HSVToRGB(1, %v, %v) = %v, want %v", sv[0], sv[1], full, zero)
		}
	}
}

func TestHSVToRGB_OutOfDomainDoesNotPanic(t *testing.T) {
	inputs := [][3]float64{
		{-0.1, 1, 1},
		{2.5, 1, 1},
		{math.NaN(), 1, 1},
		{math.Inf(1), 1, 1},
		{math.Inf(-1), 0.5, 0.5},
		{0.5, math.NaN(), 1},
	}
	for _, in := range inputs {
		_ = HSVToRGB(in[0], in[1], in[2])
	}

	// A negative hue lands in the last sector.
	got := HSVToRGB(-1.0/12.0, 1, 1)
	want := RGB{1, 0, 0.5}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("HSVToRGB(-1/12, 1, 1) mismatch (-want +got):\n%s", diff)
	}
}

func TestRGBToHSV_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    HSV
	}{
		{"black", 0, 0, 0, HSV{0, 0, 0}},
		{"white", 1, 1, 1, HSV{0, 0, 1}},
		{"gray keeps no hue", 0.3, 0.3, 0.3, HSV{0, 0, 0.3}},
		{"red", 1, 0, 0, HSV{0, 1, 1}},
		{"green", 0, 1, 0, HSV{1.0 / 3.0, 1, 1}},
		{"blue", 0, 0, 1, HSV{2.0 / 3.0, 1, 1}},
		{"yellow ties to red branch", 1, 1, 0, HSV{1.0 / 6.0, 1, 1}},
		{"magenta", 1, 0, 1, HSV{5.0 / 6.0, 1, 1}},
		{"cyan", 0, 1, 1, HSV{0.5, 1, 1}},
		{"dark rose", 0.5, 0.25, 0.375, HSV{11.0 / 12.0, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.r, tt.g, tt.b)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("RGBToHSV(%v, %v, %v) mismatch (-want +got):\n%s", tt.r, tt.g, tt.b, diff)
			}
		})
	}
}

func TestRGBToHSV_HueInRange(t *testing.T) {
	steps := 17
	for ri := 0; ri <= steps; ri++ {
		for gi := 0; gi <= steps; gi++ {
			for bi := 0; bi <= steps; bi++ {
				r, g, b := float64(ri)/float64(steps), float64(gi)/float64(steps), float64(bi)/float64(steps)
				got := RGBToHSV(r, g, b)
				if got.H < 0 || got.H > 1 || got.S < 0 || got.S > 1 || got.V < 0 || got.V > 1 {
					t.Fatalf("RGBToHSV(%v, %v, %v) = %+v, want components in [0, 1]", r, g, b, got)
				}
			}
		}
	}
}

func TestRoundtrip_RGB(t *testing.T) {
	steps := 10
	for ri := 0; ri <= steps; ri++ {
		for gi := 0; gi <= steps; gi++ {
			for bi := 0; bi <= steps; bi++ {
				if ri == gi && gi == bi {
					continue
				}
				in := RGB{float64(ri) / float64(steps), float64(gi) / float64(steps), float64(bi) / float64(steps)}
				got := in.HSV().RGB()
				if diff := cmp.Diff(in, got, approx); diff != "" {
					t.Fatalf("RGB %v round trip mismatch (-want +got):\n%s", in, diff)
				}
			}
		}
	}
}

func TestRoundtrip_HSV(t *testing.T) {
	for hi := 0; hi < 20; hi++ {
		for si := 1; si <= 10; si++ {
			for vi := 1; vi <= 10; vi++ {
				in := HSV{float64(hi) / 20, float64(si) / 10, float64(vi) / 10}
				got := in.RGB().HSV()
				if hueDelta(in.H, got.H) > tolerance ||
					math.Abs(in.S-got.S) > tolerance ||
					math.Abs(in.V-got.V) > tolerance {
					t.Fatalf("HSV %+v round trip = %+v", in, got)
				}
			}
		}
	}
}

func TestRoundtrip_HSVWithoutSaturationDropsHue(t *testing.T) {
	for _, h := range []float64{0, 0.25, 0.5, 0.99} {
		got := HSV{h, 0, 0.6}.RGB().HSV()
		want := HSV{0, 0, 0.6}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("HSV{%v, 0, 0.6} round trip mismatch (-want +got):\n%s", h, diff)
		}
	}
}

func TestHSVToRGB_AgreesWithColorful(t *testing.T) {
	for hi := 0; hi < 24; hi++ {
		for _, s := range []float64{0, 0.3, 0.75, 1} {
			for _, v := range []float64{0.2, 0.6, 1} {
				h := float64(hi) / 24
				ref := colorful.Hsv(h*360, s, v)
				want := RGB{ref.R, ref.G, ref.B}
				got := HSVToRGB(h, s, v)
				if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
					t.Errorf("HSVToRGB(%v, %v, %v) disagrees with go-colorful (-want +got):\n%s", h, s, v, diff)
				}
			}
		}
	}
}

func TestRGBToHSV_AgreesWithColorful(t *testing.T) {
	colors := []RGB{
		{1, 0, 0},
		{0.2, 0.8, 0.4},
		{0.9, 0.1, 0.6},
		{0.1, 0.2, 0.95},
		{0.5, 0.5, 0.1},
	}
	for _, c := range colors {
		h, s, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
		got := c.HSV()
		if hueDelta(h/360, got.H) > 1e-6 || math.Abs(s-got.S) > 1e-6 || math.Abs(v-got.V) > 1e-6 {
			t.Errorf("RGBToHSV(%v) = %+v, go-colorful has h=%v s=%v v=%v", c, got, h/360, s, v)
		}
	}
}

func TestToHex(t *testing.T) {
	tests := []struct {
		name     string
		channels []float64
		want     string
	}{
		{"red", []float64{1, 0, 0}, "#FF0000"},
		{"black", []float64{0, 0, 0}, "#000000"},
		{"white", []float64{1, 1, 1}, "#FFFFFF"},
		{"zero padding", []float64{0, 5.0 / 255, 10.0 / 255}, "#00050A"},
		{"rounds to nearest", []float64{0.5, 0.2, 0.999}, "#8033FF"},
		{"four channels", []float64{1, 0, 0, 0.5}, "#FF000080"},
		{"no channels", nil, "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHex(tt.channels...); got != tt.want {
				t.Errorf("ToHex(%v) = %q, want %q", tt.channels, got, tt.want)
			}
		})
	}
}

func TestRGBAHex(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		alpha float64
		want  string
	}{
		{"half transparent red", RGB{1, 0, 0}, 0.5, "#FF000080"},
		{"opaque white", RGB{1, 1, 1}, 1, "#FFFFFFFF"},
		{"transparent black", RGB{0, 0, 0}, 0, "#00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBAHex(tt.color, tt.alpha); got != tt.want {
				t.Errorf("RGBAHex(%v, %v) = %q, want %q", tt.color, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      RGB
		wantAlpha float64
		wantErr   bool
	}{
		{"with hash", "#FF0000", RGB{1, 0, 0}, 1, false},
		{"without hash", "00FF00", RGB{0, 1, 0}, 1, false},
		{"lowercase", "#0000ff", RGB{0, 0, 1}, 1, false},
		{"with alpha", "#FFFFFF80", RGB{1, 1, 1}, 128.0 / 255, false},
		{"black", "#000000", RGB{0, 0, 0}, 1, false},
		{"too short", "#fff", RGB{}, 0, true},
		{"seven digits", "#FFFFFFF", RGB{}, 0, true},
		{"too long", "#FFFFFFFFFF", RGB{}, 0, true},
		{"invalid chars", "#zzzzzz", RGB{}, 0, true},
		{"signed byte", "#+1FFFF", RGB{}, 0, true},
		{"empty", "", RGB{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, alpha, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("ParseHex(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if math.Abs(alpha-tt.wantAlpha) > tolerance {
				t.Errorf("ParseHex(%q) alpha = %v, want %v", tt.input, alpha, tt.wantAlpha)
			}
		})
	}
}

func TestParseHex_RoundtripsHex(t *testing.T) {
	for _, s := range []string{"#EB6F92", "#31748F", "#9CCFD8", "#000000", "#FFFFFF"} {
		c, _, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("ParseHex(%q).Hex() = %q", s, got)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.2, 0, 1, 0},
		{1.7, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
		{300, 0, 255, 255},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestStringers(t *testing.T) {
	c := RGB{235.0 / 255, 111.0 / 255, 146.0 / 255}
	if got, want := c.String(), "rgb(235, 111, 146)"; got != want {
		t.Errorf("RGB.String() = %q, want %q", got, want)
	}
	if got, want := c.Hex(), "#EB6F92"; got != want {
		t.Errorf("RGB.Hex() = %q, want %q", got, want)
	}
	if got, want := (HSV{0, 1, 1}).String(), "hsv(0°, 100%, 100%)"; got != want {
		t.Errorf("HSV.String() = %q, want %q", got, want)
	}
	if got, want := (HSV{0.5, 0.25, 0.5}).String(), "hsv(180°, 25%, 50%)"; got != want {
		t.Errorf("HSV.String() = %q, want %q", got, want)
	}
}
