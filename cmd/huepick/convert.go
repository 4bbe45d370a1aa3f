package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsvensson/huepick/internal/color"
	"github.com/jsvensson/huepick/internal/picker"
	"github.com/spf13/cobra"
)

var (
	flagHSV    string
	flagRGB    string
	flagHex    string
	flagAlpha  float64
	flagCanvas string
	flagSet    []string
	flagSteps  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a color between HSV, RGB and hex",
	Long: `Convert a color between HSV, RGB and hex.

Exactly one of --hsv, --rgb or --hex sets the color. HSV takes slider
units (hue 0-360, saturation and value 0-100), RGB takes 0-255 per channel
and --alpha takes 0-100. --canvas x,y,width,height then picks saturation
and value from a point on the picker canvas, keeping the hue.

--set CH=N moves a single slider afterwards (channels H, S, V, R, G, B, A in
the same units) and may be repeated.`,
	Example: `  huepick convert --hsv 343,53,92
  huepick convert --hex "#EB6F92" --alpha 50
  huepick convert --rgb 0,128,128 --canvas 40,10,200,100
  huepick convert --hex "#EB6F92" --set H=200 --set A=80`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&flagHSV, "hsv", "", "hue,saturation,value in slider units")
	convertCmd.Flags().StringVar(&flagRGB, "rgb", "", "red,green,blue in 0-255")
	convertCmd.Flags().StringVar(&flagHex, "hex", "", "#RRGGBB or #RRGGBBAA")
	convertCmd.Flags().Float64Var(&flagAlpha, "alpha", -1, "alpha in 0-100")
	convertCmd.Flags().StringVar(&flagCanvas, "canvas", "", "x,y,width,height point on the picker canvas")
	convertCmd.Flags().StringArrayVar(&flagSet, "set", nil, "CH=N slider position, repeatable")
	convertCmd.Flags().BoolVar(&flagSteps, "steps", false, "print the color after every write")
	convertCmd.MarkFlagsMutuallyExclusive("hsv", "rgb", "hex")
	convertCmd.MarkFlagsOneRequired("hsv", "rgb", "hex")
}

func runConvert(cmd *cobra.Command, args []string) error {
	store := picker.NewStore()
	out := cmd.OutOrStdout()

	if flagSteps {
		cancel := store.Subscribe(func(c picker.Color) {
			fmt.Fprintf(out, "-> %s %s\n", c.RGBAHex(), c.HSV())
		})
		defer cancel()
	}

	if err := applyInput(store, input{
		hsv:    flagHSV,
		rgb:    flagRGB,
		hex:    flagHex,
		alpha:  flagAlpha,
		sets:   flagSet,
		canvas: flagCanvas,
	}); err != nil {
		return err
	}

	describe(out, store.Color())
	return nil
}

type input struct {
	hsv, rgb, hex string
	alpha         float64 // negative when unset
	sets          []string
	canvas        string
}

// applyInput writes the requested color into store the way the picker
// controls would: one slider at a time, then any --set sliders, then the canvas.
func applyInput(store *picker.Store, in input) error {
	switch {
	case in.hsv != "":
		vals, err := parseList(in.hsv, 3)
		if err != nil {
			return fmt.Errorf("parsing --hsv: %w", err)
		}
		for i, ch := range []picker.Channel{picker.Hue, picker.Saturation, picker.Value} {
			store.SetSlider(ch, vals[i])
		}
	case in.rgb != "":
		vals, err := parseList(in.rgb, 3)
		if err != nil {
			return fmt.Errorf("parsing --rgb: %w", err)
		}
		// One write, so the hue is derived from the final color only.
		store.WriteRGB(vals[0]/255, vals[1]/255, vals[2]/255)
	case in.hex != "":
		rgb, alpha, err := color.ParseHex(in.hex)
		if err != nil {
			return fmt.Errorf("parsing --hex: %w", err)
		}
		store.Set(picker.FromRGB(rgb, alpha))
	default:
		return errors.New("one of --hsv, --rgb or --hex is required")
	}

	if in.alpha >= 0 {
		store.SetSlider(picker.Alpha, in.alpha)
	}

	for _, set := range in.sets {
		ch, n, err := parseSet(set)
		if err != nil {
			return fmt.Errorf("parsing --set: %w", err)
		}
		store.SetSlider(ch, n)
	}

	if in.canvas != "" {
		vals, err := parseList(in.canvas, 4)
		if err != nil {
			return fmt.Errorf("parsing --canvas: %w", err)
		}
		if vals[2] <= 0 || vals[3] <= 0 {
			return errors.New("parsing --canvas: width and height must be positive")
		}
		store.PickCanvas(vals[0], vals[1], vals[2], vals[3])
	}

	return nil
}

// parseList parses exactly n comma-separated numbers.
func parseList(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}

	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		vals[i] = v
	}
	return vals, nil
}

// parseSet parses "CH=N", e.g. "H=120" or "a=50".
func parseSet(s string) (picker.Channel, float64, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("want CH=N, got %q", s)
	}
	ch, err := picker.ParseChannel(strings.TrimSpace(name))
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q", value)
	}
	return ch, n, nil
}

// chip renders c as a small block of terminal background color. Terminals
// without color support get plain spaces.
func chip(c picker.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.RGBHex())).Render("    ")
}

func describe(w io.Writer, c picker.Color) {
	fmt.Fprintf(w, "Color    %s\n", chip(c))
	fmt.Fprintf(w, "HSV      %s\n", c.HSV())
	fmt.Fprintf(w, "RGB      %s\n", c.RGB())
	fmt.Fprintf(w, "Hex      %s\n", c.RGBHex())
	fmt.Fprintf(w, "RGBA     %s\n", c.RGBAHex())
	fmt.Fprintf(w, "Hue      %s\n", c.HueHex())

	sliders := make([]string, 0, len(picker.Channels))
	for _, ch := range picker.Channels {
		sliders = append(sliders, fmt.Sprintf("%s=%d", ch, picker.SliderValue(c, ch)))
	}
	fmt.Fprintf(w, "Sliders  %s\n", strings.Join(sliders, " "))

	x, y := picker.CanvasMarker(c)
	fmt.Fprintf(w, "Canvas   x=%.3f y=%.3f\n", x, y)
}
