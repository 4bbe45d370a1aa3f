package swatch

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/huepick/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// unitParams declares numeric parameters; unitArgs enforces their [0, 1] range.
func unitParams(names ...string) []function.Parameter {
	params := make([]function.Parameter, len(names))
	for i, name := range names {
		params[i] = function.Parameter{Name: name, Type: cty.Number}
	}
	return params
}

// unitArgs converts numeric arguments to float64, rejecting values outside [0, 1].
func unitArgs(args []cty.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, _ := arg.AsBigFloat().Float64()
		if f < 0 || f > 1 {
			return nil, function.NewArgErrorf(i, "must be between 0 and 1, got %g", f)
		}
		out[i] = f
	}
	return out, nil
}

// makeHSVFunc creates an HCL function returning the hex of an HSV color.
// Usage: hsv(0.5, 1, 1)
func makeHSVFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the hex code of a color given as hue, saturation and value fractions",
		Params:      unitParams("h", "s", "v"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			f, err := unitArgs(args)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(color.HSVToRGB(f[0], f[1], f[2]).Hex()), nil
		},
	})
}

// makeRGBFunc creates an HCL function returning the hex of an RGB color.
// Usage: rgb(1, 0.5, 0)
func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the hex code of a color given as red, green and blue fractions",
		Params:      unitParams("r", "g", "b"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			f, err := unitArgs(args)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(color.ToHex(f[0], f[1], f[2])), nil
		},
	})
}

// makeAdjustFunc creates brighten/darken. An alpha byte on the input is kept.
// Usage: brighten("#hex", 0.1) or darken(swatch.ink, 0.2)
func makeAdjustFunc(description string, adjust func(color.RGB, float64) color.RGB) function.Function {
	return function.New(&function.Spec{
		Description: description,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			hex := args[0].AsString()
			amount, _ := args[1].AsBigFloat().Float64()

			c, alpha, err := color.ParseHex(hex)
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}

			adjusted := adjust(c, amount)
			if alpha < 1 {
				return cty.StringVal(color.RGBAHex(adjusted, alpha)), nil
			}
			return cty.StringVal(adjusted.Hex()), nil
		},
	})
}

// Functions returns the functions available in swatch files.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"hsv":      makeHSVFunc(),
		"rgb":      makeRGBFunc(),
		"brighten": makeAdjustFunc("Raises the HSV value of a color by the given amount", color.Brighten),
		"darken":   makeAdjustFunc("Lowers the HSV value of a color by the given amount", color.Darken),
	}
}

// buildEvalContext creates an HCL evaluation context exposing earlier swatches
// as swatch.<name> and the color functions.
func buildEvalContext(defined []Swatch) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(defined))
	for _, s := range defined {
		vals[s.Name] = cty.StringVal(s.Color.RGBHex())
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"swatch": cty.ObjectVal(vals),
		},
		Functions: Functions(),
	}
}
