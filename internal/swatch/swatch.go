// Package swatch reads HCL swatch files: named colors written as hex codes,
// hsv()/rgb() calls or references to earlier swatches.
package swatch

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/huepick/internal/color"
	"github.com/jsvensson/huepick/internal/picker"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Meta holds library metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
}

// Swatch is a named color.
type Swatch struct {
	Name  string
	Color picker.Color

	// Range covers the color expression in the source file.
	Range hcl.Range
	// Literal is true when the color is written as a plain hex string.
	Literal bool
}

// Library is a decoded swatch file. Swatches keep their source order.
type Library struct {
	Meta     Meta
	Swatches []Swatch
}

// Lookup returns the swatch with the given name.
func (l *Library) Lookup(name string) (Swatch, bool) {
	for _, s := range l.Swatches {
		if s.Name == name {
			return s, true
		}
	}
	return Swatch{}, false
}

type fileSchema struct {
	Meta     *Meta         `hcl:"meta,block"`
	Swatches []swatchBlock `hcl:"swatch,block"`
}

type swatchBlock struct {
	Name     string         `hcl:"name,label"`
	Color    hcl.Expression `hcl:"color"`
	Alpha    hcl.Expression `hcl:"alpha,optional"`
	DefRange hcl.Range      `hcl:",def_range"`
}

// Load reads and decodes a swatch file.
func Load(path string) (*Library, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading swatch file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes swatch file content. Any error diagnostic fails the parse.
func Parse(src []byte, filename string) (*Library, error) {
	lib, diags := Decode(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}
	return lib, nil
}

// Decode decodes as much of a swatch file as it can and reports every
// problem it finds. Swatches with errors are left out of the library.
func Decode(src []byte, filename string) (*Library, hcl.Diagnostics) {
	lib := &Library{}

	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return lib, diags
	}

	var raw fileSchema
	if more := gohcl.DecodeBody(file.Body, nil, &raw); more.HasErrors() {
		return lib, append(diags, more...)
	}
	if raw.Meta != nil {
		lib.Meta = *raw.Meta
	}

	// Swatches are evaluated in source order so each one can reference
	// the ones above it.
	seen := make(map[string]hcl.Range, len(raw.Swatches))
	for _, block := range raw.Swatches {
		if prev, dup := seen[block.Name]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate swatch",
				Detail:   fmt.Sprintf("A swatch named %q was already defined at %s.", block.Name, prev),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		seen[block.Name] = block.DefRange

		s, more := decodeSwatch(block, buildEvalContext(lib.Swatches))
		diags = append(diags, more...)
		if more.HasErrors() {
			continue
		}
		lib.Swatches = append(lib.Swatches, s)
	}

	return lib, diags
}

func decodeSwatch(block swatchBlock, ctx *hcl.EvalContext) (Swatch, hcl.Diagnostics) {
	// gohcl fills an absent attribute with a null expression over an empty
	// range, so a missing color is reported against the block header.
	if isAbsent(block.Color) {
		return Swatch{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Missing required argument",
			Detail:   fmt.Sprintf("swatch %q: the \"color\" attribute is required", block.Name),
			Subject:  block.DefRange.Ptr(),
		}}
	}

	val, diags := block.Color.Value(ctx)
	if diags.HasErrors() {
		return Swatch{}, diags
	}

	rng := block.Color.Range()
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return Swatch{}, append(diags, invalidColor(rng, fmt.Sprintf("swatch %q: expected a hex string, got %s", block.Name, val.Type().FriendlyName())))
	}

	rgb, alpha, err := color.ParseHex(val.AsString())
	if err != nil {
		return Swatch{}, append(diags, invalidColor(rng, fmt.Sprintf("swatch %q: %s", block.Name, err)))
	}

	alphaVal, more := block.Alpha.Value(ctx)
	diags = append(diags, more...)
	if more.HasErrors() {
		return Swatch{}, diags
	}
	if !alphaVal.IsNull() {
		if err := gocty.FromCtyValue(alphaVal, &alpha); err != nil {
			return Swatch{}, append(diags, invalidAlpha(block.Alpha.Range(), fmt.Sprintf("swatch %q: %s", block.Name, err)))
		}
		if alpha < 0 || alpha > 1 {
			return Swatch{}, append(diags, invalidAlpha(block.Alpha.Range(), fmt.Sprintf("swatch %q: alpha must be between 0 and 1, got %g", block.Name, alpha)))
		}
	}

	return Swatch{
		Name:    block.Name,
		Color:   picker.FromRGB(rgb, alpha),
		Range:   rng,
		Literal: isLiteral(block.Color),
	}, diags
}

// isAbsent reports whether expr stands in for an attribute missing from
// the block.
func isAbsent(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	if _, ok := expr.(hclsyntax.Expression); ok {
		return false
	}
	val, diags := expr.Value(nil)
	return !diags.HasErrors() && val.IsNull()
}

// isLiteral reports whether expr is a quoted string with no interpolation.
func isLiteral(expr hcl.Expression) bool {
	tmpl, ok := expr.(*hclsyntax.TemplateExpr)
	return ok && tmpl.IsStringLiteral()
}

func invalidColor(rng hcl.Range, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid color",
		Detail:   detail,
		Subject:  rng.Ptr(),
	}
}

func invalidAlpha(rng hcl.Range, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid alpha",
		Detail:   detail,
		Subject:  rng.Ptr(),
	}
}
