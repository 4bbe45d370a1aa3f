package engine

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/huepick"
	"github.com/jsvensson/huepick/internal/picker"
)

// Engine loads and executes Go templates against a swatch library.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Only         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the library as data, and writes output files.
func (e *Engine) Run(lib *huepick.Library) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	funcs := FuncMap(lib)
	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")
		if len(e.Only) > 0 && !slices.Contains(e.Only, baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, funcs, lib); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) renderTemplate(tmplPath, outputName string, funcs template.FuncMap, lib *huepick.Library) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(funcs).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	// Rendered in memory so a failing template leaves no partial file.
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, lib); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing output file %s: %w", outPath, err)
	}

	return nil
}

// FuncMap returns the template functions for lib.
//
//	hex   "#RRGGBB"
//	hexa  "#RRGGBBAA"
//	rgb   "rgb(r, g, b)"
//	hsv   "hsv(h°, s%, v%)"
//	hue   hex of the pure hue
//	alpha alpha as a fraction
//	swatch "name" looks up a swatch color; unknown names fail the render
func FuncMap(lib *huepick.Library) template.FuncMap {
	return template.FuncMap{
		"hex":   func(c picker.Color) string { return c.RGBHex() },
		"hexa":  func(c picker.Color) string { return c.RGBAHex() },
		"rgb":   func(c picker.Color) string { return c.RGB().String() },
		"hsv":   func(c picker.Color) string { return c.HSV().String() },
		"hue":   func(c picker.Color) string { return c.HueHex() },
		"alpha": func(c picker.Color) float64 { return c.Alpha() },
		"swatch": func(name string) (picker.Color, error) {
			c, ok := lib.Color(name)
			if !ok {
				return picker.Color{}, fmt.Errorf("swatch %q not found", name)
			}
			return c, nil
		},
	}
}
