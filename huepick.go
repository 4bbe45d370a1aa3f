package huepick

import (
	"fmt"

	"github.com/jsvensson/huepick/internal/picker"
	"github.com/jsvensson/huepick/internal/swatch"
)

// Library is a fully-resolved swatch file, ready for template rendering.
type Library struct {
	Meta     Meta
	Swatches []Swatch
}

// Meta holds library metadata.
type Meta struct {
	Name   string
	Author string
}

// Swatch is a named picker color.
type Swatch struct {
	Name  string
	Color picker.Color
}

// Load parses an HCL swatch file and returns a fully-resolved Library.
func Load(path string) (*Library, error) {
	raw, err := swatch.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading swatches: %w", err)
	}

	lib := &Library{
		Meta: Meta{
			Name:   raw.Meta.Name,
			Author: raw.Meta.Author,
		},
		Swatches: make([]Swatch, 0, len(raw.Swatches)),
	}
	for _, s := range raw.Swatches {
		lib.Swatches = append(lib.Swatches, Swatch{Name: s.Name, Color: s.Color})
	}
	return lib, nil
}

// Color returns the color of the named swatch.
func (l *Library) Color(name string) (picker.Color, bool) {
	for _, s := range l.Swatches {
		if s.Name == name {
			return s.Color, true
		}
	}
	return picker.Color{}, false
}
