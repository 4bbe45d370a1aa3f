package lsp

import (
	"testing"

	"github.com/jsvensson/huepick/internal/color"
	"github.com/jsvensson/huepick/internal/picker"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestColorToLSP(t *testing.T) {
	tests := []struct {
		name  string
		input picker.Color
		want  protocol.Color
	}{
		{
			name:  "pure red",
			input: picker.FromRGB(color.RGB{R: 1, G: 0, B: 0}, 1),
			want:  protocol.Color{Red: 1.0, Green: 0.0, Blue: 0.0, Alpha: 1.0},
		},
		{
			name:  "translucent blue",
			input: picker.FromRGB(color.RGB{R: 0, G: 0, B: 1}, 0.5),
			want:  protocol.Color{Red: 0.0, Green: 0.0, Blue: 1.0, Alpha: 0.5},
		},
		{
			name:  "default picker color",
			input: picker.Default(),
			want:  protocol.Color{Red: 1.0, Green: 0.0, Blue: 0.0, Alpha: 1.0},
		},
		{
			name:  "mid gray",
			input: picker.FromRGB(color.RGB{R: 0.5, G: 0.5, B: 0.5}, 1),
			want:  protocol.Color{Red: 0.5, Green: 0.5, Blue: 0.5, Alpha: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorToLSP(tt.input); got != tt.want {
				t.Errorf("colorToLSP() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColorFromLSP_Clamps(t *testing.T) {
	got := colorFromLSP(protocol.Color{Red: 1.5, Green: -0.5, Blue: 0, Alpha: 2})
	if hex := got.RGBAHex(); hex != "#FF0000FF" {
		t.Errorf("colorFromLSP() = %s, want #FF0000FF", hex)
	}
}

func TestDocumentColors(t *testing.T) {
	result := Analyze("test.swatch", analyzerDoc)
	infos := documentColors(result)

	if len(infos) != 3 {
		t.Fatalf("got %d color infos, want 3", len(infos))
	}
	if infos[1].Color.Alpha != 0.5 {
		t.Errorf("veil alpha = %v, want 0.5", infos[1].Color.Alpha)
	}
	for i, info := range infos {
		if info.Range != result.Colors[i].Range {
			t.Errorf("info %d range = %v, want %v", i, info.Range, result.Colors[i].Range)
		}
	}
}

func TestDocumentColors_NilResult(t *testing.T) {
	infos := documentColors(nil)
	if infos == nil || len(infos) != 0 {
		t.Errorf("documentColors(nil) = %v, want empty non-nil slice", infos)
	}
}

func TestColorPresentation_HexLiteral(t *testing.T) {
	content := "swatch \"base\" {\n  color = \"#191724\"\n}\n"
	rng := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 10},
		End:   protocol.Position{Line: 1, Character: 19},
	}

	tests := []struct {
		name    string
		color   protocol.Color
		label   string
		newText string
	}{
		{
			name:    "opaque",
			color:   protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
			label:   "#FF0000",
			newText: "\"#FF0000\"",
		},
		{
			name:    "translucent",
			color:   protocol.Color{Red: 0, Green: 1, Blue: 0, Alpha: 0.5},
			label:   "#00FF0080",
			newText: "\"#00FF0080\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &protocol.ColorPresentationParams{Color: tt.color, Range: rng}
			presentations := colorPresentation(content, params)

			if len(presentations) != 2 {
				t.Fatalf("expected 2 presentations for hex literal, got %d", len(presentations))
			}

			p := presentations[0]
			if p.Label != tt.label {
				t.Errorf("Label = %q, want %q", p.Label, tt.label)
			}
			if p.TextEdit == nil {
				t.Fatal("expected non-nil TextEdit for hex literal")
			}
			if p.TextEdit.NewText != tt.newText {
				t.Errorf("NewText = %q, want %q", p.TextEdit.NewText, tt.newText)
			}
			if p.TextEdit.Range != rng {
				t.Errorf("TextEdit range = %v, want %v", p.TextEdit.Range, rng)
			}
			if presentations[1].TextEdit != nil {
				t.Error("hsv presentation should not carry an edit")
			}
		})
	}
}

func TestColorPresentation_Reference(t *testing.T) {
	content := "swatch \"copy\" {\n  color = swatch.base\n}\n"
	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 0, Green: 0.5, Blue: 0.5, Alpha: 1},
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 10},
			End:   protocol.Position{Line: 1, Character: 21},
		},
	}

	presentations := colorPresentation(content, params)
	if len(presentations) != 1 {
		t.Fatalf("expected 1 presentation for reference, got %d", len(presentations))
	}
	if presentations[0].TextEdit != nil {
		t.Error("references must not be rewritten")
	}
	if want := "hsv(0.5, 1, 0.5)"; presentations[0].Label != want {
		t.Errorf("Label = %q, want %q", presentations[0].Label, want)
	}
}

func TestColorPresentation_Integration(t *testing.T) {
	result := Analyze("test.swatch", analyzerDoc)
	infos := documentColors(result)

	for i, cl := range result.Colors {
		params := &protocol.ColorPresentationParams{
			Color: infos[i].Color,
			Range: infos[i].Range,
		}

		presentations := colorPresentation(analyzerDoc, params)
		hasEdit := len(presentations) > 0 && presentations[0].TextEdit != nil
		if hasEdit == cl.IsRef {
			t.Errorf("color %d (ref=%v): edit offered = %v", i, cl.IsRef, hasEdit)
		}
	}
}

func TestHSVCall_RoundTrip(t *testing.T) {
	c := picker.FromRGB(color.RGB{R: 0, G: 0.5, B: 0.5}, 1)
	if got, want := hsvCall(c), "hsv(0.5, 1, 0.5)"; got != want {
		t.Errorf("hsvCall() = %q, want %q", got, want)
	}
}
