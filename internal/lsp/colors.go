package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/huepick/internal/color"
	"github.com/jsvensson/huepick/internal/picker"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a picker color to a protocol.Color.
func colorToLSP(c picker.Color) protocol.Color {
	rgb := c.RGB()
	return protocol.Color{
		Red:   float32(rgb.R),
		Green: float32(rgb.G),
		Blue:  float32(rgb.B),
		Alpha: float32(c.Alpha()),
	}
}

// colorFromLSP converts a protocol.Color to a picker color.
func colorFromLSP(c protocol.Color) picker.Color {
	rgb := color.RGB{
		R: color.Clamp(float64(c.Red), 0, 1),
		G: color.Clamp(float64(c.Green), 0, 1),
		B: color.Clamp(float64(c.Blue), 0, 1),
	}
	return picker.FromRGB(rgb, color.Clamp(float64(c.Alpha), 0, 1))
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// presentationHex is "#RRGGBB" for opaque colors and "#RRGGBBAA" otherwise.
func presentationHex(c picker.Color) string {
	if c.Alpha() < 1 {
		return c.RGBAHex()
	}
	return c.RGBHex()
}

// hsvCall writes c as an hsv() call that evaluates back to the same color.
func hsvCall(c picker.Color) string {
	hsv := c.HSV()
	return fmt.Sprintf("hsv(%.4g, %.4g, %.4g)", hsv.H, hsv.S, hsv.V)
}

// colorPresentation produces color presentation options for a given color and range.
// Quoted hex strings get a TextEdit that rewrites the literal in canonical
// form. Every expression also gets an hsv() call; the client inserts that
// label as is when it picks it.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorFromLSP(params.Color)
	text := extractText(content, params.Range)

	if !strings.HasPrefix(text, "\"") {
		return []protocol.ColorPresentation{{Label: hsvCall(c)}}
	}

	hexStr := presentationHex(c)
	return []protocol.ColorPresentation{
		{
			Label: hexStr,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: "\"" + hexStr + "\"",
			},
		},
		{Label: hsvCall(c)},
	}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
