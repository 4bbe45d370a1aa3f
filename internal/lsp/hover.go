package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/huepick/internal/picker"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func posBefore(a, b protocol.Position) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Character < b.Character)
}

// posInRange returns true if pos is within the range [r.Start, r.End).
func posInRange(pos protocol.Position, r protocol.Range) bool {
	return !posBefore(pos, r.Start) && posBefore(pos, r.End)
}

// extractText returns the source text covered by r. Characters past the end
// of a line are clamped to it.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")
	first := int(r.Start.Line)
	last := min(int(r.End.Line), len(lines)-1)
	if first > last {
		return ""
	}

	col := func(line string, ch uint32) int { return min(int(ch), len(line)) }

	if first == last {
		line := lines[first]
		from, to := col(line, r.Start.Character), col(line, r.End.Character)
		if from > to {
			return ""
		}
		return line[from:to]
	}

	parts := make([]string, 0, last-first+1)
	parts = append(parts, lines[first][col(lines[first], r.Start.Character):])
	parts = append(parts, lines[first+1:last]...)
	parts = append(parts, lines[last][:col(lines[last], r.End.Character)])
	return strings.Join(parts, "\n")
}

// colorMarkdown lists c in every notation the swatch functions accept.
func colorMarkdown(c picker.Color) string {
	return fmt.Sprintf("`%s` · `%s` · `%s` · `%s`", c.RGBHex(), c.RGBAHex(), c.RGB(), c.HSV())
}

// hover produces a Hover for the color expression or swatch label under pos.
// References and function calls are headed by their source text, labels by
// the swatch name. Returns nil when there is nothing to show.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}
		md := colorMarkdown(cl.Color)
		if cl.IsRef {
			md = fmt.Sprintf("**%s**\n\n%s", extractText(content, cl.Range), md)
		}
		return markdownHover(md, cl.Range)
	}

	if result.Library == nil {
		return nil
	}
	for name, rng := range result.Symbols {
		if !posInRange(pos, rng) {
			continue
		}
		s, ok := result.Library.Lookup(name)
		if !ok {
			// Label of a swatch whose color failed to resolve.
			return nil
		}
		return markdownHover(fmt.Sprintf("**%s**\n\n%s", name, colorMarkdown(s.Color)), rng)
	}

	return nil
}

func markdownHover(md string, rng protocol.Range) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: md,
		},
		Range: &rng,
	}
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}
