package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot   blockContext = iota
	contextMeta                // inside meta {}
	contextSwatch              // inside swatch "name" {}
	contextOther
)

var blockAttributes = map[blockContext][]string{
	contextMeta:   {"name", "author"},
	contextSwatch: {"color", "alpha"},
}

// valueFunctions are the functions offered at a value position.
var valueFunctions = []struct {
	name, detail, snippet string
}{
	{"hsv", "hsv(h, s, v)", "hsv(${1:0}, ${2:1}, ${3:1})"},
	{"rgb", "rgb(r, g, b)", "rgb(${1:1}, ${2:0}, ${3:0})"},
	{"brighten", "brighten(color, amount)", "brighten(${1:color}, ${2:0.1})"},
	{"darken", "darken(color, amount)", "darken(${1:color}, ${2:0.1})"},
}

// complete produces completion items given an analysis result, document content,
// and cursor position. This is the core logic, decoupled from the LSP protocol
// handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if items := trySwatchCompletion(result, textBeforeCursor, int(pos.Line)); items != nil {
		return items
	}

	if isValuePosition(textBeforeCursor) {
		return valueCompletions()
	}

	ctx := determineBlockContext(lines, int(pos.Line))
	switch ctx {
	case contextRoot:
		return topLevelCompletions()
	case contextMeta, contextSwatch:
		return attributeCompletions(blockAttributes[ctx], lines, int(pos.Line))
	}

	return nil
}

// trySwatchCompletion offers the names of swatches defined above the cursor
// when the text before it ends in "swatch." or "swatch.<partial>".
func trySwatchCompletion(result *AnalysisResult, textBeforeCursor string, cursorLine int) []protocol.CompletionItem {
	if result == nil || result.Library == nil {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, refPrefix)
	if idx == -1 {
		return nil
	}
	if idx > 0 && isIdentChar(textBeforeCursor[idx-1]) {
		return nil
	}
	partial := textBeforeCursor[idx+len(refPrefix):]
	for i := 0; i < len(partial); i++ {
		if !isIdentChar(partial[i]) || partial[i] == '.' {
			return nil
		}
	}

	kind := protocol.CompletionItemKindColor
	items := []protocol.CompletionItem{}
	for _, s := range result.Library.Swatches {
		// References only resolve to swatches defined earlier in the file.
		if int(s.Range.Start.Line-1) >= cursorLine {
			continue
		}
		detail := s.Color.RGBAHex()
		items = append(items, protocol.CompletionItem{
			Label:  s.Name,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items
}

// isValuePosition returns true if the text before the cursor indicates we are
// at a value position (after an "=" sign with nothing meaningful following it).
func isValuePosition(textBeforeCursor string) bool {
	trimmed := strings.TrimSpace(textBeforeCursor)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(trimmed[eqIdx+1:])
	return afterEq == ""
}

// valueCompletions returns completion items for a value position, including
// function snippets and a swatch reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	items := make([]protocol.CompletionItem, 0, len(valueFunctions)+1)
	for _, fn := range valueFunctions {
		snippet := fn.snippet
		items = append(items, protocol.CompletionItem{
			Label:            fn.name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(fn.detail),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	swatchInsert := refPrefix
	items = append(items, protocol.CompletionItem{
		Label:      "swatch",
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("swatch reference"),
		InsertText: &swatchInsert,
	})
	return items
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		// Process opening braces: extract the block name (first word on the line)
		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}

	switch stack[len(stack)-1] {
	case "meta":
		return contextMeta
	case "swatch":
		return contextSwatch
	default:
		return contextOther
	}
}

// attributeCompletions returns attribute name completions, excluding
// attributes already defined in the block surrounding the cursor.
func attributeCompletions(names []string, lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	for _, name := range names {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  &kind,
			})
		}
	}

	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	// Scan backwards to find the opening brace of the current block
	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// topLevelCompletions returns snippets for the top-level blocks.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	snippets := []struct{ label, body string }{
		{"meta", "meta {\n  name = \"$1\"\n}"},
		{"swatch", "swatch \"${1:name}\" {\n  color = \"${2:#FF0000}\"\n}"},
	}

	items := make([]protocol.CompletionItem, 0, len(snippets))
	for _, s := range snippets {
		body := s.body
		items = append(items, protocol.CompletionItem{
			Label:            s.label,
			Kind:             &kind,
			InsertText:       &body,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	return complete(result, content, params.Position), nil
}
