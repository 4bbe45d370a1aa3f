package lsp

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// Semantic token types we'll use (indices 0-7)
var semanticTokenTypes = []string{
	"keyword",   // 0: block types (meta, swatch)
	"property",  // 1: attribute names
	"variable",  // 2: swatch names, declared or referenced
	"namespace", // 3: the "swatch" namespace identifier
	"string",    // 4: hex color literals
	"function",  // 5: hsv(), rgb(), brighten(), darken()
	"number",    // 6: numeric literals
	"comment",   // 7: comments
}

// Semantic token modifiers (bit flags)
var semanticTokenModifiers = []string{
	"declaration", // bit 0: defining a new symbol
}

// tokenTypeIndices maps type names to their indices for fast lookup
var tokenTypeIndices map[string]uint32

func init() {
	tokenTypeIndices = make(map[string]uint32, len(semanticTokenTypes))
	for i, t := range semanticTokenTypes {
		tokenTypeIndices[t] = uint32(i)
	}
}

// SemanticToken represents a single token with its metadata
type SemanticToken struct {
	Line      uint32 // 0-based line number
	StartChar uint32 // 0-based character offset
	Length    uint32
	Type      uint32 // index into semanticTokenTypes
	Modifiers uint32 // bit flags
}

// encodeTokens converts tokens to LSP format (5 integers per token)
// Uses delta encoding for line numbers and character positions
func encodeTokens(tokens []SemanticToken) []uint32 {
	if len(tokens) == 0 {
		return []uint32{}
	}

	// Sort tokens by position
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})

	data := make([]uint32, 0, len(tokens)*5)

	var prevLine uint32 = 0
	var prevChar uint32 = 0

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevChar
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data,
			deltaLine,
			deltaStart,
			tok.Length,
			tok.Type,
			tok.Modifiers,
		)

		prevLine = tok.Line
		prevChar = tok.StartChar
	}

	return data
}

// semanticTokensFull generates semantic tokens for the entire document content
func semanticTokensFull(content string) []uint32 {
	file, diags := hclsyntax.ParseConfig([]byte(content), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		// Return empty tokens if parsing fails
		return []uint32{}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return []uint32{}
	}

	var tokens []SemanticToken
	tokens = extractTokensFromBody(body, tokens)

	return encodeTokens(tokens)
}

// tokenAt builds a token covering a single-line source range.
func tokenAt(rng hcl.Range, typ string, modifiers uint32) SemanticToken {
	return SemanticToken{
		Line:      uint32(rng.Start.Line - 1),
		StartChar: uint32(rng.Start.Column - 1),
		Length:    uint32(rng.End.Column - rng.Start.Column),
		Type:      tokenTypeIndices[typ],
		Modifiers: modifiers,
	}
}

// extractTokensFromBody extracts tokens from an HCL body
func extractTokensFromBody(body *hclsyntax.Body, tokens []SemanticToken) []SemanticToken {
	for _, block := range body.Blocks {
		tokens = append(tokens, tokenAt(block.TypeRange, "keyword", 0))

		// Swatch names are declarations
		for _, rng := range block.LabelRanges {
			tokens = append(tokens, tokenAt(rng, "variable", 1))
		}

		tokens = extractTokensFromBody(block.Body, tokens)
	}

	for name, attr := range body.Attributes {
		tokens = append(tokens, SemanticToken{
			Line:      uint32(attr.NameRange.Start.Line - 1),
			StartChar: uint32(attr.NameRange.Start.Column - 1),
			Length:    uint32(len(name)),
			Type:      tokenTypeIndices["property"],
			Modifiers: 1, // declaration bit
		})

		tokens = extractTokensFromExpr(attr.Expr, tokens)
	}

	return tokens
}

// extractTokensFromExpr extracts tokens from an HCL expression
func extractTokensFromExpr(expr hclsyntax.Expression, tokens []SemanticToken) []SemanticToken {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() == cty.Number {
			tokens = append(tokens, tokenAt(e.SrcRange, "number", 0))
		}
	case *hclsyntax.TemplateExpr:
		if e.IsStringLiteral() && e.SrcRange.Start.Line == e.SrcRange.End.Line {
			tokens = append(tokens, tokenAt(e.SrcRange, "string", 0))
		}
	case *hclsyntax.ScopeTraversalExpr:
		tokens = extractTokensFromTraversal(e, tokens)
	case *hclsyntax.FunctionCallExpr:
		tokens = append(tokens, tokenAt(e.NameRange, "function", 0))
		for _, arg := range e.Args {
			tokens = extractTokensFromExpr(arg, tokens)
		}
	case *hclsyntax.BinaryOpExpr:
		tokens = extractTokensFromExpr(e.LHS, tokens)
		tokens = extractTokensFromExpr(e.RHS, tokens)
	case *hclsyntax.UnaryOpExpr:
		tokens = extractTokensFromExpr(e.Val, tokens)
	}
	return tokens
}

// extractTokensFromTraversal handles swatch references like swatch.base
func extractTokensFromTraversal(expr *hclsyntax.ScopeTraversalExpr, tokens []SemanticToken) []SemanticToken {
	if len(expr.Traversal) == 0 {
		return tokens
	}

	first, ok := expr.Traversal[0].(hcl.TraverseRoot)
	if !ok || first.Name != "swatch" {
		return tokens
	}

	tokens = append(tokens, tokenAt(first.SrcRange, "namespace", 0))
	for _, seg := range expr.Traversal[1:] {
		attr, ok := seg.(hcl.TraverseAttr)
		if !ok {
			continue
		}
		// The attribute range starts at the dot.
		tokens = append(tokens, SemanticToken{
			Line:      uint32(attr.SrcRange.End.Line - 1),
			StartChar: uint32(attr.SrcRange.End.Column - 1 - len(attr.Name)),
			Length:    uint32(len(attr.Name)),
			Type:      tokenTypeIndices["variable"],
		})
	}

	return tokens
}
