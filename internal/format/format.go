package format

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
var hexLiteral = regexp.MustCompile(`^#?[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)

// Format returns swatch file content in canonical style: hclwrite layout,
// at most one blank line in a row, no blank lines just inside braces, and
// hex color literals in uppercase.
//
// Content that does not parse is still laid out, so the formatter can run
// while the user is typing; only the hex rewrite needs a valid file.
func Format(content string) (string, error) {
	src := []byte(content)
	if f, diags := hclwrite.ParseConfig(src, "", hcl.InitialPos); !diags.HasErrors() {
		uppercaseColors(f.Body())
		src = f.Bytes()
	}

	formatted := string(hclwrite.Format(src))
	formatted = multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	formatted = blankLineAfterOpenBrace.ReplaceAllString(formatted, "{\n")
	formatted = blankLineBeforeCloseBrace.ReplaceAllString(formatted, "\n${1}")
	return formatted, nil
}

func uppercaseColors(body *hclwrite.Body) {
	for _, block := range body.Blocks() {
		if block.Type() != "swatch" {
			continue
		}
		attr := block.Body().GetAttribute("color")
		if attr == nil {
			continue
		}
		lit, ok := quotedLiteral(attr.Expr().BuildTokens(nil))
		if !ok || !hexLiteral.MatchString(lit) {
			continue
		}
		if upper := strings.ToUpper(lit); upper != lit {
			block.Body().SetAttributeValue("color", cty.StringVal(upper))
		}
	}
}

// quotedLiteral returns the text of a plain "..." string expression.
func quotedLiteral(tokens hclwrite.Tokens) (string, bool) {
	if len(tokens) != 3 ||
		tokens[0].Type != hclsyntax.TokenOQuote ||
		tokens[1].Type != hclsyntax.TokenQuotedLit ||
		tokens[2].Type != hclsyntax.TokenCQuote {
		return "", false
	}
	return string(tokens[1].Bytes), true
}
