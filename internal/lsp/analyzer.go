package lsp

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/huepick/internal/picker"
	"github.com/jsvensson/huepick/internal/swatch"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

const diagSource = "huepick"

// AnalysisResult holds all information produced by analyzing a swatch file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Library     *swatch.Library
	Symbols     map[string]protocol.Range // swatch name -> label range of its block
	Colors      []ColorLocation

	// ParseFailed is set when the content is not valid HCL. Library and
	// Symbols are then empty.
	ParseFailed bool
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color picker.Color
	IsRef bool // true unless the color is a plain hex string
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze decodes swatch content from memory and produces diagnostics, a
// symbol table and color locations. Broken swatches are reported and skipped;
// the rest are still resolved.
func Analyze(filename, content string) *AnalysisResult {
	lib, diags := swatch.Decode([]byte(content), filename)

	result := &AnalysisResult{
		Library: lib,
		Symbols: make(map[string]protocol.Range),
	}
	for _, d := range diags {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}

	for _, s := range lib.Swatches {
		result.Colors = append(result.Colors, ColorLocation{
			Range: hclRangeToLSP(s.Range),
			Color: s.Color,
			IsRef: !s.Literal,
		})
	}

	result.ParseFailed = !result.collectSymbols(content, filename)
	return result
}

// collectSymbols records the label range of every swatch block, including
// ones whose color failed to resolve. It reports whether the content parsed.
func (r *AnalysisResult) collectSymbols(content, filename string) bool {
	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return false
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return false
	}

	for _, block := range body.Blocks {
		if block.Type != "swatch" || len(block.Labels) != 1 {
			continue
		}
		if _, dup := r.Symbols[block.Labels[0]]; dup {
			continue
		}
		r.Symbols[block.Labels[0]] = hclRangeToLSP(block.LabelRanges[0])
	}
	return true
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

func strPtr(s string) *string {
	return &s
}
