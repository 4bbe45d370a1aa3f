package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestFormatEdits(t *testing.T) {
	input := "swatch \"red\"   {\n  color=\"#ff0000\"\n}\n"
	want := "swatch \"red\" {\n  color = \"#FF0000\"\n}\n"

	edits, err := formatEdits(input)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}

	edit := edits[0]
	if edit.NewText != want {
		t.Errorf("NewText = %q, want %q", edit.NewText, want)
	}

	wantRange := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 3, Character: 0},
	}
	if edit.Range != wantRange {
		t.Errorf("Range = %+v, want %+v", edit.Range, wantRange)
	}
}

func TestFormatEdits_AlreadyFormatted(t *testing.T) {
	input := "swatch \"red\" {\n  color = \"#FF0000\"\n}\n"

	edits, err := formatEdits(input)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if len(edits) != 0 {
		t.Errorf("got %d edits for formatted input, want 0", len(edits))
	}
}

func TestFormatEdits_InvalidHCL(t *testing.T) {
	// Layout still runs while the user is typing.
	_, err := formatEdits(`swatch "a" { color = "#fff"`)
	if err != nil {
		t.Errorf("formatEdits() on incomplete HCL should not error, got: %v", err)
	}
}
