package gotreesitter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/odvcencio/xonshts/gotreesitter"
)

var blockCaptures = gotreesitter.CaptureRules{
	"number":          "number",
	"identifier":      "variable",
	"comment":         "comment",
	`"="`:             "operator",
	`"*"`:             "operator",
	"assignment.left": "variable.definition",
	"ERROR":           "error",
}

func TestHighlight(t *testing.T) {
	h := gotreesitter.NewHighlighter(blockLanguage(t), blockCaptures)
	got := h.Highlight([]byte("x = y * 2; # c\n"))
	want := []gotreesitter.HighlightRange{
		{StartByte: 0, EndByte: 1, Capture: "variable.definition"},
		{StartByte: 2, EndByte: 3, Capture: "operator"},
		{StartByte: 4, EndByte: 5, Capture: "variable"},
		{StartByte: 6, EndByte: 7, Capture: "operator"},
		{StartByte: 8, EndByte: 9, Capture: "number"},
		{StartByte: 11, EndByte: 14, Capture: "comment"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("highlight mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlightInheritsAncestorCapture(t *testing.T) {
	rules := gotreesitter.CaptureRules{"parenthesized": "group", "number": "number"}
	h := gotreesitter.NewHighlighter(blockLanguage(t), rules)
	got := h.Highlight([]byte("(a);"))
	want := []gotreesitter.HighlightRange{
		{StartByte: 0, EndByte: 3, Capture: "group"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("highlight mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlightErrors(t *testing.T) {
	h := gotreesitter.NewHighlighter(blockLanguage(t), blockCaptures)
	got := h.Highlight([]byte("1 @;"))
	want := []gotreesitter.HighlightRange{
		{StartByte: 0, EndByte: 1, Capture: "number"},
		{StartByte: 2, EndByte: 3, Capture: "error"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("highlight mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlightEmpty(t *testing.T) {
	h := gotreesitter.NewHighlighter(blockLanguage(t), blockCaptures)
	if got := h.Highlight(nil); got != nil {
		t.Errorf("Highlight(nil) = %v, want nil", got)
	}
}

func TestHighlightIncremental(t *testing.T) {
	lang := blockLanguage(t)
	h := gotreesitter.NewHighlighter(lang, blockCaptures,
		gotreesitter.WithParserOptions(gotreesitter.WithMaxRecoveryAttempts(64)))

	src := []byte("a = 1;\nb = a;\n")
	tree := gotreesitter.NewParser(lang).Parse(src)

	edit, newSrc, err := gotreesitter.EditFromOffsets(src, 7, 8, "cc")
	if err != nil {
		t.Fatal(err)
	}
	edited, err := tree.Edit(edit)
	if err != nil {
		t.Fatal(err)
	}
	got, next := h.HighlightIncremental(newSrc, edited)
	if next == nil {
		t.Fatal("no tree returned")
	}
	if diff := cmp.Diff(h.Highlight(newSrc), got); diff != "" {
		t.Errorf("incremental highlight differs from fresh (-want +got):\n%s", diff)
	}
	if got[3] != (gotreesitter.HighlightRange{StartByte: 7, EndByte: 9, Capture: "variable.definition"}) {
		t.Errorf("renamed definition highlighted as %+v", got[3])
	}
}
