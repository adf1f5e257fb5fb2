package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammars"
)

func newDocument(t *testing.T, text string) *Document {
	t.Helper()
	d := NewDocument(grammars.XonshLanguage())
	d.SetText(text)
	return d
}

func freshParse(text string) string {
	return gotreesitter.NewParser(grammars.XonshLanguage()).Parse([]byte(text)).String()
}

func TestNewDocument(t *testing.T) {
	d := NewDocument(grammars.XonshLanguage())
	assert.Equal(t, "", d.Text())
	assert.True(t, d.Untitled())
	assert.Equal(t, "untitled", d.Title())
	assert.False(t, d.Dirty())
	require.NotNil(t, d.Tree())
	assert.Empty(t, d.Diagnostics())
}

func TestDocumentOpenEditSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.xsh")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0644))

	d := NewDocument(grammars.XonshLanguage())
	require.NoError(t, d.Open(path))
	assert.True(t, filepath.IsAbs(d.Path()))
	assert.Equal(t, "script.xsh", d.Title())
	assert.False(t, d.Dirty())
	assert.Equal(t, "(module (expression_statement (assignment left: (identifier) right: (integer))))", d.Tree().String())

	require.NoError(t, d.ApplyEdit(4, "1", "$HOME"))
	assert.Equal(t, "x = $HOME\n", d.Text())
	assert.True(t, d.Dirty())
	assert.Equal(t, freshParse(d.Text()), d.Tree().String())

	require.NoError(t, d.Save())
	assert.False(t, d.Dirty())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x = $HOME\n", string(data))

	other := filepath.Join(t.TempDir(), "other.xsh")
	require.NoError(t, d.SaveAs(other))
	assert.Equal(t, "other.xsh", d.Title())
}

func TestDocumentSaveUntitled(t *testing.T) {
	d := NewDocument(grammars.XonshLanguage())
	assert.Error(t, d.Save())
}

func TestApplyEditRejectsStaleText(t *testing.T) {
	d := newDocument(t, "x = 1\n")
	assert.ErrorIs(t, d.ApplyEdit(0, "y", "z"), ErrStaleEdit)
	assert.ErrorIs(t, d.ApplyEdit(10, "", "z"), ErrStaleEdit)
	assert.ErrorIs(t, d.ReplaceRange(Range{Start: 3, End: 1}, "z"), gotreesitter.ErrInvalidEdit)
	assert.Equal(t, "x = 1\n", d.Text())
}

func TestEditsMatchFreshParse(t *testing.T) {
	d := newDocument(t, "for f in $(ls):\n    echo @(f)\nx = 1\n")
	steps := []struct {
		offset   int
		old, new string
	}{
		{4, "f", "name"},
		{30, "f", "name"},
		{0, "", "cd /tmp\n"},
		{len("cd /tmp\nfor name in $(ls):\n    echo @(name)\n"), "x = 1", "ls -l | grep xsh"},
		{8, "", "if True:\n    "},
		{8, "if True:\n    ", ""},
	}
	for i, s := range steps {
		require.NoError(t, d.ApplyEdit(s.offset, s.old, s.new), "step %d", i)
		require.Equal(t, freshParse(d.Text()), d.Tree().String(), "step %d: %q", i, d.Text())
		require.NoError(t, d.Tree().CheckSpans(), "step %d", i)
	}
}

func TestUndoRedo(t *testing.T) {
	d := newDocument(t, "x = 1\n")
	require.NoError(t, d.ApplyEdit(0, "x", "value"))
	require.NoError(t, d.ApplyEdit(len("value = "), "1", "2"))
	assert.Equal(t, "value = 2\n", d.Text())

	assert.True(t, d.Undo())
	assert.Equal(t, "value = 1\n", d.Text())
	assert.True(t, d.Undo())
	assert.Equal(t, "x = 1\n", d.Text())
	assert.False(t, d.Undo())
	assert.Equal(t, freshParse("x = 1\n"), d.Tree().String())

	assert.True(t, d.Redo())
	assert.Equal(t, "value = 1\n", d.Text())
	assert.Equal(t, freshParse(d.Text()), d.Tree().String())

	require.NoError(t, d.ApplyEdit(0, "value", "v"))
	assert.False(t, d.Redo(), "a new edit clears the redo stack")
}

func TestTakeEdits(t *testing.T) {
	d := newDocument(t, "a\nb\n")
	require.NoError(t, d.ApplyEdit(2, "b", "cd"))
	require.NoError(t, d.ApplyEdit(0, "", "#\n"))

	edits := d.TakeEdits()
	require.Len(t, edits, 2)
	assert.Equal(t, gotreesitter.InputEdit{
		StartByte: 2, OldEndByte: 3, NewEndByte: 4,
		StartPoint:  gotreesitter.Point{Row: 1},
		OldEndPoint: gotreesitter.Point{Row: 1, Column: 1},
		NewEndPoint: gotreesitter.Point{Row: 1, Column: 2},
	}, edits[0])
	assert.Equal(t, gotreesitter.Point{Row: 1}, edits[1].NewEndPoint)
	assert.Empty(t, d.TakeEdits())
}

func TestFindAndReplaceAll(t *testing.T) {
	d := newDocument(t, "echo a\necho b\n")
	assert.Equal(t, []Range{{0, 4}, {7, 11}}, d.Find("echo"))
	assert.Nil(t, d.Find(""))

	n, err := d.ReplaceAll("echo", "print")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "print a\nprint b\n", d.Text())
	assert.Equal(t, freshParse(d.Text()), d.Tree().String())
}

func TestOffsetAt(t *testing.T) {
	d := newDocument(t, "ab\ncde\n")
	tests := []struct {
		p    gotreesitter.Point
		want int
	}{
		{gotreesitter.Point{}, 0},
		{gotreesitter.Point{Column: 2}, 2},
		{gotreesitter.Point{Column: 9}, 2},
		{gotreesitter.Point{Row: 1, Column: 1}, 4},
		{gotreesitter.Point{Row: 2}, 7},
		{gotreesitter.Point{Row: 5}, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.OffsetAt(tt.p), "OffsetAt(%+v)", tt.p)
	}
}

func TestDiagnostics(t *testing.T) {
	d := newDocument(t, "x = 1\n")
	assert.Empty(t, d.Diagnostics())

	require.NoError(t, d.ApplyEdit(4, "1", "(1"))
	diags := d.Diagnostics()
	require.NotEmpty(t, diags)
	for _, diag := range diags {
		assert.LessOrEqual(t, diag.Range.StartByte, diag.Range.EndByte)
		assert.LessOrEqual(t, int(diag.Range.EndByte), len(d.Text()))
		assert.NotEmpty(t, diag.Message)
	}
}

func TestDiagnosticsInconsistentDedent(t *testing.T) {
	d := newDocument(t, "if x:\n    y = 1\n  z = 2\nw = 3\n")
	require.True(t, d.Tree().RootNode().HasError())

	diags := d.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "invalid dedent", diags[0].Message)
	assert.False(t, diags[0].Missing)
	assert.Equal(t, uint32(2), diags[0].Range.StartPoint.Row)

	var flagged []string
	d.Tree().RootNode().Walk(func(n gotreesitter.Node) bool {
		if n.IsError() {
			flagged = append(flagged, n.Kind())
		}
		return true
	})
	assert.Equal(t, []string{"_dedent"}, flagged)
}
