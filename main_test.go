package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/xonshts/editor"
	"github.com/odvcencio/xonshts/export"
	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammars"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseStdin(t *testing.T) {
	out, _, err := run(t, "echo hello\n", "parse")
	require.NoError(t, err)
	tree := gotreesitter.NewParser(grammars.XonshLanguage()).Parse([]byte("echo hello\n"))
	assert.Equal(t, export.SExpression(tree)+"\n", out)
	assert.Contains(t, out, "subprocess_command")
}

func TestParseReportsSyntaxErrors(t *testing.T) {
	out, errOut, err := run(t, "x = (1\n", "parse", "--stats", "--digest")
	require.ErrorIs(t, err, errSyntax)
	assert.Contains(t, out, "module")
	assert.Contains(t, errOut, "<stdin>:")
	assert.Contains(t, errOut, "tokens ")
	assert.Contains(t, errOut, "digest ")
}

func TestParseJSON(t *testing.T) {
	out, _, err := run(t, "ls -l\n", "parse", "--format", "json", "--anonymous")
	require.NoError(t, err)
	var node export.Node
	require.NoError(t, json.Unmarshal([]byte(out), &node))
	assert.Equal(t, "module", node.Kind)
	assert.NotEmpty(t, node.Children)
}

func TestParseCBOR(t *testing.T) {
	out, _, err := run(t, "pass\n", "parse", "-f", "cbor")
	require.NoError(t, err)
	node, err := export.DecodeCBOR([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "module", node.Kind)
}

func TestParseUnknownFormat(t *testing.T) {
	_, _, err := run(t, "pass\n", "parse", "-f", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.xsh")
	require.NoError(t, os.WriteFile(path, []byte("cd /tmp\n"), 0o644))
	out, _, err := run(t, "", "parse", path)
	require.NoError(t, err)
	assert.Contains(t, out, "module")

	_, _, err = run(t, "", "parse", filepath.Join(t.TempDir(), "missing.xsh"))
	assert.ErrorContains(t, err, "read file")
}

func TestParseKind(t *testing.T) {
	out, _, err := run(t, "echo hello\n", "parse", "--kind", "word")
	require.NoError(t, err)
	assert.Equal(t, "1:1\techo\n1:6\thello\n", out)

	_, _, err = run(t, "echo hello\n", "parse", "--kind", "wrod")
	assert.ErrorContains(t, err, `did you mean "word"`)
}

func TestKinds(t *testing.T) {
	out, _, err := run(t, "", "kinds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "subprocess_command")
	assert.Contains(t, lines, "module")
	assert.True(t, sortedStrings(lines), "kinds are not sorted")

	out, _, err = run(t, "", "kinds", "subproc")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(strings.TrimSpace(out), "\n"), "subprocess_command")
	assert.NotContains(t, out, "module\n")

	_, _, err = run(t, "", "kinds", "zzzzqqq")
	assert.Error(t, err)
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestHighlightNoop(t *testing.T) {
	src := "# hi\nls -la | wc -l\n"
	out, _, err := run(t, src, "highlight", "--formatter", "noop")
	require.NoError(t, err)
	assert.Equal(t, src, out)

	_, _, err = run(t, src, "highlight", "--formatter", "bogus")
	assert.ErrorContains(t, err, "unknown formatter")
}

func TestTables(t *testing.T) {
	out, _, err := run(t, "", "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "xonsh")
	assert.Contains(t, out, string(grammars.ParseBackendScanner))
	assert.Contains(t, out, "conflicts:")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nope: 1\n"), 0o644))
	_, _, err := run(t, "pass\n", "--config", path, "parse")
	assert.ErrorContains(t, err, "invalid config")

	good := filepath.Join(t.TempDir(), "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("highlight:\n  formatter: noop\n"), 0o644))
	out, _, err := run(t, "pass\n", "--config", good, "highlight")
	require.NoError(t, err)
	assert.Equal(t, "pass\n", out)
}

func TestDiffSpan(t *testing.T) {
	tests := []struct {
		a, b              string
		start, aEnd, bEnd int
	}{
		{"abc", "abc", 3, 3, 3},
		{"abc", "abXc", 2, 2, 3},
		{"abc", "ac", 1, 2, 1},
		{"", "x", 0, 0, 1},
		{"aaa", "aa", 2, 3, 2},
		{"x = 1\n", "y = 2\n", 0, 5, 5},
	}
	for _, tt := range tests {
		start, aEnd, bEnd := diffSpan(tt.a, tt.b)
		if start != tt.start || aEnd != tt.aEnd || bEnd != tt.bEnd {
			t.Errorf("diffSpan(%q, %q) = %d, %d, %d; want %d, %d, %d",
				tt.a, tt.b, start, aEnd, bEnd, tt.start, tt.aEnd, tt.bEnd)
		}
	}
}

func TestFileWatcherSync(t *testing.T) {
	lang := grammars.XonshLanguage()
	var out bytes.Buffer
	w := &fileWatcher{name: "t.xsh", doc: editor.NewDocument(lang), out: &out}
	w.doc.SetText("if x:\n    ls -l\n")

	changed, err := w.sync("if x:\n    ls -l\n")
	require.NoError(t, err)
	assert.False(t, changed)

	next := "if x:\n    ls -la | grep foo\n"
	changed, err = w.sync(next)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, next, w.doc.Text())

	fresh := gotreesitter.NewParser(lang).Parse([]byte(next))
	assert.Equal(t, fresh.String(), w.doc.Tree().String())

	w.report()
	assert.Contains(t, out.String(), "t.xsh: revision")
	assert.Contains(t, out.String(), "0 problems")
}
