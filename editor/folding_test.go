package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammars"
)

const foldSource = "def f(x):\n" +
	"    if x:\n" +
	"        return 1\n" +
	"    return 2\n" +
	"\n" +
	"y = [\n" +
	"    1,\n" +
	"    2\n" +
	"]\n"

func TestFoldRegionsFromTree(t *testing.T) {
	tree := gotreesitter.NewParser(grammars.XonshLanguage()).Parse([]byte(foldSource))
	require.False(t, tree.RootNode().HasError(), "unexpected error in %s", tree)

	want := []FoldRegion{
		{StartLine: 0, EndLine: 3, Kind: "function_definition"},
		{StartLine: 1, EndLine: 2, Kind: "if_statement"},
		{StartLine: 5, EndLine: 8, Kind: "list"},
	}
	assert.Equal(t, want, FoldRegionsFromTree(tree))
}

func TestFoldRegionsSkipSingleLineNodes(t *testing.T) {
	tree := gotreesitter.NewParser(grammars.XonshLanguage()).Parse([]byte("if x: y\nz = [1, 2]\n"))
	assert.Empty(t, FoldRegionsFromTree(tree))
}

func TestDetectFoldRegions(t *testing.T) {
	want := []FoldRegion{
		{StartLine: 0, EndLine: 3},
		{StartLine: 1, EndLine: 2},
	}
	assert.Equal(t, want, DetectFoldRegions(foldSource))
}

func TestDetectFoldRegionsIgnoresCommentsAndBlankLines(t *testing.T) {
	text := "while True:\n\n    # wait\n    sleep 1\n# done\n"
	assert.Equal(t, []FoldRegion{{StartLine: 0, EndLine: 3}}, DetectFoldRegions(text))
	assert.Empty(t, DetectFoldRegions("x = 1\n"))
}
