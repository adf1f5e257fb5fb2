package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammars"
)

func TestTokenTypeFallsBackToPrefix(t *testing.T) {
	assert.Equal(t, chroma.LiteralStringOther, TokenType("string.special.path"))
	assert.Equal(t, chroma.LiteralStringSymbol, TokenType("string.special.url"))
	assert.Equal(t, chroma.LiteralString, TokenType("string.documentation"))
	assert.Equal(t, chroma.Keyword, TokenType("keyword"))
	assert.Equal(t, chroma.Text, TokenType("nothing"))
	assert.Equal(t, chroma.Text, TokenType(""))
}

func TestTokensCoverSource(t *testing.T) {
	src := []byte("if x:  # hi\n")
	ranges := []gotreesitter.HighlightRange{
		{StartByte: 0, EndByte: 2, Capture: "keyword"},
		{StartByte: 1, EndByte: 3, Capture: "variable"},
		{StartByte: 7, EndByte: 11, Capture: "comment"},
		{StartByte: 11, EndByte: 40, Capture: "error"},
	}
	toks := Tokens(src, ranges)
	want := []chroma.Token{
		{Type: chroma.Keyword, Value: "if"},
		{Type: chroma.Text, Value: " x:  "},
		{Type: chroma.CommentSingle, Value: "# hi"},
		{Type: chroma.Error, Value: "\n"},
	}
	assert.Equal(t, want, toks)
}

func TestWriteHighlightsTree(t *testing.T) {
	lang := grammars.XonshLanguage()
	src := []byte("# setup\nls -l | grep x\n")
	tree := gotreesitter.NewParser(lang).Parse(src)
	ranges := gotreesitter.NewHighlighter(lang, grammars.XonshHighlights).HighlightTree(tree)

	var plain bytes.Buffer
	require.NoError(t, Write(&plain, src, ranges, "monokai", "noop"))
	assert.Equal(t, string(src), plain.String())

	var html bytes.Buffer
	require.NoError(t, Write(&html, src, ranges, "monokai", "html"))
	assert.True(t, strings.Contains(html.String(), "# setup"), html.String())
}

func TestRegistries(t *testing.T) {
	assert.Contains(t, Formatters(), "terminal256")
	assert.Contains(t, Styles(), "monokai")
}
