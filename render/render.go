// Package render prints highlighted source through chroma formatters. The
// token boundaries come from the syntax tree rather than from a chroma
// lexer, so the output agrees with what the parser saw.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// tokenTypes maps capture names to chroma token types. Dotted captures fall
// back to their prefix, so "string.special.path" tries itself, then
// "string.special", then "string".
var tokenTypes = map[string]chroma.TokenType{
	"comment":             chroma.CommentSingle,
	"string":              chroma.LiteralString,
	"string.escape":       chroma.LiteralStringEscape,
	"string.regexp":       chroma.LiteralStringRegex,
	"string.special":      chroma.LiteralStringSymbol,
	"string.special.path": chroma.LiteralStringOther,
	"embedded":            chroma.LiteralStringInterpol,
	"number":              chroma.LiteralNumber,
	"constant":            chroma.NameConstant,
	"constant.builtin":    chroma.KeywordConstant,
	"variable":            chroma.Name,
	"variable.builtin":    chroma.NameVariable,
	"variable.parameter":  chroma.NameOther,
	"function":            chroma.NameFunction,
	"type":                chroma.NameClass,
	"attribute":           chroma.NameDecorator,
	"property":            chroma.NameProperty,
	"keyword":             chroma.Keyword,
	"keyword.modifier":    chroma.KeywordPseudo,
	"operator":            chroma.Operator,
	"punctuation":         chroma.Punctuation,
	"punctuation.special": chroma.Punctuation,
	"error":               chroma.Error,
}

// TokenType returns the chroma token type for a capture name.
func TokenType(capture string) chroma.TokenType {
	for name := capture; name != ""; {
		if tt, ok := tokenTypes[name]; ok {
			return tt
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			break
		}
		name = name[:i]
	}
	return chroma.Text
}

// Tokens splits source into chroma tokens along the highlight ranges, which
// must be sorted and non-overlapping. Text between ranges becomes Text
// tokens; the token values concatenate to source.
func Tokens(source []byte, ranges []gotreesitter.HighlightRange) []chroma.Token {
	var out []chroma.Token
	pos := uint32(0)
	size := uint32(len(source))
	for _, r := range ranges {
		start, end := min(r.StartByte, size), min(r.EndByte, size)
		if start < pos || end <= start {
			continue
		}
		if start > pos {
			out = append(out, chroma.Token{Type: chroma.Text, Value: string(source[pos:start])})
		}
		out = append(out, chroma.Token{Type: TokenType(r.Capture), Value: string(source[start:end])})
		pos = end
	}
	if pos < size {
		out = append(out, chroma.Token{Type: chroma.Text, Value: string(source[pos:])})
	}
	return out
}

// Write formats source with the named chroma style and formatter. Unknown
// names fall back to chroma's defaults.
func Write(w io.Writer, source []byte, ranges []gotreesitter.HighlightRange, style, formatter string) error {
	f := formatters.Get(formatter)
	if err := f.Format(w, styles.Get(style), chroma.Literator(Tokens(source, ranges)...)); err != nil {
		return fmt.Errorf("format highlighted source: %w", err)
	}
	return nil
}

// Formatters lists the registered formatter names.
func Formatters() []string { return formatters.Names() }

// Styles lists the registered style names.
func Styles() []string { return styles.Names() }
