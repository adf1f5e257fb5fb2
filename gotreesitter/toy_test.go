package gotreesitter_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/odvcencio/xonshts/gotreesitter"
	g "github.com/odvcencio/xonshts/grammargen"
)

// blockGrammar is a small statement language with nested blocks:
//
//	x = 1 + 2;
//	{ y = x * 3; (y); }
//
// Whitespace and # comments are extras.
func blockGrammar() *g.Grammar {
	gr := g.New("blocks")
	gr.Tokens("number", "identifier", "comment", "_whitespace")
	gr.Extras("comment", "_whitespace")
	expr := g.Ref("_expression")
	gr.Rule("program", g.Repeat(g.Ref("_statement")))
	gr.Rule("_statement", g.Choice(g.Ref("assignment"), g.Ref("expression_statement"), g.Ref("block")))
	gr.Rule("assignment", g.Seq(g.Field("left", g.Ref("identifier")), "=", g.Field("right", expr), ";"))
	gr.Rule("expression_statement", g.Seq(expr, ";"))
	gr.Rule("block", g.Seq("{", g.Repeat(g.Ref("_statement")), "}"))
	gr.Rule("_expression", g.Choice(g.Ref("binary"), g.Ref("parenthesized"), g.Ref("number"), g.Ref("identifier")))
	gr.Rule("binary", g.Choice(
		g.PrecLeft(1, g.Seq(g.Field("left", expr), g.Field("operator", g.Choice("+", "-")), g.Field("right", expr))),
		g.PrecLeft(2, g.Seq(g.Field("left", expr), g.Field("operator", "*"), g.Field("right", expr))),
	))
	gr.Rule("parenthesized", g.Seq("(", expr, ")"))
	gr.Insertable(")", ";", "}")
	gr.Protected(";", "}")
	return gr
}

var (
	blockOnce sync.Once
	blockLang *gotreesitter.Language
	blockErr  error
)

func blockLanguage(t testing.TB) *gotreesitter.Language {
	t.Helper()
	blockOnce.Do(func() {
		lang, report, err := blockGrammar().Build()
		if err != nil {
			blockErr = err
			return
		}
		if u := report.Unexpected(); len(u) > 0 {
			blockErr = &conflictError{conflicts: u}
			return
		}
		lang.Scanner = newBlockScanner(lang)
		blockLang = lang
	})
	if blockErr != nil {
		t.Fatalf("build block grammar: %v", blockErr)
	}
	return blockLang
}

type conflictError struct {
	conflicts []g.Conflict
}

func (e *conflictError) Error() string {
	var parts []string
	for _, c := range e.conflicts {
		parts = append(parts, c.Kind+" on "+c.Lookahead)
	}
	return "unexpected conflicts: " + strings.Join(parts, ", ")
}

// blockScanner lexes the block language. Its state holds the brace depth in
// byte 0, so line checkpoints inside a block differ from those outside.
type blockScanner struct {
	lang    *gotreesitter.Language
	symbols map[string]gotreesitter.Symbol
}

func newBlockScanner(lang *gotreesitter.Language) *blockScanner {
	s := &blockScanner{lang: lang, symbols: map[string]gotreesitter.Symbol{}}
	for sym := gotreesitter.Symbol(1); uint32(sym) < lang.TokenCount; sym++ {
		s.symbols[lang.SymbolName(sym)] = sym
	}
	return s
}

func (s *blockScanner) InitialState() gotreesitter.ScannerState { return gotreesitter.ScannerState{} }

func (s *blockScanner) emit(lx *gotreesitter.ExternalLexer, name string) bool {
	sym, ok := s.symbols[name]
	if !ok {
		return false
	}
	lx.MarkEnd()
	lx.SetResultSymbol(sym)
	return true
}

func (s *blockScanner) Scan(lx *gotreesitter.ExternalLexer, st gotreesitter.ScannerState) gotreesitter.ScannerState {
	if lx.EOF() {
		lx.SetResultSymbol(gotreesitter.EOFSymbol)
		return st
	}
	c := lx.Lookahead()
	switch {
	case c == ' ' || c == '\t' || c == '\n':
		// A run ends after a line break so every line starts a token.
		for c == ' ' || c == '\t' {
			lx.Advance(false)
			c = lx.Lookahead()
		}
		if c == '\n' {
			lx.Advance(false)
		}
		s.emit(lx, "_whitespace")
	case c == '#':
		for c != '\n' && c != 0 {
			lx.Advance(false)
			c = lx.Lookahead()
		}
		s.emit(lx, "comment")
	case c >= '0' && c <= '9':
		for c >= '0' && c <= '9' {
			lx.Advance(false)
			c = lx.Lookahead()
		}
		s.emit(lx, "number")
	case c >= 'a' && c <= 'z':
		for c >= 'a' && c <= 'z' {
			lx.Advance(false)
			c = lx.Lookahead()
		}
		s.emit(lx, "identifier")
	default:
		lx.Advance(false)
		if !s.emit(lx, string(c)) {
			return st
		}
		switch c {
		case '{':
			st[0]++
		case '}':
			if st[0] > 0 {
				st[0]--
			}
		}
	}
	return st
}

func parseBlocks(t testing.TB, src string) *gotreesitter.Tree {
	t.Helper()
	tree := gotreesitter.NewParser(blockLanguage(t)).Parse([]byte(src))
	if tree == nil {
		t.Fatalf("Parse(%q) returned nil", src)
	}
	if err := tree.CheckSpans(); err != nil {
		t.Fatalf("CheckSpans(%q): %v", src, err)
	}
	return tree
}

// leafText concatenates the leaves of the tree, which must reproduce the
// source.
func leafText(tree *gotreesitter.Tree) string {
	var b strings.Builder
	for _, leaf := range tree.RootNode().Leaves() {
		b.WriteString(leaf.Text())
	}
	return b.String()
}
