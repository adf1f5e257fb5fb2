package grammargen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// charScanner lexes numbers, identifiers, whitespace, # comments and
// single-character punctuation, resolving symbols by name.
type charScanner struct {
	lang *gotreesitter.Language
}

func (s charScanner) InitialState() gotreesitter.ScannerState { return gotreesitter.ScannerState{} }

func (s charScanner) emit(lx *gotreesitter.ExternalLexer, name string) {
	if sym, ok := s.lang.SymbolByName(name); ok {
		lx.MarkEnd()
		lx.SetResultSymbol(sym)
	}
}

func (s charScanner) Scan(lx *gotreesitter.ExternalLexer, st gotreesitter.ScannerState) gotreesitter.ScannerState {
	if lx.EOF() {
		return st
	}
	c := lx.Lookahead()
	switch {
	case c == ' ' || c == '\t' || c == '\n':
		for c == ' ' || c == '\t' || c == '\n' {
			lx.Advance(false)
			c = lx.Lookahead()
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
		var word strings.Builder
		for c >= 'a' && c <= 'z' {
			word.WriteRune(c)
			lx.Advance(false)
			c = lx.Lookahead()
		}
		if _, ok := s.lang.SymbolByName(word.String()); ok && s.lang.IsTerminal(mustSymbol(s.lang, word.String())) {
			s.emit(lx, word.String())
			return st
		}
		s.emit(lx, "identifier")
	default:
		lx.Advance(false)
		if c == '=' && lx.Lookahead() == '=' {
			lx.Advance(false)
			s.emit(lx, "==")
			return st
		}
		s.emit(lx, string(c))
	}
	return st
}

func mustSymbol(lang *gotreesitter.Language, name string) gotreesitter.Symbol {
	sym, _ := lang.SymbolByName(name)
	return sym
}

const (
	precSum = iota + 1
	precProduct
	precPower
	precUnary
)

func arithmeticGrammar() *Grammar {
	g := New("arith")
	g.Tokens("number", "identifier", "comment", "_whitespace")
	g.Extras("comment", "_whitespace")
	expr := Ref("_expression")
	g.Rule("program", Repeat(Seq(expr, ";")))
	g.Rule("_expression", Choice(
		Ref("binary"), Ref("unary"), Ref("parenthesized"), Ref("number"), Ref("identifier"),
	))
	g.Rule("binary", Choice(
		PrecLeft(precSum, Seq(Field("left", expr), Field("operator", Choice("+", "-")), Field("right", expr))),
		PrecLeft(precProduct, Seq(Field("left", expr), Field("operator", Choice("*", "/")), Field("right", expr))),
		PrecRight(precPower, Seq(Field("left", expr), Field("operator", "^"), Field("right", expr))),
	))
	g.Rule("unary", Prec(precUnary, Seq("-", Field("operand", expr))))
	g.Rule("parenthesized", Seq("(", expr, ")"))
	g.Insertable(")", ";")
	g.Protected(";")
	return g
}

func buildLanguage(t testing.TB, g *Grammar) *gotreesitter.Language {
	t.Helper()
	lang, report, err := g.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if u := report.Unexpected(); len(u) > 0 {
		t.Fatalf("unexpected conflicts: %v", u)
	}
	lang.Scanner = charScanner{lang: lang}
	return lang
}

func parseString(t *testing.T, lang *gotreesitter.Language, src string) *gotreesitter.Tree {
	t.Helper()
	tree := gotreesitter.NewParser(lang).Parse([]byte(src))
	if err := tree.CheckSpans(); err != nil {
		t.Fatalf("CheckSpans(%q): %v", src, err)
	}
	return tree
}

func TestArithmeticPrecedence(t *testing.T) {
	lang := buildLanguage(t, arithmeticGrammar())
	tests := []struct {
		src  string
		want string
	}{
		{"1+2*3;", "(program (binary left: (number) right: (binary left: (number) right: (number))))"},
		{"1*2+3;", "(program (binary left: (binary left: (number) right: (number)) right: (number)))"},
		{"1-2-3;", "(program (binary left: (binary left: (number) right: (number)) right: (number)))"},
		{"2^3^4;", "(program (binary left: (number) right: (binary left: (number) right: (number))))"},
		{"-a+b;", "(program (binary left: (unary operand: (identifier)) right: (identifier)))"},
		{"(1+2)*3;", "(program (binary left: (parenthesized (binary left: (number) right: (number))) right: (number)))"},
		{"a; b;", "(program (identifier) (identifier))"},
		{"", "(program)"},
	}
	for _, tt := range tests {
		tree := parseString(t, lang, tt.src)
		if got := tree.String(); got != tt.want {
			t.Errorf("parse %q:\n got %s\nwant %s", tt.src, got, tt.want)
		}
		if tree.RootNode().HasError() {
			t.Errorf("parse %q: unexpected error node", tt.src)
		}
	}
}

func TestArithmeticFields(t *testing.T) {
	lang := buildLanguage(t, arithmeticGrammar())
	src := "x * (y + 1);"
	tree := parseString(t, lang, src)
	bin := tree.RootNode().NamedChild(0)
	if bin.Kind() != "binary" {
		t.Fatalf("first statement = %s, want binary", bin.Kind())
	}
	if got := bin.ChildByFieldName("left").Text(); got != "x" {
		t.Errorf("left = %q, want %q", got, "x")
	}
	if got := bin.ChildByFieldName("operator").Text(); got != "*" {
		t.Errorf("operator = %q, want %q", got, "*")
	}
	if got := bin.ChildByFieldName("right").Text(); got != "(y + 1)" {
		t.Errorf("right = %q, want %q", got, "(y + 1)")
	}
	var texts []string
	for _, leaf := range tree.RootNode().Leaves() {
		texts = append(texts, leaf.Text())
	}
	if got := strings.Join(texts, ""); got != src {
		t.Errorf("leaves concatenate to %q, want %q", got, src)
	}
}

func TestArithmeticCommentsAreExtras(t *testing.T) {
	lang := buildLanguage(t, arithmeticGrammar())
	tree := parseString(t, lang, "1 + # one\n 2;\n")
	want := "(program (binary left: (number) (comment) right: (number)))"
	if got := tree.String(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestArithmeticMissingToken(t *testing.T) {
	lang := buildLanguage(t, arithmeticGrammar())
	tree := parseString(t, lang, "(1+2;")
	if !tree.RootNode().HasError() {
		t.Fatalf("expected an error in %s", tree)
	}
	if got := tree.String(); !strings.Contains(got, `(MISSING ")")`) {
		t.Errorf("tree %s has no missing close paren", got)
	}
}

// The classic grammar that is LALR(1) but not SLR(1).
func TestLALRNotSLR(t *testing.T) {
	g := New("assign")
	g.Tokens("identifier", "_whitespace")
	g.Extras("_whitespace")
	g.Rule("statement", Choice(Seq(Ref("lvalue"), "=", Ref("rvalue")), Ref("rvalue")))
	g.Rule("lvalue", Choice(Seq("*", Ref("rvalue")), Ref("identifier")))
	g.Rule("rvalue", Ref("lvalue"))
	lang := buildLanguage(t, g)

	tree := parseString(t, lang, "*a = b")
	want := "(statement (lvalue (rvalue (lvalue (identifier)))) (rvalue (lvalue (identifier))))"
	if got := tree.String(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func danglingElse() *Grammar {
	g := New("dangling")
	g.Tokens("identifier", "_whitespace")
	g.Extras("_whitespace")
	g.Rule("statement", Choice(
		Seq("if", Ref("identifier"), Ref("statement")),
		Seq("if", Ref("identifier"), Ref("statement"), "else", Ref("statement")),
		Ref("identifier"),
	))
	return g
}

func TestConflictReport(t *testing.T) {
	_, report, err := danglingElse().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var kinds []string
	for _, c := range report.Unexpected() {
		kinds = append(kinds, c.Kind+" on "+c.Lookahead)
	}
	if diff := cmp.Diff([]string{"shift/reduce on else"}, kinds); diff != "" {
		t.Fatalf("unexpected conflicts (-want +got):\n%s", diff)
	}

	g := danglingElse()
	g.ExpectConflict("statement")
	_, report, err = g.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if u := report.Unexpected(); len(u) != 0 {
		t.Fatalf("declared conflict still reported: %v", u)
	}
	if len(report.Conflicts) != 1 || report.Conflicts[0].Resolution != "shift" {
		t.Fatalf("conflicts = %v, want one resolved by shifting", report.Conflicts)
	}
}

func TestDanglingElseBindsInner(t *testing.T) {
	g := danglingElse()
	g.ExpectConflict("statement")
	lang := buildLanguage(t, g)
	tree := parseString(t, lang, "if a if b c else d")
	want := "(statement (identifier) (statement (identifier) (statement (identifier)) (statement (identifier))))"
	if got := tree.String(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestNonAssociative(t *testing.T) {
	g := New("compare")
	g.Tokens("identifier", "_whitespace")
	g.Extras("_whitespace")
	g.NonAssoc(1, "<")
	g.Rule("expression", Choice(Seq(Ref("expression"), "<", Ref("expression")), Ref("identifier")))
	lang := buildLanguage(t, g)

	if tree := parseString(t, lang, "a < b"); tree.RootNode().HasError() {
		t.Errorf("a < b: unexpected error in %s", tree)
	}
	if tree := parseString(t, lang, "a < b < c"); !tree.RootNode().HasError() {
		t.Errorf("a < b < c: chained non-associative operator accepted: %s", tree)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Grammar
		want  string
	}{
		{"empty", func() *Grammar { return New("empty") }, "has no rules"},
		{"undefined", func() *Grammar {
			g := New("g")
			g.Rule("a", Ref("nowhere"))
			return g
		}, `undefined symbol "nowhere"`},
		{"bad start", func() *Grammar {
			g := New("g")
			g.Rule("a", "x")
			g.Start("b")
			return g
		}, `start rule "b"`},
		{"extra", func() *Grammar {
			g := New("g")
			g.Rule("a", "x")
			g.Extras("space")
			return g
		}, `extra "space"`},
		{"collision", func() *Grammar {
			g := New("g")
			g.Tokens("word")
			g.Rule("a", Lit("word"))
			return g
		}, "collides"},
		{"explosion", func() *Grammar {
			g := New("g")
			g.MaxAlternatives = 8
			g.Rule("a", Seq(Optional("a"), Optional("b"), Optional("c"), Optional("d")))
			return g
		}, "alternatives"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.build().Build()
			if err == nil {
				t.Fatalf("Build succeeded, want error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Build error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLanguageMetadata(t *testing.T) {
	lang := buildLanguage(t, arithmeticGrammar())
	if !lang.CompatibleWithRuntime() {
		t.Fatalf("ABI %s not compatible with runtime %s", lang.Version(), gotreesitter.RuntimeABI)
	}
	if got := lang.SymbolName(lang.StartSymbol); got != "program" {
		t.Errorf("start symbol = %q, want program", got)
	}
	checks := []struct {
		name           string
		visible, named bool
		extra          bool
	}{
		{"number", true, true, false},
		{"+", true, false, false},
		{"comment", true, true, true},
		{"_whitespace", false, false, true},
		{"binary", true, true, false},
		{"_expression", false, false, false},
	}
	for _, c := range checks {
		sym, ok := lang.SymbolByName(c.name)
		if !ok {
			t.Errorf("symbol %q missing", c.name)
			continue
		}
		m := lang.SymbolMetadata[sym]
		if m.Visible != c.visible || m.Named != c.named || m.Extra != c.extra {
			t.Errorf("%s metadata = %+v, want visible=%t named=%t extra=%t", c.name, m, c.visible, c.named, c.extra)
		}
	}
	if len(lang.InsertableSymbols) != 2 || lang.SymbolName(lang.InsertableSymbols[0]) != ")" {
		t.Errorf("insertable = %v", lang.InsertableSymbols)
	}
	if _, ok := lang.FieldByName("operand"); !ok {
		t.Errorf("field operand missing from %v", lang.FieldNames)
	}
}
