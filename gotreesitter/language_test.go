package gotreesitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tinyLanguage is a hand-built table for
//
//	expression -> NUMBER
//	expression -> expression "+" NUMBER
//
// with symbols 0 EOF, 1 NUMBER, 2 "+", 3 expression.
func tinyLanguage() *Language {
	return &Language{
		Name:        "tiny",
		ABIVersion:  RuntimeABI,
		SymbolCount: 4,
		TokenCount:  3,
		StateCount:  5,
		SymbolNames: []string{"end", "number", "+", "expression"},
		SymbolMetadata: []SymbolMetadata{
			{Name: "end"},
			{Name: "number", Visible: true, Named: true},
			{Name: "+", Visible: true},
			{Name: "expression", Visible: true, Named: true},
		},
		FieldNames:       []string{"", "left"},
		ProductionFields: [][]FieldID{nil, {1}},
		ParseActions: []ParseActionEntry{
			{},
			{Actions: []ParseAction{{Type: ParseActionShift, State: 1}}},
			{Actions: []ParseAction{{Type: ParseActionReduce, Symbol: 3, ChildCount: 1}}},
			{Actions: []ParseAction{{Type: ParseActionShift, State: 2}}},
			{Actions: []ParseAction{{Type: ParseActionShift, State: 3}}},
			{Actions: []ParseAction{{Type: ParseActionAccept}}},
			{Actions: []ParseAction{{Type: ParseActionShift, State: 4}}},
			{Actions: []ParseAction{{Type: ParseActionReduce, Symbol: 3, ChildCount: 3, ProductionID: 1}}},
		},
		ParseTable: ExpandParseTable(4, [][]uint16{
			{1, 1, 3, 3},
			{0, 2, 2, 2},
			{0, 5, 2, 4},
			{1, 6},
			{0, 7, 2, 7},
		}),
		InsertableSymbols: []Symbol{1},
	}
}

func TestTinyLanguageLookups(t *testing.T) {
	lang := tinyLanguage()
	act, ok := lang.lookupAction(0, 1)
	if !ok || act.Type != ParseActionShift || act.State != 1 {
		t.Errorf("action(0, number) = %+v, %t", act, ok)
	}
	if _, ok := lang.lookupAction(0, 2); ok {
		t.Error("action(0, +) exists")
	}
	if _, ok := lang.lookupAction(99, 1); ok {
		t.Error("action in an out of range state exists")
	}
	if next, ok := lang.lookupGoto(0, 3); !ok || next != 2 {
		t.Errorf("goto(0, expression) = %d, %t; want 2", next, ok)
	}
	if _, ok := lang.lookupGoto(1, 3); ok {
		t.Error("goto found where state 1 only reduces")
	}
	if diff := cmp.Diff([]Symbol{0, 2}, lang.ExpectedSymbols(2)); diff != "" {
		t.Errorf("expected symbols in state 2 (-want +got):\n%s", diff)
	}
	if got := lang.fieldFor(1, 0); got != 1 {
		t.Errorf("fieldFor(1, 0) = %d, want 1", got)
	}
	if got := lang.fieldFor(0, 0); got != 0 {
		t.Errorf("fieldFor(0, 0) = %d, want 0", got)
	}
	if got := lang.fieldFor(7, 0); got != 0 {
		t.Errorf("fieldFor of an unknown production = %d, want 0", got)
	}
}

type tinyScanner struct{}

func (tinyScanner) InitialState() ScannerState { return ScannerState{} }

func (tinyScanner) Scan(lx *ExternalLexer, st ScannerState) ScannerState {
	switch c := lx.Lookahead(); {
	case c == 0:
		lx.SetResultSymbol(EOFSymbol)
	case c >= '0' && c <= '9':
		for c >= '0' && c <= '9' {
			lx.Advance(false)
			c = lx.Lookahead()
		}
		lx.MarkEnd()
		lx.SetResultSymbol(1)
	case c == '+':
		lx.Advance(false)
		lx.MarkEnd()
		lx.SetResultSymbol(2)
	}
	return st
}

func TestTinyLanguageParse(t *testing.T) {
	lang := tinyLanguage()
	lang.Scanner = tinyScanner{}
	p := NewParser(lang)

	tree := p.Parse([]byte("1+2+3"))
	want := "(expression left: (expression left: (expression (number)) (number)) (number))"
	if got := tree.String(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}

	tree = p.Parse([]byte("1+"))
	if got := tree.String(); got != `(expression left: (expression (number)) (MISSING number))` {
		t.Errorf("recovered tree = %s", got)
	}
}

func TestCompatibleWithRuntime(t *testing.T) {
	tests := []struct {
		abi  string
		want bool
	}{
		{RuntimeABI, true},
		{"v1.0.0", true},
		{"v1.9.0", false},
		{"v0.9.0", false},
		{"v2.0.0", false},
		{"", false},
		{"1.2.0", false},
	}
	for _, tt := range tests {
		lang := &Language{ABIVersion: tt.abi}
		if got := lang.CompatibleWithRuntime(); got != tt.want {
			t.Errorf("CompatibleWithRuntime(%q) = %t, want %t", tt.abi, got, tt.want)
		}
	}
}

func TestSymbolNames(t *testing.T) {
	lang := tinyLanguage()
	if got := lang.SymbolName(ErrorSymbol); got != "ERROR" {
		t.Errorf("SymbolName(ErrorSymbol) = %q", got)
	}
	if got := lang.SymbolName(200); got != "" {
		t.Errorf("SymbolName(200) = %q, want empty", got)
	}
	if sym, ok := lang.SymbolByName("expression"); !ok || sym != 3 {
		t.Errorf("SymbolByName(expression) = %d, %t", sym, ok)
	}
	if _, ok := lang.FieldByName(""); ok {
		t.Error("the empty field name resolved")
	}
	if !lang.IsTerminal(2) || lang.IsTerminal(3) {
		t.Error("IsTerminal misclassifies symbols")
	}
	if !lang.isProtected(EOFSymbol) || lang.isProtected(1) {
		t.Error("only end of input is protected by default")
	}
	if got := ParseActionReduce.String(); got != "reduce" {
		t.Errorf("ParseActionReduce.String() = %q", got)
	}
}
