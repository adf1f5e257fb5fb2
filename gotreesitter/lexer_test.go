package gotreesitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// funcScanner adapts a function to the Scanner interface.
type funcScanner func(lx *ExternalLexer, st ScannerState) ScannerState

func (f funcScanner) InitialState() ScannerState { return ScannerState{} }

func (f funcScanner) Scan(lx *ExternalLexer, st ScannerState) ScannerState { return f(lx, st) }

// digitScanner emits runs of digits as symbol 1 and leaves everything else
// unrecognized.
var digitScanner = funcScanner(func(lx *ExternalLexer, st ScannerState) ScannerState {
	if lx.EOF() {
		return st
	}
	for c := lx.Lookahead(); c >= '0' && c <= '9'; c = lx.Lookahead() {
		lx.Advance(false)
	}
	if lx.Offset() > lx.TokenStart() {
		lx.MarkEnd()
		lx.SetResultSymbol(1)
		st[0]++
	}
	return st
})

func drain(ts *tokenStream, limit int) []Token {
	var out []Token
	for i := 0; i < limit; i++ {
		tok := ts.next()
		out = append(out, tok)
		if tok.Symbol == EOFSymbol {
			break
		}
	}
	return out
}

func TestTokenStreamFallsBackToErrorTokens(t *testing.T) {
	ts := newTokenStream(digitScanner, []byte("12a\n3"))
	type tok struct {
		Sym        Symbol
		Text       string
		Start, End uint32
		EndPoint   Point
		IsError    bool
	}
	var got []tok
	for _, tk := range drain(ts, 10) {
		got = append(got, tok{tk.Symbol, tk.Text, tk.StartByte, tk.EndByte, tk.EndPoint, tk.IsError})
	}
	want := []tok{
		{1, "12", 0, 2, Point{Column: 2}, false},
		{ErrorSymbol, "a", 2, 3, Point{Column: 3}, true},
		{ErrorSymbol, "\n", 3, 4, Point{Row: 1}, true},
		{1, "3", 4, 5, Point{Row: 1, Column: 1}, false},
		{EOFSymbol, "", 5, 5, Point{Row: 1, Column: 1}, false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	if ts.state[0] != 2 {
		t.Errorf("state counted %d digit runs, want 2", ts.state[0])
	}
}

func TestTokenStreamRecordsLookahead(t *testing.T) {
	ts := newTokenStream(digitScanner, []byte("12+"))
	tok := ts.next()
	// Stopping the digit run examined the "+".
	if tok.Lookahead != 1 {
		t.Errorf("lookahead = %d, want 1", tok.Lookahead)
	}
	ts = newTokenStream(digitScanner, []byte("12"))
	if tok := ts.next(); tok.Lookahead != 1 {
		t.Errorf("lookahead at end of input = %d, want 1", tok.Lookahead)
	}
}

func TestTokenStreamForcesProgress(t *testing.T) {
	// A scanner that only ever returns a zero-width token.
	stuck := funcScanner(func(lx *ExternalLexer, st ScannerState) ScannerState {
		if !lx.EOF() {
			lx.SetResultSymbol(1)
		}
		return st
	})
	ts := newTokenStream(stuck, []byte("ab"))
	toks := drain(ts, 2*maxZeroWidthRun+10)
	last := toks[len(toks)-1]
	if last.Symbol != EOFSymbol {
		t.Fatalf("stream did not reach EOF after %d tokens", len(toks))
	}
	var errs int
	for _, tk := range toks {
		if tk.IsError {
			errs++
		}
	}
	if errs != 2 {
		t.Errorf("forced %d error tokens, want 2", errs)
	}
}

func TestExternalLexerSkip(t *testing.T) {
	lx := newExternalLexer([]byte("  ab"), Length{})
	lx.Advance(true)
	lx.Advance(true)
	lx.Advance(false)
	lx.Advance(false)
	lx.MarkEnd()
	lx.SetResultSymbol(3)
	tok, ok := lx.token(ScannerState{})
	if !ok {
		t.Fatal("no token")
	}
	if tok.Text != "ab" || tok.StartByte != 2 || tok.StartPoint != (Point{Column: 2}) {
		t.Errorf("token = %q at %d %+v, want \"ab\" at 2", tok.Text, tok.StartByte, tok.StartPoint)
	}
}

func TestExternalLexerPeekAndExamine(t *testing.T) {
	lx := newExternalLexer([]byte("abcdef"), Length{})
	if got := lx.Peek(2); got != 'c' {
		t.Errorf("Peek(2) = %q, want c", got)
	}
	if got := lx.Peek(10); got != 0 {
		t.Errorf("Peek past end = %q, want 0", got)
	}
	lx = newExternalLexer([]byte("abcdef"), Length{})
	lx.AdvanceBytes(1)
	lx.MarkEnd()
	lx.Examine(3)
	lx.SetResultSymbol(2)
	tok, _ := lx.token(ScannerState{})
	if tok.Lookahead != 3 {
		t.Errorf("lookahead = %d, want 3", tok.Lookahead)
	}
	if got := string(lx.PeekRest()); got != "bcdef" {
		t.Errorf("PeekRest = %q", got)
	}
}
