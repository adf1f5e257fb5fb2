package gotreesitter

import "unsafe"

// Point is a row/column position in source text. Columns count bytes.
type Point struct {
	Row    uint32
	Column uint32
}

// Length is a byte count paired with the row/column extent it spans. Node
// sizes are stored as Lengths so that subtrees carry no absolute positions
// and can be shared between trees whose text shifted around them.
type Length struct {
	Bytes  uint32
	Extent Point
}

func lengthAdd(a, b Length) Length {
	out := Length{Bytes: a.Bytes + b.Bytes}
	if b.Extent.Row > 0 {
		out.Extent = Point{Row: a.Extent.Row + b.Extent.Row, Column: b.Extent.Column}
	} else {
		out.Extent = Point{Row: a.Extent.Row, Column: a.Extent.Column + b.Extent.Column}
	}
	return out
}

// lengthSub returns the length from b to a. a must not precede b.
func lengthSub(a, b Length) Length {
	out := Length{}
	if a.Bytes > b.Bytes {
		out.Bytes = a.Bytes - b.Bytes
	}
	if a.Extent.Row > b.Extent.Row {
		out.Extent = Point{Row: a.Extent.Row - b.Extent.Row, Column: a.Extent.Column}
	} else if a.Extent.Column > b.Extent.Column {
		out.Extent = Point{Column: a.Extent.Column - b.Extent.Column}
	}
	return out
}

func pointLess(a, b Point) bool {
	return a.Row < b.Row || (a.Row == b.Row && a.Column < b.Column)
}

// ScannerStateSize is the fixed size of a ScannerState in bytes.
const ScannerStateSize = 96

// ScannerState is an opaque, fixed-size snapshot of lexical context. The
// language's Scanner owns its layout; the runtime only copies, interns and
// compares it.
type ScannerState [ScannerStateSize]byte

// Scanner is the context-sensitive lexer contract. Scan lexes exactly one
// token at the cursor in lx, reporting it through SetResultSymbol/MarkEnd,
// and returns the state to use for the next token. Scan must be a pure
// function of the source bytes it examines and the incoming state.
type Scanner interface {
	InitialState() ScannerState
	Scan(lx *ExternalLexer, state ScannerState) ScannerState
}

// Token is a lexed token with position info.
type Token struct {
	Symbol     Symbol
	Text       string
	StartByte  uint32
	EndByte    uint32
	StartPoint Point
	EndPoint   Point

	// State is the scanner state the token was lexed from.
	State ScannerState
	// Lookahead counts the bytes past EndByte the scanner examined.
	Lookahead uint32
	// IsError marks unrecognized input or an unterminated construct.
	IsError bool
	// IsMissing marks a zero-width token synthesized by the scanner or by
	// error recovery to close a construct.
	IsMissing bool
}

func (t Token) length() Length {
	return lengthSub(
		Length{Bytes: t.EndByte, Extent: t.EndPoint},
		Length{Bytes: t.StartByte, Extent: t.StartPoint},
	)
}

func (t Token) startLength() Length {
	return Length{Bytes: t.StartByte, Extent: t.StartPoint}
}

func bytesToStringNoCopy(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// maxZeroWidthRun bounds how many consecutive zero-width tokens a scanner may
// emit at one position before the runtime forces progress.
const maxZeroWidthRun = 256

// tokenStream drives a Scanner over source, tracking the cursor and state
// between calls.
type tokenStream struct {
	scanner Scanner
	source  []byte
	pos     Length
	state   ScannerState

	zeroRun    int
	zeroRunPos uint32
}

func newTokenStream(s Scanner, source []byte) *tokenStream {
	return &tokenStream{scanner: s, source: source, state: s.InitialState()}
}

// reset moves the stream to pos with the given scanner state.
func (ts *tokenStream) reset(pos Length, state ScannerState) {
	ts.pos = pos
	ts.state = state
	ts.zeroRun = 0
}

// next lexes the token at the cursor and advances past it.
func (ts *tokenStream) next() Token {
	lx := newExternalLexer(ts.source, ts.pos)
	before := ts.state
	after := ts.scanner.Scan(lx, before)
	tok, ok := lx.token(before)
	if !ok {
		tok = ts.fallbackToken(before)
		after = before
	}

	if tok.EndByte == tok.StartByte && tok.Symbol != EOFSymbol {
		if ts.zeroRunPos == tok.StartByte {
			ts.zeroRun++
		} else {
			ts.zeroRunPos = tok.StartByte
			ts.zeroRun = 1
		}
		if ts.zeroRun > maxZeroWidthRun {
			tok = ts.fallbackToken(before)
			after = before
		}
	}

	ts.pos = Length{Bytes: tok.EndByte, Extent: tok.EndPoint}
	ts.state = after
	return tok
}

// fallbackToken produces EOF at end of input, otherwise a one-byte error
// token, so the parser always makes progress.
func (ts *tokenStream) fallbackToken(state ScannerState) Token {
	start := ts.pos
	if int(start.Bytes) >= len(ts.source) {
		return Token{
			Symbol:     EOFSymbol,
			StartByte:  start.Bytes,
			EndByte:    start.Bytes,
			StartPoint: start.Extent,
			EndPoint:   start.Extent,
			State:      state,
		}
	}
	end := start
	end.Bytes++
	if ts.source[start.Bytes] == '\n' {
		end.Extent = Point{Row: start.Extent.Row + 1}
	} else {
		end.Extent.Column++
	}
	return Token{
		Symbol:     ErrorSymbol,
		Text:       bytesToStringNoCopy(ts.source[start.Bytes:end.Bytes]),
		StartByte:  start.Bytes,
		EndByte:    end.Bytes,
		StartPoint: start.Extent,
		EndPoint:   end.Extent,
		State:      state,
		IsError:    true,
	}
}
