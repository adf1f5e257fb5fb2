package gotreesitter

// RunScanner invokes the language's scanner once at the given position and
// returns the token together with the state for the following token. It is
// the building block for consumers that re-lex a region on their own, for
// example starting from a LexCache checkpoint.
func RunScanner(lang *Language, source []byte, at Length, state ScannerState) (Token, ScannerState) {
	ts := &tokenStream{scanner: lang.Scanner, source: source}
	ts.reset(at, state)
	tok := ts.next()
	return tok, ts.state
}

// ScanRange lexes tokens starting from checkpoint cp until a token starts at
// or after end. Tokens that end before start are dropped.
func ScanRange(lang *Language, source []byte, cp Checkpoint, start, end uint32) []Token {
	if lang == nil || lang.Scanner == nil {
		return nil
	}
	ts := &tokenStream{scanner: lang.Scanner, source: source}
	ts.reset(Length{Bytes: cp.Offset, Extent: cp.Point}, cp.State)
	var out []Token
	for {
		tok := ts.next()
		if tok.Symbol == EOFSymbol || tok.StartByte >= end {
			return out
		}
		if tok.EndByte > start || (tok.EndByte == start && tok.StartByte == start) {
			out = append(out, tok)
		}
	}
}
