package gotreesitter

import "unicode/utf8"

// ExternalLexer is the cursor API a Scanner works through. It mirrors the
// essential tree-sitter scanner API (lookahead, advance, mark_end,
// result_symbol) and additionally records how far past the token end the
// scanner looked, which the incremental reconciler uses to decide whether an
// edit can change the token.
type ExternalLexer struct {
	source []byte

	startPos int
	pos      int
	endPos   int
	furthest int

	startPoint Point
	point      Point
	endPoint   Point

	resultSymbol Symbol
	hasResult    bool
	isError      bool
	isMissing    bool
}

func newExternalLexer(source []byte, at Length) *ExternalLexer {
	pos := int(at.Bytes)
	return &ExternalLexer{
		source:     source,
		startPos:   pos,
		pos:        pos,
		endPos:     pos,
		furthest:   pos,
		startPoint: at.Extent,
		point:      at.Extent,
		endPoint:   at.Extent,
	}
}

func (l *ExternalLexer) touch(pos int) {
	if pos > l.furthest {
		l.furthest = pos
	}
}

// Lookahead returns the current rune or 0 at EOF.
func (l *ExternalLexer) Lookahead() rune {
	if l.pos >= len(l.source) {
		l.touch(l.pos + 1)
		return 0
	}
	r, size := utf8.DecodeRune(l.source[l.pos:])
	l.touch(l.pos + size)
	return r
}

// Peek returns the byte offset bytes past the cursor, or 0 past EOF.
func (l *ExternalLexer) Peek(offset int) byte {
	at := l.pos + offset
	l.touch(at + 1)
	if at < 0 || at >= len(l.source) {
		return 0
	}
	return l.source[at]
}

// PeekRest returns the source from the cursor onward without recording any
// lookahead. Callers that inspect it must report how far they read through
// Examine.
func (l *ExternalLexer) PeekRest() []byte {
	if l.pos >= len(l.source) {
		return nil
	}
	return l.source[l.pos:]
}

// Examine records that the scanner inspected n bytes past the cursor.
func (l *ExternalLexer) Examine(n int) {
	l.touch(l.pos + n)
}

// EOF reports whether the cursor is at end of input.
func (l *ExternalLexer) EOF() bool {
	if l.pos >= len(l.source) {
		l.touch(l.pos + 1)
		return true
	}
	return false
}

// Advance consumes one rune. When skip is true, consumed bytes are excluded
// from the token span.
func (l *ExternalLexer) Advance(skip bool) {
	if l.pos >= len(l.source) {
		return
	}

	r, size := utf8.DecodeRune(l.source[l.pos:])
	l.pos += size
	l.touch(l.pos)
	if r == '\n' {
		l.point.Row++
		l.point.Column = 0
	} else {
		l.point.Column += uint32(size)
	}

	if skip {
		l.startPos = l.pos
		l.startPoint = l.point
		l.endPos = l.pos
		l.endPoint = l.point
	}
}

// AdvanceBytes consumes n bytes, which must not split a line break.
func (l *ExternalLexer) AdvanceBytes(n int) {
	for i := 0; i < n && l.pos < len(l.source); i++ {
		b := l.source[l.pos]
		l.pos++
		if b == '\n' {
			l.point.Row++
			l.point.Column = 0
		} else {
			l.point.Column++
		}
	}
	l.touch(l.pos)
}

// MarkEnd marks the current scanner position as the token end.
func (l *ExternalLexer) MarkEnd() {
	l.endPos = l.pos
	l.endPoint = l.point
}

// SetResultSymbol sets the token symbol to emit.
func (l *ExternalLexer) SetResultSymbol(sym Symbol) {
	l.resultSymbol = sym
	l.hasResult = true
}

// SetError flags the token as a lexical error.
func (l *ExternalLexer) SetError() { l.isError = true }

// SetMissing flags a zero-width token that stands in for absent text, such
// as the closing quote of an unterminated string.
func (l *ExternalLexer) SetMissing() { l.isMissing = true }

// GetColumn returns the current column (0-based, in bytes).
func (l *ExternalLexer) GetColumn() uint32 {
	return l.point.Column
}

// Offset returns the cursor's byte offset.
func (l *ExternalLexer) Offset() int { return l.pos }

// TokenStart returns the byte offset the token begins at.
func (l *ExternalLexer) TokenStart() int { return l.startPos }

func (l *ExternalLexer) token(state ScannerState) (Token, bool) {
	if !l.hasResult {
		return Token{}, false
	}
	if l.endPos < l.startPos {
		return Token{}, false
	}
	look := 0
	if l.furthest > l.endPos {
		look = l.furthest - l.endPos
	}

	return Token{
		Symbol:     l.resultSymbol,
		Text:       bytesToStringNoCopy(l.source[l.startPos:l.endPos]),
		StartByte:  uint32(l.startPos),
		EndByte:    uint32(l.endPos),
		StartPoint: l.startPoint,
		EndPoint:   l.endPoint,
		State:      state,
		Lookahead:  uint32(look),
		IsError:    l.isError,
		IsMissing:  l.isMissing,
	}, true
}
