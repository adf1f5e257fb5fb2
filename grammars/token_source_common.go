package grammars

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// byteCursor walks source bytes without moving the scanner. Lookahead
// decisions run on it and then report how far they read.
type byteCursor struct {
	src    []byte
	offset int
}

func newByteCursor(src []byte) byteCursor {
	return byteCursor{src: src}
}

func (c *byteCursor) eof() bool {
	return c.offset >= len(c.src)
}

func (c *byteCursor) peekByte() byte {
	return c.peekAt(0)
}

func (c *byteCursor) peekAt(n int) byte {
	if c.offset+n >= len(c.src) {
		return 0
	}
	return c.src[c.offset+n]
}

func (c *byteCursor) rest() []byte {
	if c.eof() {
		return nil
	}
	return c.src[c.offset:]
}

func (c *byteCursor) advance(n int) {
	c.offset += n
	if c.offset > len(c.src) {
		c.offset = len(c.src)
	}
}

// skipBlanks skips spaces, tabs and line continuations and reports whether
// anything was skipped.
func (c *byteCursor) skipBlanks() bool {
	start := c.offset
	for !c.eof() {
		switch c.peekByte() {
		case ' ', '\t', '\f':
			c.offset++
		case '\\':
			n := newlineLen(c.src[c.offset+1:])
			if n == 0 {
				return c.offset > start
			}
			c.offset += 1 + n
		default:
			return c.offset > start
		}
	}
	return c.offset > start
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIIHex(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isASCIIWordStart(b byte) bool {
	return isASCIIAlpha(b) || b == '_'
}

func isASCIIWordPart(b byte) bool {
	return isASCIIWordStart(b) || isASCIIDigit(b)
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f'
}

// newlineLen returns the length of the line break at the start of src: 1
// for "\n", 2 for "\r\n", 0 otherwise.
func newlineLen(src []byte) int {
	switch {
	case len(src) > 0 && src[0] == '\n':
		return 1
	case len(src) > 1 && src[0] == '\r' && src[1] == '\n':
		return 2
	}
	return 0
}

// isIdentStart reports whether src begins with a character that can start a
// Python identifier.
func isIdentStart(src []byte) bool {
	if len(src) == 0 {
		return false
	}
	if src[0] < utf8.RuneSelf {
		return isASCIIWordStart(src[0])
	}
	r, _ := utf8.DecodeRune(src)
	return unicode.IsLetter(r)
}

// identLen returns the byte length of the identifier at the start of src.
func identLen(src []byte) int {
	n := 0
	for n < len(src) {
		b := src[n]
		if b < utf8.RuneSelf {
			if isASCIIWordPart(b) && (n > 0 || !isASCIIDigit(b)) {
				n++
				continue
			}
			return n
		}
		r, size := utf8.DecodeRune(src[n:])
		if !unicode.IsLetter(r) && (n == 0 || !(unicode.IsDigit(r) || unicode.Is(unicode.Mn, r))) {
			return n
		}
		n += size
	}
	return n
}

func isIdentifierName(name string) bool {
	return name != "" && identLen([]byte(name)) == len(name)
}

func isPunctuationName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if isASCIIWordPart(name[i]) || name[i] <= ' ' || name[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// tokenLookup resolves the scanner's terminals by name and remembers the
// first one the language lacks.
type tokenLookup struct {
	lang      *gotreesitter.Language
	lexerName string
	firstErr  error
}

func newTokenLookup(lang *gotreesitter.Language, lexerName string) *tokenLookup {
	return &tokenLookup{lang: lang, lexerName: lexerName}
}

func (tl *tokenLookup) require(name string) gotreesitter.Symbol {
	sym, ok := tl.lang.SymbolByName(name)
	if !ok || !tl.lang.IsTerminal(sym) {
		if tl.firstErr == nil {
			tl.firstErr = fmt.Errorf("%s scanner: token symbol %q not found", tl.lexerName, name)
		}
		return 0
	}
	return sym
}

func (tl *tokenLookup) optional(names ...string) gotreesitter.Symbol {
	for _, name := range names {
		if sym, ok := tl.lang.SymbolByName(name); ok && tl.lang.IsTerminal(sym) {
			return sym
		}
	}
	return 0
}

func (tl *tokenLookup) err() error {
	return tl.firstErr
}
