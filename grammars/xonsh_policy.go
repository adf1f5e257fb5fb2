package grammars

// valueKeywords are keywords that act as operands.
var valueKeywords = map[string]bool{"True": true, "False": true, "None": true}

// isPathHead reports whether src starts with a path used as a command name:
// "./", "../", "/", "~/" or a lone "~".
func isPathHead(src []byte) bool {
	if len(src) == 0 {
		return false
	}
	switch src[0] {
	case '/':
		return len(src) == 1 || (src[1] != '/' && src[1] != '=' && !isBlank(src[1]))
	case '.':
		return len(src) > 1 && (src[1] == '/' || (src[1] == '.' && len(src) > 2 && src[2] == '/'))
	case '~':
		return len(src) == 1 || src[1] == '/' || isBlank(src[1]) || newlineLen(src[1:]) > 0
	}
	return false
}

// subprocessLine decides whether the logical line at src is a subprocess
// command. The line must start with a bare word: a name that is not a
// keyword, or a path. It is a command when the rest is not plausible Python:
// two operands next to each other, a -flag, && or ||, or a word followed by
// an environment variable, substitution or glob. When group is set, src
// follows a statement-initial "(" and the line ends at the matching ")".
//
// It returns the decision and how many bytes were inspected.
func subprocessLine(src []byte, group bool, keywords map[string]bool) (bool, int) {
	cur := newByteCursor(src)
	if group {
		cur.skipBlanks()
	}
	if isPathHead(cur.rest()) {
		return true, cur.offset + 3
	}
	n := identLen(cur.rest())
	if n == 0 {
		return false, cur.offset + 1
	}
	head := string(cur.rest()[:n])
	cur.advance(n)
	if keywords[head] {
		return false, cur.offset + 1
	}
	if next := cur.peekByte(); next == '"' || next == '\'' || next == '`' {
		// A string or glob prefix, not a command name.
		return false, cur.offset + 1
	}
	if cur.peekByte() == '!' {
		// "cmd! args" is a subprocess macro.
		if after := cur.peekAt(1); after == 0 || isBlank(after) || after == '\n' || after == '\r' {
			return true, cur.offset + 2
		}
	}

	operand := true
	depth := 0
	for !cur.eof() {
		spaced := cur.skipBlanks()
		if cur.eof() {
			break
		}
		c, next := cur.peekByte(), cur.peekAt(1)
		if depth == 0 {
			if c == '\n' || c == '\r' || c == ';' || c == '#' {
				break
			}
			if group && c == ')' {
				break
			}
		}
		adjacent := spaced && operand && depth == 0

		switch {
		case c == '\n' || c == '\r':
			cur.advance(1)

		case isIdentStart(cur.rest()):
			n := identLen(cur.rest())
			text := string(cur.rest()[:n])
			cur.advance(n)
			switch after := cur.peekByte(); {
			case after == '"' || after == '\'':
				cur.advance(quotedLen(cur.rest()))
			case after == '`':
				cur.advance(backtickLen(cur.rest()))
			case keywords[text] && !valueKeywords[text]:
				operand = false
				continue
			}
			if adjacent {
				return true, cur.offset
			}
			operand = true

		case isASCIIDigit(c):
			if adjacent {
				return true, cur.offset + 1
			}
			cur.advance(numberLen(cur.rest()))
			operand = true

		case c == '"' || c == '\'':
			if adjacent {
				return true, cur.offset + 1
			}
			cur.advance(quotedLen(cur.rest()))
			operand = true

		case c == '`':
			if adjacent {
				return true, cur.offset + 1
			}
			cur.advance(backtickLen(cur.rest()))
			operand = true

		case c == '$':
			if adjacent {
				return true, cur.offset + 2
			}
			if n := identLen(cur.rest()[1:]); n > 0 {
				cur.advance(1 + n)
				operand = true
				continue
			}
			cur.advance(1)
			operand = false

		case (c == '@' && (next == '(' || next == '$')) || (c == '!' && (next == '(' || next == '[')):
			if adjacent {
				return true, cur.offset + 2
			}
			cur.advance(1)
			operand = false

		case c == '-':
			if spaced && operand && depth == 0 && (next == '-' || isASCIIWordStart(next)) {
				return true, cur.offset + 2
			}
			cur.advance(1)
			operand = false

		case (c == '&' && next == '&') || (c == '|' && next == '|'):
			if depth == 0 {
				return true, cur.offset + 2
			}
			cur.advance(2)
			operand = false

		case c == '.':
			if isASCIIDigit(next) {
				if adjacent {
					return true, cur.offset + 2
				}
				cur.advance(numberLen(cur.rest()))
				operand = true
				continue
			}
			if adjacent {
				return true, cur.offset + 1
			}
			cur.advance(1)
			operand = false

		case c == '~':
			// Python has no binary "~", so "cd ~/src" and "cd ~" are commands.
			if adjacent {
				return true, cur.offset + 2
			}
			cur.advance(1)
			operand = false

		case c == '/':
			if adjacent && next != '/' && next != '=' && !isBlank(next) {
				return true, cur.offset + 2
			}
			cur.advance(1)
			operand = false

		case c == '*':
			if adjacent && (next == '.' || isASCIIWordStart(next)) {
				return true, cur.offset + 2
			}
			cur.advance(1)
			operand = false

		case c == '{':
			if adjacent {
				return true, cur.offset + 1
			}
			cur.advance(1)
			depth++
			operand = false

		case c == '(' || c == '[':
			cur.advance(1)
			depth++
			operand = false

		case c == ')' || c == ']' || c == '}':
			if depth == 0 {
				return false, cur.offset + 1
			}
			cur.advance(1)
			depth--
			operand = true

		case c == '=' && next != '=' && depth == 0:
			return false, cur.offset + 2

		default:
			cur.advance(1)
			operand = false
		}
	}
	return false, cur.offset + 1
}

// xontribLine reports whether src is a "xontrib load" line listing the
// xontribs to load. Other xontrib subcommands stay subprocess commands.
func xontribLine(src []byte) (bool, int) {
	cur := newByteCursor(src)
	for _, word := range []string{"xontrib", "load"} {
		n := identLen(cur.rest())
		if string(cur.rest()[:n]) != word {
			return false, cur.offset + n + 1
		}
		cur.advance(n)
		if !cur.skipBlanks() {
			return false, cur.offset + 1
		}
	}
	names := 0
	for !cur.eof() {
		switch c := cur.peekByte(); {
		case c == '\n' || c == '\r' || c == ';' || c == '#':
			return names > 0, cur.offset + 1
		case isIdentStart(cur.rest()):
			cur.advance(identLen(cur.rest()))
			names++
		case c == '.' && names > 0:
			cur.advance(1)
		default:
			return false, cur.offset + 1
		}
		cur.skipBlanks()
	}
	return names > 0, cur.offset + 1
}

// macroArgLen returns the length of the raw text at the start of src up to
// a comma or stop byte outside brackets and quotes, and how many bytes it
// read. A zero stop ends the text at the line break instead. Trailing
// blanks and line breaks are left out of the length.
func macroArgLen(src []byte, comma bool, stop byte) (n, examined int) {
	depth := 0
	i := 0
scan:
	for i < len(src) {
		switch c := src[i]; {
		case c == '"' || c == '\'':
			i += max(quotedLen(src[i:]), 1)
			continue
		case c == '(' || c == '[' || c == '{':
			depth++
		case depth > 0 && (c == ')' || c == ']' || c == '}'):
			depth--
		case depth == 0 && (c == stop || (comma && c == ',')):
			break scan
		case stop == 0 && (c == '\n' || c == '\r'):
			break scan
		}
		i++
	}
	n = i
	for n > 0 && (isBlank(src[n-1]) || src[n-1] == '\n' || src[n-1] == '\r') {
		n--
	}
	return n, i + 1
}

// quotedLen returns the length of the quoted string at the start of src,
// stopping at the end of the line when it is unterminated.
func quotedLen(src []byte) int {
	if len(src) == 0 {
		return 0
	}
	q := src[0]
	if len(src) >= 3 && src[1] == q && src[2] == q {
		for i := 3; i+2 < len(src); i++ {
			if src[i] == '\\' {
				i++
				continue
			}
			if src[i] == q && src[i+1] == q && src[i+2] == q {
				return i + 3
			}
		}
		return len(src)
	}
	for i := 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			if newlineLen(src[i+1:]) > 0 {
				i += newlineLen(src[i+1:])
				continue
			}
			i++
		case q:
			return i + 1
		case '\n', '\r':
			return i
		}
	}
	return len(src)
}

func backtickLen(src []byte) int {
	n, _ := backtickSpan(src)
	return n
}

// backtickSpan returns the length of the backtick literal at the start of
// src. An unterminated literal runs to the end of the line and ok is false.
func backtickSpan(src []byte) (n int, ok bool) {
	for i := 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			if i+1 < len(src) && src[i+1] != '\n' && src[i+1] != '\r' {
				i++
			}
		case '`':
			return i + 1, true
		case '\n', '\r':
			return i, false
		}
	}
	return len(src), false
}

func numberLen(src []byte) int {
	n, _ := scanNumber(src)
	return n
}

// scanNumber returns the length of the numeric literal at the start of src
// and whether it is a float.
func scanNumber(src []byte) (int, bool) {
	i := 0
	if len(src) > 1 && src[0] == '0' && (src[1]|0x20 == 'x' || src[1]|0x20 == 'o' || src[1]|0x20 == 'b') {
		i = 2
		for i < len(src) && (isASCIIHex(src[i]) || src[i] == '_') {
			i++
		}
		return i, false
	}
	float := false
	digits := func() {
		for i < len(src) && (isASCIIDigit(src[i]) || src[i] == '_') {
			i++
		}
	}
	digits()
	if i < len(src) && src[i] == '.' && !(i+1 < len(src) && src[i+1] == '.') {
		float = true
		i++
		digits()
	}
	if i < len(src) && src[i]|0x20 == 'e' {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isASCIIDigit(src[j]) {
			float = true
			i = j
			digits()
		}
	}
	if i < len(src) && src[i]|0x20 == 'j' {
		float = true
		i++
	}
	return i, float
}
