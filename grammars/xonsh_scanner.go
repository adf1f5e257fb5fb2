package grammars

import (
	"strings"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// compoundKeywords open a statement whose header ends with a colon.
var compoundKeywords = map[string]bool{
	"if": true, "elif": true, "else": true, "while": true, "for": true,
	"try": true, "except": true, "finally": true, "with": true,
	"def": true, "class": true, "async": true,
}

// explicitTokens are scanned by hand rather than through the operator
// table: the openers of nested lexical contexts and the "@." of at-objects.
var explicitTokens = map[string]bool{
	"$(": true, "${": true, "$[": true, "!(": true, "![": true, "@(": true, "@$(": true, "@.": true,
}

// contextualKeywords are literals of the grammar that stay identifiers
// outside the statements that use them.
var contextualKeywords = map[string]bool{"xontrib": true, "load": true}

// Redirection spellings in subprocess mode, longest first.
var (
	streamMerges = []string{
		"err>out", "err>&1", "out>err", "2>&1", "1>&2", "err>o", "out>e", "e>out", "o>err", "e>o", "o>e",
	}
	redirects = []string{
		"err>>", "out>>", "all>>", "err>", "out>", "all>",
		"&>>", "2>>", "1>>", "e>>", "o>>", "a>>",
		"&>", "2>", "1>", "e>", "o>", "a>", ">>", ">", "<",
	}
)

// XonshScanner lexes xonsh source. It tracks indentation, bracket depth,
// nested strings and substitutions, and whether the current logical line is
// a subprocess command; all of it lives in the ScannerState, so the scanner
// itself is immutable and safe to share between parsers.
type XonshScanner struct {
	newline, indent, dedent, whitespace, comment gotreesitter.Symbol

	identifier, integer, float, ellipsis gotreesitter.Symbol

	stringStart, pathStringStart, stringContent, escapeSequence, stringEnd gotreesitter.Symbol
	typeConversion, formatText                                             gotreesitter.Symbol

	envVariable, word, braceExpansion, modifier gotreesitter.Symbol
	pipe, logical, redirect, streamMerge        gotreesitter.Symbol

	regexGlob, regexPathGlob, globPattern, globPath, formattedGlob, customGlob gotreesitter.Symbol

	macroArgument, xontrib, load gotreesitter.Symbol

	keywords   map[string]gotreesitter.Symbol
	keywordSet map[string]bool
	operators  map[string]gotreesitter.Symbol
	maxOpLen   int
}

// NewXonshScanner resolves the scanner's symbols against lang.
func NewXonshScanner(lang *gotreesitter.Language) (*XonshScanner, error) {
	tl := newTokenLookup(lang, "xonsh")
	s := &XonshScanner{
		newline:         tl.require("_newline"),
		indent:          tl.require("_indent"),
		dedent:          tl.require("_dedent"),
		whitespace:      tl.require("_whitespace"),
		comment:         tl.require("comment"),
		identifier:      tl.require("identifier"),
		integer:         tl.require("integer"),
		float:           tl.require("float"),
		ellipsis:        tl.require("ellipsis"),
		stringStart:     tl.require("string_start"),
		pathStringStart: tl.require("path_string_start"),
		stringContent:   tl.require("string_content"),
		escapeSequence:  tl.require("escape_sequence"),
		stringEnd:       tl.require("string_end"),
		typeConversion:  tl.require("type_conversion"),
		formatText:      tl.require("_format_text"),
		envVariable:     tl.require("env_variable"),
		word:            tl.require("word"),
		braceExpansion:  tl.require("brace_expansion"),
		modifier:        tl.require("subprocess_modifier"),
		pipe:            tl.require("pipe_operator"),
		logical:         tl.require("logical_operator"),
		redirect:        tl.require("redirect_operator"),
		streamMerge:     tl.require("stream_merge_operator"),
		regexGlob:       tl.require("regex_glob"),
		regexPathGlob:   tl.require("regex_path_glob"),
		globPattern:     tl.require("glob_pattern"),
		globPath:        tl.require("glob_path"),
		formattedGlob:   tl.require("formatted_glob"),
		customGlob:      tl.require("custom_function_glob"),
		macroArgument:   tl.require("macro_argument"),
		xontrib:         tl.require("xontrib"),
		load:            tl.require("load"),
		keywords:        make(map[string]gotreesitter.Symbol),
		keywordSet:      make(map[string]bool),
		operators:       make(map[string]gotreesitter.Symbol),
	}
	for _, name := range []string{"(", ")", "[", "]", "{", "}", ":", ";", "=", "$(", "${", "$[", "!(", "![", "@(", "@$(", "!", "@."} {
		tl.require(name)
	}
	if err := tl.err(); err != nil {
		return nil, err
	}

	for sym := gotreesitter.Symbol(1); uint32(sym) < lang.TokenCount; sym++ {
		meta := lang.SymbolMetadata[sym]
		if meta.Named || strings.HasPrefix(meta.Name, "_") || contextualKeywords[meta.Name] {
			continue
		}
		switch {
		case isIdentifierName(meta.Name):
			s.keywords[meta.Name] = sym
			s.keywordSet[meta.Name] = true
		case isPunctuationName(meta.Name):
			s.operators[meta.Name] = sym
			if !explicitTokens[meta.Name] {
				s.maxOpLen = max(s.maxOpLen, len(meta.Name))
			}
		}
	}
	return s, nil
}

// InitialState is the state at the start of a file: a fresh logical line
// with no indentation.
func (s *XonshScanner) InitialState() gotreesitter.ScannerState {
	st := scanState{flags: flagLineStart}
	return st.encode()
}

// Scan lexes one token.
func (s *XonshScanner) Scan(lx *gotreesitter.ExternalLexer, raw gotreesitter.ScannerState) gotreesitter.ScannerState {
	st := decodeState(raw)
	s.scan(lx, &st)
	return st.encode()
}

func (s *XonshScanner) scan(lx *gotreesitter.ExternalLexer, st *scanState) {
	afterName := st.flags.has(flagAfterName)
	st.clear(flagAfterName)
	if st.dedents > 0 {
		st.dedents--
		if st.dedents == 0 && st.flags.has(flagDedentError) {
			st.clear(flagDedentError)
			lx.SetError()
		}
		s.emit(lx, s.dedent)
		return
	}
	if lx.EOF() {
		s.scanEOF(lx, st)
		return
	}
	if st.flags.has(flagLineStart) && st.nFrames == 0 {
		if s.scanLineStart(lx, st) {
			return
		}
	}

	switch top := st.top(); {
	case top == nil:
		if st.flags.has(flagSubprocess) {
			s.scanSubprocess(lx, st)
		} else {
			s.scanPython(lx, st, afterName)
		}
	case top.kind == frameString:
		s.scanString(lx, st)
	case top.kind == frameFormatSpec:
		s.scanFormatSpec(lx, st)
	case top.kind == frameMacro:
		s.scanMacroArgs(lx, st)
	case top.kind.python():
		s.scanPython(lx, st, afterName)
	default:
		s.scanSubprocess(lx, st)
	}
}

// emit ends the token at the cursor.
func (s *XonshScanner) emit(lx *gotreesitter.ExternalLexer, sym gotreesitter.Symbol) {
	lx.MarkEnd()
	lx.SetResultSymbol(sym)
}

// take consumes n bytes as a token of kind sym.
func (s *XonshScanner) take(lx *gotreesitter.ExternalLexer, n int, sym gotreesitter.Symbol) {
	lx.Examine(n)
	lx.AdvanceBytes(n)
	s.emit(lx, sym)
}

// takeError consumes n bytes as an error token.
func (s *XonshScanner) takeError(lx *gotreesitter.ExternalLexer, n int) {
	lx.SetError()
	s.take(lx, max(n, 1), gotreesitter.ErrorSymbol)
}

// missing emits a zero-width, error-flagged stand-in for sym.
func (s *XonshScanner) missing(lx *gotreesitter.ExternalLexer, sym gotreesitter.Symbol) {
	lx.SetMissing()
	lx.SetError()
	s.emit(lx, sym)
}

// scanEOF closes open strings, ends the last line and unwinds indentation
// before reporting end of input.
func (s *XonshScanner) scanEOF(lx *gotreesitter.ExternalLexer, st *scanState) {
	for st.nFrames > 0 {
		if st.pop().kind == frameString {
			s.missing(lx, s.stringEnd)
			return
		}
	}
	st.depth = 0
	if !st.flags.has(flagLineStart) {
		st.endLine()
		s.emit(lx, s.newline)
		return
	}
	if st.nIndents > 0 {
		st.nIndents--
		s.emit(lx, s.dedent)
		return
	}
	s.emit(lx, gotreesitter.EOFSymbol)
}

// scanLineStart handles the start of a logical line: indentation tokens
// first, then leading blanks, blank lines and comment lines. It returns
// false once the first content character is reached.
func (s *XonshScanner) scanLineStart(lx *gotreesitter.ExternalLexer, st *scanState) bool {
	if !st.flags.has(flagIndentDone) {
		st.set(flagIndentDone)
		if s.resolveIndent(lx, st) {
			return true
		}
	}
	rest := lx.PeekRest()
	if n := blankRunLen(rest, true); n > 0 {
		s.take(lx, n, s.whitespace)
		return true
	}
	if rest[0] == '#' {
		s.take(lx, commentLen(rest), s.comment)
		return true
	}
	st.clear(flagLineStart | flagIndentDone)
	st.set(flagStmtInitial)
	return false
}

// resolveIndent compares the indentation of the next content line with the
// open levels and emits INDENT or DEDENT tokens, zero-width, at the start of
// the line. It reports whether a token was emitted.
func (s *XonshScanner) resolveIndent(lx *gotreesitter.ExternalLexer, st *scanState) bool {
	lvl, n, eof := measureIndent(lx.PeekRest())
	lx.Examine(n + 1)
	if eof {
		return false
	}
	top := st.topIndent()
	switch {
	case lvl.width() > top.width():
		if !st.pushIndent(lvl) {
			return false
		}
		if lvl.chars() <= top.chars() {
			lx.SetError()
		}
		s.emit(lx, s.indent)
		return true
	case lvl.width() == top.width():
		// Same column, different mix of tabs and spaces. The error rides on
		// the leading whitespace token.
		if lvl.chars() != top.chars() {
			lx.SetError()
		}
		return false
	}
	popped := 0
	for st.nIndents > 0 && st.topIndent().width() > lvl.width() {
		st.nIndents--
		popped++
	}
	cur := st.topIndent()
	bad := cur.width() != lvl.width() || cur.chars() != lvl.chars()
	if popped > 1 {
		st.dedents = uint8(popped - 1)
		if bad {
			st.set(flagDedentError)
		}
	} else if bad {
		lx.SetError()
	}
	s.emit(lx, s.dedent)
	return true
}

// measureIndent finds the next line with content, skipping blank and
// comment-only lines, and returns its indentation and the offset of its
// first content byte. eof is set when no such line exists.
func measureIndent(src []byte) (lvl indentLevel, n int, eof bool) {
	width, chars := 0, 0
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case ' ':
			width++
			chars++
		case '\t':
			width = (width/8 + 1) * 8
			chars++
		case '\f':
			width, chars = 0, 0
		case '\r':
		case '\n':
			width, chars = 0, 0
		case '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			width, chars = 0, 0
		default:
			return makeIndentLevel(width, chars), i, false
		}
	}
	return 0, len(src), true
}

// blankRunLen returns the length of the blanks and line continuations at
// the start of src, including line breaks when newlines is set. A "\r" not
// followed by "\n" counts as a blank.
func blankRunLen(src []byte, newlines bool) int {
	i := 0
	for i < len(src) {
		switch c := src[i]; {
		case isBlank(c):
			i++
		case c == '\\' && newlineLen(src[i+1:]) > 0:
			i += 1 + newlineLen(src[i+1:])
		case c == '\n' && newlines:
			i++
		case c == '\r' && (newlines || newlineLen(src[i:]) == 0):
			i++
		default:
			return i
		}
	}
	return i
}

func commentLen(src []byte) int {
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' || newlineLen(src[i:]) == 2 {
			return i
		}
	}
	return len(src)
}

// stringOpening describes a string literal starting at src[prefix].
func stringOpening(src []byte, prefix int) (length int, data uint8) {
	q := src[prefix]
	for _, c := range strings.ToLower(string(src[:prefix])) {
		switch c {
		case 'f':
			data |= strFormat
		case 'r':
			data |= strRaw
		}
	}
	if q == '"' {
		data |= strDouble
	}
	if len(src) >= prefix+3 && src[prefix+1] == q && src[prefix+2] == q {
		return prefix + 3, data | strTriple
	}
	return prefix + 1, data
}

// isStringPrefix reports whether name may prefix a string literal.
// Prefixes containing "p" open path strings.
func isStringPrefix(name string) bool {
	if name == "" || len(name) > 3 {
		return false
	}
	var seen [128]bool
	for i := 0; i < len(name); i++ {
		c := name[i] | 0x20
		if !strings.ContainsRune("rbfup", rune(c)) || seen[c] {
			return false
		}
		seen[c] = true
	}
	switch {
	case seen['u']:
		return len(name) == 1
	case seen['b']:
		return !seen['f'] && !seen['p']
	}
	return true
}

// globSymbol maps a backtick prefix to its glob token.
func (s *XonshScanner) globSymbol(prefix string) (gotreesitter.Symbol, bool) {
	switch prefix {
	case "", "r":
		return s.regexGlob, true
	case "rp", "pr":
		return s.regexPathGlob, true
	case "g":
		return s.globPattern, true
	case "gp", "pg":
		return s.globPath, true
	case "f":
		return s.formattedGlob, true
	}
	return 0, false
}

// takeBacktick emits the glob literal whose backtick sits at src[prefix].
func (s *XonshScanner) takeBacktick(lx *gotreesitter.ExternalLexer, src []byte, prefix int, sym gotreesitter.Symbol) {
	n, ok := backtickSpan(src[prefix:])
	if !ok {
		lx.SetError()
	}
	s.take(lx, prefix+n, sym)
	lx.Examine(1)
}

// openString emits the opening of a string literal whose quote sits at
// src[prefix] and pushes its frame.
func (s *XonshScanner) openString(lx *gotreesitter.ExternalLexer, st *scanState, src []byte, prefix int) {
	n, data := stringOpening(src, prefix)
	sym := s.stringStart
	if strings.ContainsAny(string(src[:prefix]), "pP") {
		sym = s.pathStringStart
	}
	if !st.push(frame{kind: frameString, data: data}) {
		lx.SetError()
	}
	s.take(lx, n, sym)
	lx.Examine(3)
}

// scanString lexes inside a string literal.
func (s *XonshScanner) scanString(lx *gotreesitter.ExternalLexer, st *scanState) {
	data := st.top().data
	q := byte('\'')
	if data&strDouble != 0 {
		q = '"'
	}
	triple := data&strTriple != 0
	format := data&strFormat != 0
	raw := data&strRaw != 0

	src := lx.PeekRest()
	i := 0
scan:
	for i < len(src) {
		c := src[i]
		switch {
		case c == q && (!triple || (i+2 < len(src) && src[i+1] == q && src[i+2] == q)):
			break scan
		case c == '\\':
			if !raw {
				break scan
			}
			i++
			if i < len(src) {
				i += max(newlineLen(src[i:]), 1)
			}
		case format && (c == '{' || c == '}'):
			if i+1 < len(src) && src[i+1] == c {
				i += 2
				continue
			}
			if c == '{' {
				break scan
			}
			i++
		case !triple && (c == '\n' || newlineLen(src[i:]) == 2):
			break scan
		default:
			i++
		}
	}
	lx.Examine(i + 3)
	if i > 0 {
		s.take(lx, i, s.stringContent)
		return
	}

	switch c := src[0]; {
	case c == q:
		st.pop()
		if triple {
			s.take(lx, 3, s.stringEnd)
		} else {
			s.take(lx, 1, s.stringEnd)
		}
	case c == '\\':
		s.take(lx, escapeLen(src, data), s.escapeSequence)
	case c == '{':
		if !st.push(frame{kind: frameInterp}) {
			s.take(lx, 1, s.stringContent)
			return
		}
		s.take(lx, 1, s.operators["{"])
	default:
		// Unterminated single-line string.
		st.pop()
		s.missing(lx, s.stringEnd)
	}
}

// escapeLen returns the length of the escape sequence at the start of src.
func escapeLen(src []byte, data uint8) int {
	if len(src) < 2 {
		return len(src)
	}
	if n := newlineLen(src[1:]); n > 0 {
		return 1 + n
	}
	hex := func(start, count int) int {
		i := start
		for i < len(src) && i < start+count && isASCIIHex(src[i]) {
			i++
		}
		return i
	}
	switch c := src[1]; {
	case c == 'x':
		return hex(2, 2)
	case c == 'u':
		return hex(2, 4)
	case c == 'U':
		return hex(2, 8)
	case c == 'N' && len(src) > 2 && src[2] == '{':
		for i := 3; i < len(src) && src[i] != '\n' && src[i] != src[0]; i++ {
			if src[i] == '}' {
				return i + 1
			}
		}
		return 2
	case c >= '0' && c <= '7':
		i := 1
		for i < len(src) && i < 4 && src[i] >= '0' && src[i] <= '7' {
			i++
		}
		return i
	}
	return 2
}

// scanFormatSpec lexes the format specifier of an f-string interpolation.
func (s *XonshScanner) scanFormatSpec(lx *gotreesitter.ExternalLexer, st *scanState) {
	data, _ := st.stringFrame()
	triple := data&strTriple != 0
	src := lx.PeekRest()
	i := 0
	for i < len(src) && src[i] != '{' && src[i] != '}' && (triple || (src[i] != '\n' && newlineLen(src[i:]) != 2)) {
		i++
	}
	lx.Examine(i + 1)
	switch {
	case i > 0:
		s.take(lx, i, s.formatText)
	case src[0] == '{' && st.push(frame{kind: frameInterp}):
		s.take(lx, 1, s.operators["{"])
	case src[0] == '}':
		st.pop()
		s.take(lx, 1, s.operators["}"])
	default:
		// The line ended inside the specifier; let the string frame close.
		st.pop()
		s.scanString(lx, st)
	}
}

// endOfStatement handles the newline and ";" tokens that end a statement at
// the root.
func (s *XonshScanner) endOfStatement(lx *gotreesitter.ExternalLexer, st *scanState, src []byte) bool {
	if n := newlineLen(src); n > 0 {
		st.endLine()
		s.take(lx, n, s.newline)
		return true
	}
	if src[0] == ';' {
		st.endStatement()
		s.take(lx, 1, s.operators[";"])
		return true
	}
	return false
}

// scanPython lexes Python tokens at the root or inside a Python frame.
// afterName is set when the previous token was an identifier ending here.
func (s *XonshScanner) scanPython(lx *gotreesitter.ExternalLexer, st *scanState, afterName bool) {
	top := st.top()
	significant := top == nil && st.depth == 0
	src := lx.PeekRest()
	if n := blankRunLen(src, !significant); n > 0 {
		lx.Examine(n + 2)
		s.take(lx, n, s.whitespace)
		return
	}
	if significant && s.endOfStatement(lx, st, src) {
		return
	}
	if src[0] == '#' {
		s.take(lx, commentLen(src), s.comment)
		return
	}

	stmtInitial := st.flags.has(flagStmtInitial) && top == nil
	if stmtInitial && st.depth == 0 {
		ok, examined := xontribLine(src)
		lx.Examine(examined)
		if ok {
			st.clear(flagStmtInitial)
			st.set(flagXontrib)
			s.take(lx, len("xontrib"), s.xontrib)
			return
		}
	}
	if stmtInitial && st.depth == 0 && s.startsSubprocess(lx, src) {
		st.clear(flagStmtInitial)
		st.set(flagSubprocess | flagCmdHead)
		s.scanSubprocess(lx, st)
		return
	}
	st.clear(flagStmtInitial)

	c := src[0]
	next := byte(0)
	if len(src) > 1 {
		next = src[1]
	}
	if top != nil && top.data == 0 {
		if s.closeFrame(lx, st, src) {
			return
		}
	}

	switch {
	case isIdentStart(src):
		s.scanName(lx, st, src, stmtInitial)
	case isASCIIDigit(c) || (c == '.' && isASCIIDigit(next)):
		n, isFloat := scanNumber(src)
		lx.Examine(n + 1)
		if isFloat {
			s.take(lx, n, s.float)
		} else {
			s.take(lx, n, s.integer)
		}
	case c == '"' || c == '\'':
		s.openString(lx, st, src, 0)
	case c == '`':
		s.takeBacktick(lx, src, 0, s.regexGlob)
	case c == '$':
		s.scanDollar(lx, st, src)
	case c == '!' && next == '(' && afterName:
		s.openMacro(lx, st)
	case c == '!' && (next == '(' || next == '['):
		s.openSubst(lx, st, src[:2])
	case c == '@':
		s.scanAt(lx, st, src, false)
	case c == '.' && next == '.' && len(src) > 2 && src[2] == '.':
		s.take(lx, 3, s.ellipsis)
	case c == '(' && stmtInitial:
		s.openGroup(lx, st, src)
	default:
		s.scanOperator(lx, st, src)
	}
}

// startsSubprocess applies the subprocess policy to a statement-initial
// token.
func (s *XonshScanner) startsSubprocess(lx *gotreesitter.ExternalLexer, src []byte) bool {
	if envPrefixLen(src) > 0 {
		ok, examined := envScopedCommand(src)
		lx.Examine(examined)
		return ok
	}
	ok, examined := subprocessLine(src, false, s.keywordSet)
	lx.Examine(examined)
	return ok
}

// envPrefixLen returns the length of "$NAME" when src starts an environment
// prefix "$NAME=value" with no blank around the "=".
func envPrefixLen(src []byte) int {
	if len(src) < 2 || src[0] != '$' {
		return 0
	}
	n := identLen(src[1:])
	if n == 0 {
		return 0
	}
	n++
	if n+1 >= len(src) || src[n] != '=' {
		return 0
	}
	switch src[n+1] {
	case '=', ' ', '\t', '\n', '\r', '\f':
		return 0
	}
	return n
}

// envScopedCommand reports whether src is a run of "$NAME=value" prefixes
// followed by a command. Without a command the line is a Python assignment.
func envScopedCommand(src []byte) (bool, int) {
	cur := newByteCursor(src)
	for {
		n := envPrefixLen(cur.rest())
		if n == 0 {
			break
		}
		cur.advance(n + 1)
		if q := cur.peekByte(); q == '"' || q == '\'' {
			cur.advance(quotedLen(cur.rest()))
		}
		for !cur.eof() && !isBlank(cur.peekByte()) && newlineLen(cur.rest()) == 0 && cur.peekByte() != ';' {
			cur.advance(1)
		}
		if !cur.skipBlanks() {
			return false, cur.offset + 1
		}
	}
	rest := cur.rest()
	return isIdentStart(rest) || isPathHead(rest), cur.offset + 3
}

// closeFrame handles the tokens that end or redirect a Python frame at
// bracket depth zero.
func (s *XonshScanner) closeFrame(lx *gotreesitter.ExternalLexer, st *scanState, src []byte) bool {
	top := st.top()
	c := src[0]
	switch top.kind {
	case frameInterp:
		switch {
		case c == '}':
			st.pop()
			s.take(lx, 1, s.operators["}"])
			return true
		case c == '!' && len(src) > 2 && strings.IndexByte("rsa", src[1]) >= 0 && (src[2] == '}' || src[2] == ':'):
			s.take(lx, 2, s.typeConversion)
			return true
		case c == ':' && (len(src) < 2 || src[1] != '='):
			top.kind = frameFormatSpec
			s.take(lx, 1, s.operators[":"])
			return true
		}
	case frameEnvBraced:
		if c == '}' {
			st.pop()
			s.take(lx, 1, s.operators["}"])
			return true
		}
	case framePyEval:
		if c == ')' {
			st.pop()
			st.clear(flagCmdHead)
			s.take(lx, 1, s.operators[")"])
			return true
		}
	}
	return false
}

// scanName lexes an identifier, keyword, or a prefixed string or glob.
func (s *XonshScanner) scanName(lx *gotreesitter.ExternalLexer, st *scanState, src []byte, stmtInitial bool) {
	n := identLen(src)
	lx.Examine(n + 1)
	text := string(src[:n])
	if n < len(src) {
		switch src[n] {
		case '"', '\'':
			if isStringPrefix(text) {
				s.openString(lx, st, src, n)
				return
			}
		case '`':
			if sym, ok := s.globSymbol(text); ok {
				s.takeBacktick(lx, src, n, sym)
				return
			}
		}
	}
	if text == "load" && st.flags.has(flagXontrib) {
		st.clear(flagXontrib)
		s.take(lx, n, s.load)
		return
	}
	sym, ok := s.keywords[text]
	if !ok {
		sym = s.identifier
		st.set(flagAfterName)
	}
	if ok && stmtInitial && st.depth == 0 && compoundKeywords[text] {
		st.set(flagCompound)
	}
	s.take(lx, n, sym)
}

// scanDollar lexes environment variables and the "$" openers.
func (s *XonshScanner) scanDollar(lx *gotreesitter.ExternalLexer, st *scanState, src []byte) {
	if len(src) > 1 {
		switch src[1] {
		case '(', '[':
			s.openSubst(lx, st, src[:2])
			return
		case '{':
			if st.push(frame{kind: frameEnvBraced}) {
				s.take(lx, 2, s.operators["${"])
				return
			}
		}
	}
	if n := identLen(src[1:]); n > 0 {
		lx.Examine(n + 2)
		s.take(lx, 1+n, s.envVariable)
		return
	}
	s.takeError(lx, 1)
}

// openSubst pushes a subprocess substitution frame for opener.
func (s *XonshScanner) openSubst(lx *gotreesitter.ExternalLexer, st *scanState, opener []byte) {
	kind := frameSubstParen
	if opener[len(opener)-1] == '[' {
		kind = frameSubstBracket
	}
	if !st.push(frame{kind: kind}) {
		s.takeError(lx, len(opener))
		return
	}
	st.set(flagCmdHead)
	s.take(lx, len(opener), s.operators[string(opener)])
}

// openMacro pushes the frame of a macro call's raw arguments.
func (s *XonshScanner) openMacro(lx *gotreesitter.ExternalLexer, st *scanState) {
	if !st.push(frame{kind: frameMacro}) {
		s.takeError(lx, 2)
		return
	}
	s.take(lx, 2, s.operators["!("])
}

// scanMacroArgs lexes the arguments of a macro call as raw text split at
// commas outside brackets and quotes.
func (s *XonshScanner) scanMacroArgs(lx *gotreesitter.ExternalLexer, st *scanState) {
	src := lx.PeekRest()
	if n := blankRunLen(src, true); n > 0 {
		lx.Examine(n + 1)
		s.take(lx, n, s.whitespace)
		return
	}
	switch src[0] {
	case ',':
		s.take(lx, 1, s.operators[","])
		return
	case ')':
		st.pop()
		s.take(lx, 1, s.operators[")"])
		return
	}
	n, examined := macroArgLen(src, true, ')')
	lx.Examine(examined)
	s.take(lx, n, s.macroArgument)
}

// scanAt lexes "@(", "@$(", "@name`glob`", and, at a command head in
// subprocess mode, the "@name" modifiers. In Python mode "@." before a name
// starts an at-object.
func (s *XonshScanner) scanAt(lx *gotreesitter.ExternalLexer, st *scanState, src []byte, subprocess bool) bool {
	switch {
	case !subprocess && len(src) > 2 && src[1] == '.' && isIdentStart(src[2:]):
		lx.Examine(3)
		s.take(lx, 2, s.operators["@."])
		return true
	case len(src) > 2 && src[1] == '$' && src[2] == '(':
		s.openSubst(lx, st, src[:3])
		return true
	case len(src) > 1 && src[1] == '(':
		if !st.push(frame{kind: framePyEval}) {
			s.takeError(lx, 2)
			return true
		}
		s.take(lx, 2, s.operators["@("])
		return true
	}
	n := identLen(src[1:])
	if n > 0 && 1+n < len(src) && src[1+n] == '`' {
		s.takeBacktick(lx, src, 1+n, s.customGlob)
		return true
	}
	if subprocess {
		if n > 0 && st.flags.has(flagCmdHead) && 1+n < len(src) && isBlank(src[1+n]) {
			lx.Examine(n + 2)
			s.take(lx, 1+n, s.modifier)
			return true
		}
		return false
	}
	s.scanOperator(lx, st, src)
	return true
}

// openGroup handles a "(" at a statement start: a subprocess inside makes
// it a command group, otherwise it is a Python bracket.
func (s *XonshScanner) openGroup(lx *gotreesitter.ExternalLexer, st *scanState, src []byte) {
	ok, examined := subprocessLine(src[1:], true, s.keywordSet)
	lx.Examine(examined + 1)
	if ok && st.push(frame{kind: frameGroup}) {
		st.set(flagCmdHead)
		s.take(lx, 1, s.operators["("])
		return
	}
	st.depth = min(st.depth+1, 255)
	st.set(flagStmtInitial)
	s.take(lx, 1, s.operators["("])
}

// scanOperator lexes punctuation by longest match and tracks bracket depth.
func (s *XonshScanner) scanOperator(lx *gotreesitter.ExternalLexer, st *scanState, src []byte) {
	n := min(s.maxOpLen, len(src))
	lx.Examine(n)
	for ; n > 0; n-- {
		sym, ok := s.operators[string(src[:n])]
		if !ok || explicitTokens[string(src[:n])] {
			continue
		}
		top := st.top()
		switch src[0] {
		case '(', '[', '{':
			if top == nil {
				st.depth = min(st.depth+1, 255)
			} else {
				top.data = min(top.data+1, 255)
			}
		case ')', ']', '}':
			if top == nil {
				if st.depth > 0 {
					st.depth--
				}
			} else if top.data > 0 {
				top.data--
			}
		case ':':
			if top == nil && st.depth == 0 && st.flags.has(flagCompound) && n == 1 {
				st.clear(flagCompound)
				st.set(flagStmtInitial)
			}
		}
		s.take(lx, n, sym)
		return
	}
	s.takeError(lx, 1)
}

// scanSubprocess lexes command words, operators and redirections.
func (s *XonshScanner) scanSubprocess(lx *gotreesitter.ExternalLexer, st *scanState) {
	if st.flags.has(flagMacroBang) {
		st.clear(flagMacroBang)
		st.set(flagMacroRest)
		s.take(lx, 1, s.operators["!"])
		return
	}
	top := st.top()
	root := top == nil
	src := lx.PeekRest()
	if n := blankRunLen(src, !root); n > 0 {
		lx.Examine(n + 2)
		s.take(lx, n, s.whitespace)
		return
	}
	if root && s.endOfStatement(lx, st, src) {
		return
	}
	if st.flags.has(flagMacroRest) {
		st.clear(flagMacroRest)
		var stop byte
		if top != nil {
			stop = ')'
			if top.kind == frameSubstBracket {
				stop = ']'
			}
		}
		if n, examined := macroArgLen(src, false, stop); n > 0 {
			lx.Examine(examined)
			s.take(lx, n, s.macroArgument)
			return
		}
	}
	if src[0] == '#' {
		s.take(lx, commentLen(src), s.comment)
		return
	}

	switch {
	case st.flags.has(flagEnvName):
		st.clear(flagEnvName)
		if src[0] == '=' {
			st.set(flagEnvValue)
			s.take(lx, 1, s.operators["="])
			return
		}
	case st.flags.has(flagEnvValue):
		st.clear(flagEnvValue)
		n := s.wordLen(src, top)
		if src[0] == '"' || src[0] == '\'' {
			n = quotedLen(src)
		}
		if n > 0 {
			s.take(lx, n, s.word)
			return
		}
	}

	head := st.flags.has(flagCmdHead)
	if head {
		if n := envPrefixLen(src); n > 0 {
			lx.Examine(n + 2)
			st.set(flagEnvName)
			s.take(lx, n, s.envVariable)
			return
		}
	}

	c := src[0]
	next := byte(0)
	if len(src) > 1 {
		next = src[1]
	}
	switch c {
	case '|':
		st.set(flagCmdHead)
		if next == '|' {
			s.take(lx, 2, s.logical)
		} else {
			s.take(lx, 1, s.pipe)
		}
		return
	case '&':
		if next == '&' {
			st.set(flagCmdHead)
			s.take(lx, 2, s.logical)
			return
		}
		if next != '>' {
			s.take(lx, 1, s.operators["&"])
			return
		}
	case ')':
		if top != nil && (top.kind == frameSubstParen || top.kind == frameGroup) {
			st.pop()
			st.clear(flagCmdHead)
			s.take(lx, 1, s.operators[")"])
			return
		}
		s.takeError(lx, 1)
		return
	case ']':
		if top != nil && top.kind == frameSubstBracket {
			st.pop()
			st.clear(flagCmdHead)
			s.take(lx, 1, s.operators["]"])
			return
		}
	case '(':
		s.takeError(lx, 1)
		return
	case '"', '\'':
		if head {
			st.clear(flagCmdHead)
			n := quotedLen(src)
			lx.Examine(n + 1)
			s.take(lx, n, s.word)
			return
		}
		s.openString(lx, st, src, 0)
		return
	case '`':
		st.clear(flagCmdHead)
		s.takeBacktick(lx, src, 0, s.regexGlob)
		return
	case '$':
		switch {
		case next == '(' || next == '[':
			s.openSubst(lx, st, src[:2])
			return
		case next == '{':
			if st.push(frame{kind: frameEnvBraced}) {
				st.clear(flagCmdHead)
				s.take(lx, 2, s.operators["${"])
				return
			}
		case identLen(src[1:]) > 0:
			st.clear(flagCmdHead)
			n := identLen(src[1:])
			lx.Examine(n + 2)
			s.take(lx, 1+n, s.envVariable)
			return
		}
	case '!':
		if next == '(' || next == '[' {
			s.openSubst(lx, st, src[:2])
			return
		}
	case '@':
		if s.scanAt(lx, st, src, true) {
			return
		}
	case '{':
		if n := braceExpansionLen(src); n > 0 {
			st.clear(flagCmdHead)
			s.take(lx, n, s.braceExpansion)
			return
		}
	}

	if n, sym := s.redirection(src); n > 0 {
		lx.Examine(n + 1)
		s.take(lx, n, sym)
		return
	}
	if n := identLen(src); n > 0 && n < len(src) {
		prefix := string(src[:n])
		switch src[n] {
		case '"', '\'':
			if !head && isStringPrefix(prefix) {
				s.openString(lx, st, src, n)
				return
			}
		case '`':
			if sym, ok := s.globSymbol(prefix); ok {
				st.clear(flagCmdHead)
				s.takeBacktick(lx, src, n, sym)
				return
			}
		}
	}

	n := s.wordLen(src, top)
	if n == 0 {
		s.takeError(lx, 1)
		return
	}
	lx.Examine(n + 2)
	if text := string(src[:n]); text == "and" || text == "or" {
		st.set(flagCmdHead)
		s.take(lx, n, s.logical)
		return
	}
	st.clear(flagCmdHead)
	if head && n > 1 && src[n-1] == '!' && src[n-2] != '!' {
		st.set(flagMacroBang)
		s.take(lx, n-1, s.word)
		return
	}
	s.take(lx, n, s.word)
}

// redirection matches a stream merge or redirect operator at a word start.
func (s *XonshScanner) redirection(src []byte) (int, gotreesitter.Symbol) {
	for _, m := range streamMerges {
		if len(src) >= len(m) && string(src[:len(m)]) == m && endsWord(src[len(m):]) {
			return len(m), s.streamMerge
		}
	}
	for _, r := range redirects {
		if len(src) >= len(r) && string(src[:len(r)]) == r {
			return len(r), s.redirect
		}
	}
	return 0, 0
}

func endsWord(src []byte) bool {
	return len(src) == 0 || isBlank(src[0]) || strings.IndexByte("\r\n|&;<>()", src[0]) >= 0
}

// wordLen returns the length of the subprocess word at the start of src.
func (s *XonshScanner) wordLen(src []byte, top *frame) int {
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case isBlank(c) || c == '\n' || c == '\r':
			return i
		case strings.IndexByte("|&;<>()\"'`", c) >= 0:
			return i
		case c == ']' && top != nil && top.kind == frameSubstBracket:
			return i
		case c == '$' && i+1 < len(src) && (isIdentStart(src[i+1:]) || strings.IndexByte("([{", src[i+1]) >= 0):
			return i
		case c == '@' && i+1 < len(src) && (src[i+1] == '(' || src[i+1] == '$'):
			return i
		case c == '\\' && i+1 < len(src):
			if newlineLen(src[i+1:]) > 0 {
				return i
			}
			i += 2
		default:
			i++
		}
	}
	return i
}

// braceExpansionLen returns the length of a "{a,b}" or "{1..3}" expansion
// at the start of src, or 0.
func braceExpansionLen(src []byte) int {
	depth := 0
	expands := false
	for i := 0; i < len(src); i++ {
		switch c := src[i]; {
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				if !expands {
					return 0
				}
				return i + 1
			}
		case c == ',':
			expands = true
		case c == '.' && i+1 < len(src) && src[i+1] == '.':
			expands = true
		case isBlank(c) || c == '\n' || c == '\r' || c == '"' || c == '\'':
			return 0
		}
	}
	return 0
}
