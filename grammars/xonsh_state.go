package grammars

import (
	"encoding/binary"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// Layout of the serialized scanner state:
//
//	[0:2]   flags (little endian)
//	[2]     pending dedents
//	[3]     indent level count
//	[4]     frame count
//	[5]     root bracket depth
//	[8:56]  indent levels, two bytes each
//	[56:96] frames, kind and data byte each
const (
	maxIndents = 24
	maxFrames  = 20

	indentBase = 8
	frameBase  = indentBase + 2*maxIndents
)

type stateFlags uint16

const (
	// flagLineStart is set until the first content character of a logical
	// line has been reached.
	flagLineStart stateFlags = 1 << iota
	// flagIndentDone is set once the indentation of the current line has
	// produced its INDENT or DEDENT tokens.
	flagIndentDone
	// flagDedentError flags the last pending dedent as inconsistent.
	flagDedentError
	// flagSubprocess puts the rest of the logical line in subprocess mode.
	flagSubprocess
	flagStmtInitial
	// flagCompound marks a line that began with a compound keyword, so its
	// header colon opens a statement position.
	flagCompound
	// flagCmdHead is set where a subprocess command name is expected.
	flagCmdHead
	// flagEnvName and flagEnvValue track an environment prefix: $NAME, then
	// "=", then the value word.
	flagEnvName
	flagEnvValue
	// flagAfterName is set for one token after an identifier, so a "!("
	// directly after it opens macro call arguments.
	flagAfterName
	// flagMacroBang and flagMacroRest track a subprocess macro: the command
	// word, its "!", then the raw rest of the line.
	flagMacroBang
	flagMacroRest
	// flagXontrib is set after the "xontrib" of a "xontrib load" line.
	flagXontrib
)

func (f stateFlags) has(bit stateFlags) bool { return f&bit != 0 }

// indentLevel packs a column width (tabs to multiples of 8) in the low ten
// bits and the number of indentation characters in the high six.
type indentLevel uint16

func makeIndentLevel(width, chars int) indentLevel {
	width = min(width, 1<<10-1)
	chars = min(chars, 1<<6-1)
	return indentLevel(width | chars<<10)
}

func (l indentLevel) width() int { return int(l & (1<<10 - 1)) }
func (l indentLevel) chars() int { return int(l >> 10) }

type frameKind uint8

const (
	frameString frameKind = iota + 1
	frameInterp
	frameFormatSpec
	frameSubstParen
	frameSubstBracket
	framePyEval
	frameEnvBraced
	frameGroup
	frameMacro
)

// python reports whether the frame content is lexed as Python.
func (k frameKind) python() bool {
	return k == frameInterp || k == framePyEval || k == frameEnvBraced
}

// String frame data bits.
const (
	strDouble uint8 = 1 << iota
	strTriple
	strFormat
	strRaw
)

// frame is one level of lexical nesting. For string frames data holds the
// str* bits; for Python frames it is the bracket depth inside the frame.
type frame struct {
	kind frameKind
	data uint8
}

type scanState struct {
	flags    stateFlags
	dedents  uint8
	depth    uint8
	nIndents uint8
	nFrames  uint8
	indents  [maxIndents]indentLevel
	frames   [maxFrames]frame
}

func decodeState(raw gotreesitter.ScannerState) scanState {
	var st scanState
	st.flags = stateFlags(binary.LittleEndian.Uint16(raw[0:2]))
	st.dedents = raw[2]
	st.nIndents = min(raw[3], maxIndents)
	st.nFrames = min(raw[4], maxFrames)
	st.depth = raw[5]
	for i := 0; i < int(st.nIndents); i++ {
		st.indents[i] = indentLevel(binary.LittleEndian.Uint16(raw[indentBase+2*i:]))
	}
	for i := 0; i < int(st.nFrames); i++ {
		st.frames[i] = frame{kind: frameKind(raw[frameBase+2*i]), data: raw[frameBase+2*i+1]}
	}
	return st
}

// encode writes only live slots so equal contexts serialize identically.
func (st *scanState) encode() gotreesitter.ScannerState {
	var raw gotreesitter.ScannerState
	binary.LittleEndian.PutUint16(raw[0:2], uint16(st.flags))
	raw[2] = st.dedents
	raw[3] = st.nIndents
	raw[4] = st.nFrames
	raw[5] = st.depth
	for i := 0; i < int(st.nIndents); i++ {
		binary.LittleEndian.PutUint16(raw[indentBase+2*i:], uint16(st.indents[i]))
	}
	for i := 0; i < int(st.nFrames); i++ {
		raw[frameBase+2*i] = byte(st.frames[i].kind)
		raw[frameBase+2*i+1] = st.frames[i].data
	}
	return raw
}

func (st *scanState) set(bits stateFlags)   { st.flags |= bits }
func (st *scanState) clear(bits stateFlags) { st.flags &^= bits }

func (st *scanState) topIndent() indentLevel {
	if st.nIndents == 0 {
		return 0
	}
	return st.indents[st.nIndents-1]
}

func (st *scanState) pushIndent(l indentLevel) bool {
	if st.nIndents >= maxIndents {
		return false
	}
	st.indents[st.nIndents] = l
	st.nIndents++
	return true
}

// top returns the innermost frame, or nil at the root.
func (st *scanState) top() *frame {
	if st.nFrames == 0 {
		return nil
	}
	return &st.frames[st.nFrames-1]
}

func (st *scanState) push(f frame) bool {
	if st.nFrames >= maxFrames {
		return false
	}
	st.frames[st.nFrames] = f
	st.nFrames++
	return true
}

func (st *scanState) pop() frame {
	if st.nFrames == 0 {
		return frame{}
	}
	st.nFrames--
	f := st.frames[st.nFrames]
	st.frames[st.nFrames] = frame{}
	return f
}

// stringFrame returns the innermost string frame's data bits.
func (st *scanState) stringFrame() (uint8, bool) {
	for i := int(st.nFrames) - 1; i >= 0; i-- {
		if st.frames[i].kind == frameString {
			return st.frames[i].data, true
		}
	}
	return 0, false
}

// endLine resets the per-line flags after a significant newline.
func (st *scanState) endLine() {
	st.flags = flagLineStart
	st.depth = 0
}

// endStatement resets the flags after a ";" so the next statement is
// classified afresh.
func (st *scanState) endStatement() {
	st.clear(flagSubprocess | flagCompound | flagCmdHead | flagEnvName | flagEnvValue | flagMacroBang | flagMacroRest | flagXontrib)
	st.set(flagStmtInitial)
}
