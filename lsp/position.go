package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// lineIndex maps byte offsets of a text to LSP positions, whose characters
// count UTF-16 code units.
type lineIndex struct {
	text  string
	lines []int // byte offset of each line start
}

func newLineIndex(text string) *lineIndex {
	idx := &lineIndex{text: text, lines: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			idx.lines = append(idx.lines, i+1)
		}
	}
	return idx
}

// position converts a byte offset to an LSP position.
func (idx *lineIndex) position(offset int) protocol.Position {
	offset = min(max(offset, 0), len(idx.text))
	line := 0
	lo, hi := 0, len(idx.lines)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if idx.lines[mid] <= offset {
			line = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	var units uint32
	for s := idx.text[idx.lines[line]:offset]; len(s) > 0; {
		r, size := utf8.DecodeRuneInString(s)
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
		s = s[size:]
	}
	return protocol.Position{Line: uint32(line), Character: units}
}

func (idx *lineIndex) rangeOf(r gotreesitter.Range) protocol.Range {
	return protocol.Range{
		Start: idx.position(int(r.StartByte)),
		End:   idx.position(int(r.EndByte)),
	}
}
