package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// ErrStaleEdit reports an edit whose old text does not match the document.
var ErrStaleEdit = errors.New("edit does not match document text")

// Range represents a byte range [Start, End) within document text.
type Range struct {
	Start, End int
}

// editOp records a single edit for undo/redo support.
type editOp struct {
	offset  int
	oldText string
	newText string
}

// Document is the text of one file together with its syntax tree. Every
// change is applied to both: the tree is edited with the matching InputEdit
// and reparsed incrementally.
type Document struct {
	path      string // absolute path, or "" if untitled
	text      string
	savedText string // text at last save/open
	undoStack []editOp
	redoStack []editOp

	parser *gotreesitter.Parser
	tree   *gotreesitter.Tree
	edits  []gotreesitter.InputEdit
}

// NewDocument creates an empty, untitled document parsed with lang.
func NewDocument(lang *gotreesitter.Language, opts ...gotreesitter.ParserOption) *Document {
	d := &Document{parser: gotreesitter.NewParser(lang, opts...)}
	d.tree = d.parser.Parse(nil)
	return d
}

// Open reads the file at path into the document, replacing any existing
// content and history. The stored path is converted to an absolute path.
func (d *Document) Open(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return err
	}
	d.path = absPath
	d.savedText = string(data)
	d.undoStack, d.redoStack = nil, nil
	d.SetText(string(data))
	return nil
}

// Save writes the current text to the stored path.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.New("document has no path; use SaveAs")
	}
	if err := os.WriteFile(d.path, []byte(d.text), 0644); err != nil {
		return err
	}
	d.savedText = d.text
	return nil
}

// SaveAs writes the current text to path and makes it the document's path.
func (d *Document) SaveAs(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(absPath, []byte(d.text), 0644); err != nil {
		return err
	}
	d.path = absPath
	d.savedText = d.text
	return nil
}

// Path returns the absolute file path, or "" if the document is untitled.
func (d *Document) Path() string { return d.path }

// Text returns the current text.
func (d *Document) Text() string { return d.text }

// Tree returns the syntax tree of the current text.
func (d *Document) Tree() *gotreesitter.Tree { return d.tree }

// Dirty reports whether the text differs from the last saved or opened text.
func (d *Document) Dirty() bool { return d.text != d.savedText }

// Untitled reports whether the document has no associated file path.
func (d *Document) Untitled() bool { return d.path == "" }

// Title returns the base filename, or "untitled".
func (d *Document) Title() string {
	if d.path == "" {
		return "untitled"
	}
	return filepath.Base(d.path)
}

// SetText replaces the whole text and parses it from scratch. Undo history
// is kept; the replacement itself is not recorded.
func (d *Document) SetText(text string) {
	d.text = text
	d.tree = d.parser.Parse([]byte(text))
	d.edits = nil
}

// TakeEdits returns the InputEdits applied since the last call, in order.
func (d *Document) TakeEdits() []gotreesitter.InputEdit {
	edits := d.edits
	d.edits = nil
	return edits
}

// ApplyEdit replaces [offset, offset+len(oldText)) with newText, records the
// edit for undo and reparses. oldText must match the document.
func (d *Document) ApplyEdit(offset int, oldText, newText string) error {
	if offset < 0 || offset+len(oldText) > len(d.text) || d.text[offset:offset+len(oldText)] != oldText {
		return fmt.Errorf("edit at %d: %w", offset, ErrStaleEdit)
	}
	if err := d.replace(offset, len(oldText), newText); err != nil {
		return err
	}
	d.undoStack = append(d.undoStack, editOp{offset: offset, oldText: oldText, newText: newText})
	d.redoStack = nil
	return nil
}

// ReplaceRange replaces the bytes of r with newText.
func (d *Document) ReplaceRange(r Range, newText string) error {
	if r.Start < 0 || r.Start > r.End || r.End > len(d.text) {
		return fmt.Errorf("range [%d,%d) outside %d bytes: %w", r.Start, r.End, len(d.text), gotreesitter.ErrInvalidEdit)
	}
	return d.ApplyEdit(r.Start, d.text[r.Start:r.End], newText)
}

func (d *Document) replace(offset, oldLen int, newText string) error {
	edit, src, err := gotreesitter.EditFromOffsets([]byte(d.text), uint32(offset), uint32(offset+oldLen), newText)
	if err != nil {
		return err
	}
	tree := d.tree
	if tree == nil || tree.RootNode().IsNull() {
		tree = d.parser.Parse(src)
	} else if tree, err = d.parser.Reparse(context.Background(), d.tree, src, edit); err != nil {
		return err
	}
	d.text = string(src)
	d.tree = tree
	d.edits = append(d.edits, edit)
	return nil
}

// Undo reverses the last edit. It returns false if there is nothing to undo.
func (d *Document) Undo() bool {
	if len(d.undoStack) == 0 {
		return false
	}
	op := d.undoStack[len(d.undoStack)-1]
	if d.replace(op.offset, len(op.newText), op.oldText) != nil {
		return false
	}
	d.undoStack = d.undoStack[:len(d.undoStack)-1]
	d.redoStack = append(d.redoStack, op)
	return true
}

// Redo reapplies the last undone edit. It returns false if there is nothing
// to redo.
func (d *Document) Redo() bool {
	if len(d.redoStack) == 0 {
		return false
	}
	op := d.redoStack[len(d.redoStack)-1]
	if d.replace(op.offset, len(op.oldText), op.newText) != nil {
		return false
	}
	d.redoStack = d.redoStack[:len(d.redoStack)-1]
	d.undoStack = append(d.undoStack, op)
	return true
}

// Find returns all byte ranges where query appears in the text.
func (d *Document) Find(query string) []Range {
	if query == "" {
		return nil
	}
	var results []Range
	start := 0
	for {
		idx := strings.Index(d.text[start:], query)
		if idx < 0 {
			break
		}
		abs := start + idx
		results = append(results, Range{Start: abs, End: abs + len(query)})
		start = abs + len(query)
	}
	return results
}

// ReplaceAll replaces every occurrence of query with replacement, back to
// front so earlier offsets stay valid, and returns the number replaced.
func (d *Document) ReplaceAll(query, replacement string) (int, error) {
	ranges := d.Find(query)
	for i := len(ranges) - 1; i >= 0; i-- {
		if err := d.ApplyEdit(ranges[i].Start, query, replacement); err != nil {
			return len(ranges) - 1 - i, err
		}
	}
	return len(ranges), nil
}

// OffsetAt converts a row/column point (column in bytes) to a byte offset,
// clamping past-the-end positions to the end of the row or text.
func (d *Document) OffsetAt(p gotreesitter.Point) int {
	offset := 0
	for row := uint32(0); row < p.Row; row++ {
		i := strings.IndexByte(d.text[offset:], '\n')
		if i < 0 {
			return len(d.text)
		}
		offset += i + 1
	}
	lineEnd := len(d.text)
	if i := strings.IndexByte(d.text[offset:], '\n'); i >= 0 {
		lineEnd = offset + i
	}
	return min(offset+int(p.Column), lineEnd)
}

// Diagnostic is a parse problem located in the document.
type Diagnostic struct {
	Range   gotreesitter.Range
	Message string
	Missing bool
}

// Diagnostics lists the error and missing nodes of the tree. An ERROR node
// is reported once; its descendants are not visited.
func (d *Document) Diagnostics() []Diagnostic {
	var out []Diagnostic
	root := d.tree.RootNode()
	if !root.HasError() {
		return nil
	}
	root.Walk(func(n gotreesitter.Node) bool {
		switch {
		case n.IsMissing():
			name := n.Kind()
			if !n.IsNamed() {
				name = fmt.Sprintf("%q", name)
			}
			out = append(out, Diagnostic{Range: n.Range(), Message: "missing " + name, Missing: true})
			return false
		case n.IsError():
			msg := "syntax error"
			switch text := n.Text(); {
			case n.Symbol() != gotreesitter.ErrorSymbol:
				msg = "invalid " + strings.TrimPrefix(n.Kind(), "_")
			case text != "" && len(text) <= 32 && !strings.ContainsRune(text, '\n'):
				msg = fmt.Sprintf("unexpected %q", text)
			}
			out = append(out, Diagnostic{Range: n.Range(), Message: msg})
			return false
		}
		return n.HasError()
	})
	return out
}
