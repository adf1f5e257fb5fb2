package gotreesitter

import (
	"errors"
	"fmt"
)

// ErrInvalidEdit is returned for an edit whose offsets are out of range or
// inconsistent with each other or with the source it is applied to.
var ErrInvalidEdit = errors.New("invalid edit")

// EditError describes why an edit was rejected. It unwraps to ErrInvalidEdit.
type EditError struct {
	Edit   InputEdit
	Reason string
}

func (e *EditError) Error() string {
	return fmt.Sprintf("invalid edit [%d,%d)->%d: %s", e.Edit.StartByte, e.Edit.OldEndByte, e.Edit.NewEndByte, e.Reason)
}

func (e *EditError) Unwrap() error { return ErrInvalidEdit }

// InputEdit describes a single edit to the source text. It tells the parser
// what byte range was replaced and what the new range looks like, so the
// incremental parser can skip unchanged subtrees.
type InputEdit struct {
	StartByte   uint32
	OldEndByte  uint32
	NewEndByte  uint32
	StartPoint  Point
	OldEndPoint Point
	NewEndPoint Point
}

func (e InputEdit) isInsertion() bool { return e.StartByte == e.OldEndByte }

func (e InputEdit) isNoop() bool {
	return e.StartByte == e.OldEndByte && e.StartByte == e.NewEndByte
}

func (e InputEdit) validate(size uint32) error {
	switch {
	case e.StartByte > e.OldEndByte:
		return &EditError{Edit: e, Reason: "start after old end"}
	case e.StartByte > e.NewEndByte:
		return &EditError{Edit: e, Reason: "start after new end"}
	case e.OldEndByte > size:
		return &EditError{Edit: e, Reason: fmt.Sprintf("old end beyond %d bytes", size)}
	case pointLess(e.OldEndPoint, e.StartPoint) || pointLess(e.NewEndPoint, e.StartPoint):
		return &EditError{Edit: e, Reason: "end point before start point"}
	}
	return nil
}

// shiftLength moves a position at or after the old end of e by the edit's
// delta.
func shiftLength(p Length, e InputEdit) Length {
	out := Length{Bytes: p.Bytes - e.OldEndByte + e.NewEndByte}
	if p.Extent.Row == e.OldEndPoint.Row {
		out.Extent = Point{
			Row:    e.NewEndPoint.Row,
			Column: e.NewEndPoint.Column + p.Extent.Column - e.OldEndPoint.Column,
		}
	} else {
		out.Extent = Point{
			Row:    p.Extent.Row - e.OldEndPoint.Row + e.NewEndPoint.Row,
			Column: p.Extent.Column,
		}
	}
	return out
}

// mapBoundary maps a boundary between two adjacent nodes into post-edit
// coordinates. New text is attributed to the node that ends at or inside the
// edited range, so mapped boundaries keep sibling spans contiguous.
func mapBoundary(p Length, e InputEdit) Length {
	switch {
	case p.Bytes < e.StartByte:
		return p
	case p.Bytes == e.StartByte && !e.isInsertion():
		return p
	case p.Bytes < e.OldEndByte || p.Bytes == e.StartByte:
		return Length{Bytes: e.NewEndByte, Extent: e.NewEndPoint}
	default:
		return shiftLength(p, e)
	}
}

// affectedBy reports whether a node spanning [start,end) whose lexing or
// reduction looked lookahead bytes past its end can change under e.
func affectedBy(start, end, lookahead uint32, e InputEdit) bool {
	if e.isInsertion() {
		if e.StartByte == 0 && start == 0 {
			return true
		}
		return start < e.StartByte && (end == e.StartByte || end+lookahead > e.StartByte)
	}
	return start < e.OldEndByte && end+lookahead > e.StartByte
}

// Edit returns a copy of the tree with positions remapped through edit.
// Nodes the edit can influence are copied and marked damaged; all other
// subtrees are shared with the receiver, which stays unchanged. Pass the
// result to Parser.ParseIncremental together with the new source.
func (t *Tree) Edit(edit InputEdit) (*Tree, error) {
	if t == nil || t.root == 0 {
		return nil, &EditError{Edit: edit, Reason: "empty tree"}
	}
	rootSize := t.nodes.at(uint32(t.root)).size
	if err := edit.validate(rootSize.Bytes); err != nil {
		return nil, err
	}

	t.arena.mu.Lock()
	defer t.arena.mu.Unlock()

	root := t.root
	if !edit.isNoop() {
		e := &treeEditor{old: t.nodes, arena: t.arena, edit: edit}
		root = e.editSubtree(t.root, Length{}, Length{}, mapBoundary(rootSize, edit))
	}

	out := newTree(t.arena, root, t.source, t.language, t.revision+1, t.lexCache.edit(edit))
	out.edits = append(append([]InputEdit(nil), t.edits...), edit)
	return out, nil
}

type treeEditor struct {
	old   chunkView[subtree]
	arena *nodeArena
	edit  InputEdit
}

// editSubtree returns id itself when the edit cannot affect it, or the ID of
// a damaged copy spanning [newStart,newEnd).
func (e *treeEditor) editSubtree(id NodeID, oldStart, newStart, newEnd Length) NodeID {
	rec := e.old.at(uint32(id))
	oldEnd := lengthAdd(oldStart, rec.size)
	if !affectedBy(oldStart.Bytes, oldEnd.Bytes, rec.lookahead, e.edit) {
		return id
	}

	cp := *rec
	cp.flags |= flagDamaged
	cp.size = lengthSub(newEnd, newStart)
	if !rec.isLeaf() {
		cp.children = make([]NodeID, len(rec.children))
		pos := oldStart
		last := len(rec.children) - 1
		for i, c := range rec.children {
			childStart := pos
			pos = lengthAdd(pos, e.old.at(uint32(c)).size)
			s := newStart
			if i > 0 {
				s = mapBoundary(childStart, e.edit)
			}
			end := newEnd
			if i < last {
				end = mapBoundary(pos, e.edit)
			}
			cp.children[i] = e.editSubtree(c, childStart, s, end)
		}
	}
	return e.arena.allocNode(cp)
}

// EditFromOffsets builds the InputEdit for replacing src[start:oldEnd] with
// newText, computing row/column points, and returns it together with the
// edited source.
func EditFromOffsets(src []byte, start, oldEnd uint32, newText string) (InputEdit, []byte, error) {
	e := InputEdit{StartByte: start, OldEndByte: oldEnd, NewEndByte: start + uint32(len(newText))}
	if start > oldEnd || int(oldEnd) > len(src) {
		return e, nil, &EditError{Edit: e, Reason: fmt.Sprintf("range outside %d bytes", len(src))}
	}
	e.StartPoint = pointAt(src, start)
	e.OldEndPoint = advancePoint(e.StartPoint, src[start:oldEnd])
	e.NewEndPoint = advancePoint(e.StartPoint, []byte(newText))

	out := make([]byte, 0, len(src)-int(oldEnd-start)+len(newText))
	out = append(out, src[:start]...)
	out = append(out, newText...)
	out = append(out, src[oldEnd:]...)
	return e, out, nil
}

func pointAt(src []byte, offset uint32) Point {
	return advancePoint(Point{}, src[:offset])
}

func advancePoint(p Point, text []byte) Point {
	for _, b := range text {
		if b == '\n' {
			p.Row++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}
