package gotreesitter

import (
	"fmt"
	"strings"
)

// Range is a span of source text.
type Range struct {
	StartByte  uint32
	EndByte    uint32
	StartPoint Point
	EndPoint   Point
}

type nodeFlags uint8

const (
	flagNamed nodeFlags = 1 << iota
	flagVisible
	flagExtra
	flagMissing
	flagHasError
	flagIsError
	flagDamaged
)

// subtree is the arena record behind a node. It stores only its size, never
// an absolute position, so a subtree can be shared by trees in which the text
// before it has changed.
type subtree struct {
	symbol     Symbol
	flags      nodeFlags
	parseState StateID
	production uint16
	size       Length
	// lookahead counts bytes past the node's end that influenced how it was
	// lexed or reduced.
	lookahead  uint32
	startState stateID
	endState   stateID
	children   []NodeID
	fields     []FieldID
}

func (s *subtree) has(f nodeFlags) bool { return s.flags&f != 0 }

func (s *subtree) isLeaf() bool { return len(s.children) == 0 }

// Node is a handle to a node of a Tree. It is a small value; the zero Node
// is the null node.
type Node struct {
	tree  *Tree
	id    NodeID
	start Length
}

func (n Node) rec() *subtree {
	return n.tree.nodes.at(uint32(n.id))
}

// IsNull reports whether n is the null node.
func (n Node) IsNull() bool { return n.tree == nil || n.id == 0 }

// ID returns the node's arena identity. Two trees of one lineage return the
// same ID for a subtree the incremental parser reused.
func (n Node) ID() NodeID { return n.id }

// Symbol returns the node's grammar symbol.
func (n Node) Symbol() Symbol { return n.rec().symbol }

// Kind returns the node's type name from the language.
func (n Node) Kind() string {
	if n.IsNull() {
		return ""
	}
	return n.tree.language.SymbolName(n.rec().symbol)
}

// Type is an alias for Kind.
func (n Node) Type() string { return n.Kind() }

// IsNamed reports whether this is a named node (as opposed to anonymous syntax like punctuation).
func (n Node) IsNamed() bool { return n.rec().has(flagNamed) }

// IsMissing reports whether this node was inserted by error recovery.
func (n Node) IsMissing() bool { return n.rec().has(flagMissing) }

// IsExtra reports whether this node is whitespace, a comment or another
// token allowed anywhere.
func (n Node) IsExtra() bool { return n.rec().has(flagExtra) }

// IsError reports whether this node is an ERROR node or an error token.
func (n Node) IsError() bool { return n.rec().has(flagIsError) }

// HasError reports whether this node or any descendant contains a parse error.
func (n Node) HasError() bool { return n.rec().has(flagHasError) }

// StartByte returns the byte offset where this node begins.
func (n Node) StartByte() uint32 { return n.start.Bytes }

// EndByte returns the byte offset where this node ends (exclusive).
func (n Node) EndByte() uint32 { return n.start.Bytes + n.rec().size.Bytes }

// StartPoint returns the row/column position where this node begins.
func (n Node) StartPoint() Point { return n.start.Extent }

// EndPoint returns the row/column position where this node ends.
func (n Node) EndPoint() Point { return n.end().Extent }

func (n Node) end() Length { return lengthAdd(n.start, n.rec().size) }

// Range returns the full span of this node as a Range.
func (n Node) Range() Range {
	end := n.end()
	return Range{
		StartByte:  n.start.Bytes,
		EndByte:    end.Bytes,
		StartPoint: n.start.Extent,
		EndPoint:   end.Extent,
	}
}

// ChildCount returns the number of children (both named and anonymous).
func (n Node) ChildCount() int {
	if n.IsNull() {
		return 0
	}
	return len(n.rec().children)
}

// Child returns the i-th child, or the null node if i is out of range.
func (n Node) Child(i int) Node {
	if n.IsNull() {
		return Node{}
	}
	kids := n.rec().children
	if i < 0 || i >= len(kids) {
		return Node{}
	}
	pos := n.start
	for j := 0; j < i; j++ {
		pos = lengthAdd(pos, n.tree.nodes.at(uint32(kids[j])).size)
	}
	return Node{tree: n.tree, id: kids[i], start: pos}
}

// Children returns all children in order.
func (n Node) Children() []Node {
	if n.IsNull() {
		return nil
	}
	kids := n.rec().children
	out := make([]Node, len(kids))
	pos := n.start
	for i, id := range kids {
		out[i] = Node{tree: n.tree, id: id, start: pos}
		pos = lengthAdd(pos, n.tree.nodes.at(uint32(id)).size)
	}
	return out
}

// NamedChildCount returns the number of named children.
func (n Node) NamedChildCount() int {
	if n.IsNull() {
		return 0
	}
	count := 0
	for _, id := range n.rec().children {
		if n.tree.nodes.at(uint32(id)).has(flagNamed) {
			count++
		}
	}
	return count
}

// NamedChild returns the i-th named child (skipping anonymous children),
// or the null node if i is out of range.
func (n Node) NamedChild(i int) Node {
	count := 0
	for _, c := range n.Children() {
		if c.IsNamed() {
			if count == i {
				return c
			}
			count++
		}
	}
	return Node{}
}

// ChildByFieldName returns the first child assigned to the given field name,
// or the null node if no child has that field.
func (n Node) ChildByFieldName(name string) Node {
	if n.IsNull() {
		return Node{}
	}
	fid, ok := n.tree.language.FieldByName(name)
	if !ok {
		return Node{}
	}
	fields := n.rec().fields
	for i, c := range n.Children() {
		if i < len(fields) && fields[i] == fid {
			return c
		}
	}
	return Node{}
}

// FieldNameForChild returns the field name of the i-th child, or "".
func (n Node) FieldNameForChild(i int) string {
	if n.IsNull() {
		return ""
	}
	fields := n.rec().fields
	if i < 0 || i >= len(fields) || fields[i] == 0 {
		return ""
	}
	if int(fields[i]) < len(n.tree.language.FieldNames) {
		return n.tree.language.FieldNames[fields[i]]
	}
	return ""
}

// Parent returns this node's parent, or the null node for the root. Nodes
// carry no parent pointer because subtrees are shared between trees, so the
// parent is found by descending from the root.
func (n Node) Parent() Node {
	if n.IsNull() || n.id == n.tree.root {
		return Node{}
	}
	parent, _ := findParent(n.tree.RootNode(), n)
	return parent
}

func findParent(cur, target Node) (Node, bool) {
	for _, c := range cur.Children() {
		if c.id == target.id && c.start == target.start {
			return cur, true
		}
		if c.start.Bytes > target.start.Bytes {
			break
		}
		if c.ChildCount() == 0 || target.start.Bytes > c.EndByte() {
			continue
		}
		if p, ok := findParent(c, target); ok {
			return p, true
		}
	}
	return Node{}, false
}

// Text returns the source text covered by this node.
func (n Node) Text() string {
	if n.IsNull() {
		return ""
	}
	src := n.tree.source
	start, end := n.StartByte(), n.EndByte()
	if int(end) > len(src) || start > end {
		return ""
	}
	return string(src[start:end])
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func (n Node) Walk(fn func(Node) bool) {
	if n.IsNull() {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		c.Walk(fn)
	}
}

// Leaves returns the leaf nodes under n in document order. Their texts
// concatenate to the text of n.
func (n Node) Leaves() []Node {
	var out []Node
	n.Walk(func(c Node) bool {
		if c.ChildCount() == 0 {
			out = append(out, c)
			return false
		}
		return true
	})
	return out
}

// String renders the named structure of the subtree as an S-expression.
func (n Node) String() string {
	if n.IsNull() {
		return "()"
	}
	var b strings.Builder
	n.writeSExpr(&b)
	return b.String()
}

func (n Node) writeSExpr(b *strings.Builder) {
	rec := n.rec()
	switch {
	case rec.has(flagMissing):
		name := n.Kind()
		if !rec.has(flagNamed) {
			name = fmt.Sprintf("%q", name)
		}
		b.WriteString("(MISSING ")
		b.WriteString(name)
		b.WriteString(")")
		return
	case rec.has(flagIsError):
		b.WriteString("(ERROR")
	default:
		b.WriteString("(")
		b.WriteString(n.Kind())
	}
	for i, c := range n.Children() {
		if !c.IsNamed() && !c.IsMissing() {
			continue
		}
		b.WriteString(" ")
		if f := n.FieldNameForChild(i); f != "" {
			b.WriteString(f)
			b.WriteString(": ")
		}
		c.writeSExpr(b)
	}
	b.WriteString(")")
}

// Tree holds a complete syntax tree along with its source text and language.
// A Tree is immutable: Edit and the incremental parse produce new trees and
// leave the receiver valid. Trees may be read from multiple goroutines.
type Tree struct {
	arena    *nodeArena
	nodes    chunkView[subtree]
	states   chunkView[ScannerState]
	root     NodeID
	source   []byte
	language *Language
	revision uint64
	lexCache *LexCache
	edits    []InputEdit
	stats    ParseStats
}

// newTree snapshots the arena for a new tree. Callers hold arena.mu.
func newTree(arena *nodeArena, root NodeID, source []byte, lang *Language, revision uint64, cache *LexCache) *Tree {
	return &Tree{
		arena:    arena,
		nodes:    arena.nodes.view(),
		states:   arena.states.view(),
		root:     root,
		source:   source,
		language: lang,
		revision: revision,
		lexCache: cache,
	}
}

// RootNode returns the tree's root node.
func (t *Tree) RootNode() Node {
	if t == nil || t.root == 0 {
		return Node{}
	}
	return Node{tree: t, id: t.root}
}

// Source returns the source text the tree was parsed from. After Edit it is
// still the pre-edit text.
func (t *Tree) Source() []byte { return t.source }

// Language returns the language used to parse this tree.
func (t *Tree) Language() *Language { return t.language }

// Revision increases by one with every Edit and every incremental parse.
func (t *Tree) Revision() uint64 { return t.revision }

// LexCache returns the scanner checkpoints recorded for this tree.
func (t *Tree) LexCache() *LexCache { return t.lexCache }

// Edits returns the edits applied to the tree since it was parsed.
func (t *Tree) Edits() []InputEdit { return t.edits }

// Damaged reports whether any node was invalidated by an edit.
func (t *Tree) Damaged() bool {
	if t.root == 0 {
		return false
	}
	return t.nodes.at(uint32(t.root)).has(flagDamaged)
}

// String renders the whole tree as an S-expression.
func (t *Tree) String() string { return t.RootNode().String() }

func (t *Tree) state(id stateID) ScannerState {
	return *t.states.at(uint32(id))
}

// ArenaLen reports how many nodes the arena behind t held when t was built,
// including nodes only older trees of the lineage still reach.
func (t *Tree) ArenaLen() int { return int(t.nodes.len()) }

// NodeCount reports how many nodes are reachable from the root.
func (t *Tree) NodeCount() int {
	count := 0
	t.RootNode().Walk(func(Node) bool {
		count++
		return true
	})
	return count
}

// CheckSpans verifies that every node's size equals the sum of its
// children's sizes and that the root spans the source. It returns the first
// violation found.
func (t *Tree) CheckSpans() error {
	if t.root == 0 {
		return nil
	}
	if t.edits == nil {
		if got := t.nodes.at(uint32(t.root)).size.Bytes; int(got) != len(t.source) {
			return fmt.Errorf("root spans %d bytes, source has %d", got, len(t.source))
		}
	}
	var err error
	t.RootNode().Walk(func(n Node) bool {
		if err != nil {
			return false
		}
		err = checkSpan(t.nodes, n.id)
		return err == nil
	})
	return err
}

func checkSpan(nodes chunkView[subtree], id NodeID) error {
	rec := nodes.at(uint32(id))
	if rec.isLeaf() {
		return nil
	}
	var sum Length
	for _, c := range rec.children {
		sum = lengthAdd(sum, nodes.at(uint32(c)).size)
	}
	if sum != rec.size {
		return fmt.Errorf("node %d: children span %v, node spans %v", id, sum, rec.size)
	}
	return nil
}
