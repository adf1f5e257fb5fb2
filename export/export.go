// Package export converts syntax trees into portable forms: S-expressions,
// JSON and canonical CBOR, and computes content digests of trees.
package export

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// Options selects which nodes an export includes.
type Options struct {
	Anonymous bool // include anonymous nodes such as punctuation
	Extras    bool // include hidden extras such as whitespace
	Text      bool // include the source text of leaves
}

// Full includes every node and all leaf text.
var Full = Options{Anonymous: true, Extras: true, Text: true}

// Node is the exported form of a syntax node.
type Node struct {
	Kind       string  `json:"kind" cbor:"1,keyasint"`
	Field      string  `json:"field,omitempty" cbor:"2,keyasint,omitempty"`
	StartByte  uint32  `json:"startByte" cbor:"3,keyasint"`
	EndByte    uint32  `json:"endByte" cbor:"4,keyasint"`
	StartPoint Point   `json:"start" cbor:"5,keyasint"`
	EndPoint   Point   `json:"end" cbor:"6,keyasint"`
	Named      bool    `json:"named,omitempty" cbor:"7,keyasint,omitempty"`
	Missing    bool    `json:"missing,omitempty" cbor:"8,keyasint,omitempty"`
	Error      bool    `json:"error,omitempty" cbor:"9,keyasint,omitempty"`
	Extra      bool    `json:"extra,omitempty" cbor:"10,keyasint,omitempty"`
	Text       string  `json:"text,omitempty" cbor:"11,keyasint,omitempty"`
	Children   []*Node `json:"children,omitempty" cbor:"12,keyasint,omitempty"`
}

// Point is a zero-based row and byte column.
type Point struct {
	Row    uint32 `json:"row" cbor:"1,keyasint"`
	Column uint32 `json:"column" cbor:"2,keyasint"`
}

// FromTree builds the exported form of tree's root. An empty tree yields nil.
func FromTree(tree *gotreesitter.Tree, opts Options) *Node {
	root := tree.RootNode()
	if root.IsNull() {
		return nil
	}
	return fromNode(root, "", opts)
}

func fromNode(n gotreesitter.Node, field string, opts Options) *Node {
	start, end := n.StartPoint(), n.EndPoint()
	out := &Node{
		Kind:       n.Kind(),
		Field:      field,
		StartByte:  n.StartByte(),
		EndByte:    n.EndByte(),
		StartPoint: Point{Row: start.Row, Column: start.Column},
		EndPoint:   Point{Row: end.Row, Column: end.Column},
		Named:      n.IsNamed(),
		Missing:    n.IsMissing(),
		Error:      n.IsError(),
		Extra:      n.IsExtra(),
	}
	if n.ChildCount() == 0 && opts.Text {
		out.Text = n.Text()
	}
	for i, c := range n.Children() {
		if !included(c, opts) {
			continue
		}
		out.Children = append(out.Children, fromNode(c, n.FieldNameForChild(i), opts))
	}
	return out
}

func included(n gotreesitter.Node, opts Options) bool {
	switch {
	case n.IsError(), n.IsMissing():
		return true
	case n.IsExtra() && !n.IsNamed():
		return opts.Extras
	case !n.IsNamed():
		return opts.Anonymous
	}
	return true
}

// SExpression renders the named structure of tree, with field labels and
// MISSING and ERROR markers.
func SExpression(tree *gotreesitter.Tree) string {
	return tree.String()
}

// JSON encodes the exported tree as indented JSON.
func JSON(tree *gotreesitter.Tree, opts Options) ([]byte, error) {
	data, err := json.MarshalIndent(FromTree(tree, opts), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tree as JSON: %w", err)
	}
	return data, nil
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CanonicalEncOptions().EncMode(); err != nil {
		panic(fmt.Sprintf("cbor encoder: %v", err))
	}
	if decMode, err = (cbor.DecOptions{MaxNestedLevels: 4096}).DecMode(); err != nil {
		panic(fmt.Sprintf("cbor decoder: %v", err))
	}
}

// CBOR encodes the exported tree with canonical CBOR, so equal trees encode
// to equal bytes.
func CBOR(tree *gotreesitter.Tree, opts Options) ([]byte, error) {
	data, err := encMode.Marshal(FromTree(tree, opts))
	if err != nil {
		return nil, fmt.Errorf("encode tree as CBOR: %w", err)
	}
	return data, nil
}

// DecodeCBOR decodes a tree written by CBOR.
func DecodeCBOR(data []byte) (*Node, error) {
	var n *Node
	if err := decMode.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode CBOR tree: %w", err)
	}
	return n, nil
}

// Digest is a BLAKE2b-256 hash of a tree's full canonical encoding.
type Digest [blake2b.Size256]byte

// String returns the digest in hex.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// TreeDigest hashes the full export of tree, leaf text included. Two trees
// have equal digests exactly when they have the same shape, positions and
// text.
func TreeDigest(tree *gotreesitter.Tree) (Digest, error) {
	data, err := CBOR(tree, Full)
	if err != nil {
		return Digest{}, err
	}
	return blake2b.Sum256(data), nil
}
