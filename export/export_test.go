package export

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammars"
)

func parse(t *testing.T, src string) *gotreesitter.Tree {
	t.Helper()
	return gotreesitter.NewParser(grammars.XonshLanguage()).Parse([]byte(src))
}

func kinds(n *Node) []string {
	out := []string{n.Kind}
	for _, c := range n.Children {
		out = append(out, kinds(c)...)
	}
	return out
}

func TestFromTreeNamedOnly(t *testing.T) {
	root := FromTree(parse(t, "x = 1\n"), Options{Text: true})
	require.NotNil(t, root)
	want := []string{"module", "expression_statement", "assignment", "identifier", "integer"}
	if diff := cmp.Diff(want, kinds(root)); diff != "" {
		t.Errorf("kinds (-want +got):\n%s", diff)
	}

	assign := root.Children[0].Children[0]
	require.Len(t, assign.Children, 2)
	assert.Equal(t, "left", assign.Children[0].Field)
	assert.Equal(t, "x", assign.Children[0].Text)
	assert.Equal(t, "right", assign.Children[1].Field)
	assert.Equal(t, Point{Row: 0, Column: 4}, assign.Children[1].StartPoint)
	assert.Equal(t, uint32(5), assign.Children[1].EndByte)
	assert.Empty(t, assign.Text, "inner nodes carry no text")
}

func TestFromTreeAnonymous(t *testing.T) {
	root := FromTree(parse(t, "x = 1\n"), Options{Anonymous: true})
	assert.Contains(t, kinds(root), "=")
	assert.NotContains(t, kinds(FromTree(parse(t, "x = 1\n"), Options{})), "=")
}

func TestFromTreeKeepsErrors(t *testing.T) {
	root := FromTree(parse(t, "x = = 1\n"), Options{})
	var found bool
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Error || n.Missing {
			found = true
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	assert.True(t, found, "error nodes are always exported")
}

func TestJSON(t *testing.T) {
	tree := parse(t, "echo hi | wc -l\n")
	data, err := JSON(tree, Full)
	require.NoError(t, err)

	var got Node
	require.NoError(t, json.Unmarshal(data, &got))
	if diff := cmp.Diff(FromTree(tree, Full), &got); diff != "" {
		t.Errorf("JSON round trip (-want +got):\n%s", diff)
	}
}

func TestCBORIsCanonical(t *testing.T) {
	src := "for x in $(ls):\n    print(x)\n"
	a, err := CBOR(parse(t, src), Full)
	require.NoError(t, err)
	b, err := CBOR(parse(t, src), Full)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	decoded, err := DecodeCBOR(a)
	require.NoError(t, err)
	if diff := cmp.Diff(FromTree(parse(t, src), Full), decoded); diff != "" {
		t.Errorf("CBOR round trip (-want +got):\n%s", diff)
	}
}

func TestDecodeCBORRejectsGarbage(t *testing.T) {
	_, err := DecodeCBOR([]byte{0xff, 0x00})
	assert.Error(t, err)
}

func TestTreeDigest(t *testing.T) {
	d1, err := TreeDigest(parse(t, "x = 1\n"))
	require.NoError(t, err)
	d2, err := TreeDigest(parse(t, "x = 1\n"))
	require.NoError(t, err)
	d3, err := TreeDigest(parse(t, "x = 2\n"))
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.NotEqual(t, d1, d3, "leaf text is part of the digest")
	assert.Len(t, d1.String(), 64)
}

func TestSExpression(t *testing.T) {
	tree := parse(t, "pass\n")
	assert.Equal(t, "(module (pass_statement))", SExpression(tree))
}
