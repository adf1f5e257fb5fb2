package gotreesitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChunkListViewsAreStable(t *testing.T) {
	c := newChunkList[int](1)
	if c.chunkLen != minArenaNodeCap {
		t.Fatalf("chunk length = %d, want the minimum %d", c.chunkLen, minArenaNodeCap)
	}
	for i := 0; i < 100; i++ {
		c.add(i)
	}
	view := c.view()
	for i := 100; i < 1000; i++ {
		c.add(i)
	}
	if view.len() != 100 {
		t.Errorf("view length = %d, want 100", view.len())
	}
	for _, i := range []uint32{0, 63, 64, 99} {
		if got := *view.at(i); got != int(i) {
			t.Errorf("view.at(%d) = %d", i, got)
		}
	}
	if got := *c.at(999); got != 999 {
		t.Errorf("at(999) = %d", got)
	}
}

func TestArenaReservesNullNode(t *testing.T) {
	a := newNodeArena(arenaClassIncremental)
	if a.Len() != 1 {
		t.Fatalf("fresh arena holds %d nodes, want the null node only", a.Len())
	}
	a.mu.Lock()
	id := a.allocNode(subtree{symbol: 7})
	a.mu.Unlock()
	if id != 1 {
		t.Errorf("first node id = %d, want 1", id)
	}
	if a.node(id).symbol != 7 {
		t.Errorf("stored symbol = %d, want 7", a.node(id).symbol)
	}
}

func TestArenaSlabSizes(t *testing.T) {
	full := newNodeArena(arenaClassFull)
	inc := newNodeArena(arenaClassIncremental)
	if full.nodes.chunkLen <= inc.nodes.chunkLen {
		t.Errorf("full parse chunks (%d) not larger than incremental chunks (%d)", full.nodes.chunkLen, inc.nodes.chunkLen)
	}
	if got := nodeCapacityForBytes(1); got != minArenaNodeCap {
		t.Errorf("capacity of a tiny slab = %d, want %d", got, minArenaNodeCap)
	}
}

func TestInternState(t *testing.T) {
	a := newNodeArena(arenaClassIncremental)
	var s1, s2 ScannerState
	s2[3] = 9
	id1 := a.internState(s1)
	id2 := a.internState(s2)
	if id1 == id2 {
		t.Fatalf("distinct states share id %d", id1)
	}
	if again := a.internState(s1); again != id1 {
		t.Errorf("re-interned state got id %d, want %d", again, id1)
	}
	if got := *a.states.at(uint32(id2)); got != s2 {
		t.Errorf("stored state differs")
	}
}

func TestPopNonExtra(t *testing.T) {
	s := newParseStack(0)
	s.push(stackEntry{state: 1, symbol: 10})
	s.push(stackEntry{state: 1, symbol: 11, extra: true})
	s.push(stackEntry{state: 2, symbol: 12})
	s.push(stackEntry{state: 2, symbol: 13, extra: true})

	if got, want := s.states(), []StateID{0, 1, 2}; !cmp.Equal(got, want) {
		t.Errorf("states = %v, want %v", got, want)
	}
	popped, ok := s.popNonExtra(1)
	if !ok || len(popped) != 2 || popped[0].symbol != 12 || popped[1].symbol != 13 {
		t.Fatalf("popNonExtra(1) = %+v, %t", popped, ok)
	}
	if s.state() != 1 {
		t.Errorf("state after pop = %d, want 1", s.state())
	}
	if _, ok := s.popNonExtra(5); ok {
		t.Error("popping past the bottom succeeded")
	}
}

func TestFlattenSplicesHiddenEntries(t *testing.T) {
	entries := []stackEntry{
		{kids: []NodeID{1, 2}, fields: []FieldID{0, 3}, fielded: true},
		{node: 4},
		{node: 5, extra: true},
		{kids: []NodeID{6, 7}, fields: []FieldID{0, 0}},
	}
	fieldOf := func(i int) FieldID {
		if i == 2 {
			return 9
		}
		return 0
	}
	kids, fields, fielded := flatten(entries, fieldOf)
	if diff := cmp.Diff([]NodeID{1, 2, 4, 5, 6, 7}, kids); diff != "" {
		t.Errorf("kids (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]FieldID{0, 3, 0, 0, 9, 9}, fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if !fielded {
		t.Error("fielded children not reported")
	}
}

func TestSpanOf(t *testing.T) {
	at := Length{Bytes: 4, Extent: Point{Column: 4}}
	if start, size, reach, hasErr := spanOf(nil, at); start != at || size != (Length{}) || reach != 4 || hasErr {
		t.Errorf("empty span = %+v %+v %d %t", start, size, reach, hasErr)
	}
	entries := []stackEntry{
		{start: at, size: Length{Bytes: 2, Extent: Point{Column: 2}}, reach: 7},
		{start: Length{Bytes: 6}, size: Length{Bytes: 3, Extent: Point{Row: 1}}, reach: 9, hasError: true},
	}
	start, size, reach, hasErr := spanOf(entries, Length{})
	if start != at || size != (Length{Bytes: 5, Extent: Point{Row: 1}}) || reach != 9 || !hasErr {
		t.Errorf("span = %+v %+v %d %t", start, size, reach, hasErr)
	}
}
