package gotreesitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func offsetsOf(cps []Checkpoint) []uint32 {
	var out []uint32
	for _, cp := range cps {
		out = append(out, cp.Offset)
	}
	return out
}

func TestLexCacheRecordKeepsOrder(t *testing.T) {
	c := &LexCache{}
	c.record(Checkpoint{Offset: 0})
	c.record(Checkpoint{Offset: 10})
	c.record(Checkpoint{Offset: 10})
	c.record(Checkpoint{Offset: 5})
	c.record(Checkpoint{Offset: 20})
	if diff := cmp.Diff([]uint32{0, 10, 20}, offsetsOf(c.Checkpoints())); diff != "" {
		t.Errorf("checkpoints (-want +got):\n%s", diff)
	}
	if cp, ok := c.Lookup(15); !ok || cp.Offset != 10 {
		t.Errorf("Lookup(15) = %d, %t; want 10", cp.Offset, ok)
	}
	if cp, ok := c.Lookup(20); !ok || cp.Offset != 20 {
		t.Errorf("Lookup(20) = %d, %t; want 20", cp.Offset, ok)
	}
}

func TestLexCacheEdit(t *testing.T) {
	c := &LexCache{}
	c.record(Checkpoint{Offset: 0, Reach: 0})
	c.record(Checkpoint{Offset: 10, Point: Point{Row: 1}, Reach: 12})
	c.record(Checkpoint{Offset: 20, Point: Point{Row: 2}, Reach: 21})
	c.record(Checkpoint{Offset: 30, Point: Point{Row: 3}, Reach: 31})

	// Replace [11,15) with 8 bytes on the same row.
	e := InputEdit{
		StartByte: 11, OldEndByte: 15, NewEndByte: 19,
		StartPoint: Point{Row: 1, Column: 1}, OldEndPoint: Point{Row: 1, Column: 5}, NewEndPoint: Point{Row: 1, Column: 9},
	}
	edited := c.edit(e)

	// The checkpoint at 10 looked past the edit start and is dropped; later
	// ones shift and wait for confirmation.
	if diff := cmp.Diff([]uint32{0}, offsetsOf(edited.Checkpoints())); diff != "" {
		t.Errorf("valid checkpoints (-want +got):\n%s", diff)
	}
	if got := len(edited.entries); got != 3 {
		t.Fatalf("entries = %d, want 3", got)
	}
	shifted := edited.entries[1]
	if !shifted.stale || shifted.Offset != 24 || shifted.Point != (Point{Row: 2}) || shifted.Reach != 25 {
		t.Errorf("shifted checkpoint = %+v", shifted)
	}
	if cp, ok := edited.Lookup(27); !ok || cp.Offset != 0 {
		t.Errorf("Lookup(27) = %d, %t; stale checkpoints must be skipped", cp.Offset, ok)
	}
	if c.Len() != 4 {
		t.Errorf("edit modified the original cache")
	}

	next := &LexCache{}
	next.copyRange(edited, 20, 40)
	if diff := cmp.Diff([]uint32{24, 34}, offsetsOf(next.Checkpoints())); diff != "" {
		t.Errorf("confirmed checkpoints (-want +got):\n%s", diff)
	}
}

func TestNilLexCache(t *testing.T) {
	var c *LexCache
	if c.Len() != 0 || c.Checkpoints() != nil {
		t.Error("nil cache is not empty")
	}
	if _, ok := c.Lookup(3); ok {
		t.Error("nil cache found a checkpoint")
	}
	if c.edit(InputEdit{}) != nil {
		t.Error("editing a nil cache produced a cache")
	}
}
