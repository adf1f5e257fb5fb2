package gotreesitter

import "sort"

// Checkpoint is a position from which the scanner can resume: the state it
// was in before lexing the token at Offset.
type Checkpoint struct {
	Offset uint32
	Point  Point
	State  ScannerState
	// Reach is one past the furthest byte any earlier token examined. The
	// checkpoint stays valid for edits starting at or after Reach.
	Reach uint32
}

type cacheEntry struct {
	Checkpoint
	stale bool
}

// LexCache maps line-start byte offsets to scanner states. The parser
// records one checkpoint at the first token of every line it lexes. An Edit
// keeps checkpoints ahead of the edit, and shifts and marks stale those
// behind it until a reparse confirms them.
type LexCache struct {
	entries []cacheEntry
}

// Len reports the number of valid checkpoints.
func (c *LexCache) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, e := range c.entries {
		if !e.stale {
			n++
		}
	}
	return n
}

// Checkpoints returns the valid checkpoints in offset order.
func (c *LexCache) Checkpoints() []Checkpoint {
	if c == nil {
		return nil
	}
	out := make([]Checkpoint, 0, len(c.entries))
	for _, e := range c.entries {
		if !e.stale {
			out = append(out, e.Checkpoint)
		}
	}
	return out
}

// Lookup returns the last valid checkpoint at or before offset.
func (c *LexCache) Lookup(offset uint32) (Checkpoint, bool) {
	if c == nil {
		return Checkpoint{}, false
	}
	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].Offset > offset })
	for i--; i >= 0; i-- {
		if !c.entries[i].stale {
			return c.entries[i].Checkpoint, true
		}
	}
	return Checkpoint{}, false
}

func (c *LexCache) record(cp Checkpoint) {
	if n := len(c.entries); n > 0 && c.entries[n-1].Offset >= cp.Offset {
		return
	}
	c.entries = append(c.entries, cacheEntry{Checkpoint: cp})
}

// copyRange records the old checkpoints inside [start, end], treating stale
// ones as confirmed. The caller has verified that the text and scanner state
// across the range are unchanged.
func (c *LexCache) copyRange(old *LexCache, start, end uint32) {
	if old == nil {
		return
	}
	i := sort.Search(len(old.entries), func(i int) bool { return old.entries[i].Offset >= start })
	for ; i < len(old.entries) && old.entries[i].Offset <= end; i++ {
		c.record(old.entries[i].Checkpoint)
	}
}

// edit returns the cache remapped through e.
func (c *LexCache) edit(e InputEdit) *LexCache {
	if c == nil {
		return nil
	}
	out := &LexCache{entries: make([]cacheEntry, 0, len(c.entries))}
	for _, ent := range c.entries {
		switch {
		case ent.Offset <= e.StartByte && ent.Reach <= e.StartByte:
			out.entries = append(out.entries, ent)
		case ent.Offset >= e.OldEndByte && ent.Offset > e.StartByte:
			pos := shiftLength(Length{Bytes: ent.Offset, Extent: ent.Point}, e)
			ent.Offset = pos.Bytes
			ent.Point = pos.Extent
			ent.Reach = shiftLength(Length{Bytes: ent.Reach}, e).Bytes
			ent.stale = true
			out.entries = append(out.entries, ent)
		}
	}
	return out
}
