package gotreesitter

// reuseCursor walks an edited tree in document order alongside the parse
// position. Parsing only moves forward, so skipped subtrees are passed over
// once and an unchanged subtree costs a single step.
type reuseCursor struct {
	tree   *Tree
	frames []reuseFrame

	candAt uint32
	cands  []reuseCandidate
	valid  bool
}

type reuseFrame struct {
	kids []NodeID
	idx  int
	pos  Length
}

type reuseCandidate struct {
	id    NodeID
	start Length
}

func newReuseCursor(t *Tree) *reuseCursor {
	if t == nil || t.root == 0 {
		return nil
	}
	return &reuseCursor{
		tree:   t,
		frames: []reuseFrame{{kids: []NodeID{t.root}}},
	}
}

func (c *reuseCursor) current() (NodeID, Length, bool) {
	if len(c.frames) == 0 {
		return 0, Length{}, false
	}
	f := &c.frames[len(c.frames)-1]
	return f.kids[f.idx], f.pos, true
}

func (c *reuseCursor) advance() {
	for len(c.frames) > 0 {
		f := &c.frames[len(c.frames)-1]
		f.pos = lengthAdd(f.pos, c.tree.nodes.at(uint32(f.kids[f.idx])).size)
		f.idx++
		if f.idx < len(f.kids) {
			return
		}
		c.frames = c.frames[:len(c.frames)-1]
	}
}

func (c *reuseCursor) descend() {
	id, pos, ok := c.current()
	if !ok {
		return
	}
	rec := c.tree.nodes.at(uint32(id))
	if rec.isLeaf() {
		c.advance()
		return
	}
	c.frames = append(c.frames, reuseFrame{kids: rec.children, pos: pos})
}

// leaf descends to the first leaf at or below the cursor.
func (c *reuseCursor) leaf() (NodeID, Length, bool) {
	for {
		id, pos, ok := c.current()
		if !ok {
			return 0, Length{}, false
		}
		rec := c.tree.nodes.at(uint32(id))
		if rec.isLeaf() {
			return id, pos, true
		}
		c.frames = append(c.frames, reuseFrame{kids: rec.children, pos: pos})
	}
}

// skip moves past the old node id at start when it encloses the cursor.
func (c *reuseCursor) skip(id NodeID, start Length) {
	for i := range c.frames {
		f := &c.frames[i]
		if f.kids[f.idx] == id && f.pos == start {
			c.frames = c.frames[:i+1]
			c.advance()
			return
		}
	}
}

// seek moves the cursor to the first node that starts at or after offset.
func (c *reuseCursor) seek(offset uint32) {
	for {
		id, pos, ok := c.current()
		if !ok || pos.Bytes >= offset {
			return
		}
		end := pos.Bytes + c.tree.nodes.at(uint32(id)).size.Bytes
		if end <= offset {
			c.advance()
		} else {
			c.descend()
		}
	}
}

// candidates returns the old nodes starting at offset, widest first.
func (c *reuseCursor) candidates(offset uint32) []reuseCandidate {
	if c.valid && c.candAt == offset {
		return c.cands
	}
	c.seek(offset)
	c.cands = c.cands[:0]
	c.candAt = offset
	c.valid = true
	if len(c.frames) == 0 {
		return nil
	}
	f := c.frames[len(c.frames)-1]
	pos := f.pos
	for i := f.idx; i < len(f.kids) && pos.Bytes == offset; i++ {
		c.cands = c.collect(c.cands, f.kids[i], pos, offset)
		pos = lengthAdd(pos, c.tree.nodes.at(uint32(f.kids[i])).size)
	}
	return c.cands
}

func (c *reuseCursor) collect(out []reuseCandidate, id NodeID, start Length, offset uint32) []reuseCandidate {
	rec := c.tree.nodes.at(uint32(id))
	if rec.size.Bytes > 0 && !rec.has(flagDamaged) && !rec.has(flagHasError) {
		out = append(out, reuseCandidate{id: id, start: start})
	}
	pos := start
	for _, kid := range rec.children {
		if pos.Bytes != offset {
			break
		}
		out = c.collect(out, kid, pos, offset)
		pos = lengthAdd(pos, c.tree.nodes.at(uint32(kid)).size)
	}
	return out
}

// tryReuseSubtree attempts to reuse an old subtree at the current lookahead.
// On success it pushes the reused node, moves the token stream to the node's
// end and reports true; the caller then lexes a fresh lookahead. A matching
// old leaf is recorded on la so the shift keeps its identity.
func (r *parseRun) tryReuseSubtree(la *lexeme) bool {
	if r.reuse == nil || la.IsMissing || la.pending {
		return false
	}
	state := r.stack.state()
	for _, cand := range r.reuse.candidates(la.StartByte) {
		rec := r.reuse.tree.nodes.at(uint32(cand.id))
		if r.reuse.tree.state(rec.startState) != la.State {
			continue
		}
		if rec.isLeaf() {
			if la.reused == 0 && rec.symbol == la.Symbol && rec.size == la.length() {
				la.reused = cand.id
			}
			continue
		}
		nextState, ok := r.reuseTargetState(state, rec)
		if !ok {
			continue
		}

		start := la.startLength()
		end := lengthAdd(start, rec.size)
		r.stack.push(stackEntry{
			state:      nextState,
			start:      start,
			size:       rec.size,
			reach:      end.Bytes + rec.lookahead,
			startState: rec.startState,
			endState:   rec.endState,
			node:       cand.id,
			symbol:     rec.symbol,
		})
		r.cache.copyRange(r.oldCache, start.Bytes, end.Bytes)
		if end.Bytes+rec.lookahead > r.reach {
			r.reach = end.Bytes + rec.lookahead
		}
		r.stream.reset(end, r.reuse.tree.state(rec.endState))
		if r.replay != nil {
			r.replay.skip(cand.id, start)
		}
		r.stats.NodesReused++
		return true
	}
	return false
}

// reuseTargetState returns the state after pushing an old nonterminal, which
// is only sound when the node was originally built from the same state.
func (r *parseRun) reuseTargetState(state StateID, rec *subtree) (StateID, bool) {
	if rec.parseState != state || rec.has(flagExtra) {
		return 0, false
	}
	return r.lang.lookupGoto(state, rec.symbol)
}

// startReplay positions the reparse at the last checkpoint of old's lex
// cache. Every valid checkpoint lies ahead of all edits, so the text and
// scanner states before it are unchanged and the old leaves there can be fed
// to the parser instead of running the scanner.
func (r *parseRun) startReplay(old *Tree) {
	cp, ok := old.lexCache.Lookup(^uint32(0))
	if !ok || cp.Offset == 0 || int(cp.Offset) > len(r.source) {
		return
	}
	r.replay = newReuseCursor(old)
	r.replayStop = cp.Offset
	r.cache.copyRange(r.oldCache, 0, cp.Offset)
}

// replayNext returns the next old leaf as a lookahead. Replay ends at the
// checkpoint, or earlier at a leaf that carries an error or was inserted by
// recovery; the token stream then resumes where the last consumed leaf
// ended.
func (r *parseRun) replayNext() (lexeme, bool) {
	c := r.replay
	id, pos, ok := c.leaf()
	if !ok || pos.Bytes >= r.replayStop {
		r.replay = nil
		return lexeme{}, false
	}
	rec := c.tree.nodes.at(uint32(id))
	if uint32(rec.symbol) >= r.lang.TokenCount || rec.has(flagHasError|flagMissing|flagIsError|flagDamaged) {
		r.replay = nil
		return lexeme{}, false
	}
	end := lengthAdd(pos, rec.size)
	if int(end.Bytes) > len(r.source) {
		r.replay = nil
		return lexeme{}, false
	}
	tok := Token{
		Symbol:     rec.symbol,
		Text:       bytesToStringNoCopy(r.source[pos.Bytes:end.Bytes]),
		StartByte:  pos.Bytes,
		EndByte:    end.Bytes,
		StartPoint: pos.Extent,
		EndPoint:   end.Extent,
		State:      c.tree.state(rec.startState),
		Lookahead:  rec.lookahead,
	}
	after := c.tree.state(rec.endState)
	c.advance()
	r.stream.reset(end, after)
	if reach := end.Bytes + rec.lookahead; reach > r.reach {
		r.reach = reach
	}
	r.stats.TokensReplayed++
	return lexeme{Token: tok, after: after, reused: id}, true
}
