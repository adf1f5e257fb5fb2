package gotreesitter

// stackEntry is one slot of the parse stack. Visible nodes and tokens are
// already in the arena and referenced by node. Hidden nonterminals never get
// an arena record: their children are carried in kids and spliced into the
// first visible ancestor.
type stackEntry struct {
	state StateID
	start Length
	size  Length
	// reach is one past the furthest byte that influenced this entry.
	reach uint32
	// Scanner states before the entry's first token and after its last.
	startState stateID
	endState   stateID

	node   NodeID
	symbol Symbol
	kids   []NodeID
	// fields parallels kids; fielded is set when any of them is non-zero.
	fields   []FieldID
	fielded  bool
	extra    bool
	hasError bool
}

func (e *stackEntry) end() Length { return lengthAdd(e.start, e.size) }

// parseStack is the LR stack of a single parse. The generated tables are
// conflict-free, so one stack version suffices.
type parseStack struct {
	entries []stackEntry
}

func newParseStack(initial StateID) parseStack {
	return parseStack{
		entries: []stackEntry{{state: initial}},
	}
}

func (s *parseStack) top() *stackEntry {
	return &s.entries[len(s.entries)-1]
}

func (s *parseStack) state() StateID {
	return s.top().state
}

func (s *parseStack) push(e stackEntry) {
	s.entries = append(s.entries, e)
}

// states returns the automaton states from bottom to top, skipping extras,
// which never change the state.
func (s *parseStack) states() []StateID {
	out := make([]StateID, 0, len(s.entries))
	for i := range s.entries {
		if i > 0 && s.entries[i].extra {
			continue
		}
		out = append(out, s.entries[i].state)
	}
	return out
}

// popNonExtra removes entries down to and including the n-th non-extra entry
// from the top and returns them in stack order. It returns false when the
// stack holds fewer than n non-extra entries.
func (s *parseStack) popNonExtra(n int) ([]stackEntry, bool) {
	i := len(s.entries)
	for n > 0 {
		i--
		if i < 1 {
			return nil, false
		}
		if !s.entries[i].extra {
			n--
		}
	}
	popped := make([]stackEntry, len(s.entries)-i)
	copy(popped, s.entries[i:])
	s.entries = s.entries[:i]
	return popped, true
}
