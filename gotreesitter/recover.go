package gotreesitter

// maxSimulatedReductions bounds the reduce chain simulated for one token.
const maxSimulatedReductions = 1024

// maxErrorRun bounds how many skipped tokens are merged into one ERROR node.
const maxErrorRun = 256

// recover handles a lookahead the current state has no action for. It tries,
// in order: deleting the lookahead when the token after it fits, inserting a
// missing token that makes the lookahead fit, popping stack entries into an
// ERROR node, and finally skipping the lookahead as an ERROR extra. At end of
// input with nothing left to try it returns the finished root.
func (r *parseRun) recover(la *lexeme, have *bool) (NodeID, bool) {
	r.stats.RecoverySteps++
	r.recoveries++
	if la.StartByte != r.posAttemptAt {
		r.posAttemptAt = la.StartByte
		r.posAttempts = 0
	}
	r.posAttempts++
	limited := r.recoveries > r.p.maxRecoveryAttempts || r.posAttempts > r.p.maxRecoveryPerPosition

	if !limited {
		states := r.stack.states()

		if !r.lang.isProtected(la.Symbol) {
			if next, ok := r.peekSignificant(); ok && r.acceptable(states, next) {
				r.trace("delete", la)
				r.skipToken(*la)
				*have = false
				return 0, false
			}
		}

		for _, sym := range r.lang.InsertableSymbols {
			after, ok := r.simulate(states, sym)
			if !ok || !r.acceptable(after, la.Symbol) {
				continue
			}
			missing := lexeme{
				Token: Token{
					Symbol:     sym,
					StartByte:  la.StartByte,
					EndByte:    la.StartByte,
					StartPoint: la.StartPoint,
					EndPoint:   la.StartPoint,
					State:      la.State,
					IsMissing:  true,
				},
				after:   la.State,
				pending: true,
			}
			r.trace("insert "+r.lang.SymbolName(sym)+" before", la)
			replay := *la
			replay.pending = true
			r.pending = append([]lexeme{replay}, r.pending...)
			*la = missing
			return 0, false
		}

		for d := 1; d < len(states); d++ {
			if !r.acceptable(states[:len(states)-d], la.Symbol) {
				continue
			}
			popped, ok := r.stack.popNonExtra(d)
			if !ok {
				break
			}
			r.trace("pop into error before", la)
			r.pushError(popped)
			return 0, false
		}
	}

	if la.Symbol == EOFSymbol {
		r.trace("finish at", la)
		return r.finalize(), true
	}
	r.trace("skip", la)
	r.skipToken(*la)
	*have = false
	return 0, false
}

func (r *parseRun) trace(what string, la *lexeme) {
	r.p.log.Debugf("recovery: %s %s at %d", what, r.lang.SymbolName(la.Symbol), la.StartByte)
}

// simulate runs the reductions sym triggers on a copy of the state stack and
// returns the states after shifting it.
func (r *parseRun) simulate(states []StateID, sym Symbol) ([]StateID, bool) {
	st := append([]StateID(nil), states...)
	for i := 0; i < maxSimulatedReductions; i++ {
		act, ok := r.lang.lookupAction(st[len(st)-1], sym)
		if !ok {
			return nil, false
		}
		switch act.Type {
		case ParseActionShift:
			return append(st, act.State), true
		case ParseActionAccept:
			return st, true
		case ParseActionReduce:
			n := int(act.ChildCount)
			if n >= len(st) {
				return nil, false
			}
			st = st[:len(st)-n]
			next, ok := r.lang.lookupGoto(st[len(st)-1], act.Symbol)
			if !ok {
				return nil, false
			}
			st = append(st, next)
		default:
			return nil, false
		}
	}
	return nil, false
}

func (r *parseRun) acceptable(states []StateID, sym Symbol) bool {
	_, ok := r.simulate(states, sym)
	return ok
}

// peekSignificant returns the symbol of the next non-extra token without
// consuming it.
func (r *parseRun) peekSignificant() (Symbol, bool) {
	for _, p := range r.pending {
		if !r.lang.IsExtra(p.Symbol) && p.Symbol != ErrorSymbol {
			return p.Symbol, true
		}
	}
	saved := *r.stream
	defer func() { *r.stream = saved }()
	for i := 0; i < 64; i++ {
		tok := r.stream.next()
		if tok.Symbol == ErrorSymbol || r.lang.IsExtra(tok.Symbol) {
			continue
		}
		return tok.Symbol, true
	}
	return 0, false
}

// skipToken wraps la in an ERROR extra, extending the ERROR node directly
// below when only extras separate them.
func (r *parseRun) skipToken(la lexeme) {
	leaf := r.newLeaf(la, r.leafFlags(la.Token))
	entry := r.leafEntry(la, leaf, r.stack.state(), false)

	i := len(r.stack.entries)
	for i > 1 && r.stack.entries[i-1].extra && r.stack.entries[i-1].symbol != ErrorSymbol {
		i--
	}
	if i > 1 {
		prev := &r.stack.entries[i-1]
		if prev.extra && prev.symbol == ErrorSymbol && prev.node != 0 {
			if rec := r.arena.node(prev.node); !rec.isLeaf() && len(rec.children) < maxErrorRun {
				run := append([]stackEntry(nil), r.stack.entries[i-1:]...)
				r.stack.entries = r.stack.entries[:i-1]
				r.pushError(append(run, entry))
				return
			}
		}
	}
	r.pushError([]stackEntry{entry})
}

// pushError wraps entries in an ERROR node pushed as an extra.
func (r *parseRun) pushError(entries []stackEntry) {
	var kids []NodeID
	for _, e := range entries {
		if e.symbol == ErrorSymbol && e.extra && e.node != 0 {
			if rec := r.arena.node(e.node); !rec.isLeaf() {
				kids = append(kids, rec.children...)
				continue
			}
		}
		k, _, _ := flatten([]stackEntry{e}, nil)
		kids = append(kids, k...)
	}
	start, size, reach, _ := spanOf(entries, r.stack.top().end())
	startState := r.stack.top().endState
	endState := startState
	if len(entries) > 0 {
		startState = entries[0].startState
		endState = entries[len(entries)-1].endState
	}
	end := lengthAdd(start, size).Bytes
	look := uint32(0)
	if reach > end {
		look = reach - end
	}
	id := r.arena.allocNode(subtree{
		symbol:     ErrorSymbol,
		flags:      flagNamed | flagVisible | flagExtra | flagIsError | flagHasError,
		parseState: r.stack.state(),
		size:       size,
		lookahead:  look,
		startState: startState,
		endState:   endState,
		children:   kids,
	})
	r.stats.NodesCreated++
	r.stack.push(stackEntry{
		state:      r.stack.state(),
		start:      start,
		size:       size,
		reach:      reach,
		startState: startState,
		endState:   endState,
		node:       id,
		symbol:     ErrorSymbol,
		extra:      true,
		hasError:   true,
	})
}

// finalize builds a root from whatever the stack holds when end of input
// cannot be accepted.
func (r *parseRun) finalize() NodeID {
	id := r.buildRoot(r.stack.entries[1:], 0)
	r.arena.node(id).flags |= flagHasError
	return id
}
