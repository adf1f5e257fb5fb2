package gotreesitter

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/tliron/commonlog"
)

const (
	defaultMaxRecoveryAttempts    = 4096
	defaultMaxRecoveryPerPosition = 8
)

// Parser is an LR(1) parser that reads parse tables from a Language and
// produces a syntax tree. A Parser holds only configuration; each call runs
// with its own state, so one Parser may parse many documents concurrently.
type Parser struct {
	language               *Language
	maxRecoveryAttempts    int
	maxRecoveryPerPosition int
	log                    commonlog.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithMaxRecoveryAttempts caps the recovery steps per parse. Past the cap
// every unexpected token is skipped as an error.
func WithMaxRecoveryAttempts(n int) ParserOption {
	return func(p *Parser) {
		if n > 0 {
			p.maxRecoveryAttempts = n
		}
	}
}

// WithMaxRecoveryPerPosition caps the recovery steps attempted at one source
// offset before the offending token is skipped.
func WithMaxRecoveryPerPosition(n int) ParserOption {
	return func(p *Parser) {
		if n > 0 {
			p.maxRecoveryPerPosition = n
		}
	}
}

// WithLogger sets the logger recovery decisions are reported to.
func WithLogger(log commonlog.Logger) ParserOption {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// NewParser creates a new Parser for the given language.
func NewParser(lang *Language, opts ...ParserOption) *Parser {
	p := &Parser{
		language:               lang,
		maxRecoveryAttempts:    defaultMaxRecoveryAttempts,
		maxRecoveryPerPosition: defaultMaxRecoveryPerPosition,
		log:                    commonlog.GetLogger("xonshts.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Language returns the parser's language.
func (p *Parser) Language() *Language { return p.language }

// ParseStats counts the work one parse did.
type ParseStats struct {
	TokensLexed int
	// TokensReplayed counts old leaves fed back to the parser ahead of the
	// lex checkpoint the reparse resumed scanning from.
	TokensReplayed int
	NodesReused    int
	NodesCreated   int
	RecoverySteps  int
}

// Stats returns the counters of the parse that produced t.
func (t *Tree) Stats() ParseStats { return t.stats }

// Parse parses source from scratch. It never fails: malformed input yields
// a tree with error and missing nodes.
func (p *Parser) Parse(source []byte) *Tree {
	t, _ := p.ParseContext(context.Background(), source)
	return t
}

// ParseContext is Parse with cancellation. The context is polled between
// tokens; a cancelled parse returns the context's error.
func (p *Parser) ParseContext(ctx context.Context, source []byte) (*Tree, error) {
	return p.parse(ctx, source, nil)
}

// ParseIncremental reparses source reusing the unchanged subtrees of old,
// which must have been brought up to date with Tree.Edit. Without recorded
// edits, old is only reused when its source equals source.
func (p *Parser) ParseIncremental(source []byte, old *Tree) *Tree {
	t, _ := p.ParseIncrementalContext(context.Background(), source, old)
	return t
}

// ParseIncrementalContext is ParseIncremental with cancellation.
func (p *Parser) ParseIncrementalContext(ctx context.Context, source []byte, old *Tree) (*Tree, error) {
	if !p.canReuse(source, old) {
		return p.parse(ctx, source, nil)
	}
	return p.parse(ctx, source, old)
}

// Reparse applies edits to old in order and incrementally parses source,
// which must be the text after the last edit. Inconsistent edits fail with
// an error wrapping ErrInvalidEdit before any scanning happens.
func (p *Parser) Reparse(ctx context.Context, old *Tree, source []byte, edits ...InputEdit) (*Tree, error) {
	if old == nil {
		return p.ParseContext(ctx, source)
	}
	edited := old
	for _, e := range edits {
		next, err := edited.Edit(e)
		if err != nil {
			return nil, fmt.Errorf("reparse: %w", err)
		}
		edited = next
	}
	if size := edited.nodes.at(uint32(edited.root)).size.Bytes; int(size) != len(source) {
		return nil, fmt.Errorf("reparse: %w", &EditError{
			Reason: fmt.Sprintf("edited tree spans %d bytes, source has %d", size, len(source)),
		})
	}
	return p.parse(ctx, source, edited)
}

func (p *Parser) canReuse(source []byte, old *Tree) bool {
	if old == nil || old.root == 0 || old.language != p.language {
		return false
	}
	if int(old.nodes.at(uint32(old.root)).size.Bytes) != len(source) {
		p.log.Debugf("incremental parse: old tree size differs from source, parsing from scratch")
		return false
	}
	if len(old.edits) == 0 && !bytes.Equal(old.source, source) {
		p.log.Debugf("incremental parse: source changed without edits, parsing from scratch")
		return false
	}
	return true
}

// lexeme is a lookahead token plus what the parser needs to shift it.
type lexeme struct {
	Token
	// after is the scanner state following the token.
	after ScannerState
	// reused is an old leaf identical to the token.
	reused NodeID
	// pending marks tokens replayed after a recovery insertion.
	pending bool
}

// parseRun holds the state of a single parse.
type parseRun struct {
	p      *Parser
	ctx    context.Context
	lang   *Language
	arena  *nodeArena
	source []byte
	stream *tokenStream
	stack  parseStack

	cache    *LexCache
	oldCache *LexCache
	reuse    *reuseCursor
	reach    uint32

	// replay walks the old leaves before replayStop, the last lex checkpoint
	// the edits left valid.
	replay     *reuseCursor
	replayStop uint32

	pending []lexeme

	recoveries   int
	posAttempts  int
	posAttemptAt uint32

	stats ParseStats
}

func (p *Parser) parse(ctx context.Context, source []byte, old *Tree) (*Tree, error) {
	lang := p.language
	if lang == nil || lang.Scanner == nil {
		return nil, fmt.Errorf("parse: language has no scanner")
	}
	r := &parseRun{
		p:      p,
		ctx:    ctx,
		lang:   lang,
		source: source,
		stream: newTokenStream(lang.Scanner, source),
		stack:  newParseStack(lang.InitialState),
		cache:  &LexCache{},
	}
	revision := uint64(0)
	switch {
	case old != nil && old.arena.overgrown():
		p.log.Debugf("arena holds %d nodes, reparsing revision %d from scratch", old.arena.Len(), old.revision+1)
		r.arena = newNodeArena(arenaClassFull)
		revision = old.revision + 1
	case old != nil:
		r.arena = old.arena
		r.oldCache = old.lexCache
		r.reuse = newReuseCursor(old)
		r.startReplay(old)
		revision = old.revision + 1
	default:
		r.arena = newNodeArena(arenaClassFull)
	}

	r.arena.mu.Lock()
	defer r.arena.mu.Unlock()

	root, err := r.run()
	if err != nil {
		return nil, err
	}
	if r.reuse == nil {
		r.arena.baseline = r.arena.nodes.n
	}
	t := newTree(r.arena, root, source, lang, revision, r.cache)
	t.stats = r.stats
	return t, nil
}

func (r *parseRun) cancelled() error {
	select {
	case <-r.ctx.Done():
		return fmt.Errorf("parse cancelled: %w", r.ctx.Err())
	default:
		return nil
	}
}

// next returns the next lookahead, replaying pending tokens first.
func (r *parseRun) next() lexeme {
	if len(r.pending) > 0 {
		la := r.pending[0]
		r.pending = r.pending[1:]
		return la
	}
	if r.replay != nil {
		if la, ok := r.replayNext(); ok {
			return la
		}
	}
	pos := r.stream.pos
	if pos.Extent.Column == 0 {
		r.cache.record(Checkpoint{Offset: pos.Bytes, Point: pos.Extent, State: r.stream.state, Reach: r.reach})
	}
	tok := r.stream.next()
	r.stats.TokensLexed++
	if reach := tok.EndByte + tok.Lookahead; reach > r.reach {
		r.reach = reach
	}
	return lexeme{Token: tok, after: r.stream.state}
}

func (r *parseRun) run() (NodeID, error) {
	var la lexeme
	have := false
	for {
		if err := r.cancelled(); err != nil {
			return 0, err
		}
		if !have {
			la = r.next()
			have = true
		}

		if r.tryReuseSubtree(&la) {
			have = false
			continue
		}

		if la.Symbol == ErrorSymbol {
			r.pushErrorLeaf(la)
			have = false
			continue
		}
		if r.lang.IsExtra(la.Symbol) {
			r.shiftExtra(la)
			have = false
			continue
		}

		act, ok := r.lang.lookupAction(r.stack.state(), la.Symbol)
		if !ok {
			if root, done := r.recover(&la, &have); done {
				return root, nil
			}
			continue
		}

		switch act.Type {
		case ParseActionShift:
			r.shift(la, act.State)
			have = false
		case ParseActionReduce:
			r.reduce(act, la)
		case ParseActionAccept:
			return r.accept(), nil
		default:
			if root, done := r.recover(&la, &have); done {
				return root, nil
			}
		}
	}
}

func (r *parseRun) leafFlags(tok Token) nodeFlags {
	meta := r.lang.metadata(tok.Symbol)
	var f nodeFlags
	if meta.Named {
		f |= flagNamed
	}
	if meta.Visible {
		f |= flagVisible
	}
	if meta.Extra {
		f |= flagExtra
	}
	if tok.IsMissing {
		f |= flagMissing | flagHasError
	}
	if tok.IsError {
		f |= flagHasError
		if !tok.IsMissing {
			f |= flagIsError
		}
	}
	return f
}

// newLeaf returns the arena leaf for la, keeping the identity of an old leaf
// when one was matched and was shifted from the same state.
func (r *parseRun) newLeaf(la lexeme, flags nodeFlags) NodeID {
	state := r.stack.state()
	if la.reused != 0 {
		old := r.arena.node(la.reused)
		if old.parseState == state && old.flags == flags {
			r.stats.NodesReused++
			return la.reused
		}
	}
	r.stats.NodesCreated++
	return r.arena.allocNode(subtree{
		symbol:     la.Symbol,
		flags:      flags,
		parseState: state,
		size:       la.length(),
		lookahead:  la.Lookahead,
		startState: r.arena.internState(la.State),
		endState:   r.arena.internState(la.after),
	})
}

func (r *parseRun) leafEntry(la lexeme, id NodeID, state StateID, extra bool) stackEntry {
	rec := r.arena.node(id)
	return stackEntry{
		state:      state,
		start:      la.startLength(),
		size:       rec.size,
		reach:      la.EndByte + la.Lookahead,
		startState: rec.startState,
		endState:   rec.endState,
		node:       id,
		symbol:     la.Symbol,
		extra:      extra,
		hasError:   rec.has(flagHasError),
	}
}

func (r *parseRun) shift(la lexeme, state StateID) {
	id := r.newLeaf(la, r.leafFlags(la.Token))
	r.stack.push(r.leafEntry(la, id, state, false))
}

// shiftExtra pushes an extra token without changing the parser state.
func (r *parseRun) shiftExtra(la lexeme) {
	id := r.newLeaf(la, r.leafFlags(la.Token)|flagExtra)
	r.stack.push(r.leafEntry(la, id, r.stack.state(), true))
}

// pushErrorLeaf records an unrecognized token as an ERROR extra.
func (r *parseRun) pushErrorLeaf(la lexeme) {
	flags := flagNamed | flagVisible | flagExtra | flagIsError | flagHasError
	id := r.newLeaf(la, flags)
	r.stack.push(r.leafEntry(la, id, r.stack.state(), true))
	r.p.log.Debugf("unrecognized input %q at %d", la.Text, la.StartByte)
}

// flatten collects the arena children contributed by stack entries: node
// entries contribute themselves, hidden entries their children. A leading
// hidden entry lends its slices, so left-recursive lists grow by appending.
func flatten(entries []stackEntry, fieldOf func(i int) FieldID) ([]NodeID, []FieldID, bool) {
	var kids []NodeID
	var fields []FieldID
	anyField := false
	pos := 0
	if len(entries) > 0 {
		e := entries[0]
		if e.node == 0 && !e.extra && len(e.kids) > 0 && len(e.fields) == len(e.kids) &&
			(fieldOf == nil || fieldOf(0) == 0) {
			kids, fields, anyField = e.kids, e.fields, e.fielded
			entries = entries[1:]
			pos = 1
		}
	}
	for _, e := range entries {
		var f FieldID
		if !e.extra && fieldOf != nil {
			f = fieldOf(pos)
		}
		if !e.extra {
			pos++
		}
		if e.node != 0 {
			kids = append(kids, e.node)
			fields = append(fields, f)
			anyField = anyField || f != 0
			continue
		}
		for i, k := range e.kids {
			kf := f
			if i < len(e.fields) && e.fields[i] != 0 {
				kf = e.fields[i]
			}
			kids = append(kids, k)
			fields = append(fields, kf)
			anyField = anyField || kf != 0
		}
	}
	return kids, fields, anyField
}

func spanOf(entries []stackEntry, at Length) (Length, Length, uint32, bool) {
	if len(entries) == 0 {
		return at, Length{}, at.Bytes, false
	}
	start := entries[0].start
	size := Length{}
	reach := uint32(0)
	hasError := false
	for i := range entries {
		size = lengthAdd(size, entries[i].size)
		if entries[i].reach > reach {
			reach = entries[i].reach
		}
		hasError = hasError || entries[i].hasError
	}
	return start, size, reach, hasError
}

func (r *parseRun) reduce(act ParseAction, la lexeme) {
	popped, ok := r.stack.popNonExtra(int(act.ChildCount))
	if !ok {
		r.p.log.Errorf("reduce %s: stack holds fewer than %d entries", r.lang.SymbolName(act.Symbol), act.ChildCount)
		popped = r.stack.entries[1:]
		r.stack.entries = r.stack.entries[:1]
	}

	// Extras after the last child stay outside the new node.
	split := len(popped)
	for split > 0 && popped[split-1].extra {
		split--
	}
	children, trailing := popped[:split], popped[split:]

	start, size, reach, hasError := spanOf(children, r.stack.top().end())
	if laReach := la.EndByte + la.Lookahead; laReach > reach {
		reach = laReach
	}

	parseState := r.stack.state()
	startState := r.arena.internState(la.State)
	endState := startState
	if len(children) > 0 {
		startState = children[0].startState
		endState = children[len(children)-1].endState
	}

	prod := act.ProductionID
	kids, fields, anyField := flatten(children, func(i int) FieldID { return r.lang.fieldFor(prod, i) })

	entry := stackEntry{
		start:      start,
		size:       size,
		reach:      reach,
		startState: startState,
		endState:   endState,
		symbol:     act.Symbol,
		hasError:   hasError,
	}

	meta := r.lang.metadata(act.Symbol)
	if meta.Visible {
		var flags nodeFlags = flagVisible
		if meta.Named {
			flags |= flagNamed
		}
		if hasError {
			flags |= flagHasError
		}
		kids = slices.Clip(kids)
		if !anyField {
			fields = nil
		} else {
			fields = slices.Clip(fields)
		}
		end := lengthAdd(start, size).Bytes
		look := uint32(0)
		if reach > end {
			look = reach - end
		}
		entry.node = r.arena.allocNode(subtree{
			symbol:     act.Symbol,
			flags:      flags,
			parseState: parseState,
			production: prod,
			size:       size,
			lookahead:  look,
			startState: startState,
			endState:   endState,
			children:   kids,
			fields:     fields,
		})
		r.stats.NodesCreated++
	} else {
		entry.kids = kids
		entry.fields = fields
		entry.fielded = anyField
	}

	next, ok := r.lang.lookupGoto(parseState, act.Symbol)
	if !ok {
		r.p.log.Errorf("no goto for %s in state %d", r.lang.SymbolName(act.Symbol), parseState)
		next = parseState
	}
	entry.state = next
	r.stack.push(entry)
	for _, e := range trailing {
		e.state = next
		r.stack.push(e)
	}
}

// accept builds the root from everything on the stack, so the root spans
// leading and trailing extras as well.
func (r *parseRun) accept() NodeID {
	entries := r.stack.entries[1:]
	if len(entries) == 1 && entries[0].node != 0 {
		return entries[0].node
	}
	var base NodeID
	for _, e := range entries {
		if !e.extra && e.node != 0 {
			base = e.node
			break
		}
	}
	return r.buildRoot(entries, base)
}

// buildRoot wraps entries in a root node. When base is set, its children are
// spliced in place and its record is kept otherwise.
func (r *parseRun) buildRoot(entries []stackEntry, base NodeID) NodeID {
	root := subtree{
		symbol:     r.lang.StartSymbol,
		flags:      flagNamed | flagVisible,
		parseState: r.lang.InitialState,
	}
	if base != 0 {
		root = *r.arena.node(base)
	}
	var kids []NodeID
	var fields []FieldID
	anyField := false
	for _, e := range entries {
		if e.hasError {
			root.flags |= flagHasError
		}
		if base != 0 && e.node == base && !e.extra {
			rec := r.arena.node(base)
			for i, k := range rec.children {
				var f FieldID
				if i < len(rec.fields) {
					f = rec.fields[i]
				}
				kids = append(kids, k)
				fields = append(fields, f)
				anyField = anyField || f != 0
			}
			continue
		}
		k, f, any := flatten([]stackEntry{e}, nil)
		kids = append(kids, k...)
		fields = append(fields, f...)
		anyField = anyField || any
	}
	root.children = kids
	root.fields = nil
	if anyField {
		root.fields = fields
	}
	root.size = Length{}
	for _, k := range kids {
		root.size = lengthAdd(root.size, r.arena.node(k).size)
	}
	if len(entries) > 0 {
		root.startState = entries[0].startState
		root.endState = entries[len(entries)-1].endState
	}
	root.flags &^= flagDamaged | flagExtra
	r.stats.NodesCreated++
	return r.arena.allocNode(root)
}
