package grammargen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/odvcencio/xonshts/gotreesitter"
)

var log = commonlog.GetLogger("xonshts.grammargen")

// Conflict describes one parse table cell that had more than one candidate
// action and how it was settled.
type Conflict struct {
	State      int
	Lookahead  string
	Kind       string // "shift/reduce" or "reduce/reduce"
	Rules      []string
	Resolution string
	// Expected is set when the grammar declared the conflict with
	// ExpectConflict, or when precedence settled it.
	Expected bool
}

func (c Conflict) String() string {
	return fmt.Sprintf("state %d on %q: %s between %s, %s",
		c.State, c.Lookahead, c.Kind, strings.Join(c.Rules, ", "), c.Resolution)
}

// Report summarizes a table build.
type Report struct {
	States       int
	Productions  int
	Terminals    int
	Nonterminals int
	Conflicts    []Conflict
}

// Unexpected returns the conflicts neither precedence nor ExpectConflict
// accounted for. They were resolved in favour of shifting, or of the
// production declared first.
func (r *Report) Unexpected() []Conflict {
	var out []Conflict
	for _, c := range r.Conflicts {
		if !c.Expected {
			out = append(out, c)
		}
	}
	return out
}

type candidate struct {
	typ   gotreesitter.ParseActionType
	state int
	prod  int
}

type tableBuilder struct {
	c       *compiled
	g       *Grammar
	states  []*lrState
	report  *Report
	actions []gotreesitter.ParseActionEntry
	index   map[gotreesitter.ParseAction]uint16
}

// Build generates the LALR(1) tables for the grammar. The returned Language
// has no Scanner; callers attach the scanner that produces its tokens.
func (g *Grammar) Build() (*gotreesitter.Language, *Report, error) {
	c, err := g.compile()
	if err != nil {
		return nil, nil, err
	}
	states, err := c.buildLR0()
	if err != nil {
		return nil, nil, err
	}
	c.computeLookaheads(states)

	b := &tableBuilder{
		c:      c,
		g:      g,
		states: states,
		report: &Report{
			States:       len(states),
			Productions:  len(c.prods),
			Terminals:    c.terminals,
			Nonterminals: len(c.names) - c.terminals,
		},
		actions: []gotreesitter.ParseActionEntry{{}},
		index:   map[gotreesitter.ParseAction]uint16{},
	}
	lang, err := b.language()
	if err != nil {
		return nil, nil, err
	}
	for _, cf := range b.report.Unexpected() {
		log.Warningf("%s: %s", g.Name, cf)
	}
	log.Debugf("%s: %d states, %d productions, %d conflicts",
		g.Name, len(states), len(c.prods), len(b.report.Conflicts))
	return lang, b.report, nil
}

func (b *tableBuilder) language() (*gotreesitter.Language, error) {
	c := b.c
	symbolCount := len(c.names)
	lang := &gotreesitter.Language{
		Name:         c.name,
		ABIVersion:   gotreesitter.RuntimeABI,
		SymbolCount:  uint32(symbolCount),
		TokenCount:   uint32(c.terminals),
		StateCount:   uint32(len(b.states)),
		FieldCount:   uint32(len(c.fieldNames) - 1),
		SymbolNames:  append([]string(nil), c.names...),
		FieldNames:   append([]string(nil), c.fieldNames...),
		InitialState: 0,
		StartSymbol:  gotreesitter.Symbol(c.start),
	}
	for i, name := range c.names {
		lang.SymbolMetadata = append(lang.SymbolMetadata, gotreesitter.SymbolMetadata{
			Name:    name,
			Visible: c.visible[i],
			Named:   c.named[i],
			Extra:   c.extra[i],
		})
	}
	for _, s := range c.insertable {
		lang.InsertableSymbols = append(lang.InsertableSymbols, gotreesitter.Symbol(s))
	}
	for _, s := range c.protected {
		lang.ProtectedSymbols = append(lang.ProtectedSymbols, gotreesitter.Symbol(s))
	}

	fieldID := map[string]gotreesitter.FieldID{}
	for i, f := range c.fieldNames {
		if i > 0 {
			fieldID[f] = gotreesitter.FieldID(i)
		}
	}
	lang.ProductionFields = make([][]gotreesitter.FieldID, len(c.prods))
	for pi, p := range c.prods {
		var row []gotreesitter.FieldID
		for i, f := range p.fields {
			if f == "" {
				continue
			}
			if row == nil {
				row = make([]gotreesitter.FieldID, len(p.rhs))
			}
			row[i] = fieldID[f]
		}
		lang.ProductionFields[pi] = row
	}

	lang.ParseTable = make([][]uint16, len(b.states))
	for s := range b.states {
		row, err := b.row(s, symbolCount)
		if err != nil {
			return nil, err
		}
		lang.ParseTable[s] = row
	}
	lang.ParseActions = b.actions
	return lang, nil
}

// row fills the table row of state s.
func (b *tableBuilder) row(s int, symbolCount int) ([]uint16, error) {
	c := b.c
	st := b.states[s]
	cands := map[int][]candidate{}
	shifts := map[int]*shiftInfo{}

	for _, sym := range st.syms {
		cands[sym] = append(cands[sym], candidate{typ: gotreesitter.ParseActionShift, state: st.trans[sym]})
	}
	items, sets := c.closure1(st.kernel, st.la)
	for i, it := range items {
		p := c.prods[it.prod]
		if sym, ok := c.next(it); ok {
			if c.isTerminal(sym) {
				si := shifts[sym]
				if si == nil {
					si = &shiftInfo{}
					shifts[sym] = si
				}
				si.owners = appendUnique(si.owners, c.names[p.lhs])
				if p.hasPrec && (!si.hasPrec || p.prec > si.prec) {
					si.prec, si.hasPrec = p.prec, true
				}
			}
			continue
		}
		sets[i].each(func(t int) {
			if t >= c.terminals {
				return
			}
			if it.prod == 0 {
				cands[t] = append(cands[t], candidate{typ: gotreesitter.ParseActionAccept})
				return
			}
			cands[t] = append(cands[t], candidate{typ: gotreesitter.ParseActionReduce, prod: int(it.prod)})
		})
	}

	row := make([]uint16, symbolCount)
	syms := make([]int, 0, len(cands))
	for sym := range cands {
		syms = append(syms, sym)
	}
	sort.Ints(syms)
	for _, sym := range syms {
		si := shifts[sym]
		if si == nil {
			si = &shiftInfo{}
		}
		chosen, ok := b.resolve(s, sym, cands[sym], si)
		if !ok {
			continue
		}
		idx, err := b.intern(chosen)
		if err != nil {
			return nil, err
		}
		row[sym] = idx
	}
	return row, nil
}

// shiftInfo describes the items that shift a terminal in one state.
type shiftInfo struct {
	owners  []string
	prec    int
	hasPrec bool
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}

func (b *tableBuilder) effectivePrec(prod int) int {
	p := b.c.prods[prod]
	if p.hasPrec {
		return p.prec
	}
	return 0
}

// resolve picks the action for one cell. ok is false when the cell is left
// empty, which happens for non-associative operators.
//
// A shift/reduce conflict compares the reduced production's precedence with
// the lookahead token's declared precedence, or failing that with the highest
// precedence among the productions that shift it.
func (b *tableBuilder) resolve(state, sym int, cands []candidate, si *shiftInfo) (candidate, bool) {
	if len(cands) == 1 {
		return cands[0], true
	}
	var shift *candidate
	var reduces []candidate
	for i := range cands {
		switch cands[i].typ {
		case gotreesitter.ParseActionShift:
			shift = &cands[i]
		default:
			reduces = append(reduces, cands[i])
		}
	}
	if !b.c.isTerminal(sym) {
		return *shift, true
	}

	lookahead := b.c.names[sym]
	reduce := reduces[0]
	if len(reduces) > 1 {
		rules := make([]string, 0, len(reduces))
		for _, r := range reduces {
			rules = appendUnique(rules, b.ruleName(r))
		}
		best := reduces[0]
		precDecided := false
		for _, r := range reduces[1:] {
			bp, rp := b.effectivePrec(best.prod), b.effectivePrec(r.prod)
			switch {
			case rp > bp:
				best = r
				precDecided = true
			case rp < bp:
				precDecided = true
			case r.typ == gotreesitter.ParseActionAccept:
				best = r
			case best.typ != gotreesitter.ParseActionAccept && r.prod < best.prod:
				best = r
			}
		}
		reduce = best
		b.record(Conflict{
			State:      state,
			Lookahead:  lookahead,
			Kind:       "reduce/reduce",
			Rules:      rules,
			Resolution: "reduce " + b.ruleName(best),
			Expected:   precDecided || b.g.conflicts[conflictKey(rules)],
		})
	}
	if shift == nil {
		return reduce, true
	}

	rules := append([]string(nil), si.owners...)
	rules = appendUnique(rules, b.ruleName(reduce))
	cf := Conflict{State: state, Lookahead: lookahead, Kind: "shift/reduce", Rules: rules}
	if reduce.typ == gotreesitter.ParseActionAccept || !b.c.prods[reduce.prod].hasPrec {
		return b.defaultShift(cf, shift)
	}
	p := b.c.prods[reduce.prod]

	var level int
	var assoc Assoc
	declared := false
	if tp, ok := b.c.tokenPrec[sym]; ok {
		level, assoc, declared = tp.level, tp.assoc, true
	} else if si.hasPrec {
		level, assoc = si.prec, p.assoc
	} else {
		return b.defaultShift(cf, shift)
	}

	cf.Expected = true
	switch {
	case p.prec > level:
		cf.Resolution = "reduce by precedence"
		b.record(cf)
		return reduce, true
	case p.prec < level:
		cf.Resolution = "shift by precedence"
		b.record(cf)
		return *shift, true
	case assoc == AssocLeft:
		cf.Resolution = "reduce by left associativity"
		b.record(cf)
		return reduce, true
	case assoc == AssocRight:
		cf.Resolution = "shift by right associativity"
		b.record(cf)
		return *shift, true
	case declared:
		cf.Resolution = "error by non-associativity"
		b.record(cf)
		return candidate{}, false
	}
	cf.Expected = false
	return b.defaultShift(cf, shift)
}

func (b *tableBuilder) defaultShift(cf Conflict, shift *candidate) (candidate, bool) {
	cf.Resolution = "shift"
	cf.Expected = b.g.conflicts[conflictKey(cf.Rules)]
	b.record(cf)
	return *shift, true
}

func (b *tableBuilder) ruleName(cd candidate) string {
	if cd.typ == gotreesitter.ParseActionAccept {
		return "_accept"
	}
	return b.c.names[b.c.prods[cd.prod].lhs]
}

func (b *tableBuilder) record(cf Conflict) {
	b.report.Conflicts = append(b.report.Conflicts, cf)
}

// intern returns the ParseActions index of cd, adding it if needed.
func (b *tableBuilder) intern(cd candidate) (uint16, error) {
	var act gotreesitter.ParseAction
	switch cd.typ {
	case gotreesitter.ParseActionShift:
		act = gotreesitter.ParseAction{Type: cd.typ, State: gotreesitter.StateID(cd.state)}
	case gotreesitter.ParseActionAccept:
		act = gotreesitter.ParseAction{Type: cd.typ}
	case gotreesitter.ParseActionReduce:
		p := b.c.prods[cd.prod]
		act = gotreesitter.ParseAction{
			Type:              cd.typ,
			Symbol:            gotreesitter.Symbol(p.lhs),
			ChildCount:        uint8(len(p.rhs)),
			DynamicPrecedence: int16(b.effectivePrec(cd.prod)),
			ProductionID:      uint16(cd.prod),
		}
	}
	if idx, ok := b.index[act]; ok {
		return idx, nil
	}
	if len(b.actions) >= 0xFFFF {
		return 0, fmt.Errorf("grammar %s needs more than %d distinct actions", b.c.name, 0xFFFF)
	}
	idx := uint16(len(b.actions))
	b.actions = append(b.actions, gotreesitter.ParseActionEntry{
		Reusable: true,
		Actions:  []gotreesitter.ParseAction{act},
	})
	b.index[act] = idx
	return idx, nil
}
