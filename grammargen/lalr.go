package grammargen

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// bitset is a fixed-size set of small integers.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

func (b bitset) set(i int) { b[i/64] |= 1 << (uint(i) % 64) }

func (b bitset) has(i int) bool { return b[i/64]&(1<<(uint(i)%64)) != 0 }

func (b bitset) clone() bitset { return append(bitset(nil), b...) }

// union adds o to b and reports whether b grew.
func (b bitset) union(o bitset) bool {
	changed := false
	for i, w := range o {
		if n := b[i] | w; n != b[i] {
			b[i] = n
			changed = true
		}
	}
	return changed
}

func (b bitset) each(fn func(int)) {
	for i, w := range b {
		for w != 0 {
			t := bits.TrailingZeros64(w)
			fn(i*64 + t)
			w &= w - 1
		}
	}
}

type production struct {
	lhs     int
	rhs     []int
	fields  []string
	prec    int
	assoc   Assoc
	hasPrec bool
}

// compiled is a grammar lowered to numbered symbols and productions.
// Symbols below terminals are terminals; symbol 0 is end of input.
type compiled struct {
	name      string
	names     []string
	terminals int
	named     []bool
	visible   []bool
	extra     []bool
	prods     []production
	byLHS     map[int][]int
	start     int
	tokenPrec map[int]precLevel

	fieldNames []string

	insertable []int
	protected  []int

	// seqFirst[p][d] is FIRST of prods[p].rhs[d:]; seqNullable says whether
	// that suffix derives the empty string. Both are indexed up to len(rhs).
	seqFirst    [][]bitset
	seqNullable [][]bool
}

func (c *compiled) isTerminal(sym int) bool { return sym < c.terminals }

// compile expands the grammar's rules and numbers its symbols.
func (g *Grammar) compile() (*compiled, error) {
	if g.start == "" {
		return nil, fmt.Errorf("grammar %s has no rules", g.Name)
	}
	if _, ok := g.ruleIndex[g.start]; !ok {
		return nil, fmt.Errorf("start rule %q is not defined", g.start)
	}

	type ntAlts struct {
		name string
		alts []alt
	}
	var nts []ntAlts
	for _, r := range g.rules {
		e := &expander{g: g, owner: r.name}
		alts, err := e.expand(r.body)
		if err != nil {
			return nil, err
		}
		nts = append(nts, ntAlts{name: r.name, alts: alts})
		for _, h := range e.helpers {
			nts = append(nts, ntAlts{name: h.name, alts: h.alts})
		}
	}

	c := &compiled{
		name:       g.Name,
		byLHS:      make(map[int][]int),
		tokenPrec:  make(map[int]precLevel),
		fieldNames: []string{""},
	}
	declared := map[string]int{}
	literals := map[string]int{}
	addTerminal := func(name string, named bool) int {
		id := len(c.names)
		c.names = append(c.names, name)
		c.named = append(c.named, named && !strings.HasPrefix(name, "_"))
		c.visible = append(c.visible, !strings.HasPrefix(name, "_"))
		return id
	}
	addTerminal("end", false)
	c.visible[0] = false
	for _, t := range g.tokens {
		declared[t] = addTerminal(t, true)
	}
	for _, nt := range nts {
		for _, a := range nt.alts {
			for _, s := range a.syms {
				if !s.lit {
					continue
				}
				if _, ok := declared[s.name]; ok {
					return nil, fmt.Errorf("rule %s: literal %q collides with a declared token", nt.name, s.name)
				}
				if _, ok := literals[s.name]; !ok {
					literals[s.name] = addTerminal(s.name, false)
				}
			}
		}
	}
	c.terminals = len(c.names)

	nonterminals := map[string]int{}
	for _, nt := range nts {
		id := len(c.names)
		nonterminals[nt.name] = id
		c.names = append(c.names, nt.name)
		hidden := strings.HasPrefix(nt.name, "_")
		c.named = append(c.named, !hidden)
		c.visible = append(c.visible, !hidden)
	}
	accept := len(c.names)
	c.names = append(c.names, "_accept")
	c.named = append(c.named, false)
	c.visible = append(c.visible, false)
	c.start = nonterminals[g.start]
	c.extra = make([]bool, len(c.names))

	terminal := func(name string) (int, bool) {
		if id, ok := declared[name]; ok {
			return id, true
		}
		id, ok := literals[name]
		return id, ok
	}
	for name, lvl := range g.tokenPrec {
		if id, ok := terminal(name); ok {
			c.tokenPrec[id] = lvl
		}
	}
	for _, name := range g.extras {
		id, ok := terminal(name)
		if !ok {
			return nil, fmt.Errorf("extra %q is not a token", name)
		}
		c.extra[id] = true
	}
	for _, name := range g.insertable {
		id, ok := terminal(name)
		if !ok {
			return nil, fmt.Errorf("insertable %q is not a token", name)
		}
		c.insertable = append(c.insertable, id)
	}
	for _, name := range g.protected {
		id, ok := terminal(name)
		if !ok {
			return nil, fmt.Errorf("protected %q is not a token", name)
		}
		c.protected = append(c.protected, id)
	}

	fieldIndex := map[string]bool{}
	c.addProduction(production{lhs: accept, rhs: []int{c.start}, fields: []string{""}})
	for _, nt := range nts {
		lhs := nonterminals[nt.name]
		for _, a := range nt.alts {
			p := production{lhs: lhs, prec: a.prec, assoc: a.assoc, hasPrec: a.hasPrec}
			for _, s := range a.syms {
				var id int
				var ok bool
				if s.lit {
					id, ok = literals[s.name]
				} else if id, ok = declared[s.name]; !ok {
					id, ok = nonterminals[s.name]
				}
				if !ok {
					return nil, fmt.Errorf("rule %s: undefined symbol %q", nt.name, s.name)
				}
				p.rhs = append(p.rhs, id)
				p.fields = append(p.fields, s.field)
				if s.field != "" && !fieldIndex[s.field] {
					fieldIndex[s.field] = true
					c.fieldNames = append(c.fieldNames, s.field)
				}
			}
			if !p.hasPrec {
				for i := len(p.rhs) - 1; i >= 0; i-- {
					if lvl, ok := c.tokenPrec[p.rhs[i]]; ok {
						p.prec, p.assoc, p.hasPrec = lvl.level, lvl.assoc, true
						break
					}
				}
			}
			c.addProduction(p)
		}
	}
	if len(c.names) >= 0xFFFF {
		return nil, fmt.Errorf("grammar %s has too many symbols (%d)", g.Name, len(c.names))
	}
	for _, p := range c.prods {
		if len(p.rhs) > 255 {
			return nil, fmt.Errorf("a production of %s has %d symbols", c.names[p.lhs], len(p.rhs))
		}
	}
	c.computeFirst()
	return c, nil
}

func (c *compiled) addProduction(p production) {
	c.byLHS[p.lhs] = append(c.byLHS[p.lhs], len(c.prods))
	c.prods = append(c.prods, p)
}

// computeFirst fills FIRST sets and nullability for every production suffix.
// Sets carry one bit beyond the terminals, used as the propagation marker.
func (c *compiled) computeFirst() {
	width := c.terminals + 1
	first := make([]bitset, len(c.names))
	nullable := make([]bool, len(c.names))
	for i := range first {
		first[i] = newBitset(width)
		if c.isTerminal(i) {
			first[i].set(i)
		}
	}
	for changed := true; changed; {
		changed = false
		for _, p := range c.prods {
			all := true
			for _, s := range p.rhs {
				if first[p.lhs].union(first[s]) {
					changed = true
				}
				if !nullable[s] {
					all = false
					break
				}
			}
			if all && !nullable[p.lhs] {
				nullable[p.lhs] = true
				changed = true
			}
		}
	}

	c.seqFirst = make([][]bitset, len(c.prods))
	c.seqNullable = make([][]bool, len(c.prods))
	for pi, p := range c.prods {
		n := len(p.rhs)
		fs := make([]bitset, n+1)
		ns := make([]bool, n+1)
		fs[n] = newBitset(width)
		ns[n] = true
		for d := n - 1; d >= 0; d-- {
			s := p.rhs[d]
			fs[d] = first[s].clone()
			if nullable[s] {
				fs[d].union(fs[d+1])
				ns[d] = ns[d+1]
			}
		}
		c.seqFirst[pi] = fs
		c.seqNullable[pi] = ns
	}
}

// item is an LR(0) item: a production with a dot position.
type item struct {
	prod int32
	dot  int32
}

func (c *compiled) next(it item) (int, bool) {
	rhs := c.prods[it.prod].rhs
	if int(it.dot) >= len(rhs) {
		return 0, false
	}
	return rhs[it.dot], true
}

type lrState struct {
	kernel []item
	// syms lists transition symbols in first-seen order; trans maps them to
	// target states.
	syms  []int
	trans map[int]int
	// la holds the lookaheads of each kernel item.
	la []bitset
}

func (s *lrState) kernelIndex(it item) int {
	for i, k := range s.kernel {
		if k == it {
			return i
		}
	}
	return -1
}

func itemsKey(items []item) string {
	buf := make([]byte, 0, len(items)*8)
	for _, it := range items {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(it.prod))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(it.dot))
	}
	return string(buf)
}

func (c *compiled) closure0(kernel []item) []item {
	items := append([]item(nil), kernel...)
	expanded := map[int]bool{}
	for i := 0; i < len(items); i++ {
		sym, ok := c.next(items[i])
		if !ok || c.isTerminal(sym) || expanded[sym] {
			continue
		}
		expanded[sym] = true
		for _, q := range c.byLHS[sym] {
			items = append(items, item{prod: int32(q)})
		}
	}
	return items
}

// maxStates is the number of states a StateID can address.
const maxStates = 0xFFFF

// buildLR0 constructs the canonical LR(0) collection.
func (c *compiled) buildLR0() ([]*lrState, error) {
	states := []*lrState{{kernel: []item{{prod: 0}}}}
	index := map[string]int{itemsKey(states[0].kernel): 0}
	for i := 0; i < len(states); i++ {
		st := states[i]
		groups := map[int][]item{}
		for _, it := range c.closure0(st.kernel) {
			sym, ok := c.next(it)
			if !ok {
				continue
			}
			if _, seen := groups[sym]; !seen {
				st.syms = append(st.syms, sym)
			}
			groups[sym] = append(groups[sym], item{prod: it.prod, dot: it.dot + 1})
		}
		st.trans = make(map[int]int, len(st.syms))
		for _, sym := range st.syms {
			kernel := groups[sym]
			slices.SortFunc(kernel, func(a, b item) int {
				if a.prod != b.prod {
					return int(a.prod - b.prod)
				}
				return int(a.dot - b.dot)
			})
			key := itemsKey(kernel)
			j, ok := index[key]
			if !ok {
				j = len(states)
				if j >= maxStates {
					return nil, fmt.Errorf("grammar %s needs more than %d states", c.name, maxStates)
				}
				index[key] = j
				states = append(states, &lrState{kernel: kernel})
			}
			st.trans[sym] = j
		}
	}
	return states, nil
}

// closure1 computes the LR(1) closure of kernel items with lookahead sets.
func (c *compiled) closure1(kernel []item, las []bitset) ([]item, []bitset) {
	items := append([]item(nil), kernel...)
	sets := make([]bitset, len(kernel))
	pos := make(map[item]int, len(kernel)*4)
	work := make([]int, 0, len(kernel))
	queued := make([]bool, len(kernel))
	for i, it := range kernel {
		sets[i] = las[i].clone()
		pos[it] = i
		work = append(work, i)
		queued[i] = true
	}
	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]
		queued[i] = false
		it := items[i]
		sym, ok := c.next(it)
		if !ok || c.isTerminal(sym) {
			continue
		}
		add := c.seqFirst[it.prod][it.dot+1]
		if c.seqNullable[it.prod][it.dot+1] {
			add = add.clone()
			add.union(sets[i])
		}
		for _, q := range c.byLHS[sym] {
			ni := item{prod: int32(q)}
			j, ok := pos[ni]
			if !ok {
				j = len(items)
				pos[ni] = j
				items = append(items, ni)
				sets = append(sets, add.clone())
				queued = append(queued, true)
				work = append(work, j)
				continue
			}
			if sets[j].union(add) && !queued[j] {
				queued[j] = true
				work = append(work, j)
			}
		}
	}
	return items, sets
}

type kernelRef struct{ state, index int }

// computeLookaheads attaches LALR(1) lookaheads to every kernel item by
// spontaneous generation and propagation.
func (c *compiled) computeLookaheads(states []*lrState) {
	width := c.terminals + 1
	marker := c.terminals
	for _, st := range states {
		st.la = make([]bitset, len(st.kernel))
		for k := range st.kernel {
			st.la[k] = newBitset(width)
		}
	}
	states[0].la[0].set(0)

	props := make([][][]kernelRef, len(states))
	marked := newBitset(width)
	marked.set(marker)
	for s, st := range states {
		props[s] = make([][]kernelRef, len(st.kernel))
		for k, kit := range st.kernel {
			items, sets := c.closure1([]item{kit}, []bitset{marked})
			for i, it := range items {
				sym, ok := c.next(it)
				if !ok {
					continue
				}
				t := st.trans[sym]
				ti := states[t].kernelIndex(item{prod: it.prod, dot: it.dot + 1})
				target := states[t].la[ti]
				sets[i].each(func(b int) {
					if b != marker {
						target.set(b)
					}
				})
				if sets[i].has(marker) {
					props[s][k] = append(props[s][k], kernelRef{t, ti})
				}
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for s, st := range states {
			for k := range st.kernel {
				for _, ref := range props[s][k] {
					if states[ref.state].la[ref.index].union(st.la[k]) {
						changed = true
					}
				}
			}
		}
	}
}
