// Package grammargen builds LALR(1) parse tables for the gotreesitter runtime
// from a grammar declared in Go.
//
// A grammar is a set of named rules built from Seq, Choice, Optional, Repeat
// and friends, in the style of tree-sitter's grammar.js. Rules whose names
// start with an underscore are hidden: their children are spliced into the
// nearest visible ancestor. Terminals are either literal strings (anonymous
// tokens such as "if" or "(") or names declared with Tokens. The scanner
// that feeds the tables resolves terminals by name.
//
// Shift/reduce conflicts are resolved with yacc-style precedence: each
// production takes the precedence given by Prec, or that of its rightmost
// terminal, and is compared against the precedence of the lookahead token.
package grammargen

import (
	"fmt"
	"strings"
)

// Assoc is the associativity of a precedence level.
type Assoc uint8

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

type ruleKind uint8

const (
	kindLit ruleKind = iota
	kindRef
	kindSeq
	kindChoice
	kindOptional
	kindRepeat
	kindRepeat1
	kindField
	kindPrec
	kindBlank
)

// Rule is a grammar expression.
type Rule struct {
	kind    ruleKind
	value   string
	members []Rule
	prec    int
	assoc   Assoc
}

func toRule(v any) Rule {
	switch x := v.(type) {
	case Rule:
		return x
	case string:
		return Rule{kind: kindLit, value: x}
	default:
		panic(fmt.Sprintf("grammargen: unsupported rule value %T", v))
	}
}

func toRules(vs []any) []Rule {
	out := make([]Rule, len(vs))
	for i, v := range vs {
		out[i] = toRule(v)
	}
	return out
}

// Lit is an anonymous token matching text. Plain strings passed to the
// combinators are literals too.
func Lit(text string) Rule { return Rule{kind: kindLit, value: text} }

// Ref refers to a rule or a declared token by name.
func Ref(name string) Rule { return Rule{kind: kindRef, value: name} }

// Blank matches nothing.
func Blank() Rule { return Rule{kind: kindBlank} }

// Seq matches its members in order.
func Seq(members ...any) Rule { return Rule{kind: kindSeq, members: toRules(members)} }

// Choice matches any one of its members.
func Choice(members ...any) Rule { return Rule{kind: kindChoice, members: toRules(members)} }

// Optional matches its member or nothing.
func Optional(member any) Rule { return Rule{kind: kindOptional, members: []Rule{toRule(member)}} }

// Repeat matches its member zero or more times.
func Repeat(member any) Rule { return Rule{kind: kindRepeat, members: []Rule{toRule(member)}} }

// Repeat1 matches its member one or more times.
func Repeat1(member any) Rule { return Rule{kind: kindRepeat1, members: []Rule{toRule(member)}} }

// Field names the nodes matched by member within the parent.
func Field(name string, member any) Rule {
	return Rule{kind: kindField, value: name, members: []Rule{toRule(member)}}
}

// Prec gives the productions of member an explicit precedence.
func Prec(level int, member any) Rule {
	return Rule{kind: kindPrec, prec: level, members: []Rule{toRule(member)}}
}

// PrecLeft is Prec with left associativity.
func PrecLeft(level int, member any) Rule {
	return Rule{kind: kindPrec, prec: level, assoc: AssocLeft, members: []Rule{toRule(member)}}
}

// PrecRight is Prec with right associativity.
func PrecRight(level int, member any) Rule {
	return Rule{kind: kindPrec, prec: level, assoc: AssocRight, members: []Rule{toRule(member)}}
}

// CommaSep1 matches one or more members separated by commas.
func CommaSep1(member any) Rule {
	return Seq(member, Repeat(Seq(",", member)))
}

// Grammar is a declarative grammar under construction.
type Grammar struct {
	Name string

	start      string
	rules      []namedRule
	ruleIndex  map[string]int
	tokens     []string
	tokenIndex map[string]bool
	extras     []string
	insertable []string
	protected  []string
	tokenPrec  map[string]precLevel
	conflicts  map[string]bool

	// MaxAlternatives bounds how many productions one rule may expand to.
	MaxAlternatives int
}

type namedRule struct {
	name string
	body Rule
}

type precLevel struct {
	level int
	assoc Assoc
}

// New returns an empty grammar.
func New(name string) *Grammar {
	return &Grammar{
		Name:            name,
		ruleIndex:       make(map[string]int),
		tokenIndex:      make(map[string]bool),
		tokenPrec:       make(map[string]precLevel),
		conflicts:       make(map[string]bool),
		MaxAlternatives: 4096,
	}
}

// Tokens declares terminals produced by the scanner under the given names.
// Names starting with an underscore are hidden.
func (g *Grammar) Tokens(names ...string) {
	for _, n := range names {
		if g.tokenIndex[n] {
			continue
		}
		g.tokenIndex[n] = true
		g.tokens = append(g.tokens, n)
	}
}

// Rule defines (or redefines) a nonterminal. The first rule defined is the
// start rule unless Start is called.
func (g *Grammar) Rule(name string, body any) {
	if i, ok := g.ruleIndex[name]; ok {
		g.rules[i].body = toRule(body)
		return
	}
	g.ruleIndex[name] = len(g.rules)
	g.rules = append(g.rules, namedRule{name: name, body: toRule(body)})
	if g.start == "" {
		g.start = name
	}
}

// Start sets the start rule.
func (g *Grammar) Start(name string) { g.start = name }

// Extras declares terminals that may appear between any two tokens.
func (g *Grammar) Extras(names ...string) { g.extras = append(g.extras, names...) }

// Insertable declares terminals error recovery may insert as missing
// tokens, in preference order.
func (g *Grammar) Insertable(names ...string) { g.insertable = append(g.insertable, names...) }

// Protected declares terminals error recovery never deletes.
func (g *Grammar) Protected(names ...string) { g.protected = append(g.protected, names...) }

// Left assigns a left-associative precedence level to tokens.
func (g *Grammar) Left(level int, tokens ...string) { g.setPrec(level, AssocLeft, tokens) }

// Right assigns a right-associative precedence level to tokens.
func (g *Grammar) Right(level int, tokens ...string) { g.setPrec(level, AssocRight, tokens) }

// NonAssoc assigns a non-associative precedence level to tokens.
func (g *Grammar) NonAssoc(level int, tokens ...string) { g.setPrec(level, AssocNone, tokens) }

func (g *Grammar) setPrec(level int, assoc Assoc, tokens []string) {
	for _, t := range tokens {
		g.tokenPrec[t] = precLevel{level: level, assoc: assoc}
	}
}

// ExpectConflict marks a conflict between the named rules as intended, so it
// is resolved silently. Pass the rule names in any order.
func (g *Grammar) ExpectConflict(rules ...string) {
	g.conflicts[conflictKey(rules)] = true
}

func conflictKey(rules []string) string {
	sorted := append([]string(nil), rules...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return strings.Join(sorted, ",")
}

// symRef is one right-hand-side symbol during expansion.
type symRef struct {
	name  string
	lit   bool
	field string
}

// alt is one expanded alternative of a rule.
type alt struct {
	syms    []symRef
	prec    int
	assoc   Assoc
	hasPrec bool
}

// expander turns rule expressions into flat alternatives, creating hidden
// helper rules for repetitions.
type expander struct {
	g       *Grammar
	owner   string
	helpers []namedAlts
	repeats int
}

type namedAlts struct {
	name string
	alts []alt
}

func (e *expander) expand(r Rule) ([]alt, error) {
	switch r.kind {
	case kindBlank:
		return []alt{{}}, nil
	case kindLit:
		if r.value == "" {
			return nil, fmt.Errorf("rule %s: empty literal", e.owner)
		}
		return []alt{{syms: []symRef{{name: r.value, lit: true}}}}, nil
	case kindRef:
		return []alt{{syms: []symRef{{name: r.value}}}}, nil
	case kindSeq:
		out := []alt{{}}
		for _, m := range r.members {
			next, err := e.expand(m)
			if err != nil {
				return nil, err
			}
			out, err = e.product(out, next)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case kindChoice:
		var out []alt
		for _, m := range r.members {
			next, err := e.expand(m)
			if err != nil {
				return nil, err
			}
			out = append(out, next...)
		}
		return e.check(out)
	case kindOptional:
		inner, err := e.expand(r.members[0])
		if err != nil {
			return nil, err
		}
		return e.check(append(inner, alt{}))
	case kindRepeat1, kindRepeat:
		inner, err := e.expand(r.members[0])
		if err != nil {
			return nil, err
		}
		e.repeats++
		name := fmt.Sprintf("_%s_repeat%d", strings.TrimPrefix(e.owner, "_"), e.repeats)
		var alts []alt
		for _, a := range inner {
			alts = append(alts, a)
			rec := alt{syms: append([]symRef{{name: name}}, a.syms...), prec: a.prec, assoc: a.assoc, hasPrec: a.hasPrec}
			alts = append(alts, rec)
		}
		e.helpers = append(e.helpers, namedAlts{name: name, alts: alts})
		ref := []alt{{syms: []symRef{{name: name}}}}
		if r.kind == kindRepeat {
			ref = append(ref, alt{})
		}
		return ref, nil
	case kindField:
		inner, err := e.expand(r.members[0])
		if err != nil {
			return nil, err
		}
		for i := range inner {
			syms := append([]symRef(nil), inner[i].syms...)
			for j := range syms {
				if syms[j].field == "" {
					syms[j].field = r.value
				}
			}
			inner[i].syms = syms
		}
		return inner, nil
	case kindPrec:
		inner, err := e.expand(r.members[0])
		if err != nil {
			return nil, err
		}
		for i := range inner {
			inner[i].prec = r.prec
			inner[i].assoc = r.assoc
			inner[i].hasPrec = true
		}
		return inner, nil
	}
	return nil, fmt.Errorf("rule %s: unknown rule kind %d", e.owner, r.kind)
}

func (e *expander) product(left, right []alt) ([]alt, error) {
	out := make([]alt, 0, len(left)*len(right))
	for _, a := range left {
		for _, b := range right {
			c := alt{
				syms:    append(append([]symRef(nil), a.syms...), b.syms...),
				prec:    a.prec,
				assoc:   a.assoc,
				hasPrec: a.hasPrec,
			}
			if b.hasPrec {
				c.prec, c.assoc, c.hasPrec = b.prec, b.assoc, true
			}
			out = append(out, c)
		}
	}
	return e.check(out)
}

func (e *expander) check(alts []alt) ([]alt, error) {
	if len(alts) > e.g.MaxAlternatives {
		return nil, fmt.Errorf("rule %s expands to more than %d alternatives", e.owner, e.g.MaxAlternatives)
	}
	return alts, nil
}
