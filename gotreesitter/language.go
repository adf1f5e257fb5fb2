// Package gotreesitter implements a pure Go incremental parsing runtime.
//
// This file defines the core table structures that a generated grammar fills
// in: symbol metadata, the dense LR parse table with its action entries, and
// the hand-written scanner that feeds the automaton. They form the foundation
// on which the parser, the persistent syntax tree and the incremental
// reconciler are built.
package gotreesitter

import "golang.org/x/mod/semver"

// Symbol is a grammar symbol ID (terminal or nonterminal).
type Symbol uint16

// StateID is a parser state index.
type StateID uint16

// FieldID is a named field index.
type FieldID uint16

// EOFSymbol is the terminal emitted at end of input.
const EOFSymbol = Symbol(0)

// ErrorSymbol is the well-known symbol ID used for error nodes.
const ErrorSymbol = Symbol(65535)

// RuntimeABI is the table layout version this runtime understands. Languages
// built for a different major version are rejected by CompatibleWithRuntime.
const RuntimeABI = "v1.2.0"

// ParseActionType identifies the kind of parse action.
type ParseActionType uint8

const (
	ParseActionShift ParseActionType = iota
	ParseActionReduce
	ParseActionAccept
	ParseActionRecover
)

func (t ParseActionType) String() string {
	switch t {
	case ParseActionShift:
		return "shift"
	case ParseActionReduce:
		return "reduce"
	case ParseActionAccept:
		return "accept"
	case ParseActionRecover:
		return "recover"
	}
	return "unknown"
}

// ParseAction is a single parser action from the parse table.
type ParseAction struct {
	Type              ParseActionType
	State             StateID // target state (shift/goto)
	Symbol            Symbol  // reduced symbol (reduce)
	ChildCount        uint8   // non-extra children consumed (reduce)
	DynamicPrecedence int16   // precedence the conflict was resolved with (reduce)
	ProductionID      uint16  // which production (reduce)
}

// ParseActionEntry is a group of actions for a (state, symbol) pair. Tables
// produced by grammargen always hold at most one action per entry; the slice
// keeps the layout open for grammars that defer conflicts to runtime.
type ParseActionEntry struct {
	Reusable bool
	Actions  []ParseAction
}

// SymbolMetadata holds display information about a symbol.
type SymbolMetadata struct {
	Name    string
	Visible bool
	Named   bool
	// Extra symbols (whitespace, comments) may appear between any two
	// tokens; the parser shifts them without changing state.
	Extra bool
}

// Language holds all data needed to parse a specific language.
type Language struct {
	Name       string
	ABIVersion string

	// Counts
	SymbolCount uint32
	TokenCount  uint32
	StateCount  uint32
	FieldCount  uint32

	// Symbol metadata
	SymbolNames    []string
	SymbolMetadata []SymbolMetadata
	FieldNames     []string // index 0 is ""

	// Parse tables
	ParseTable   [][]uint16 // dense: [state][symbol] -> action index
	ParseActions []ParseActionEntry

	// ProductionFields maps a production to the field of each of its
	// right-hand-side positions. Productions without fields have a nil row.
	ProductionFields [][]FieldID

	// InsertableSymbols are terminals error recovery may synthesize as
	// missing leaves, in preference order.
	InsertableSymbols []Symbol

	// ProtectedSymbols are structural terminals (line ends, indentation)
	// error recovery never deletes to resynchronize.
	ProtectedSymbols []Symbol

	// InitialState is the parser's start state.
	InitialState StateID

	// StartSymbol is the symbol of the root node.
	StartSymbol Symbol

	// Scanner turns source bytes into tokens for this language.
	Scanner Scanner
}

// Version returns the table ABI version the language was generated for.
func (l *Language) Version() string {
	if l == nil || l.ABIVersion == "" {
		return "v0.0.0"
	}
	return l.ABIVersion
}

// CompatibleWithRuntime reports whether the language tables use a layout this
// runtime can execute: same major version, not newer than the runtime.
func (l *Language) CompatibleWithRuntime() bool {
	v := l.Version()
	if !semver.IsValid(v) {
		return false
	}
	if semver.Major(v) != semver.Major(RuntimeABI) {
		return false
	}
	return semver.Compare(v, RuntimeABI) <= 0
}

// SymbolName returns the display name of sym.
func (l *Language) SymbolName(sym Symbol) string {
	if sym == ErrorSymbol {
		return "ERROR"
	}
	if int(sym) < len(l.SymbolNames) {
		return l.SymbolNames[sym]
	}
	return ""
}

// SymbolByName returns the first symbol with the given name.
func (l *Language) SymbolByName(name string) (Symbol, bool) {
	if name == "ERROR" {
		return ErrorSymbol, true
	}
	for i, n := range l.SymbolNames {
		if n == name {
			return Symbol(i), true
		}
	}
	return 0, false
}

// FieldByName returns the field ID for name.
func (l *Language) FieldByName(name string) (FieldID, bool) {
	for i, n := range l.FieldNames {
		if i > 0 && n == name {
			return FieldID(i), true
		}
	}
	return 0, false
}

// IsTerminal reports whether sym is a token symbol.
func (l *Language) IsTerminal(sym Symbol) bool {
	return uint32(sym) < l.TokenCount
}

func (l *Language) metadata(sym Symbol) SymbolMetadata {
	if int(sym) < len(l.SymbolMetadata) {
		return l.SymbolMetadata[sym]
	}
	if sym == ErrorSymbol {
		return SymbolMetadata{Name: "ERROR", Visible: true, Named: true}
	}
	return SymbolMetadata{}
}

// IsExtra reports whether sym may appear anywhere as a non-semantic token.
func (l *Language) IsExtra(sym Symbol) bool {
	return l.metadata(sym).Extra
}

func (l *Language) isProtected(sym Symbol) bool {
	if sym == EOFSymbol {
		return true
	}
	for _, p := range l.ProtectedSymbols {
		if p == sym {
			return true
		}
	}
	return false
}

// lookupAction returns the first action for (state, sym), if any.
func (l *Language) lookupAction(state StateID, sym Symbol) (ParseAction, bool) {
	if int(state) >= len(l.ParseTable) {
		return ParseAction{}, false
	}
	row := l.ParseTable[state]
	if int(sym) >= len(row) {
		return ParseAction{}, false
	}
	idx := row[sym]
	if idx == 0 || int(idx) >= len(l.ParseActions) {
		return ParseAction{}, false
	}
	entry := &l.ParseActions[idx]
	if len(entry.Actions) == 0 {
		return ParseAction{}, false
	}
	return entry.Actions[0], true
}

// lookupGoto returns the state reached after reducing to nonterminal sym in
// state. Gotos are stored as shift actions in the nonterminal columns.
func (l *Language) lookupGoto(state StateID, sym Symbol) (StateID, bool) {
	act, ok := l.lookupAction(state, sym)
	if !ok || act.Type != ParseActionShift {
		return 0, false
	}
	return act.State, true
}

// ExpectedSymbols lists the terminals that have an action in state.
func (l *Language) ExpectedSymbols(state StateID) []Symbol {
	var out []Symbol
	for sym := Symbol(0); uint32(sym) < l.TokenCount; sym++ {
		if _, ok := l.lookupAction(state, sym); ok {
			out = append(out, sym)
		}
	}
	return out
}

func (l *Language) fieldFor(production uint16, index int) FieldID {
	if int(production) >= len(l.ProductionFields) {
		return 0
	}
	row := l.ProductionFields[production]
	if index < 0 || index >= len(row) {
		return 0
	}
	return row[index]
}

// ExpandParseTable rebuilds dense parse table rows from sparse rows holding
// symbol/action-index pairs, as written by generated grammar files.
func ExpandParseTable(symbolCount int, sparse [][]uint16) [][]uint16 {
	table := make([][]uint16, len(sparse))
	for s, pairs := range sparse {
		row := make([]uint16, symbolCount)
		for i := 0; i+1 < len(pairs); i += 2 {
			if int(pairs[i]) < symbolCount {
				row[pairs[i]] = pairs[i+1]
			}
		}
		table[s] = row
	}
	return table
}
