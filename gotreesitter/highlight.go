package gotreesitter

import "context"

// HighlightRange represents a styled range of source code, mapping a byte span
// to a capture name. Consumers map capture names (e.g., "keyword", "string",
// "function") to styles.
type HighlightRange struct {
	StartByte uint32
	EndByte   uint32
	Capture   string // "keyword", "string", "function", etc.
}

// CaptureRules assigns capture names to nodes. Keys take three forms:
//
//	identifier              a named node kind
//	"if"                    an anonymous token, quoted
//	function_definition.name the child in field name of a kind
//
// Field keys win over kind keys. A node without a rule inherits the capture
// of its nearest ancestor that has one.
type CaptureRules map[string]string

// Highlighter is a high-level API that takes source code and returns styled
// ranges. It combines a Parser with capture rules to provide a single
// Highlight() call for editors and the CLI.
type Highlighter struct {
	parser *Parser
	rules  CaptureRules
	lang   *Language
}

// HighlighterOption configures a Highlighter.
type HighlighterOption func(*Highlighter)

// WithParserOptions configures the parser the Highlighter parses with.
func WithParserOptions(opts ...ParserOption) HighlighterOption {
	return func(h *Highlighter) {
		h.parser = NewParser(h.lang, opts...)
	}
}

// NewHighlighter creates a Highlighter for the given language and rules.
func NewHighlighter(lang *Language, rules CaptureRules, opts ...HighlighterOption) *Highlighter {
	h := &Highlighter{
		parser: NewParser(lang),
		rules:  rules,
		lang:   lang,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HighlightIncremental re-highlights source after edits were applied to oldTree.
// Returns the new highlight ranges and the new parse tree (for use in subsequent
// incremental calls). Call oldTree.Edit() before calling this.
func (h *Highlighter) HighlightIncremental(source []byte, oldTree *Tree) ([]HighlightRange, *Tree) {
	tree, err := h.parser.ParseIncrementalContext(context.Background(), source, oldTree)
	if err != nil || tree == nil {
		return nil, tree
	}
	return h.HighlightTree(tree), tree
}

// Highlight parses the source code and returns its highlight ranges sorted
// by StartByte. Ranges never overlap: the innermost capture wins.
func (h *Highlighter) Highlight(source []byte) []HighlightRange {
	if len(source) == 0 {
		return nil
	}
	return h.HighlightTree(h.parser.Parse(source))
}

// HighlightTree returns the highlight ranges of an already parsed tree.
func (h *Highlighter) HighlightTree(tree *Tree) []HighlightRange {
	var out []HighlightRange
	var walk func(n Node, capture string)
	walk = func(n Node, capture string) {
		kids := n.Children()
		if len(kids) == 0 {
			out = appendRange(out, n.StartByte(), n.EndByte(), capture)
			return
		}
		for i, c := range kids {
			kc, ok := "", false
			if f := n.FieldNameForChild(i); f != "" {
				kc, ok = h.rules[n.Kind()+"."+f]
			}
			if !ok {
				kc, ok = h.ruleFor(c)
			}
			if !ok {
				kc = capture
			}
			walk(c, kc)
		}
	}
	root := tree.RootNode()
	capture, _ := h.ruleFor(root)
	walk(root, capture)
	return out
}

func (h *Highlighter) ruleFor(n Node) (string, bool) {
	if n.IsError() {
		c, ok := h.rules["ERROR"]
		return c, ok
	}
	key := n.Kind()
	if !n.IsNamed() {
		key = `"` + key + `"`
	}
	c, ok := h.rules[key]
	return c, ok
}

// appendRange adds [start,end) with capture, merging it into the previous
// range when they touch and share a capture.
func appendRange(out []HighlightRange, start, end uint32, capture string) []HighlightRange {
	if capture == "" || start == end {
		return out
	}
	if n := len(out); n > 0 && out[n-1].EndByte == start && out[n-1].Capture == capture {
		out[n-1].EndByte = end
		return out
	}
	return append(out, HighlightRange{StartByte: start, EndByte: end, Capture: capture})
}
