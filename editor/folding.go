package editor

import (
	"sort"
	"strings"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// FoldRegion is a foldable range of lines. The start line stays visible
// when the region is folded.
type FoldRegion struct {
	StartLine int
	EndLine   int
	Kind      string // node kind the region came from, "" for heuristics
}

// foldKinds are the node kinds that fold from their first line to the end
// of their body or closing bracket.
var foldKinds = map[string]bool{
	"function_definition":      true,
	"class_definition":         true,
	"if_statement":             true,
	"elif_clause":              true,
	"else_clause":              true,
	"for_statement":            true,
	"while_statement":          true,
	"try_statement":            true,
	"except_clause":            true,
	"finally_clause":           true,
	"with_statement":           true,
	"list":                     true,
	"dictionary":               true,
	"set":                      true,
	"tuple":                    true,
	"argument_list":            true,
	"parenthesized_expression": true,
	"string":                   true,
	"captured_subprocess":      true,
	"uncaptured_subprocess":    true,
}

// FoldRegionsFromTree returns a fold region for every multi-line node of a
// folding kind. Compound statements with a block body fold up to the end of
// their own body, so an if statement and each of its elif clauses fold
// separately.
func FoldRegionsFromTree(tree *gotreesitter.Tree) []FoldRegion {
	var regions []FoldRegion
	tree.RootNode().Walk(func(n gotreesitter.Node) bool {
		if n.IsError() {
			return false
		}
		if !foldKinds[n.Kind()] {
			return true
		}
		body := n
		for i := 0; i < n.ChildCount(); i++ {
			if c := n.Child(i); c.Kind() == "block" {
				body = c
				break
			}
		}
		// Trailing newlines and dedent indentation do not extend the region.
		content := strings.TrimRight(body.Text(), " \t\r\n")
		endLine := int(body.StartPoint().Row) + strings.Count(content, "\n")
		if start := int(n.StartPoint().Row); endLine > start {
			regions = append(regions, FoldRegion{StartLine: start, EndLine: endLine, Kind: n.Kind()})
		}
		return true
	})
	return regions
}

// DetectFoldRegions scans text for lines ending in ":" followed by more deeply
// indented lines. It is the fallback when no syntax tree is available.
func DetectFoldRegions(text string) []FoldRegion {
	lines := strings.Split(text, "\n")
	var regions []FoldRegion
	type open struct{ line, indent int }
	var stack []open

	closeTo := func(indent, last int) {
		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if last > top.line {
				regions = append(regions, FoldRegion{StartLine: top.line, EndLine: last})
			}
		}
	}

	lastContent := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		closeTo(indent, lastContent)
		if strings.HasSuffix(trimmed, ":") {
			stack = append(stack, open{line: i, indent: indent})
		}
		lastContent = i
	}
	closeTo(0, lastContent)
	sort.Slice(regions, func(i, j int) bool { return regions[i].StartLine < regions[j].StartLine })
	return regions
}
