package grammars

import (
	"bufio"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/odvcencio/xonshts/gotreesitter"
)

func TestXonshLanguageBuilds(t *testing.T) {
	lang, err := LoadXonsh()
	if err != nil {
		t.Fatalf("LoadXonsh: %v", err)
	}
	if lang.Scanner == nil {
		t.Fatal("xonsh language has no scanner")
	}
	if !lang.CompatibleWithRuntime() {
		t.Fatalf("language ABI %s incompatible with runtime %s", lang.Version(), gotreesitter.RuntimeABI)
	}

	built, report, err := BuildXonsh()
	if err != nil {
		t.Fatalf("BuildXonsh: %v", err)
	}
	for _, c := range report.Unexpected() {
		t.Errorf("unexpected conflict: %s", c)
	}
	if built.StateCount != lang.StateCount || built.SymbolCount != lang.SymbolCount {
		t.Errorf("xonsh_tables.go is stale: %d states, %d symbols; grammar builds %d states, %d symbols",
			lang.StateCount, lang.SymbolCount, built.StateCount, built.SymbolCount)
	}
	if diff := cmp.Diff(built.SymbolNames, lang.SymbolNames); diff != "" {
		t.Errorf("symbol names differ from the grammar (-built +committed):\n%s", diff)
	}
	t.Logf("%d states, %d productions, %d terminals, %d nonterminals",
		report.States, report.Productions, report.Terminals, report.Nonterminals)
}

func parseXonsh(t testing.TB, src string) *gotreesitter.Tree {
	t.Helper()
	tree, err := gotreesitter.NewParser(XonshLanguage()).ParseContext(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return tree
}

func TestXonshParseShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{
			src:  "echo hello\n",
			want: "(module (bare_subprocess (subprocess_command (word) (word))))",
		},
		{
			src:  "(echo hello)\n",
			want: "(module (expression_statement (parenthesized_expression (subprocess_command (word) (word)))))",
		},
		{
			src:  "x = 1\n",
			want: "(module (expression_statement (assignment left: (identifier) right: (integer))))",
		},
		{
			src:  "pass\n",
			want: "(module (pass_statement))",
		},
		{
			src:  "ls -l | wc\n",
			want: "(module (bare_subprocess (subprocess_pipeline (subprocess_command (word) (word)) (pipe_operator) (subprocess_command (word)))))",
		},
		{
			src:  "w = @$(which ls)\n",
			want: "(module (expression_statement (assignment left: (identifier) right: (tokenized_substitution (subprocess_command (word) (word))))))",
		},
		{
			src:  "f!(x, y + 1)\n",
			want: "(module (expression_statement (macro_call function: (identifier) argument: (macro_argument) argument: (macro_argument))))",
		},
		{
			src:  "echo! hello world\n",
			want: "(module (bare_subprocess (subprocess_macro command: (word) argument: (macro_argument))))",
		},
		{
			src:  "x = @.imp.json\n",
			want: "(module (expression_statement (assignment left: (identifier) right: (attribute object: (at_object attribute: (identifier)) attribute: (identifier)))))",
		},
		{
			src:  "@@.name\ndef f():\n    pass\n",
			want: "(module (decorated_definition (decorator (at_object attribute: (identifier))) definition: (function_definition name: (identifier) parameters: (parameters) body: (block (pass_statement)))))",
		},
		{
			src:  "with! ctx:\n    x\n",
			want: "(module (block_macro_statement (with_clause (with_item value: (identifier))) body: (block (expression_statement (identifier)))))",
		},
		{
			src:  "xontrib load vox abbrevs\n",
			want: "(module (xontrib_statement name: (dotted_name (identifier)) name: (dotted_name (identifier))))",
		},
	}
	for _, tt := range tests {
		tree := parseXonsh(t, tt.src)
		if got := tree.String(); got != tt.want {
			t.Errorf("parse %q:\n got %s\nwant %s", tt.src, got, tt.want)
		}
	}
}

func TestXonshParseIfStatementFields(t *testing.T) {
	tree := parseXonsh(t, "if x:\n    y\n")
	root := tree.RootNode()
	if root.HasError() {
		t.Fatalf("unexpected error in %s", tree)
	}
	stmt := root.NamedChild(0)
	if stmt.Kind() != "if_statement" {
		t.Fatalf("first statement = %s, want if_statement", stmt.Kind())
	}
	if got := stmt.ChildByFieldName("condition").Text(); got != "x" {
		t.Errorf("condition = %q, want %q", got, "x")
	}
	body := stmt.ChildByFieldName("consequence")
	if body.Kind() != "block" {
		t.Fatalf("consequence = %s, want block", body.Kind())
	}
}

func TestXonshParseRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"x = 1\n",
		"def f(a, b=2, *args, **kw):\n    return a + b\n",
		"for i in range(10):\n    if i % 2:\n        continue\n    print(i)\n",
		"with open(p) as f:\n    data = f.read()\n",
		"try:\n    x()\nexcept ValueError as e:\n    pass\nfinally:\n    done()\n",
		"echo $(ls -l | wc -l) > count.txt\n",
		"$PATH.append('/opt/bin')\n",
		"files = g`*.py`\n",
		"s = f'{name!r:>{width}}'\n",
		"if x:\n  bad indentation\n    more\n",
		"x = (1, 2\n",
		"\"unterminated\n",
		"@decorator\nclass A(B):\n    x: int = 0\n",
		"print(x)  # comment\r\n",
	}
	for _, src := range inputs {
		tree := parseXonsh(t, src)
		root := tree.RootNode()
		if got := root.Text(); got != src {
			t.Errorf("root text = %q, want %q", got, src)
		}
		var b strings.Builder
		for _, leaf := range root.Leaves() {
			b.WriteString(leaf.Text())
		}
		if b.String() != src {
			t.Errorf("leaves concatenate to %q, want %q", b.String(), src)
		}
		if err := tree.CheckSpans(); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestXonshErrorContainment(t *testing.T) {
	src := "a = 1\nb = (\nc = 3\n"
	tree := parseXonsh(t, src)
	root := tree.RootNode()
	if !root.HasError() {
		t.Fatalf("expected an error in %s", tree)
	}
	first := root.NamedChild(0)
	if first.HasError() || first.Kind() != "expression_statement" {
		t.Errorf("first statement = %s (error=%v), want a clean expression_statement", first, first.HasError())
	}
}

func TestXonshIndentationErrorsAreFlagged(t *testing.T) {
	tests := []struct {
		src  string
		kind string
	}{
		{"if x:\n    y = 1\n  z = 2\nw = 3\n", "_dedent"},
		{"if x:\n\ty = 1\n        z = 2\n", "_whitespace"},
	}
	for _, tt := range tests {
		root := parseXonsh(t, tt.src).RootNode()
		if !root.HasError() {
			t.Errorf("%q: no error in %s", tt.src, root)
			continue
		}
		var kinds []string
		root.Walk(func(n gotreesitter.Node) bool {
			if n.IsError() {
				kinds = append(kinds, n.Kind())
			}
			return true
		})
		if !cmp.Equal(kinds, []string{tt.kind}) {
			t.Errorf("%q: error nodes = %v, want [%s]", tt.src, kinds, tt.kind)
		}
	}
}

func TestXonshValidInputHasNoErrors(t *testing.T) {
	inputs := []string{
		"x = [i * 2 for i in range(3) if i]\n",
		"d = {k: v for k, v in items}\n",
		"lambda x, y=1: x + y\n",
		"a if b else c\n",
		"x = not a and b or c\n",
		"y = a[1:2, ::3]\n",
		"async def f():\n    await g()\n",
		"class A:\n    def m(self) -> int:\n        return 1\n",
		"$[ls -l]\n",
		"x = !(grep foo bar.txt)\n",
		"echo @(1 + 2) $HOME ${'PA' + 'TH'}\n",
		"ls -la 2>&1 | grep x &\n",
		"$FOO=bar $BAR=x make\n",
		"del $FOO\n",
		"import os.path as p\nfrom . import x\nfrom a.b import (c, d)\n",
		"from a import (b, c,)\nfrom a import (b as c,\n    d,\n)\n",
		"y = (x := a and b)\nz = (n := a if b else c)\n",
		"a = -f(x) + g(y) ** h(z)\nb = await f(x)\n",
		"r = f!(a, b)\nitems = $(echo! a b c)\n",
		"xontrib load vox\nxontrib = 1\nxontrib list\n",
		"v = @.env['HOME']\n",
		"x = rb'\\x00' r\"\\d\" u'\\N{DASH}'\n",
	}
	for _, src := range inputs {
		tree := parseXonsh(t, src)
		if tree.RootNode().HasError() {
			t.Errorf("unexpected error for %q:\n%s", src, tree)
		}
	}
}

func TestXonshSubprocessPolicyGolden(t *testing.T) {
	f, err := os.Open("testdata/subprocess_policy.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	type golden struct{ input, kind string }
	var cases []golden
	var cur []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "#") && len(cur) == 0 && len(cases) == 0:
		case line == "===":
			cases = append(cases, splitGolden(t, cur))
			cur = nil
		default:
			cur = append(cur, line)
		}
	}
	if len(cur) > 0 {
		cases = append(cases, splitGolden(t, cur))
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no golden cases")
	}

	for _, c := range cases {
		tree := parseXonsh(t, c.input)
		got := tree.RootNode().NamedChild(0).Kind()
		if got != c.kind {
			t.Errorf("%q: first statement = %s, want %s\n%s", c.input, got, c.kind, tree)
		}
	}
}

func splitGolden(t *testing.T, lines []string) struct{ input, kind string } {
	t.Helper()
	for i, line := range lines {
		if line == "---" && i+1 < len(lines) {
			return struct{ input, kind string }{
				input: strings.Join(lines[:i], "\n") + "\n",
				kind:  strings.TrimSpace(lines[i+1]),
			}
		}
	}
	t.Fatalf("malformed golden case: %q", lines)
	return struct{ input, kind string }{}
}

type textEdit struct {
	start, oldEnd uint32
	text          string
}

func TestXonshIncrementalMatchesFreshParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		edit textEdit
	}{
		{"rename identifier", "x = 1\ny = x + 2\n", textEdit{0, 1, "xx"}},
		{"python to command", "if a:\n    ls\n", textEdit{12, 12, " -la"}},
		{"open a string", "a = 1\nb = 2\n", textEdit{10, 10, "'"}},
		{"indent a line", "if a:\n    b\nc\n", textEdit{12, 12, "    "}},
		{"delete a colon", "for i in x:\n    pass\n", textEdit{10, 11, ""}},
		{"insert a line", "a\nb\n", textEdit{2, 2, "echo hi\n"}},
		{"join lines", "a = (1,\n2)\n", textEdit{7, 8, ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang := XonshLanguage()
			parser := gotreesitter.NewParser(lang)
			old := parser.Parse([]byte(tt.src))

			edit, next, err := gotreesitter.EditFromOffsets(old.Source(), tt.edit.start, tt.edit.oldEnd, tt.edit.text)
			if err != nil {
				t.Fatalf("EditFromOffsets: %v", err)
			}
			got, err := parser.Reparse(context.Background(), old, next, edit)
			if err != nil {
				t.Fatalf("Reparse: %v", err)
			}
			want := gotreesitter.NewParser(lang).Parse(next)
			if diff := cmp.Diff(want.String(), got.String()); diff != "" {
				t.Errorf("incremental tree differs from fresh parse of %q (-fresh +incremental):\n%s", next, diff)
			}
			if err := got.CheckSpans(); err != nil {
				t.Error(err)
			}
			if old.String() != parser.Parse([]byte(tt.src)).String() {
				t.Error("reparse changed the old tree")
			}
		})
	}
}

func TestXonshIncrementalReusesUntouchedNodes(t *testing.T) {
	src := "if x:\n    y\n"
	parser := gotreesitter.NewParser(XonshLanguage())
	old := parser.Parse([]byte(src))
	oldCond := old.RootNode().NamedChild(0).ChildByFieldName("condition")

	edit, next, err := gotreesitter.EditFromOffsets(old.Source(), 10, 11, "yy")
	if err != nil {
		t.Fatal(err)
	}
	tree, err := parser.Reparse(context.Background(), old, next, edit)
	if err != nil {
		t.Fatal(err)
	}
	stmt := tree.RootNode().NamedChild(0)
	if stmt.Kind() != "if_statement" {
		t.Fatalf("first statement = %s, want if_statement", stmt.Kind())
	}
	cond := stmt.ChildByFieldName("condition")
	if cond.ID() != oldCond.ID() {
		t.Errorf("condition node ID = %d, want reused %d", cond.ID(), oldCond.ID())
	}
	if tree.Stats().NodesReused == 0 {
		t.Error("no nodes reused")
	}
}

func FuzzXonshParseRoundTrip(f *testing.F) {
	for _, seed := range []string{
		"echo hello\n",
		"if x:\n    y\n",
		"x = f'{a!r}'\n",
		"$[ls @$(which python)]\n",
		"def f(:\n",
		"\"\"\"doc\n",
	} {
		f.Add(seed)
	}
	parser := gotreesitter.NewParser(XonshLanguage())
	f.Fuzz(func(t *testing.T, src string) {
		tree := parser.Parse([]byte(src))
		if got := tree.RootNode().Text(); got != src {
			t.Fatalf("root text = %q, want %q", got, src)
		}
		if err := tree.CheckSpans(); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzXonshReparseEquivalence(f *testing.F) {
	f.Add("if x:\n    y\n", uint16(10), uint16(1), "yy")
	f.Add("echo hi | wc\n", uint16(5), uint16(0), "-l ")
	f.Add("a = (1,\n2)\n", uint16(4), uint16(1), "")
	lang := XonshLanguage()
	f.Fuzz(func(t *testing.T, src string, at, del uint16, ins string) {
		start := min(uint32(at), uint32(len(src)))
		end := min(start+uint32(del), uint32(len(src)))
		parser := gotreesitter.NewParser(lang)
		old := parser.Parse([]byte(src))
		edit, next, err := gotreesitter.EditFromOffsets(old.Source(), start, end, ins)
		if err != nil {
			t.Fatal(err)
		}
		got, err := parser.Reparse(context.Background(), old, next, edit)
		if err != nil {
			t.Fatal(err)
		}
		want := gotreesitter.NewParser(lang).Parse(next)
		if got.String() != want.String() {
			t.Fatalf("incremental %s\nfresh       %s", got, want)
		}
	})
}
