package gotreesitter_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/odvcencio/xonshts/gotreesitter"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"", "(program)"},
		{"x = 1;", "(program (assignment left: (identifier) right: (number)))"},
		{"1 + 2 * 3;", "(program (expression_statement (binary left: (number) right: (binary left: (number) right: (number)))))"},
		{"(a - b) * c;", "(program (expression_statement (binary left: (parenthesized (binary left: (identifier) right: (identifier))) right: (identifier))))"},
		{"{ x = 1; { y; } }", "(program (block (assignment left: (identifier) right: (number)) (block (expression_statement (identifier)))))"},
		{"a; # trailing\nb;", "(program (expression_statement (identifier)) (comment) (expression_statement (identifier)))"},
		{"  \n\n", "(program)"},
	}
	for _, tt := range tests {
		tree := parseBlocks(t, tt.src)
		if got := tree.String(); got != tt.want {
			t.Errorf("parse %q:\n got %s\nwant %s", tt.src, got, tt.want)
		}
		if tree.RootNode().HasError() {
			t.Errorf("parse %q: unexpected error in %s", tt.src, tree)
		}
		if got := leafText(tree); got != tt.src {
			t.Errorf("parse %q: leaves concatenate to %q", tt.src, got)
		}
	}
}

func TestNodeAccessors(t *testing.T) {
	src := "x = 1;\n{ y = x * 2; }\n"
	tree := parseBlocks(t, src)
	root := tree.RootNode()

	if root.Kind() != "program" || root.Type() != "program" {
		t.Fatalf("root kind = %q, want program", root.Kind())
	}
	if got, want := root.EndByte(), uint32(len(src)); got != want {
		t.Errorf("root end = %d, want %d", got, want)
	}
	if got := root.NamedChildCount(); got != 2 {
		t.Fatalf("named children = %d, want 2", got)
	}

	block := root.NamedChild(1)
	if block.Kind() != "block" {
		t.Fatalf("second statement = %s, want block", block.Kind())
	}
	if got, want := block.StartPoint(), (gotreesitter.Point{Row: 1, Column: 0}); got != want {
		t.Errorf("block start = %+v, want %+v", got, want)
	}
	if got, want := block.EndPoint(), (gotreesitter.Point{Row: 1, Column: 14}); got != want {
		t.Errorf("block end = %+v, want %+v", got, want)
	}
	if got := block.Text(); got != "{ y = x * 2; }" {
		t.Errorf("block text = %q", got)
	}

	assign := block.NamedChild(0)
	right := assign.ChildByFieldName("right")
	if right.Kind() != "binary" || right.Text() != "x * 2" {
		t.Fatalf("right = %s %q, want binary \"x * 2\"", right.Kind(), right.Text())
	}
	if op := right.ChildByFieldName("operator"); op.Text() != "*" || op.IsNamed() {
		t.Errorf("operator = %q named=%t, want anonymous *", op.Text(), op.IsNamed())
	}
	if missing := assign.ChildByFieldName("nowhere"); !missing.IsNull() {
		t.Errorf("unknown field returned %s", missing.Kind())
	}
	if got := assign.FieldNameForChild(0); got != "left" {
		t.Errorf("field of child 0 = %q, want left", got)
	}

	if p := right.Parent(); p.ID() != assign.ID() || p.StartByte() != assign.StartByte() {
		t.Errorf("parent of right = %s@%d, want assignment@%d", p.Kind(), p.StartByte(), assign.StartByte())
	}
	if p := block.Parent(); p.ID() != root.ID() {
		t.Errorf("parent of block = %s, want program", p.Kind())
	}
	if !root.Parent().IsNull() {
		t.Error("root has a parent")
	}
	if c := block.Child(99); !c.IsNull() {
		t.Errorf("Child(99) = %s, want null", c.Kind())
	}

	var kinds []string
	root.Walk(func(n gotreesitter.Node) bool {
		if n.IsNamed() {
			kinds = append(kinds, n.Kind())
		}
		return n.Kind() != "block"
	})
	if got, want := strings.Join(kinds, " "), "program assignment identifier number block"; got != want {
		t.Errorf("walk = %q, want %q", got, want)
	}
	if got := tree.NodeCount(); got < 15 {
		t.Errorf("NodeCount = %d, want at least 15", got)
	}
}

func TestParseWhitespaceIsHidden(t *testing.T) {
	tree := parseBlocks(t, "x   =\n\t1 ;")
	assign := tree.RootNode().NamedChild(0)
	var hidden int
	for _, c := range assign.Children() {
		if c.IsExtra() && !c.IsNamed() {
			hidden++
		}
	}
	if hidden != 3 {
		t.Errorf("hidden extras inside assignment = %d, want 3", hidden)
	}
	if got, want := tree.String(), "(program (assignment left: (identifier) right: (number)))"; got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "insert missing terminator at eof",
			src:  "x = 1",
			want: `(program (assignment left: (identifier) right: (number) (MISSING ";")))`,
		},
		{
			name: "insert missing close paren",
			src:  "(1;",
			want: `(program (expression_statement (parenthesized (number) (MISSING ")"))))`,
		},
		{
			name: "insert missing close brace at eof",
			src:  "{ x = 1;",
			want: `(program (block (assignment left: (identifier) right: (number)) (MISSING "}")))`,
		},
		{
			name: "delete stray token",
			src:  "x = = 1;",
			want: "(program (assignment left: (identifier) (ERROR) right: (number)))",
		},
		{
			name: "delete extra operand",
			src:  "1 2;",
			want: "(program (expression_statement (number) (ERROR (number))))",
		},
		{
			name: "pop into error",
			src:  "x = ;",
			want: "(program (expression_statement (identifier) (ERROR)))",
		},
		{
			name: "skip unmatched brace",
			src:  "} x = 1;",
			want: "(program (ERROR) (assignment left: (identifier) right: (number)))",
		},
		{
			name: "unrecognized character",
			src:  "x = 1 @;",
			want: "(program (assignment left: (identifier) right: (number) (ERROR)))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseBlocks(t, tt.src)
			if got := tree.String(); got != tt.want {
				t.Errorf("parse %q:\n got %s\nwant %s", tt.src, got, tt.want)
			}
			if !tree.RootNode().HasError() {
				t.Errorf("parse %q: root does not report the error", tt.src)
			}
			if got := leafText(tree); got != tt.src {
				t.Errorf("parse %q: leaves concatenate to %q", tt.src, got)
			}
			if tree.Stats().RecoverySteps == 0 && !strings.Contains(tt.src, "@") {
				t.Errorf("parse %q: no recovery steps counted", tt.src)
			}
		})
	}
}

func TestRecoveryContainsErrors(t *testing.T) {
	src := "a = 1;\nb = = 2;\n{ c = 3; }\n"
	tree := parseBlocks(t, src)
	root := tree.RootNode()
	if !root.HasError() {
		t.Fatalf("expected an error in %s", tree)
	}
	for i, want := range []bool{false, true, false} {
		stmt := root.NamedChild(i)
		if got := stmt.HasError(); got != want {
			t.Errorf("statement %d (%q) HasError = %t, want %t", i, stmt.Text(), got, want)
		}
	}
}

func TestMissingNodesAreZeroWidth(t *testing.T) {
	tree := parseBlocks(t, "(a;")
	var found bool
	tree.RootNode().Walk(func(n gotreesitter.Node) bool {
		if n.IsMissing() {
			found = true
			if n.StartByte() != n.EndByte() {
				t.Errorf("missing %s spans [%d,%d)", n.Kind(), n.StartByte(), n.EndByte())
			}
			if n.StartByte() != 2 {
				t.Errorf("missing %s at %d, want 2", n.Kind(), n.StartByte())
			}
		}
		return true
	})
	if !found {
		t.Fatalf("no missing node in %s", tree)
	}
}

func TestRecoveryCapsBoundWork(t *testing.T) {
	src := strings.Repeat(") ", 200) + "x = 1;"
	lang := blockLanguage(t)
	tree := gotreesitter.NewParser(lang, gotreesitter.WithMaxRecoveryAttempts(10)).Parse([]byte(src))
	if err := tree.CheckSpans(); err != nil {
		t.Fatal(err)
	}
	if got := leafText(tree); got != src {
		t.Fatalf("leaves do not reproduce the source")
	}
	last := tree.RootNode().NamedChild(tree.RootNode().NamedChildCount() - 1)
	if last.Kind() != "assignment" || last.HasError() {
		t.Errorf("last statement = %s (error=%t), want a clean assignment", last.Kind(), last.HasError())
	}
}

func TestParseContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := gotreesitter.NewParser(blockLanguage(t))
	tree, err := p.ParseContext(ctx, []byte("x = 1;"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if tree != nil {
		t.Errorf("cancelled parse returned a tree")
	}
}

func TestParseWithoutScanner(t *testing.T) {
	lang, _, err := blockGrammar().Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gotreesitter.NewParser(lang).ParseContext(context.Background(), []byte("x;")); err == nil {
		t.Fatal("parse without a scanner succeeded")
	}
}

func TestParserIsSafeForConcurrentUse(t *testing.T) {
	p := gotreesitter.NewParser(blockLanguage(t))
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := fmt.Sprintf("{ v = %d; }\nw = v * %d;\n", i, i)
			tree := p.Parse([]byte(src))
			if got := tree.RootNode().NamedChildCount(); got != 2 {
				errs <- fmt.Errorf("doc %d: %d statements, want 2", i, got)
				return
			}
			if tree.RootNode().HasError() {
				errs <- fmt.Errorf("doc %d: unexpected error %s", i, tree)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestTreeConcurrentReaders(t *testing.T) {
	tree := parseBlocks(t, strings.Repeat("{ a = 1 + 2; }\n", 50))
	want := tree.String()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := tree.String(); got != want {
				t.Errorf("concurrent String differs")
			}
		}()
	}
	wg.Wait()
}

func TestParseStats(t *testing.T) {
	tree := parseBlocks(t, "x = 1;")
	st := tree.Stats()
	// x, ws, =, ws, 1, ;, EOF
	if st.TokensLexed != 7 {
		t.Errorf("TokensLexed = %d, want 7", st.TokensLexed)
	}
	if st.NodesReused != 0 || st.RecoverySteps != 0 {
		t.Errorf("fresh clean parse stats = %+v", st)
	}
	if st.NodesCreated == 0 {
		t.Error("NodesCreated = 0")
	}
}

func BenchmarkParse(b *testing.B) {
	lang := blockLanguage(b)
	src := []byte(strings.Repeat("{ total = total + item * 2; (total); }\n", 500))
	p := gotreesitter.NewParser(lang)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(src)
	}
}
