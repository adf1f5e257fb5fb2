package grammargen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/odvcencio/xonshts/gotreesitter"
)

func TestGenerateGo(t *testing.T) {
	lang, _, err := arithmeticGrammar().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	src, err := GenerateGo(lang, GenerateOptions{Package: "arith", FuncName: "ArithLanguage", Generator: "xonsh2go"})
	if err != nil {
		t.Fatalf("GenerateGo: %v", err)
	}
	if !strings.HasPrefix(string(src), "// Code generated by xonsh2go. DO NOT EDIT.") {
		t.Errorf("missing generated-code header:\n%s", firstLine(src))
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "arith.go", src, 0)
	if err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
	if file.Name.Name != "arith" {
		t.Errorf("package = %s, want arith", file.Name.Name)
	}
	var found bool
	ast.Inspect(file, func(n ast.Node) bool {
		if fn, ok := n.(*ast.FuncDecl); ok && fn.Name.Name == "ArithLanguage" {
			found = true
		}
		return true
	})
	if !found {
		t.Fatal("ArithLanguage not declared")
	}
}

func TestGenerateGoSparseRowsRoundTrip(t *testing.T) {
	lang, _, err := arithmeticGrammar().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sparse := make([][]uint16, len(lang.ParseTable))
	for s, row := range lang.ParseTable {
		for sym, idx := range row {
			if idx != 0 {
				sparse[s] = append(sparse[s], uint16(sym), idx)
			}
		}
	}
	dense := gotreesitter.ExpandParseTable(int(lang.SymbolCount), sparse)
	for s := range dense {
		for sym := range dense[s] {
			if dense[s][sym] != lang.ParseTable[s][sym] {
				t.Fatalf("state %d symbol %d: got %d, want %d", s, sym, dense[s][sym], lang.ParseTable[s][sym])
			}
		}
	}
}

func firstLine(b []byte) string {
	s := string(b)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
