package main

import (
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	res, err := generate(options{Package: "tables", FuncName: "XonshTables"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Language.StateCount == 0 || res.Language.SymbolCount == 0 {
		t.Fatalf("empty tables: %d states, %d symbols", res.Language.StateCount, res.Language.SymbolCount)
	}
	if !strings.HasPrefix(string(res.Source), "// Code generated by xonsh2go. DO NOT EDIT.") {
		t.Error("missing generated-code header")
	}
	file, err := parser.ParseFile(token.NewFileSet(), "tables.go", res.Source, 0)
	if err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
	if file.Name.Name != "tables" {
		t.Errorf("package = %s, want tables", file.Name.Name)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := generate(options{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := generate(options{})
	if err != nil {
		t.Fatal(err)
	}
	if string(a.Source) != string(b.Source) {
		t.Error("two runs produced different source")
	}
}

func TestCheckFile(t *testing.T) {
	res, err := generate(options{Package: "grammars", FuncName: "XonshTables"})
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "tables.go")
	if err := os.WriteFile(p, res.Source, 0644); err != nil {
		t.Fatal(err)
	}
	if err := checkFile(p, res.Source); err != nil {
		t.Errorf("fresh file reported stale: %v", err)
	}
	if err := os.WriteFile(p, []byte("package grammars\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := checkFile(p, res.Source); !errors.Is(err, errStale) {
		t.Errorf("checkFile = %v, want errStale", err)
	}
	if err := checkFile(filepath.Join(t.TempDir(), "missing.go"), res.Source); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("checkFile of a missing file = %v", err)
	}
}

func TestCommittedTablesAreFresh(t *testing.T) {
	res, err := generate(options{Package: "grammars", FuncName: "XonshTables", Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := checkFile(filepath.Join("..", "..", "grammars", "xonsh_tables.go"), res.Source); err != nil {
		t.Fatalf("%v (run go generate ./grammars)", err)
	}
}
