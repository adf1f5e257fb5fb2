package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammargen"
	"github.com/odvcencio/xonshts/grammars"
)

// errStale reports a generated file that no longer matches the grammar.
var errStale = errors.New("generated tables are stale")

type options struct {
	Package  string
	FuncName string
	Strict   bool // unexpected conflicts are errors
}

type result struct {
	Language *gotreesitter.Language
	Report   *grammargen.Report
	Source   []byte
}

func generate(opts options) (*result, error) {
	lang, report, err := grammars.XonshGrammar().Build()
	if err != nil {
		return nil, fmt.Errorf("build tables: %w", err)
	}
	if n := len(report.Unexpected()); opts.Strict && n > 0 {
		return nil, fmt.Errorf("%d unexpected conflicts", n)
	}
	src, err := grammargen.GenerateGo(lang, grammargen.GenerateOptions{
		Package:   opts.Package,
		FuncName:  opts.FuncName,
		Generator: "xonsh2go",
	})
	if err != nil {
		return nil, err
	}
	return &result{Language: lang, Report: report, Source: src}, nil
}

// checkFile compares the file at path with freshly generated source.
func checkFile(path string, want []byte) error {
	got, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s: %w; rerun xonsh2go", path, errStale)
	}
	return nil
}
