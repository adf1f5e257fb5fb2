package grammars

//go:generate go run ../cmd/xonsh2go -strict -output xonsh_tables.go

import (
	"fmt"
	"sync"

	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammargen"
)

var (
	xonshOnce sync.Once
	xonshLang *gotreesitter.Language
	xonshErr  error
)

func loadXonsh() {
	lang := XonshTables()
	scanner, err := NewXonshScanner(lang)
	if err != nil {
		xonshErr = err
		return
	}
	lang.Scanner = scanner
	xonshLang = lang
}

// LoadXonsh returns the xonsh language backed by the generated tables in
// xonsh_tables.go.
func LoadXonsh() (*gotreesitter.Language, error) {
	xonshOnce.Do(loadXonsh)
	return xonshLang, xonshErr
}

// BuildXonsh generates the xonsh tables from XonshGrammar at runtime and
// returns them with the generator's conflict report. Each call builds a
// fresh language.
func BuildXonsh() (*gotreesitter.Language, *grammargen.Report, error) {
	lang, report, err := XonshGrammar().Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build xonsh tables: %w", err)
	}
	scanner, err := NewXonshScanner(lang)
	if err != nil {
		return nil, nil, err
	}
	lang.Scanner = scanner
	return lang, report, nil
}

// XonshLanguage returns the xonsh language. It panics if the scanner cannot
// bind to the tables, which only happens when the generated file is stale.
func XonshLanguage() *gotreesitter.Language {
	lang, err := LoadXonsh()
	if err != nil {
		panic(err)
	}
	return lang
}
