package grammargen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/odvcencio/xonshts/gotreesitter"
)

// GenerateOptions names the output of GenerateGo.
type GenerateOptions struct {
	Package  string
	FuncName string
	// Generator is written into the generated-code header.
	Generator string
}

type generateData struct {
	GenerateOptions
	Lang      *gotreesitter.Language
	Symbols   string
	Metadata  string
	Fields    string
	ProdField string
	Actions   string
	Rows      string
	Insert    string
	Protect   string
}

var goTemplate = template.Must(template.New("language").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}

import "github.com/odvcencio/xonshts/gotreesitter"

// {{.FuncName}} returns the parse tables of the {{.Lang.Name}} grammar. The
// caller attaches the scanner.
func {{.FuncName}}() *gotreesitter.Language {
	return &gotreesitter.Language{
		Name:              {{printf "%q" .Lang.Name}},
		ABIVersion:        {{printf "%q" .Lang.ABIVersion}},
		SymbolCount:       {{.Lang.SymbolCount}},
		TokenCount:        {{.Lang.TokenCount}},
		StateCount:        {{.Lang.StateCount}},
		FieldCount:        {{.Lang.FieldCount}},
		SymbolNames:       []string{ {{.Symbols}} },
		SymbolMetadata:    []gotreesitter.SymbolMetadata{ {{.Metadata}} },
		FieldNames:        []string{ {{.Fields}} },
		ProductionFields:  [][]gotreesitter.FieldID{ {{.ProdField}} },
		ParseActions:      []gotreesitter.ParseActionEntry{ {{.Actions}} },
		ParseTable:        gotreesitter.ExpandParseTable({{.Lang.SymbolCount}}, [][]uint16{ {{.Rows}} }),
		InsertableSymbols: []gotreesitter.Symbol{ {{.Insert}} },
		ProtectedSymbols:  []gotreesitter.Symbol{ {{.Protect}} },
		InitialState:      {{.Lang.InitialState}},
		StartSymbol:       {{.Lang.StartSymbol}},
	}
}
`))

// GenerateGo renders lang as a Go source file whose function rebuilds the
// same tables without running the generator. Rows of the parse table are
// stored sparsely as symbol/action pairs.
func GenerateGo(lang *gotreesitter.Language, opts GenerateOptions) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "grammars"
	}
	if opts.FuncName == "" {
		opts.FuncName = "Language"
	}
	if opts.Generator == "" {
		opts.Generator = "grammargen"
	}
	d := generateData{GenerateOptions: opts, Lang: lang}

	var b strings.Builder
	for _, n := range lang.SymbolNames {
		fmt.Fprintf(&b, "%q,\n", n)
	}
	d.Symbols = "\n" + b.String()

	b.Reset()
	for _, m := range lang.SymbolMetadata {
		fmt.Fprintf(&b, "{Name: %q, Visible: %t, Named: %t, Extra: %t},\n", m.Name, m.Visible, m.Named, m.Extra)
	}
	d.Metadata = "\n" + b.String()

	b.Reset()
	for _, f := range lang.FieldNames {
		fmt.Fprintf(&b, "%q, ", f)
	}
	d.Fields = b.String()

	b.Reset()
	for _, row := range lang.ProductionFields {
		if row == nil {
			b.WriteString("nil,\n")
			continue
		}
		b.WriteString("{")
		for _, f := range row {
			fmt.Fprintf(&b, "%d, ", f)
		}
		b.WriteString("},\n")
	}
	d.ProdField = "\n" + b.String()

	b.Reset()
	for _, e := range lang.ParseActions {
		if len(e.Actions) == 0 {
			b.WriteString("{},\n")
			continue
		}
		fmt.Fprintf(&b, "{Reusable: %t, Actions: []gotreesitter.ParseAction{", e.Reusable)
		for _, a := range e.Actions {
			fmt.Fprintf(&b, "{Type: %d, State: %d, Symbol: %d, ChildCount: %d, DynamicPrecedence: %d, ProductionID: %d}, ",
				a.Type, a.State, a.Symbol, a.ChildCount, a.DynamicPrecedence, a.ProductionID)
		}
		b.WriteString("}},\n")
	}
	d.Actions = "\n" + b.String()

	b.Reset()
	for _, row := range lang.ParseTable {
		b.WriteString("{")
		for sym, idx := range row {
			if idx != 0 {
				fmt.Fprintf(&b, "%d, %d, ", sym, idx)
			}
		}
		b.WriteString("},\n")
	}
	d.Rows = "\n" + b.String()

	b.Reset()
	for _, s := range lang.InsertableSymbols {
		fmt.Fprintf(&b, "%d, ", s)
	}
	d.Insert = b.String()
	b.Reset()
	for _, s := range lang.ProtectedSymbols {
		fmt.Fprintf(&b, "%d, ", s)
	}
	d.Protect = b.String()

	var out bytes.Buffer
	if err := goTemplate.Execute(&out, d); err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.FuncName, err)
	}
	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", opts.FuncName, err)
	}
	return src, nil
}
