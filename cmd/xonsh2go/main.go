// Command xonsh2go builds the LALR(1) tables of the xonsh grammar and writes
// them out as a Go source file, so a program can load the tables without
// running the generator.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	output := flag.String("output", "", "output Go file path")
	pkg := flag.String("package", "grammars", "Go package name")
	name := flag.String("name", "XonshTables", "name of the generated function")
	check := flag.Bool("check", false, "fail if -output differs from freshly generated tables")
	strict := flag.Bool("strict", false, "fail on conflicts the grammar does not expect")
	flag.Parse()

	if *output == "" {
		fmt.Fprintln(os.Stderr, "usage: xonsh2go -output tables.go [-package grammars] [-name XonshTables] [-check] [-strict]")
		os.Exit(1)
	}

	res, err := generate(options{Package: *pkg, FuncName: *name, Strict: *strict})
	if err != nil {
		fmt.Fprintf(os.Stderr, "xonsh2go: %v\n", err)
		os.Exit(1)
	}
	for _, c := range res.Report.Unexpected() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", c)
	}

	if *check {
		if err := checkFile(*output, res.Source); err != nil {
			fmt.Fprintf(os.Stderr, "xonsh2go: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s is up to date\n", *output)
		return
	}

	if err := os.WriteFile(*output, res.Source, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%d states, %d symbols, %d conflicts resolved)\n",
		*output, res.Language.StateCount, res.Language.SymbolCount, len(res.Report.Conflicts))
}
