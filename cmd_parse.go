package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odvcencio/xonshts/editor"
	"github.com/odvcencio/xonshts/export"
	"github.com/odvcencio/xonshts/gotreesitter"
)

var errSyntax = errors.New("syntax errors")

// readSource reads the file named by args, or standard input when there is
// none or it is "-".
func readSource(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return data, args[0], nil
}

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var kind string
	var anonymous bool
	var showStats bool
	var showDigest bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a xonsh file and print its syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			_, lang, err := a.entryFor(name, src)
			if err != nil {
				return err
			}
			doc := editor.NewDocument(lang, a.parserOptions()...)
			doc.SetText(string(src))
			tree := doc.Tree()
			out := cmd.OutOrStdout()

			if kind != "" {
				if err := printKind(out, lang, tree, kind); err != nil {
					return err
				}
			} else if err := writeTree(out, tree, outputFormat, export.Options{Anonymous: anonymous, Text: true}); err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			if showStats {
				st := tree.Stats()
				fmt.Fprintf(errOut, "tokens %d, nodes created %d, reused %d, recovery steps %d\n",
					st.TokensLexed, st.NodesCreated, st.NodesReused, st.RecoverySteps)
			}
			if showDigest {
				d, err := export.TreeDigest(tree)
				if err != nil {
					return err
				}
				fmt.Fprintf(errOut, "digest %s\n", d)
			}
			return reportDiagnostics(errOut, name, doc.Diagnostics())
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexpr", "output format: sexpr, json or cbor")
	cmd.Flags().StringVar(&kind, "kind", "", "only list nodes of this kind")
	cmd.Flags().BoolVar(&anonymous, "anonymous", false, "include anonymous nodes in json and cbor output")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print parse counters to stderr")
	cmd.Flags().BoolVar(&showDigest, "digest", false, "print the tree digest to stderr")
	return cmd
}

func writeTree(w io.Writer, tree *gotreesitter.Tree, format string, opts export.Options) error {
	switch format {
	case "sexpr":
		_, err := fmt.Fprintln(w, export.SExpression(tree))
		return err
	case "json":
		data, err := export.JSON(tree, opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "cbor":
		data, err := export.CBOR(tree, opts)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// printKind lists every node of the given kind with its position and first
// line of text.
func printKind(w io.Writer, lang *gotreesitter.Language, tree *gotreesitter.Tree, kind string) error {
	kinds := namedKinds(lang)
	if !slices.Contains(kinds, kind) {
		if s := suggestKind(kind, kinds); s != "" {
			return fmt.Errorf("unknown node kind %q, did you mean %q?", kind, s)
		}
		return fmt.Errorf("unknown node kind %q", kind)
	}
	tree.RootNode().Walk(func(n gotreesitter.Node) bool {
		if n.Kind() == kind {
			text, _, _ := strings.Cut(n.Text(), "\n")
			p := n.StartPoint()
			fmt.Fprintf(w, "%d:%d\t%s\n", p.Row+1, p.Column+1, text)
		}
		return true
	})
	return nil
}

// reportDiagnostics prints one line per problem and returns errSyntax when
// there was any.
func reportDiagnostics(w io.Writer, name string, diags []editor.Diagnostic) error {
	for _, d := range diags {
		p := d.Range.StartPoint
		fmt.Fprintf(w, "%s:%d:%d: %s\n", name, p.Row+1, p.Column+1, d.Message)
	}
	if len(diags) > 0 {
		return fmt.Errorf("%s: %d %w", name, len(diags), errSyntax)
	}
	return nil
}
