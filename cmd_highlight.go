package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/render"
)

func newHighlightCmd(a *app) *cobra.Command {
	var style string
	var formatter string

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Print a xonsh file with syntax highlighting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("style") {
				style = a.cfg.Highlight.Style
			}
			if !cmd.Flags().Changed("formatter") {
				formatter = a.cfg.Highlight.Formatter
			}
			if !slices.Contains(render.Formatters(), formatter) {
				return fmt.Errorf("unknown formatter: %s", formatter)
			}
			src, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			entry, lang, err := a.entryFor(name, src)
			if err != nil {
				return err
			}
			h := gotreesitter.NewHighlighter(lang, entry.Highlights,
				gotreesitter.WithParserOptions(a.parserOptions()...))
			return render.Write(cmd.OutOrStdout(), src, h.Highlight(src), style, formatter)
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "chroma style (default from config)")
	cmd.Flags().StringVar(&formatter, "formatter", "", "chroma formatter (default from config)")
	return cmd
}
