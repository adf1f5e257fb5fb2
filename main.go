package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/odvcencio/xonshts/config"
	"github.com/odvcencio/xonshts/gotreesitter"
	"github.com/odvcencio/xonshts/grammars"
)

const version = "0.3.0"

// app holds the state shared by every subcommand: the persistent flags and
// the configuration they select.
type app struct {
	configPath string
	verbosity  int
	cfg        *config.Config
}

// load reads the configuration before a subcommand runs. Flags given on the
// command line win over the file.
func (a *app) load(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = config.Find(".")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity = a.verbosity
	}
	cfg.ConfigureLogging()
	a.cfg = cfg
	return nil
}

// entryFor picks the registered language for a file, falling back to xonsh
// for names and content nothing claims.
func (a *app) entryFor(name string, src []byte) (*grammars.LangEntry, *gotreesitter.Language, error) {
	entry := grammars.DetectLanguageForContent(name, src)
	if entry == nil {
		entry = grammars.LookupLanguage("xonsh")
	}
	if entry.Name == "xonsh" {
		lang, err := grammars.LoadXonsh()
		return entry, lang, err
	}
	return entry, entry.Language(), nil
}

func (a *app) parserOptions() []gotreesitter.ParserOption {
	return a.cfg.ParserOptions(commonlog.GetLogger("xonshts.parser"))
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	rootCmd := &cobra.Command{
		Use:           "xonshts",
		Short:         "Incremental parser for xonsh scripts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "log verbosity, repeat for more")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newHighlightCmd(a))
	rootCmd.AddCommand(newTablesCmd(a))
	rootCmd.AddCommand(newKindsCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "xonshts: %v\n", err)
		os.Exit(1)
	}
}
