package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/odvcencio/xonshts/web"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve incremental parsing over WebSocket JSON-RPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Web.Addr
			}
			entry, lang, err := a.entryFor("", nil)
			if err != nil {
				return err
			}
			srv := web.NewServer(lang,
				web.WithParserOptions(a.parserOptions()...),
				web.WithHighlights(entry.Highlights))
			server := &http.Server{Addr: addr, Handler: srv}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			go func() {
				<-ctx.Done()
				server.Close()
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "xonshts parse service: http://%s\n", addr)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
