package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/xonshts/lsp"
)

func newLSPCmd(a *app) *cobra.Command {
	var tcpAddr string
	var wsAddr string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, lang, err := a.entryFor("", nil)
			if err != nil {
				return err
			}
			server := lsp.NewServer(lang, a.cfg.LSP.Name, version, a.parserOptions()...)
			switch {
			case tcpAddr != "":
				return server.RunTCP(tcpAddr)
			case wsAddr != "":
				return server.RunWebSocket(wsAddr)
			default:
				return server.RunStdio()
			}
		},
	}

	cmd.Flags().StringVar(&tcpAddr, "tcp", "", "listen on a TCP address instead of stdio")
	cmd.Flags().StringVar(&wsAddr, "websocket", "", "listen on a WebSocket address instead of stdio")
	cmd.MarkFlagsMutuallyExclusive("tcp", "websocket")
	return cmd
}
