package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/coltoneshaw/ynabsync/internal/syncconfig"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool surface over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := syncconfig.Load()
			if err != nil {
				return err
			}
			logger := newLogger()

			engine, err := buildEngine(cfg, &logger)
			if err != nil {
				return err
			}

			s := server.NewMCPServer("ynab-sync", "0.1.0")
			registerTools(s, engine)

			logger.Info().
				Bool("read_only", cfg.ReadOnly).
				Bool("static", engine.IsStatic()).
				Msg("starting ynab-sync MCP server")

			return server.ServeStdio(s)
		},
	}
}
