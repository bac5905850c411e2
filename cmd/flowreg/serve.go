package main

import (
	"os"
	"os/signal"
	"syscall"

	"flowreg/internal/mcp"

	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve prompts over stdio (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mcp.NewServer(cfg, a.logger)
	serveErr := srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := srv.Stop(); err != nil {
		a.logger.Warn("Error stopping MCP server", "error", err)
	}

	if serveErr != nil {
		a.logger.Error("MCP server error", "error", serveErr)
		return serveErr
	}
	return nil
}
