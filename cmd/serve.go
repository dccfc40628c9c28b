package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"macclip/pkg/errors"
	"macclip/pkg/logger"
	"macclip/pkg/mcpserver"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Serve the clipboard over the Model Context Protocol on stdin/stdout.

Exposes the getClipboardContents tool and the clipboard://contents resource.
Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadedConfig
		reader, err := newReader(cfg)
		if err != nil {
			return err
		}

		srv := mcpserver.New(cfg.Server.Name, cfg.Server.Version, reader)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info().
			Str("backend", cfg.Host.Backend).
			Strs("formats", cfg.Formats.Preferred).
			Dur("timeout", cfg.Host.Timeout).
			Msg("MCP server starting on stdio")

		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			return errors.Wrap(err, "MCP server stopped")
		}
		logger.Info().Msg("MCP server stopped")
		return nil
	},
}
