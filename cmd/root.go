package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"macclip/pkg/completions"
	"macclip/pkg/config"
	"macclip/pkg/errors"
	"macclip/pkg/logger"
	"macclip/pkg/query"

	"github.com/spf13/cobra"
)

const (
	unknownValue = "unknown"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var configPath string
var globalTimeout time.Duration
var outputFormat string
var logLevel string
var preferFormats []string

// loadedConfig is set by the root PersistentPreRunE before any subcommand runs.
var loadedConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "macclip",
	Short: "Read the host clipboard as typed content",
	Long: `macclip reads the current clipboard and returns it as plain text, image
bytes or opaque binary, whatever native format the clipboard holds. It runs as
an MCP server on stdio (macclip serve) or as a one-shot command (macclip get).
Every read queries the host again; nothing is cached.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		// Log level: explicit flag, then env var, then config file
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		} else if envLevel := os.Getenv("MACCLIP_LOG_LEVEL"); envLevel != "" {
			level = envLevel
		}
		logger.SetLevel(level)

		if cmd.Flags().Changed("timeout") {
			if globalTimeout < 0 {
				return errors.ValidationError("--timeout must not be negative")
			}
			cfg.Host.Timeout = globalTimeout
		}

		if cmd.Flags().Changed("prefer") {
			for _, f := range preferFormats {
				if err := query.ValidateFormat(f); err != nil {
					return errors.ValidationError(fmt.Sprintf("invalid --prefer format: %v", err))
				}
			}
			cfg.Formats.Preferred = preferFormats
		}

		loadedConfig = cfg
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "macclip version %s\n", ver)
		fmt.Fprintf(out, "Built: %s\n", bt)
		fmt.Fprintf(out, "Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

// GetContext returns a context cancelled on interrupt. The host timeout is
// applied per query by the backend, not here.
func GetContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/macclip/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&globalTimeout, "timeout", 0, "Timeout for a single clipboard query, 0 for none (e.g., 2s)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringSliceVar(&preferFormats, "prefer", nil, "Formats to request, most preferred first (e.g., text,PNGf,DATA)")

	completions.RegisterCompletions(rootCmd)
}
