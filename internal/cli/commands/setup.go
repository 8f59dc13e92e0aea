// Package commands implements the nblint subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/notebook-labs/nblint/internal/cli/config"
	"github.com/notebook-labs/nblint/internal/cli/output"
)

// CommandContext bundles the dependencies every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the command's context and
// the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables. The fallback matters for commands executed outside
// the root command's PersistentPreRunE, e.g. in tests.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Interpreter:  getEnvOrDefault("NBLINT_INTERPRETER", config.DefaultInterpreter),
		EnvFile:      os.Getenv("NBLINT_ENV_FILE"),
		Notebook:     os.Getenv("NBLINT_NOTEBOOK"),
		Strict:       os.Getenv("NBLINT_STRICT") == "true",
		Verbose:      os.Getenv("NBLINT_VERBOSE") == "true",
		OutputFormat: getEnvOrDefault("NBLINT_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
