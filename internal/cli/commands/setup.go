// Package commands implements the kabidiff subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/kabitools/kabidiff/internal/cli/config"
	"github.com/kabitools/kabidiff/internal/cli/output"
	"github.com/kabitools/kabidiff/internal/corpus"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's
// configuration and context.
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

// LoadCorpus loads one symtypes tree with the configured suffix.
func (c *CommandContext) LoadCorpus(dir string) (*corpus.Corpus, error) {
	return corpus.Load(dir, c.Cfg.Suffix, c.Logger)
}

// getConfig returns the current configuration. It uses
// config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		Suffix:       getEnvOrDefault("KABIDIFF_SUFFIX", config.DefaultSuffix),
		OutputFormat: getEnvOrDefault("KABIDIFF_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("KABIDIFF_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
