package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/querie/internal/cli/config"
)

// CommandContext holds the common dependencies for command execution.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext reads the configuration and logger that the root
// command stored in the command context.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg, ok := config.GetConfig(cmd.Context())
	if !ok {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return &CommandContext{
		Cfg:    cfg,
		Logger: config.GetLogger(cmd.Context()),
	}, nil
}
