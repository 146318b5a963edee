// Package cli provides the command-line interface for querie.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/querie/internal/cli/commands"
	"github.com/leapstack-labs/querie/internal/cli/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// logHandle owns the log file opened for one invocation.
type logHandle struct {
	closer io.Closer
	closed bool
}

// Close closes the log file, if one was opened. It is safe to call twice.
func (h *logHandle) Close() error {
	if h.closer == nil || h.closed {
		return nil
	}
	h.closed = true
	return h.closer.Close()
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *logHandle) {
	var cfgFile string
	logs := &logHandle{}

	rootCmd := &cobra.Command{
		Use:   "querie",
		Short: "Querie - interactive query console",
		Long: `Querie is a keyboard-driven query console for PostgreSQL, SQLite and DuckDB.

Type a query into the query panel, press enter to run it, and page through
the results. Run without a subcommand to start the console.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// The console owns the terminal; only other commands log to stderr.
			var fallback io.Writer
			if !isConsole(cmd) {
				fallback = cmd.ErrOrStderr()
			}
			logger, closer, err := config.NewLogger(cfg.Log, fallback)
			if err != nil {
				return err
			}
			logs.closer = closer

			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunConsole(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./querie.yaml)")
	flags.String("dsn", "", "Connection string for the target (e.g. \"host=localhost user=postgres\")")
	flags.String("type", "", "Target type: postgres, sqlite, duckdb")
	flags.String("database", "", "Database name, or file path for sqlite and duckdb")
	flags.Duration("poll-interval", config.DefaultPollInterval, "Longest wait for input before redrawing")
	flags.String("log-file", "", "Append diagnostic logs to this file")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.Bool("no-color", false, "Disable colours")

	_ = rootCmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"postgres", "sqlite", "duckdb"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewConsoleCommand())
	rootCmd.AddCommand(commands.NewExecCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(commands.BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd, logs
}

func isConsole(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "console"
}

// executeRoot runs root and closes the log file afterwards, including when
// the command failed. Cobra skips post-run hooks on failure.
func executeRoot(root *cobra.Command, logs *logHandle) error {
	err := root.Execute()
	if cerr := logs.Close(); err == nil {
		err = cerr
	}
	return err
}

// Execute runs the root command.
func Execute() error {
	rootCmd, logs := newRootCmd()
	if err := executeRoot(rootCmd, logs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for querie.

To load completions:

Bash:
  $ source <(querie completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ querie completion zsh > "${fpath[1]}/_querie"

Fish:
  $ querie completion fish | source

PowerShell:
  PS> querie completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
