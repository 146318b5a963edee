package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/querie/pkg/gateway"
)

// ExecOptions holds options for the exec command.
type ExecOptions struct {
	Format string
	Input  string
}

// NewExecCommand creates the exec command.
func NewExecCommand() *cobra.Command {
	opts := &ExecOptions{}

	cmd := &cobra.Command{
		Use:   "exec [SQL]",
		Short: "Run one query and print the result",
		Long: `Run a single query against the configured target and print the result.

The query is taken from the arguments, from --input, or from standard input
when it is not a terminal. Values are printed exactly as the console shows
them.`,
		Example: `  # Execute SQL directly
  querie exec "SELECT 1"

  # Read the query from a file
  querie exec --input report.sql

  # Pipe a query and print JSON
  echo "SELECT * FROM users" | querie exec --format json

  # Query a SQLite file
  querie exec --type sqlite --database app.db "SELECT count(*) FROM events"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", FormatTable, "Output format: table, json, csv, md, yaml")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read SQL from file")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runExec(cmd *cobra.Command, args []string, opts *ExecOptions) error {
	if !IsFormat(opts.Format) {
		return fmt.Errorf("unknown format %q (use one of %s)", opts.Format, strings.Join(Formats(), ", "))
	}

	cctx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	query, err := readQuery(cmd.InOrStdin(), args, opts.Input)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	gw, err := gateway.Open(ctx, cctx.Cfg.Target.GatewayConfig(), cctx.Logger)
	if err != nil {
		return fmt.Errorf("connect to %s target: %w", cctx.Cfg.Target.Type, err)
	}
	defer func() { _ = gw.Close() }()

	cctx.Logger.Debug("executing query", slog.String("gateway", gw.Name()))
	set, err := gw.Execute(ctx, query)
	if err != nil {
		return err
	}
	return renderResultSet(cmd.OutOrStdout(), set, opts.Format)
}

// readQuery determines the SQL source: arguments, then the input file, then
// piped standard input.
func readQuery(stdin io.Reader, args []string, input string) (string, error) {
	var query string

	switch {
	case len(args) > 0:
		query = strings.Join(args, " ")
	case input != "":
		content, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		query = string(content)
	case !isTerminal(stdin):
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		query = string(content)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("no query given\nHint: pass SQL as an argument, with --input, or on standard input")
	}
	return query, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
