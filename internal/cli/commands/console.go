package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/leapstack-labs/querie/internal/session"
	"github.com/leapstack-labs/querie/internal/tui"
	"github.com/leapstack-labs/querie/pkg/gateway"
)

// ErrNotTerminal is returned when the console is started without a TTY.
var ErrNotTerminal = errors.New("the console needs an interactive terminal\nHint: use 'querie exec' to run queries from scripts or pipes")

// NewConsoleCommand creates the console command. The root command runs the
// same console when invoked without a subcommand.
func NewConsoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Start the interactive query console",
		Long: `Start the interactive query console.

Keys:
  tab / shift+tab   move focus between panels
  enter             run the query (query panel)
  pgup / pgdown     show a newer / older result (results panel)
  ctrl+u            clear the query (query panel)
  q                 quit (when no panel is focused)
  ctrl+c            exit immediately`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunConsole(cmd)
		},
	}
}

// RunConsole connects to the configured target and runs the console until
// the user quits.
func RunConsole(cmd *cobra.Command) error {
	cctx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	in, out := os.Stdin, os.Stdout
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return ErrNotTerminal
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	gw, err := gateway.Open(ctx, cctx.Cfg.Target.GatewayConfig(), cctx.Logger)
	if err != nil {
		return fmt.Errorf("connect to %s target: %w", cctx.Cfg.Target.Type, err)
	}
	defer func() { _ = gw.Close() }()

	return runConsole(ctx, cctx, gw, in, out)
}

func runConsole(ctx context.Context, cctx *CommandContext, gw gateway.Gateway, in, out *os.File) error {
	logger := cctx.Logger

	events := tui.NewEvents(tui.DefaultEventBuffer)
	model := tui.NewModel(events, tui.Options{
		NoColor: cctx.Cfg.NoColor,
		Output:  out,
		Logger:  logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, stopLoop := context.WithCancel(gctx)
	defer stopLoop()

	p := tea.NewProgram(model,
		tea.WithContext(gctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	loop := session.NewLoop(session.NewState(), gw, events, tui.NewProgramRenderer(p), session.Options{
		PollInterval: cctx.Cfg.PollInterval,
		Logger:       logger,
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				p.Kill()
				err = fmt.Errorf("session panic: %v", r)
			}
		}()
		defer p.Quit()
		return loop.Run(loopCtx)
	})

	g.Go(func() error {
		defer stopLoop()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	})

	err := g.Wait()
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		logger.Info("console closed", slog.Int("results", loop.State().Store().Len()))
		return nil
	default:
		return err
	}
}
