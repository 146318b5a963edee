package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/querie/pkg/core"
	"github.com/leapstack-labs/querie/pkg/gateway"
)

// DefaultPollInterval bounds how long one iteration waits for input.
const DefaultPollInterval = 50 * time.Millisecond

// EventSource yields input events.
type EventSource interface {
	// Poll waits up to timeout for one event. ok is false when none arrived.
	Poll(ctx context.Context, timeout time.Duration) (key Key, ok bool, err error)
}

// Renderer draws one frame.
type Renderer interface {
	Render(Snapshot) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Snapshot) error

// Render calls f.
func (f RendererFunc) Render(s Snapshot) error {
	return f(s)
}

// Options configures a Loop.
type Options struct {
	PollInterval time.Duration
	Logger       *slog.Logger
	// Now is the clock used to stamp results; defaults to time.Now.
	Now func() time.Time
}

// Loop drives a session: render, poll one event, route it, then drain the
// submission queue through the gateway. It is the only writer of its State
// and runs on a single goroutine.
type Loop struct {
	state    *State
	gw       gateway.Gateway
	events   EventSource
	renderer Renderer

	pollInterval time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewLoop creates a loop over state.
func NewLoop(state *State, gw gateway.Gateway, events EventSource, renderer Renderer, opts Options) *Loop {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Loop{
		state:        state,
		gw:           gw,
		events:       events,
		renderer:     renderer,
		pollInterval: opts.PollInterval,
		logger:       opts.Logger,
		now:          opts.Now,
	}
}

// State returns the loop's session state.
func (l *Loop) State() *State {
	return l.state
}

// Run iterates until the session requests termination, ctx is cancelled,
// or input or rendering fails. Termination by the user returns nil.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("session started", slog.Duration("poll_interval", l.pollInterval))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := l.renderer.Render(l.state.Snapshot()); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		key, ok, err := l.events.Poll(ctx, l.pollInterval)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return fmt.Errorf("poll input: %w", err)
		}
		if ok {
			l.state.HandleKey(key)
		}

		if l.state.ShouldQuit() {
			l.logger.Debug("session terminated by user")
			return nil
		}

		if err := l.Drain(ctx); err != nil {
			return err
		}
	}
}

// Drain executes every queued submission in submission order and appends
// each outcome to the store. Gateway failures become error results and do
// not stop the drain.
func (l *Loop) Drain(ctx context.Context) error {
	for {
		query, ok := l.state.editor.Dequeue()
		if !ok {
			return nil
		}

		busy := l.state.Snapshot()
		busy.Busy = true
		if err := l.renderer.Render(busy); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		l.state.store.Append(l.execute(ctx, query))
	}
}

func (l *Loop) execute(ctx context.Context, query string) core.ResultSet {
	id := uuid.NewString()
	logger := l.logger.With(slog.String("query_id", id))
	logger.Debug("executing query", slog.String("query", query))

	start := l.now()
	set, err := l.gw.Execute(ctx, query)
	elapsed := l.now().Sub(start)

	if err != nil {
		qe := gateway.AsQueryError(err)
		logger.Warn("query failed",
			slog.String("category", qe.Category.String()),
			slog.String("error", qe.Message),
			slog.Duration("duration", elapsed))
		set = ErrorResult(qe)
	} else {
		logger.Info("query executed",
			slog.Int("rows", set.Len()),
			slog.Duration("duration", elapsed))
	}

	set.Query = query
	set.ExecutedAt = start
	set.Duration = elapsed
	return set
}

// ErrorColumn names the single column of an error result.
const ErrorColumn = "error"

// ErrorResult renders a gateway failure as a one-cell result set so it
// shows up in the results panel like any other outcome.
func ErrorResult(qe *gateway.QueryError) core.ResultSet {
	return core.ResultSet{
		Rows: []core.Row{{
			{Column: ErrorColumn, Value: qe.Error(), Kind: core.KindText},
		}},
		Failed: true,
	}
}
