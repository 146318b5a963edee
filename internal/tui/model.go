package tui

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leapstack-labs/querie/internal/session"
)

// snapshotMsg delivers a frame from the session loop.
type snapshotMsg session.Snapshot

// Options configures the console model.
type Options struct {
	NoColor bool
	// Output is where the program draws; used to pick the colour profile.
	Output io.Writer
	Logger *slog.Logger
	Keys   *KeyMap
}

// Model is the bubbletea model of the console. It holds no session state of
// its own: keys are forwarded to the session loop through Events and the
// screen shows the last snapshot the loop sent.
type Model struct {
	keys    KeyMap
	events  *Events
	styles  Styles
	spinner spinner.Model
	logger  *slog.Logger

	snap   session.Snapshot
	width  int
	height int
}

// NewModel creates the console model forwarding keys into events.
func NewModel(events *Events, opts Options) Model {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	styles := NewStyles(opts.Output, opts.NoColor)
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.StatusDetail

	return Model{
		keys:    keys,
		events:  events,
		styles:  styles,
		spinner: s,
		logger:  opts.Logger,
		snap:    session.NewState().Snapshot(),
	}
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(Title)
}

// Update handles terminal and session messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Interrupt) {
			return m, tea.Quit
		}
		for _, k := range m.keys.Translate(msg) {
			if !m.events.Push(k) {
				m.logger.Warn("input queue full, key dropped", slog.String("key", msg.String()))
			}
		}
		return m, nil

	case snapshotMsg:
		wasBusy := m.snap.Busy
		m.snap = session.Snapshot(msg)
		if m.snap.Busy && !wasBusy {
			return m, m.spinner.Tick
		}
		return m, nil

	case spinner.TickMsg:
		if !m.snap.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the last snapshot.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return layout{
		width:   m.width,
		height:  m.height,
		styles:  m.styles,
		keys:    m.keys,
		spinner: m.spinner.View(),
	}.render(m.snap)
}

// Snapshot returns the frame currently shown.
func (m Model) Snapshot() session.Snapshot {
	return m.snap
}
