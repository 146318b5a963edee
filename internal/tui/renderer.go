package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leapstack-labs/querie/internal/session"
)

// ProgramRenderer hands snapshots to a running bubbletea program. It
// implements session.Renderer; drawing happens on the program's goroutine.
type ProgramRenderer struct {
	send func(tea.Msg)
}

// NewProgramRenderer returns a renderer sending to p.
func NewProgramRenderer(p *tea.Program) *ProgramRenderer {
	return &ProgramRenderer{send: p.Send}
}

// Render sends s to the program. Send returns without delivering once the
// program has exited.
func (r *ProgramRenderer) Render(s session.Snapshot) error {
	r.send(snapshotMsg(s))
	return nil
}
