package session

import "github.com/leapstack-labs/querie/pkg/core"

// State is the complete session state. It owns the editor and the result
// store; the router keeps no state of its own.
type State struct {
	area   Area
	editor Editor
	store  Store
	quit   bool
}

// NewState returns an empty session focused on AreaUnfocused.
func NewState() *State {
	return &State{area: AreaUnfocused}
}

// Area returns the active area.
func (s *State) Area() Area {
	return s.area
}

// Editor returns the query editor.
func (s *State) Editor() *Editor {
	return &s.editor
}

// Store returns the result store.
func (s *State) Store() *Store {
	return &s.store
}

// ShouldQuit reports whether termination was requested.
func (s *State) ShouldQuit() bool {
	return s.quit
}

// Snapshot is an immutable copy of everything a frame needs.
type Snapshot struct {
	Area   Area
	Status string

	Query string
	// Cursor is the character offset of the cursor in Query.
	// ShowCursor is set only while the query panel has focus.
	Cursor     int
	ShowCursor bool

	Result      core.ResultSet
	HasResult   bool
	ResultIndex int
	ResultCount int

	// Busy is set while a queued query is executing; Pending counts the
	// submissions still waiting behind it.
	Busy    bool
	Pending int
}

// Snapshot captures the state for rendering.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Area:        s.area,
		Status:      s.area.Status(),
		Query:       s.editor.Text(),
		Cursor:      s.editor.Cursor(),
		ShowCursor:  s.area == AreaQuery,
		ResultIndex: s.store.Selected(),
		ResultCount: s.store.Len(),
		Pending:     s.editor.Pending(),
	}
	snap.Result, snap.HasResult = s.store.Current()
	return snap
}
