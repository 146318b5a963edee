package session

import "github.com/leapstack-labs/querie/pkg/core"

// Store is the append-only list of completed result sets with a selection.
// When the store is empty there is no valid selection.
type Store struct {
	sets     []core.ResultSet
	selected int
}

// Append adds set and selects it.
func (s *Store) Append(set core.ResultSet) {
	s.sets = append(s.sets, set)
	s.selected = len(s.sets) - 1
}

// Len returns the number of result sets.
func (s *Store) Len() int {
	return len(s.sets)
}

// Selected returns the selected index, or -1 when the store is empty.
func (s *Store) Selected() int {
	if len(s.sets) == 0 {
		return -1
	}
	return s.selected
}

// SelectNext moves the selection toward the newest set, stopping at the last.
func (s *Store) SelectNext() {
	if len(s.sets) == 0 {
		return
	}
	s.selected = min(s.selected+1, len(s.sets)-1)
}

// SelectPrevious moves the selection toward the oldest set, stopping at 0.
func (s *Store) SelectPrevious() {
	if len(s.sets) == 0 {
		return
	}
	s.selected = max(s.selected-1, 0)
}

// Current returns the selected set. The second result is false when no
// result exists yet.
func (s *Store) Current() (core.ResultSet, bool) {
	if len(s.sets) == 0 {
		return core.ResultSet{}, false
	}
	return s.sets[s.selected], true
}
