package session

// handler reacts to one key press while its area is active.
type handler func(s *State, k Key)

// handlers is the dispatch table keyed by area. Every value returned by
// Areas must have an entry; router_test.go enforces this.
var handlers = map[Area]handler{
	AreaUnfocused: handleUnfocused,
	AreaResults:   handleResults,
	AreaVariables: handleVariables,
	AreaQuery:     handleQuery,
}

// HandleKey routes k to the handler of the active area.
// Releases and repeats are ignored.
func (s *State) HandleKey(k Key) {
	if k.Kind != KeyPress {
		return
	}
	if h, ok := handlers[s.area]; ok {
		h(s, k)
	}
}

func handleUnfocused(s *State, k Key) {
	switch k.Code {
	case KeyTab:
		s.area = AreaResults
	case KeyBackTab:
		s.area = AreaQuery
	case KeyRune:
		if k.Rune == 'q' {
			s.quit = true
		}
	}
}

func handleResults(s *State, k Key) {
	switch k.Code {
	case KeyTab:
		s.area = AreaVariables
	case KeyBackTab:
		s.area = AreaUnfocused
	case KeyPageUp:
		s.store.SelectNext()
	case KeyPageDown:
		s.store.SelectPrevious()
	}
}

func handleVariables(s *State, k Key) {
	switch k.Code {
	case KeyTab:
		s.area = AreaQuery
	case KeyBackTab:
		s.area = AreaResults
	}
}

func handleQuery(s *State, k Key) {
	e := &s.editor
	switch k.Code {
	case KeyTab:
		s.area = AreaUnfocused
	case KeyBackTab:
		s.area = AreaVariables
	case KeyRune:
		e.Insert(k.Rune)
	case KeyBackspace:
		e.DeleteBefore()
	case KeyDelete:
		e.DeleteAt()
	case KeyLeft:
		e.MoveLeft()
	case KeyRight:
		e.MoveRight()
	case KeyHome:
		e.Home()
	case KeyEnd:
		e.End()
	case KeyClearLine:
		e.Clear()
	case KeyEnter:
		e.Submit()
	}
}
