package session

// KeyCode identifies a key independent of any terminal library.
type KeyCode int

// Key codes understood by the router.
const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyTab
	KeyBackTab
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyClearLine
)

// KeyKind distinguishes presses from releases and repeats on backends
// that report them.
type KeyKind int

// Key kinds.
const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// Key is one input event.
type Key struct {
	Code KeyCode
	// Rune is set when Code is KeyRune.
	Rune rune
	Kind KeyKind
}

// Press returns a press event for code.
func Press(code KeyCode) Key {
	return Key{Code: code, Kind: KeyPress}
}

// Rune returns a press event for a printable character.
func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Kind: KeyPress}
}

// Runes returns one press event per character of s.
func Runes(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Rune(r))
	}
	return keys
}
