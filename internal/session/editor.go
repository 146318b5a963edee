package session

// Editor is the query text buffer. The text is stored as runes so every
// cursor position is a character boundary; the cursor stays within
// [0, Len()].
type Editor struct {
	text   []rune
	cursor int
	queue  []string
}

// Text returns the buffer contents.
func (e *Editor) Text() string {
	return string(e.text)
}

// Cursor returns the cursor position in characters.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the number of characters in the buffer.
func (e *Editor) Len() int {
	return len(e.text)
}

// Insert puts r at the cursor and advances the cursor past it.
func (e *Editor) Insert(r rune) {
	e.text = append(e.text, 0)
	copy(e.text[e.cursor+1:], e.text[e.cursor:])
	e.text[e.cursor] = r
	e.cursor++
}

// DeleteBefore removes the character before the cursor. No-op at position 0.
func (e *Editor) DeleteBefore() {
	if e.cursor == 0 {
		return
	}
	e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
	e.cursor--
}

// DeleteAt removes the character under the cursor. No-op at the end.
func (e *Editor) DeleteAt() {
	if e.cursor >= len(e.text) {
		return
	}
	e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
}

// MoveLeft moves the cursor one character left, stopping at 0.
func (e *Editor) MoveLeft() {
	e.setCursor(e.cursor - 1)
}

// MoveRight moves the cursor one character right, stopping at the end.
func (e *Editor) MoveRight() {
	e.setCursor(e.cursor + 1)
}

// Home moves the cursor to the start of the buffer.
func (e *Editor) Home() {
	e.cursor = 0
}

// End moves the cursor past the last character.
func (e *Editor) End() {
	e.cursor = len(e.text)
}

// Clear empties the buffer. Pending submissions are kept.
func (e *Editor) Clear() {
	e.text = e.text[:0]
	e.cursor = 0
}

// Submit queues a copy of the current text. The buffer is left as is.
func (e *Editor) Submit() {
	e.queue = append(e.queue, string(e.text))
}

// Pending returns the number of queued submissions.
func (e *Editor) Pending() int {
	return len(e.queue)
}

// Queued returns a copy of the queued submissions, oldest first.
func (e *Editor) Queued() []string {
	out := make([]string, len(e.queue))
	copy(out, e.queue)
	return out
}

// Dequeue removes and returns the oldest submission.
func (e *Editor) Dequeue() (string, bool) {
	if len(e.queue) == 0 {
		return "", false
	}
	q := e.queue[0]
	e.queue[0] = ""
	e.queue = e.queue[1:]
	return q, true
}

func (e *Editor) setCursor(pos int) {
	e.cursor = max(0, min(pos, len(e.text)))
}
