package text

import "strings"

// Line is one newline-delimited line of a Buffer.
type Line struct {
	List[rune]

	// node is this line's slot in the buffer's list of lines.
	node *Node[*Line]
}

// Next returns the following line of the buffer, or nil.
func (l *Line) Next() *Line {
	if l == nil || l.node == nil || l.node.next == nil {
		return nil
	}
	return l.node.next.Value
}

// Previous returns the preceding line of the buffer, or nil.
func (l *Line) Previous() *Line {
	if l == nil || l.node == nil || l.node.prev == nil {
		return nil
	}
	return l.node.prev.Value
}

// RuneAt returns the character at offset n without moving the row position.
func (l *Line) RuneAt(n int) (rune, bool) {
	return l.Peek(n)
}

// Runes returns a copy of the line's characters.
func (l *Line) Runes() []rune {
	out := make([]rune, 0, l.Len())
	for _, r := range l.All() {
		out = append(out, r)
	}
	return out
}

func (l *Line) String() string {
	var b strings.Builder
	for _, r := range l.All() {
		b.WriteRune(r)
	}
	return b.String()
}
