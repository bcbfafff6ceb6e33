// Package screen lays a text buffer out as a fixed grid of vertical columns
// and keeps a cursor on it across edits.
package screen

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/tategaki/internal/kinsoku"
	"github.com/xonecas/tategaki/internal/text"
)

// Model is a grid of Lines over a text buffer. The buffer must only be
// mutated through the model once the model exists.
//
// Hooks run synchronously inside the operation that triggers them and must
// not call back into the model.
type Model struct {
	buffer *text.Buffer
	rules  kinsoku.RuleSet
	lines  []Line
	rows   int
	origin int

	cursorLine int
	cursorRow  int
	pendingCR  bool

	onCursorMoved func(line, row int)
	onLineUpdated func(line int)
}

// Option configures a Model.
type Option func(*Model)

// WithRules replaces the default kinsoku rules.
func WithRules(rules kinsoku.RuleSet) Option {
	return func(m *Model) {
		m.rules = rules
	}
}

// New lays out lines columns of rows characters each, starting at position
// within the first line of buffer.
func New(lines, rows int, buffer *text.Buffer, position int, opts ...Option) (*Model, error) {
	if lines <= 0 || rows <= 0 {
		return nil, fmt.Errorf("screen %dx%d: %w", lines, rows, text.ErrOutOfRange)
	}
	first := buffer.First()
	if first != nil && (position < 0 || position > first.Len()) {
		return nil, fmt.Errorf("screen start %d of %d: %w", position, first.Len(), text.ErrOutOfRange)
	}
	m := &Model{
		buffer: buffer,
		rules:  kinsoku.Default(),
		lines:  make([]Line, lines),
		rows:   rows,
		origin: position,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.layout(0, first, position, nil)
	return m, nil
}

// Buffer returns the underlying text buffer.
func (m *Model) Buffer() *text.Buffer { return m.buffer }

// Lines returns the number of columns.
func (m *Model) Lines() int { return len(m.lines) }

// Rows returns the nominal capacity of a column.
func (m *Model) Rows() int { return m.rows }

// Line returns column n.
func (m *Model) Line(n int) (Line, error) {
	if n < 0 || n >= len(m.lines) {
		return Line{}, fmt.Errorf("line %d of %d: %w", n, len(m.lines), text.ErrOutOfRange)
	}
	return m.lines[n], nil
}

// CursorLine returns the column holding the cursor.
func (m *Model) CursorLine() int { return m.cursorLine }

// CursorRow returns the cursor's row within its column.
func (m *Model) CursorRow() int { return m.cursorRow }

// NextLine returns the text line a following page would start from, nil when
// the grid shows the end of the buffer.
func (m *Model) NextLine() *text.Line { return m.lines[len(m.lines)-1].next }

// NextLinePosition returns the offset a following page would start from.
func (m *Model) NextLinePosition() int { return m.lines[len(m.lines)-1].nextPosition }

// NeedsPagination reports whether the buffer has positions past the last
// column, including the end of a text that exactly fills the grid.
func (m *Model) NeedsPagination() bool {
	return m.NextLine() != nil
}

// OnCursorMoved registers fn to run whenever the cursor is set.
func (m *Model) OnCursorMoved(fn func(line, row int)) { m.onCursorMoved = fn }

// OnLineUpdated registers fn to run for every column that is laid out again.
func (m *Model) OnLineUpdated(fn func(line int)) { m.onLineUpdated = fn }

// SetCursor places the cursor without validation. A pending CR no longer
// absorbs the next LF.
func (m *Model) SetCursor(line, row int) {
	m.cursorLine, m.cursorRow = line, row
	m.pendingCR = false
	if m.onCursorMoved != nil {
		m.onCursorMoved(line, row)
	}
}

// CharacterAt returns the character at (line, row), or "" for an empty cell.
// row may equal the column capacity, where a dangling character hangs.
func (m *Model) CharacterAt(line, row int) (string, error) {
	if line < 0 || line >= len(m.lines) || row < 0 || row > m.rows {
		return "", fmt.Errorf("character at %d,%d: %w", line, row, text.ErrOutOfRange)
	}
	r, ok := m.lines[line].CharacterAt(row)
	if !ok {
		return "", nil
	}
	return string(r), nil
}

// Insert adds r at the cursor and moves the cursor past it. CR and LF split
// the line; an LF directly after an inserted CR is absorbed.
func (m *Model) Insert(r rune) error {
	if m.pendingCR && r == '\n' {
		m.pendingCR = false
		return nil
	}
	m.pendingCR = false

	source, offset, err := m.seek(0)
	if err != nil {
		return fmt.Errorf("insert %q: %w", r, err)
	}
	if r == '\r' || r == '\n' {
		m.buffer.SplitLine()
	} else {
		m.buffer.Insert(r)
	}
	m.relayout(source)

	line, row := m.locate(source, offset)
	m.cursorLine, m.cursorRow = line, row
	if next, ok := m.forward(); ok {
		line, row = next.line, next.row
	}
	m.SetCursor(line, row)
	m.pendingCR = r == '\r'
	return nil
}

// InsertString inserts every character of s in order.
func (m *Model) InsertString(s string) error {
	for _, r := range s {
		if err := m.Insert(r); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the character under the cursor. It reports false when the
// cursor sits at the end of its text line.
func (m *Model) Remove() (bool, error) {
	m.pendingCR = false
	source, offset := m.anchor()
	if source == nil || offset >= source.Len() {
		return false, nil
	}
	if _, _, err := m.seek(1); err != nil {
		return false, fmt.Errorf("remove: %w", err)
	}
	if err := m.buffer.Remove(); err != nil {
		return false, fmt.Errorf("remove: %w", err)
	}
	m.relayout(source)
	m.SetCursor(m.locate(source, offset))
	return true, nil
}

// MoveForward advances the cursor by one position.
func (m *Model) MoveForward() bool {
	m.pendingCR = false
	next, ok := m.forward()
	if ok {
		m.SetCursor(next.line, next.row)
	}
	return ok
}

// MoveBackward moves the cursor back by one position.
func (m *Model) MoveBackward() bool {
	m.pendingCR = false
	if m.cursorLine < 0 || m.cursorLine >= len(m.lines) {
		return false
	}
	if m.cursorRow > 0 {
		m.SetCursor(m.cursorLine, m.cursorRow-1)
		return true
	}
	if m.cursorLine == 0 {
		return false
	}
	prev := &m.lines[m.cursorLine-1]
	if prev.source == nil {
		return false
	}
	row := prev.rows
	if prev.continues(prev.rows) {
		row--
	}
	row = min(row, m.rows)
	m.SetCursor(m.cursorLine-1, row)
	return true
}

type cell struct {
	line, row int
}

// forward finds the position after the cursor. The end of a column is a
// stop of its own unless the next column resumes there or it lies below
// the grid.
func (m *Model) forward() (cell, bool) {
	if m.cursorLine < 0 || m.cursorLine >= len(m.lines) {
		return cell{}, false
	}
	cur := &m.lines[m.cursorLine]
	next := m.cursorRow + 1
	if cur.source != nil && (next < cur.rows || (next == cur.rows && next <= m.rows && !cur.continues(next))) {
		return cell{m.cursorLine, next}, true
	}
	if m.cursorLine+1 < len(m.lines) && m.lines[m.cursorLine+1].source != nil {
		return cell{m.cursorLine + 1, 0}, true
	}
	return cell{}, false
}

// anchor maps the cursor to a text line and offset. A cursor on a blank
// column resolves to the end of the last text shown before it.
func (m *Model) anchor() (*text.Line, int) {
	for i := min(m.cursorLine, len(m.lines)-1); i >= 0; i-- {
		l := &m.lines[i]
		if l.source == nil {
			continue
		}
		if i == m.cursorLine {
			return l.source, min(l.position+max(m.cursorRow, 0), l.source.Len())
		}
		return l.source, l.position + l.rows
	}
	return nil, 0
}

// seek positions the buffer on the cursor's text line with the row position
// at the cursor offset plus delta minus one, so an insert lands at the cursor
// (delta 0) or a remove takes the character under it (delta 1).
func (m *Model) seek(delta int) (*text.Line, int, error) {
	source, offset := m.anchor()
	if source == nil {
		return nil, 0, fmt.Errorf("no text under cursor %d,%d: %w", m.cursorLine, m.cursorRow, text.ErrOutOfRange)
	}
	if _, err := m.buffer.AtLine(m.buffer.IndexOf(source)); err != nil {
		return nil, 0, err
	}
	if _, err := m.buffer.AtRow(offset + delta - 1); err != nil {
		return nil, 0, err
	}
	return source, offset, nil
}

// locate finds the cell showing offset of source. An offset at the end of a
// column maps there unless the following column resumes at that offset, or
// the end lies below the grid, in which case it maps to the next column.
func (m *Model) locate(source *text.Line, offset int) (int, int) {
	fallback := -1
	for i := range m.lines {
		l := &m.lines[i]
		if l.source != source {
			continue
		}
		if offset >= l.position && offset < l.position+l.rows {
			return i, offset - l.position
		}
		if fallback < 0 && offset == l.position+l.rows && !l.continues(l.rows) {
			fallback = i
		}
	}
	if fallback >= 0 {
		row := offset - m.lines[fallback].position
		switch {
		case row <= m.rows:
			return fallback, row
		case fallback+1 < len(m.lines):
			return fallback + 1, 0
		default:
			return fallback, m.rows
		}
	}
	last := len(m.lines) - 1
	return last, min(m.lines[last].rows, m.rows)
}

// relayout lays out again from the first column showing source.
func (m *Model) relayout(source *text.Line) {
	for i := range m.lines {
		if m.lines[i].source == source {
			m.layout(i, source, m.lines[i].position, source)
			return
		}
	}
	m.layout(0, m.buffer.First(), m.origin, nil)
}

// layout fills columns from start onward, beginning at (source, position).
// With edited set, it stops at the first later column that shows another
// text line and came out unchanged.
func (m *Model) layout(start int, source *text.Line, position int, edited *text.Line) {
	end := len(m.lines)
	for i := start; i < len(m.lines); i++ {
		before := m.lines[i]
		l := &m.lines[i]
		l.reset(m.rows, source, position, m.rules)
		if m.onLineUpdated != nil {
			m.onLineUpdated(i)
		}
		if edited != nil && i > start && l.source != edited && before == *l {
			end = i + 1
			break
		}
		source, position = l.next, l.nextPosition
	}
	log.Trace().Int("from", start).Int("to", end).Msg("screen layout")
}

// String dumps one column per line: its characters, then where the next
// column starts as line:offset, or EOF.
func (m *Model) String() string {
	out := make([]string, len(m.lines))
	for i := range m.lines {
		l := &m.lines[i]
		var b strings.Builder
		for row := 0; row < l.rows; row++ {
			if r, ok := l.CharacterAt(row); ok {
				b.WriteRune(r)
			}
		}
		if l.next == nil {
			b.WriteString(" -> EOF")
		} else {
			fmt.Fprintf(&b, " -> %d:%d", m.buffer.IndexOf(l.next), l.nextPosition)
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}
