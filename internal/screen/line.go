package screen

import (
	"github.com/xonecas/tategaki/internal/kinsoku"
	"github.com/xonecas/tategaki/internal/text"
)

// Line is one column of the grid: a run of characters from a single source
// line, starting at position and spanning rows characters.
type Line struct {
	source       *text.Line
	position     int
	rows         int
	next         *text.Line
	nextPosition int
}

// reset decides how many characters of source, starting at position, fit
// into a column of the given capacity.
func (l *Line) reset(capacity int, source *text.Line, position int, rules kinsoku.RuleSet) {
	*l = Line{source: source, position: position}
	if source == nil {
		return
	}

	maxLength := source.Len() - position
	length := min(capacity, maxLength)

	next, hasNext := source.RuneAt(position + length)
	nextNext, hasNextNext := source.RuneAt(position + length + 1)

	if hasNext && rules.IsDangling(next) && (!hasNextNext || !rules.IsLineStartForbidden(nextNext)) {
		length++
	} else {
		for n := length; n > 0; n-- {
			if n < maxLength {
				if r, _ := source.RuneAt(position + n); rules.IsLineStartForbidden(r) {
					continue
				}
			}
			if r, _ := source.RuneAt(position + n - 1); rules.IsLineEndForbidden(r) {
				continue
			}
			length = n
			break
		}
	}
	l.rows = length

	if (maxLength == length && maxLength >= capacity && source.Next() == nil) || maxLength > length {
		l.next, l.nextPosition = source, position+length
	} else {
		l.next, l.nextPosition = source.Next(), 0
	}
}

// CharacterAt returns the character shown at row. Probing past the column
// is not an error.
func (l *Line) CharacterAt(row int) (rune, bool) {
	if l.source == nil || row < 0 || row >= l.rows {
		return 0, false
	}
	return l.source.RuneAt(l.position + row)
}

// Source returns the text line shown, nil for a blank column.
func (l *Line) Source() *text.Line { return l.source }

// Position returns the offset of row 0 within the source line.
func (l *Line) Position() int { return l.position }

// Rows returns how many characters the column shows.
func (l *Line) Rows() int { return l.rows }

// Next returns the text line the following column starts from.
func (l *Line) Next() *text.Line { return l.next }

// NextPosition returns the offset the following column starts from.
func (l *Line) NextPosition() int { return l.nextPosition }

// continues reports whether the following column resumes the source line
// right after row.
func (l *Line) continues(row int) bool {
	return l.source != nil && l.next == l.source && l.nextPosition == l.position+row
}
