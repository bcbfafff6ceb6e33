// Package text implements the editable character buffer: cells grouped into
// lines, lines grouped into a buffer, each level with its own current
// position.
package text

import (
	"fmt"
	"iter"
	"strings"

	"github.com/xonecas/tategaki/internal/charset"
)

// Buffer is an ordered list of lines. The current line owns the current row.
type Buffer struct {
	lines List[*Line]
}

// NewBuffer returns a buffer holding one empty line.
func NewBuffer() *Buffer {
	b := &Buffer{}
	b.BreakLine()
	return b
}

// LineLen returns the number of lines.
func (b *Buffer) LineLen() int { return b.lines.Len() }

// LinePosition returns the index of the current line, -1 if none.
func (b *Buffer) LinePosition() int { return b.lines.Position() }

// RowLen returns the length of the current line, 0 if none.
func (b *Buffer) RowLen() int {
	line, err := b.lines.Current()
	if err != nil {
		return 0
	}
	return line.Len()
}

// RowPosition returns the row position within the current line, -1 if none.
func (b *Buffer) RowPosition() int {
	line, err := b.lines.Current()
	if err != nil {
		return -1
	}
	return line.Position()
}

// AtLine makes line n current. AtLine(-1) deselects every line.
func (b *Buffer) AtLine(n int) (*Line, error) {
	line, err := b.lines.At(n)
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	return line, nil
}

// CurrentLine returns the current line.
func (b *Buffer) CurrentLine() (*Line, error) {
	return b.lines.Current()
}

// AtRow moves the row position of the current line to n.
func (b *Buffer) AtRow(n int) (rune, error) {
	line, err := b.lines.Current()
	if err != nil {
		return 0, fmt.Errorf("row %d: %w", n, err)
	}
	r, err := line.At(n)
	if err != nil {
		return 0, fmt.Errorf("row: %w", err)
	}
	return r, nil
}

// At moves to line n, row m.
func (b *Buffer) At(n, m int) (rune, error) {
	if _, err := b.AtLine(n); err != nil {
		return 0, err
	}
	return b.AtRow(m)
}

// Insert adds r after the current row of the current line, creating a line
// when the buffer has none.
func (b *Buffer) Insert(r rune) *Cell {
	if b.lines.Len() == 0 {
		b.BreakLine()
	}
	line, err := b.lines.Current()
	if err != nil {
		line, _ = b.lines.At(0)
	}
	return line.Insert(r)
}

// BreakLine inserts an empty line after the current one and makes it current.
func (b *Buffer) BreakLine() *Line {
	line := &Line{}
	line.node = b.lines.Insert(line)
	return line
}

// SplitLine breaks the current line after its current row. Characters past
// the row position move to the new line, which becomes current with its row
// position at -1.
func (b *Buffer) SplitLine() *Line {
	cur, err := b.lines.Current()
	if err != nil {
		return b.BreakLine()
	}
	line := &Line{List: *cur.Split()}
	line.node = b.lines.Insert(line)
	return line
}

// Remove deletes the current character of the current line, or the line
// itself when it is empty.
func (b *Buffer) Remove() error {
	line, err := b.lines.Current()
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	if line.Len() > 0 {
		if _, err := line.Remove(); err != nil {
			return fmt.Errorf("remove row: %w", err)
		}
		return nil
	}
	if _, err := b.lines.Remove(); err != nil {
		return fmt.Errorf("remove line: %w", err)
	}
	line.node = nil
	return nil
}

// First returns the first line, or nil for a buffer without lines.
func (b *Buffer) First() *Line {
	if node := b.lines.First(); node != nil {
		return node.Value
	}
	return nil
}

// IndexOf returns the index of line within b, or -1.
func (b *Buffer) IndexOf(line *Line) int {
	if line == nil || line.node == nil {
		return -1
	}
	i, head := 0, line.node
	for ; head.prev != nil; head = head.prev {
		i++
	}
	if head != b.lines.First() {
		return -1
	}
	return i
}

// Lines iterates over the lines without moving the current position.
func (b *Buffer) Lines() iter.Seq2[int, *Line] {
	return b.lines.All()
}

// Runes returns the content with lines joined by '\n'.
func (b *Buffer) Runes() []rune {
	var out []rune
	for i, line := range b.lines.All() {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, line.Runes()...)
	}
	return out
}

func (b *Buffer) String() string {
	var sb strings.Builder
	for i, line := range b.lines.All() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.String())
	}
	return sb.String()
}

// Bytes returns the content encoded as UTF-8.
func (b *Buffer) Bytes() []byte {
	return charset.EncodeUTF8(b.Runes())
}

// UTF16 returns the content encoded as UTF-16 code units.
func (b *Buffer) UTF16() []uint16 {
	return charset.EncodeUTF16(b.Runes())
}
