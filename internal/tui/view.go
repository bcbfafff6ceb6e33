package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/xonecas/tategaki/internal/constants"
)

// cellWidth is the terminal width of one grid cell.
const cellWidth = 2

// verticalForms maps characters to their vertical presentation forms.
var verticalForms = map[rune]rune{
	'、': '︑',
	'。': '︒',
	'，': '︐',
	'：': '︓',
	'；': '︔',
	'！': '︕',
	'？': '︖',
	'「': '﹁',
	'」': '﹂',
	'『': '﹃',
	'』': '﹄',
	'（': '︵',
	'）': '︶',
	'【': '︻',
	'】': '︼',
	'〈': '︿',
	'〉': '﹀',
	'《': '︽',
	'》': '︾',
	'…': '︙',
	'ー': '丨',
	'―': '︱',
}

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	return v
}

// renderContent produces the string content for the view.
func (m Model) renderContent() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	// The extra row is where dangling punctuation hangs.
	for row := 0; row <= m.screen.Rows(); row++ {
		line := m.renderRow(row)
		if w := ansi.StringWidth(line); w > m.width {
			// Columns start on the right, so overflow is cut on the left.
			line = ansi.TruncateLeft(line, w-m.width, "")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	m.renderStatusBar(&b)
	return b.String()
}

// renderRow lays out one row across all columns, right to left.
func (m Model) renderRow(row int) string {
	n := m.screen.Lines()
	cells := make([]string, 0, n)
	for line := n - 1; line >= 0; line-- {
		ch, _ := m.screen.CharacterAt(line, row)
		cell := padCell(ch)
		if line == m.screen.CursorLine() && row == m.screen.CursorRow() {
			cell = m.styles.Cursor.Render(cell)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}

// padCell turns ch into exactly cellWidth terminal cells.
func padCell(ch string) string {
	if ch == "" {
		return strings.Repeat(" ", cellWidth)
	}
	r := []rune(ch)[0]
	if v, ok := verticalForms[r]; ok {
		r = v
	}
	s := string(r)
	if w := runewidth.RuneWidth(r); w < cellWidth {
		s += strings.Repeat(" ", cellWidth-w)
	}
	return s
}

// renderStatusBar writes the status separator and bar.
func (m Model) renderStatusBar(b *strings.Builder) {
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	left := " " + m.doc
	if m.dirty {
		left += "*"
	}
	if m.status != "" {
		style := m.styles.StatusText
		if m.warn {
			style = m.styles.StatusWarn
		}
		left += "  " + style.Render(m.status)
	}

	right := fmt.Sprintf("%d:%d ", m.screen.CursorLine()+1, m.screen.CursorRow()+1)
	if m.screen.NeedsPagination() {
		right = constants.ContinuedMark + " " + right
	}

	gap := max(m.width-ansi.StringWidth(left)-ansi.StringWidth(right), 0)
	b.WriteString(m.styles.StatusText.Render(left))
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(m.styles.StatusText.Render(right))
}
