package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/rs/zerolog/log"
)

// handleKeyPress processes key events.
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.status, m.warn = "", false

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.save()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Forward):
		m.screen.MoveForward()
	case key.Matches(msg, m.keys.Backward):
		m.screen.MoveBackward()
	case key.Matches(msg, m.keys.NextColumn):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.PrevColumn):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.Newline):
		m.insertText("\n")
	case key.Matches(msg, m.keys.Delete):
		m.remove()
	case key.Matches(msg, m.keys.Backspace):
		if m.screen.MoveBackward() {
			m.remove()
		}
	default:
		if msg.Text != "" {
			m.insertText(msg.Text)
		}
	}
	return m, nil
}

func (m *Model) insertText(s string) {
	if err := m.screen.InsertString(s); err != nil {
		log.Warn().Err(err).Msg("insert failed")
		m.setWarning("insert failed")
		return
	}
	m.dirty = true
	if m.screen.NeedsPagination() {
		log.Debug().Int("line", m.screen.CursorLine()).Int("row", m.screen.CursorRow()).Msg("grid full")
	}
}

func (m *Model) remove() {
	removed, err := m.screen.Remove()
	if err != nil {
		log.Warn().Err(err).Msg("remove failed")
		m.setWarning("remove failed")
		return
	}
	if removed {
		m.dirty = true
	}
}

// moveColumn jumps delta columns, keeping the row where the target column
// is long enough.
func (m *Model) moveColumn(delta int) {
	target, err := m.screen.Line(m.screen.CursorLine() + delta)
	if err != nil || target.Source() == nil {
		return
	}
	m.screen.SetCursor(m.screen.CursorLine()+delta, min(m.screen.CursorRow(), target.Rows(), m.screen.Rows()))
}

func (m *Model) save() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.doc, m.screen.Buffer().String()); err != nil {
		log.Warn().Err(err).Str("doc", m.doc).Msg("failed to save document")
		m.setWarning("save failed")
		return
	}
	m.dirty = false
	m.status = "saved"
}

func (m *Model) setWarning(s string) {
	m.status, m.warn = s, true
}
