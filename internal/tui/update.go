package tui

import (
	tea "charm.land/bubbletea/v2"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)

	// -- Paste ---------------------------------------------------------------
	case tea.PasteMsg:
		m.insertText(msg.Content)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	// -- Autosave ------------------------------------------------------------
	case autosaveTickMsg:
		if m.dirty {
			m.store.Autosave(m.doc, m.screen.Buffer().String())
			m.dirty = false
		}
		return m, m.autosaveTick()
	}

	return m, nil
}
