package tui

import (
	tea "charm.land/bubbletea/v2"
)

// handleResize applies a window size change.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
}
