// Package tui renders a screen model as a vertical manuscript in the terminal.
package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/tategaki/internal/screen"
	"github.com/xonecas/tategaki/internal/store"
)

// Model is the bubbletea model wrapping a screen model.
type Model struct {
	screen *screen.Model
	store  *store.Store
	doc    string

	keys   keyMap
	styles Styles

	width  int
	height int

	autosave time.Duration
	dirty    bool
	status   string
	warn     bool
}

// New creates a TUI editing doc on sm. st may be nil, in which case nothing
// is persisted.
func New(sm *screen.Model, st *store.Store, doc string, autosave time.Duration) Model {
	return Model{
		screen:   sm,
		store:    st,
		doc:      doc,
		keys:     defaultKeyMap(),
		styles:   DefaultStyles(),
		autosave: autosave,
	}
}

// Screen returns the wrapped screen model.
func (m Model) Screen() *screen.Model { return m.screen }

func (m Model) Init() tea.Cmd {
	return m.autosaveTick()
}

type autosaveTickMsg struct{}

func (m Model) autosaveTick() tea.Cmd {
	if m.store == nil || m.autosave <= 0 {
		return nil
	}
	return tea.Tick(m.autosave, func(time.Time) tea.Msg {
		return autosaveTickMsg{}
	})
}
