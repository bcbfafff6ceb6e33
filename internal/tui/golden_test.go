package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/golden"

	"github.com/xonecas/tategaki/internal/screen"
	"github.com/xonecas/tategaki/internal/text"
)

func newTestModel(t *testing.T, lines, rows int, content string) Model {
	t.Helper()
	sm, err := screen.New(lines, rows, text.FromString(content), 0)
	if err != nil {
		t.Fatalf("screen.New: %v", err)
	}
	return New(sm, nil, "draft", 0)
}

func TestRender(t *testing.T) {
	m := newTestModel(t, 3, 2, "あいうえ、\nお")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	m = updated.(Model)

	golden.RequireEqual(t, []byte(ansi.Strip(m.renderContent())))
}

func TestRenderNarrow(t *testing.T) {
	m := newTestModel(t, 3, 2, "あいうえ、\nお")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 5, Height: 10})
	m = updated.(Model)

	golden.RequireEqual(t, []byte(ansi.Strip(m.renderContent())))
}

func TestRenderBeforeResize(t *testing.T) {
	m := newTestModel(t, 3, 2, "あ")
	if got := m.renderContent(); got != "" {
		t.Errorf("renderContent before resize = %q", got)
	}
}

func TestPadCell(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "  "},
		{"あ", "あ"},
		{"a", "a "},
		{"「", "﹁"},
		{"ー", "丨"},
	}
	for _, tt := range tests {
		if got := padCell(tt.in); got != tt.want {
			t.Errorf("padCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
