package screen

import (
	"fmt"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/xonecas/tategaki/internal/text"
)

func newTestModel(t *testing.T, lines, rows int, content string) *Model {
	t.Helper()
	m, err := New(lines, rows, text.FromString(content), 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// requireDump fails with a unified diff when the layout dump differs.
func requireDump(t *testing.T, m *Model, want string) {
	t.Helper()
	got := m.String()
	if got == want {
		return
	}
	edits := myers.ComputeEdits(span.URIFromPath("want"), want+"\n", got+"\n")
	t.Fatalf("layout mismatch:\n%s", fmt.Sprint(gotextdiff.ToUnified("want", "got", want+"\n", edits)))
}

func requireCursor(t *testing.T, m *Model, line, row int) {
	t.Helper()
	if m.CursorLine() != line || m.CursorRow() != row {
		t.Fatalf("cursor = (%d,%d), want (%d,%d)", m.CursorLine(), m.CursorRow(), line, row)
	}
}
