package screen

import (
	"testing"

	"github.com/xonecas/tategaki/internal/kinsoku"
	"github.com/xonecas/tategaki/internal/text"
)

func TestWrapRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", "あいう", "あい -> 0:2\nう -> EOF\n -> EOF\n -> EOF"},
		{"line break", "あ\nいうえ", "あ -> 1:0\nいう -> 1:2\nえ -> EOF\n -> EOF"},
		{"dangling at end", "あい、", "あい、 -> 0:3\n -> EOF\n -> EOF\n -> EOF"},
		{"dangling mid line", "１２、３", "１２、 -> 0:3\n３ -> EOF\n -> EOF\n -> EOF"},
		{"small kana pushed", "うひょ", "う -> 0:1\nひょ -> 0:3\n -> EOF\n -> EOF"},
		{"opening bracket pushed", "※「あ", "※ -> 0:1\n「あ -> 0:3\n -> EOF\n -> EOF"},
		{"opening bracket at end", "＠「", "＠ -> 0:1\n「 -> EOF\n -> EOF\n -> EOF"},
		{"dangling after bracket", "＠「、", "＠「、 -> 0:3\n -> EOF\n -> EOF\n -> EOF"},
		{"dangling before closing", "＠「、」", "＠ -> 0:1\n「、 -> 0:3\n」 -> EOF\n -> EOF"},
		{"exact fill", "あい", "あい -> 0:2\n -> EOF\n -> EOF\n -> EOF"},
		{"exact fill then line", "あい\nう", "あい -> 1:0\nう -> EOF\n -> EOF\n -> EOF"},
		{"empty lines", "\n\n", " -> 1:0\n -> 2:0\n -> EOF\n -> EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireDump(t, newTestModel(t, 4, 2, tt.content), tt.want)
		})
	}
}

func TestWrapIsDeterministic(t *testing.T) {
	const content = "吾輩は猫である。名前はまだ無い。\nどこで生れたかとんと見当がつかぬ。"
	a := newTestModel(t, 12, 4, content)
	b := newTestModel(t, 12, 4, content)
	requireDump(t, b, a.String())

	for i := 0; i < a.Lines(); i++ {
		la, _ := a.Line(i)
		lb, _ := b.Line(i)
		if la.Rows() != lb.Rows() || la.NextPosition() != lb.NextPosition() {
			t.Fatalf("line %d differs: %d/%d vs %d/%d", i, la.Rows(), la.NextPosition(), lb.Rows(), lb.NextPosition())
		}
	}
}

func TestLineCharacterAt(t *testing.T) {
	b := text.FromString("あい、")
	var l Line
	l.reset(2, b.First(), 0, kinsoku.Default())

	if l.Rows() != 3 {
		t.Fatalf("Rows = %d, want 3", l.Rows())
	}
	for row, want := range []rune("あい、") {
		got, ok := l.CharacterAt(row)
		if !ok || got != want {
			t.Errorf("CharacterAt(%d) = %q, %v; want %q", row, got, ok, want)
		}
	}
	if _, ok := l.CharacterAt(3); ok {
		t.Error("CharacterAt past the column should be empty")
	}
	if _, ok := l.CharacterAt(-1); ok {
		t.Error("CharacterAt(-1) should be empty")
	}
}

func TestLineBlank(t *testing.T) {
	var l Line
	l.reset(3, nil, 0, kinsoku.Default())
	if l.Rows() != 0 || l.Next() != nil || l.NextPosition() != 0 {
		t.Fatalf("blank line = %+v", l)
	}
	if _, ok := l.CharacterAt(0); ok {
		t.Error("blank line has no characters")
	}
}

func TestCustomRules(t *testing.T) {
	rules := kinsoku.New(".", "", "")
	m, err := New(3, 2, text.FromString("ab.c"), 0, WithRules(rules))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	requireDump(t, m, "ab. -> 0:3\nc -> EOF\n -> EOF")
}
