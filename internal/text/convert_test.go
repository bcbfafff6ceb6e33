package text

import (
	"errors"
	"slices"
	"testing"

	"github.com/xonecas/tategaki/internal/charset"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		lines int
	}{
		{"empty", "", "", 1},
		{"single", "あいう", "あいう", 1},
		{"lf", "あ\nい", "あ\nい", 2},
		{"cr", "あ\rい", "あ\nい", 2},
		{"crlf", "あ\r\nい", "あ\nい", 2},
		{"trailing break", "あ\n", "あ\n", 2},
		{"blank lines", "\r\n\r\n", "\n\n", 3},
		{"astral", "🐱の", "🐱の", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.input)
			if got := b.String(); got != tt.want {
				t.Errorf("String = %q, want %q", got, tt.want)
			}
			if b.LineLen() != tt.lines {
				t.Errorf("LineLen = %d, want %d", b.LineLen(), tt.lines)
			}
			if b.LinePosition() != 0 || b.RowPosition() != -1 {
				t.Errorf("position %d:%d, want 0:-1", b.LinePosition(), b.RowPosition())
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	b, err := FromBytes([]byte("\xef\xbb\xbfあ\nい"))
	if err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "あ\nい" {
		t.Errorf("String = %q", got)
	}
	if got := string(b.Bytes()); got != "あ\nい" {
		t.Errorf("Bytes = %q", got)
	}
}

func TestFromUTF16(t *testing.T) {
	units := []uint16{0xd83d, 0xdc31, 0x000d, 0x000a, 0x3042}
	b, err := FromUTF16(units)
	if err != nil {
		t.Fatal(err)
	}
	if b.First().Len() != 1 {
		t.Errorf("surrogate pair not merged: first line has %d characters", b.First().Len())
	}
	if got := b.String(); got != "🐱\nあ" {
		t.Errorf("String = %q", got)
	}
	if got := b.UTF16(); !slices.Equal(got, []uint16{0xd83d, 0xdc31, 0x000a, 0x3042}) {
		t.Errorf("UTF16 = %x", got)
	}

	if _, err := FromUTF16([]uint16{0xdc31}); !errors.Is(err, charset.ErrInvalidEncoding) {
		t.Errorf("lone surrogate error = %v", err)
	}
}
