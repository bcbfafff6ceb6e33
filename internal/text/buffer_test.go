package text

import (
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	if b.LineLen() != 1 || b.LinePosition() != 0 {
		t.Fatalf("LineLen %d LinePosition %d, want 1 0", b.LineLen(), b.LinePosition())
	}
	if b.RowLen() != 0 || b.RowPosition() != -1 {
		t.Fatalf("RowLen %d RowPosition %d, want 0 -1", b.RowLen(), b.RowPosition())
	}
}

func TestBufferInsertAndBreak(t *testing.T) {
	b := NewBuffer()
	for _, r := range "あい" {
		b.Insert(r)
	}
	b.BreakLine()
	b.Insert('う')

	if got := b.String(); got != "あい\nう" {
		t.Fatalf("String = %q", got)
	}
	if b.LinePosition() != 1 || b.RowPosition() != 0 {
		t.Errorf("position %d:%d, want 1:0", b.LinePosition(), b.RowPosition())
	}

	r, err := b.At(0, 1)
	if err != nil || r != 'い' {
		t.Errorf("At(0,1) = %q, %v", r, err)
	}
	if _, err := b.At(2, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(2,0) error = %v", err)
	}
	if _, err := b.At(0, 2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(0,2) error = %v", err)
	}
}

func TestBufferInsertWithoutCurrentLine(t *testing.T) {
	b := FromString("あ\nい")
	if _, err := b.AtLine(-1); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AtRow(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AtRow with no line error = %v", err)
	}
	b.Insert('ん')
	if got := b.String(); got != "んあ\nい" {
		t.Errorf("String = %q", got)
	}
}

func TestBufferSplitLine(t *testing.T) {
	b := FromString("あいう")
	if _, err := b.At(0, 0); err != nil {
		t.Fatal(err)
	}
	line := b.SplitLine()
	if got := b.String(); got != "あ\nいう" {
		t.Fatalf("String = %q", got)
	}
	if line.Position() != -1 || b.LinePosition() != 1 {
		t.Errorf("new line pos %d, buffer line %d", line.Position(), b.LinePosition())
	}
	if line.Previous() != b.First() || b.First().Next() != line {
		t.Error("split line not linked after the original")
	}

	b.Insert('ん')
	if got := b.String(); got != "あ\nんいう" {
		t.Errorf("after insert String = %q", got)
	}
}

func TestBufferRemove(t *testing.T) {
	b := FromString("あい\n")
	if _, err := b.At(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := b.Remove(); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "あ\n" {
		t.Errorf("String = %q", got)
	}

	if _, err := b.AtLine(1); err != nil {
		t.Fatal(err)
	}
	if err := b.Remove(); err != nil {
		t.Fatal(err)
	}
	if b.LineLen() != 1 || b.String() != "あ" {
		t.Errorf("after removing empty line: %d lines, %q", b.LineLen(), b.String())
	}

	if _, err := b.At(0, -1); err != nil {
		t.Fatal(err)
	}
	if err := b.Remove(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Remove before first row error = %v", err)
	}
}

func TestBufferIndexOf(t *testing.T) {
	b := FromString("a\nb\nc")
	i := 0
	for n, line := range b.Lines() {
		if got := b.IndexOf(line); got != n {
			t.Errorf("IndexOf line %d = %d", n, got)
		}
		i++
	}
	if i != 3 {
		t.Fatalf("Lines yielded %d lines", i)
	}
	if got := b.IndexOf(FromString("x").First()); got != -1 {
		t.Errorf("IndexOf foreign line = %d", got)
	}
	if got := b.IndexOf(nil); got != -1 {
		t.Errorf("IndexOf(nil) = %d", got)
	}
}
