package text

import (
	"fmt"

	"github.com/xonecas/tategaki/internal/charset"
)

// FromRunes builds a buffer from rs. CR, LF and CRLF each end a line.
// The result is positioned on line 0 before its first character.
func FromRunes(rs []rune) *Buffer {
	b := NewBuffer()
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '\r':
			if i+1 < len(rs) && rs[i+1] == '\n' {
				i++
			}
			b.BreakLine()
		case '\n':
			b.BreakLine()
		default:
			b.Insert(rs[i])
		}
	}
	b.lines.At(0) //nolint:errcheck // a new buffer always has line 0
	b.AtRow(-1)   //nolint:errcheck
	return b
}

// FromString builds a buffer from s.
func FromString(s string) *Buffer {
	return FromRunes([]rune(s))
}

// FromBytes builds a buffer from encoded text, honouring a UTF-8 or UTF-16
// byte order mark.
func FromBytes(p []byte) (*Buffer, error) {
	rs, err := charset.Decode(p)
	if err != nil {
		return nil, fmt.Errorf("buffer from bytes: %w", err)
	}
	return FromRunes(rs), nil
}

// FromUTF16 builds a buffer from UTF-16 code units, merging surrogate pairs.
func FromUTF16(units []uint16) (*Buffer, error) {
	rs, err := charset.DecodeUTF16(units)
	if err != nil {
		return nil, fmt.Errorf("buffer from utf-16: %w", err)
	}
	return FromRunes(rs), nil
}
