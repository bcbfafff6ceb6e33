// Package charset converts between encoded text and logical characters.
package charset

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding is returned for malformed input.
var ErrInvalidEncoding = errors.New("invalid encoding")

// DecodeUTF8 decodes p strictly.
func DecodeUTF8(p []byte) ([]rune, error) {
	out := make([]rune, 0, utf8.RuneCount(p))
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("utf-8 at byte %d: %w", i, ErrInvalidEncoding)
		}
		out = append(out, r)
		i += size
	}
	return out, nil
}

// EncodeUTF8 encodes rs as UTF-8.
func EncodeUTF8(rs []rune) []byte {
	out := make([]byte, 0, CountUTF8(rs))
	for _, r := range rs {
		out = utf8.AppendRune(out, r)
	}
	return out
}

// CountUTF8 returns the encoded length of rs in bytes.
func CountUTF8(rs []rune) int {
	n := 0
	for _, r := range rs {
		n += utf8.RuneLen(r)
	}
	return n
}

// IsHighSurrogate reports whether u leads a surrogate pair.
func IsHighSurrogate(u uint16) bool { return u >= 0xd800 && u <= 0xdbff }

// IsLowSurrogate reports whether u trails a surrogate pair.
func IsLowSurrogate(u uint16) bool { return u >= 0xdc00 && u <= 0xdfff }

// DecodeUTF16 merges surrogate pairs into single characters. An unpaired
// surrogate is an error.
func DecodeUTF16(units []uint16) ([]rune, error) {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case IsHighSurrogate(u):
			if i+1 >= len(units) || !IsLowSurrogate(units[i+1]) {
				return nil, fmt.Errorf("utf-16 unpaired high surrogate at %d: %w", i, ErrInvalidEncoding)
			}
			out = append(out, utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case IsLowSurrogate(u):
			return nil, fmt.Errorf("utf-16 unpaired low surrogate at %d: %w", i, ErrInvalidEncoding)
		default:
			out = append(out, rune(u))
		}
	}
	return out, nil
}

// EncodeUTF16 splits characters outside the basic plane into surrogate pairs.
func EncodeUTF16(rs []rune) []uint16 {
	return utf16.Encode(rs)
}

// Decode sniffs a byte order mark and decodes p as UTF-8, UTF-16LE or
// UTF-16BE. Without a mark p is taken as UTF-8. Malformed sequences decode
// to U+FFFD.
func Decode(p []byte) ([]rune, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, p)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return DecodeUTF8(out)
}
