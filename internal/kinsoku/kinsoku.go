// Package kinsoku holds the character classes that restrict where a vertical
// column may break.
package kinsoku

const (
	// DefaultDangling may hang below the last row instead of opening a column.
	DefaultDangling = "、。"
	// DefaultLineStart may not open a column.
	DefaultLineStart = ",)]｝、〕〉》」』】〙〗〟’”｠»ゝゞーァィゥェォッャュョヮヵヶぁぃぅぇぉっゃゅょゎゕゖㇰㇱㇲㇳㇴㇵㇶㇷㇸㇹ゚ㇺㇻㇼㇽㇾㇿ々〻‐゠–〜～?!‼⁇⁈⁉・:;/。."
	// DefaultLineEnd may not close a column.
	DefaultLineEnd = "([｛〔〈《「『【〘〖〝‘“｟«"
)

// RuleSet is an immutable set of line breaking classes.
type RuleSet struct {
	dangling  map[rune]struct{}
	lineStart map[rune]struct{}
	lineEnd   map[rune]struct{}
}

// New builds a rule set from the characters of each class.
func New(dangling, lineStart, lineEnd string) RuleSet {
	return RuleSet{
		dangling:  toSet(dangling),
		lineStart: toSet(lineStart),
		lineEnd:   toSet(lineEnd),
	}
}

// Default returns the Japanese rule set.
func Default() RuleSet {
	return New(DefaultDangling, DefaultLineStart, DefaultLineEnd)
}

// IsDangling reports whether r may be pulled back onto a full column.
func (s RuleSet) IsDangling(r rune) bool { return has(s.dangling, r) }

// IsLineStartForbidden reports whether r may not begin a column.
func (s RuleSet) IsLineStartForbidden(r rune) bool { return has(s.lineStart, r) }

// IsLineEndForbidden reports whether r may not end a column.
func (s RuleSet) IsLineEndForbidden(r rune) bool { return has(s.lineEnd, r) }

func toSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

func has(set map[rune]struct{}, r rune) bool {
	_, ok := set[r]
	return ok
}
