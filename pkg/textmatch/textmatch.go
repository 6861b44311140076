// Package textmatch holds the case-insensitive, word-boundary aware phrase
// search used by the extractors and the date resolver.
package textmatch

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// IsWordRune reports whether r can be part of a word.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// IsUnspaced reports whether r belongs to a script written without spaces
// between words, where word boundaries cannot be checked.
func IsUnspaced(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}

// Span is a half-open byte range [Start, End) of a string.
type Span struct {
	Start int
	End   int
}

// Len returns the byte length of the span.
func (s Span) Len() int { return s.End - s.Start }

// IndexFold returns the first occurrence of phrase in text at or after from.
// Letters compare under simple case folding and any whitespace in phrase
// matches a run of whitespace in text. When bounded is set the match must not
// sit inside a larger word.
func IndexFold(text, phrase string, from int, bounded bool) (Span, bool) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" || from < 0 {
		return Span{}, false
	}

	for i := from; i < len(text); {
		if end, ok := matchAt(text, i, phrase); ok {
			if !bounded || AtBoundary(text, i, end) {
				return Span{Start: i, End: end}, true
			}
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return Span{}, false
}

// IndexAllFold returns every non-overlapping occurrence of phrase in text.
func IndexAllFold(text, phrase string, bounded bool) []Span {
	var spans []Span
	for from := 0; from < len(text); {
		sp, ok := IndexFold(text, phrase, from, bounded)
		if !ok {
			break
		}
		spans = append(spans, sp)
		from = sp.End
	}
	return spans
}

// HasPrefixFold reports whether text starts with prefix under case folding.
func HasPrefixFold(text, prefix string) bool {
	if prefix == "" {
		return true
	}
	_, ok := matchAt(text, 0, prefix)
	return ok
}

func matchAt(text string, i int, phrase string) (int, bool) {
	j := i
	for k := 0; k < len(phrase); {
		pr, psize := utf8.DecodeRuneInString(phrase[k:])
		if unicode.IsSpace(pr) {
			for k < len(phrase) {
				r, size := utf8.DecodeRuneInString(phrase[k:])
				if !unicode.IsSpace(r) {
					break
				}
				k += size
			}
			consumed := false
			for j < len(text) {
				r, size := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(r) {
					break
				}
				j += size
				consumed = true
			}
			if !consumed {
				return 0, false
			}
			continue
		}

		if j >= len(text) {
			return 0, false
		}
		tr, tsize := utf8.DecodeRuneInString(text[j:])
		if !equalFold(pr, tr) {
			return 0, false
		}
		j += tsize
		k += psize
	}
	return j, true
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// AtBoundary reports whether text[start:end] is not glued to a neighbouring
// word. Neighbours from unspaced scripts never block a match.
func AtBoundary(text string, start, end int) bool {
	if start > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		first, _ := utf8.DecodeRuneInString(text[start:])
		if glued(before, first) {
			return false
		}
	}
	if end < len(text) {
		last, _ := utf8.DecodeLastRuneInString(text[:end])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if glued(last, after) {
			return false
		}
	}
	return true
}

func glued(a, b rune) bool {
	return IsWordRune(a) && IsWordRune(b) && !IsUnspaced(a) && !IsUnspaced(b)
}

// Cut removes text[start:end] and collapses the whitespace on both sides of
// the cut into at most one space.
func Cut(text string, start, end int) string {
	if start < 0 || end > len(text) || start >= end {
		return text
	}
	left := strings.TrimRightFunc(text[:start], unicode.IsSpace)
	right := strings.TrimLeftFunc(text[end:], unicode.IsSpace)
	if left == "" || right == "" {
		return left + right
	}

	hadSpace := len(left) != start || len(right) != len(text)-end
	if hadSpace {
		return left + " " + right
	}

	l, _ := utf8.DecodeLastRuneInString(left)
	r, _ := utf8.DecodeRuneInString(right)
	if glued(l, r) {
		return left + " " + right
	}
	return left + right
}

// Normalize returns s in NFC with '-' and '_' read as spaces and whitespace
// collapsed. Case is preserved so the result can still be searched with
// IndexFold.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Key returns the case folded form of Normalize(s), for equality and map
// lookups.
func Key(s string) string {
	return cases.Fold().String(Normalize(s))
}

// LastWord returns the trailing run of non-space runes of s, or "" when s
// ends with whitespace.
func LastWord(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsSpace(r) {
		return ""
	}
	i := strings.LastIndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[i+size:]
}
