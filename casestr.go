package casestr

import (
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
)

func clamp(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

// Fold returns the Unicode case folded form of s: the canonical form
// used by Equal, Compare, and Hash. If s is already folded ASCII, Fold
// returns s unchanged without allocating.
func Fold(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return cases.Fold().String(s)
		}
		if isUpper(c) {
			return foldASCII(s, i)
		}
	}
	return s
}

// Equal reports whether s and t are equal under Unicode case folding.
func Equal(s, t string) bool {
	i := 0
	for ; i < len(s) && i < len(t); i++ {
		sr := s[i]
		tr := t[i]
		if sr|tr >= utf8.RuneSelf {
			goto hasUnicode
		}
		if sr == tr || _lower[sr] == _lower[tr] {
			continue
		}
		return false
	}
	// Folding cannot shorten the leftover tail of the longer string, so
	// unequal lengths of all-ASCII prefixes mean unequal strings.
	return len(s) == len(t)

hasUnicode:
	// The ASCII prefixes compared equal and folding is context free, so
	// only the remainders need folding.
	return Fold(s[i:]) == Fold(t[i:])
}

// Compare returns an integer comparing the case folded forms of s and t
// lexicographically: 0 if the strings are equal under Equal, -1 if s
// sorts before t, and +1 if s sorts after t.
func Compare(s, t string) int {
	i := 0
	for ; i < len(s) && i < len(t); i++ {
		sr := s[i]
		tr := t[i]
		if sr|tr >= utf8.RuneSelf {
			goto hasUnicode
		}
		if sr == tr || _lower[sr] == _lower[tr] {
			continue
		}
		return clamp(int(_lower[sr]) - int(_lower[tr]))
	}
	return clamp(len(s) - len(t))

hasUnicode:
	return strings.Compare(Fold(s[i:]), Fold(t[i:]))
}

// Hash returns a 64-bit hash of the case folded form of s. Strings
// that are equal under Equal always hash identically.
func Hash(s string) uint64 {
	return xxhash.Sum64String(Fold(s))
}

// String is a case-insensitive string: it compares, sorts, and hashes
// by the case folded form of its text but keeps and renders the
// original casing. The zero value is the empty string.
//
// String cannot be used directly as a Go map key since the built-in ==
// is case-sensitive; use [Map] or [Set] instead, or key a map by
// [String.Fold].
type String struct {
	v storage
}

// New returns a String holding s.
func New(s string) String {
	return String{v: makeStorage(s)}
}

// FromBytes returns a String holding b. Invalid UTF-8 sequences are
// replaced with the Unicode replacement character.
func FromBytes(b []byte) String {
	if utf8.Valid(b) {
		return New(string(b))
	}
	return New(strings.ToValidUTF8(string(b), string(utf8.RuneError)))
}

// String returns the text with its original casing, never the folded
// form.
func (s String) String() string { return s.v.str() }

// Len returns the length of the text in bytes.
func (s String) Len() int { return len(s.v.str()) }

// IsEmpty reports whether the text is empty.
func (s String) IsEmpty() bool { return len(s.v.str()) == 0 }

// Fold returns the case folded form of the text.
func (s String) Fold() string { return Fold(s.v.str()) }

// Hash returns a 64-bit hash of the case folded form of the text.
// Strings that are equal under Equal always hash identically.
func (s String) Hash() uint64 { return Hash(s.v.str()) }

// Equal reports whether s and t are equal under Unicode case folding.
func (s String) Equal(t String) bool { return Equal(s.v.str(), t.v.str()) }

// EqualString reports whether s and the plain string t are equal under
// Unicode case folding.
func (s String) EqualString(t string) bool { return Equal(s.v.str(), t) }

// Compare compares s and t by their case folded forms. It returns 0 if
// s and t are equal under Equal, -1 if s sorts before t, and +1 if s
// sorts after t.
func (s String) Compare(t String) int { return Compare(s.v.str(), t.v.str()) }

// CompareString compares s and the plain string t by their case folded
// forms.
func (s String) CompareString(t string) int { return Compare(s.v.str(), t) }

// Contains reports whether substr is within s, case-insensitively.
func (s String) Contains(substr string) bool {
	return strings.Contains(s.Fold(), Fold(substr))
}

// HasPrefix reports whether s begins with prefix, case-insensitively.
func (s String) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.Fold(), Fold(prefix))
}

// HasSuffix reports whether s ends with suffix, case-insensitively.
func (s String) HasSuffix(suffix string) bool {
	return strings.HasSuffix(s.Fold(), Fold(suffix))
}

// Append appends t to the stored text, preserving the casing of both.
func (s *String) Append(t string) {
	if t == "" {
		return
	}
	s.v = makeStorage(s.v.str() + t)
}
