package string

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Canonical returns s composed to Unicode NFC with surrounding whitespace removed.
func Canonical(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// CanonicalSlice canonicalizes every element of ss in place.
func CanonicalSlice(ss []string) {
	for i := range ss {
		ss[i] = Canonical(ss[i])
	}
}

// FirstLetter returns the first user-perceived letter of s, or "" for an empty string.
// Combining marks following the first rune stay attached to it.
func FirstLetter(s string) string {
	s = Canonical(s)
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	end := size
	for end < len(s) {
		r, n := utf8.DecodeRuneInString(s[end:])
		if !unicode.Is(unicode.Mn, r) {
			break
		}
		end += n
	}
	return s[:end]
}

func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 &&
			(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
