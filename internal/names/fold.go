// Package names provides the case-insensitive key handling shared by the
// define table and the code base catalogs.
package names

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the caseless key for s. ASCII input takes a fast path;
// anything else is NFC-normalised and folded with Unicode case folding.
func Fold(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			// Caser хранит состояние, поэтому новый на каждый вызов
			return cases.Fold().String(norm.NFC.String(s))
		}
	}
	return strings.ToLower(s)
}

// Equal reports whether a and b are the same name ignoring case.
func Equal(a, b string) bool {
	return a == b || Fold(a) == Fold(b)
}

// Compare orders names by their folded keys, ordinal on ties.
func Compare(a, b string) int {
	if c := strings.Compare(Fold(a), Fold(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
