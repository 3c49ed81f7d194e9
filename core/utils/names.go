package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NameKey returns the identity key of a display name: NFC-normalized,
// trimmed and Unicode case-folded, so "France", "FRANCE" and "france"
// share one key. Diacritics are kept: "Curaçao" and "Curacao" differ.
func NameKey(name string) string {
	s := strings.TrimSpace(norm.NFC.String(name))
	if s == "" {
		return ""
	}
	// cases.Caser is stateful and not safe for concurrent use.
	return cases.Fold().String(s)
}
