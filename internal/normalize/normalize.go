// Package normalize holds the canonicalization and partner-name
// equivalence rules used for matching. Normalized forms are lossy and
// exist only for comparison, never for display.
package normalize

import (
	"strings"
	"unicode"
)

// Reference canonicalizes an invoice/document number: all whitespace
// removed, remainder uppercased.
func Reference(s string) string {
	return strings.ToUpper(stripSpace(s))
}

// PartnerName canonicalizes a partner name: whitespace removed,
// lowercased, dotted legal-entity markers like "U.A.B." collapsed to
// "uab", and every character outside [a-z0-9] dropped.
func PartnerName(s string) string {
	s = strings.ToLower(stripSpace(s))
	s = strings.ReplaceAll(s, "u.a.b", "uab")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
