package statement

import (
	"regexp"
	"strings"
)

// minReferenceLen is the shortest capture accepted as a document number.
const minReferenceLen = 3

// referencePatterns is an ordered cascade: the first pattern that matches
// decides the outcome and no later pattern is tried.
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Za-z]{2,4}\d{4,8}\b`),
	regexp.MustCompile(`Nr\.?\s*([A-Za-z0-9/-]+)`),
	regexp.MustCompile(`(?i)Sf\.?\s*([A-Za-z0-9/-]+)`),
	regexp.MustCompile(`(?i)Invoice\s*No[:.]\s*([A-Za-z0-9/-]+)`),
	regexp.MustCompile(`(?i)Serija\s+([A-Za-z0-9]+)\s+Nr\.?\s*(\d+)`),
}

// ExtractReference scans free-text narrative for a plausible invoice or
// document number. For the matching pattern the last non-empty capture
// group wins (the whole match when the pattern has no groups). A capture
// that trims to fewer than 3 characters yields no reference; later
// patterns are NOT tried in that case.
func ExtractReference(description string) string {
	for _, re := range referencePatterns {
		m := re.FindStringSubmatch(description)
		if m == nil {
			continue
		}

		candidate := m[0]
		for i := len(m) - 1; i >= 1; i-- {
			if m[i] != "" {
				candidate = m[i]
				break
			}
		}

		candidate = strings.TrimSpace(candidate)
		if len(candidate) < minReferenceLen {
			return ""
		}
		return candidate
	}
	return ""
}
