package normalize

import (
	"sort"
	"strings"
)

// Tolerances below are empirically tuned; see the overlap and anagram
// rules in PartnerNamesMatch.
const (
	anagramLenTolerance = 2
	overlapThreshold    = 0.70
	overlapMinLen       = 5
)

// PartnerNamesMatch decides whether two raw partner names denote the same
// entity. The cascade, first satisfied rule wins: normalized equality,
// substring containment, character-multiset equality with a small length
// tolerance, then character-overlap ratio. Empty input never matches.
// The relation is symmetric.
func PartnerNamesMatch(a, b string) bool {
	na := PartnerName(a)
	nb := PartnerName(b)
	if na == "" || nb == "" {
		return false
	}

	if na == nb {
		return true
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	if sortedChars(na) == sortedChars(nb) && absInt(len(na)-len(nb)) <= anagramLenTolerance {
		return true
	}
	return overlapEquivalent(na, nb)
}

// overlapEquivalent applies the character-overlap rule: count the shorter
// string's characters that occur anywhere in the longer one and divide by
// the longer string's length.
func overlapEquivalent(na, nb string) bool {
	shorter, longer := na, nb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) < overlapMinLen {
		return false
	}
	if overlapRatio(shorter, longer) >= overlapThreshold {
		return true
	}
	// Equal lengths have no canonical shorter side; check the other
	// direction so the relation stays symmetric.
	return len(na) == len(nb) && overlapRatio(longer, shorter) >= overlapThreshold
}

func overlapRatio(shorter, longer string) float64 {
	count := 0
	for _, r := range shorter {
		if strings.ContainsRune(longer, r) {
			count++
		}
	}
	return float64(count) / float64(len(longer))
}

func sortedChars(s string) string {
	chars := strings.Split(s, "")
	sort.Strings(chars)
	return strings.Join(chars, "")
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
