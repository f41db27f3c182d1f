package matching

import (
	"sort"
	"strings"
)

// Per-axis compatibility scorers. Each is a pure, total function returning
// a value in [0, 100]; missing or empty fields contribute 0 (or the neutral
// 50 for location), never an error.

// goalTokenMinLen filters stopword-like noise out of goal text.
const goalTokenMinLen = 3

// TagOverlapScore computes the Jaccard overlap of two tag lists after
// normalization: |intersection| / |union| * 100. Symmetric; 0 when either
// side is empty. Used for both skills and interests with the respective
// normalizer.
func TagOverlapScore(n *Normalizer, a, b []string) float64 {
	setA := n.NormalizeSet(a)
	setB := n.NormalizeSet(b)
	return jaccard(setA, setB)
}

// SharedTags returns the sorted normalized intersection of two tag lists,
// used for match-reason strings.
func SharedTags(n *Normalizer, a, b []string) []string {
	setA := n.NormalizeSet(a)
	setB := n.NormalizeSet(b)
	return sortedIntersection(setA, setB)
}

// GoalScore tokenizes both goal strings on whitespace, keeps lowercased
// tokens longer than goalTokenMinLen and computes the Jaccard overlap of
// the retained token sets. 0 when either goals string is empty.
func GoalScore(a, b string) float64 {
	tokensA := goalTokens(a)
	tokensB := goalTokens(b)
	return jaccard(tokensA, tokensB)
}

// AvailabilityScore lowercases both slot sets and computes
// |intersection| / max(|A|,|B|) * 100. The max denominator deliberately
// avoids penalizing a requester with few slots against a candidate
// offering many; the intersection numerator keeps it symmetric. 0 when
// either side is empty.
func AvailabilityScore(a, b []string) float64 {
	setA := lowerSet(a)
	setB := lowerSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	shared := 0
	for slot := range setA {
		if _, ok := setB[slot]; ok {
			shared++
		}
	}

	larger := len(setA)
	if len(setB) > larger {
		larger = len(setB)
	}
	return float64(shared) / float64(larger) * 100
}

// SharedSlots returns the sorted lowercased intersection of two
// availability sets.
func SharedSlots(a, b []string) []string {
	return sortedIntersection(lowerSet(a), lowerSet(b))
}

// LocationScore compares "City, Country"-shaped strings:
// same city 100, same country 75, confirmed mismatch 25, missing data on
// either side a neutral 50 (absence must not penalize like a mismatch).
func LocationScore(a, b string) float64 {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return 50
	}

	if cityToken(a) == cityToken(b) {
		return 100
	}
	if countryToken(a) == countryToken(b) {
		return 75
	}
	return 25
}

// --- helpers ---

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	shared := 0
	for tag := range a {
		if _, ok := b[tag]; ok {
			shared++
		}
	}

	union := len(a) + len(b) - shared
	return float64(shared) / float64(union) * 100
}

func goalTokens(goals string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(goals)) {
		if len([]rune(word)) > goalTokenMinLen {
			tokens[word] = struct{}{}
		}
	}
	return tokens
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func sortedIntersection(a, b map[string]struct{}) []string {
	var shared []string
	for v := range a {
		if _, ok := b[v]; ok {
			shared = append(shared, v)
		}
	}
	sort.Strings(shared)
	return shared
}

// cityToken is the first comma segment, lowercased.
func cityToken(location string) string {
	parts := strings.Split(location, ",")
	return strings.ToLower(strings.TrimSpace(parts[0]))
}

// countryToken is the last comma segment, lowercased. For a bare city
// string this equals the city token, which is the intended fallback.
func countryToken(location string) string {
	parts := strings.Split(location, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}
