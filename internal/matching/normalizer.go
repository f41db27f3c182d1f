package matching

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultSimilarityThreshold is the maximum normalized edit distance
// (distance / longer length) at which a token still collapses onto a
// canonical tag. 0.3 catches single-character typos on short tags without
// merging unrelated terms.
const DefaultSimilarityThreshold = 0.3

// Normalizer canonicalizes free-text tags against a controlled vocabulary.
// It is immutable after construction and safe for concurrent use.
type Normalizer struct {
	canonical []string
	aliases   map[string]string
	threshold float64
}

// NewNormalizer builds a Normalizer over the given vocabulary. A threshold
// outside (0, 1] falls back to DefaultSimilarityThreshold.
func NewNormalizer(vocab Vocabulary, threshold float64) *Normalizer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}

	canonical := make([]string, len(vocab.Canonical))
	copy(canonical, vocab.Canonical)

	aliases := make(map[string]string, len(vocab.Aliases))
	for alias, canon := range vocab.Aliases {
		aliases[strings.ToLower(strings.TrimSpace(alias))] = canon
	}

	return &Normalizer{
		canonical: canonical,
		aliases:   aliases,
		threshold: threshold,
	}
}

// Normalize maps a free-text token to its canonical tag. Unknown tokens
// come back lowercased and trimmed, never dropped. The lookup order is:
// exact alias, exact canonical, fuzzy canonical within the threshold.
func (n *Normalizer) Normalize(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}

	if canon, ok := n.aliases[token]; ok {
		return canon
	}

	best := ""
	bestDist := n.threshold
	tokenLen := len([]rune(token))

	for _, canon := range n.canonical {
		if canon == token {
			return canon
		}

		canonLen := len([]rune(canon))
		maxLen := tokenLen
		if canonLen > maxLen {
			maxLen = canonLen
		}

		dist := float64(levenshtein.ComputeDistance(token, canon)) / float64(maxLen)
		// Strict < keeps the result deterministic: on equal distance the
		// earlier vocabulary entry wins.
		if dist <= n.threshold && (best == "" || dist < bestDist) {
			best = canon
			bestDist = dist
		}
	}

	if best != "" {
		return best
	}
	return token
}

// NormalizeSet normalizes a tag list into a deduplicated set.
func (n *Normalizer) NormalizeSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if normalized := n.Normalize(tag); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}
