package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_ExactAndAlias(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(DefaultSkillVocabulary(), DefaultSimilarityThreshold)

	assert.Equal(t, "go", n.Normalize("go"))
	assert.Equal(t, "go", n.Normalize("Golang"))
	assert.Equal(t, "javascript", n.Normalize("JS"))
	assert.Equal(t, "kubernetes", n.Normalize("k8s"))
	assert.Equal(t, "node.js", n.Normalize("  NodeJS  "))
}

func TestNormalizer_FuzzyTypos(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(DefaultSkillVocabulary(), DefaultSimilarityThreshold)

	// One edit on a 4+ rune tag sits within the 0.3 threshold.
	assert.Equal(t, "java", n.Normalize("Jave"))
	assert.Equal(t, "python", n.Normalize("pythn"))
	assert.Equal(t, "javascript", n.Normalize("javascrpt"))
	assert.Equal(t, "docker", n.Normalize("dockr"))
}

func TestNormalizer_UnknownPassesThrough(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(DefaultSkillVocabulary(), DefaultSimilarityThreshold)

	// Tokens too far from any canonical tag are kept, lowercased, never dropped.
	assert.Equal(t, "underwater basket weaving", n.Normalize("Underwater Basket Weaving"))
	// A short token one edit from a short tag is still over the ratio bar.
	assert.Equal(t, "cs", n.Normalize("cs"))
}

func TestNormalizer_Empty(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(DefaultSkillVocabulary(), DefaultSimilarityThreshold)

	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("   "))
	assert.Empty(t, n.NormalizeSet(nil))
	assert.Empty(t, n.NormalizeSet([]string{"", "  "}))
}

func TestNormalizer_Deterministic(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(DefaultSkillVocabulary(), DefaultSimilarityThreshold)

	first := n.Normalize("Jave")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, n.Normalize("Jave"))
	}
}

func TestNormalizer_ThresholdFallback(t *testing.T) {
	t.Parallel()

	// Out-of-range thresholds fall back to the default instead of
	// disabling or over-widening the fuzzy search.
	for _, threshold := range []float64{0, -1, 1.5} {
		n := NewNormalizer(DefaultSkillVocabulary(), threshold)
		assert.Equal(t, "java", n.Normalize("jave"))
		assert.Equal(t, "xyzzy", n.Normalize("xyzzy"))
	}
}

func TestNormalizeSet_CollapsesVariants(t *testing.T) {
	t.Parallel()
	n := NewNormalizer(DefaultSkillVocabulary(), DefaultSimilarityThreshold)

	set := n.NormalizeSet([]string{"JS", "javascript", "Javascrpt", "go", "golang"})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "javascript")
	assert.Contains(t, set, "go")
}
