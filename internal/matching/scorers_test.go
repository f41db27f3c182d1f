package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func skillNormalizer() *Normalizer {
	return NewNormalizer(DefaultSkillVocabulary(), DefaultSimilarityThreshold)
}

func TestTagOverlapScore(t *testing.T) {
	t.Parallel()
	n := skillNormalizer()

	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"go", "python"}, []string{"go", "python"}, 100},
		{"variants collapse before comparing", []string{"go", "python"}, []string{"Golang", "py"}, 100},
		{"partial overlap", []string{"go", "python"}, []string{"python", "rust"}, 100.0 / 3.0},
		{"disjoint", []string{"go"}, []string{"python"}, 0},
		{"one side empty", []string{"go"}, nil, 0},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, TagOverlapScore(n, tt.a, tt.b), 0.001)
		})
	}
}

func TestTagOverlapScore_Symmetric(t *testing.T) {
	t.Parallel()
	n := skillNormalizer()

	a := []string{"go", "python", "docker"}
	b := []string{"python", "kubernetes"}
	assert.Equal(t, TagOverlapScore(n, a, b), TagOverlapScore(n, b, a))
}

func TestGoalScore(t *testing.T) {
	t.Parallel()

	// learn/backend shared out of {learn, backend, development, testing}.
	assert.InDelta(t, 50, GoalScore("learn backend development", "learn backend testing"), 0.001)
	assert.InDelta(t, 100, GoalScore("Improve system design", "improve system design"), 0.001)
	assert.Zero(t, GoalScore("", "learn backend development"))
	// Tokens of three runes or fewer are noise and never counted.
	assert.Zero(t, GoalScore("get a job", "get a job"))
}

func TestAvailabilityScore(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 100, AvailabilityScore([]string{"weekends"}, []string{"Weekends"}), 0.001)
	// Denominator is the larger set, so a narrow requester is not punished
	// beyond the slots it actually lacks.
	assert.InDelta(t, 50, AvailabilityScore(
		[]string{"weekday evenings"},
		[]string{"weekday evenings", "weekends"},
	), 0.001)
	assert.Zero(t, AvailabilityScore([]string{"weekends"}, nil))
	assert.Zero(t, AvailabilityScore(nil, nil))
	assert.Zero(t, AvailabilityScore([]string{"weekends"}, []string{"weekday mornings"}))
}

func TestLocationScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"same city", "Berlin, Germany", "berlin, germany", 100},
		{"same country", "Berlin, Germany", "Munich, Germany", 75},
		{"different country", "Berlin, Germany", "Paris, France", 25},
		{"bare city matches city segment", "Berlin", "Berlin, Germany", 100},
		{"missing side is neutral", "", "Berlin, Germany", 50},
		{"both missing", "", "", 50},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LocationScore(tt.a, tt.b))
		})
	}
}

func TestSharedTags_Sorted(t *testing.T) {
	t.Parallel()
	n := skillNormalizer()

	shared := SharedTags(n,
		[]string{"postgres", "golang", "docker"},
		[]string{"go", "postgresql", "rust"},
	)
	assert.Equal(t, []string{"go", "postgresql"}, shared)
}

func TestSharedSlots(t *testing.T) {
	t.Parallel()

	shared := SharedSlots(
		[]string{"Weekends", "weekday evenings"},
		[]string{"weekends", "Weekday Mornings"},
	)
	assert.Equal(t, []string{"weekends"}, shared)
}
