package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *Engine {
	return NewDefaultEngine(DefaultSimilarityThreshold)
}

func buddyRequester() Profile {
	return Profile{
		ID:           "req",
		Role:         RoleBuddy,
		Status:       StatusActive,
		Skills:       []string{"go", "postgresql"},
		Interests:    []string{"hiking"},
		Goals:        "improve backend architecture skills",
		Availability: []string{"weekday evenings", "weekends"},
		Location:     "Berlin, Germany",
	}
}

func TestRank_PerfectOverlapScoresHundred(t *testing.T) {
	t.Parallel()
	engine := testEngine()
	requester := buddyRequester()

	twin := requester
	twin.ID = "twin"

	results := engine.Rank(requester, []Profile{twin}, RelationshipBuddy)
	require.Len(t, results, 1)

	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, "twin", results[0].Candidate.ID)
	assert.Contains(t, results[0].Reasons, "Shared skills: go, postgresql")
	assert.Contains(t, results[0].Reasons, "Shared interests: hiking")
	assert.Contains(t, results[0].Reasons, "Similar goals")
	assert.Contains(t, results[0].Reasons, "Peer at a similar stage")
}

func TestRank_BreakdownCoversAllAxes(t *testing.T) {
	t.Parallel()
	engine := testEngine()
	requester := buddyRequester()

	twin := requester
	twin.ID = "twin"

	results := engine.Rank(requester, []Profile{twin}, RelationshipBuddy)
	require.Len(t, results, 1)

	breakdown := results[0].Breakdown
	for _, axis := range []string{AxisSkills, AxisInterests, AxisGoals, AxisAvailability, AxisLocation} {
		score, ok := breakdown[axis]
		assert.True(t, ok, "missing axis %q", axis)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestRank_ThresholdAdmission(t *testing.T) {
	t.Parallel()
	engine := testEngine()
	requester := buddyRequester()

	// Lands exactly on the buddy threshold: skills 50, availability 50,
	// same-country location 75 under buddy weights sum to 30.
	borderline := Profile{
		ID:           "borderline",
		Role:         RoleBuddy,
		Status:       StatusActive,
		Skills:       []string{"golang"},
		Availability: []string{"weekends"},
		Location:     "Munich, Germany",
	}
	// Nothing shared, different country: rounds to 3.
	stranger := Profile{
		ID:       "stranger",
		Role:     RoleBuddy,
		Status:   StatusActive,
		Skills:   []string{"rust"},
		Location: "Paris, France",
	}

	results := engine.Rank(requester, []Profile{stranger, borderline}, RelationshipBuddy)
	require.Len(t, results, 1)
	assert.Equal(t, "borderline", results[0].Candidate.ID)
	assert.Equal(t, 30, results[0].Score)
	// No axis cleared its reason bar; only the relationship phrase remains.
	assert.Equal(t, []string{"Peer at a similar stage"}, results[0].Reasons)
}

func TestRank_TieBreakByCandidateID(t *testing.T) {
	t.Parallel()
	engine := testEngine()
	requester := buddyRequester()

	first := requester
	first.ID = "aaa"
	second := requester
	second.ID = "zzz"

	results := engine.Rank(requester, []Profile{second, first}, RelationshipBuddy)
	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "aaa", results[0].Candidate.ID)
	assert.Equal(t, "zzz", results[1].Candidate.ID)
}

func TestRank_TruncatesToProfileCap(t *testing.T) {
	t.Parallel()
	engine := testEngine()
	requester := buddyRequester()
	requester.Role = RoleMentee

	candidates := make([]Profile, 0, 20)
	for i := 0; i < 20; i++ {
		twin := buddyRequester()
		twin.ID = fmt.Sprintf("mentor-%02d", i)
		twin.Role = RoleMentor
		candidates = append(candidates, twin)
	}

	results := engine.Rank(requester, candidates, RelationshipMentor)
	require.Len(t, results, WeightProfileFor(RelationshipMentor).MaxResults)
	assert.Equal(t, "mentor-00", results[0].Candidate.ID)
}

func TestRank_Idempotent(t *testing.T) {
	t.Parallel()
	engine := testEngine()
	requester := buddyRequester()

	pool := []Profile{
		{ID: "c1", Role: RoleBuddy, Status: StatusActive, Skills: []string{"go"}, Interests: []string{"hiking"}, Availability: []string{"weekends"}, Location: "Berlin, Germany"},
		{ID: "c2", Role: RoleBuddy, Status: StatusActive, Skills: []string{"postgres", "go"}, Goals: "improve backend skills", Location: "Munich, Germany"},
	}

	first := engine.Rank(requester, pool, RelationshipBuddy)
	second := engine.Rank(requester, pool, RelationshipBuddy)
	assert.Equal(t, first, second)
}

func TestRank_EmptyCandidates(t *testing.T) {
	t.Parallel()
	engine := testEngine()

	results := engine.Rank(buddyRequester(), nil, RelationshipBuddy)
	assert.Empty(t, results)
}

func TestWeightProfiles(t *testing.T) {
	t.Parallel()

	for relType, profile := range WeightProfiles() {
		sum := profile.Skills + profile.Interests + profile.Goals + profile.Availability + profile.Location
		assert.InDelta(t, 1.0, sum, 0.0001, "weights for %s must sum to 1", relType)
		assert.Positive(t, profile.MinScore)
		assert.Positive(t, profile.MaxResults)
	}

	// Unknown types fall back to the buddy profile.
	assert.Equal(t, WeightProfileFor(RelationshipBuddy), WeightProfileFor(RelationshipType("romance")))
}

func TestDesiredRoleAndRelationship(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RoleBuddy, DesiredRole(RoleBuddy))
	assert.Equal(t, RoleMentee, DesiredRole(RoleMentor))
	assert.Equal(t, RoleMentor, DesiredRole(RoleMentee))

	assert.Equal(t, RelationshipBuddy, RelationshipFor(RoleBuddy))
	assert.Equal(t, RelationshipMentor, RelationshipFor(RoleMentee))
	assert.Equal(t, RelationshipMentee, RelationshipFor(RoleMentor))

	assert.Equal(t, MatchTypeBuddy, RelationshipBuddy.AppliesTo())
	assert.Equal(t, MatchTypeMentor, RelationshipMentor.AppliesTo())
	assert.Equal(t, MatchTypeMentor, RelationshipMentee.AppliesTo())
}
