package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Axis names used in the per-candidate breakdown.
const (
	AxisSkills       = "skills"
	AxisInterests    = "interests"
	AxisGoals        = "goals"
	AxisAvailability = "availability"
	AxisLocation     = "location"
)

// WeightProfile combines per-axis weights (summing to 1.0) with the
// admission threshold and result cap for one relationship type.
type WeightProfile struct {
	Skills       float64 `json:"skills"`
	Interests    float64 `json:"interests"`
	Goals        float64 `json:"goals"`
	Availability float64 `json:"availability"`
	Location     float64 `json:"location"`
	MinScore     int     `json:"min_score"`
	MaxResults   int     `json:"max_results"`
}

// Buddy matching favors shared logistics (availability, location) more
// than mentor matching, which favors skill and goal alignment: mentors are
// chosen for expertise, not proximity. Mentor pools are smaller, so their
// admission bar is relaxed.
var weightProfiles = map[RelationshipType]WeightProfile{
	RelationshipBuddy:  {Skills: 0.30, Interests: 0.25, Goals: 0.20, Availability: 0.15, Location: 0.10, MinScore: 30, MaxResults: 20},
	RelationshipMentor: {Skills: 0.40, Interests: 0.20, Goals: 0.25, Availability: 0.10, Location: 0.05, MinScore: 25, MaxResults: 15},
	RelationshipMentee: {Skills: 0.35, Interests: 0.20, Goals: 0.30, Availability: 0.10, Location: 0.05, MinScore: 25, MaxResults: 15},
}

// WeightProfileFor returns the weight profile for a relationship type.
// Unknown types fall back to the buddy profile.
func WeightProfileFor(relType RelationshipType) WeightProfile {
	if profile, ok := weightProfiles[relType]; ok {
		return profile
	}
	return weightProfiles[RelationshipBuddy]
}

// WeightProfiles returns the full relationship type -> profile table.
func WeightProfiles() map[RelationshipType]WeightProfile {
	table := make(map[RelationshipType]WeightProfile, len(weightProfiles))
	for relType, profile := range weightProfiles {
		table[relType] = profile
	}
	return table
}

// Reason thresholds: an axis contributes a human-readable reason only when
// it clears its bar. Advisory only, never part of the ranking math.
const (
	reasonSkillsMin       = 60.0
	reasonInterestsMin    = 60.0
	reasonGoalsMin        = 50.0
	reasonAvailabilityMin = 70.0
	reasonLocationMin     = 75.0
)

// Engine ranks candidates for a requester. It holds the two normalizers
// and nothing else; Rank is a pure function of its inputs.
type Engine struct {
	skills    *Normalizer
	interests *Normalizer
}

// NewEngine builds an engine with explicit normalizers, which lets tests
// supply custom vocabularies.
func NewEngine(skills, interests *Normalizer) *Engine {
	return &Engine{skills: skills, interests: interests}
}

// NewDefaultEngine builds an engine over the built-in vocabularies.
func NewDefaultEngine(similarityThreshold float64) *Engine {
	return NewEngine(
		NewNormalizer(DefaultSkillVocabulary(), similarityThreshold),
		NewNormalizer(DefaultInterestVocabulary(), similarityThreshold),
	)
}

// SkillScore is the skill-axis compatibility of two profiles.
func (e *Engine) SkillScore(a, b Profile) float64 {
	return TagOverlapScore(e.skills, a.Skills, b.Skills)
}

// InterestScore is the interest-axis compatibility of two profiles.
func (e *Engine) InterestScore(a, b Profile) float64 {
	return TagOverlapScore(e.interests, a.Interests, b.Interests)
}

// Breakdown computes all five axis scores for a pair of profiles.
func (e *Engine) Breakdown(a, b Profile) map[string]float64 {
	return map[string]float64{
		AxisSkills:       e.SkillScore(a, b),
		AxisInterests:    e.InterestScore(a, b),
		AxisGoals:        GoalScore(a.Goals, b.Goals),
		AxisAvailability: AvailabilityScore(a.Availability, b.Availability),
		AxisLocation:     LocationScore(a.Location, b.Location),
	}
}

// ScorePair scores one candidate against the requester. It never applies
// the admission threshold or result cap; that is Rank's job.
func (e *Engine) ScorePair(requester, candidate Profile, relType RelationshipType) MatchResult {
	profile := WeightProfileFor(relType)
	breakdown := e.Breakdown(requester, candidate)

	total := breakdown[AxisSkills]*profile.Skills +
		breakdown[AxisInterests]*profile.Interests +
		breakdown[AxisGoals]*profile.Goals +
		breakdown[AxisAvailability]*profile.Availability +
		breakdown[AxisLocation]*profile.Location

	return MatchResult{
		Candidate: candidate,
		Score:     int(math.Round(total)),
		Reasons:   e.reasons(requester, candidate, relType, breakdown),
		Breakdown: breakdown,
	}
}

// Rank scores every candidate against the requester with the weight
// profile of the given relationship type, drops candidates below the
// admission threshold, sorts by score descending (ties by candidate id
// ascending) and truncates to the profile's result cap.
func (e *Engine) Rank(requester Profile, candidates []Profile, relType RelationshipType) []MatchResult {
	profile := WeightProfileFor(relType)

	results := make([]MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		result := e.ScorePair(requester, candidate, relType)
		if result.Score < profile.MinScore {
			continue
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Candidate.ID < results[j].Candidate.ID
	})

	if len(results) > profile.MaxResults {
		results = results[:profile.MaxResults]
	}

	return results
}

func (e *Engine) reasons(requester, candidate Profile, relType RelationshipType, breakdown map[string]float64) []string {
	var reasons []string

	if breakdown[AxisSkills] > reasonSkillsMin {
		if shared := SharedTags(e.skills, requester.Skills, candidate.Skills); len(shared) > 0 {
			reasons = append(reasons, "Shared skills: "+strings.Join(shared, ", "))
		}
	}
	if breakdown[AxisInterests] > reasonInterestsMin {
		if shared := SharedTags(e.interests, requester.Interests, candidate.Interests); len(shared) > 0 {
			reasons = append(reasons, "Shared interests: "+strings.Join(shared, ", "))
		}
	}
	if breakdown[AxisAvailability] > reasonAvailabilityMin {
		if shared := SharedSlots(requester.Availability, candidate.Availability); len(shared) > 0 {
			reasons = append(reasons, "Both available: "+strings.Join(shared, ", "))
		}
	}
	if breakdown[AxisLocation] > reasonLocationMin {
		reasons = append(reasons, fmt.Sprintf("Based in the same location (%s)", strings.TrimSpace(candidate.Location)))
	}
	if breakdown[AxisGoals] > reasonGoalsMin {
		reasons = append(reasons, "Similar goals")
	}

	switch relType {
	case RelationshipMentor:
		reasons = append(reasons, "Mentor with relevant experience")
	case RelationshipMentee:
		reasons = append(reasons, "Mentee looking for your expertise")
	default:
		reasons = append(reasons, "Peer at a similar stage")
	}

	return reasons
}
