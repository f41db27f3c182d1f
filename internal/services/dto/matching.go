package dto

import (
	"mentorhub_backend/internal/matching"
)

// CandidatesQuery parameterizes the candidate listing. Type is optional;
// when absent the relationship type is inferred from the requester's role.
type CandidatesQuery struct {
	Type  string `form:"type" validate:"omitempty,is-relationship-type"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=50"`
}

// CandidateDTO is one ranked candidate as returned to the client. Only
// public profile data leaves the server; role and status stay internal.
type CandidateDTO struct {
	UserID      string             `json:"user_id"`
	DisplayName string             `json:"display_name"`
	Skills      []string           `json:"skills"`
	Interests   []string           `json:"interests"`
	Location    string             `json:"location,omitempty"`
	Score       int                `json:"score"`
	Reasons     []string           `json:"reasons"`
	Breakdown   map[string]float64 `json:"breakdown"`
}

// CandidatesResponse is the full candidate listing. TotalCandidates counts
// everyone who passed the eligibility filter, before threshold and cap.
type CandidatesResponse struct {
	RelationshipType string         `json:"relationship_type"`
	TotalCandidates  int            `json:"total_candidates"`
	Matches          []CandidateDTO `json:"matches"`
}

// CompatibilityResponse is a one-off pairwise score between the
// authenticated user and a named other user.
type CompatibilityResponse struct {
	UserID    string             `json:"user_id"`
	Score     int                `json:"score"`
	Reasons   []string           `json:"reasons"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// WeightsResponse exposes the active weight profile table so clients can
// explain scores to users.
type WeightsResponse struct {
	Profiles map[matching.RelationshipType]matching.WeightProfile `json:"profiles"`
}

// ToCandidateDTO maps an engine result (which carries display data piggy-
// backed by the service) onto the wire shape.
func ToCandidateDTO(result matching.MatchResult, displayName string) CandidateDTO {
	return CandidateDTO{
		UserID:      result.Candidate.ID,
		DisplayName: displayName,
		Skills:      result.Candidate.Skills,
		Interests:   result.Candidate.Interests,
		Location:    result.Candidate.Location,
		Score:       result.Score,
		Reasons:     result.Reasons,
		Breakdown:   result.Breakdown,
	}
}
