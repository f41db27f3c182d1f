// Package matching implements the candidate matching and ranking engine:
// fuzzy tag normalization, per-axis compatibility scoring, candidate
// eligibility filtering and weighted ranking. The package performs no I/O;
// the service layer assembles plain Profile and RelationshipState values
// from the stores and the engine computes over them.
package matching

type Role string
type Status string
type MatchType string
type RequestStatus string

// RelationshipType is the kind of connection being sought.
type RelationshipType string

const (
	RoleMentor Role = "mentor"
	RoleBuddy  Role = "buddy"
	RoleMentee Role = "mentee"

	StatusActive        Status = "active"
	StatusPendingReview Status = "pending_review"

	MatchTypeBuddy  MatchType = "buddy"
	MatchTypeMentor MatchType = "mentor"

	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"

	// RelationshipBuddy: peer looking for a peer.
	RelationshipBuddy RelationshipType = "buddy"
	// RelationshipMentor: mentee looking for a mentor.
	RelationshipMentor RelationshipType = "mentor"
	// RelationshipMentee: mentor looking for a mentee.
	RelationshipMentee RelationshipType = "mentee"
)

// Profile is the engine's read-only view of a user.
type Profile struct {
	ID           string
	Role         Role
	Status       Status
	Skills       []string
	Interests    []string
	Goals        string
	Availability []string
	Location     string
}

// Match mirrors a durable match record. The pair is unordered.
type Match struct {
	UserAID  string
	UserBID  string
	Type     MatchType
	MenteeID string
	Active   bool
}

// Involves reports whether the match contains the given user.
func (m Match) Involves(userID string) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// PartnerOf returns the other side of the pair, or "" if userID is not in it.
func (m Match) PartnerOf(userID string) string {
	switch userID {
	case m.UserAID:
		return m.UserBID
	case m.UserBID:
		return m.UserAID
	}
	return ""
}

// MatchRequest mirrors a directed invitation between two users.
type MatchRequest struct {
	RequesterID string
	ReceiverID  string
	Status      RequestStatus
}

// RelationshipState is the pre-fetched match/request state the filter
// consults. The engine never queries stores itself.
type RelationshipState struct {
	Matches  []Match
	Requests []MatchRequest
}

// MatchResult is one ranked candidate with its explanation.
type MatchResult struct {
	Candidate Profile            `json:"candidate"`
	Score     int                `json:"score"`
	Reasons   []string           `json:"reasons"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// DesiredRole maps a requester role to the role candidates must have.
// Unknown roles fall back to requiring the requester's exact role.
func DesiredRole(requester Role) Role {
	switch requester {
	case RoleBuddy:
		return RoleBuddy
	case RoleMentor:
		return RoleMentee
	case RoleMentee:
		return RoleMentor
	}
	return requester
}

// RelationshipFor infers the relationship type a user of the given role
// is seeking when none was requested explicitly.
func RelationshipFor(role Role) RelationshipType {
	switch role {
	case RoleMentor:
		return RelationshipMentee
	case RoleMentee:
		return RelationshipMentor
	}
	return RelationshipBuddy
}

// AppliesTo returns the match type a relationship produces: buddy
// relationships create buddy matches, both mentor directions create
// mentor matches.
func (rt RelationshipType) AppliesTo() MatchType {
	if rt == RelationshipBuddy {
		return MatchTypeBuddy
	}
	return MatchTypeMentor
}
