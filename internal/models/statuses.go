package models

type UserStatus string
type UserRole string
type MatchType string
type RequestStatus string

const (
	// Only active users are eligible matching candidates.
	UserStatusActive        UserStatus = "active"
	UserStatusPendingReview UserStatus = "pending_review"

	UserRoleMentor UserRole = "mentor"
	UserRoleBuddy  UserRole = "buddy"
	UserRoleMentee UserRole = "mentee"

	MatchTypeBuddy  MatchType = "buddy"
	MatchTypeMentor MatchType = "mentor"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)
