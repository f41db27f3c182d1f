package models

// Match is a durable record of an accepted connection between two users.
// The pair is stored unordered: UserAID is always the lexicographically
// smaller id, so one (user_a_id, user_b_id, type) row covers both
// directions and the unique index can catch duplicates.
type Match struct {
	BaseModel
	UserAID string    `gorm:"not null;index:idx_match_pair,unique"`
	UserBID string    `gorm:"not null;index:idx_match_pair,unique"`
	Type    MatchType `gorm:"type:varchar(20);not null;index:idx_match_pair,unique"`
	// MenteeID designates which side is the mentee when Type is mentor.
	MenteeID string `gorm:"type:uuid"`
	Active   bool   `gorm:"default:true"`
}

// NormalizePair orders the pair before persisting.
func (m *Match) NormalizePair() {
	if m.UserAID > m.UserBID {
		m.UserAID, m.UserBID = m.UserBID, m.UserAID
	}
}

// Involves reports whether the match contains the given user.
func (m *Match) Involves(userID string) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// PartnerOf returns the other side of the pair, or "" if userID is not in it.
func (m *Match) PartnerOf(userID string) string {
	switch userID {
	case m.UserAID:
		return m.UserBID
	case m.UserBID:
		return m.UserAID
	}
	return ""
}

// MatchRequest is a directed invitation from requester to receiver.
// Lifecycle: pending -> accepted | declined.
type MatchRequest struct {
	BaseModel
	RequesterID string        `gorm:"not null;index"`
	ReceiverID  string        `gorm:"not null;index"`
	Type        MatchType     `gorm:"type:varchar(20);not null"`
	Status      RequestStatus `gorm:"type:varchar(20);default:'pending';index"`
	Message     string        `gorm:"type:text"`
}

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"size:50;not null"`
	Message string `gorm:"type:text"`
	IsRead  bool   `gorm:"default:false"`
}

const (
	NotificationTypeRequestReceived = "request_received"
	NotificationTypeRequestAccepted = "request_accepted"
	NotificationTypeRequestDeclined = "request_declined"
)
