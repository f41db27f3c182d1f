package dto

import (
	"time"

	"mentorhub_backend/internal/models"
)

// CreateMatchRequestRequest opens a directed invitation to another user.
// Type is optional; the requester/receiver role pair fully determines it,
// so an explicit value only has to agree with the roles.
type CreateMatchRequestRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid4"`
	Type       string `json:"type" validate:"omitempty,oneof=buddy mentor"`
	Message    string `json:"message" validate:"max=1000"`
}

// MatchRequestDTO is the outward request representation.
type MatchRequestDTO struct {
	ID          string               `json:"id"`
	RequesterID string               `json:"requester_id"`
	ReceiverID  string               `json:"receiver_id"`
	Type        models.MatchType     `json:"type"`
	Status      models.RequestStatus `json:"status"`
	Message     string               `json:"message,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func ToMatchRequestDTO(request *models.MatchRequest) MatchRequestDTO {
	return MatchRequestDTO{
		ID:          request.ID,
		RequesterID: request.RequesterID,
		ReceiverID:  request.ReceiverID,
		Type:        request.Type,
		Status:      request.Status,
		Message:     request.Message,
		CreatedAt:   request.CreatedAt,
	}
}

// MatchDTO is the outward match representation, oriented around the
// viewing user: PartnerID is the other side of the pair.
type MatchDTO struct {
	ID        string           `json:"id"`
	PartnerID string           `json:"partner_id"`
	Type      models.MatchType `json:"type"`
	// Mentee reports whether the viewing user is the mentee side of a
	// mentor match. Always false for buddy matches.
	Mentee    bool      `json:"mentee"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToMatchDTO(match *models.Match, viewerID string) MatchDTO {
	return MatchDTO{
		ID:        match.ID,
		PartnerID: match.PartnerOf(viewerID),
		Type:      match.Type,
		Mentee:    match.Type == models.MatchTypeMentor && match.MenteeID == viewerID,
		Active:    match.Active,
		CreatedAt: match.CreatedAt,
	}
}
