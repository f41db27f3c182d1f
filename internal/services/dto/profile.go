package dto

import "mentorhub_backend/internal/models"

// UpdateProfileRequest replaces the matching-relevant profile fields.
// Tags are free text; the matching engine normalizes them at scoring time,
// so no vocabulary validation happens here.
type UpdateProfileRequest struct {
	DisplayName  string   `json:"display_name" validate:"required,max=255"`
	Bio          string   `json:"bio" validate:"max=2000"`
	Skills       []string `json:"skills" validate:"max=50,dive,max=100"`
	Interests    []string `json:"interests" validate:"max=50,dive,max=100"`
	Goals        string   `json:"goals" validate:"max=2000"`
	Availability []string `json:"availability" validate:"max=20,dive,max=100"`
	Location     string   `json:"location" validate:"max=255"`
}

// ProfileDTO is the outward profile representation with the JSON columns
// unpacked into plain arrays.
type ProfileDTO struct {
	UserID       string   `json:"user_id"`
	DisplayName  string   `json:"display_name"`
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	Goals        string   `json:"goals,omitempty"`
	Availability []string `json:"availability"`
	Location     string   `json:"location,omitempty"`
}

func ToProfileDTO(profile *models.Profile) ProfileDTO {
	return ProfileDTO{
		UserID:       profile.UserID,
		DisplayName:  profile.DisplayName,
		Bio:          profile.Bio,
		Skills:       profile.GetSkills(),
		Interests:    profile.GetInterests(),
		Goals:        profile.Goals,
		Availability: profile.GetAvailability(),
		Location:     profile.Location,
	}
}
