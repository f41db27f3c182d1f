package dto

import (
	"testing"

	"mentorhub_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestToMatchDTO_Orientation(t *testing.T) {
	t.Parallel()

	match := &models.Match{
		UserAID:  "mentee-1",
		UserBID:  "mentor-1",
		Type:     models.MatchTypeMentor,
		MenteeID: "mentee-1",
		Active:   true,
	}
	match.ID = "m1"

	fromMentee := ToMatchDTO(match, "mentee-1")
	assert.Equal(t, "mentor-1", fromMentee.PartnerID)
	assert.True(t, fromMentee.Mentee)

	fromMentor := ToMatchDTO(match, "mentor-1")
	assert.Equal(t, "mentee-1", fromMentor.PartnerID)
	assert.False(t, fromMentor.Mentee)
}

func TestToMatchDTO_BuddyNeverMentee(t *testing.T) {
	t.Parallel()

	match := &models.Match{
		UserAID: "a",
		UserBID: "b",
		Type:    models.MatchTypeBuddy,
		Active:  true,
	}

	dto := ToMatchDTO(match, "a")
	assert.Equal(t, "b", dto.PartnerID)
	assert.False(t, dto.Mentee)
}

func TestToProfileDTO(t *testing.T) {
	t.Parallel()

	profile := &models.Profile{
		UserID:      "u1",
		DisplayName: "Alex",
		Goals:       "learn systems design",
		Location:    "Berlin, Germany",
	}
	profile.SetSkills([]string{"go"})
	profile.SetInterests([]string{"hiking"})
	profile.SetAvailability([]string{"weekends"})

	dto := ToProfileDTO(profile)
	assert.Equal(t, "u1", dto.UserID)
	assert.Equal(t, []string{"go"}, dto.Skills)
	assert.Equal(t, []string{"hiking"}, dto.Interests)
	assert.Equal(t, []string{"weekends"}, dto.Availability)
	assert.Equal(t, "learn systems design", dto.Goals)
}
