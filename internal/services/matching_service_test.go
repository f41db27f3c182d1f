package services

import (
	"testing"

	"mentorhub_backend/internal/matching"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineProfile(t *testing.T) {
	t.Parallel()

	user := &models.User{
		Role:   models.UserRoleMentor,
		Status: models.UserStatusActive,
	}
	user.ID = "u1"
	user.Profile = &models.Profile{
		UserID:   "u1",
		Goals:    "grow juniors into seniors",
		Location: "Berlin, Germany",
	}
	user.Profile.SetSkills([]string{"go", "postgresql"})
	user.Profile.SetAvailability([]string{"weekends"})

	profile := engineProfile(user)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, matching.RoleMentor, profile.Role)
	assert.Equal(t, matching.StatusActive, profile.Status)
	assert.Equal(t, []string{"go", "postgresql"}, profile.Skills)
	assert.Equal(t, []string{"weekends"}, profile.Availability)
	assert.Equal(t, "Berlin, Germany", profile.Location)
}

func TestEngineProfile_NoProfileRow(t *testing.T) {
	t.Parallel()

	user := &models.User{Role: models.UserRoleBuddy, Status: models.UserStatusActive}
	user.ID = "u2"

	profile := engineProfile(user)
	assert.Equal(t, "u2", profile.ID)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Goals)
	assert.Empty(t, profile.Location)
}

func TestResolveRelationshipType_Inferred(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role models.UserRole
		want matching.RelationshipType
	}{
		{models.UserRoleBuddy, matching.RelationshipBuddy},
		{models.UserRoleMentee, matching.RelationshipMentor},
		{models.UserRoleMentor, matching.RelationshipMentee},
	}
	for _, tt := range tests {
		got, err := resolveRelationshipType(tt.role, "")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolveRelationshipType_Explicit(t *testing.T) {
	t.Parallel()

	got, err := resolveRelationshipType(models.UserRoleMentee, "mentor")
	require.NoError(t, err)
	assert.Equal(t, matching.RelationshipMentor, got)

	// A mentee cannot browse for mentees.
	_, err = resolveRelationshipType(models.UserRoleMentee, "mentee")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
