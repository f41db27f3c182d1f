package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,is-role"`
}

type candidatesPayload struct {
	RelationshipType string `json:"relationship_type" validate:"omitempty,is-relationship-type"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&registerPayload{Email: "not-an-email", Role: "mentor"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_RoleRule(t *testing.T) {
	t.Parallel()
	v := New()

	for _, role := range []string{"mentor", "buddy", "mentee"} {
		assert.NoError(t, v.Validate(&registerPayload{Email: "a@b.com", Role: role}))
	}

	err := v.Validate(&registerPayload{Email: "a@b.com", Role: "admin"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be one of: mentor, buddy, mentee", vErr.Errors["role"])
}

func TestValidate_RelationshipTypeRule(t *testing.T) {
	t.Parallel()
	v := New()

	// omitempty: empty passes.
	assert.NoError(t, v.Validate(&candidatesPayload{}))
	assert.NoError(t, v.Validate(&candidatesPayload{RelationshipType: "mentor"}))

	err := v.Validate(&candidatesPayload{RelationshipType: "romance"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be one of: buddy, mentor, mentee", vErr.Errors["relationship_type"])
}
