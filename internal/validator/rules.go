package validator

import (
	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires project-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("is-role", isRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("is-relationship-type", isRelationshipType); err != nil {
		return err
	}
	return nil
}

// isRole accepts the three platform roles.
func isRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "mentor", "buddy", "mentee":
		return true
	}
	return false
}

// isRelationshipType accepts the three relationship types a user can seek.
func isRelationshipType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "buddy", "mentor", "mentee":
		return true
	}
	return false
}
