package services

import (
	"errors"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileDTO, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileDTO, error)
}

type ProfileServiceImpl struct{}

func NewProfileService() ProfileService {
	return &ProfileServiceImpl{}
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileDTO, error) {
	profile, err := repositories.NewProfileRepository(db).FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewProfileNotFoundError()
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.ToProfileDTO(profile)
	return &result, nil
}

// UpdateProfile replaces the matching-relevant fields wholesale. Missing
// profiles are created, so a user who registered before filling anything
// in still ends up with a row.
func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileDTO, error) {
	profileRepo := repositories.NewProfileRepository(db)

	profile, err := profileRepo.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.Profile{UserID: userID}
	}

	profile.DisplayName = req.DisplayName
	profile.Bio = req.Bio
	profile.Goals = req.Goals
	profile.Location = req.Location
	profile.SetSkills(req.Skills)
	profile.SetInterests(req.Interests)
	profile.SetAvailability(req.Availability)

	if profile.ID == "" {
		err = profileRepo.Create(profile)
	} else {
		err = profileRepo.Update(profile)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.ToProfileDTO(profile)
	return &result, nil
}
