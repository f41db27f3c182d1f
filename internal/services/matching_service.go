package services

import (
	"errors"

	"mentorhub_backend/internal/matching"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MatchingService interface {
	GetCandidates(db *gorm.DB, userID string, query *dto.CandidatesQuery) (*dto.CandidatesResponse, error)
	GetCompatibility(db *gorm.DB, userID, otherID string) (*dto.CompatibilityResponse, error)
	GetWeights() *dto.WeightsResponse
}

type MatchingServiceImpl struct {
	engine *matching.Engine
}

func NewMatchingService(engine *matching.Engine) MatchingService {
	return &MatchingServiceImpl{engine: engine}
}

func (s *MatchingServiceImpl) GetCandidates(db *gorm.DB, userID string, query *dto.CandidatesQuery) (*dto.CandidatesResponse, error) {
	userRepo := repositories.NewUserRepository(db)
	matchRepo := repositories.NewMatchRepository(db)

	user, err := userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Profile == nil {
		return nil, apperrors.NewProfileIncompleteError("Complete your profile before browsing candidates")
	}

	relType, err := resolveRelationshipType(user.Role, query.Type)
	if err != nil {
		return nil, err
	}

	requester := engineProfile(user)

	pool, names, err := s.loadPool(userRepo, matching.DesiredRole(requester.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	state, err := s.loadRelationshipState(matchRepo, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	eligible := matching.FilterCandidates(requester, relType, pool, state)
	ranked := s.engine.Rank(requester, eligible, relType)
	if query.Limit > 0 && len(ranked) > query.Limit {
		ranked = ranked[:query.Limit]
	}

	candidates := make([]dto.CandidateDTO, 0, len(ranked))
	for _, result := range ranked {
		candidates = append(candidates, dto.ToCandidateDTO(result, names[result.Candidate.ID]))
	}

	return &dto.CandidatesResponse{
		RelationshipType: string(relType),
		TotalCandidates:  len(eligible),
		Matches:          candidates,
	}, nil
}

func (s *MatchingServiceImpl) GetCompatibility(db *gorm.DB, userID, otherID string) (*dto.CompatibilityResponse, error) {
	userRepo := repositories.NewUserRepository(db)

	user, err := userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Profile == nil {
		return nil, apperrors.NewProfileIncompleteError("Complete your profile before checking compatibility")
	}

	other, err := userRepo.FindByID(otherID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, apperrors.InternalError(err)
	}

	relType := matching.RelationshipFor(matching.Role(user.Role))
	result := s.engine.ScorePair(engineProfile(user), engineProfile(other), relType)

	return &dto.CompatibilityResponse{
		UserID:    other.ID,
		Score:     result.Score,
		Reasons:   result.Reasons,
		Breakdown: result.Breakdown,
	}, nil
}

func (s *MatchingServiceImpl) GetWeights() *dto.WeightsResponse {
	return &dto.WeightsResponse{Profiles: matching.WeightProfiles()}
}

// loadPool fetches every active user of the desired role and converts them
// to engine profiles. Users without a profile are not offerable.
func (s *MatchingServiceImpl) loadPool(userRepo repositories.UserRepository, desired matching.Role) ([]matching.Profile, map[string]string, error) {
	users, err := userRepo.FindActiveByRole(models.UserRole(desired))
	if err != nil {
		return nil, nil, err
	}

	pool := make([]matching.Profile, 0, len(users))
	names := make(map[string]string, len(users))
	for i := range users {
		if users[i].Profile == nil {
			continue
		}
		pool = append(pool, engineProfile(&users[i]))
		names[users[i].ID] = users[i].Profile.DisplayName
	}
	return pool, names, nil
}

func (s *MatchingServiceImpl) loadRelationshipState(matchRepo repositories.MatchRepository, userID string) (matching.RelationshipState, error) {
	var state matching.RelationshipState

	matches, err := matchRepo.FindMatchesByUser(userID, false)
	if err != nil {
		return state, err
	}
	for _, m := range matches {
		state.Matches = append(state.Matches, matching.Match{
			UserAID:  m.UserAID,
			UserBID:  m.UserBID,
			Type:     matching.MatchType(m.Type),
			MenteeID: m.MenteeID,
			Active:   m.Active,
		})
	}

	requests, err := matchRepo.FindRequestsInvolving(userID)
	if err != nil {
		return state, err
	}
	for _, r := range requests {
		state.Requests = append(state.Requests, matching.MatchRequest{
			RequesterID: r.RequesterID,
			ReceiverID:  r.ReceiverID,
			Status:      matching.RequestStatus(r.Status),
		})
	}

	return state, nil
}

// engineProfile projects a user row onto the engine's plain profile view.
// A missing profile row becomes empty fields, which the scorers treat as
// zero (or neutral) signal.
func engineProfile(user *models.User) matching.Profile {
	profile := matching.Profile{
		ID:     user.ID,
		Role:   matching.Role(user.Role),
		Status: matching.Status(user.Status),
	}
	if user.Profile != nil {
		profile.Skills = user.Profile.GetSkills()
		profile.Interests = user.Profile.GetInterests()
		profile.Goals = user.Profile.Goals
		profile.Availability = user.Profile.GetAvailability()
		profile.Location = user.Profile.Location
	}
	return profile
}

// resolveRelationshipType validates an explicit relationship type against
// the requester's role, or infers one when the query left it out.
func resolveRelationshipType(role models.UserRole, explicit string) (matching.RelationshipType, error) {
	inferred := matching.RelationshipFor(matching.Role(role))
	if explicit == "" {
		return inferred, nil
	}

	requested := matching.RelationshipType(explicit)
	if requested != inferred {
		return "", apperrors.NewMatchingInvalidInputError("Relationship type is not available for your role")
	}
	return requested, nil
}
