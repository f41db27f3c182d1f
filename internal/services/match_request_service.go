package services

import (
	"errors"
	"fmt"

	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/matching"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MatchRequestService interface {
	CreateRequest(db *gorm.DB, requesterID string, req *dto.CreateMatchRequestRequest) (*dto.MatchRequestDTO, error)
	AcceptRequest(db *gorm.DB, receiverID, requestID string) (*dto.MatchDTO, error)
	DeclineRequest(db *gorm.DB, receiverID, requestID string) (*dto.MatchRequestDTO, error)
	ListIncoming(db *gorm.DB, userID string) ([]dto.MatchRequestDTO, error)
	ListOutgoing(db *gorm.DB, userID string) ([]dto.MatchRequestDTO, error)
	ListMatches(db *gorm.DB, userID string) ([]dto.MatchDTO, error)
	EndMatch(db *gorm.DB, userID, matchID string) error
}

type MatchRequestServiceImpl struct {
	notificationService NotificationService
}

func NewMatchRequestService(notificationService NotificationService) MatchRequestService {
	return &MatchRequestServiceImpl{notificationService: notificationService}
}

func (s *MatchRequestServiceImpl) CreateRequest(db *gorm.DB, requesterID string, req *dto.CreateMatchRequestRequest) (*dto.MatchRequestDTO, error) {
	if requesterID == req.ReceiverID {
		return nil, apperrors.NewSelfRequestError()
	}

	userRepo := repositories.NewUserRepository(db)
	matchRepo := repositories.NewMatchRepository(db)

	requester, err := userRepo.FindByID(requesterID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, apperrors.InternalError(err)
	}

	receiver, err := userRepo.FindByID(req.ReceiverID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, apperrors.InternalError(err)
	}
	if receiver.Status != models.UserStatusActive {
		return nil, apperrors.NewReceiverInactiveError()
	}

	requesterRole := matching.Role(requester.Role)
	if matching.Role(receiver.Role) != matching.DesiredRole(requesterRole) {
		return nil, apperrors.NewIncompatibleRolesError()
	}
	matchType := models.MatchType(matching.RelationshipFor(requesterRole).AppliesTo())
	if req.Type != "" && models.MatchType(req.Type) != matchType {
		return nil, apperrors.NewIncompatibleRolesError()
	}

	matched, err := matchRepo.PairMatched(requesterID, receiver.ID, matchType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if matched {
		return nil, apperrors.NewAlreadyMatchedError()
	}

	open, err := matchRepo.OpenRequestExists(requesterID, receiver.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if open {
		return nil, apperrors.NewDuplicateRequestError()
	}

	request := &models.MatchRequest{
		RequesterID: requesterID,
		ReceiverID:  receiver.ID,
		Type:        matchType,
		Status:      models.RequestStatusPending,
		Message:     req.Message,
	}
	if err := matchRepo.CreateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notify(db, receiver.ID, models.NotificationTypeRequestReceived,
		fmt.Sprintf("You received a new %s request", matchType))

	result := dto.ToMatchRequestDTO(request)
	return &result, nil
}

func (s *MatchRequestServiceImpl) AcceptRequest(db *gorm.DB, receiverID, requestID string) (*dto.MatchDTO, error) {
	matchRepo := repositories.NewMatchRepository(db)

	request, err := s.resolvableRequest(matchRepo, receiverID, requestID)
	if err != nil {
		return nil, err
	}

	match := &models.Match{
		UserAID: request.RequesterID,
		UserBID: request.ReceiverID,
		Type:    request.Type,
		Active:  true,
	}
	if request.Type == models.MatchTypeMentor {
		menteeID, err := s.menteeSide(db, request)
		if err != nil {
			return nil, err
		}
		match.MenteeID = menteeID
	}

	// Status flip and match creation succeed or fail together; the unique
	// pair index turns a concurrent double-accept into a rollback here.
	err = db.Transaction(func(tx *gorm.DB) error {
		txRepo := repositories.NewMatchRepository(tx)
		if err := txRepo.UpdateRequestStatus(request.ID, models.RequestStatusAccepted); err != nil {
			return err
		}
		return txRepo.CreateMatch(match)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notify(db, request.RequesterID, models.NotificationTypeRequestAccepted,
		fmt.Sprintf("Your %s request was accepted", request.Type))

	result := dto.ToMatchDTO(match, receiverID)
	return &result, nil
}

func (s *MatchRequestServiceImpl) DeclineRequest(db *gorm.DB, receiverID, requestID string) (*dto.MatchRequestDTO, error) {
	matchRepo := repositories.NewMatchRepository(db)

	request, err := s.resolvableRequest(matchRepo, receiverID, requestID)
	if err != nil {
		return nil, err
	}

	if err := matchRepo.UpdateRequestStatus(request.ID, models.RequestStatusDeclined); err != nil {
		return nil, apperrors.InternalError(err)
	}
	request.Status = models.RequestStatusDeclined

	s.notify(db, request.RequesterID, models.NotificationTypeRequestDeclined,
		fmt.Sprintf("Your %s request was declined", request.Type))

	result := dto.ToMatchRequestDTO(request)
	return &result, nil
}

func (s *MatchRequestServiceImpl) ListIncoming(db *gorm.DB, userID string) ([]dto.MatchRequestDTO, error) {
	requests, err := repositories.NewMatchRepository(db).FindRequestsByReceiver(userID, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toRequestDTOs(requests), nil
}

func (s *MatchRequestServiceImpl) ListOutgoing(db *gorm.DB, userID string) ([]dto.MatchRequestDTO, error) {
	requests, err := repositories.NewMatchRepository(db).FindRequestsByRequester(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toRequestDTOs(requests), nil
}

func (s *MatchRequestServiceImpl) ListMatches(db *gorm.DB, userID string) ([]dto.MatchDTO, error) {
	matches, err := repositories.NewMatchRepository(db).FindMatchesByUser(userID, true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.MatchDTO, 0, len(matches))
	for i := range matches {
		result = append(result, dto.ToMatchDTO(&matches[i], userID))
	}
	return result, nil
}

func (s *MatchRequestServiceImpl) EndMatch(db *gorm.DB, userID, matchID string) error {
	matchRepo := repositories.NewMatchRepository(db)

	match, err := matchRepo.FindMatchByID(matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return apperrors.NewMatchNotFoundError()
		}
		return apperrors.InternalError(err)
	}
	// Outsiders get the same answer as a missing id.
	if !match.Involves(userID) {
		return apperrors.NewMatchNotFoundError()
	}

	if err := matchRepo.DeactivateMatch(match.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// resolvableRequest loads a pending request and checks that the caller is
// its receiver.
func (s *MatchRequestServiceImpl) resolvableRequest(matchRepo repositories.MatchRepository, receiverID, requestID string) (*models.MatchRequest, error) {
	request, err := matchRepo.FindRequestByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.NewRequestNotFoundError()
		}
		return nil, apperrors.InternalError(err)
	}

	if request.ReceiverID != receiverID {
		return nil, apperrors.NewNotRequestReceiverError()
	}
	if request.Status != models.RequestStatusPending {
		return nil, apperrors.NewRequestAlreadyResolvedError()
	}
	return request, nil
}

// menteeSide figures out which side of a mentor request is the mentee.
func (s *MatchRequestServiceImpl) menteeSide(db *gorm.DB, request *models.MatchRequest) (string, error) {
	requester, err := repositories.NewUserRepository(db).FindByID(request.RequesterID)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if requester.Role == models.UserRoleMentee {
		return request.RequesterID, nil
	}
	return request.ReceiverID, nil
}

// notify is best effort: a failed notification must never roll back the
// request it describes.
func (s *MatchRequestServiceImpl) notify(db *gorm.DB, userID, notificationType, message string) {
	if err := s.notificationService.Notify(db, userID, notificationType, message); err != nil {
		logger.WithError(err).Warn("failed to create notification",
			"user_id", userID, "type", notificationType)
	}
}

func toRequestDTOs(requests []models.MatchRequest) []dto.MatchRequestDTO {
	result := make([]dto.MatchRequestDTO, 0, len(requests))
	for i := range requests {
		result = append(result, dto.ToMatchRequestDTO(&requests[i]))
	}
	return result
}
