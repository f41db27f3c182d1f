package repositories

import (
	"errors"
	"time"

	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMatchNotFound   = errors.New("match not found")
	ErrRequestNotFound = errors.New("match request not found")
)

type MatchRepository interface {
	// Match operations
	CreateMatch(match *models.Match) error
	FindMatchByID(id string) (*models.Match, error)
	FindMatchesByUser(userID string, activeOnly bool) ([]models.Match, error)
	PairMatched(userA, userB string, matchType models.MatchType) (bool, error)
	DeactivateMatch(id string) error

	// Request operations
	CreateRequest(request *models.MatchRequest) error
	FindRequestByID(id string) (*models.MatchRequest, error)
	FindRequestsByRequester(requesterID string) ([]models.MatchRequest, error)
	FindRequestsByReceiver(receiverID string, status models.RequestStatus) ([]models.MatchRequest, error)
	FindRequestsInvolving(userID string) ([]models.MatchRequest, error)
	OpenRequestExists(userA, userB string) (bool, error)
	UpdateRequestStatus(id string, status models.RequestStatus) error
}

type MatchRepositoryImpl struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &MatchRepositoryImpl{db: db}
}

// Match operations

func (r *MatchRepositoryImpl) CreateMatch(match *models.Match) error {
	match.NormalizePair()
	return r.db.Create(match).Error
}

func (r *MatchRepositoryImpl) FindMatchByID(id string) (*models.Match, error) {
	var match models.Match
	err := r.db.First(&match, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepositoryImpl) FindMatchesByUser(userID string, activeOnly bool) ([]models.Match, error) {
	query := r.db.Where("user_a_id = ? OR user_b_id = ?", userID, userID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var matches []models.Match
	err := query.Order("created_at DESC").Find(&matches).Error
	return matches, err
}

// PairMatched reports whether an active match of the given type already
// exists between the two users, in either pair order.
func (r *MatchRepositoryImpl) PairMatched(userA, userB string, matchType models.MatchType) (bool, error) {
	if userA > userB {
		userA, userB = userB, userA
	}

	var count int64
	err := r.db.Model(&models.Match{}).
		Where("user_a_id = ? AND user_b_id = ? AND type = ? AND active = ?", userA, userB, matchType, true).
		Count(&count).Error
	return count > 0, err
}

func (r *MatchRepositoryImpl) DeactivateMatch(id string) error {
	result := r.db.Model(&models.Match{}).Where("id = ?", id).Updates(map[string]interface{}{
		"active":     false,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

// Request operations

func (r *MatchRepositoryImpl) CreateRequest(request *models.MatchRequest) error {
	return r.db.Create(request).Error
}

func (r *MatchRepositoryImpl) FindRequestByID(id string) (*models.MatchRequest, error) {
	var request models.MatchRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *MatchRepositoryImpl) FindRequestsByRequester(requesterID string) ([]models.MatchRequest, error) {
	var requests []models.MatchRequest
	err := r.db.Where("requester_id = ?", requesterID).
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *MatchRepositoryImpl) FindRequestsByReceiver(receiverID string, status models.RequestStatus) ([]models.MatchRequest, error) {
	query := r.db.Where("receiver_id = ?", receiverID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.MatchRequest
	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// FindRequestsInvolving returns every request where the user is either
// side, regardless of status. Used to assemble the relationship state the
// candidate filter consults.
func (r *MatchRepositoryImpl) FindRequestsInvolving(userID string) ([]models.MatchRequest, error) {
	var requests []models.MatchRequest
	err := r.db.Where("requester_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// OpenRequestExists reports whether a pending or accepted request links the
// two users in either direction.
func (r *MatchRepositoryImpl) OpenRequestExists(userA, userB string) (bool, error) {
	var count int64
	err := r.db.Model(&models.MatchRequest{}).
		Where("status <> ?", models.RequestStatusDeclined).
		Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	return count > 0, err
}

func (r *MatchRepositoryImpl) UpdateRequestStatus(id string, status models.RequestStatus) error {
	result := r.db.Model(&models.MatchRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
