package services

import (
	"errors"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NotificationService interface {
	Notify(db *gorm.DB, userID, notificationType, message string) error
	List(db *gorm.DB, userID string, limit, offset int) (*dto.NotificationsResponse, error)
	MarkRead(db *gorm.DB, userID, notificationID string) error
	MarkAllRead(db *gorm.DB, userID string) error
}

type NotificationServiceImpl struct{}

func NewNotificationService() NotificationService {
	return &NotificationServiceImpl{}
}

func (s *NotificationServiceImpl) Notify(db *gorm.DB, userID, notificationType, message string) error {
	return repositories.NewNotificationRepository(db).Create(&models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Message: message,
	})
}

func (s *NotificationServiceImpl) List(db *gorm.DB, userID string, limit, offset int) (*dto.NotificationsResponse, error) {
	notificationRepo := repositories.NewNotificationRepository(db)

	notifications, err := notificationRepo.FindByUser(userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.NotificationDTO, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.ToNotificationDTO(&notifications[i]))
	}

	return &dto.NotificationsResponse{
		Notifications: items,
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationServiceImpl) MarkRead(db *gorm.DB, userID, notificationID string) error {
	err := repositories.NewNotificationRepository(db).MarkRead(notificationID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotificationNotFoundError()
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(db *gorm.DB, userID string) error {
	if err := repositories.NewNotificationRepository(db).MarkAllRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
