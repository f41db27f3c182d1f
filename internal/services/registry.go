package services

import "mentorhub_backend/internal/matching"

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	MatchingService     MatchingService
	MatchRequestService MatchRequestService
	NotificationService NotificationService
}

// NewServiceContainer wires the services together around one matching
// engine instance.
func NewServiceContainer(engine *matching.Engine) *ServiceContainer {
	notificationService := NewNotificationService()

	return &ServiceContainer{
		AuthService:         NewAuthService(),
		ProfileService:      NewProfileService(),
		MatchingService:     NewMatchingService(engine),
		MatchRequestService: NewMatchRequestService(notificationService),
		NotificationService: notificationService,
	}
}
