package handlers

type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	MatchingHandler     *MatchingHandler
	MatchRequestHandler *MatchRequestHandler
	NotificationHandler *NotificationHandler
}
