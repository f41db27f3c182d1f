package apperrors

import "net/http"

// Domain-specific error factories. Keeping them here (rather than scattered
// through services) keeps code/message/status combinations consistent.

// --- users / profiles ---

func NewUserNotFoundError() *AppError {
	return New(CodeNotFound, "users", "User not found", http.StatusNotFound)
}

func NewProfileNotFoundError() *AppError {
	return New(CodeNotFound, "profiles", "Profile not found", http.StatusNotFound)
}

func NewProfileIncompleteError(message string) *AppError {
	return New(CodeInvalidStatus, "profiles", message, http.StatusBadRequest)
}

func NewEmailTakenError() *AppError {
	return New(CodeAlreadyExists, "users", "Email is already registered", http.StatusConflict)
}

// --- matching ---

func NewMatchingInvalidInputError(message string) *AppError {
	return New(CodeValidationFailed, "matching", message, http.StatusBadRequest)
}

// --- match requests / matches ---

func NewRequestNotFoundError() *AppError {
	return New(CodeNotFound, "requests", "Match request not found", http.StatusNotFound)
}

func NewDuplicateRequestError() *AppError {
	return New(CodeConflict, "requests", "A pending or accepted request already exists between these users", http.StatusConflict)
}

func NewSelfRequestError() *AppError {
	return New(CodeInvalidOperation, "requests", "Cannot send a match request to yourself", http.StatusBadRequest)
}

func NewIncompatibleRolesError() *AppError {
	return New(CodeInvalidOperation, "requests", "Receiver role is not compatible with the requested relationship", http.StatusBadRequest)
}

func NewReceiverInactiveError() *AppError {
	return New(CodeInvalidStatus, "requests", "Receiver is not an active user", http.StatusBadRequest)
}

func NewAlreadyMatchedError() *AppError {
	return New(CodeConflict, "requests", "An active match already exists between these users", http.StatusConflict)
}

func NewRequestAlreadyResolvedError() *AppError {
	return New(CodeInvalidStatus, "requests", "Match request has already been resolved", http.StatusConflict)
}

func NewNotRequestReceiverError() *AppError {
	return New(CodeForbidden, "requests", "Only the receiver can resolve this request", http.StatusForbidden)
}

func NewMatchNotFoundError() *AppError {
	return New(CodeNotFound, "matches", "Match not found", http.StatusNotFound)
}

// --- notifications ---

func NewNotificationNotFoundError() *AppError {
	return New(CodeNotFound, "notifications", "Notification not found", http.StatusNotFound)
}
