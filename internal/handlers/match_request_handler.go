package handlers

import (
	"net/http"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MatchRequestHandler struct {
	*BaseHandler
	matchRequestService services.MatchRequestService
}

func NewMatchRequestHandler(base *BaseHandler, matchRequestService services.MatchRequestService) *MatchRequestHandler {
	return &MatchRequestHandler{
		BaseHandler:         base,
		matchRequestService: matchRequestService,
	}
}

func (h *MatchRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListRequests)
		requests.POST("/:id/accept", h.AcceptRequest)
		requests.POST("/:id/decline", h.DeclineRequest)
	}

	matches := rg.Group("/matches")
	matches.Use(middleware.AuthMiddleware())
	{
		matches.GET("", h.ListMatches)
		matches.POST("/:id/end", h.EndMatch)
	}
}

func (h *MatchRequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMatchRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.matchRequestService.CreateRequest(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListRequests serves both directions via ?direction=incoming|outgoing,
// defaulting to incoming.
func (h *MatchRequestHandler) ListRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	direction := c.DefaultQuery("direction", "incoming")

	var (
		requests []dto.MatchRequestDTO
		err      error
	)
	switch direction {
	case "incoming":
		requests, err = h.matchRequestService.ListIncoming(h.GetDB(c), userID)
	case "outgoing":
		requests, err = h.matchRequestService.ListOutgoing(h.GetDB(c), userID)
	default:
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid direction: must be incoming or outgoing"))
		return
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *MatchRequestHandler) AcceptRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	match, err := h.matchRequestService.AcceptRequest(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

func (h *MatchRequestHandler) DeclineRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	request, err := h.matchRequestService.DeclineRequest(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *MatchRequestHandler) ListMatches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	matches, err := h.matchRequestService.ListMatches(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func (h *MatchRequestHandler) EndMatch(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.matchRequestService.EndMatch(h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match ended"})
}
