package handlers

import (
	"net/http"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *MatchingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	matching := rg.Group("/matching")
	matching.Use(middleware.AuthMiddleware())
	{
		matching.GET("/candidates", h.GetCandidates)
		matching.GET("/compatibility", h.GetCompatibility)
		matching.GET("/weights", h.GetWeights)
	}
}

func (h *MatchingHandler) GetCandidates(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.CandidatesQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.matchingService.GetCandidates(h.GetDB(c), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MatchingHandler) GetCompatibility(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	otherID := c.Query("user_id")
	if otherID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required query parameter: user_id"))
		return
	}

	response, err := h.matchingService.GetCompatibility(h.GetDB(c), userID, otherID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MatchingHandler) GetWeights(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	c.JSON(http.StatusOK, h.matchingService.GetWeights())
}
