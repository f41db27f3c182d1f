package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/internal/validator"
	"mentorhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubMatchRequestService struct {
	request  *dto.MatchRequestDTO
	match    *dto.MatchDTO
	requests []dto.MatchRequestDTO
	matches  []dto.MatchDTO
	err      error
}

func (s *stubMatchRequestService) CreateRequest(_ *gorm.DB, _ string, _ *dto.CreateMatchRequestRequest) (*dto.MatchRequestDTO, error) {
	return s.request, s.err
}

func (s *stubMatchRequestService) AcceptRequest(_ *gorm.DB, _, _ string) (*dto.MatchDTO, error) {
	return s.match, s.err
}

func (s *stubMatchRequestService) DeclineRequest(_ *gorm.DB, _, _ string) (*dto.MatchRequestDTO, error) {
	return s.request, s.err
}

func (s *stubMatchRequestService) ListIncoming(_ *gorm.DB, _ string) ([]dto.MatchRequestDTO, error) {
	return s.requests, s.err
}

func (s *stubMatchRequestService) ListOutgoing(_ *gorm.DB, _ string) ([]dto.MatchRequestDTO, error) {
	return s.requests, s.err
}

func (s *stubMatchRequestService) ListMatches(_ *gorm.DB, _ string) ([]dto.MatchDTO, error) {
	return s.matches, s.err
}

func (s *stubMatchRequestService) EndMatch(_ *gorm.DB, _, _ string) error {
	return s.err
}

func newRequestRouter(svc *stubMatchRequestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	setTestConfig()

	router := gin.New()
	router.Use(middleware.DBMiddleware(&gorm.DB{}))

	handler := NewMatchRequestHandler(NewBaseHandler(validator.New()), svc)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestCreateRequest_InvalidBody(t *testing.T) {
	router := newRequestRouter(&stubMatchRequestService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(`{"receiver_id":"not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRequest_OK(t *testing.T) {
	svc := &stubMatchRequestService{
		request: &dto.MatchRequestDTO{ID: "r1", Status: "pending"},
	}
	router := newRequestRouter(svc)

	body := `{"receiver_id":"8e5f8a74-0d54-4f3a-9a67-1f1f6f2b9b6e","message":"hi"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestCreateRequest_Duplicate(t *testing.T) {
	svc := &stubMatchRequestService{err: apperrors.NewDuplicateRequestError()}
	router := newRequestRouter(svc)

	body := `{"receiver_id":"8e5f8a74-0d54-4f3a-9a67-1f1f6f2b9b6e"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListRequests_InvalidDirection(t *testing.T) {
	router := newRequestRouter(&stubMatchRequestService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests?direction=sideways", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRequests_DefaultsToIncoming(t *testing.T) {
	svc := &stubMatchRequestService{
		requests: []dto.MatchRequestDTO{{ID: "r1"}, {ID: "r2"}},
	}
	router := newRequestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"r1"`)
}

func TestAcceptRequest_NotReceiver(t *testing.T) {
	svc := &stubMatchRequestService{err: apperrors.NewNotRequestReceiverError()}
	router := newRequestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests/r1/accept", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListMatches_OK(t *testing.T) {
	svc := &stubMatchRequestService{
		matches: []dto.MatchDTO{{ID: "m1", PartnerID: "p1", Active: true}},
	}
	router := newRequestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"partner_id":"p1"`)
}
