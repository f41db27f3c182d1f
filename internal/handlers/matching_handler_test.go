package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/matching"
	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/internal/validator"
	"mentorhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubMatchingService struct {
	candidates *dto.CandidatesResponse
	compat     *dto.CompatibilityResponse
	err        error
}

func (s *stubMatchingService) GetCandidates(_ *gorm.DB, _ string, _ *dto.CandidatesQuery) (*dto.CandidatesResponse, error) {
	return s.candidates, s.err
}

func (s *stubMatchingService) GetCompatibility(_ *gorm.DB, _, _ string) (*dto.CompatibilityResponse, error) {
	return s.compat, s.err
}

func (s *stubMatchingService) GetWeights() *dto.WeightsResponse {
	return &dto.WeightsResponse{Profiles: matching.WeightProfiles()}
}

func setTestConfig() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "handler-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func newMatchingRouter(svc *stubMatchingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	setTestConfig()

	router := gin.New()
	router.Use(middleware.DBMiddleware(&gorm.DB{}))

	handler := NewMatchingHandler(NewBaseHandler(validator.New()), svc)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("user-1", "buddy")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestGetCandidates_RequiresAuth(t *testing.T) {
	router := newMatchingRouter(&stubMatchingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matching/candidates", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCandidates_OK(t *testing.T) {
	svc := &stubMatchingService{
		candidates: &dto.CandidatesResponse{
			RelationshipType: "buddy",
			TotalCandidates:  1,
			Matches: []dto.CandidateDTO{
				{UserID: "c1", DisplayName: "Sam", Score: 87},
			},
		},
	}
	router := newMatchingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matching/candidates?limit=5", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"relationship_type":"buddy"`)
	assert.Contains(t, w.Body.String(), `"score":87`)
}

func TestGetCandidates_InvalidRelationshipType(t *testing.T) {
	router := newMatchingRouter(&stubMatchingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matching/candidates?type=romance", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCandidates_ServiceError(t *testing.T) {
	svc := &stubMatchingService{err: apperrors.NewProfileIncompleteError("Complete your profile before browsing candidates")}
	router := newMatchingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matching/candidates", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Complete your profile")
}

func TestGetCompatibility_MissingUserID(t *testing.T) {
	router := newMatchingRouter(&stubMatchingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matching/compatibility", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCompatibility_OK(t *testing.T) {
	svc := &stubMatchingService{
		compat: &dto.CompatibilityResponse{UserID: "other", Score: 64},
	}
	router := newMatchingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matching/compatibility?user_id=other", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"score":64`)
}

func TestGetWeights_OK(t *testing.T) {
	router := newMatchingRouter(&stubMatchingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matching/weights", nil)
	req.Header.Set("Authorization", bearerToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"buddy"`)
	assert.Contains(t, w.Body.String(), `"min_score"`)
}
