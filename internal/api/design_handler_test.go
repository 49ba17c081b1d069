package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/config"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/middleware"
	"github.com/atelierhq/design-studio-api/internal/service"
	"github.com/atelierhq/design-studio-api/internal/utils"
)

type DesignHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockGeneration *MockGenerationService
	mockDesigns    *MockDesignService
	handler        *DesignHandler
}

type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) GenerateDesign(ctx context.Context, req service.GenerationRequest) (*dto.DesignResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DesignResponse), args.Error(1)
}

func (m *MockGenerationService) GenerateMarketing(ctx context.Context, req dto.GenerateMarketingRequest) (*dto.MarketingContentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MarketingContentResponse), args.Error(1)
}

func (m *MockGenerationService) GenerateInsights(ctx context.Context, projectID string) (*dto.ProjectInsightsResponse, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectInsightsResponse), args.Error(1)
}

type MockDesignService struct {
	mock.Mock
}

func (m *MockDesignService) GetByID(ctx context.Context, id string) (*dto.DesignResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DesignResponse), args.Error(1)
}

func (m *MockDesignService) List(ctx context.Context, filter *domain.DesignFilter) ([]dto.DesignResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DesignResponse), args.Error(1)
}

func (m *MockDesignService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (s *DesignHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockGeneration = new(MockGenerationService)
	s.mockDesigns = new(MockDesignService)
	s.handler = NewDesignHandler(s.mockGeneration, s.mockDesigns)

	// Inject claims the way the auth middleware does
	s.router.Use(func(c *gin.Context) {
		c.Set(string(utils.ClaimsKey), jwt.MapClaims{
			"account_id": "account1",
			"plan_tier":  "free",
		})
		c.Next()
	})

	s.router.POST("/designs/generate", s.handler.GenerateDesign)
	s.router.GET("/designs", s.handler.ListDesigns)
	s.router.GET("/designs/:id", s.handler.GetDesign)
	s.router.DELETE("/designs/:id", s.handler.DeleteDesign)
	s.router.POST("/marketing/draft", s.handler.GenerateMarketing)
	s.router.POST("/projects/:id/insights", s.handler.GenerateInsights)
}

func TestDesignHandler(t *testing.T) {
	suite.Run(t, new(DesignHandlerTestSuite))
}

func (s *DesignHandlerTestSuite) TestGenerateDesign_Success() {
	// Arrange
	expected := &dto.DesignResponse{
		ID:          "design1",
		ProjectID:   "project1",
		AccountID:   "account1",
		RoomType:    "living room",
		Style:       "scandinavian",
		Description: "A bright, airy living room.",
		ImageURLs:   []string{"https://img/1.png", "https://img/2.png", "https://img/3.png"},
	}
	s.mockGeneration.On("GenerateDesign", mock.Anything, mock.AnythingOfType("service.GenerationRequest")).Return(expected, nil)

	body, _ := json.Marshal(dto.GenerateDesignRequest{
		ProjectID: "project1",
		RoomType:  "living room",
		Style:     "scandinavian",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/designs/generate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)

	var resp dto.DesignResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("design1", resp.ID)
	s.Len(resp.ImageURLs, 3)
	s.mockGeneration.AssertExpectations(s.T())
}

func (s *DesignHandlerTestSuite) TestGenerateDesign_QuotaExceeded() {
	// Arrange
	s.mockGeneration.On("GenerateDesign", mock.Anything, mock.AnythingOfType("service.GenerationRequest")).Return(nil, service.ErrQuotaExceeded)

	body, _ := json.Marshal(dto.GenerateDesignRequest{
		ProjectID: "project1",
		RoomType:  "living room",
		Style:     "scandinavian",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/designs/generate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)

	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("quota_exceeded", resp.Kind)
}

func (s *DesignHandlerTestSuite) TestGenerateDesign_ValidationError() {
	// Arrange
	s.mockGeneration.On("GenerateDesign", mock.Anything, mock.AnythingOfType("service.GenerationRequest")).
		Return(nil, &service.ValidationError{Field: "room_type", Reason: "must not be empty"})

	body, _ := json.Marshal(dto.GenerateDesignRequest{
		ProjectID: "project1",
		RoomType:  "   ",
		Style:     "scandinavian",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/designs/generate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)

	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("validation", resp.Kind)
}

func (s *DesignHandlerTestSuite) TestGenerateDesign_ProviderTimeout() {
	// Arrange
	s.mockGeneration.On("GenerateDesign", mock.Anything, mock.AnythingOfType("service.GenerationRequest")).Return(nil, service.ErrProviderTimeout)

	body, _ := json.Marshal(dto.GenerateDesignRequest{
		ProjectID: "project1",
		RoomType:  "living room",
		Style:     "scandinavian",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/designs/generate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusGatewayTimeout, w.Code)

	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("provider_timeout", resp.Kind)
}

func (s *DesignHandlerTestSuite) TestGenerateDesign_ProviderError() {
	// Arrange
	s.mockGeneration.On("GenerateDesign", mock.Anything, mock.AnythingOfType("service.GenerationRequest")).
		Return(nil, &service.ProviderError{StatusCode: 500, Message: "upstream exploded"})

	body, _ := json.Marshal(dto.GenerateDesignRequest{
		ProjectID: "project1",
		RoomType:  "living room",
		Style:     "scandinavian",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/designs/generate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusBadGateway, w.Code)
}

func (s *DesignHandlerTestSuite) TestListDesigns_PassesFilter() {
	// Arrange
	s.mockDesigns.On("List", mock.Anything, mock.MatchedBy(func(f *domain.DesignFilter) bool {
		return f.RoomType == "bedroom" && f.Query == "cozy" && f.Page == 2
	})).Return([]dto.DesignResponse{{ID: "design1"}}, nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/designs?room_type=bedroom&q=cozy&page=2", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockDesigns.AssertExpectations(s.T())
}

func (s *DesignHandlerTestSuite) TestListDesigns_RejectsInvertedTimeRange() {
	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/designs?start_time=2026-02-01&end_time=2026-01-01", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockDesigns.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *DesignHandlerTestSuite) TestGetDesign_NotFound() {
	// Arrange
	s.mockDesigns.On("GetByID", mock.Anything, "missing").Return(nil, service.ErrDesignNotFound)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/designs/missing", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)

	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("not_found", resp.Kind)
}

func (s *DesignHandlerTestSuite) TestDeleteDesign_Success() {
	// Arrange
	s.mockDesigns.On("Delete", mock.Anything, "design1").Return(nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/designs/design1", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
	s.mockDesigns.AssertExpectations(s.T())
}

func (s *DesignHandlerTestSuite) TestGenerateDesign_KeywordsCommaString() {
	// Arrange
	expected := &dto.DesignResponse{ID: "design1"}
	s.mockGeneration.On("GenerateDesign", mock.Anything, mock.MatchedBy(func(r service.GenerationRequest) bool {
		return len(r.Keywords) == 3 &&
			strings.TrimSpace(r.Keywords[0]) == "cozy" &&
			strings.TrimSpace(r.Keywords[1]) == "natural light" &&
			strings.TrimSpace(r.Keywords[2]) == "plants"
	})).Return(expected, nil)

	body := []byte(`{"project_id":"project1","room_type":"living room","style":"scandinavian","keywords":"cozy, natural light, plants"}`)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/designs/generate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	s.mockGeneration.AssertExpectations(s.T())
}

// tierRouter builds a router whose claims carry the given plan tier in both
// the gin keys and the request context, the way the auth middleware does.
func (s *DesignHandlerTestSuite) tierRouter(tier string) *gin.Engine {
	auth := middleware.NewAuthMiddleware(&config.Config{})
	router := gin.New()
	router.Use(func(c *gin.Context) {
		claims := jwt.MapClaims{
			"account_id": "account1",
			"plan_tier":  tier,
		}
		c.Set(string(utils.ClaimsKey), claims)
		ctx := context.WithValue(c.Request.Context(), utils.ClaimsKey, claims)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	router.POST("/marketing/draft", auth.RequireTier("pro", "agency"), s.handler.GenerateMarketing)
	return router
}

func (s *DesignHandlerTestSuite) TestGenerateMarketing_FreeTierForbidden() {
	// Arrange
	router := s.tierRouter("free")

	body, _ := json.Marshal(dto.GenerateMarketingRequest{
		ProjectID:   "project1",
		ContentType: "social media post",
		Platform:    "instagram",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/marketing/draft", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
	s.mockGeneration.AssertNotCalled(s.T(), "GenerateMarketing", mock.Anything, mock.Anything)
}

func (s *DesignHandlerTestSuite) TestGenerateMarketing_ProTierAllowed() {
	// Arrange
	router := s.tierRouter("pro")
	expected := &dto.MarketingContentResponse{
		ProjectID:   "project1",
		ContentType: "social media post",
		Platform:    "instagram",
		Content:     "Step inside our latest refresh.",
	}
	s.mockGeneration.On("GenerateMarketing", mock.Anything, mock.AnythingOfType("dto.GenerateMarketingRequest")).Return(expected, nil)

	body, _ := json.Marshal(dto.GenerateMarketingRequest{
		ProjectID:   "project1",
		ContentType: "social media post",
		Platform:    "instagram",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/marketing/draft", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockGeneration.AssertExpectations(s.T())
}

func (s *DesignHandlerTestSuite) TestGenerateMarketing_Success() {
	// Arrange
	expected := &dto.MarketingContentResponse{
		ProjectID:   "project1",
		ContentType: "social media post",
		Platform:    "instagram",
		Content:     "Step inside our latest refresh.",
	}
	s.mockGeneration.On("GenerateMarketing", mock.Anything, mock.AnythingOfType("dto.GenerateMarketingRequest")).Return(expected, nil)

	body, _ := json.Marshal(dto.GenerateMarketingRequest{
		ProjectID:   "project1",
		ContentType: "social media post",
		Platform:    "instagram",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/marketing/draft", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)

	var resp dto.MarketingContentResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("instagram", resp.Platform)
}

func (s *DesignHandlerTestSuite) TestGenerateInsights_Success() {
	// Arrange
	expected := &dto.ProjectInsightsResponse{
		ProjectID: "project1",
		Insights:  "Budget health: on track.",
	}
	s.mockGeneration.On("GenerateInsights", mock.Anything, "project1").Return(expected, nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/projects/project1/insights", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)

	var resp dto.ProjectInsightsResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Budget health: on track.", resp.Insights)
}
