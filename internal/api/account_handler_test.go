package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/config"
	"github.com/atelierhq/design-studio-api/internal/middleware"
	"github.com/atelierhq/design-studio-api/internal/service"
	"github.com/atelierhq/design-studio-api/internal/utils"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAccountService
	handler     *AccountHandler
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Create(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountResponse), args.Error(1)
}

func (m *MockAccountService) GetByID(ctx context.Context, id string) (*dto.AccountResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountResponse), args.Error(1)
}

func (m *MockAccountService) UpdateTier(ctx context.Context, id string, req dto.UpdatePlanTierRequest) (*dto.AccountResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountResponse), args.Error(1)
}

func (m *MockAccountService) List(ctx context.Context) ([]dto.AccountResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AccountResponse), args.Error(1)
}

func (s *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockAccountService)
	s.handler = NewAccountHandler(s.mockService)

	s.router.POST("/accounts", s.handler.CreateAccount)

	authed := s.router.Group("")
	authed.Use(func(c *gin.Context) {
		c.Set(string(utils.ClaimsKey), jwt.MapClaims{
			"account_id": "account1",
			"plan_tier":  "free",
		})
		c.Next()
	})
	authed.GET("/accounts/me", s.handler.GetAccount)
	authed.PUT("/accounts/me/plan", s.handler.UpdatePlanTier)
}

// listRouter wires the account listing behind the agency tier gate with the
// caller's claims in both the gin keys and the request context.
func (s *AccountHandlerTestSuite) listRouter(tier string) *gin.Engine {
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
	router.GET("/accounts", auth.RequireTier("agency"), s.handler.ListAccounts)
	return router
}

func (s *AccountHandlerTestSuite) TestListAccounts_AgencyTier() {
	// Arrange
	router := s.listRouter("agency")
	s.mockService.On("List", mock.Anything).Return([]dto.AccountResponse{
		{ID: "account1", PlanTier: "agency"},
		{ID: "account2", PlanTier: "free"},
	}, nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)

	var resp []dto.AccountResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp, 2)
	s.mockService.AssertExpectations(s.T())
}

func (s *AccountHandlerTestSuite) TestListAccounts_FreeTierForbidden() {
	// Arrange
	router := s.listRouter("free")

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
	s.mockService.AssertNotCalled(s.T(), "List", mock.Anything)
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestCreateAccount_Success() {
	// Arrange
	expected := &dto.AccountResponse{
		ID:                 "account1",
		Name:               "Nordic Interiors",
		Email:              "studio@nordic-interiors.com",
		PlanTier:           "free",
		AIGenerationsLimit: 5,
	}
	s.mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).Return(expected, nil)

	body, _ := json.Marshal(dto.CreateAccountRequest{
		Name:  "Nordic Interiors",
		Email: "studio@nordic-interiors.com",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("free", resp.PlanTier)
	s.Equal(5, resp.AIGenerationsLimit)
	s.mockService.AssertExpectations(s.T())
}

func (s *AccountHandlerTestSuite) TestCreateAccount_DuplicateEmail() {
	// Arrange
	s.mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).Return(nil, service.ErrEmailAlreadyExists)

	body, _ := json.Marshal(dto.CreateAccountRequest{
		Name:  "Nordic Interiors",
		Email: "studio@nordic-interiors.com",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusConflict, w.Code)

	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("conflict", resp.Kind)
}

func (s *AccountHandlerTestSuite) TestGetAccount_UsesClaimAccountID() {
	// Arrange
	expected := &dto.AccountResponse{ID: "account1", AIGenerationsUsed: 4, AIGenerationsLimit: 5}
	s.mockService.On("GetByID", mock.Anything, "account1").Return(expected, nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/accounts/me", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(4, resp.AIGenerationsUsed)
	s.mockService.AssertExpectations(s.T())
}

func (s *AccountHandlerTestSuite) TestUpdatePlanTier_Success() {
	// Arrange
	expected := &dto.AccountResponse{ID: "account1", PlanTier: "pro", AIGenerationsUsed: 0, AIGenerationsLimit: -1}
	s.mockService.On("UpdateTier", mock.Anything, "account1", mock.AnythingOfType("dto.UpdatePlanTierRequest")).Return(expected, nil)

	body, _ := json.Marshal(dto.UpdatePlanTierRequest{PlanTier: "pro"})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/accounts/me/plan", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("pro", resp.PlanTier)
	s.Equal(0, resp.AIGenerationsUsed)
	s.Equal(-1, resp.AIGenerationsLimit)
}
