package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/mocks"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockAccount *mocks.AccountRepository
	service     *AccountService
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockAccount = new(mocks.AccountRepository)

	s.mockRepo.On("Account").Return(s.mockAccount)

	s.service = NewAccountService(s.mockRepo)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreate_DefaultsToFreeTier() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:  "Nordic Interiors",
		Email: "studio@nordic-interiors.com",
	}

	s.mockAccount.On("GetByEmail", ctx, req.Email).Return(nil, gorm.ErrRecordNotFound)
	s.mockAccount.On("Create", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.PlanTier == "free"
	})).Return(&domain.Account{
		ID:                 "account1",
		Name:               req.Name,
		Email:              req.Email,
		PlanTier:           "free",
		AIGenerationsLimit: 5,
	}, nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("free", resp.PlanTier)
	s.Equal(5, resp.AIGenerationsLimit)
	s.mockAccount.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreate_RejectsUnknownTier() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:     "Nordic Interiors",
		Email:    "studio@nordic-interiors.com",
		PlanTier: "platinum",
	}

	// Act
	_, err := s.service.Create(ctx, req)

	// Assert
	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal("plan_tier", validationErr.Field)
	s.mockAccount.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreate_DuplicateEmail() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:  "Nordic Interiors",
		Email: "studio@nordic-interiors.com",
	}

	s.mockAccount.On("GetByEmail", ctx, req.Email).Return(&domain.Account{ID: "existing"}, nil)

	// Act
	_, err := s.service.Create(ctx, req)

	// Assert
	s.ErrorIs(err, ErrEmailAlreadyExists)
	s.mockAccount.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestGetByID_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockAccount.On("GetByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.GetByID(ctx, "missing")

	// Assert
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountServiceTestSuite) TestUpdateTier_Success() {
	// Arrange
	ctx := context.Background()
	s.mockAccount.On("UpdateTier", ctx, "account1", domain.PlanPro).Return(nil)
	s.mockAccount.On("GetByID", ctx, "account1").Return(&domain.Account{
		ID:                 "account1",
		PlanTier:           "pro",
		AIGenerationsUsed:  0,
		AIGenerationsLimit: -1,
	}, nil)

	// Act
	resp, err := s.service.UpdateTier(ctx, "account1", dto.UpdatePlanTierRequest{PlanTier: "pro"})

	// Assert
	s.NoError(err)
	s.Equal("pro", resp.PlanTier)
	s.Equal(0, resp.AIGenerationsUsed)
	s.Equal(-1, resp.AIGenerationsLimit)
	s.mockAccount.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestUpdateTier_RejectsUnknownTier() {
	// Arrange
	ctx := context.Background()

	// Act
	_, err := s.service.UpdateTier(ctx, "account1", dto.UpdatePlanTierRequest{PlanTier: "enterprise"})

	// Assert
	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
	s.mockAccount.AssertNotCalled(s.T(), "UpdateTier", mock.Anything, mock.Anything, mock.Anything)
}
