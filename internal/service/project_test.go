package service

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/mocks"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockAccount  *mocks.AccountRepository
	mockProject  *mocks.ProjectRepository
	mockActivity *mocks.ActivityRepository
	service      *ProjectService
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockAccount = new(mocks.AccountRepository)
	s.mockProject = new(mocks.ProjectRepository)
	s.mockActivity = new(mocks.ActivityRepository)

	s.mockRepo.On("Account").Return(s.mockAccount)
	s.mockRepo.On("Project").Return(s.mockProject)
	s.mockRepo.On("Activity").Return(s.mockActivity)

	s.service = NewProjectService(s.mockRepo)
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}

func (s *ProjectServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := authedContext("account1")
	s.mockAccount.On("GetByID", ctx, "account1").Return(freeAccount("account1", 0), nil)
	s.mockProject.On("CountByAccount", ctx, "account1").Return(int64(1), nil)
	s.mockProject.On("Create", ctx, mock.MatchedBy(func(p *domain.Project) bool {
		return p.AccountID == "account1" && p.Status == "planning"
	})).Return(&domain.Project{ID: "project1", AccountID: "account1", Title: "Seaside refresh", Status: "planning"}, nil)
	s.mockActivity.On("Create", ctx, mock.AnythingOfType("*domain.Activity")).Return(nil)

	// Act
	resp, err := s.service.Create(ctx, dto.CreateProjectRequest{Title: "Seaside refresh"})

	// Assert
	s.NoError(err)
	s.Equal("project1", resp.ID)
	s.Equal("planning", resp.Status)
	s.mockProject.AssertExpectations(s.T())
}

func (s *ProjectServiceTestSuite) TestCreate_FreeTierProjectCap() {
	// Arrange
	ctx := authedContext("account1")
	s.mockAccount.On("GetByID", ctx, "account1").Return(freeAccount("account1", 0), nil)
	s.mockProject.On("CountByAccount", ctx, "account1").Return(int64(2), nil)

	// Act
	_, err := s.service.Create(ctx, dto.CreateProjectRequest{Title: "One too many"})

	// Assert
	s.ErrorIs(err, ErrProjectLimitReached)
	s.mockProject.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestCreate_UnlimitedTierSkipsCap() {
	// Arrange
	ctx := authedContext("account1")
	account := freeAccount("account1", 0)
	account.PlanTier = "agency"
	s.mockAccount.On("GetByID", ctx, "account1").Return(account, nil)
	s.mockProject.On("Create", ctx, mock.AnythingOfType("*domain.Project")).
		Return(&domain.Project{ID: "project1", AccountID: "account1", Status: "planning"}, nil)
	s.mockActivity.On("Create", ctx, mock.AnythingOfType("*domain.Activity")).Return(nil)

	// Act
	_, err := s.service.Create(ctx, dto.CreateProjectRequest{Title: "Unbounded"})

	// Assert
	s.NoError(err)
	s.mockProject.AssertNotCalled(s.T(), "CountByAccount", mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestCreate_BadDeadline() {
	// Arrange
	ctx := authedContext("account1")
	s.mockAccount.On("GetByID", ctx, "account1").Return(freeAccount("account1", 0), nil)
	s.mockProject.On("CountByAccount", ctx, "account1").Return(int64(0), nil)

	// Act
	_, err := s.service.Create(ctx, dto.CreateProjectRequest{Title: "Seaside refresh", Deadline: "next tuesday"})

	// Assert
	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal("deadline", validationErr.Field)
	s.mockProject.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestDelete_NotFound() {
	// Arrange
	ctx := authedContext("account1")
	s.mockProject.On("Delete", ctx, "missing").Return(int64(0), nil)

	// Act
	err := s.service.Delete(ctx, "missing")

	// Assert
	s.ErrorIs(err, ErrProjectNotFound)
	s.mockActivity.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestDelete_Success() {
	// Arrange
	ctx := authedContext("account1")
	s.mockProject.On("Delete", ctx, "project1").Return(int64(1), nil)
	s.mockActivity.On("Create", ctx, mock.AnythingOfType("*domain.Activity")).Return(nil)

	// Act
	err := s.service.Delete(ctx, "project1")

	// Assert
	s.NoError(err)
	s.mockActivity.AssertExpectations(s.T())
}
