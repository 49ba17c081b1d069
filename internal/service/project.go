package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/repository"
	"github.com/atelierhq/design-studio-api/internal/utils"
	pkgutils "github.com/atelierhq/design-studio-api/pkg/utils"
)

type ProjectService struct {
	repo repository.Repository
}

func NewProjectService(repo repository.Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create adds a project for the calling account, enforcing the plan's
// project cap.
func (s *ProjectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.Account().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	limits := domain.LimitsForTier(account.Tier())
	if limits.Projects != domain.Unlimited {
		count, err := s.repo.Project().CountByAccount(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if count >= int64(limits.Projects) {
			return nil, ErrProjectLimitReached
		}
	}

	if req.Budget != nil && *req.Budget < 0 {
		return nil, &ValidationError{Field: "budget", Reason: "must be a non-negative number"}
	}

	project := &domain.Project{
		AccountID:   accountID,
		Title:       req.Title,
		Description: req.Description,
		Status:      string(domain.ProjectStatusPlanning),
		Budget:      req.Budget,
	}

	if req.Deadline != "" {
		deadline, err := pkgutils.ParseUserTime(req.Deadline, false)
		if err != nil {
			return nil, &ValidationError{Field: "deadline", Reason: "must be RFC3339 or YYYY-MM-DD"}
		}
		project.Deadline = &deadline
	}

	created, err := s.repo.Project().Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, accountID, domain.ActivityProjectCreated, created.ID, created.Title)

	return dto.FromProject(created), nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	project, err := s.repo.Project().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return dto.FromProject(project), nil
}

func (s *ProjectService) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.Project().List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return dto.FromProjects(projects), nil
}

// Delete removes a project. Its designs are cascade-deleted by the database.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		return err
	}

	affected, err := s.repo.Project().Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	s.recordActivity(ctx, accountID, domain.ActivityProjectDeleted, id, "")

	return nil
}

func (s *ProjectService) recordActivity(ctx context.Context, accountID string, action domain.ActivityAction, projectID, title string) {
	activity := &domain.Activity{
		AccountID:    accountID,
		Action:       string(action),
		ResourceType: "project",
		ResourceID:   projectID,
	}
	if title != "" {
		if data, err := json.Marshal(map[string]string{"title": title}); err == nil {
			activity.Metadata = data
		}
	}

	// best effort; the project change itself is already committed
	_ = s.repo.Activity().Create(ctx, activity)
}
