package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/repository"
	"github.com/atelierhq/design-studio-api/internal/utils"
	"github.com/atelierhq/design-studio-api/pkg/logger"
)

type DesignService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewDesignService(repo repository.Repository, log *logger.Logger) *DesignService {
	return &DesignService{repo: repo, logger: log}
}

func (s *DesignService) GetByID(ctx context.Context, id string) (*dto.DesignResponse, error) {
	design, err := s.repo.Design().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, err
	}
	return dto.FromDesign(design), nil
}

func (s *DesignService) List(ctx context.Context, filter *domain.DesignFilter) ([]dto.DesignResponse, error) {
	// Set default values for pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	// Convert page and page size to limit and offset
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	// Free-text queries go to OpenSearch; plain listings stay on PostgreSQL
	if filter.Query != "" {
		designs, err := s.repo.Search().Search(ctx, filter)
		if err != nil {
			return nil, err
		}
		return dto.FromDesigns(designs), nil
	}

	designs, err := s.repo.Design().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromDesigns(designs), nil
}

// Delete removes a design and its search document.
func (s *DesignService) Delete(ctx context.Context, id string) error {
	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		return err
	}

	affected, err := s.repo.Design().Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDesignNotFound
	}

	if err := s.repo.Search().Delete(ctx, accountID, id); err != nil {
		s.logger.Errorf("failed to delete design %s from search index: %v", id, err)
	}

	activity := &domain.Activity{
		AccountID:    accountID,
		Action:       string(domain.ActivityDesignDeleted),
		ResourceType: "design",
		ResourceID:   id,
	}
	if err := s.repo.Activity().Create(ctx, activity); err != nil {
		s.logger.Errorf("failed to record design deletion for account %s: %v", accountID, err)
	}

	return nil
}
