package service

import (
	"context"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/repository"
)

type ActivityService struct {
	repo repository.Repository
}

func NewActivityService(repo repository.Repository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) List(ctx context.Context, filter *domain.ActivityFilter) ([]dto.ActivityResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	activities, err := s.repo.Activity().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromActivities(activities), nil
}
