package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/repository"
)

type AccountService struct {
	repo repository.Repository
}

func NewAccountService(repo repository.Repository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) Create(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	tier := domain.PlanTier(req.PlanTier)
	if req.PlanTier == "" {
		tier = domain.PlanFree
	}
	if !domain.IsValidPlanTier(string(tier)) {
		return nil, &ValidationError{Field: "plan_tier", Reason: fmt.Sprintf("unknown tier %q", req.PlanTier)}
	}

	if _, err := s.repo.Account().GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account := &domain.Account{
		Name:     req.Name,
		Email:    req.Email,
		PlanTier: string(tier),
	}

	created, err := s.repo.Account().Create(ctx, account)
	if err != nil {
		return nil, err
	}

	return dto.FromAccount(created), nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*dto.AccountResponse, error) {
	account, err := s.repo.Account().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return dto.FromAccount(account), nil
}

// UpdateTier switches the account's plan. Usage resets to zero and the
// generation limit becomes the new tier's allowance.
func (s *AccountService) UpdateTier(ctx context.Context, id string, req dto.UpdatePlanTierRequest) (*dto.AccountResponse, error) {
	tier := domain.PlanTier(req.PlanTier)
	if !domain.IsValidPlanTier(req.PlanTier) {
		return nil, &ValidationError{Field: "plan_tier", Reason: fmt.Sprintf("unknown tier %q", req.PlanTier)}
	}

	if err := s.repo.Account().UpdateTier(ctx, id, tier); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]dto.AccountResponse, error) {
	accounts, err := s.repo.Account().List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = *dto.FromAccount(&accounts[i])
	}
	return responses, nil
}
