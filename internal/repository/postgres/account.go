package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/domain"
)

type AccountRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAccountRepository(writerDB, readerDB *gorm.DB) *AccountRepository {
	return &AccountRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if account.PlanTier == "" {
		account.PlanTier = string(domain.PlanFree)
	}
	account.AIGenerationsLimit = domain.LimitsForTier(domain.PlanTier(account.PlanTier)).AIGenerations

	if err := r.writerDB.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	if err := r.readerDB.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	if err := r.readerDB.WithContext(ctx).First(&account, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateTier switches the plan and resets the usage counter, mirroring a
// subscription change taking effect immediately.
func (r *AccountRepository) UpdateTier(ctx context.Context, id string, tier domain.PlanTier) error {
	limit := domain.LimitsForTier(tier).AIGenerations

	result := r.writerDB.WithContext(ctx).Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"plan_tier":            string(tier),
			"ai_generations_used":  0,
			"ai_generations_limit": limit,
			"updated_at":           time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ChargeGeneration is the quota commit: a single conditional UPDATE so two
// concurrent requests can never both pass the check and jointly exceed the
// limit. A negative limit means the tier is unmetered.
func (r *AccountRepository) ChargeGeneration(ctx context.Context, id string) (bool, error) {
	result := r.writerDB.WithContext(ctx).Exec(`
		UPDATE accounts
		SET ai_generations_used = ai_generations_used + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		AND (ai_generations_limit < 0 OR ai_generations_used < ai_generations_limit)`,
		id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := r.readerDB.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
