package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/repository"
	"github.com/atelierhq/design-studio-api/internal/utils"
)

type DesignRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewDesignRepository(writerDB, readerDB *gorm.DB) *DesignRepository {
	return &DesignRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// CreateAndCharge persists the design and charges the owning account inside
// one transaction. The charge is a guarded increment: if the account is
// already at its limit (lost a race since the earlier check) nothing is
// inserted and repository.ErrQuotaExhausted comes back.
func (r *DesignRepository) CreateAndCharge(ctx context.Context, design *domain.Design) error {
	if design.ID == "" {
		design.ID = uuid.New().String()
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(design).Error; err != nil {
			return err
		}

		result := tx.Exec(`
			UPDATE accounts
			SET ai_generations_used = ai_generations_used + 1, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
			AND (ai_generations_limit < 0 OR ai_generations_used < ai_generations_limit)`,
			design.AccountID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrQuotaExhausted
		}
		return nil
	})
}

func (r *DesignRepository) GetByID(ctx context.Context, id string) (*domain.Design, error) {
	db, err := getAccountScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var design domain.Design
	if err := db.First(&design, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &design, nil
}

func (r *DesignRepository) List(ctx context.Context, filter domain.DesignFilter) ([]domain.Design, error) {
	var designs []domain.Design

	db := r.readerDB.WithContext(ctx)
	if filter.AccountID == "" {
		accountID, err := utils.GetAccountIDFromContext(ctx)
		if err != nil {
			return nil, err
		}
		filter.AccountID = accountID
	}
	db = db.Where("account_id = ?", filter.AccountID)

	if filter.ProjectID != "" {
		db = db.Where("project_id = ?", filter.ProjectID)
	}
	if filter.RoomType != "" {
		db = db.Where("room_type = ?", filter.RoomType)
	}
	if filter.Style != "" {
		db = db.Where("style = ?", filter.Style)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("created_at <= ?", filter.EndTime)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	db = db.Order("created_at DESC")

	if err := db.Find(&designs).Error; err != nil {
		return nil, err
	}

	return designs, nil
}

func (r *DesignRepository) Delete(ctx context.Context, id string) (int64, error) {
	db, err := getAccountScope(r.writerDB, ctx)
	if err != nil {
		return 0, err
	}

	result := db.Delete(&domain.Design{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
