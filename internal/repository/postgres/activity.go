package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/utils"
)

type ActivityRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewActivityRepository(writerDB, readerDB *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	return r.writerDB.WithContext(ctx).Create(activity).Error
}

func (r *ActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	var activities []domain.Activity

	db := r.readerDB.WithContext(ctx)
	if filter.AccountID == "" {
		accountID, err := utils.GetAccountIDFromContext(ctx)
		if err != nil {
			return nil, err
		}
		filter.AccountID = accountID
	}
	db = db.Where("account_id = ?", filter.AccountID)

	if filter.Action != "" {
		db = db.Where("action = ?", filter.Action)
	}
	if filter.ResourceType != "" {
		db = db.Where("resource_type = ?", filter.ResourceType)
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

	if err := db.Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}
