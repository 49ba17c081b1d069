package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/domain"
)

type ProjectRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewProjectRepository(writerDB, readerDB *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	db, err := getAccountScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var project domain.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context, accountID string) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.readerDB.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).Model(&domain.Project{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

// Delete removes the project; its designs go with it via the cascade.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (int64, error) {
	db, err := getAccountScope(r.writerDB, ctx)
	if err != nil {
		return 0, err
	}

	result := db.Delete(&domain.Project{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
