package postgres

import (
	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/config"
	"github.com/atelierhq/design-studio-api/internal/repository"
)

type postgresRepository struct {
	writerDB     *gorm.DB
	readerDB     *gorm.DB
	accountRepo  repository.AccountRepository
	projectRepo  repository.ProjectRepository
	designRepo   repository.DesignRepository
	activityRepo repository.ActivityRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:     dbConnections.Writer,
		readerDB:     dbConnections.Reader,
		accountRepo:  NewAccountRepository(dbConnections.Writer, dbConnections.Reader),
		projectRepo:  NewProjectRepository(dbConnections.Writer, dbConnections.Reader),
		designRepo:   NewDesignRepository(dbConnections.Writer, dbConnections.Reader),
		activityRepo: NewActivityRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Account() repository.AccountRepository {
	return r.accountRepo
}

func (r *postgresRepository) Project() repository.ProjectRepository {
	return r.projectRepo
}

func (r *postgresRepository) Design() repository.DesignRepository {
	return r.designRepo
}

func (r *postgresRepository) Activity() repository.ActivityRepository {
	return r.activityRepo
}
