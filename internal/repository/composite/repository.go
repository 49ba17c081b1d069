package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/atelierhq/design-studio-api/internal/config"
	"github.com/atelierhq/design-studio-api/internal/repository"
	"github.com/atelierhq/design-studio-api/internal/repository/opensearch"
	"github.com/atelierhq/design-studio-api/internal/repository/postgres"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	searchRepo   repository.SearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		postgresRepo: postgres.NewPostgresRepository(dbConnections),
		searchRepo:   opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Account() repository.AccountRepository {
	return r.postgresRepo.Account()
}

func (r *compositeRepository) Project() repository.ProjectRepository {
	return r.postgresRepo.Project()
}

func (r *compositeRepository) Design() repository.DesignRepository {
	return r.postgresRepo.Design()
}

func (r *compositeRepository) Activity() repository.ActivityRepository {
	return r.postgresRepo.Activity()
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
