package repository

import (
	"context"
	"errors"

	"github.com/atelierhq/design-studio-api/internal/domain"
)

// ErrQuotaExhausted is returned when the guarded usage increment touches no
// rows: the account is free tier and already at its generation limit.
var ErrQuotaExhausted = errors.New("generation quota exhausted")

//go:generate mockery --name AccountRepository --output ../mocks
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateTier(ctx context.Context, id string, tier domain.PlanTier) error
	// ChargeGeneration atomically increments ai_generations_used by 1, guarded
	// by used < limit for free-tier accounts. Returns false without error when
	// the guard rejects the increment.
	ChargeGeneration(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Account, error)
}

//go:generate mockery --name ProjectRepository --output ../mocks
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, accountID string) ([]domain.Project, error)
	CountByAccount(ctx context.Context, accountID string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

//go:generate mockery --name DesignRepository --output ../mocks
type DesignRepository interface {
	// CreateAndCharge inserts the design and charges one generation against
	// the owning account in a single transaction. If the guarded increment
	// rejects the charge the insert is rolled back and ErrQuotaExhausted is
	// returned, so a persisted design always has a committed charge and a
	// failed persist never charges.
	CreateAndCharge(ctx context.Context, design *domain.Design) error
	GetByID(ctx context.Context, id string) (*domain.Design, error)
	List(ctx context.Context, filter domain.DesignFilter) ([]domain.Design, error)
	Delete(ctx context.Context, id string) (int64, error)
}

//go:generate mockery --name ActivityRepository --output ../mocks
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	Index(ctx context.Context, design *domain.Design) error
	Search(ctx context.Context, filter *domain.DesignFilter) ([]domain.Design, error)
	Delete(ctx context.Context, accountID, designID string) error
	CreateIndex(ctx context.Context, accountID string) error
	DeleteIndex(ctx context.Context, accountID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Account() AccountRepository
	Project() ProjectRepository
	Design() DesignRepository
	Activity() ActivityRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
