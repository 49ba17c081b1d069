package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/utils"
)

// getAccountScope returns a scoped database instance limited to the caller's
// account, so one designer can never read another's rows.
func getAccountScope(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where("account_id = ?", accountID), nil
}
