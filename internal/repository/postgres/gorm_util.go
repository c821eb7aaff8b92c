package postgres

import (
	"context"

	"github.com/kingrain94/property-docs-api/internal/utils"
	"gorm.io/gorm"
)

// getOwnerScope returns a database instance restricted to rows owned by the caller in ctx
func getOwnerScope(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where("user_id = ?", identity.ID), nil
}

// paginate applies limit/offset, deriving them from page/page_size when set
func paginate(db *gorm.DB, page, pageSize, limit, offset int) *gorm.DB {
	if page > 0 && pageSize > 0 {
		limit = pageSize
		offset = (page - 1) * pageSize
	}
	if limit > 0 {
		db = db.Limit(limit)
	}
	if offset > 0 {
		db = db.Offset(offset)
	}
	return db
}
