package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/property-docs-api/internal/domain"
)

type TenantRepository struct {
	readerDB *gorm.DB
}

func NewTenantRepository(readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		readerDB: readerDB,
	}
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}
