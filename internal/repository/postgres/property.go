package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/property-docs-api/internal/domain"
)

type PropertyRepository struct {
	readerDB *gorm.DB
}

func NewPropertyRepository(readerDB *gorm.DB) *PropertyRepository {
	return &PropertyRepository{
		readerDB: readerDB,
	}
}

// GetByID loads a property regardless of owner; ownership is checked by the caller
// so a foreign property can be told apart from a missing one.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var property domain.Property
	if err := r.readerDB.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}
