package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/property-docs-api/internal/domain"
)

type TemplateRepository struct {
	readerDB *gorm.DB
}

func NewTemplateRepository(readerDB *gorm.DB) *TemplateRepository {
	return &TemplateRepository{
		readerDB: readerDB,
	}
}

func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	var tmpl domain.Template
	if err := r.readerDB.WithContext(ctx).First(&tmpl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// ListUsable returns the system templates plus the ones owned by filter.UserID.
func (r *TemplateRepository) ListUsable(ctx context.Context, filter domain.TemplateFilter) ([]domain.Template, error) {
	if filter.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	var templates []domain.Template
	db := r.readerDB.WithContext(ctx).
		Where("is_system = ? OR user_id = ?", true, filter.UserID)
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}

	if err := db.Order("is_system DESC, name ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}
