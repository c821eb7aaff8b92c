package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/property-docs-api/internal/domain"
)

type DocumentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewDocumentRepository(writerDB, readerDB *gorm.DB) *DocumentRepository {
	return &DocumentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}

	// Use writer database for create operations
	return r.writerDB.WithContext(ctx).Create(doc).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	var doc domain.Document

	db, err := getOwnerScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if err := db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepository) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	var docs []domain.Document

	db := r.readerDB.WithContext(ctx)
	if filter.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	db = db.Where("user_id = ?", filter.UserID)

	if filter.PropertyID != "" {
		db = db.Where("property_id = ?", filter.PropertyID)
	}
	if filter.TenantID != "" {
		db = db.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("created_at <= ?", filter.EndTime)
	}

	db = paginate(db, filter.Page, filter.PageSize, filter.Limit, filter.Offset)

	if err := db.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// ListGeneratedBefore returns the template-generated documents of userID created before beforeDate.
func (r *DocumentRepository) ListGeneratedBefore(ctx context.Context, userID string, beforeDate time.Time) ([]domain.Document, error) {
	var docs []domain.Document

	err := r.readerDB.WithContext(ctx).
		Where("user_id = ? AND template_id IS NOT NULL AND created_at < ?", userID, beforeDate).
		Order("created_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (r *DocumentRepository) DeleteGeneratedBefore(ctx context.Context, userID string, beforeDate time.Time) (int64, error) {
	// Use writer database for delete operations
	result := r.writerDB.WithContext(ctx).
		Where("user_id = ? AND template_id IS NOT NULL AND created_at < ?", userID, beforeDate).
		Delete(&domain.Document{})

	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
