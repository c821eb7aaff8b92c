package repository

import (
	"context"
	"time"

	"github.com/kingrain94/property-docs-api/internal/domain"
)

//go:generate mockery --name TemplateRepository --output ../mocks
type TemplateRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	ListUsable(ctx context.Context, filter domain.TemplateFilter) ([]domain.Template, error)
}

//go:generate mockery --name PropertyRepository --output ../mocks
type PropertyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
}

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
}

//go:generate mockery --name DocumentRepository --output ../mocks
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	ListGeneratedBefore(ctx context.Context, userID string, beforeDate time.Time) ([]domain.Document, error)
	DeleteGeneratedBefore(ctx context.Context, userID string, beforeDate time.Time) (int64, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	Index(ctx context.Context, event *domain.DocumentEvent) error
	Search(ctx context.Context, filter *domain.DocumentFilter) ([]domain.DocumentEvent, error)
	DeleteBefore(ctx context.Context, userID string, beforeDate time.Time) (int64, error)
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Template() TemplateRepository
	Property() PropertyRepository
	Tenant() TenantRepository
	Document() DocumentRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
