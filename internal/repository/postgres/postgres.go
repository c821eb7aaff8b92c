package postgres

import (
	"gorm.io/gorm"

	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/repository"
)

type postgresRepository struct {
	writerDB     *gorm.DB
	readerDB     *gorm.DB
	templateRepo repository.TemplateRepository
	propertyRepo repository.PropertyRepository
	tenantRepo   repository.TenantRepository
	documentRepo repository.DocumentRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:     dbConnections.Writer,
		readerDB:     dbConnections.Reader,
		templateRepo: NewTemplateRepository(dbConnections.Reader),
		propertyRepo: NewPropertyRepository(dbConnections.Reader),
		tenantRepo:   NewTenantRepository(dbConnections.Reader),
		documentRepo: NewDocumentRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Template() repository.TemplateRepository {
	return r.templateRepo
}

func (r *postgresRepository) Property() repository.PropertyRepository {
	return r.propertyRepo
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Document() repository.DocumentRepository {
	return r.documentRepo
}
