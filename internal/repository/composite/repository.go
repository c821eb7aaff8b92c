package composite

import (
	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/repository"
	"github.com/kingrain94/property-docs-api/internal/repository/opensearch"
	"github.com/kingrain94/property-docs-api/internal/repository/postgres"
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"
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

func (r *compositeRepository) Template() repository.TemplateRepository {
	return r.postgresRepo.Template()
}

func (r *compositeRepository) Property() repository.PropertyRepository {
	return r.postgresRepo.Property()
}

func (r *compositeRepository) Tenant() repository.TenantRepository {
	return r.postgresRepo.Tenant()
}

func (r *compositeRepository) Document() repository.DocumentRepository {
	return r.postgresRepo.Document()
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
