package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/repository"
	"github.com/kingrain94/property-docs-api/internal/templating"
)

type ContextResolver struct {
	repo repository.PostgresRepository
}

func NewContextResolver(repo repository.PostgresRepository) *ContextResolver {
	return &ContextResolver{repo: repo}
}

// ResolveContext loads the property and optional tenant a document is generated for
// and checks that the caller owns the property and the tenant lives there.
func (r *ContextResolver) ResolveContext(ctx context.Context, identity *domain.Identity, propertyID, tenantID string) (templating.Context, error) {
	if propertyID == "" {
		return templating.Context{}, ErrPropertyIDRequired
	}
	if !isValidID(propertyID) {
		return templating.Context{}, ErrPropertyNotFound
	}

	property, err := r.repo.Property().GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return templating.Context{}, ErrPropertyNotFound
		}
		return templating.Context{}, fmt.Errorf("failed to load property: %w", err)
	}
	if !property.IsOwnedBy(identity.ID) {
		return templating.Context{}, ErrPropertyAccessDenied
	}

	var tenant *domain.Tenant
	if tenantID != "" {
		if !isValidID(tenantID) {
			return templating.Context{}, ErrTenantNotAssociated
		}
		tenant, err = r.repo.Tenant().GetByID(ctx, tenantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return templating.Context{}, ErrTenantNotAssociated
			}
			return templating.Context{}, fmt.Errorf("failed to load tenant: %w", err)
		}
		if !tenant.BelongsTo(property.ID) {
			return templating.Context{}, ErrTenantNotAssociated
		}
	}

	return templating.Context{
		Property: property,
		Tenant:   tenant,
		Landlord: identity,
	}, nil
}
