package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/repository"
	"github.com/kingrain94/property-docs-api/internal/templating"
)

type TemplateService struct {
	repo repository.PostgresRepository
}

func NewTemplateService(repo repository.PostgresRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

// getTemplate loads a template and maps a missing row or malformed id to ErrTemplateNotFound.
func getTemplate(ctx context.Context, repo repository.PostgresRepository, id string) (*domain.Template, error) {
	if !isValidID(id) {
		return nil, ErrTemplateNotFound
	}
	tmpl, err := repo.Template().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return tmpl, nil
}

func (s *TemplateService) List(ctx context.Context, identity *domain.Identity, category string) ([]dto.TemplateResponse, error) {
	if err := AuthorizeCaller(identity); err != nil {
		return nil, err
	}

	templates, err := s.repo.Template().ListUsable(ctx, domain.TemplateFilter{
		UserID:   identity.ID,
		Category: category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return dto.FromTemplates(templates), nil
}

func (s *TemplateService) GetByID(ctx context.Context, identity *domain.Identity, id string) (*dto.TemplateResponse, error) {
	if err := AuthorizeCaller(identity); err != nil {
		return nil, err
	}

	tmpl, err := getTemplate(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeTemplate(identity, tmpl); err != nil {
		return nil, err
	}
	return dto.FromTemplate(tmpl), nil
}

// Variables lists the built-in placeholders in the order they are applied.
func (s *TemplateService) Variables() []dto.VariableResponse {
	return dto.FromVariables(templating.BuiltinVariables)
}
