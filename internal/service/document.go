package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/repository"
	"github.com/kingrain94/property-docs-api/internal/templating"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

//go:generate mockery --name DocumentBroadcaster --output ../mocks
type DocumentBroadcaster interface {
	BroadcastDocument(event *domain.DocumentEvent)
}

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendIndexMessage(ctx context.Context, event *domain.DocumentEvent) error
	SendArchiveMessage(ctx context.Context, userID string, beforeDate time.Time) error
}

type DocumentService struct {
	repo        repository.Repository
	sqsSvc      SQSService
	broadcaster DocumentBroadcaster
	resolver    *ContextResolver
	engine      *templating.Engine
	logger      *logger.Logger
}

func NewDocumentService(repo repository.Repository, sqsSvc SQSService, engine *templating.Engine, logger *logger.Logger) *DocumentService {
	return &DocumentService{
		repo:     repo,
		sqsSvc:   sqsSvc,
		resolver: NewContextResolver(repo),
		engine:   engine,
		logger:   logger,
	}
}

// SetBroadcaster sets the realtime broadcaster
func (s *DocumentService) SetBroadcaster(broadcaster DocumentBroadcaster) {
	s.broadcaster = broadcaster
}

// Generate fills a template for one of the caller's properties and, unless the
// request opts out, stores the rendered document.
func (s *DocumentService) Generate(ctx context.Context, identity *domain.Identity, templateID string, req dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error) {
	if err := AuthorizeCaller(identity); err != nil {
		return nil, err
	}
	if req.PropertyID == "" {
		return nil, ErrPropertyIDRequired
	}

	tmpl, err := getTemplate(ctx, s.repo, templateID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeTemplate(identity, tmpl); err != nil {
		return nil, err
	}

	genCtx, err := s.resolver.ResolveContext(ctx, identity, req.PropertyID, req.TenantID)
	if err != nil {
		return nil, err
	}

	out, err := s.engine.Generate(tmpl, genCtx, req.Title, req.CustomVariables)
	if err != nil {
		return nil, err
	}

	var saved *domain.Document
	if req.SaveToDocuments.ShouldSave() {
		saved = newGeneratedDocument(identity, tmpl, genCtx, out, req.ShareWithTenant)
		if err := s.repo.Document().Create(ctx, saved); err != nil {
			return nil, fmt.Errorf("failed to store document: %w", err)
		}
		s.publish(ctx, newDocumentEvent(saved, out))
	}

	return dto.NewGenerateDocumentResponse(out.Title, out.HTML, tmpl, genCtx.Property, genCtx.Tenant, saved), nil
}

func newGeneratedDocument(identity *domain.Identity, tmpl *domain.Template, genCtx templating.Context, out *templating.Output, shared bool) *domain.Document {
	fileURL, size := templating.EncodeDataURI(out.HTML)

	templateID := tmpl.ID
	doc := &domain.Document{
		ID:          uuid.New().String(),
		UserID:      identity.ID,
		TemplateID:  &templateID,
		PropertyID:  genCtx.Property.ID,
		Name:        out.Title,
		Description: "Generated from template: " + tmpl.Name,
		FileURL:     fileURL,
		FileType:    domain.FileTypeHTML,
		FileSize:    size,
		Category:    tmpl.Category,
		IsShared:    shared,
		CreatedAt:   out.GeneratedAt,
		UpdatedAt:   out.GeneratedAt,
	}
	if genCtx.Tenant != nil {
		tenantID := genCtx.Tenant.ID
		doc.TenantID = &tenantID
	}
	return doc
}

func newDocumentEvent(doc *domain.Document, out *templating.Output) *domain.DocumentEvent {
	event := &domain.DocumentEvent{
		DocumentID: doc.ID,
		UserID:     doc.UserID,
		PropertyID: doc.PropertyID,
		Title:      doc.Name,
		Category:   doc.Category,
		Body:       out.Body,
		IsShared:   doc.IsShared,
		CreatedAt:  doc.CreatedAt,
	}
	if doc.TemplateID != nil {
		event.TemplateID = *doc.TemplateID
	}
	if doc.TenantID != nil {
		event.TenantID = *doc.TenantID
	}
	return event
}

// publish hands a stored document to the indexer and the realtime stream.
// Neither is allowed to fail the request.
func (s *DocumentService) publish(ctx context.Context, event *domain.DocumentEvent) {
	if err := s.sqsSvc.SendIndexMessage(ctx, event); err != nil {
		s.logger.Errorf("failed to send index message for document %s: %v", event.DocumentID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastDocument(event)
	}
}

func (s *DocumentService) GetByID(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	if !isValidID(id) {
		return nil, ErrDocumentNotFound
	}
	doc, err := s.repo.Document().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return dto.FromDocument(doc, true), nil
}

func normalizePage(filter *domain.DocumentFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize
}

// List returns stored documents from the database, newest first.
func (s *DocumentService) List(ctx context.Context, filter *domain.DocumentFilter) ([]dto.DocumentResponse, error) {
	normalizePage(filter)

	docs, err := s.repo.Document().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromDocuments(docs), nil
}

// Search runs a full-text query over the text of generated documents.
func (s *DocumentService) Search(ctx context.Context, filter *domain.DocumentFilter) ([]dto.DocumentSearchHit, error) {
	normalizePage(filter)

	events, err := s.repo.Search().Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromDocumentEvents(events), nil
}

// ScheduleCleanup queues archiving, then deletion, of the generated documents
// userID created before beforeDate.
func (s *DocumentService) ScheduleCleanup(ctx context.Context, userID string, beforeDate time.Time) error {
	return s.sqsSvc.SendArchiveMessage(ctx, userID, beforeDate)
}
