package dto

import (
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/templating"
)

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func FromTemplate(t *domain.Template) *TemplateResponse {
	return &TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Content:     t.Content,
		IsSystem:    t.IsSystem,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTemplates(templates []domain.Template) []TemplateResponse {
	responses := make([]TemplateResponse, len(templates))
	for i := range templates {
		responses[i] = *FromTemplate(&templates[i])
	}
	return responses
}

func FromVariables(vars []templating.Variable) []VariableResponse {
	responses := make([]VariableResponse, len(vars))
	for i, v := range vars {
		responses[i] = VariableResponse{Token: v.Token, Description: v.Description, Example: v.Example}
	}
	return responses
}

// FromDocument converts a Document; the inline payload is only kept when withContent is set
func FromDocument(doc *domain.Document, withContent bool) *DocumentResponse {
	resp := &DocumentResponse{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		FileType:    doc.FileType,
		FileSize:    doc.FileSize,
		Category:    doc.Category,
		IsShared:    doc.IsShared,
		TemplateID:  derefString(doc.TemplateID),
		PropertyID:  doc.PropertyID,
		TenantID:    derefString(doc.TenantID),
		CreatedAt:   doc.CreatedAt,
	}
	if withContent {
		resp.FileURL = doc.FileURL
	}
	return resp
}

func FromDocuments(docs []domain.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *FromDocument(&docs[i], false)
	}
	return responses
}

func FromDocumentEvents(events []domain.DocumentEvent) []DocumentSearchHit {
	hits := make([]DocumentSearchHit, len(events))
	for i, e := range events {
		hits[i] = DocumentSearchHit{
			DocumentID: e.DocumentID,
			Title:      e.Title,
			Category:   e.Category,
			PropertyID: e.PropertyID,
			TenantID:   e.TenantID,
			CreatedAt:  e.CreatedAt,
		}
	}
	return hits
}

// NewGenerateDocumentResponse builds the compact response of the generate endpoint.
// tenant and saved may be nil.
func NewGenerateDocumentResponse(title, content string, tmpl *domain.Template, property *domain.Property, tenant *domain.Tenant, saved *domain.Document) *GenerateDocumentResponse {
	resp := &GenerateDocumentResponse{
		Title:   title,
		Content: content,
		Template: TemplateSummary{
			ID:       tmpl.ID,
			Name:     tmpl.Name,
			Category: tmpl.Category,
		},
		Property: PropertySummary{
			ID:      property.ID,
			Address: property.Address,
			City:    property.City,
			State:   property.State,
		},
	}
	if tenant != nil {
		resp.Tenant = &TenantSummary{ID: tenant.ID, Name: tenant.Name, Email: tenant.Email}
	}
	if saved != nil {
		resp.SavedDocument = &SavedDocumentSummary{ID: saved.ID, Name: saved.Name}
	}
	return resp
}
