package dto

import (
	"time"
)

// TemplateSummary identifies the template a document was generated from
type TemplateSummary struct {
	ID       string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name     string `json:"name" example:"Late Rent Notice"`
	Category string `json:"category" example:"notice"`
}

// PropertySummary identifies the property a document was generated for
type PropertySummary struct {
	ID      string `json:"id" example:"9b2f6a51-3c4e-4d8a-9f0b-1c2d3e4f5a6b"`
	Address string `json:"address" example:"123 Main St"`
	City    string `json:"city" example:"Austin"`
	State   string `json:"state" example:"TX"`
}

// TenantSummary identifies the tenant a document was addressed to
type TenantSummary struct {
	ID    string `json:"id" example:"4c1d2e3f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"`
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}

// SavedDocumentSummary identifies the stored copy of a generated document
type SavedDocumentSummary struct {
	ID   string `json:"id" example:"7e8f9a0b-1c2d-4e3f-8a5b-6c7d8e9f0a1b"`
	Name string `json:"name" example:"Late Rent Notice - 123 Main St - Jane Doe"`
}

// GenerateDocumentResponse is returned by the generate endpoint
type GenerateDocumentResponse struct {
	Title         string                `json:"title" example:"Late Rent Notice - 123 Main St - Jane Doe"`
	Content       string                `json:"content" example:"<!DOCTYPE html>..."`
	Template      TemplateSummary       `json:"template"`
	Property      PropertySummary       `json:"property"`
	Tenant        *TenantSummary        `json:"tenant"`
	SavedDocument *SavedDocumentSummary `json:"savedDocument"`
}

// TemplateResponse represents a template visible to the caller
type TemplateResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name" example:"Late Rent Notice"`
	Description string    `json:"description" example:"Reminds a tenant of overdue rent"`
	Category    string    `json:"category" example:"notice"`
	Content     string    `json:"content" example:"Dear {TENANT_NAME}, ..."`
	IsSystem    bool      `json:"isSystem" example:"true"`
	CreatedAt   time.Time `json:"createdAt" example:"2026-10-15T21:20:48Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2026-10-15T21:20:48Z"`
}

// VariableResponse documents one built-in placeholder
type VariableResponse struct {
	Token       string `json:"token" example:"{TENANT_NAME}"`
	Description string `json:"description" example:"Tenant name"`
	Example     string `json:"example" example:"Jane Doe"`
}

// DocumentResponse represents a stored document
type DocumentResponse struct {
	ID          string    `json:"id" example:"7e8f9a0b-1c2d-4e3f-8a5b-6c7d8e9f0a1b"`
	Name        string    `json:"name" example:"Late Rent Notice - 123 Main St"`
	Description string    `json:"description" example:"Generated from template: Late Rent Notice"`
	FileURL     string    `json:"fileUrl,omitempty" example:"data:text/html;base64,PCFET0NUWVBF..."`
	FileType    string    `json:"fileType" example:"text/html"`
	FileSize    int64     `json:"fileSize" example:"2048"`
	Category    string    `json:"category" example:"notice"`
	IsShared    bool      `json:"isShared" example:"false"`
	TemplateID  string    `json:"templateId,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	PropertyID  string    `json:"propertyId" example:"9b2f6a51-3c4e-4d8a-9f0b-1c2d3e4f5a6b"`
	TenantID    string    `json:"tenantId,omitempty" example:"4c1d2e3f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"`
	CreatedAt   time.Time `json:"createdAt" example:"2026-10-15T21:20:48Z"`
}

// DocumentSearchHit is a full-text search match
type DocumentSearchHit struct {
	DocumentID string    `json:"documentId" example:"7e8f9a0b-1c2d-4e3f-8a5b-6c7d8e9f0a1b"`
	Title      string    `json:"title" example:"Late Rent Notice - 123 Main St"`
	Category   string    `json:"category" example:"notice"`
	PropertyID string    `json:"propertyId" example:"9b2f6a51-3c4e-4d8a-9f0b-1c2d3e4f5a6b"`
	TenantID   string    `json:"tenantId,omitempty" example:"4c1d2e3f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"`
	CreatedAt  time.Time `json:"createdAt" example:"2026-10-15T21:20:48Z"`
}

// CleanupResponse acknowledges a scheduled cleanup
type CleanupResponse struct {
	Message    string    `json:"message" example:"Cleanup scheduled"`
	BeforeDate time.Time `json:"beforeDate" example:"2026-01-01T00:00:00Z"`
}
