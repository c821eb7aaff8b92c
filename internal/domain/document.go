package domain

import (
	"time"
)

const (
	FileTypeHTML = "text/html"
)

// Document is a stored file attached to a property. Generated documents keep
// their rendered HTML inline in FileURL as a base64 data URI.
type Document struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"type:uuid;not null" json:"user_id"`
	TemplateID  *string   `gorm:"type:uuid" json:"template_id,omitempty"`
	PropertyID  string    `gorm:"type:uuid;not null" json:"property_id"`
	TenantID    *string   `gorm:"type:uuid" json:"tenant_id,omitempty"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	FileURL     string    `gorm:"type:text;not null" json:"file_url"`
	FileType    string    `gorm:"type:text;not null" json:"file_type"`
	FileSize    int64     `gorm:"not null;default:0" json:"file_size"`
	Category    string    `gorm:"type:text;not null" json:"category"`
	IsShared    bool      `gorm:"not null;default:false" json:"is_shared"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Property    *Property `gorm:"foreignKey:PropertyID" json:"-"`
	Tenant      *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}

type DocumentFilter struct {
	UserID     string    `json:"user_id"`
	PropertyID string    `json:"property_id"`
	TenantID   string    `json:"tenant_id"`
	Category   string    `json:"category"`
	Query      string    `json:"query"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Limit      int       `json:"limit"`
	Offset     int       `json:"offset"`
}

// DocumentEvent describes a persisted generated document. It travels through
// the event queue, the search index and the realtime stream.
type DocumentEvent struct {
	DocumentID string    `json:"document_id"`
	UserID     string    `json:"user_id"`
	TemplateID string    `json:"template_id"`
	PropertyID string    `json:"property_id"`
	TenantID   string    `json:"tenant_id,omitempty"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Body       string    `json:"body"`
	IsShared   bool      `json:"is_shared"`
	CreatedAt  time.Time `json:"created_at"`
}
