package domain

import (
	"time"
)

// Template is a reusable document skeleton whose Content carries {TOKEN} placeholders.
type Template struct {
	ID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:text;not null;default:'other'" json:"category"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	IsSystem    bool      `gorm:"not null;default:false" json:"is_system"`
	UserID      *string   `gorm:"type:uuid" json:"user_id,omitempty"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Template) TableName() string {
	return "document_templates"
}

// IsOwnedBy reports whether the template is private to userID.
func (t *Template) IsOwnedBy(userID string) bool {
	return t.UserID != nil && *t.UserID == userID
}

// IsUsableBy reports whether a caller may generate documents from the template.
// System templates are shared; private ones require an exact owner match.
func (t *Template) IsUsableBy(userID string) bool {
	return t.IsSystem || t.IsOwnedBy(userID)
}

type TemplateFilter struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
}
