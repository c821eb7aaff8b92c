package domain

import (
	"time"
)

// Tenant is an occupant of a property.
type Tenant struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	PropertyID string    `gorm:"type:uuid;not null" json:"property_id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	Email      string    `gorm:"type:text" json:"email"`
	Phone      string    `gorm:"type:text" json:"phone"`
	RentAmount float64   `gorm:"type:numeric(12,2);not null;default:0" json:"rent_amount"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Property   *Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func (t *Tenant) BelongsTo(propertyID string) bool {
	return t.PropertyID == propertyID
}
