package domain

import (
	"fmt"
	"time"
)

// Property is a rental unit owned by a landlord.
type Property struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"type:uuid;not null" json:"user_id"`
	Address    string    `gorm:"type:text;not null" json:"address"`
	City       string    `gorm:"type:text;not null" json:"city"`
	State      string    `gorm:"type:text;not null" json:"state"`
	ZipCode    string    `gorm:"type:text;not null" json:"zip_code"`
	RentAmount *float64  `gorm:"type:numeric(12,2)" json:"rent_amount,omitempty"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) IsOwnedBy(userID string) bool {
	return p.UserID == userID
}

// FullAddress formats the property as "<address>, <city>, <state> <zip>".
func (p *Property) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", p.Address, p.City, p.State, p.ZipCode)
}
