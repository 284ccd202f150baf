package models

import (
	"time"

	"github.com/google/uuid"
)

// FanCategories is the fixed set of competition tiers a registration token
// can carry over to the fan it creates.
var FanCategories = []string{"Tercera", "Sub 23", "División de honor"}

// Fan is a registered attendee. The UUID primary key is what gets encoded
// into the QR handed to the fan.
type Fan struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Email      string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone      *string    `gorm:"size:20" json:"phone,omitempty"`
	Category   *string    `gorm:"size:50" json:"category,omitempty"`
	TokenUsed  *string    `gorm:"size:64" json:"token_used,omitempty"`
	LastAccess *time.Time `gorm:"index" json:"last_access"`
	LastEntry  *time.Time `json:"last_entry"`
	LastExit   *time.Time `json:"last_exit"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ValidCategory reports whether cat is one of the known competition tiers.
func ValidCategory(cat string) bool {
	for _, c := range FanCategories {
		if c == cat {
			return true
		}
	}
	return false
}
