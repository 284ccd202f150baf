package models

import (
	"time"

	"github.com/google/uuid"
)

// Token is a single-use registration credential. The admin token is never
// stored here; it lives in config and short-circuits every lookup.
type Token struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Value     string    `gorm:"size:64;not null;uniqueIndex" json:"value"`
	Category  *string   `gorm:"size:50" json:"category,omitempty"`
	Used      bool      `gorm:"not null" json:"used"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

// Expired reports whether the token is past its validity window at the given
// instant.
func (t *Token) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
