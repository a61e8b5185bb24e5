package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a bearer credential adopted from the identity provider.
// Only the SHA-256 hash of the token is stored; the raw token travels
// back to the client in a cookie. A user has at most one live session —
// login replaces all prior rows for that user.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
