package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklist holds revoked access tokens until they expire.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`

	Token     string    `gorm:"column:token;type:text;not null;uniqueIndex" json:"token"`
	ExpiresAt time.Time `gorm:"column:expires_at;type:timestamptz;not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
