// file: models/notification_token.go
package models

import (
	"time"
)

// NotificationToken tracks the per-user notification credential delivered by
// the identity provider's webhook. One row per fid; lifecycle events toggle
// Enabled and rotate Token/URL. Delivery itself happens outside this service.
type NotificationToken struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Fid       uint64    `gorm:"uniqueIndex;not null" json:"fid"`
	Token     string    `gorm:"size:255" json:"token,omitempty"`
	URL       string    `gorm:"size:255" json:"url,omitempty"`
	Enabled   bool      `gorm:"not null;default:false" json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NotificationToken) TableName() string {
	return "jfi_notification_token"
}
