package models

import (
	"time"
)

// Link represents a shortened URL with an optional expiry
type Link struct {
	ID        string     `gorm:"primarykey" json:"id"`
	ShortCode string     `gorm:"uniqueIndex;not null" json:"short_code"`
	TargetURL string     `gorm:"not null" json:"target_url"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at"`
}

// IsExpired reports whether the link is logically expired at the given time.
// Links without an expiry never expire.
func (l *Link) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}
