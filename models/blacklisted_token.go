package models

import "time"

// BlacklistedToken is a logged-out JWT kept until its own expiry.
type BlacklistedToken struct {
	ID        uint   `gorm:"primarykey"`
	Token     string `gorm:"not null;unique;index"`
	ExpiresAt int64  `gorm:"not null;index"`
	CreatedAt time.Time
}

func (t BlacklistedToken) Expired(now time.Time) bool {
	return now.Unix() > t.ExpiresAt
}
