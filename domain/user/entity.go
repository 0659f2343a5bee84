package user

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null;size:80"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// Identity is the authenticated principal extracted from a validated
// token. All task operations are scoped to an Identity.
type Identity struct {
	Username string `json:"username"`
}
