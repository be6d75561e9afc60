package models

import "time"

// User is the authenticated identity cached for one session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	// AccessToken is only set by remote backends and never persisted locally
	AccessToken string `json:"-"`
}

// Account is the local-backend credential row.
type Account struct {
	ID           string    `gorm:"primaryKey" db:"id"`
	Email        string    `gorm:"uniqueIndex;not null" db:"email"`
	PasswordHash string    `gorm:"not null" db:"password_hash"`
	CreatedAt    time.Time `gorm:"not null" db:"created_at"`
}

// TableName matches the postgres schema
func (Account) TableName() string {
	return "brew_users"
}

// User returns the session identity for an account
func (a Account) User() User {
	return User{ID: a.ID, Email: a.Email}
}
