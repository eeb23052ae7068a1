package domain

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:320;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"` // Never return password in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// TableName keeps the table name used by existing deployments.
func (User) TableName() string { return "signup_table" }

// Identity is the authenticated caller, resolved from a bearer token.
type Identity struct {
	UserID uint
	Email  string
}
