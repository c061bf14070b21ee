package models

import (
	"time"
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account record. Usernames are stored lowercase and,
// like emails, are unique system-wide. Users are never deleted; IsActive is
// the deactivation flag checked at login.
type User struct {
	Base
	Username       string    `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	FullName       string    `gorm:"size:255;not null" json:"full_name"`
	Type           string    `gorm:"size:16;not null;default:user" json:"type"`
	CreatedBy      *string   `gorm:"type:char(36)" json:"created_by"`
	UpdatedBy      *string   `gorm:"type:char(36)" json:"updated_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	IsActive       bool      `gorm:"index;not null;default:true" json:"is_active"`
	CustomerID     string    `gorm:"type:char(36);index;not null" json:"customer_id"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "user"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Type == RoleAdmin
}
