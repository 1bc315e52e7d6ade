package model

import (
	"time"

	"gorm.io/gorm"
)

// User is the login account. Email is the login identifier; the volunteer
// profile (if any) hangs off it one-to-one.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"type:varchar(128);uniqueIndex:idx_email;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(128);not null" json:"-"`
	FirstName    string         `gorm:"type:varchar(64)" json:"first_name"`
	LastName     string         `gorm:"type:varchar(64)" json:"last_name"`
	Role         string         `gorm:"type:varchar(20);not null;default:volunteer;index:idx_role" json:"role"`
	IsAdmin      bool           `gorm:"default:false" json:"is_admin"`
	Status       int            `gorm:"default:1" json:"status"`
	LastLoginAt  *time.Time     `json:"last_login_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	VolunteerProfile *VolunteerProfile `gorm:"foreignKey:UserID" json:"volunteer_profile,omitempty"`
}

func (User) TableName() string { return "users" }

type UserBrief struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
}

func (u *User) Brief() UserBrief {
	return UserBrief{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsAdmin:   u.IsAdmin,
	}
}
