package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	Base
	Name      string     `json:"name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"`
	Role      string     `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	LastLogin *time.Time `json:"lastLogin"`

	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `json:"-" gorm:"default:false"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
