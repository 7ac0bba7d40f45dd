package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
)

type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"unique;not null"`
}

type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Firstname string         `json:"firstname" gorm:"not null"`
	Lastname  string         `json:"lastname" gorm:"not null"`
	Name      string         `json:"name"`
	Email     string         `json:"email" gorm:"unique;not null"`
	Password  string         `json:"-" gorm:"not null"`
	RoleID    uint           `json:"role_id"`
	Role      *Role          `json:"role,omitempty"`
	Coins     int            `json:"coins" gorm:"default:0"`
}

// HasRole reports whether the user's role matches name, ignoring case.
func (u *User) HasRole(name string) bool {
	if u == nil || u.Role == nil {
		return false
	}
	return strings.EqualFold(u.Role.Name, name)
}

// IsTeacher is the capability check used by every teacher-only flow:
// the claimed role must match the actual role, and the actual role
// must be TEACHER.
func (u *User) IsTeacher(claimedRole string) bool {
	return u.HasRole(claimedRole) && u.HasRole(RoleTeacher)
}
