package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName    string `json:"first_name" gorm:"default:''"`
	LastName     string `json:"last_name" gorm:"default:''"`
	Email        string `json:"email" gorm:"unique;not null"`
	Role         string `json:"role" gorm:"default:'student'"` // student, instructor, admin
	Password     string `json:"-" gorm:"not null"`
	ProfileImage string `json:"profile_image" gorm:"default:''"`
	IsApproved   bool   `json:"is_approved" gorm:"default:false"` // instructor accounts need admin approval
	IsDeleted    bool   `gorm:"default:false"`
}

// FullName returns the display name printed on certificates.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}
