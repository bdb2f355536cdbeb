package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage    string     `json:"profile_image" gorm:"default:''"`
	Name            string     `json:"name" gorm:"default:''"`
	Email           string     `json:"email" gorm:"unique;not null"`
	Role            string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	Password        string     `json:"-" gorm:"not null"`
	Bio             string     `json:"bio"`
	IsEmailVerified bool       `json:"is_email_verified" gorm:"default:false"`
	LastLogin       *time.Time `json:"last_login"`
	IsDeleted       bool       `gorm:"default:false"`
}
