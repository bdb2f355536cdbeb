package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued certificate for course completion.
// CredentialID doubles as a public verification key, so it must be
// globally unique and unguessable.
type Certificate struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_certificate_user_course"`
	CourseID     uint      `json:"course_id" gorm:"index;not null;uniqueIndex:idx_certificate_user_course"`
	CredentialID string    `json:"credential_id" gorm:"unique;not null"`
	IssueDate    time.Time `json:"issue_date"`
	IsDeleted    bool      `gorm:"default:false"`
}
