package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course.
// At most one enrollment exists per (user, course) pair.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID   uint      `json:"course_id" gorm:"index;not null;uniqueIndex:idx_enrollment_user_course"`
	EnrolledAt time.Time `json:"enrolled_at"`
	IsDeleted  bool      `gorm:"default:false"`
}
