package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Progress tracks per-student, per-course completion state.
// ProgressPercent and Completed are derived from CompletedLessons against the
// live lesson count; they are recomputed on every write, never set directly.
type Progress struct {
	gorm.Model
	UserID           uint                      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_progress_user_course"`
	CourseID         uint                      `json:"course_id" gorm:"index;not null;uniqueIndex:idx_progress_user_course"`
	CompletedLessons datatypes.JSONSlice[uint] `json:"completed_lessons"`
	ProgressPercent  int                       `json:"progress_percent" gorm:"default:0"` // 0-100
	Completed        bool                      `json:"completed" gorm:"default:false"`
	IsDeleted        bool                      `gorm:"default:false"`
}

// HasLesson reports whether the lesson is already in the completed set.
func (p *Progress) HasLesson(lessonID uint) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
