package courseService

import (
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// LessonAccess annotates a lesson with its drip lock state for one requester.
type LessonAccess struct {
	Lesson   courseModels.Lesson `json:"lesson"`
	IsLocked bool                `json:"is_locked"`
}

// EvaluateAccess returns the flattened lesson sequence of a course, each
// lesson annotated with its lock state for the requester. Lock state is
// evaluated on read; nothing is persisted.
//
// With drip enabled, a lesson is unlocked only if it is first in the
// flattened order or its immediate predecessor has been completed. The owning
// instructor always sees everything unlocked. Non-enrolled requesters other
// than the instructor get ErrNotEnrolled and no lesson list at all.
func EvaluateAccess(db *gorm.DB, requesterID uint, courseID uint) ([]LessonAccess, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrCourseNotFound
	}

	isInstructor := course.InstructorID == requesterID

	var completedSet map[uint]bool
	if !isInstructor {
		if _, err := GetEnrollment(db, requesterID, courseID); err != nil {
			return nil, err
		}

		var progress courseModels.Progress
		completedSet = make(map[uint]bool)
		if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", requesterID, courseID, false).First(&progress).Error; err == nil {
			for _, id := range progress.CompletedLessons {
				completedSet[id] = true
			}
		}
	}

	lessons, err := FlattenedLessons(db, courseID)
	if err != nil {
		return nil, err
	}

	result := make([]LessonAccess, len(lessons))
	unlockAll := !course.DripEnabled || isInstructor
	for i, lesson := range lessons {
		locked := false
		if !unlockAll && i > 0 {
			locked = !completedSet[lessons[i-1].ID]
		}
		result[i] = LessonAccess{Lesson: lesson, IsLocked: locked}
	}

	return result, nil
}

// FlattenedLessons returns all lessons of a course as one ordered sequence:
// modules by order index then id, lessons within a module by order index
// then id. This ordering is the drip gating sequence.
func FlattenedLessons(db *gorm.DB, courseID uint) ([]courseModels.Lesson, error) {
	var lessons []courseModels.Lesson
	err := db.Model(&courseModels.Lesson{}).
		Joins("JOIN modules ON modules.id = lessons.module_id AND modules.is_deleted = ?", false).
		Where("lessons.course_id = ? AND lessons.is_deleted = ?", courseID, false).
		Order("modules.order_index asc, modules.id asc, lessons.order_index asc, lessons.id asc").
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}
