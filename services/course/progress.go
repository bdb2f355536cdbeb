package courseService

import (
	"math"

	courseModels "lms/models/course"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MarkLessonComplete records a lesson as completed for an enrolled student and
// recomputes the progress percentage against the live lesson count. Re-marking
// an already-completed lesson is a no-op for set membership but still
// recomputes the percentage, since the instructor may have added or removed
// lessons since the last write.
func MarkLessonComplete(db *gorm.DB, userID uint, courseID uint, lessonID uint) (*courseModels.Progress, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrCourseNotFound
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return nil, ErrLessonNotFound
	}

	if _, err := GetEnrollment(db, userID, courseID); err != nil {
		return nil, err
	}

	var progress courseModels.Progress
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error; err != nil {
		// Enrollment exists but the progress row is missing (interrupted
		// enroll); recreate it empty and continue.
		progress = courseModels.Progress{
			UserID:           userID,
			CourseID:         courseID,
			CompletedLessons: datatypes.JSONSlice[uint]{},
		}
		if err := db.Create(&progress).Error; err != nil {
			return nil, err
		}
	}

	if !progress.HasLesson(lessonID) {
		progress.CompletedLessons = append(progress.CompletedLessons, lessonID)
	}

	if err := RecomputeProgress(db, &progress); err != nil {
		return nil, err
	}

	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}

	return &progress, nil
}

// GetProgress returns the progress record for an enrolled student. A missing
// record yields an empty one rather than an error, so a fresh enrollment
// always reads as 0%.
func GetProgress(db *gorm.DB, userID uint, courseID uint) (*courseModels.Progress, error) {
	if _, err := GetEnrollment(db, userID, courseID); err != nil {
		return nil, err
	}

	var progress courseModels.Progress
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error; err != nil {
		progress = courseModels.Progress{
			UserID:           userID,
			CourseID:         courseID,
			CompletedLessons: datatypes.JSONSlice[uint]{},
		}
	}
	return &progress, nil
}

// RecomputeProgress rederives ProgressPercent and Completed from the completed
// set and the live lesson count. Completed lessons that have since been
// removed from the course do not count toward the percentage, which keeps
// 0 <= percent <= 100 and completed == (percent == 100) at all times.
// A course with zero lessons is 0% and never complete.
func RecomputeProgress(db *gorm.DB, progress *courseModels.Progress) error {
	var total int64
	if err := db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ?", progress.CourseID, false).Count(&total).Error; err != nil {
		return err
	}

	completed := int64(0)
	if len(progress.CompletedLessons) > 0 {
		if err := db.Model(&courseModels.Lesson{}).
			Where("course_id = ? AND is_deleted = ? AND id IN ?", progress.CourseID, false, []uint(progress.CompletedLessons)).
			Count(&completed).Error; err != nil {
			return err
		}
	}

	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) * 100 / float64(total)))
	}

	progress.ProgressPercent = percent
	progress.Completed = total > 0 && percent == 100
	return nil
}
