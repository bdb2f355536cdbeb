package courseService

import (
	"time"

	courseModels "lms/models/course"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enroll enrolls a student into a published course and initializes their
// progress record. The enrollment, the progress row and the seat counter
// update happen in one transaction; the counter increment runs last and is
// guarded so enrolled_count can never exceed capacity under concurrent
// double-submission.
func Enroll(db *gorm.DB, userID uint, courseID uint) (*courseModels.Enrollment, *courseModels.Progress, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return nil, nil, ErrCourseNotAvailable
	}

	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return nil, nil, ErrAlreadyEnrolled
	}

	// Capacity 0 means unlimited seats
	if course.Capacity > 0 && course.EnrolledCount >= course.Capacity {
		return nil, nil, ErrCourseFull
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}

	var progress courseModels.Progress

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		// Keep any progress left over from a previous enrollment cycle;
		// completed lessons are never silently overwritten.
		if err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error; err != nil {
			progress = courseModels.Progress{
				UserID:           userID,
				CourseID:         courseID,
				CompletedLessons: datatypes.JSONSlice[uint]{},
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		}

		// Guarded increment: refuses the seat if the course filled up
		// between the precheck and this write.
		res := tx.Model(&courseModels.Course{}).
			Where("id = ? AND is_deleted = ?", courseID, false)
		if course.Capacity > 0 {
			res = res.Where("enrolled_count < capacity")
		}
		res = res.UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCourseFull
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &enrollment, &progress, nil
}

// GetEnrollment returns the active enrollment for a (user, course) pair.
func GetEnrollment(db *gorm.DB, userID uint, courseID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return nil, ErrNotEnrolled
	}
	return &enrollment, nil
}
