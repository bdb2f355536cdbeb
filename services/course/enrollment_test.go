package courseService

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollSuccess(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 10, true, false)

	enrollment, progress, err := Enroll(db, 42, course.ID)
	require.NoError(t, err)

	assert.Equal(t, uint(42), enrollment.UserID)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.False(t, enrollment.EnrolledAt.IsZero())

	assert.Equal(t, 0, progress.ProgressPercent)
	assert.False(t, progress.Completed)
	assert.Empty(t, progress.CompletedLessons)

	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, 1, updated.EnrolledCount)
}

func TestEnrollUnpublishedCourse(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 10, false, false)

	_, _, err := Enroll(db, 42, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotAvailable)
}

func TestEnrollMissingCourse(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := Enroll(db, 42, 999)
	assert.ErrorIs(t, err, ErrCourseNotAvailable)
}

func TestEnrollDuplicate(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 10, true, false)

	enroll(t, db, 42, course.ID)

	_, _, err := Enroll(db, 42, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// The failed attempt must not touch the seat counter
	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, 1, updated.EnrolledCount)
}

func TestEnrollCapacityOne(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 1, true, false)

	enroll(t, db, 42, course.ID)

	_, _, err := Enroll(db, 43, course.ID)
	assert.ErrorIs(t, err, ErrCourseFull)

	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, 1, updated.EnrolledCount)

	// The rejected student must have no enrollment row
	var count int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND is_deleted = ?", 43, false).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestEnrollZeroCapacityIsUnlimited(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 0, true, false)

	for userID := uint(100); userID < 110; userID++ {
		enroll(t, db, userID, course.ID)
	}

	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, 10, updated.EnrolledCount)
}

func TestEnrollCounterMatchesEnrollments(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 5, true, false)

	enroll(t, db, 42, course.ID)
	enroll(t, db, 43, course.ID)
	enroll(t, db, 44, course.ID)

	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)

	var count int64
	db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&count)
	assert.Equal(t, int64(updated.EnrolledCount), count)
}

func TestGetEnrollment(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 10, true, false)

	enroll(t, db, 42, course.ID)

	enrollment, err := GetEnrollment(db, 42, course.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(42), enrollment.UserID)

	_, err = GetEnrollment(db, 99, course.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}
