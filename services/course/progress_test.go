package courseService

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkLessonCompletePercentProgression(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 4, false)
	enroll(t, db, 42, course.ID)

	progress, err := MarkLessonComplete(db, 42, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 25, progress.ProgressPercent)
	assert.False(t, progress.Completed)

	progress, err = MarkLessonComplete(db, 42, course.ID, lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 50, progress.ProgressPercent)
	assert.False(t, progress.Completed)

	progress, err = MarkLessonComplete(db, 42, course.ID, lessons[2].ID)
	require.NoError(t, err)
	assert.Equal(t, 75, progress.ProgressPercent)

	progress, err = MarkLessonComplete(db, 42, course.ID, lessons[3].ID)
	require.NoError(t, err)
	assert.Equal(t, 100, progress.ProgressPercent)
	assert.True(t, progress.Completed)
}

func TestMarkLessonCompleteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 4, false)
	enroll(t, db, 42, course.ID)

	first, err := MarkLessonComplete(db, 42, course.ID, lessons[0].ID)
	require.NoError(t, err)

	second, err := MarkLessonComplete(db, 42, course.ID, lessons[0].ID)
	require.NoError(t, err)

	assert.Equal(t, first.ProgressPercent, second.ProgressPercent)
	assert.Len(t, second.CompletedLessons, 1)
}

func TestMarkLessonCompleteNotEnrolled(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 2, false)

	_, err := MarkLessonComplete(db, 42, course.ID, lessons[0].ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestMarkLessonCompleteMissingCourse(t *testing.T) {
	db := setupTestDB(t)

	_, err := MarkLessonComplete(db, 42, 999, 1)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestMarkLessonCompleteLessonFromOtherCourse(t *testing.T) {
	db := setupTestDB(t)
	courseA, _ := createCourseWithLessons(t, db, 1, 2, false)
	_, lessonsB := createCourseWithLessons(t, db, 1, 2, false)
	enroll(t, db, 42, courseA.ID)

	_, err := MarkLessonComplete(db, 42, courseA.ID, lessonsB[0].ID)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestMarkLessonCompleteRecreatesMissingProgress(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 2, false)
	enroll(t, db, 42, course.ID)

	// Simulate an interrupted enrollment that lost the progress row
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 42, course.ID).Delete(&courseModels.Progress{}).Error)

	progress, err := MarkLessonComplete(db, 42, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 50, progress.ProgressPercent)
	assert.Len(t, progress.CompletedLessons, 1)
}

func TestRecomputeProgressZeroLessons(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, 1, 0, true, false)
	enroll(t, db, 42, course.ID)

	progress, err := GetProgress(db, 42, course.ID)
	require.NoError(t, err)
	require.NoError(t, RecomputeProgress(db, progress))

	assert.Equal(t, 0, progress.ProgressPercent)
	assert.False(t, progress.Completed)
}

func TestRecomputeProgressIgnoresRemovedLessons(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 2, false)
	enroll(t, db, 42, course.ID)

	_, err := MarkLessonComplete(db, 42, course.ID, lessons[0].ID)
	require.NoError(t, err)
	_, err = MarkLessonComplete(db, 42, course.ID, lessons[1].ID)
	require.NoError(t, err)

	// Instructor removes a completed lesson afterwards
	require.NoError(t, db.Model(&courseModels.Lesson{}).Where("id = ?", lessons[1].ID).Update("is_deleted", true).Error)

	progress, err := GetProgress(db, 42, course.ID)
	require.NoError(t, err)
	require.NoError(t, RecomputeProgress(db, progress))

	assert.Equal(t, 100, progress.ProgressPercent)
	assert.True(t, progress.Completed)
}

func TestRecomputeProgressAfterLessonAdded(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 2, false)
	enroll(t, db, 42, course.ID)

	_, err := MarkLessonComplete(db, 42, course.ID, lessons[0].ID)
	require.NoError(t, err)
	progress, err := MarkLessonComplete(db, 42, course.ID, lessons[1].ID)
	require.NoError(t, err)
	require.Equal(t, 100, progress.ProgressPercent)

	// A new lesson pushes the student back below 100%
	var module courseModels.Module
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&module).Error)
	createLesson(t, db, course.ID, module.ID, "Lesson", 3)

	require.NoError(t, RecomputeProgress(db, progress))
	assert.Equal(t, 67, progress.ProgressPercent)
	assert.False(t, progress.Completed)
}

func TestGetProgressWithoutRecordIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	course, _ := createCourseWithLessons(t, db, 1, 2, false)
	enroll(t, db, 42, course.ID)

	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 42, course.ID).Delete(&courseModels.Progress{}).Error)

	progress, err := GetProgress(db, 42, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.ProgressPercent)
	assert.Empty(t, progress.CompletedLessons)
}

func TestGetProgressNotEnrolled(t *testing.T) {
	db := setupTestDB(t)
	course, _ := createCourseWithLessons(t, db, 1, 2, false)

	_, err := GetProgress(db, 99, course.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}
