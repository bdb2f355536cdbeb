package courseService

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
		&courseModels.Progress{},
		&courseModels.Certificate{},
	)
	require.NoError(t, err)

	return db
}

func createCourse(t *testing.T, db *gorm.DB, instructorID uint, capacity int, published bool, dripEnabled bool) *courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:        "Test Course",
		Description:  "A course used in tests",
		Category:     "testing",
		InstructorID: instructorID,
		Capacity:     capacity,
		IsPublished:  published,
		DripEnabled:  dripEnabled,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func createModule(t *testing.T, db *gorm.DB, courseID uint, title string, orderIndex int) *courseModels.Module {
	t.Helper()

	module := courseModels.Module{
		CourseID:   courseID,
		Title:      title,
		OrderIndex: orderIndex,
	}
	require.NoError(t, db.Create(&module).Error)
	return &module
}

func createLesson(t *testing.T, db *gorm.DB, courseID uint, moduleID uint, title string, orderIndex int) *courseModels.Lesson {
	t.Helper()

	lesson := courseModels.Lesson{
		CourseID:   courseID,
		ModuleID:   moduleID,
		Title:      title,
		OrderIndex: orderIndex,
	}
	require.NoError(t, db.Create(&lesson).Error)
	return &lesson
}

// createCourseWithLessons builds a published course with one module and the
// given number of lessons, returning the course and the lessons in order.
func createCourseWithLessons(t *testing.T, db *gorm.DB, instructorID uint, lessonCount int, dripEnabled bool) (*courseModels.Course, []*courseModels.Lesson) {
	t.Helper()

	course := createCourse(t, db, instructorID, 0, true, dripEnabled)
	module := createModule(t, db, course.ID, "Module 1", 1)

	lessons := make([]*courseModels.Lesson, 0, lessonCount)
	for i := 1; i <= lessonCount; i++ {
		lessons = append(lessons, createLesson(t, db, course.ID, module.ID, "Lesson", i))
	}
	return course, lessons
}

func enroll(t *testing.T, db *gorm.DB, userID uint, courseID uint) {
	t.Helper()

	_, _, err := Enroll(db, userID, courseID)
	require.NoError(t, err)
}
