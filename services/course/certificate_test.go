package courseService

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func completeCourse(t *testing.T, db *gorm.DB, userID uint, courseID uint, lessons []*courseModels.Lesson) {
	t.Helper()

	for _, lesson := range lessons {
		_, err := MarkLessonComplete(db, userID, courseID, lesson.ID)
		require.NoError(t, err)
	}
}

func TestIssueCertificateAtFullCompletion(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 2, false)
	enroll(t, db, 42, course.ID)
	completeCourse(t, db, 42, course.ID, lessons)

	cert, created, err := IssueCertificate(db, 42, course.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, cert.CredentialID)
	assert.False(t, cert.IssueDate.IsZero())
	assert.Equal(t, uint(42), cert.UserID)
	assert.Equal(t, course.ID, cert.CourseID)
}

func TestIssueCertificateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 2, false)
	enroll(t, db, 42, course.ID)
	completeCourse(t, db, 42, course.ID, lessons)

	first, created, err := IssueCertificate(db, 42, course.ID)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := IssueCertificate(db, 42, course.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.CredentialID, second.CredentialID)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ? AND course_id = ?", 42, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestIssueCertificateIncomplete(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 2, false)
	enroll(t, db, 42, course.ID)

	_, err := MarkLessonComplete(db, 42, course.ID, lessons[0].ID)
	require.NoError(t, err)

	_, created, err := IssueCertificate(db, 42, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotComplete)
	assert.False(t, created)
}

func TestIssueCertificateWithoutProgress(t *testing.T) {
	db := setupTestDB(t)
	course, _ := createCourseWithLessons(t, db, 1, 2, false)

	_, _, err := IssueCertificate(db, 99, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotComplete)
}

func TestVerifyCertificate(t *testing.T) {
	db := setupTestDB(t)
	course, lessons := createCourseWithLessons(t, db, 1, 2, false)
	enroll(t, db, 42, course.ID)
	completeCourse(t, db, 42, course.ID, lessons)

	cert, _, err := IssueCertificate(db, 42, course.ID)
	require.NoError(t, err)

	found, err := VerifyCertificate(db, cert.CredentialID)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, found.ID)

	_, err = VerifyCertificate(db, "no-such-credential")
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestCertificatesHaveDistinctCredentials(t *testing.T) {
	db := setupTestDB(t)
	courseA, lessonsA := createCourseWithLessons(t, db, 1, 1, false)
	courseB, lessonsB := createCourseWithLessons(t, db, 1, 1, false)
	enroll(t, db, 42, courseA.ID)
	enroll(t, db, 42, courseB.ID)
	completeCourse(t, db, 42, courseA.ID, lessonsA)
	completeCourse(t, db, 42, courseB.ID, lessonsB)

	certA, _, err := IssueCertificate(db, 42, courseA.ID)
	require.NoError(t, err)
	certB, _, err := IssueCertificate(db, 42, courseB.ID)
	require.NoError(t, err)

	assert.NotEqual(t, certA.CredentialID, certB.CredentialID)
}
