package courseService

import (
	"time"

	courseModels "lms/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueCertificate issues a completion certificate for a student who has
// reached 100% progress. Issuance is idempotent: an existing certificate for
// the (user, course) pair is returned unchanged, with no duplicate and no
// error. The second return value reports whether a new certificate was
// created by this call.
func IssueCertificate(db *gorm.DB, userID uint, courseID uint) (*courseModels.Certificate, bool, error) {
	var existing courseModels.Certificate
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return &existing, false, nil
	}

	var progress courseModels.Progress
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error; err != nil {
		return nil, false, ErrCourseNotComplete
	}
	if progress.ProgressPercent < 100 {
		return nil, false, ErrCourseNotComplete
	}

	certificate := courseModels.Certificate{
		UserID:       userID,
		CourseID:     courseID,
		CredentialID: uuid.NewString(),
		IssueDate:    time.Now(),
	}

	if err := db.Create(&certificate).Error; err != nil {
		return nil, false, err
	}

	return &certificate, true, nil
}

// VerifyCertificate looks up a certificate by its credential id. Used as a
// public verification endpoint, so it takes no requester identity.
func VerifyCertificate(db *gorm.DB, credentialID string) (*courseModels.Certificate, error) {
	var certificate courseModels.Certificate
	if err := db.Where("credential_id = ? AND is_deleted = ?", credentialID, false).First(&certificate).Error; err != nil {
		return nil, ErrCertificateNotFound
	}
	return &certificate, nil
}
