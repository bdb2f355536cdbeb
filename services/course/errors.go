package courseService

import "errors"

// Domain errors returned by the course service. Controllers map these to
// HTTP statuses; the service never formats user-facing text.
var (
	ErrCourseNotAvailable  = errors.New("course not found or not published")
	ErrCourseFull          = errors.New("course is at capacity")
	ErrAlreadyEnrolled     = errors.New("user already enrolled in this course")
	ErrNotEnrolled         = errors.New("user not enrolled in this course")
	ErrCourseNotFound      = errors.New("course not found")
	ErrLessonNotFound      = errors.New("lesson not found in this course")
	ErrCourseNotComplete   = errors.New("course not completed")
	ErrCertificateNotFound = errors.New("certificate not found")
)
