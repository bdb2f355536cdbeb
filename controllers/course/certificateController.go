package controllers

import (
	"errors"
	"fmt"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseService "lms/services/course"
	"lms/services/realtime"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestCertificate issues a certificate for a completed course. Repeated
// requests return the existing certificate unchanged.
func RequestCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	certificate, created, err := courseService.IssueCertificate(database.Database.Db, userID, uint(courseID))
	if err != nil {
		if errors.Is(err, courseService.ErrCourseNotComplete) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	if created {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err == nil {
			utils.SendCertificateEmail(user.Email, user.Name, course.Title, certificate.CredentialID)
		}

		realtime.Publish(fmt.Sprintf("course:%d", courseID), "certificate.issued", fiber.Map{
			"user_id":       userID,
			"course_id":     courseID,
			"credential_id": certificate.CredentialID,
		})

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", certificate)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate already issued!", certificate)
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseTitle string `json:"course_title"`
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("issue_date desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseTitle: course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// VerifyCertificate looks up a certificate by credential id. Public endpoint,
// no authentication required.
func VerifyCertificate(c *fiber.Ctx) error {
	credentialID := c.Locals("credentialID").(string)

	certificate, err := courseService.VerifyCertificate(database.Database.Db, credentialID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", certificate.CourseID).First(&course)

	var holder models.User
	database.Database.Db.Where("id = ?", certificate.UserID).First(&holder)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified successfully!", fiber.Map{
		"credential_id": certificate.CredentialID,
		"issue_date":    certificate.IssueDate,
		"course_title":  course.Title,
		"holder_name":   holder.Name,
	})
}
