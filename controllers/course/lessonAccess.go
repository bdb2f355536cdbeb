package controllers

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseService "lms/services/course"

	"github.com/gofiber/fiber/v2"
)

// GetCourseLessons returns the ordered lesson sequence of a course with each
// lesson annotated by its drip lock state for the requester. Non-enrolled
// users get no lesson list at all.
func GetCourseLessons(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	lessons, err := courseService.EvaluateAccess(database.Database.Db, userID, uint(courseID))
	if err != nil {
		switch {
		case errors.Is(err, courseService.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case errors.Is(err, courseService.ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
		"total":   len(lessons),
	})
}
