package controllers

import (
	"errors"
	"fmt"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseService "lms/services/course"
	"lms/services/realtime"

	"github.com/gofiber/fiber/v2"
)

// MarkLessonComplete records a lesson completion and returns updated progress
func MarkLessonComplete(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated IDs
	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	progress, err := courseService.MarkLessonComplete(database.Database.Db, userID, uint(courseID), uint(lessonID))
	if err != nil {
		switch {
		case errors.Is(err, courseService.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case errors.Is(err, courseService.ErrLessonNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		case errors.Is(err, courseService.ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson as completed!", nil)
		}
	}

	realtime.Publish(fmt.Sprintf("course:%d", courseID), "progress.updated", fiber.Map{
		"user_id":          userID,
		"course_id":        courseID,
		"lesson_id":        lessonID,
		"progress_percent": progress.ProgressPercent,
		"completed":        progress.Completed,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed successfully!", progress)
}

// GetUserProgress gets the user's progress in a course
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	progress, err := courseService.GetProgress(database.Database.Db, userID, uint(courseID))
	if err != nil {
		if errors.Is(err, courseService.ErrNotEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}
