package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRecommendedCourses returns course suggestions from the external
// recommendation service. A failed lookup returns an empty list, not an
// error.
func GetRecommendedCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseIDs := utils.FetchRecommendedCourseIDs(userID)

	courses := []courseModels.Course{}
	if len(courseIDs) > 0 {
		if err := database.Database.Db.Where("id IN ? AND is_deleted = ? AND is_published = ?", courseIDs, false, true).Find(&courses).Error; err != nil {
			courses = []courseModels.Course{}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}
