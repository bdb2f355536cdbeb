package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// getOwnedCourse loads a course and checks the requester owns it. Returns a
// nil course after writing the error response when the check fails.
func getOwnedCourse(c *fiber.Ctx, userID uint, courseID int) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != userID {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course instructor can perform this action!", nil)
	}

	return &course, nil
}

// InstructorCreateCourse creates a new draft course owned by the requester
func InstructorCreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		InstructorID: userID,
		Price:        reqData.Price,
		Capacity:     reqData.Capacity,
		DripEnabled:  reqData.DripEnabled,
		IsPublished:  false,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// InstructorUpdateCourse updates an existing course owned by the requester
func InstructorUpdateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := getOwnedCourse(c, userID, courseID)
	if course == nil {
		return err
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Capacity != nil {
		course.Capacity = *reqData.Capacity
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.DripEnabled != nil {
		course.DripEnabled = *reqData.DripEnabled
	}

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// InstructorPublishCourse makes a draft course visible to students
func InstructorPublishCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := getOwnedCourse(c, userID, courseID)
	if course == nil {
		return err
	}

	course.IsPublished = true
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// InstructorDeleteCourse soft deletes a course and its modules and lessons
func InstructorDeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := getOwnedCourse(c, userID, courseID)
	if course == nil {
		return err
	}

	tx := database.Database.Db.Begin()

	course.IsDeleted = true
	course.IsPublished = false
	if err := tx.Save(course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := tx.Model(&courseModels.Module{}).Where("course_id = ?", courseID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course modules!", nil)
	}

	if err := tx.Model(&courseModels.Lesson{}).Where("course_id = ?", courseID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course lessons!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// InstructorGetCourses lists courses owned by the requester
func InstructorGetCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// InstructorGetEnrollments lists the enrollment roster of an owned course
// with each student's progress
func InstructorGetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := getOwnedCourse(c, userID, courseID)
	if course == nil {
		return err
	}

	type EnrollmentWithStudent struct {
		courseModels.Enrollment
		StudentName     string `json:"student_name"`
		StudentEmail    string `json:"student_email"`
		ProgressPercent int    `json:"progress_percent"`
		Completed       bool   `json:"completed"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithStudent, len(enrollments))
	for i, e := range enrollments {
		var student models.User
		database.Database.Db.Where("id = ?", e.UserID).First(&student)

		var progress courseModels.Progress
		database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", e.UserID, courseID, false).First(&progress)

		result[i] = EnrollmentWithStudent{
			Enrollment:      e,
			StudentName:     student.Name,
			StudentEmail:    student.Email,
			ProgressPercent: progress.ProgressPercent,
			Completed:       progress.Completed,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments":    result,
		"total":          len(result),
		"enrolled_count": course.EnrolledCount,
		"capacity":       course.Capacity,
	})
}
