package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up course authoring routes for instructors
func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR"))

	// Course management
	instructorGroup.Get("/courses", controllers.InstructorGetCourses)
	instructorGroup.Post("/course", validators.CreateCourse(), controllers.InstructorCreateCourse)
	instructorGroup.Put("/course/:id", validators.UpdateCourse(), controllers.InstructorUpdateCourse)
	instructorGroup.Patch("/course/:id/publish", validators.CourseID(), controllers.InstructorPublishCourse)
	instructorGroup.Delete("/course/:id", validators.CourseID(), controllers.InstructorDeleteCourse)
	instructorGroup.Get("/course/:id/enrollments", validators.CourseID(), controllers.InstructorGetEnrollments)

	// Module management
	instructorGroup.Get("/course/:id/modules", validators.CourseID(), controllers.InstructorListModules)
	instructorGroup.Post("/course/:id/module", validators.CreateModule(), controllers.InstructorCreateModule)
	instructorGroup.Put("/course/:course_id/module/:module_id", validators.UpdateModule(), controllers.InstructorUpdateModule)
	instructorGroup.Delete("/course/:course_id/module/:module_id", validators.DeleteModule(), controllers.InstructorDeleteModule)

	// Lesson management
	instructorGroup.Post("/course/:course_id/module/:module_id/lesson", validators.CreateLesson(), controllers.InstructorCreateLesson)
	instructorGroup.Put("/lesson/:lesson_id", validators.UpdateLesson(), controllers.InstructorUpdateLesson)
	instructorGroup.Delete("/lesson/:lesson_id", validators.DeleteLesson(), controllers.InstructorDeleteLesson)
}
