package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourseRequest is the expected course creation body
type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description string  `json:"description" validate:"required,min=5"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Capacity    int     `json:"capacity" validate:"gte=0"` // 0 = unlimited
	DripEnabled bool    `json:"drip_enabled"`
}

// UpdateCourseRequest is the expected course update body; empty fields are ignored
type UpdateCourseRequest struct {
	Title        string   `json:"title" validate:"omitempty,min=3,max=200"`
	Description  string   `json:"description" validate:"omitempty,min=5"`
	Category     string   `json:"category"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Capacity     *int     `json:"capacity" validate:"omitempty,gte=0"`
	ThumbnailURL string   `json:"thumbnail_url"`
	DripEnabled  *bool    `json:"drip_enabled"`
}

// ModuleRequest is the expected module create/update body
type ModuleRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
}

// LessonRequest is the expected lesson create/update body
type LessonRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=200"`
	Content    string `json:"content"`
	VideoURL   string `json:"video_url" validate:"omitempty,url"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}

		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}

		reqData := new(ModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseAndModuleID(c); err != nil {
			return err
		}

		reqData := new(ModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

func DeleteModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseAndModuleID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseAndModuleID(c); err != nil {
			return err
		}

		reqData := new(LessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseLessonID(c); err != nil {
			return err
		}

		reqData := new(LessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

func DeleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseLessonID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

// parseCourseID reads the :id route param into Locals
func parseCourseID(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || courseID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}
	c.Locals("courseID", courseID)
	return nil
}

// parseCourseAndModuleID reads the :course_id and :module_id route params into Locals
func parseCourseAndModuleID(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("course_id")))
	if err != nil || courseID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	moduleID, err := strconv.Atoi(strings.TrimSpace(c.Params("module_id")))
	if err != nil || moduleID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
	}

	c.Locals("courseID", courseID)
	c.Locals("moduleID", moduleID)
	return nil
}

// parseLessonID reads the :lesson_id route param into Locals
func parseLessonID(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(strings.TrimSpace(c.Params("lesson_id")))
	if err != nil || lessonID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
	}
	c.Locals("lessonID", lessonID)
	return nil
}

// fieldErrors converts validator errors into a field -> message map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request data!"
		return errors
	}
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			errors[fieldErr.Field()] = fieldErr.Field() + " is required!"
		case "min":
			errors[fieldErr.Field()] = fieldErr.Field() + " is too short!"
		case "max":
			errors[fieldErr.Field()] = fieldErr.Field() + " is too long!"
		case "gte":
			errors[fieldErr.Field()] = fieldErr.Field() + " must not be negative!"
		case "url":
			errors[fieldErr.Field()] = fieldErr.Field() + " must be a valid URL!"
		default:
			errors[fieldErr.Field()] = fieldErr.Field() + " is invalid!"
		}
	}
	return errors
}
