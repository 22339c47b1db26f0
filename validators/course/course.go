package courseValidator

import (
	"gde/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateInstrumentRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type CreateCourseRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Description  string `json:"description"`
	InstrumentID uint   `json:"instrument_id" validate:"required"`
	Level        string `json:"level"`
	ImageURL     string `json:"image_url"`
}

type CreateLessonRequest struct {
	CourseID      uint   `json:"course_id" validate:"required"`
	Title         string `json:"title" validate:"required,min=3"`
	Description   string `json:"description"`
	SongName      string `json:"song_name"`
	SongHistory   string `json:"song_history"`
	ChordHelp     string `json:"chord_help"`
	SheetMusicURL string `json:"sheet_music_url"`
	VideoURL      string `json:"video_url"`
	Order         int    `json:"order"`
}

type EnrollRequest struct {
	CourseID uint `json:"course_id" validate:"required"`
}

func CreateInstrument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateInstrumentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedInstrument", reqData)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}
