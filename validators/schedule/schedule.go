package scheduleValidator

import (
	"time"

	"gde/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ItemRequest is shared by create and update. Start/end ordering is the
// caller's responsibility and deliberately not checked here.
type ItemRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
	CourseID     *uint     `json:"course_id"`
	ReminderText string    `json:"reminder_text"`
}

func Item() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ItemRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedScheduleItem", reqData)
		return c.Next()
	}
}
