package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", fields)
}

// FieldErrors translates validator.v10 errors into a field -> message map
// suitable for ValidationErrorResponse.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = "Invalid request body!"
		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = name + " is required!"
		case "email":
			fields[name] = "Invalid email!"
		case "min":
			fields[name] = name + " must be at least " + fe.Param() + " characters long!"
		case "max":
			fields[name] = name + " must be at most " + fe.Param() + " characters long!"
		case "gt":
			fields[name] = name + " must be greater than " + fe.Param() + "!"
		case "oneof":
			fields[name] = name + " must be one of: " + fe.Param() + "!"
		default:
			fields[name] = name + " is invalid!"
		}
	}

	return fields
}
