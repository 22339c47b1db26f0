package scheduleRoutes

import (
	scheduleController "gde/controllers/schedule"
	"gde/middleware"
	"gde/models"
	scheduleValidator "gde/validators/schedule"

	"github.com/gofiber/fiber/v2"
)

func SetupScheduleRoutes(app *fiber.App, auth *middleware.Auth) {
	scheduleGroup := app.Group("/api/schedule", auth.Authenticate())

	scheduleGroup.Get("/", scheduleController.GetMySchedule)
	scheduleGroup.Get("/week", scheduleController.GetWeekSchedule)
	scheduleGroup.Get("/upcoming", scheduleController.GetUpcoming)
	scheduleGroup.Get("/students", auth.RequireRole(models.RoleTeacher), scheduleController.GetTeacherStudents)

	scheduleGroup.Post("/", scheduleValidator.Item(), scheduleController.CreateScheduleItem)
	scheduleGroup.Put("/:id", scheduleValidator.Item(), scheduleController.UpdateScheduleItem)
	scheduleGroup.Delete("/:id", scheduleController.DeleteScheduleItem)
}
