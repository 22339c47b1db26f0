package courseRoutes

import (
	courseController "gde/controllers/course"
	"gde/middleware"
	"gde/models"
	courseValidator "gde/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires the catalog: instruments, courses, lessons and
// enrollments. Creation endpoints are admin-gated; reads are public except
// the per-user ones and lesson content.
func SetupCourseRoutes(app *fiber.App, auth *middleware.Auth) {
	courseGroup := app.Group("/api/courses")

	// Instruments
	courseGroup.Get("/instruments", courseController.GetInstruments)
	courseGroup.Post("/instruments", auth.Authenticate(), auth.RequireRole(models.RoleAdmin), courseValidator.CreateInstrument(), courseController.CreateInstrument)

	// Courses
	courseGroup.Get("/", courseController.GetAllCourses)
	courseGroup.Get("/my-courses", auth.Authenticate(), courseController.GetMyCourses)
	courseGroup.Post("/", auth.Authenticate(), auth.RequireRole(models.RoleAdmin), courseValidator.CreateCourse(), courseController.CreateCourse)

	// Lessons (static paths before the :id catch-all)
	courseGroup.Get("/lessons/:id", auth.Authenticate(), courseController.GetLesson)
	courseGroup.Post("/lessons", auth.Authenticate(), auth.RequireRole(models.RoleAdmin), courseValidator.CreateLesson(), courseController.CreateLesson)

	// Enrollments
	courseGroup.Post("/enroll", auth.Authenticate(), courseValidator.Enroll(), courseController.Enroll)
	courseGroup.Get("/my-enrollments", auth.Authenticate(), courseController.GetMyEnrollments)

	courseGroup.Get("/:id", courseController.GetCourse)
	courseGroup.Get("/:id/lessons", auth.Authenticate(), courseController.GetCourseLessons)
}
