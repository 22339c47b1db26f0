package scheduleController

import (
	"gde/database"
	"gde/middleware"
	"gde/models"

	"github.com/gofiber/fiber/v2"
)

// RosterEntry is one student of one taught course.
type RosterEntry struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Course    string `json:"course"`
	Progress  int    `json:"progress"`
}

// GetTeacherStudents flattens every enrollment of every course the
// current teacher teaches. The teacher-only gate lives in the router.
func GetTeacherStudents(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	db := database.Database.Db

	var courses []models.Course
	if err := db.Model(user).Association("TaughtCourses").Find(&courses); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	students := make([]RosterEntry, 0)
	for _, course := range courses {
		var enrollments []models.Enrollment
		if err := db.Where("course_id = ?", course.ID).Preload("Student").Find(&enrollments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
		}

		for _, enrollment := range enrollments {
			if enrollment.Student == nil {
				continue
			}
			students = append(students, RosterEntry{
				ID:        enrollment.Student.ID,
				Username:  enrollment.Student.Username,
				FirstName: enrollment.Student.FirstName,
				LastName:  enrollment.Student.LastName,
				Email:     enrollment.Student.Email,
				Course:    course.Title,
				Progress:  enrollment.Progress,
			})
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully.", students)
}
