package courseController

import (
	"gde/database"
	"gde/middleware"
	"gde/models"
	courseValidator "gde/validators/course"

	"github.com/gofiber/fiber/v2"
)

func Enroll(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check if user is already enrolled
	var existing models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ?", user.ID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		StudentID: user.ID,
		CourseID:  course.ID,
	}

	// The composite unique index catches the race where two identical
	// enroll calls pass the check above.
	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	if err := db.Preload("Course.Instrument").First(&enrollment, enrollment.ID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully.", enrollment)
}

func GetMyEnrollments(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("student_id = ?", user.ID).Preload("Course.Instrument").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
}
