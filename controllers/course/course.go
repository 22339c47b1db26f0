package courseController

import (
	"log"

	"gde/database"
	"gde/middleware"
	"gde/models"
	courseValidator "gde/validators/course"

	"github.com/gofiber/fiber/v2"
)

func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Preload("Instrument").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// GetMyCourses returns the courses matching the current user's declared
// instruments.
func GetMyCourses(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	db := database.Database.Db

	var instruments []models.Instrument
	if err := db.Model(user).Association("Instruments").Find(&instruments); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	courses := make([]models.Course, 0)
	if len(instruments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
	}

	instrumentIDs := make([]uint, 0, len(instruments))
	for _, instrument := range instruments {
		instrumentIDs = append(instrumentIDs, instrument.ID)
	}

	if err := db.Where("instrument_id IN ?", instrumentIDs).Preload("Instrument").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

func GetCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Preload("Instrument").First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Instrument{}, reqData.InstrumentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instrument not found!", nil)
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		InstrumentID: reqData.InstrumentID,
		ImageURL:     reqData.ImageURL,
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}

	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	if err := db.Preload("Instrument").First(&course, course.ID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}
