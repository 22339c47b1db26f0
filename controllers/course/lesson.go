package courseController

import (
	"log"

	"gde/database"
	"gde/middleware"
	"gde/models"
	courseValidator "gde/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetCourseLessons returns a course's lessons ordered by their display
// order, ties broken by insertion order.
func GetCourseLessons(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Course{}, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []models.Lesson
	if err := db.Where("course_id = ?", courseID).Order("sort_order asc, id asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully.", lessons)
}

// GetLesson returns one lesson. Any authenticated user may read any
// lesson; there is no ownership check here.
func GetLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully.", lesson)
}

func CreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Course{}, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	lesson := models.Lesson{
		CourseID:      reqData.CourseID,
		Title:         reqData.Title,
		Description:   reqData.Description,
		SongName:      reqData.SongName,
		SongHistory:   reqData.SongHistory,
		ChordHelp:     reqData.ChordHelp,
		SheetMusicURL: reqData.SheetMusicURL,
		VideoURL:      reqData.VideoURL,
		Order:         reqData.Order,
	}

	if err := db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully.", lesson)
}
