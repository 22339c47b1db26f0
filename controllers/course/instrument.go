package courseController

import (
	"log"

	"gde/database"
	"gde/middleware"
	"gde/models"
	courseValidator "gde/validators/course"

	"github.com/gofiber/fiber/v2"
)

func GetInstruments(c *fiber.Ctx) error {
	var instruments []models.Instrument
	if err := database.Database.Db.Find(&instruments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instruments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instruments fetched successfully.", instruments)
}

func CreateInstrument(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstrument").(*courseValidator.CreateInstrumentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("name = ?", reqData.Name).First(&models.Instrument{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Instrument already exists!", nil)
	}

	instrument := models.Instrument{
		Name:        reqData.Name,
		Description: reqData.Description,
		ImageURL:    reqData.ImageURL,
	}

	if err := db.Create(&instrument).Error; err != nil {
		log.Printf("Error creating instrument: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Instrument already exists!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Instrument created successfully.", instrument)
}
