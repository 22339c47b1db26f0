package scheduleController

import (
	"log"
	"time"

	"gde/database"
	"gde/middleware"
	"gde/models"
	scheduleValidator "gde/validators/schedule"

	"github.com/gofiber/fiber/v2"
)

// weekWindow returns [most recent Monday 00:00, +7 days) around now.
func weekWindow(now time.Time) (time.Time, time.Time) {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, -daysSinceMonday)
	return start, start.AddDate(0, 0, 7)
}

func GetMySchedule(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	items := make([]models.ScheduleItem, 0)
	if err := database.Database.Db.Where("user_id = ?", user.ID).Order("start_time asc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch schedule!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule fetched successfully.", items)
}

func GetWeekSchedule(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	start, end := weekWindow(time.Now())

	items := make([]models.ScheduleItem, 0)
	if err := database.Database.Db.
		Where("user_id = ? AND start_time >= ? AND start_time < ?", user.ID, start, end).
		Order("start_time asc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch schedule!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule fetched successfully.", items)
}

func GetUpcoming(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	items := make([]models.ScheduleItem, 0)
	if err := database.Database.Db.
		Where("user_id = ? AND start_time >= ?", user.ID, time.Now()).
		Order("start_time asc").Limit(10).Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch schedule!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule fetched successfully.", items)
}

func CreateScheduleItem(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	reqData, ok := c.Locals("validatedScheduleItem").(*scheduleValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	item := models.ScheduleItem{
		UserID:        user.ID,
		Title:         reqData.Title,
		Description:   reqData.Description,
		StartTime:     reqData.StartTime,
		EndTime:       reqData.EndTime,
		CourseID:      reqData.CourseID,
		ReminderText:  reqData.ReminderText,
		IsTeacherView: user.Role == models.RoleTeacher,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Error creating schedule item for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create schedule item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Schedule item created successfully.", item)
}

// UpdateScheduleItem mutates an item of the current user. A miss on
// another user's item reads as not found, never forbidden.
func UpdateScheduleItem(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	itemID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid schedule item id!", nil)
	}

	reqData, ok := c.Locals("validatedScheduleItem").(*scheduleValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var item models.ScheduleItem
	if err := db.Where("id = ? AND user_id = ?", itemID, user.ID).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Schedule item not found!", nil)
	}

	item.Title = reqData.Title
	item.Description = reqData.Description
	item.StartTime = reqData.StartTime
	item.EndTime = reqData.EndTime
	item.CourseID = reqData.CourseID
	item.ReminderText = reqData.ReminderText

	if err := db.Save(&item).Error; err != nil {
		log.Printf("Error updating schedule item %d: %v", item.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update schedule item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule item updated successfully.", item)
}

func DeleteScheduleItem(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	itemID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid schedule item id!", nil)
	}

	db := database.Database.Db

	var item models.ScheduleItem
	if err := db.Where("id = ? AND user_id = ?", itemID, user.ID).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Schedule item not found!", nil)
	}

	// Hard delete, no tombstone
	if err := db.Unscoped().Delete(&item).Error; err != nil {
		log.Printf("Error deleting schedule item %d: %v", item.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete schedule item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule item deleted successfully.", nil)
}
