package marketplaceController

import (
	"log"

	"gde/database"
	"gde/middleware"
	"gde/models"
	marketplaceValidator "gde/validators/marketplace"

	"github.com/gofiber/fiber/v2"
)

// GetItems lists marketplace items, newest first. Sold items are excluded
// unless include_sold is set.
func GetItems(c *fiber.Ctx) error {
	includeSold := c.QueryBool("include_sold", false)

	query := database.Database.Db.Order("created_at desc")
	if !includeSold {
		query = query.Where("is_sold = ?", false)
	}

	items := make([]models.MarketplaceItem, 0)
	if err := query.Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Items fetched successfully.", items)
}

func GetItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item id!", nil)
	}

	var item models.MarketplaceItem
	if err := database.Database.Db.First(&item, itemID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item fetched successfully.", item)
}

func CreateItem(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Could not validate credentials!", nil)
	}

	reqData, ok := c.Locals("validatedItem").(*marketplaceValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	item := models.MarketplaceItem{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		ImageURL:    reqData.ImageURL,
		SellerID:    user.ID,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Error creating marketplace item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Item created successfully.", item)
}

func UpdateItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item id!", nil)
	}

	reqData, ok := c.Locals("validatedItem").(*marketplaceValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var item models.MarketplaceItem
	if err := db.First(&item, itemID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not found!", nil)
	}

	item.Title = reqData.Title
	item.Description = reqData.Description
	item.Price = reqData.Price
	item.ImageURL = reqData.ImageURL

	if err := db.Save(&item).Error; err != nil {
		log.Printf("Error updating marketplace item %d: %v", item.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item updated successfully.", item)
}

// MarkSold flips the sold flag. The transition is one way; there is no
// restock operation.
func MarkSold(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item id!", nil)
	}

	db := database.Database.Db

	var item models.MarketplaceItem
	if err := db.First(&item, itemID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not found!", nil)
	}

	item.IsSold = true
	if err := db.Save(&item).Error; err != nil {
		log.Printf("Error marking item %d as sold: %v", item.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item marked as sold.", item)
}

func DeleteItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item id!", nil)
	}

	db := database.Database.Db

	var item models.MarketplaceItem
	if err := db.First(&item, itemID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not found!", nil)
	}

	// Hard delete, no tombstone
	if err := db.Unscoped().Delete(&item).Error; err != nil {
		log.Printf("Error deleting marketplace item %d: %v", item.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item deleted successfully.", nil)
}
