package marketplaceRoutes

import (
	marketplaceController "gde/controllers/marketplace"
	"gde/middleware"
	"gde/models"
	marketplaceValidator "gde/validators/marketplace"

	"github.com/gofiber/fiber/v2"
)

// SetupMarketplaceRoutes wires the used-equipment marketplace. Reads are
// public, every mutation is admin-only.
func SetupMarketplaceRoutes(app *fiber.App, auth *middleware.Auth) {
	marketGroup := app.Group("/api/marketplace")

	marketGroup.Get("/", marketplaceController.GetItems)
	marketGroup.Get("/:id", marketplaceController.GetItem)

	marketGroup.Post("/", auth.Authenticate(), auth.RequireRole(models.RoleAdmin), marketplaceValidator.Item(), marketplaceController.CreateItem)
	marketGroup.Put("/:id", auth.Authenticate(), auth.RequireRole(models.RoleAdmin), marketplaceValidator.Item(), marketplaceController.UpdateItem)
	marketGroup.Patch("/:id/mark-sold", auth.Authenticate(), auth.RequireRole(models.RoleAdmin), marketplaceController.MarkSold)
	marketGroup.Delete("/:id", auth.Authenticate(), auth.RequireRole(models.RoleAdmin), marketplaceController.DeleteItem)
}
