package authRoutes

import (
	authController "gde/controllers/auth"
	"gde/middleware"
	authValidator "gde/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, auth *middleware.Auth) {
	ctl := authController.New(auth)

	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), ctl.Login)
	authGroup.Get("/me", auth.Authenticate(), authController.Me)
	authGroup.Post("/me/instruments/:id", auth.Authenticate(), authController.AddInstrument)
	authGroup.Delete("/me/instruments/:id", auth.Authenticate(), authController.RemoveInstrument)
}
