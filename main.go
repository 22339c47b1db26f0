package main

import (
	"log"

	"gde/config"
	"gde/database"
	"gde/middleware"
	authRoutes "gde/routers/authRoutes"
	courseRoutes "gde/routers/courseRoutes"
	marketplaceRoutes "gde/routers/marketplaceRoutes"
	scheduleRoutes "gde/routers/scheduleRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(database.Database.Db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	auth := middleware.NewAuth(cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static assets (instrument/course images) from the public folder
	app.Static("/static", "./public")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bienvenue sur le site de GDE - Grande École de Musique"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": "GDE Music Platform API"})
	})
	app.Get("/readiness", func(c *fiber.Ctx) error {
		sqlDB, err := database.Database.Db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "not_ready",
				"database": "disconnected",
			})
		}
		return c.JSON(fiber.Map{"status": "ready", "database": "connected"})
	})

	authRoutes.SetupAuthRoutes(app, auth)
	courseRoutes.SetupCourseRoutes(app, auth)
	marketplaceRoutes.SetupMarketplaceRoutes(app, auth)
	scheduleRoutes.SetupScheduleRoutes(app, auth)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
