package main

import (
	"context"
	"log"

	"app/config"
	"app/database"
	"app/handlers"
	"app/routes"
	"app/services"
	"app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	// Initialize database
	database.InitDB(config.AppConfig.DatabaseURL)
	defer database.CloseDB()

	// Wire storage, AI client, and handlers
	store := storage.NewStore(database.GetDB())
	ai := services.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	handlers.Init(store, ai)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.GetDB().Ping(context.Background()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Database ping failed"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
