package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Public Attraction Routes ---
	attractions := api.Group("/attractions")
	attractions.Get("/", handlers.HandleListAttractions)
	attractions.Get("/:attractionId", handlers.HandleGetAttraction)

	// --- Admin Routes ---
	admin := api.Group("/admin", middleware.Authenticate, middleware.CheckRole("admin"))
	admin.Post("/users", handlers.HandleCreateUser)
	admin.Post("/attractions", handlers.HandleCreateAttraction)
	admin.Put("/attractions/:attractionId", handlers.HandleUpdateAttraction)
	admin.Delete("/attractions/:attractionId", handlers.HandleDeleteAttraction)

	// --- Dashboard Routes ---
	dashboard := api.Group("/dashboard", middleware.Authenticate, middleware.CheckRole("admin", "operator"))
	dashboard.Get("/summary", handlers.HandleGetDashboardSummary)
	dashboard.Get("/insights", handlers.HandleGetDashboardInsights)

	// --- Analytics Routes ---
	analytics := api.Group("/analytics", middleware.Authenticate, middleware.CheckRole("admin", "operator"))
	analytics.Get("/predictive", handlers.HandleGetPredictiveAnalytics)

	// --- Chat Routes ---
	chat := api.Group("/chat", middleware.Authenticate)
	chat.Post("/", handlers.HandleChat)
}
