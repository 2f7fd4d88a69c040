package handlers

import (
	"log"

	"app/models"

	"github.com/gofiber/fiber/v2"
)

// HandleGetPredictiveAnalytics builds the historical summary and asks the
// AI backend for forward-looking metrics plus derived forecast models.
// An AI failure is surfaced as a retryable error; no fallback numbers are
// computed server side.
// GET /api/v1/analytics/predictive?period=&horizon=&seasonality=&limit=
func HandleGetPredictiveAnalytics(c *fiber.Ctx) error {
	cfg := models.ForecastConfig{
		Period:             c.Query("period", "month"),
		ForecastHorizon:    c.QueryInt("horizon", 1),
		IncludeSeasonality: c.QueryBool("seasonality", true),
		Limit:              c.QueryInt("limit", 3),
	}
	if cfg.Period != "month" && cfg.Period != "quarter" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "period must be 'month' or 'quarter'"})
	}

	stats, err := statsService.BuildHistoricalStats(c.Context(), 10)
	if err != nil {
		log.Printf("Error building historical stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build historical statistics"})
	}

	result, err := forecastService.GenerateForecast(c.Context(), stats, cfg)
	if err != nil {
		log.Printf("Error generating forecast: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":    "error",
			"message":   "Forecast generation failed, please try again",
			"retryable": true,
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": result})
}
