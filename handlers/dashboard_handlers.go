package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleGetDashboardSummary fetches headline numbers for the dashboard.
// GET /api/v1/dashboard/summary
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	stats, err := statsService.BuildHistoricalStats(c.Context(), 5)
	if err != nil {
		log.Printf("Error building dashboard summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch dashboard summary"})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"total_visits":    stats.TotalVisits,
			"total_revenue":   stats.TotalRevenue,
			"avg_rating":      stats.AvgRating,
			"monthly_trends":  stats.MonthlyTrends,
			"top_attractions": stats.TopAttractions,
		},
	})
}

// HandleGetDashboardInsights returns the ranked insight feed. Missing
// source data degrades to an empty feed, never an error response.
// GET /api/v1/dashboard/insights
func HandleGetDashboardInsights(c *fiber.Ctx) error {
	insights := insightService.DashboardInsights(c.Context())
	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"insights": insights}})
}
