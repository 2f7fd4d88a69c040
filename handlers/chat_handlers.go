package handlers

import (
	"log"

	"app/middleware"
	"app/models"

	"github.com/gofiber/fiber/v2"
)

// HandleChat answers a free-form question grounded in current platform
// data. AI failures are surfaced as retryable errors.
// POST /api/v1/chat
func HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Message is required"})
	}

	userID := middleware.UserID(c)

	resp, err := chatService.Answer(c.Context(), userID, req.Message)
	if err != nil {
		log.Printf("Error answering chat for user %s: %v", userID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":    "error",
			"message":   "Chat generation failed, please try again",
			"retryable": true,
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": resp})
}
