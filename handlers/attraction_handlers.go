package handlers

import (
	"log"
	"strconv"

	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleListAttractions returns one page of attractions.
// GET /api/v1/attractions?category=&page=&pageSize=
func HandleListAttractions(c *fiber.Ctx) error {
	category := c.Query("category")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)

	attractions, total, err := store.ListAttractions(c.Context(), category, page, pageSize)
	if err != nil {
		log.Printf("Error listing attractions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch attractions"})
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       attractions,
		"pagination": utils.CreatePagination(total, page, pageSize),
	})
}

// HandleGetAttraction returns a single attraction by id.
// GET /api/v1/attractions/:attractionId
func HandleGetAttraction(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("attractionId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid attraction id"})
	}

	attraction, err := store.GetAttraction(c.Context(), id)
	if err != nil {
		log.Printf("Error fetching attraction %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch attraction"})
	}
	if attraction == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Attraction not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": attraction})
}

// HandleCreateAttraction creates a new attraction.
// POST /api/v1/admin/attractions
func HandleCreateAttraction(c *fiber.Ctx) error {
	var attraction models.Attraction
	if err := c.BodyParser(&attraction); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if attraction.Name == "" || attraction.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Missing required fields (name, category)"})
	}

	if err := store.CreateAttraction(c.Context(), &attraction); err != nil {
		log.Printf("Error creating attraction: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create attraction"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": attraction})
}

// HandleUpdateAttraction updates an existing attraction.
// PUT /api/v1/admin/attractions/:attractionId
func HandleUpdateAttraction(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("attractionId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid attraction id"})
	}

	var attraction models.Attraction
	if err := c.BodyParser(&attraction); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	attraction.ID = id

	if err := store.UpdateAttraction(c.Context(), &attraction); err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Attraction not found"})
		}
		log.Printf("Error updating attraction %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update attraction"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": attraction})
}

// HandleDeleteAttraction soft-deletes an attraction.
// DELETE /api/v1/admin/attractions/:attractionId
func HandleDeleteAttraction(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("attractionId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid attraction id"})
	}

	if err := store.DeleteAttraction(c.Context(), id); err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Attraction not found"})
		}
		log.Printf("Error deleting attraction %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete attraction"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Attraction deleted"})
}
