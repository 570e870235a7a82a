// handlers/achievements.go
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/CardSorting/dbternow/middleware"
	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/services"
)

// GetAchievements lists every achievement definition.
func (h *Handler) GetAchievements(c *fiber.Ctx) error {
	achievements, err := h.achievements.List()
	if err != nil {
		log.Printf("[ERROR] listing achievements: %v", err)
		achievements = []models.Achievement{}
	}
	return c.JSON(achievements)
}

// GetAchievement returns one achievement definition.
func (h *Handler) GetAchievement(c *fiber.Ctx) error {
	achievement, err := h.achievements.Get(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Achievement not found")
	}
	return c.JSON(achievement)
}

// GetUserAchievements lists the acting user's earned achievements,
// newest first.
func (h *Handler) GetUserAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	earned, err := h.achievements.ListForUser(userID)
	if err != nil {
		log.Printf("[ERROR] listing user achievements: %v", err)
		earned = []models.UserAchievement{}
	}
	return c.JSON(earned)
}

// GetAchievementStatus lists the full catalog flagged with the acting
// user's earned state.
func (h *Handler) GetAchievementStatus(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	statuses, err := h.achievements.ListWithStatus(userID)
	if err != nil {
		log.Printf("[ERROR] listing achievement status: %v", err)
		statuses = []services.AchievementStatus{}
	}
	return c.JSON(statuses)
}

// CreateAchievement creates an achievement definition (admin only).
func (h *Handler) CreateAchievement(c *fiber.Ctx) error {
	var achievement models.Achievement
	if err := c.BodyParser(&achievement); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.achievements.Create(&achievement); err != nil {
		return serviceError(c, err, "Achievement not found")
	}
	return c.Status(201).JSON(achievement)
}

// UpdateAchievement updates a definition (admin only).
func (h *Handler) UpdateAchievement(c *fiber.Ctx) error {
	achievement, err := h.achievements.Get(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Achievement not found")
	}

	if err := c.BodyParser(achievement); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	achievement.ID = c.Params("id")

	if err := h.achievements.Update(achievement); err != nil {
		return serviceError(c, err, "Achievement not found")
	}
	return c.JSON(achievement)
}

// DeleteAchievement deletes a definition and all awards of it (admin only).
func (h *Handler) DeleteAchievement(c *fiber.Ctx) error {
	if err := h.achievements.Delete(c.Params("id")); err != nil {
		return serviceError(c, err, "Achievement not found")
	}
	return c.JSON(fiber.Map{"message": "Achievement deleted successfully"})
}

// AwardAchievement grants an achievement to a user directly (admin only).
func (h *Handler) AwardAchievement(c *fiber.Ctx) error {
	points, err := h.achievements.ManualAward(c.Params("id"), c.Params("userId"))
	if err != nil {
		return serviceError(c, err, "Achievement not found")
	}
	return c.JSON(fiber.Map{
		"message":        "Achievement awarded",
		"points_awarded": points,
	})
}
