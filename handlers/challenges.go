// handlers/challenges.go
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/CardSorting/dbternow/middleware"
	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/services"
)

// GetChallenges lists every challenge.
func (h *Handler) GetChallenges(c *fiber.Ctx) error {
	challenges, err := h.content.ListChallenges()
	if err != nil {
		log.Printf("[ERROR] listing challenges: %v", err)
		challenges = []models.Challenge{}
	}
	return c.JSON(challenges)
}

// GetChallengesBySkill lists the challenges of one skill.
func (h *Handler) GetChallengesBySkill(c *fiber.Ctx) error {
	challenges, err := h.content.ListChallengesBySkill(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Skill not found")
	}
	return c.JSON(challenges)
}

// GetChallenge returns one challenge.
func (h *Handler) GetChallenge(c *fiber.Ctx) error {
	challenge, err := h.content.GetChallenge(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Challenge not found")
	}
	return c.JSON(challenge)
}

// SubmitChallenge records an attempt for the acting user. Points and
// achievements are awarded only on the first transition to completed.
func (h *Handler) SubmitChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var in services.SubmitInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	outcome, err := h.results.Record(userID, c.Params("id"), in)
	if err != nil {
		return serviceError(c, err, "Challenge not found")
	}
	return c.JSON(outcome)
}

// GetChallengeResult returns the acting user's result for a challenge.
// Users with no recorded attempt get a default not-completed shape.
func (h *Handler) GetChallengeResult(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.results.Get(userID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Challenge not found")
	}
	if result == nil {
		return c.JSON(fiber.Map{
			"challenge_id": c.Params("id"),
			"completed":    false,
			"score":        nil,
			"answers":      nil,
			"reflection":   nil,
		})
	}
	return c.JSON(result)
}

// CreateChallenge creates a challenge under a skill (admin only).
func (h *Handler) CreateChallenge(c *fiber.Ctx) error {
	var challenge models.Challenge
	if err := c.BodyParser(&challenge); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.content.CreateChallenge(&challenge); err != nil {
		return serviceError(c, err, "Skill not found")
	}
	return c.Status(201).JSON(challenge)
}

// UpdateChallenge updates a challenge (admin only).
func (h *Handler) UpdateChallenge(c *fiber.Ctx) error {
	challenge, err := h.content.GetChallenge(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Challenge not found")
	}

	if err := c.BodyParser(challenge); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	challenge.ID = c.Params("id")

	if err := h.content.UpdateChallenge(challenge); err != nil {
		return serviceError(c, err, "Challenge not found")
	}
	return c.JSON(challenge)
}

// DeleteChallenge deletes a challenge and its recorded results (admin only).
func (h *Handler) DeleteChallenge(c *fiber.Ctx) error {
	if err := h.content.DeleteChallenge(c.Params("id")); err != nil {
		return serviceError(c, err, "Challenge not found")
	}
	return c.JSON(fiber.Map{"message": "Challenge deleted successfully"})
}
