// handlers/skills.go
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/CardSorting/dbternow/middleware"
	"github.com/CardSorting/dbternow/models"
)

// GetSkills lists every skill across all modules.
func (h *Handler) GetSkills(c *fiber.Ctx) error {
	skills, err := h.content.ListSkills()
	if err != nil {
		log.Printf("[ERROR] listing skills: %v", err)
		skills = []models.Skill{}
	}
	return c.JSON(skills)
}

// GetSkillsByModule lists the skills of one module in display order.
func (h *Handler) GetSkillsByModule(c *fiber.Ctx) error {
	skills, err := h.content.ListSkillsByModule(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Module not found")
	}
	return c.JSON(skills)
}

// GetSkill returns one skill with its challenges.
func (h *Handler) GetSkill(c *fiber.Ctx) error {
	skill, err := h.content.GetSkill(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Skill not found")
	}
	return c.JSON(skill)
}

// GetSkillProgress returns the acting user's progress for one skill.
func (h *Handler) GetSkillProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	progress, err := h.progress.SkillProgress(userID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Skill not found")
	}
	return c.JSON(progress)
}

// CreateSkill creates a skill under a module (admin only).
func (h *Handler) CreateSkill(c *fiber.Ctx) error {
	var skill models.Skill
	if err := c.BodyParser(&skill); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.content.CreateSkill(&skill); err != nil {
		return serviceError(c, err, "Module not found")
	}
	return c.Status(201).JSON(skill)
}

// UpdateSkill updates a skill (admin only).
func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	skill, err := h.content.GetSkill(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Skill not found")
	}

	if err := c.BodyParser(skill); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	skill.ID = c.Params("id")

	if err := h.content.UpdateSkill(skill); err != nil {
		return serviceError(c, err, "Skill not found")
	}
	return c.JSON(skill)
}

// DeleteSkill deletes a skill (admin only); refused while challenges exist.
func (h *Handler) DeleteSkill(c *fiber.Ctx) error {
	if err := h.content.DeleteSkill(c.Params("id")); err != nil {
		return serviceError(c, err, "Skill not found")
	}
	return c.JSON(fiber.Map{"message": "Skill deleted successfully"})
}
