// handlers/modules.go
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/CardSorting/dbternow/middleware"
	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/services"
)

// GetModules lists every module with its skills in display order.
// Degrades to an empty list on store failure so list views never crash.
func (h *Handler) GetModules(c *fiber.Ctx) error {
	modules, err := h.content.ListModules()
	if err != nil {
		log.Printf("[ERROR] listing modules: %v", err)
		modules = []models.Module{}
	}
	return c.JSON(modules)
}

// GetModule returns one module with its ordered skill tree.
func (h *Handler) GetModule(c *fiber.Ctx) error {
	module, err := h.content.GetModule(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Module not found")
	}
	return c.JSON(module)
}

// GetModuleProgress returns the acting user's progress for one module.
func (h *Handler) GetModuleProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	progress, err := h.progress.ModuleProgress(userID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Module not found")
	}
	return c.JSON(progress)
}

// GetAllModulesProgress returns module-level summaries for the acting user.
func (h *Handler) GetAllModulesProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	progress, err := h.progress.AllModulesProgress(userID)
	if err != nil {
		log.Printf("[ERROR] all-modules progress: %v", err)
		progress = []services.ModuleProgress{}
	}
	return c.JSON(progress)
}

// CreateModule creates a module (admin only).
func (h *Handler) CreateModule(c *fiber.Ctx) error {
	var module models.Module
	if err := c.BodyParser(&module); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.content.CreateModule(&module); err != nil {
		return serviceError(c, err, "Module not found")
	}
	return c.Status(201).JSON(module)
}

// UpdateModule updates a module (admin only).
func (h *Handler) UpdateModule(c *fiber.Ctx) error {
	module, err := h.content.GetModule(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Module not found")
	}

	if err := c.BodyParser(module); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	module.ID = c.Params("id")

	if err := h.content.UpdateModule(module); err != nil {
		return serviceError(c, err, "Module not found")
	}
	return c.JSON(module)
}

// DeleteModule deletes a module (admin only); refused while skills exist.
func (h *Handler) DeleteModule(c *fiber.Ctx) error {
	if err := h.content.DeleteModule(c.Params("id")); err != nil {
		return serviceError(c, err, "Module not found")
	}
	return c.JSON(fiber.Map{"message": "Module deleted successfully"})
}
