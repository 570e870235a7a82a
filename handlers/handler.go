// handlers/handler.go - Fiber handlers over the service layer.
//
// Everything is wired once at process start: repositories, then services,
// then this Handler, passed by reference. No hidden globals.
package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/CardSorting/dbternow/repository"
	"github.com/CardSorting/dbternow/services"
)

type Handler struct {
	repos        *repository.Repositories
	content      *services.ContentService
	progress     *services.ProgressService
	results      *services.ResultService
	achievements *services.AchievementService
}

func New(repos *repository.Repositories, content *services.ContentService, progress *services.ProgressService, results *services.ResultService, achievements *services.AchievementService) *Handler {
	return &Handler{
		repos:        repos,
		content:      content,
		progress:     progress,
		results:      results,
		achievements: achievements,
	}
}

// serviceError maps the service taxonomy onto status codes. Store failures
// are logged with detail and surfaced generically.
func serviceError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": notFoundMsg})
	case services.IsValidation(err):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case services.IsConflict(err):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}
