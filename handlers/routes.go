// handlers/routes.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CardSorting/dbternow/middleware"
)

// RegisterRoutes wires the full HTTP surface onto the app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth endpoints (stricter rate limit)
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimit())
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)
	authGroup.Get("/me", middleware.RequireAuth, h.Me)

	// Module catalog and per-user progress
	moduleGroup := api.Group("/modules")
	moduleGroup.Get("/", h.GetModules)
	moduleGroup.Get("/progress", middleware.RequireAuth, h.GetAllModulesProgress)
	moduleGroup.Get("/:id", h.GetModule)
	moduleGroup.Get("/:id/skills", h.GetSkillsByModule)
	moduleGroup.Get("/:id/progress", middleware.RequireAuth, h.GetModuleProgress)
	moduleGroup.Post("/", middleware.RequireAuth, middleware.RequireAdmin, h.CreateModule)
	moduleGroup.Put("/:id", middleware.RequireAuth, middleware.RequireAdmin, h.UpdateModule)
	moduleGroup.Delete("/:id", middleware.RequireAuth, middleware.RequireAdmin, h.DeleteModule)

	// Skills
	skillGroup := api.Group("/skills")
	skillGroup.Get("/", h.GetSkills)
	skillGroup.Get("/:id", h.GetSkill)
	skillGroup.Get("/:id/challenges", h.GetChallengesBySkill)
	skillGroup.Get("/:id/progress", middleware.RequireAuth, h.GetSkillProgress)
	skillGroup.Post("/", middleware.RequireAuth, middleware.RequireAdmin, h.CreateSkill)
	skillGroup.Put("/:id", middleware.RequireAuth, middleware.RequireAdmin, h.UpdateSkill)
	skillGroup.Delete("/:id", middleware.RequireAuth, middleware.RequireAdmin, h.DeleteSkill)

	// Challenges and submissions
	challengeGroup := api.Group("/challenges")
	challengeGroup.Get("/", h.GetChallenges)
	challengeGroup.Get("/:id", h.GetChallenge)
	challengeGroup.Post("/:id/submit", middleware.RequireAuth, h.SubmitChallenge)
	challengeGroup.Get("/:id/result", middleware.RequireAuth, h.GetChallengeResult)
	challengeGroup.Post("/", middleware.RequireAuth, middleware.RequireAdmin, h.CreateChallenge)
	challengeGroup.Put("/:id", middleware.RequireAuth, middleware.RequireAdmin, h.UpdateChallenge)
	challengeGroup.Delete("/:id", middleware.RequireAuth, middleware.RequireAdmin, h.DeleteChallenge)

	// Achievements
	achievementGroup := api.Group("/achievements")
	achievementGroup.Get("/", h.GetAchievements)
	achievementGroup.Get("/user", middleware.RequireAuth, h.GetUserAchievements)
	achievementGroup.Get("/status", middleware.RequireAuth, h.GetAchievementStatus)
	achievementGroup.Get("/:id", h.GetAchievement)
	achievementGroup.Post("/", middleware.RequireAuth, middleware.RequireAdmin, h.CreateAchievement)
	achievementGroup.Put("/:id", middleware.RequireAuth, middleware.RequireAdmin, h.UpdateAchievement)
	achievementGroup.Delete("/:id", middleware.RequireAuth, middleware.RequireAdmin, h.DeleteAchievement)
	achievementGroup.Post("/:id/award/:userId", middleware.RequireAuth, middleware.RequireAdmin, h.AwardAchievement)
}
