package services_test

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/CardSorting/dbternow/database"
	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/repository"
	"github.com/CardSorting/dbternow/services"
)

// newTestRepos opens a throwaway sqlite store with the full schema.
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	return repository.New(db)
}

func createTestUser(t *testing.T, repos *repository.Repositories, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    email,
		Password: "hashed",
		Name:     "Test User",
		Role:     models.RoleUser,
		Level:    1,
	}
	if err := repos.Users.Create(user); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return user
}

// createTestTree seeds one module with one skill holding n challenges of
// the given type, each worth points. Returns the challenges in order.
func createTestTree(t *testing.T, repos *repository.Repositories, challengeType models.ChallengeType, n, points int) (*models.Module, *models.Skill, []models.Challenge) {
	t.Helper()

	module := &models.Module{Name: "Mindfulness", Order: 1}
	if err := repos.Modules.Create(module); err != nil {
		t.Fatalf("creating module: %v", err)
	}
	skill := &models.Skill{Name: "Wise Mind", ModuleID: module.ID, Order: 1}
	if err := repos.Skills.Create(skill); err != nil {
		t.Fatalf("creating skill: %v", err)
	}

	challenges := make([]models.Challenge, 0, n)
	for i := 0; i < n; i++ {
		c := models.Challenge{
			Title:        "Challenge",
			Type:         challengeType,
			PointsReward: points,
			SkillID:      skill.ID,
		}
		if err := repos.Challenges.Create(&c); err != nil {
			t.Fatalf("creating challenge: %v", err)
		}
		challenges = append(challenges, c)
	}
	return module, skill, challenges
}

func createTestAchievement(t *testing.T, repos *repository.Repositories, name string, cond models.ConditionType, threshold, points int) *models.Achievement {
	t.Helper()

	a := &models.Achievement{
		Name:         name,
		Description:  name,
		Condition:    cond,
		Threshold:    threshold,
		PointsReward: points,
	}
	if err := repos.Achievements.Create(a); err != nil {
		t.Fatalf("creating achievement: %v", err)
	}
	return a
}

func newResultService(repos *repository.Repositories) *services.ResultService {
	return services.NewResultService(repos, services.NewAchievementService(repos))
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }
