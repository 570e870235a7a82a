// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/CardSorting/dbternow/models"
)

// RunMigrations runs all database migrations.
func RunMigrations(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Skill{},
		&models.Challenge{},
		&models.ChallengeResult{},
		&models.Achievement{},
		&models.UserAchievement{},
	); err != nil {
		return err
	}

	createIndexes(db)

	log.Println("✅ Migrations completed")
	return nil
}

// createIndexes creates secondary indexes the hot read paths depend on.
func createIndexes(db *gorm.DB) {
	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_points ON users(points DESC)")

	// Content tree indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_skills_module ON skills(module_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_skills_order ON skills(module_id, display_order)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_skill ON challenges(skill_id)")

	// Result/achievement indexes beyond the unique pairs
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_user_completed ON challenge_results(user_id, completed)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_achievements_condition ON achievements(condition)")
}
