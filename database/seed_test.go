package database_test

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/CardSorting/dbternow/database"
	"github.com/CardSorting/dbternow/models"
)

func openTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func TestSeedAchievementsIdempotent(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 2; i++ {
		if err := database.SeedAchievements(db); err != nil {
			t.Fatalf("SeedAchievements() run %d error = %v", i+1, err)
		}
	}

	var count int64
	if err := db.Model(&models.Achievement{}).Count(&count).Error; err != nil {
		t.Fatalf("counting achievements: %v", err)
	}
	if count != 5 {
		t.Errorf("achievement count = %d after double seed, want 5", count)
	}
}

func TestSeedAchievementsKeepsEdits(t *testing.T) {
	db := openTestDB(t)
	if err := database.SeedAchievements(db); err != nil {
		t.Fatalf("SeedAchievements() error = %v", err)
	}

	// An operator edit must survive a reseed.
	if err := db.Model(&models.Achievement{}).
		Where("id = ?", "ach-first-steps").
		Update("points_reward", 999).Error; err != nil {
		t.Fatalf("editing achievement: %v", err)
	}
	if err := database.SeedAchievements(db); err != nil {
		t.Fatalf("SeedAchievements() error = %v", err)
	}

	var a models.Achievement
	if err := db.First(&a, "id = ?", "ach-first-steps").Error; err != nil {
		t.Fatalf("loading achievement: %v", err)
	}
	if a.PointsReward != 999 {
		t.Errorf("points_reward = %d after reseed, want untouched 999", a.PointsReward)
	}
}

func TestSeedContentOnlyWhenEmpty(t *testing.T) {
	db := openTestDB(t)

	if err := database.SeedContent(db); err != nil {
		t.Fatalf("SeedContent() error = %v", err)
	}

	var modules int64
	if err := db.Model(&models.Module{}).Count(&modules).Error; err != nil {
		t.Fatalf("counting modules: %v", err)
	}
	if modules == 0 {
		t.Fatal("SeedContent() seeded no modules into an empty store")
	}

	// A second run against a populated store must not duplicate anything.
	if err := database.SeedContent(db); err != nil {
		t.Fatalf("SeedContent() rerun error = %v", err)
	}
	var after int64
	if err := db.Model(&models.Module{}).Count(&after).Error; err != nil {
		t.Fatalf("counting modules: %v", err)
	}
	if after != modules {
		t.Errorf("module count changed from %d to %d on reseed", modules, after)
	}
}
