package repository_test

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/CardSorting/dbternow/database"
	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/repository"
)

func newRepos(t *testing.T) *repository.Repositories {
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

func seedPair(t *testing.T, repos *repository.Repositories) (userID, challengeID string) {
	t.Helper()

	user := &models.User{Email: "repo@example.com", Password: "x", Name: "U", Role: models.RoleUser, Level: 1}
	if err := repos.Users.Create(user); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	module := &models.Module{Name: "M", Order: 1}
	if err := repos.Modules.Create(module); err != nil {
		t.Fatalf("creating module: %v", err)
	}
	skill := &models.Skill{Name: "S", ModuleID: module.ID, Order: 1}
	if err := repos.Skills.Create(skill); err != nil {
		t.Fatalf("creating skill: %v", err)
	}
	challenge := &models.Challenge{Title: "C", Type: models.ChallengeTypePractice, SkillID: skill.ID}
	if err := repos.Challenges.Create(challenge); err != nil {
		t.Fatalf("creating challenge: %v", err)
	}
	return user.ID, challenge.ID
}

func TestCreateIfAbsent(t *testing.T) {
	repos := newRepos(t)
	userID, challengeID := seedPair(t, repos)

	created, err := repos.Results.CreateIfAbsent(&models.ChallengeResult{
		UserID: userID, ChallengeID: challengeID, Completed: false,
	})
	if err != nil {
		t.Fatalf("CreateIfAbsent() error = %v", err)
	}
	if !created {
		t.Fatal("first CreateIfAbsent() = false, want true")
	}

	created, err = repos.Results.CreateIfAbsent(&models.ChallengeResult{
		UserID: userID, ChallengeID: challengeID, Completed: true,
	})
	if err != nil {
		t.Fatalf("CreateIfAbsent() duplicate error = %v", err)
	}
	if created {
		t.Error("duplicate CreateIfAbsent() = true, want false")
	}
}

func TestUpdateClaimsCompletionOnce(t *testing.T) {
	repos := newRepos(t)
	userID, challengeID := seedPair(t, repos)

	if _, err := repos.Results.CreateIfAbsent(&models.ChallengeResult{
		UserID: userID, ChallengeID: challengeID, Completed: false,
	}); err != nil {
		t.Fatalf("CreateIfAbsent() error = %v", err)
	}

	updates := map[string]interface{}{"completed": true}
	claimed, err := repos.Results.Update(userID, challengeID, updates, true)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if claimed != 1 {
		t.Fatalf("first claim affected %d rows, want 1", claimed)
	}

	claimed, err = repos.Results.Update(userID, challengeID, updates, true)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if claimed != 0 {
		t.Errorf("second claim affected %d rows, want 0", claimed)
	}
}

func TestAwardIdempotent(t *testing.T) {
	repos := newRepos(t)
	userID, _ := seedPair(t, repos)

	badge := &models.Achievement{
		Name: "B", Description: "d",
		Condition: models.ConditionFirstCompletion,
	}
	if err := repos.Achievements.Create(badge); err != nil {
		t.Fatalf("creating achievement: %v", err)
	}

	created, err := repos.Achievements.Award(userID, badge.ID)
	if err != nil {
		t.Fatalf("Award() error = %v", err)
	}
	if !created {
		t.Fatal("first Award() = false, want true")
	}

	created, err = repos.Achievements.Award(userID, badge.ID)
	if err != nil {
		t.Fatalf("Award() duplicate error = %v", err)
	}
	if created {
		t.Error("duplicate Award() = true, want false")
	}
}

func TestFindByConditionOrdering(t *testing.T) {
	repos := newRepos(t)

	for _, a := range []models.Achievement{
		{Name: "Z Ten", Description: "d", Condition: models.ConditionCountMilestone, Threshold: 10},
		{Name: "A Five", Description: "d", Condition: models.ConditionCountMilestone, Threshold: 5},
		{Name: "B Five", Description: "d", Condition: models.ConditionCountMilestone, Threshold: 5},
	} {
		a := a
		if err := repos.Achievements.Create(&a); err != nil {
			t.Fatalf("creating achievement: %v", err)
		}
	}

	got, err := repos.Achievements.FindByCondition(models.ConditionCountMilestone)
	if err != nil {
		t.Fatalf("FindByCondition() error = %v", err)
	}
	want := []string{"A Five", "B Five", "Z Ten"}
	if len(got) != len(want) {
		t.Fatalf("FindByCondition() returned %d rows, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestAddPointsRecomputesLevel(t *testing.T) {
	repos := newRepos(t)
	userID, _ := seedPair(t, repos)

	if err := repos.Users.AddPoints(userID, 250); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}

	user, err := repos.Users.FindByID(userID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if user.Points != 250 {
		t.Errorf("points = %d, want 250", user.Points)
	}
	if user.Level != 3 {
		t.Errorf("level = %d, want 3 at 250 points", user.Level)
	}
}
