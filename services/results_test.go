package services_test

import (
	"errors"
	"testing"

	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/services"
)

func TestRecordAwardsPointsOnce(t *testing.T) {
	repos := newTestRepos(t)
	user := createTestUser(t, repos, "submit@example.com")
	_, _, challenges := createTestTree(t, repos, models.ChallengeTypePractice, 1, 25)

	results := newResultService(repos)
	first, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: true})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if first.PointsAwarded != 25 {
		t.Errorf("first submit PointsAwarded = %d, want 25", first.PointsAwarded)
	}

	second, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: true})
	if err != nil {
		t.Fatalf("Record() resubmit error = %v", err)
	}
	if second.PointsAwarded != 0 {
		t.Errorf("resubmit PointsAwarded = %d, want 0", second.PointsAwarded)
	}
	if len(second.NewAchievements) != 0 {
		t.Errorf("resubmit awarded %d achievements, want 0", len(second.NewAchievements))
	}

	got, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Points != 25 {
		t.Errorf("user points = %d, want 25 after double submit", got.Points)
	}
}

func TestRecordCompletionIsSticky(t *testing.T) {
	repos := newTestRepos(t)
	user := createTestUser(t, repos, "sticky@example.com")
	_, _, challenges := createTestTree(t, repos, models.ChallengeTypePractice, 1, 25)

	results := newResultService(repos)
	if _, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: true}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	// Submitting completed=false must not reset the stored completion.
	reset, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: false})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if !reset.Result.Completed {
		t.Error("completed=false submission reverted a stored completion")
	}

	// Re-completing after the reset attempt must not pay out again.
	again, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: true})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if again.PointsAwarded != 0 {
		t.Errorf("re-completing after reset awarded %d points, want 0", again.PointsAwarded)
	}

	got, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Points != 25 {
		t.Errorf("user points = %d, want 25 after reset cycle", got.Points)
	}
}

func TestRecordIncompleteThenComplete(t *testing.T) {
	repos := newTestRepos(t)
	user := createTestUser(t, repos, "twostep@example.com")
	_, _, challenges := createTestTree(t, repos, models.ChallengeTypePractice, 1, 10)

	results := newResultService(repos)
	saved, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: false})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if saved.PointsAwarded != 0 {
		t.Errorf("incomplete submit awarded %d points", saved.PointsAwarded)
	}

	done, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: true})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if done.PointsAwarded != 10 {
		t.Errorf("completing submit PointsAwarded = %d, want 10", done.PointsAwarded)
	}
	if !done.Result.Completed {
		t.Error("stored result not marked completed")
	}
}

func TestRecordPartialUpdateKeepsFields(t *testing.T) {
	repos := newTestRepos(t)
	user := createTestUser(t, repos, "partial@example.com")
	_, _, challenges := createTestTree(t, repos, models.ChallengeTypeQuiz, 1, 10)

	results := newResultService(repos)
	if _, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{
		Completed: true,
		Score:     intPtr(80),
	}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	// Resubmit without a score; the stored score must survive.
	out, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: true})
	if err != nil {
		t.Fatalf("Record() resubmit error = %v", err)
	}
	if out.Result.Score == nil || *out.Result.Score != 80 {
		t.Errorf("Score after omitted-field resubmit = %v, want 80", out.Result.Score)
	}
}

func TestRecordQuizRequiresScore(t *testing.T) {
	repos := newTestRepos(t)
	user := createTestUser(t, repos, "quiz@example.com")
	_, _, challenges := createTestTree(t, repos, models.ChallengeTypeQuiz, 1, 10)

	results := newResultService(repos)
	_, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: true})
	if !services.IsValidation(err) {
		t.Fatalf("Record() error = %v, want validation error", err)
	}
}

func TestRecordReflectionRequiresText(t *testing.T) {
	repos := newTestRepos(t)
	user := createTestUser(t, repos, "reflect@example.com")
	_, _, challenges := createTestTree(t, repos, models.ChallengeTypeReflection, 1, 10)

	results := newResultService(repos)

	blank := strPtr("   ")
	_, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{Completed: true, Reflection: blank})
	if !services.IsValidation(err) {
		t.Fatalf("Record() with blank reflection error = %v, want validation error", err)
	}

	out, err := results.Record(user.ID, challenges[0].ID, services.SubmitInput{
		Completed:  true,
		Reflection: strPtr("I noticed my breathing slow down."),
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if out.PointsAwarded != 10 {
		t.Errorf("PointsAwarded = %d, want 10", out.PointsAwarded)
	}
}

func TestRecordUnknownChallenge(t *testing.T) {
	repos := newTestRepos(t)
	user := createTestUser(t, repos, "nochal@example.com")

	results := newResultService(repos)
	_, err := results.Record(user.ID, "no-such-challenge", services.SubmitInput{Completed: true})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("Record() error = %v, want ErrNotFound", err)
	}
}

func TestGetResultAbsent(t *testing.T) {
	repos := newTestRepos(t)
	user := createTestUser(t, repos, "getres@example.com")
	_, _, challenges := createTestTree(t, repos, models.ChallengeTypePractice, 1, 5)

	results := newResultService(repos)
	got, err := results.Get(user.ID, challenges[0].ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v, want nil for unattempted challenge", got)
	}

	if _, err := results.Get(user.ID, "no-such-challenge"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("Get() unknown challenge error = %v, want ErrNotFound", err)
	}
}

func TestRecordUpdatesLevel(t *testing.T) {
	repos := newTestRepos(t)
	user := createTestUser(t, repos, "level@example.com")
	_, _, challenges := createTestTree(t, repos, models.ChallengeTypePractice, 2, 75)

	results := newResultService(repos)
	for _, c := range challenges {
		if _, err := results.Record(user.ID, c.ID, services.SubmitInput{Completed: true}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	got, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Points != 150 {
		t.Fatalf("points = %d, want 150", got.Points)
	}
	if got.Level != 2 {
		t.Errorf("level = %d, want 2 at 150 points", got.Level)
	}
}
