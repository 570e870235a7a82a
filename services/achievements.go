// services/achievements.go - Achievement Evaluator and badge surface
package services

import (
	"gorm.io/gorm"

	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/repository"
)

type AchievementService struct {
	repos *repository.Repositories
}

func NewAchievementService(repos *repository.Repositories) *AchievementService {
	return &AchievementService{repos: repos}
}

// Evaluate re-scans the user's completion state after a completion event
// and returns the newly awarded achievements. The supplied repository set
// is expected to be transaction-bound by the caller so awards commit or
// roll back with the triggering submission.
//
// Conditions run in a fixed order: first completion, skill mastery,
// module mastery, count milestones (ascending threshold), then perfect
// quiz score. Identical state always selects identical awards.
func (s *AchievementService) Evaluate(repos *repository.Repositories, userID string, challenge *models.Challenge, score *int) ([]models.Achievement, error) {
	var awarded []models.Achievement

	completedCount, err := repos.Results.CountCompleted(userID)
	if err != nil {
		return nil, err
	}

	// 1. First completion
	if completedCount == 1 {
		awarded, err = s.awardCondition(repos, userID, models.ConditionFirstCompletion, awarded, nil)
		if err != nil {
			return nil, err
		}
	}

	// 2. Skill mastery
	mastered, err := s.skillFullyCompleted(repos, userID, challenge.SkillID)
	if err != nil {
		return nil, err
	}
	if mastered {
		awarded, err = s.awardCondition(repos, userID, models.ConditionSkillMastery, awarded, nil)
		if err != nil {
			return nil, err
		}
	}

	// 3. Module mastery
	if mastered && challenge.Skill != nil {
		moduleMastered, err := s.moduleFullyMastered(repos, userID, challenge.Skill.ModuleID)
		if err != nil {
			return nil, err
		}
		if moduleMastered {
			moduleID := challenge.Skill.ModuleID
			awarded, err = s.awardCondition(repos, userID, models.ConditionModuleMastery, awarded,
				func(a *models.Achievement) bool {
					return a.ModuleID == nil || *a.ModuleID == moduleID
				})
			if err != nil {
				return nil, err
			}
		}
	}

	// 4. Count milestones
	awarded, err = s.awardCondition(repos, userID, models.ConditionCountMilestone, awarded,
		func(a *models.Achievement) bool {
			return int64(a.Threshold) == completedCount
		})
	if err != nil {
		return nil, err
	}

	// 5. Perfect quiz score
	if challenge.Type == models.ChallengeTypeQuiz && score != nil && *score == 100 {
		awarded, err = s.awardCondition(repos, userID, models.ConditionPerfectQuizScore, awarded, nil)
		if err != nil {
			return nil, err
		}
	}

	return awarded, nil
}

// awardCondition awards every matching definition of one condition tag the
// user does not already hold. The unique (user, achievement) index makes
// the insert race-safe; points move only when this call created the award.
func (s *AchievementService) awardCondition(repos *repository.Repositories, userID string, cond models.ConditionType, awarded []models.Achievement, match func(*models.Achievement) bool) ([]models.Achievement, error) {
	definitions, err := repos.Achievements.FindByCondition(cond)
	if err != nil {
		return awarded, err
	}

	for i := range definitions {
		a := definitions[i]
		if match != nil && !match(&a) {
			continue
		}
		created, err := repos.Achievements.Award(userID, a.ID)
		if err != nil {
			return awarded, err
		}
		if !created {
			continue
		}
		if a.PointsReward > 0 {
			if err := repos.Users.AddPoints(userID, a.PointsReward); err != nil {
				return awarded, err
			}
		}
		awarded = append(awarded, a)
	}
	return awarded, nil
}

func (s *AchievementService) skillFullyCompleted(repos *repository.Repositories, userID, skillID string) (bool, error) {
	challenges, err := repos.Challenges.FindBySkill(skillID)
	if err != nil {
		return false, err
	}
	if len(challenges) == 0 {
		return false, nil
	}

	ids := make([]string, 0, len(challenges))
	for _, c := range challenges {
		ids = append(ids, c.ID)
	}
	completed, err := repos.Results.CompletedIDs(userID, ids)
	if err != nil {
		return false, err
	}
	return len(completed) == len(ids), nil
}

func (s *AchievementService) moduleFullyMastered(repos *repository.Repositories, userID, moduleID string) (bool, error) {
	module, err := repos.Modules.FindWithTree(moduleID)
	if err != nil {
		return false, notFound(err)
	}
	if len(module.Skills) == 0 {
		return false, nil
	}

	var challengeIDs []string
	for _, skill := range module.Skills {
		for _, c := range skill.Challenges {
			challengeIDs = append(challengeIDs, c.ID)
		}
	}
	completedIDs, err := repos.Results.CompletedIDs(userID, challengeIDs)
	if err != nil {
		return false, err
	}
	completedSet := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		completedSet[id] = true
	}

	for i := range module.Skills {
		if !skillMastered(&module.Skills[i], completedSet) {
			return false, nil
		}
	}
	return true, nil
}

// List returns every achievement definition.
func (s *AchievementService) List() ([]models.Achievement, error) {
	return s.repos.Achievements.FindAll()
}

// Get returns one achievement definition.
func (s *AchievementService) Get(id string) (*models.Achievement, error) {
	a, err := s.repos.Achievements.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// ListForUser returns the user's earned achievements, newest first.
func (s *AchievementService) ListForUser(userID string) ([]models.UserAchievement, error) {
	return s.repos.Achievements.ListForUser(userID)
}

// AchievementStatus is a catalog entry annotated with whether the user
// has earned it.
type AchievementStatus struct {
	models.Achievement
	Earned bool `json:"earned"`
}

// ListWithStatus returns the full catalog flagged against the user's
// earned set.
func (s *AchievementService) ListWithStatus(userID string) ([]AchievementStatus, error) {
	definitions, err := s.repos.Achievements.FindAll()
	if err != nil {
		return nil, err
	}
	held, err := s.repos.Achievements.HeldIDs(userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]AchievementStatus, 0, len(definitions))
	for _, a := range definitions {
		statuses = append(statuses, AchievementStatus{Achievement: a, Earned: held[a.ID]})
	}
	return statuses, nil
}

// Create installs a new achievement definition.
func (s *AchievementService) Create(a *models.Achievement) error {
	if a.Name == "" || a.Description == "" {
		return validationf("achievement name and description are required")
	}
	if !validCondition(a.Condition) {
		return validationf("unknown achievement condition %q", a.Condition)
	}
	if a.Condition == models.ConditionCountMilestone && a.Threshold <= 0 {
		return validationf("count milestones require a positive threshold")
	}
	return s.repos.Achievements.Create(a)
}

// Update saves changes to an existing definition.
func (s *AchievementService) Update(a *models.Achievement) error {
	if !validCondition(a.Condition) {
		return validationf("unknown achievement condition %q", a.Condition)
	}
	return s.repos.Achievements.Save(a)
}

// Delete removes a definition along with any awards of it.
func (s *AchievementService) Delete(id string) error {
	if _, err := s.repos.Achievements.FindByID(id); err != nil {
		return notFound(err)
	}
	return s.repos.Achievements.Delete(id)
}

// ManualAward grants an achievement outside the evaluator (admin surface).
// Returns the points awarded; a ConflictError when the user already holds it.
func (s *AchievementService) ManualAward(achievementID, userID string) (int, error) {
	achievement, err := s.repos.Achievements.FindByID(achievementID)
	if err != nil {
		return 0, notFound(err)
	}
	if _, err := s.repos.Users.FindByID(userID); err != nil {
		return 0, notFound(err)
	}

	var points int
	err = s.repos.DB().Transaction(func(tx *gorm.DB) error {
		txRepos := s.repos.WithTx(tx)
		created, err := txRepos.Achievements.Award(userID, achievementID)
		if err != nil {
			return err
		}
		if !created {
			return conflictf("achievement already awarded to this user")
		}
		if achievement.PointsReward > 0 {
			if err := txRepos.Users.AddPoints(userID, achievement.PointsReward); err != nil {
				return err
			}
		}
		points = achievement.PointsReward
		return nil
	})
	return points, err
}

func validCondition(c models.ConditionType) bool {
	switch c {
	case models.ConditionFirstCompletion, models.ConditionSkillMastery,
		models.ConditionModuleMastery, models.ConditionCountMilestone,
		models.ConditionPerfectQuizScore:
		return true
	}
	return false
}
