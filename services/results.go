// services/results.go - Result Recorder
package services

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/repository"
)

type ResultService struct {
	repos        *repository.Repositories
	achievements *AchievementService
}

func NewResultService(repos *repository.Repositories, achievements *AchievementService) *ResultService {
	return &ResultService{repos: repos, achievements: achievements}
}

// SubmitInput carries one submission. Nil pointer fields were omitted by
// the client and leave the stored value untouched on resubmission. A
// stored completion is permanent; Completed=false on a completed result
// updates the other fields only.
type SubmitInput struct {
	Completed  bool            `json:"completed"`
	Score      *int            `json:"score"`
	Answers    json.RawMessage `json:"answers"`
	Reflection *string         `json:"reflection"`
}

type SubmitOutcome struct {
	Result          *models.ChallengeResult `json:"result"`
	PointsAwarded   int                     `json:"points_awarded"`
	NewAchievements []models.Achievement    `json:"new_achievements"`
}

// Record validates and upserts the user's result for a challenge. When the
// result transitions to completed for the first time, the challenge's
// points are awarded and achievements are re-evaluated, all inside one
// transaction. Resubmitting a completed result never re-awards.
func (s *ResultService) Record(userID, challengeID string, in SubmitInput) (*SubmitOutcome, error) {
	challenge, err := s.repos.Challenges.FindWithOwners(challengeID)
	if err != nil {
		return nil, notFound(err)
	}

	if err := validateSubmission(challenge, in); err != nil {
		return nil, err
	}

	outcome := &SubmitOutcome{NewAchievements: []models.Achievement{}}

	err = s.repos.DB().Transaction(func(tx *gorm.DB) error {
		txRepos := s.repos.WithTx(tx)

		attempt := &models.ChallengeResult{
			UserID:      userID,
			ChallengeID: challengeID,
			Completed:   in.Completed,
			Score:       in.Score,
			Answers:     in.Answers,
			Reflection:  in.Reflection,
		}
		created, err := txRepos.Results.CreateIfAbsent(attempt)
		if err != nil {
			return err
		}

		transitioned := created && in.Completed
		if !created {
			// Completed is sticky: a stored true is never written back to
			// false, so the false->true claim below can succeed at most once
			// per (user, challenge) pair and the challenge points with it.
			updates := map[string]interface{}{}
			if in.Score != nil {
				updates["score"] = *in.Score
			}
			if in.Answers != nil {
				updates["answers"] = []byte(in.Answers)
			}
			if in.Reflection != nil {
				updates["reflection"] = *in.Reflection
			}

			if in.Completed {
				updates["completed"] = true
				// Claim the false->true transition; zero rows means the
				// result was already completed (or a concurrent submit won)
				// and points must not move again.
				claimed, err := txRepos.Results.Update(userID, challengeID, updates, true)
				if err != nil {
					return err
				}
				transitioned = claimed == 1
				if !transitioned {
					delete(updates, "completed")
				}
			}

			if !transitioned && len(updates) > 0 {
				if _, err := txRepos.Results.Update(userID, challengeID, updates, false); err != nil {
					return err
				}
			}
		}

		if transitioned {
			if challenge.PointsReward > 0 {
				if err := txRepos.Users.AddPoints(userID, challenge.PointsReward); err != nil {
					return err
				}
				outcome.PointsAwarded += challenge.PointsReward
			}

			newAchievements, err := s.achievements.Evaluate(txRepos, userID, challenge, in.Score)
			if err != nil {
				return err
			}
			outcome.NewAchievements = newAchievements
			for _, a := range newAchievements {
				outcome.PointsAwarded += a.PointsReward
			}
		}

		stored, err := txRepos.Results.Find(userID, challengeID)
		if err != nil {
			return err
		}
		outcome.Result = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Get returns the stored result for the pair, or nil when the user has
// never submitted this challenge.
func (s *ResultService) Get(userID, challengeID string) (*models.ChallengeResult, error) {
	if _, err := s.repos.Challenges.FindByID(challengeID); err != nil {
		return nil, notFound(err)
	}

	result, err := s.repos.Results.Find(userID, challengeID)
	if err != nil {
		if notFound(err) == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func validateSubmission(challenge *models.Challenge, in SubmitInput) error {
	if !models.ValidChallengeType(challenge.Type) {
		return validationf("challenge has unrecognized type %q", challenge.Type)
	}
	if challenge.Type == models.ChallengeTypeQuiz && in.Completed && in.Score == nil {
		return validationf("quiz challenges require a score when completed")
	}
	if challenge.Type == models.ChallengeTypeReflection && in.Completed &&
		(in.Reflection == nil || strings.TrimSpace(*in.Reflection) == "") {
		return validationf("reflection challenges require reflection text when completed")
	}
	return nil
}
