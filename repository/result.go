package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CardSorting/dbternow/models"
)

type ResultRepository interface {
	Find(userID, challengeID string) (*models.ChallengeResult, error)
	// CreateIfAbsent inserts the result unless the (user, challenge) pair
	// already exists. Returns whether a row was inserted.
	CreateIfAbsent(result *models.ChallengeResult) (bool, error)
	// Update applies updates to the pair's row. When claimCompletion is
	// set the update only matches while completed is still false, so the
	// returned count tells the caller whether this call won the
	// false->true transition.
	Update(userID, challengeID string, updates map[string]interface{}, claimCompletion bool) (int64, error)
	CountCompleted(userID string) (int64, error)
	// CompletedIDs returns the subset of challengeIDs the user has
	// completed.
	CompletedIDs(userID string, challengeIDs []string) ([]string, error)
}

type resultRepo struct {
	db *gorm.DB
}

func (r *resultRepo) Find(userID, challengeID string) (*models.ChallengeResult, error) {
	var result models.ChallengeResult
	err := r.db.First(&result, "user_id = ? AND challenge_id = ?", userID, challengeID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) CreateIfAbsent(result *models.ChallengeResult) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
		DoNothing: true,
	}).Create(result)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *resultRepo) Update(userID, challengeID string, updates map[string]interface{}, claimCompletion bool) (int64, error) {
	q := r.db.Model(&models.ChallengeResult{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID)
	if claimCompletion {
		q = q.Where("completed = ?", false)
	}
	res := q.Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *resultRepo) CountCompleted(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChallengeResult{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *resultRepo) CompletedIDs(userID string, challengeIDs []string) ([]string, error) {
	if len(challengeIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.db.Model(&models.ChallengeResult{}).
		Where("user_id = ? AND completed = ? AND challenge_id IN ?", userID, true, challengeIDs).
		Pluck("challenge_id", &ids).Error
	return ids, err
}
