package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CardSorting/dbternow/models"
)

type AchievementRepository interface {
	FindAll() ([]models.Achievement, error)
	FindByID(id string) (*models.Achievement, error)
	// FindByCondition returns the definitions for one condition tag in
	// deterministic order (threshold, then name).
	FindByCondition(cond models.ConditionType) ([]models.Achievement, error)
	Create(achievement *models.Achievement) error
	Save(achievement *models.Achievement) error
	Delete(id string) error
	HeldIDs(userID string) (map[string]bool, error)
	// Award records the user/achievement pair unless already held.
	// Returns whether this call created the award.
	Award(userID, achievementID string) (bool, error)
	ListForUser(userID string) ([]models.UserAchievement, error)
}

type achievementRepo struct {
	db *gorm.DB
}

func (r *achievementRepo) FindAll() ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.Order("name ASC").Find(&achievements).Error
	return achievements, err
}

func (r *achievementRepo) FindByID(id string) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := r.db.First(&achievement, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *achievementRepo) FindByCondition(cond models.ConditionType) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.
		Where("condition = ?", cond).
		Order("threshold ASC, name ASC").
		Find(&achievements).Error
	return achievements, err
}

func (r *achievementRepo) Create(achievement *models.Achievement) error {
	return r.db.Create(achievement).Error
}

func (r *achievementRepo) Save(achievement *models.Achievement) error {
	return r.db.Save(achievement).Error
}

func (r *achievementRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.UserAchievement{}, "achievement_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Achievement{}, "id = ?", id).Error
	})
}

func (r *achievementRepo) HeldIDs(userID string) (map[string]bool, error) {
	var ids []string
	err := r.db.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error
	if err != nil {
		return nil, err
	}
	held := make(map[string]bool, len(ids))
	for _, id := range ids {
		held[id] = true
	}
	return held, nil
}

func (r *achievementRepo) Award(userID, achievementID string) (bool, error) {
	award := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
	}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(&award)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *achievementRepo) ListForUser(userID string) ([]models.UserAchievement, error) {
	var awards []models.UserAchievement
	err := r.db.
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("awarded_at DESC").
		Find(&awards).Error
	return awards, err
}
