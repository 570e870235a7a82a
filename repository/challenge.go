package repository

import (
	"gorm.io/gorm"

	"github.com/CardSorting/dbternow/models"
)

type ChallengeRepository interface {
	FindAll() ([]models.Challenge, error)
	FindByID(id string) (*models.Challenge, error)
	// FindWithOwners loads the challenge with its skill and the skill's
	// module, the chain the achievement evaluator climbs.
	FindWithOwners(id string) (*models.Challenge, error)
	FindBySkill(skillID string) ([]models.Challenge, error)
	Create(challenge *models.Challenge) error
	Save(challenge *models.Challenge) error
	Delete(id string) error
}

type challengeRepo struct {
	db *gorm.DB
}

func (r *challengeRepo) FindAll() ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.Order("skill_id ASC, id ASC").Find(&challenges).Error
	return challenges, err
}

func (r *challengeRepo) FindByID(id string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.db.First(&challenge, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepo) FindWithOwners(id string) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.db.
		Preload("Skill").
		Preload("Skill.Module").
		First(&challenge, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepo) FindBySkill(skillID string) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.Where("skill_id = ?", skillID).Order("id ASC").Find(&challenges).Error
	return challenges, err
}

func (r *challengeRepo) Create(challenge *models.Challenge) error {
	return r.db.Create(challenge).Error
}

func (r *challengeRepo) Save(challenge *models.Challenge) error {
	return r.db.Save(challenge).Error
}

func (r *challengeRepo) Delete(id string) error {
	// Results referencing the challenge go with it.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ChallengeResult{}, "challenge_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Challenge{}, "id = ?", id).Error
	})
}
