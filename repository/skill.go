package repository

import (
	"gorm.io/gorm"

	"github.com/CardSorting/dbternow/models"
)

type SkillRepository interface {
	FindAll() ([]models.Skill, error)
	FindByID(id string) (*models.Skill, error)
	FindWithChallenges(id string) (*models.Skill, error)
	FindByModule(moduleID string) ([]models.Skill, error)
	Create(skill *models.Skill) error
	Save(skill *models.Skill) error
	Delete(id string) error
	CountByModule(moduleID string) (int64, error)
	CountChallenges(skillID string) (int64, error)
}

type skillRepo struct {
	db *gorm.DB
}

func (r *skillRepo) FindAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.
		Preload("Module").
		Order("module_id ASC, display_order ASC").
		Find(&skills).Error
	return skills, err
}

func (r *skillRepo) FindByID(id string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepo) FindWithChallenges(id string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.
		Preload("Module").
		Preload("Challenges").
		First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepo) FindByModule(moduleID string) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.
		Where("module_id = ?", moduleID).
		Order("display_order ASC").
		Find(&skills).Error
	return skills, err
}

func (r *skillRepo) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *skillRepo) Save(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

func (r *skillRepo) Delete(id string) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}

func (r *skillRepo) CountByModule(moduleID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Where("module_id = ?", moduleID).Count(&count).Error
	return count, err
}

func (r *skillRepo) CountChallenges(skillID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Challenge{}).Where("skill_id = ?", skillID).Count(&count).Error
	return count, err
}
