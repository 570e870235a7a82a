package repository

import (
	"gorm.io/gorm"

	"github.com/CardSorting/dbternow/models"
)

type ModuleRepository interface {
	FindAll() ([]models.Module, error)
	FindByID(id string) (*models.Module, error)
	// FindWithTree loads the module with its skills (ordered) and their
	// challenges, the shape the progress aggregator walks.
	FindWithTree(id string) (*models.Module, error)
	FindAllWithTree() ([]models.Module, error)
	Create(module *models.Module) error
	Save(module *models.Module) error
	Delete(id string) error
	Count() (int64, error)
	CountSkills(moduleID string) (int64, error)
}

type moduleRepo struct {
	db *gorm.DB
}

func (r *moduleRepo) FindAll() ([]models.Module, error) {
	var modules []models.Module
	err := r.db.
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("display_order ASC").
		Find(&modules).Error
	return modules, err
}

func (r *moduleRepo) FindByID(id string) (*models.Module, error) {
	var module models.Module
	if err := r.db.First(&module, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepo) FindWithTree(id string) (*models.Module, error) {
	var module models.Module
	err := r.db.
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Skills.Challenges").
		First(&module, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepo) FindAllWithTree() ([]models.Module, error) {
	var modules []models.Module
	err := r.db.
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Skills.Challenges").
		Order("display_order ASC").
		Find(&modules).Error
	return modules, err
}

func (r *moduleRepo) Create(module *models.Module) error {
	return r.db.Create(module).Error
}

func (r *moduleRepo) Save(module *models.Module) error {
	return r.db.Save(module).Error
}

func (r *moduleRepo) Delete(id string) error {
	return r.db.Delete(&models.Module{}, "id = ?", id).Error
}

func (r *moduleRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Module{}).Count(&count).Error
	return count, err
}

func (r *moduleRepo) CountSkills(moduleID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Where("module_id = ?", moduleID).Count(&count).Error
	return count, err
}
