package repository

import (
	"gorm.io/gorm"

	"github.com/CardSorting/dbternow/models"
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	// AddPoints increments the user's points by delta and restores the
	// stored level from the new total in one statement pair.
	AddPoints(id string, delta int) error
}

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepo) AddPoints(id string, delta int) error {
	if err := r.db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("points", gorm.Expr("points + ?", delta)).Error; err != nil {
		return err
	}

	var user models.User
	if err := r.db.Select("id", "points").First(&user, "id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("level", models.LevelForPoints(user.Points)).Error
}
