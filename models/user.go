// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Avatar   string `json:"avatar"`
	Role     Role   `gorm:"not null;default:'USER';size:20" json:"role"`

	// Progression
	Points int `gorm:"default:0" json:"points"`
	Level  int `gorm:"default:1" json:"level"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Results      []ChallengeResult `gorm:"foreignKey:UserID" json:"results,omitempty"`
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// LevelForPoints maps a points total to a stored level. Points are
// monotonically non-decreasing, so levels never regress.
func LevelForPoints(points int) int {
	return points/100 + 1
}

func (User) TableName() string {
	return "users"
}
