// models/achievement.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConditionType enumerates the award conditions the evaluator understands.
// Conditions are resolved by tag, never by matching description text.
type ConditionType string

const (
	ConditionFirstCompletion  ConditionType = "FIRST_COMPLETION"
	ConditionSkillMastery     ConditionType = "SKILL_MASTERY"
	ConditionModuleMastery    ConditionType = "MODULE_MASTERY"
	ConditionCountMilestone   ConditionType = "COUNT_MILESTONE"
	ConditionPerfectQuizScore ConditionType = "PERFECT_QUIZ_SCORE"
)

type Achievement struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	Name        string        `gorm:"not null;uniqueIndex" json:"name"`
	Description string        `gorm:"not null" json:"description"`
	Icon        string        `json:"icon"`
	Condition   ConditionType `gorm:"not null;size:30;index" json:"condition"`

	// Threshold applies to COUNT_MILESTONE conditions (completed-challenge
	// count that triggers the award). ModuleID scopes MODULE_MASTERY badges
	// to one module; nil means any fully mastered module qualifies.
	Threshold int     `gorm:"default:0" json:"threshold,omitempty"`
	ModuleID  *string `gorm:"size:36;index" json:"module_id,omitempty"`

	PointsReward int `gorm:"default:0" json:"points_reward"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserAchievement existence means "earned". The (user_id, achievement_id)
// pair is unique so awarding is idempotent at the store level.
type UserAchievement struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"not null;size:36;uniqueIndex:idx_user_achievements_pair" json:"user_id"`
	AchievementID string    `gorm:"not null;size:36;uniqueIndex:idx_user_achievements_pair" json:"achievement_id"`
	AwardedAt     time.Time `json:"awarded_at"`

	User        *User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement *Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (ua *UserAchievement) BeforeCreate(tx *gorm.DB) error {
	if ua.ID == "" {
		ua.ID = uuid.NewString()
	}
	if ua.AwardedAt.IsZero() {
		ua.AwardedAt = time.Now().UTC()
	}
	return nil
}

func (Achievement) TableName() string {
	return "achievements"
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
