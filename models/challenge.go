// models/challenge.go - Challenges and per-user results
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeType string

const (
	ChallengeTypeQuiz       ChallengeType = "QUIZ"
	ChallengeTypeReflection ChallengeType = "REFLECTION"
	ChallengeTypePractice   ChallengeType = "PRACTICE"
	ChallengeTypeScenario   ChallengeType = "SCENARIO"
	ChallengeTypeMeditation ChallengeType = "MEDITATION"
)

// ValidChallengeType reports whether t is one of the known challenge types.
func ValidChallengeType(t ChallengeType) bool {
	switch t {
	case ChallengeTypeQuiz, ChallengeTypeReflection, ChallengeTypePractice,
		ChallengeTypeScenario, ChallengeTypeMeditation:
		return true
	}
	return false
}

// Challenge is a single gradeable or markable exercise of a fixed type.
// Content holds the type-specific payload (quiz questions, prompts, steps).
type Challenge struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	Title        string          `gorm:"not null;size:200" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	Type         ChallengeType   `gorm:"not null;size:20;index" json:"type"`
	Content      json.RawMessage `gorm:"type:jsonb" json:"content"`
	PointsReward int             `gorm:"default:0" json:"points_reward"`
	SkillID      string          `gorm:"not null;size:36;index" json:"skill_id"`
	Skill        *Skill          `gorm:"foreignKey:SkillID" json:"skill,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChallengeResult is a user's submission record for one challenge.
// The (user_id, challenge_id) pair is unique; resubmission updates in place.
type ChallengeResult struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	UserID      string          `gorm:"not null;size:36;uniqueIndex:idx_results_user_challenge" json:"user_id"`
	ChallengeID string          `gorm:"not null;size:36;uniqueIndex:idx_results_user_challenge" json:"challenge_id"`
	Completed   bool            `gorm:"not null;default:false" json:"completed"`
	Score       *int            `json:"score"`
	Answers     json.RawMessage `gorm:"type:jsonb" json:"answers"`
	Reflection  *string         `gorm:"type:text" json:"reflection"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (r *ChallengeResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (Challenge) TableName() string {
	return "challenges"
}

func (ChallengeResult) TableName() string {
	return "challenge_results"
}
