// models/module.go - Content tree: Module -> Skill
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Module is a top-level content grouping, ordered for sequential unlock.
type Module struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"not null;size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:50" json:"icon"`
	Order       int    `gorm:"column:display_order;not null;default:0;index" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Skills []Skill `gorm:"foreignKey:ModuleID" json:"skills,omitempty"`
}

// Skill is a learnable unit within a Module.
type Skill struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"not null;size:100" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	Content      string `gorm:"type:text" json:"content"`
	PointsReward int    `gorm:"default:0" json:"points_reward"`
	Order        int    `gorm:"column:display_order;not null;default:0" json:"order"`
	ModuleID     string `gorm:"not null;size:36;index" json:"module_id"`
	Module       *Module `gorm:"foreignKey:ModuleID" json:"module,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Challenges []Challenge `gorm:"foreignKey:SkillID" json:"challenges,omitempty"`
}

func (m *Module) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (Module) TableName() string {
	return "modules"
}

func (Skill) TableName() string {
	return "skills"
}
