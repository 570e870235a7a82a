// database/seed.go - Idempotent startup seeding
package database

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CardSorting/dbternow/models"
)

// SeedAchievements installs the stock achievement definitions. Existing
// rows are left untouched, so this is safe to run on every boot.
func SeedAchievements(db *gorm.DB) error {
	achievements := []models.Achievement{
		{
			ID:           "ach-first-steps",
			Name:         "First Steps",
			Description:  "Complete your first challenge",
			Icon:         "🌱",
			Condition:    models.ConditionFirstCompletion,
			PointsReward: 50,
		},
		{
			ID:           "ach-skill-mastery",
			Name:         "Skill Sharpened",
			Description:  "Complete all challenges in a skill",
			Icon:         "⚡",
			Condition:    models.ConditionSkillMastery,
			PointsReward: 50,
		},
		{
			ID:           "ach-mindfulness-master",
			Name:         "Mindfulness Master",
			Description:  "Complete all skills in the Mindfulness module",
			Icon:         "🧠",
			Condition:    models.ConditionModuleMastery,
			ModuleID:     strPtr("mod-mindfulness"),
			PointsReward: 100,
		},
		{
			ID:           "ach-challenge-accepted",
			Name:         "Challenge Accepted",
			Description:  "Complete 5 challenges",
			Icon:         "🏆",
			Condition:    models.ConditionCountMilestone,
			Threshold:    5,
			PointsReward: 75,
		},
		{
			ID:           "ach-perfect-score",
			Name:         "Perfect Score",
			Description:  "Get 100% on a quiz challenge",
			Icon:         "🎯",
			Condition:    models.ConditionPerfectQuizScore,
			PointsReward: 50,
		},
	}

	for i := range achievements {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&achievements[i]).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Stock achievements seeded")
	return nil
}

// SeedContent installs the DBT starter modules when the content tree is
// empty. A populated database is never touched.
func SeedContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Module{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	modules := []models.Module{
		{ID: "mod-mindfulness", Name: "Mindfulness", Description: "Learn to observe and describe the present moment without judgment.", Icon: "🧘", Order: 1},
		{ID: "mod-distress-tolerance", Name: "Distress Tolerance", Description: "Develop skills to tolerate and survive crisis situations without making them worse.", Icon: "🌊", Order: 2},
		{ID: "mod-emotion-regulation", Name: "Emotion Regulation", Description: "Understand and manage intense emotions effectively.", Icon: "❤️", Order: 3},
		{ID: "mod-interpersonal", Name: "Interpersonal Effectiveness", Description: "Develop skills to ask for what you need and set boundaries while maintaining relationships.", Icon: "🤝", Order: 4},
	}

	skills := []models.Skill{
		{ID: "skill-wise-mind", Name: "Wise Mind", Description: "Balance emotional mind and reasonable mind.", Content: "Wise Mind is the balanced integration of emotional mind and reasonable mind.", PointsReward: 50, Order: 1, ModuleID: "mod-mindfulness"},
		{ID: "skill-observe", Name: "Observe", Description: "Notice your experience without reacting to it.", Content: "Observing means attending to events, emotions and sensations without trying to change them.", PointsReward: 50, Order: 2, ModuleID: "mod-mindfulness"},
		{ID: "skill-describe", Name: "Describe", Description: "Put words on your experience.", Content: "Describing means labeling what you observe with words, sticking to the facts.", PointsReward: 50, Order: 3, ModuleID: "mod-mindfulness"},
	}

	challenges := []models.Challenge{
		{
			ID: "ch-wise-mind-quiz", Title: "Wise Mind Basics", Description: "Check your understanding of the three states of mind.",
			Type: models.ChallengeTypeQuiz, PointsReward: 25, SkillID: "skill-wise-mind",
			Content: mustJSON(map[string]any{
				"questions": []map[string]any{
					{"text": "Which state of mind balances emotion and reason?", "options": []string{"Emotional mind", "Reasonable mind", "Wise mind"}, "answer": 2},
					{"text": "Wise Mind is best described as...", "options": []string{"Ignoring feelings", "Integrating feeling and thinking", "Pure logic"}, "answer": 1},
				},
			}),
		},
		{
			ID: "ch-wise-mind-reflect", Title: "A Wise Mind Moment", Description: "Reflect on a recent decision made from Wise Mind.",
			Type: models.ChallengeTypeReflection, PointsReward: 25, SkillID: "skill-wise-mind",
			Content: mustJSON(map[string]any{"prompt": "Describe a recent decision where you balanced emotion and reason."}),
		},
		{
			ID: "ch-observe-practice", Title: "Five Senses Practice", Description: "Spend five minutes observing through each sense.",
			Type: models.ChallengeTypePractice, PointsReward: 25, SkillID: "skill-observe",
			Content: mustJSON(map[string]any{"steps": []string{"Notice five things you can see", "Four you can feel", "Three you can hear", "Two you can smell", "One you can taste"}}),
		},
		{
			ID: "ch-observe-meditation", Title: "Breath Observation", Description: "A short guided observation of the breath.",
			Type: models.ChallengeTypeMeditation, PointsReward: 25, SkillID: "skill-observe",
			Content: mustJSON(map[string]any{"duration_minutes": 5, "guide": "Rest attention on the breath; when the mind wanders, gently return."}),
		},
		{
			ID: "ch-describe-scenario", Title: "Just the Facts", Description: "Practice describing a charged situation factually.",
			Type: models.ChallengeTypeScenario, PointsReward: 25, SkillID: "skill-describe",
			Content: mustJSON(map[string]any{"scenario": "A friend cancels plans at the last minute.", "task": "Write a description using only observable facts."}),
		},
		{
			ID: "ch-describe-quiz", Title: "Describe vs Judge", Description: "Spot the difference between descriptions and judgments.",
			Type: models.ChallengeTypeQuiz, PointsReward: 25, SkillID: "skill-describe",
			Content: mustJSON(map[string]any{
				"questions": []map[string]any{
					{"text": "\"He ignored me on purpose\" is a...", "options": []string{"Description", "Judgment"}, "answer": 1},
					{"text": "\"She looked away while I spoke\" is a...", "options": []string{"Description", "Judgment"}, "answer": 0},
				},
			}),
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range modules {
			if err := tx.Create(&modules[i]).Error; err != nil {
				return err
			}
		}
		for i := range skills {
			if err := tx.Create(&skills[i]).Error; err != nil {
				return err
			}
		}
		for i := range challenges {
			if err := tx.Create(&challenges[i]).Error; err != nil {
				return err
			}
		}
		log.Println("✅ Starter content seeded")
		return nil
	})
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func strPtr(s string) *string {
	return &s
}
