// services/progress.go - Progress Aggregator (pure read path)
package services

import (
	"math"

	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/repository"
)

type ProgressService struct {
	repos *repository.Repositories
}

func NewProgressService(repos *repository.Repositories) *ProgressService {
	return &ProgressService{repos: repos}
}

type SkillProgress struct {
	SkillID               string   `json:"skill_id"`
	SkillName             string   `json:"skill_name"`
	TotalChallenges       int      `json:"total_challenges"`
	CompletedChallenges   int      `json:"completed_challenges"`
	CompletedChallengeIDs []string `json:"completed_challenge_ids"`
	Percentage            int      `json:"percentage"`
	IsCompleted           bool     `json:"is_completed"`
}

type ModuleProgress struct {
	ModuleID            string   `json:"module_id"`
	ModuleName          string   `json:"module_name"`
	TotalChallenges     int      `json:"total_challenges"`
	CompletedChallenges int      `json:"completed_challenges"`
	Percentage          int      `json:"percentage"`
	CompletedSkillIDs   []string `json:"completed_skill_ids"`
}

// SkillProgress computes the user's completion ratio for one skill.
func (s *ProgressService) SkillProgress(userID, skillID string) (*SkillProgress, error) {
	skill, err := s.repos.Skills.FindWithChallenges(skillID)
	if err != nil {
		return nil, notFound(err)
	}

	challengeIDs := make([]string, 0, len(skill.Challenges))
	for _, c := range skill.Challenges {
		challengeIDs = append(challengeIDs, c.ID)
	}

	completedIDs, err := s.repos.Results.CompletedIDs(userID, challengeIDs)
	if err != nil {
		return nil, err
	}

	total := len(challengeIDs)
	completed := len(completedIDs)

	return &SkillProgress{
		SkillID:               skill.ID,
		SkillName:             skill.Name,
		TotalChallenges:       total,
		CompletedChallenges:   completed,
		CompletedChallengeIDs: completedIDs,
		Percentage:            percentage(completed, total),
		// A skill with no challenges is never complete.
		IsCompleted: total > 0 && completed == total,
	}, nil
}

// ModuleProgress computes the user's completion ratio across every
// challenge under the module, plus the set of fully mastered skills.
func (s *ProgressService) ModuleProgress(userID, moduleID string) (*ModuleProgress, error) {
	module, err := s.repos.Modules.FindWithTree(moduleID)
	if err != nil {
		return nil, notFound(err)
	}
	return s.moduleProgress(userID, module)
}

// AllModulesProgress returns module-level summaries for every module,
// ordered by display order.
func (s *ProgressService) AllModulesProgress(userID string) ([]ModuleProgress, error) {
	modules, err := s.repos.Modules.FindAllWithTree()
	if err != nil {
		return nil, err
	}

	progress := make([]ModuleProgress, 0, len(modules))
	for i := range modules {
		mp, err := s.moduleProgress(userID, &modules[i])
		if err != nil {
			return nil, err
		}
		progress = append(progress, *mp)
	}
	return progress, nil
}

func (s *ProgressService) moduleProgress(userID string, module *models.Module) (*ModuleProgress, error) {
	var challengeIDs []string
	for _, skill := range module.Skills {
		for _, c := range skill.Challenges {
			challengeIDs = append(challengeIDs, c.ID)
		}
	}

	completedIDs, err := s.repos.Results.CompletedIDs(userID, challengeIDs)
	if err != nil {
		return nil, err
	}
	completedSet := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		completedSet[id] = true
	}

	completedSkillIDs := make([]string, 0, len(module.Skills))
	for _, skill := range module.Skills {
		if skillMastered(&skill, completedSet) {
			completedSkillIDs = append(completedSkillIDs, skill.ID)
		}
	}

	total := len(challengeIDs)
	completed := len(completedIDs)

	return &ModuleProgress{
		ModuleID:            module.ID,
		ModuleName:          module.Name,
		TotalChallenges:     total,
		CompletedChallenges: completed,
		Percentage:          percentage(completed, total),
		CompletedSkillIDs:   completedSkillIDs,
	}, nil
}

// skillMastered reports whether every challenge of the skill is in the
// completed set. Skills with zero challenges are never mastered.
func skillMastered(skill *models.Skill, completed map[string]bool) bool {
	if len(skill.Challenges) == 0 {
		return false
	}
	for _, c := range skill.Challenges {
		if !completed[c.ID] {
			return false
		}
	}
	return true
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
