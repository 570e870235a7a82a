// services/content.go - Admin CRUD over the Module/Skill/Challenge tree.
//
// Deletes are guarded at this layer: a parent that still owns children is
// refused, independent of any store-level constraint.
package services

import (
	"github.com/CardSorting/dbternow/models"
	"github.com/CardSorting/dbternow/repository"
)

type ContentService struct {
	repos *repository.Repositories
}

func NewContentService(repos *repository.Repositories) *ContentService {
	return &ContentService{repos: repos}
}

// Modules

func (s *ContentService) ListModules() ([]models.Module, error) {
	return s.repos.Modules.FindAll()
}

func (s *ContentService) GetModule(id string) (*models.Module, error) {
	module, err := s.repos.Modules.FindWithTree(id)
	if err != nil {
		return nil, notFound(err)
	}
	return module, nil
}

func (s *ContentService) CreateModule(module *models.Module) error {
	if module.Name == "" {
		return validationf("module name is required")
	}
	if module.Order == 0 {
		count, err := s.repos.Modules.Count()
		if err != nil {
			return err
		}
		module.Order = int(count) + 1
	}
	return s.repos.Modules.Create(module)
}

func (s *ContentService) UpdateModule(module *models.Module) error {
	if module.Name == "" {
		return validationf("module name is required")
	}
	return s.repos.Modules.Save(module)
}

func (s *ContentService) DeleteModule(id string) error {
	if _, err := s.repos.Modules.FindByID(id); err != nil {
		return notFound(err)
	}
	children, err := s.repos.Modules.CountSkills(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return conflictf("module still has skills; delete or move them first")
	}
	return s.repos.Modules.Delete(id)
}

// Skills

func (s *ContentService) ListSkills() ([]models.Skill, error) {
	return s.repos.Skills.FindAll()
}

func (s *ContentService) ListSkillsByModule(moduleID string) ([]models.Skill, error) {
	if _, err := s.repos.Modules.FindByID(moduleID); err != nil {
		return nil, notFound(err)
	}
	return s.repos.Skills.FindByModule(moduleID)
}

func (s *ContentService) GetSkill(id string) (*models.Skill, error) {
	skill, err := s.repos.Skills.FindWithChallenges(id)
	if err != nil {
		return nil, notFound(err)
	}
	return skill, nil
}

func (s *ContentService) CreateSkill(skill *models.Skill) error {
	if skill.Name == "" || skill.ModuleID == "" {
		return validationf("skill name and module_id are required")
	}
	if _, err := s.repos.Modules.FindByID(skill.ModuleID); err != nil {
		return notFound(err)
	}
	if skill.Order == 0 {
		count, err := s.repos.Skills.CountByModule(skill.ModuleID)
		if err != nil {
			return err
		}
		skill.Order = int(count) + 1
	}
	return s.repos.Skills.Create(skill)
}

func (s *ContentService) UpdateSkill(skill *models.Skill) error {
	if skill.Name == "" {
		return validationf("skill name is required")
	}
	return s.repos.Skills.Save(skill)
}

func (s *ContentService) DeleteSkill(id string) error {
	if _, err := s.repos.Skills.FindByID(id); err != nil {
		return notFound(err)
	}
	children, err := s.repos.Skills.CountChallenges(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return conflictf("skill still has challenges; delete or move them first")
	}
	return s.repos.Skills.Delete(id)
}

// Challenges

func (s *ContentService) ListChallenges() ([]models.Challenge, error) {
	return s.repos.Challenges.FindAll()
}

func (s *ContentService) ListChallengesBySkill(skillID string) ([]models.Challenge, error) {
	if _, err := s.repos.Skills.FindByID(skillID); err != nil {
		return nil, notFound(err)
	}
	return s.repos.Challenges.FindBySkill(skillID)
}

func (s *ContentService) GetChallenge(id string) (*models.Challenge, error) {
	challenge, err := s.repos.Challenges.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return challenge, nil
}

func (s *ContentService) CreateChallenge(challenge *models.Challenge) error {
	if challenge.Title == "" || challenge.SkillID == "" || len(challenge.Content) == 0 {
		return validationf("challenge title, skill_id and content are required")
	}
	if !models.ValidChallengeType(challenge.Type) {
		return validationf("unknown challenge type %q", challenge.Type)
	}
	if _, err := s.repos.Skills.FindByID(challenge.SkillID); err != nil {
		return notFound(err)
	}
	return s.repos.Challenges.Create(challenge)
}

func (s *ContentService) UpdateChallenge(challenge *models.Challenge) error {
	if !models.ValidChallengeType(challenge.Type) {
		return validationf("unknown challenge type %q", challenge.Type)
	}
	return s.repos.Challenges.Save(challenge)
}

func (s *ContentService) DeleteChallenge(id string) error {
	if _, err := s.repos.Challenges.FindByID(id); err != nil {
		return notFound(err)
	}
	return s.repos.Challenges.Delete(id)
}
