// repository/repository.go - Per-entity data access over GORM.
//
// One statically-typed repository per entity; no string-keyed dispatch.
// Each repository is a thin value over a *gorm.DB handle, so WithTx can
// rebind the whole set to a transaction.
package repository

import "gorm.io/gorm"

type Repositories struct {
	Users        UserRepository
	Modules      ModuleRepository
	Skills       SkillRepository
	Challenges   ChallengeRepository
	Results      ResultRepository
	Achievements AchievementRepository

	db *gorm.DB
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:        &userRepo{db: db},
		Modules:      &moduleRepo{db: db},
		Skills:       &skillRepo{db: db},
		Challenges:   &challengeRepo{db: db},
		Results:      &resultRepo{db: db},
		Achievements: &achievementRepo{db: db},
		db:           db,
	}
}

// DB exposes the underlying handle for transaction scoping.
func (r *Repositories) DB() *gorm.DB {
	return r.db
}

// WithTx returns a repository set bound to tx.
func (r *Repositories) WithTx(tx *gorm.DB) *Repositories {
	return New(tx)
}
