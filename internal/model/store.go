package model

import "context"

// ContentStore persists the content collections.
//
// Delete and update methods return ErrNotFound when no row matched.
// CreateSkill returns ErrNotFound when the category does not exist.
// CreateSkillCategory returns ErrConflict on a duplicate id and
// DeleteSkillCategory returns ErrConflict while skills still reference it.
type ContentStore interface {
	Snapshot(ctx context.Context) (Snapshot, error)

	ReplaceHero(ctx context.Context, hero Hero) error

	ListSkillCategories(ctx context.Context) ([]SkillCategory, error)
	CreateSkillCategory(ctx context.Context, category SkillCategory) error
	DeleteSkillCategory(ctx context.Context, id string) error

	CreateSkill(ctx context.Context, skill Skill) error
	DeleteSkill(ctx context.Context, id string) error

	CreateProject(ctx context.Context, project Project) error
	DeleteProject(ctx context.Context, id string) error

	CreateExperience(ctx context.Context, experience Experience) error
	// UpdateExperience merges patch into the stored record and returns the result.
	UpdateExperience(ctx context.Context, id string, patch ExperiencePatch) (Experience, error)
	DeleteExperience(ctx context.Context, id string) error

	CreateEducation(ctx context.Context, education Education) error
	DeleteEducation(ctx context.Context, id string) error
}
