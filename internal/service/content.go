package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shohaib/portfolio-cms/internal/content"
	"github.com/shohaib/portfolio-cms/internal/logger"
	"github.com/shohaib/portfolio-cms/internal/model"
)

// Content implements the admin and public content operations on top of a
// ContentStore.
type Content struct {
	store               model.ContentStore
	uploads             *Upload
	checker             model.ReferenceChecker
	allowCategoryCreate bool
	newID               func() string
	logger              *logger.Logger
}

// ContentOption configures a Content service.
type ContentOption func(*Content)

// WithReferenceChecker makes GetAll drop references to missing files.
func WithReferenceChecker(checker model.ReferenceChecker) ContentOption {
	return func(c *Content) {
		c.checker = checker
	}
}

// WithCategoryCreate toggles AddSkillCategory. It is enabled by default.
func WithCategoryCreate(enabled bool) ContentOption {
	return func(c *Content) {
		c.allowCategoryCreate = enabled
	}
}

func NewContent(
	store model.ContentStore,
	uploads *Upload,
	logger *logger.Logger,
	opts ...ContentOption,
) *Content {
	c := &Content{
		store:               store,
		uploads:             uploads,
		allowCategoryCreate: true,
		newID:               uuid.NewString,
		logger:              logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAll returns the aggregated public document.
func (c *Content) GetAll(ctx context.Context) (model.Content, error) {
	snapshot, err := c.store.Snapshot(ctx)
	if err != nil {
		c.logger.Error("Content service: failed to read snapshot",
			"error", err.Error())
		return model.Content{}, fmt.Errorf("failed to read content: %w", err)
	}
	return BuildContent(ctx, snapshot, c.checker), nil
}

// ReplaceHero overwrites the hero with h.
func (c *Content) ReplaceHero(ctx context.Context, h model.Hero) error {
	h.Name = strings.TrimSpace(h.Name)
	h.Title = strings.TrimSpace(h.Title)
	h.Tagline = strings.TrimSpace(h.Tagline)
	if h.Name == "" {
		return model.NewValidationError("name", "is required")
	}

	if err := c.store.ReplaceHero(ctx, h); err != nil {
		c.logger.Error("Content service: failed to replace hero",
			"error", err.Error())
		return fmt.Errorf("failed to replace hero: %w", err)
	}

	c.logger.Info("Content service: hero replaced")
	return nil
}

// AddSkillCategory creates a category whose id is the slug of title.
func (c *Content) AddSkillCategory(ctx context.Context, title string) (string, error) {
	if !c.allowCategoryCreate {
		return "", fmt.Errorf("%w: category creation is disabled", model.ErrForbidden)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return "", model.NewValidationError("title", "is required")
	}
	id := content.Slug(title)
	if id == "" {
		return "", model.NewValidationError("title", "must contain letters or digits")
	}

	if err := c.store.CreateSkillCategory(ctx, model.SkillCategory{ID: id, Title: title}); err != nil {
		if errors.Is(err, model.ErrConflict) {
			c.logger.Info("Content service: category already exists",
				"category_id", id)
			return "", fmt.Errorf("category %q already exists: %w", id, err)
		}
		c.logger.Error("Content service: failed to create category",
			"category_id", id,
			"error", err.Error())
		return "", fmt.Errorf("failed to create category: %w", err)
	}

	c.logger.Info("Content service: category created",
		"category_id", id)
	return id, nil
}

// DeleteSkillCategory removes a category that has no skills left.
func (c *Content) DeleteSkillCategory(ctx context.Context, id string) error {
	return c.delete(ctx, "category", id, c.store.DeleteSkillCategory)
}

// AddSkill resolves params.CategoryRef and adds a skill to that category.
func (c *Content) AddSkill(ctx context.Context, params model.CreateSkillParams) (string, error) {
	name := strings.TrimSpace(params.Name)
	ref := strings.TrimSpace(params.CategoryRef)
	if name == "" {
		return "", model.NewValidationError("name", "is required")
	}
	if ref == "" {
		return "", model.NewValidationError("categoryRef", "is required")
	}

	categories, err := c.store.ListSkillCategories(ctx)
	if err != nil {
		c.logger.Error("Content service: failed to list categories",
			"error", err.Error())
		return "", fmt.Errorf("failed to list categories: %w", err)
	}
	category, ok := resolveCategory(categories, ref)
	if !ok {
		c.logger.Info("Content service: category not found",
			"category_ref", ref)
		return "", model.NewValidationError("categoryRef", "category not found")
	}

	id, err := c.createSkill(ctx, category, name)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.NewValidationError("categoryRef", "category not found")
	}
	return id, err
}

// AddCategoryItem adds a skill to the category with id categoryID. Unlike
// AddSkill a missing category is reported as ErrNotFound.
func (c *Content) AddCategoryItem(ctx context.Context, categoryID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", model.NewValidationError("name", "is required")
	}

	categories, err := c.store.ListSkillCategories(ctx)
	if err != nil {
		c.logger.Error("Content service: failed to list categories",
			"error", err.Error())
		return "", fmt.Errorf("failed to list categories: %w", err)
	}
	for _, category := range categories {
		if category.ID == categoryID {
			return c.createSkill(ctx, category, name)
		}
	}

	c.logger.Info("Content service: category not found",
		"category_id", categoryID)
	return "", fmt.Errorf("category %q: %w", categoryID, model.ErrNotFound)
}

// RemoveCategoryItem deletes the skill at position index within its
// category, counting from zero in listing order.
func (c *Content) RemoveCategoryItem(ctx context.Context, categoryID string, index int) error {
	snapshot, err := c.store.Snapshot(ctx)
	if err != nil {
		c.logger.Error("Content service: failed to read snapshot",
			"error", err.Error())
		return fmt.Errorf("failed to read content: %w", err)
	}

	view := BuildContent(ctx, snapshot, nil)
	for _, category := range view.SkillCategories {
		if category.ID != categoryID {
			continue
		}
		if index < 0 || index >= len(category.Items) {
			return fmt.Errorf("item %d of category %q: %w", index, categoryID, model.ErrNotFound)
		}
		return c.DeleteSkill(ctx, category.Items[index].ID)
	}

	return fmt.Errorf("category %q: %w", categoryID, model.ErrNotFound)
}

func (c *Content) createSkill(ctx context.Context, category model.SkillCategory, name string) (string, error) {
	skill := model.Skill{ID: c.newID(), CategoryID: category.ID, Name: name}
	if err := c.store.CreateSkill(ctx, skill); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", fmt.Errorf("category %q: %w", category.ID, model.ErrNotFound)
		}
		c.logger.Error("Content service: failed to create skill",
			"category_id", category.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to create skill: %w", err)
	}

	c.logger.Info("Content service: skill created",
		"skill_id", skill.ID,
		"category_id", category.ID)
	return skill.ID, nil
}

// DeleteSkill removes one skill.
func (c *Content) DeleteSkill(ctx context.Context, id string) error {
	return c.delete(ctx, "skill", id, c.store.DeleteSkill)
}

// AddProject stores the optional image first and then the project.
func (c *Content) AddProject(ctx context.Context, params model.CreateProjectParams) (string, error) {
	project := model.Project{
		ID:          c.newID(),
		Title:       strings.TrimSpace(params.Title),
		Description: strings.TrimSpace(params.Description),
		Link:        strings.TrimSpace(params.Link),
		Tools:       content.Normalize(params.Tools),
	}
	if project.Title == "" {
		return "", model.NewValidationError("title", "is required")
	}

	image, err := c.save(ctx, model.UploadProject, params.Image)
	if err != nil {
		return "", err
	}
	project.Image = image

	if err := c.store.CreateProject(ctx, project); err != nil {
		c.logger.Error("Content service: failed to create project",
			"project_id", project.ID,
			"error", err.Error())
		c.uploads.Discard(ctx, image)
		return "", fmt.Errorf("failed to create project: %w", err)
	}

	c.logger.Info("Content service: project created",
		"project_id", project.ID)
	return project.ID, nil
}

// DeleteProject removes one project.
func (c *Content) DeleteProject(ctx context.Context, id string) error {
	return c.delete(ctx, "project", id, c.store.DeleteProject)
}

// AddExperience stores the optional logo first and then the entry.
func (c *Content) AddExperience(ctx context.Context, params model.CreateExperienceParams) (string, error) {
	experience := model.Experience{
		ID:               c.newID(),
		Company:          strings.TrimSpace(params.Company),
		Designation:      strings.TrimSpace(params.Designation),
		From:             params.From,
		To:               params.To,
		Responsibilities: content.Normalize(params.Responsibilities),
	}
	if experience.Company == "" {
		return "", model.NewValidationError("company", "is required")
	}
	if experience.Designation == "" {
		return "", model.NewValidationError("designation", "is required")
	}

	logo, err := c.save(ctx, model.UploadExperience, params.Logo)
	if err != nil {
		return "", err
	}
	experience.Logo = logo

	if err := c.store.CreateExperience(ctx, experience); err != nil {
		c.logger.Error("Content service: failed to create experience",
			"experience_id", experience.ID,
			"error", err.Error())
		c.uploads.Discard(ctx, logo)
		return "", fmt.Errorf("failed to create experience: %w", err)
	}

	c.logger.Info("Content service: experience created",
		"experience_id", experience.ID)
	return experience.ID, nil
}

// UpdateExperience merges the supplied fields into an existing entry.
// Fields left nil keep their stored values.
func (c *Content) UpdateExperience(ctx context.Context, id string, params model.UpdateExperienceParams) (model.Experience, error) {
	patch := params.Patch
	if patch.Company != nil {
		v := strings.TrimSpace(*patch.Company)
		if v == "" {
			return model.Experience{}, model.NewValidationError("company", "must not be empty")
		}
		patch.Company = &v
	}
	if patch.Designation != nil {
		v := strings.TrimSpace(*patch.Designation)
		if v == "" {
			return model.Experience{}, model.NewValidationError("designation", "must not be empty")
		}
		patch.Designation = &v
	}
	if patch.Responsibilities != nil {
		v := content.Normalize(*patch.Responsibilities)
		patch.Responsibilities = &v
	}

	logo, err := c.save(ctx, model.UploadExperience, params.Logo)
	if err != nil {
		return model.Experience{}, err
	}
	if logo != "" {
		patch.Logo = &logo
	}

	updated, err := c.store.UpdateExperience(ctx, id, patch)
	if err != nil {
		c.uploads.Discard(ctx, logo)
		if errors.Is(err, model.ErrNotFound) {
			c.logger.Info("Content service: experience not found",
				"experience_id", id)
			return model.Experience{}, fmt.Errorf("experience %q: %w", id, err)
		}
		c.logger.Error("Content service: failed to update experience",
			"experience_id", id,
			"error", err.Error())
		return model.Experience{}, fmt.Errorf("failed to update experience: %w", err)
	}

	c.logger.Info("Content service: experience updated",
		"experience_id", id)
	return updated, nil
}

// DeleteExperience removes one experience entry.
func (c *Content) DeleteExperience(ctx context.Context, id string) error {
	return c.delete(ctx, "experience", id, c.store.DeleteExperience)
}

// AddEducation stores the optional image first and then the entry.
func (c *Content) AddEducation(ctx context.Context, params model.CreateEducationParams) (string, error) {
	education := model.Education{
		ID:          c.newID(),
		Institute:   strings.TrimSpace(params.Institute),
		Degree:      strings.TrimSpace(params.Degree),
		Year:        strings.TrimSpace(params.Year),
		Description: strings.TrimSpace(params.Description),
	}
	if education.Institute == "" {
		return "", model.NewValidationError("institute", "is required")
	}
	if education.Degree == "" {
		return "", model.NewValidationError("degree", "is required")
	}

	image, err := c.save(ctx, model.UploadEducation, params.Image)
	if err != nil {
		return "", err
	}
	education.Image = image

	if err := c.store.CreateEducation(ctx, education); err != nil {
		c.logger.Error("Content service: failed to create education",
			"education_id", education.ID,
			"error", err.Error())
		c.uploads.Discard(ctx, image)
		return "", fmt.Errorf("failed to create education: %w", err)
	}

	c.logger.Info("Content service: education created",
		"education_id", education.ID)
	return education.ID, nil
}

// DeleteEducation removes one education entry.
func (c *Content) DeleteEducation(ctx context.Context, id string) error {
	return c.delete(ctx, "education", id, c.store.DeleteEducation)
}

// save uploads file when present. A nil file yields an empty reference.
func (c *Content) save(ctx context.Context, kind model.UploadKind, file *model.File) (string, error) {
	if file == nil {
		return "", nil
	}
	return c.uploads.Save(ctx, kind, *file)
}

func (c *Content) delete(ctx context.Context, entity, id string, del func(context.Context, string) error) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.NewValidationError("id", "is required")
	}

	if err := del(ctx, id); err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			c.logger.Info("Content service: delete target not found",
				"entity", entity,
				"id", id)
			return fmt.Errorf("%s %q: %w", entity, id, err)
		case errors.Is(err, model.ErrConflict):
			c.logger.Info("Content service: delete rejected",
				"entity", entity,
				"id", id,
				"reason", err.Error())
			return fmt.Errorf("%s %q: %w", entity, id, err)
		}
		c.logger.Error("Content service: failed to delete",
			"entity", entity,
			"id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete %s: %w", entity, err)
	}

	c.logger.Info("Content service: deleted",
		"entity", entity,
		"id", id)
	return nil
}

// resolveCategory matches ref against ids first and case-insensitive
// titles second.
func resolveCategory(categories []model.SkillCategory, ref string) (model.SkillCategory, bool) {
	for _, c := range categories {
		if c.ID == ref {
			return c, true
		}
	}
	for _, c := range categories {
		if strings.EqualFold(c.Title, ref) {
			return c, true
		}
	}
	return model.SkillCategory{}, false
}
