package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shohaib/portfolio-cms/internal/content"
	"github.com/shohaib/portfolio-cms/internal/logger"
	"github.com/shohaib/portfolio-cms/internal/model"
)

// ContentService defines the portfolio content operations.
type ContentService interface {
	GetAll(ctx context.Context) (model.Content, error)
	ReplaceHero(ctx context.Context, hero model.Hero) error
	AddSkillCategory(ctx context.Context, title string) (string, error)
	DeleteSkillCategory(ctx context.Context, id string) error
	AddSkill(ctx context.Context, params model.CreateSkillParams) (string, error)
	DeleteSkill(ctx context.Context, id string) error
	AddCategoryItem(ctx context.Context, categoryID, name string) (string, error)
	RemoveCategoryItem(ctx context.Context, categoryID string, index int) error
	AddProject(ctx context.Context, params model.CreateProjectParams) (string, error)
	DeleteProject(ctx context.Context, id string) error
	AddExperience(ctx context.Context, params model.CreateExperienceParams) (string, error)
	UpdateExperience(ctx context.Context, id string, params model.UpdateExperienceParams) (model.Experience, error)
	DeleteExperience(ctx context.Context, id string) error
	AddEducation(ctx context.Context, params model.CreateEducationParams) (string, error)
	DeleteEducation(ctx context.Context, id string) error
}

// Content handles the CMS endpoints.
type Content struct {
	contentService ContentService
	maxMemory      int64
	logger         *logger.Logger
}

// NewContent creates a new Content handler. maxMemory bounds the part of a
// multipart body kept in memory.
func NewContent(contentService ContentService, maxMemory int64, logger *logger.Logger) *Content {
	return &Content{
		contentService: contentService,
		maxMemory:      maxMemory,
		logger:         logger,
	}
}

// GetAll returns the public content document.
func (h *Content) GetAll(w http.ResponseWriter, r *http.Request) {
	doc, err := h.contentService.GetAll(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Content) ReplaceHero(w http.ResponseWriter, r *http.Request) {
	in, ok := h.read(w, r, "")
	if !ok {
		return
	}
	defer in.Close()

	hero := model.Hero{
		Name:    in.get("name"),
		Title:   in.get("title"),
		Tagline: in.get("tagline"),
	}
	if err := h.contentService.ReplaceHero(r.Context(), hero); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Hero section updated", "")
}

func (h *Content) AddSkillCategory(w http.ResponseWriter, r *http.Request) {
	in, ok := h.read(w, r, "")
	if !ok {
		return
	}
	defer in.Close()

	id, err := h.contentService.AddSkillCategory(r.Context(), in.get("title"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Skill category added", id)
}

func (h *Content) DeleteSkillCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.contentService.DeleteSkillCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Skill category deleted", "")
}

// AddSkill accepts categoryRef or the older category_id/category fields.
func (h *Content) AddSkill(w http.ResponseWriter, r *http.Request) {
	in, ok := h.read(w, r, "")
	if !ok {
		return
	}
	defer in.Close()

	params := model.CreateSkillParams{
		CategoryRef: in.get("categoryRef", "categoryId", "category_id", "category"),
		Name:        in.get("name"),
	}
	id, err := h.contentService.AddSkill(r.Context(), params)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Skill added", id)
}

func (h *Content) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.contentService.DeleteSkill(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Skill removed", "")
}

// AddCategoryItem adds a skill to the category named in the path.
func (h *Content) AddCategoryItem(w http.ResponseWriter, r *http.Request) {
	in, ok := h.read(w, r, "")
	if !ok {
		return
	}
	defer in.Close()

	id, err := h.contentService.AddCategoryItem(r.Context(), chi.URLParam(r, "id"), in.get("name", "item"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Skill added", id)
}

// RemoveCategoryItem removes a skill by its position inside the category.
func (h *Content) RemoveCategoryItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		handleError(w, r, h.logger, model.NewValidationError("index", "must be an integer"))
		return
	}
	if err := h.contentService.RemoveCategoryItem(r.Context(), chi.URLParam(r, "id"), index); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Skill removed", "")
}

func (h *Content) AddProject(w http.ResponseWriter, r *http.Request) {
	in, ok := h.read(w, r, "image")
	if !ok {
		return
	}
	defer in.Close()

	params := model.CreateProjectParams{
		Title:       in.get("title"),
		Description: in.get("description"),
		Link:        in.get("link"),
		Tools:       in.list("tools", content.SplitComma),
		Image:       in.file,
	}
	id, err := h.contentService.AddProject(r.Context(), params)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Project added", id)
}

func (h *Content) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.contentService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Project deleted", "")
}

func (h *Content) AddExperience(w http.ResponseWriter, r *http.Request) {
	in, ok := h.read(w, r, "logo")
	if !ok {
		return
	}
	defer in.Close()

	from, err := in.date("from")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	to, err := in.date("to")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	params := model.CreateExperienceParams{
		Company:          in.get("company"),
		Designation:      in.get("designation"),
		From:             from,
		To:               to,
		Responsibilities: in.list("responsibilities", content.SplitLines),
		Logo:             in.file,
	}
	id, err := h.contentService.AddExperience(r.Context(), params)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Experience added", id)
}

// UpdateExperience merges only the fields present in the body. An empty
// from or to clears the date.
func (h *Content) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	in, ok := h.read(w, r, "logo")
	if !ok {
		return
	}
	defer in.Close()

	var patch model.ExperiencePatch
	if in.has("company") {
		v := in.get("company")
		patch.Company = &v
	}
	if in.has("designation") {
		v := in.get("designation")
		patch.Designation = &v
	}
	for _, field := range []struct {
		key string
		dst ***model.Date
	}{
		{key: "from", dst: &patch.From},
		{key: "to", dst: &patch.To},
	} {
		if !in.has(field.key) {
			continue
		}
		d, err := in.date(field.key)
		if err != nil {
			handleError(w, r, h.logger, err)
			return
		}
		*field.dst = &d
	}
	if in.has("responsibilities") {
		v := in.list("responsibilities", content.SplitLines)
		patch.Responsibilities = &v
	}

	updated, err := h.contentService.UpdateExperience(r.Context(), chi.URLParam(r, "id"), model.UpdateExperienceParams{
		Patch: patch,
		Logo:  in.file,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Experience updated", updated.ID)
}

func (h *Content) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	if err := h.contentService.DeleteExperience(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Experience deleted", "")
}

func (h *Content) AddEducation(w http.ResponseWriter, r *http.Request) {
	in, ok := h.read(w, r, "image")
	if !ok {
		return
	}
	defer in.Close()

	params := model.CreateEducationParams{
		Institute:   in.get("institute"),
		Degree:      in.get("degree"),
		Year:        in.get("year"),
		Description: in.get("description"),
		Image:       in.file,
	}
	id, err := h.contentService.AddEducation(r.Context(), params)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Education added", id)
}

func (h *Content) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	if err := h.contentService.DeleteEducation(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Education deleted", "")
}

func (h *Content) read(w http.ResponseWriter, r *http.Request, fileField string) (*input, bool) {
	in, err := readInput(r, fileField, h.maxMemory)
	if err != nil {
		h.logger.Info("Content handler: unreadable request body",
			"path", r.URL.Path,
			"error", err.Error())
		handleError(w, r, h.logger, err)
		return nil, false
	}
	return in, true
}
