package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shohaib/portfolio-cms/internal/mocks"
	"github.com/shohaib/portfolio-cms/internal/model"
	"github.com/shohaib/portfolio-cms/internal/testutil"
)

func newContentRouter(t *testing.T) (http.Handler, *mocks.ContentService) {
	t.Helper()
	svc := mocks.NewContentService(t)
	h := NewContent(svc, 1<<20, testutil.MakeNoopLogger())

	r := chi.NewRouter()
	r.Get("/content", h.GetAll)
	r.Put("/hero", h.ReplaceHero)
	r.Post("/skill-categories", h.AddSkillCategory)
	r.Delete("/skill-categories/{id}", h.DeleteSkillCategory)
	r.Post("/skill-categories/{id}/items", h.AddCategoryItem)
	r.Delete("/skill-categories/{id}/items/{index}", h.RemoveCategoryItem)
	r.Post("/skills", h.AddSkill)
	r.Delete("/skills/{id}", h.DeleteSkill)
	r.Post("/projects", h.AddProject)
	r.Delete("/projects/{id}", h.DeleteProject)
	r.Post("/experience", h.AddExperience)
	r.Put("/experience/{id}", h.UpdateExperience)
	r.Delete("/experience/{id}", h.DeleteExperience)
	r.Post("/education", h.AddEducation)
	r.Delete("/education/{id}", h.DeleteEducation)
	return r, svc
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestContent_GetAll(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("GetAll", mock.Anything).Return(model.Content{
		Hero:            model.Hero{Name: "Ada"},
		SkillCategories: []model.CategoryView{{ID: "go", Title: "Go", Items: []model.SkillItem{}}},
		Projects:        []model.Project{},
		Experience:      []model.Experience{},
		Education:       []model.Education{},
	}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/content", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"hero": {"name": "Ada", "title": "", "tagline": ""},
		"skillCategories": [{"id": "go", "title": "Go", "items": []}],
		"projects": [],
		"experience": [],
		"education": []
	}`, rec.Body.String())
}

func TestContent_GetAll_StorageFailure(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("GetAll", mock.Anything).Return(model.Content{}, errors.New("connection refused"))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/content", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestContent_ReplaceHero(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("ReplaceHero", mock.Anything, model.Hero{Name: "Ada", Title: "Engineer", Tagline: "Hi"}).Return(nil)

	rec := serve(h, jsonRequest(http.MethodPut, "/hero", `{"name":"Ada","title":"Engineer","tagline":"Hi"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hero section updated"}`, rec.Body.String())
}

func TestContent_AddSkillCategory(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, svc := newContentRouter(t)
		svc.On("AddSkillCategory", mock.Anything, "Languages").Return("languages", nil)

		rec := serve(h, jsonRequest(http.MethodPost, "/skill-categories", `{"title":"Languages"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Skill category added","id":"languages"}`, rec.Body.String())
	})

	t.Run("disabled", func(t *testing.T) {
		h, svc := newContentRouter(t)
		svc.On("AddSkillCategory", mock.Anything, "Languages").Return("", model.ErrForbidden)

		rec := serve(h, jsonRequest(http.MethodPost, "/skill-categories", `{"title":"Languages"}`))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestContent_DeleteSkillCategory_Conflict(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("DeleteSkillCategory", mock.Anything, "languages").Return(model.ErrConflict)

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/skill-categories/languages", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestContent_AddSkill(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "categoryRef", body: `{"categoryRef":"Languages","name":"Go"}`},
		{name: "legacy category_id", body: `{"category_id":"Languages","name":"Go"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newContentRouter(t)
			svc.On("AddSkill", mock.Anything, model.CreateSkillParams{CategoryRef: "Languages", Name: "Go"}).Return("s1", nil)

			rec := serve(h, jsonRequest(http.MethodPost, "/skills", tt.body))

			assert.Equal(t, http.StatusCreated, rec.Code)
			assert.JSONEq(t, `{"message":"Skill added","id":"s1"}`, rec.Body.String())
		})
	}
}

func TestContent_AddSkill_UnknownCategory(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("AddSkill", mock.Anything, mock.Anything).Return("", model.NewValidationError("categoryRef", "category not found"))

	rec := serve(h, jsonRequest(http.MethodPost, "/skills", `{"categoryRef":"Nope","name":"Go"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"categoryRef category not found"}`, rec.Body.String())
}

func TestContent_CategoryItems(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("AddCategoryItem", mock.Anything, "tools", "Docker").Return("s1", nil)
	svc.On("RemoveCategoryItem", mock.Anything, "tools", 0).Return(nil)
	svc.On("RemoveCategoryItem", mock.Anything, "missing", 0).Return(model.ErrNotFound)

	rec := serve(h, jsonRequest(http.MethodPost, "/skill-categories/tools/items", `{"name":"Docker"}`))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodDelete, "/skill-categories/tools/items/0", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodDelete, "/skill-categories/missing/items/0", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodDelete, "/skill-categories/tools/items/first", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContent_AddProject_Multipart(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("AddProject", mock.Anything, mock.MatchedBy(func(p model.CreateProjectParams) bool {
		return p.Title == "Site" &&
			p.Link == "https://example.com" &&
			assert.ObjectsAreEqual([]string{"Go", "SQL"}, p.Tools) &&
			p.Image != nil &&
			p.Image.Name == "shot.png" &&
			p.Image.ContentType == "image/png" &&
			p.Image.Size == 3
	})).Return("p1", nil)

	req := multipartRequest(t, http.MethodPost, "/projects", url.Values{
		"title": {"Site"},
		"link":  {"https://example.com"},
		"tools": {"Go, SQL"},
	}, part{field: "image", filename: "shot.png", contentType: "image/png", body: "png"})

	rec := serve(h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Project added","id":"p1"}`, rec.Body.String())
}

func TestContent_AddProject_UnsupportedMediaType(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("AddProject", mock.Anything, mock.Anything).Return("", model.ErrUnsupportedMediaType)

	req := multipartRequest(t, http.MethodPost, "/projects", url.Values{"title": {"Site"}},
		part{field: "image", filename: "cv.pdf", contentType: "application/pdf", body: "%PDF"})

	rec := serve(h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContent_DeleteProject(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("DeleteProject", mock.Anything, "p1").Return(nil).Once()
	svc.On("DeleteProject", mock.Anything, "p1").Return(model.ErrNotFound).Once()

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/projects/p1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Project deleted"}`, rec.Body.String())

	rec = serve(h, httptest.NewRequest(http.MethodDelete, "/projects/p1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContent_AddExperience(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("AddExperience", mock.Anything, mock.MatchedBy(func(p model.CreateExperienceParams) bool {
		return p.Company == "Acme" &&
			p.Designation == "Engineer" &&
			p.From != nil && p.From.String() == "2020-01-01" &&
			p.To == nil &&
			assert.ObjectsAreEqual([]string{"A", "B"}, p.Responsibilities) &&
			p.Logo == nil
	})).Return("e1", nil)

	req := multipartRequest(t, http.MethodPost, "/experience", url.Values{
		"company":          {"Acme"},
		"designation":      {"Engineer"},
		"from":             {"2020-01"},
		"to":               {""},
		"responsibilities": {"A\n\nB\n"},
	})

	rec := serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContent_AddExperience_BadDate(t *testing.T) {
	h, _ := newContentRouter(t)

	req := multipartRequest(t, http.MethodPost, "/experience", url.Values{
		"company":     {"Acme"},
		"designation": {"Engineer"},
		"from":        {"last spring"},
	})

	rec := serve(h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContent_UpdateExperience(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("UpdateExperience", mock.Anything, "e1", mock.MatchedBy(func(p model.UpdateExperienceParams) bool {
		patch := p.Patch
		return patch.Company == nil &&
			patch.Designation != nil && *patch.Designation == "Lead" &&
			patch.From == nil &&
			patch.To != nil && *patch.To == nil &&
			patch.Responsibilities != nil && assert.ObjectsAreEqual([]string{"Hire"}, *patch.Responsibilities) &&
			p.Logo == nil
	})).Return(model.Experience{ID: "e1"}, nil)

	rec := serve(h, jsonRequest(http.MethodPut, "/experience/e1", `{"designation":"Lead","to":null,"responsibilities":["Hire"]}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Experience updated","id":"e1"}`, rec.Body.String())
}

func TestContent_UpdateExperience_NotFound(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("UpdateExperience", mock.Anything, "missing", mock.Anything).Return(model.Experience{}, model.ErrNotFound)

	rec := serve(h, jsonRequest(http.MethodPut, "/experience/missing", `{"company":"Acme"}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContent_Education(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("AddEducation", mock.Anything, mock.MatchedBy(func(p model.CreateEducationParams) bool {
		return p.Institute == "MIT" && p.Degree == "BSc" && p.Year == "2020" && p.Image != nil && p.Image.Name == "mit.jpg"
	})).Return("d1", nil)
	svc.On("DeleteEducation", mock.Anything, "d1").Return(nil)

	req := multipartRequest(t, http.MethodPost, "/education", url.Values{
		"institute": {"MIT"},
		"degree":    {"BSc"},
		"year":      {"2020"},
	}, part{field: "image", filename: "mit.jpg", contentType: "image/jpeg", body: "jpg"})

	rec := serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Education added","id":"d1"}`, rec.Body.String())

	rec = serve(h, httptest.NewRequest(http.MethodDelete, "/education/d1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContent_DeleteSkillAndExperience(t *testing.T) {
	h, svc := newContentRouter(t)
	svc.On("DeleteSkill", mock.Anything, "s1").Return(nil)
	svc.On("DeleteExperience", mock.Anything, "e1").Return(model.ErrNotFound)

	assert.Equal(t, http.StatusOK, serve(h, httptest.NewRequest(http.MethodDelete, "/skills/s1", nil)).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, httptest.NewRequest(http.MethodDelete, "/experience/e1", nil)).Code)
}
