package router

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"

	"github.com/shohaib/portfolio-cms/internal/model"
	"github.com/shohaib/portfolio-cms/internal/repository/file"
	"github.com/shohaib/portfolio-cms/internal/service"
	"github.com/shohaib/portfolio-cms/internal/storage/local"
	"github.com/shohaib/portfolio-cms/internal/testutil"
	"github.com/shohaib/portfolio-cms/internal/token"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testAPI struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	dir := t.TempDir()
	lg := testutil.MakeNoopLogger()

	store, err := file.NewStore(filepath.Join(dir, "content.json"))
	require.NoError(t, err)
	disk, err := local.NewDisk(filepath.Join(dir, "uploads"), "/assets/uploads")
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	jwt := token.NewJWT("test-secret", time.Hour)
	auth := service.NewAuth("admin@example.com", string(hash), jwt, lg)
	uploads := service.NewUpload(disk, []string{"image/png", "image/jpeg", "image/jpg"}, lg)
	content := service.NewContent(store, uploads, lg, service.WithReferenceChecker(disk))

	h := New(auth, content, jwt, Options{
		AllowedOrigins: []string{"*"},
		MaxBodyBytes:   1 << 20,
		UploadsPrefix:  disk.PublicPrefix(),
		Uploads:        disk.Handler(),
	}, lg).Register()

	return &testAPI{t: t, handler: h}
}

func (a *testAPI) do(req *http.Request) *httptest.ResponseRecorder {
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) json(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return a.do(req)
}

func (a *testAPI) login() {
	rec := a.json(http.MethodPost, "/api/login", `{"identifier":"admin@example.com","secret":"s3cret"}`)
	require.Equal(a.t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(a.t, body.Token)
	a.token = body.Token
}

func (a *testAPI) content() model.Content {
	rec := a.do(httptest.NewRequest(http.MethodGet, "/api/cms/content", nil))
	require.Equal(a.t, http.StatusOK, rec.Code)

	var doc model.Content
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &doc))
	return doc
}

func TestRouter_Health(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Login(t *testing.T) {
	api := newTestAPI(t)

	rec := api.json(http.MethodPost, "/api/login", `{"identifier":"admin@example.com","secret":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.json(http.MethodPost, "/api/login", `{"email":"admin@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	routes := []struct{ method, path string }{
		{http.MethodPut, "/api/cms/hero"},
		{http.MethodPost, "/api/cms/skill-categories"},
		{http.MethodDelete, "/api/cms/skill-categories/go"},
		{http.MethodPost, "/api/cms/skill-categories/go/items"},
		{http.MethodDelete, "/api/cms/skill-categories/go/items/0"},
		{http.MethodPost, "/api/cms/skills"},
		{http.MethodDelete, "/api/cms/skills/s1"},
		{http.MethodPost, "/api/cms/projects"},
		{http.MethodDelete, "/api/cms/projects/p1"},
		{http.MethodPost, "/api/cms/experience"},
		{http.MethodPut, "/api/cms/experience/e1"},
		{http.MethodDelete, "/api/cms/experience/e1"},
		{http.MethodPost, "/api/cms/education"},
		{http.MethodDelete, "/api/cms/education/d1"},
	}
	for _, rt := range routes {
		rec := api.json(rt.method, rt.path, `{}`)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", rt.method, rt.path)
	}

	api.token = "not-a-token"
	rec := api.json(http.MethodPut, "/api/cms/hero", `{"name":"Ada"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ContentIsPublic(t *testing.T) {
	api := newTestAPI(t)

	doc := api.content()

	assert.NotNil(t, doc.SkillCategories)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Education)
}

func TestRouter_CategorySkillScenario(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	rec := api.json(http.MethodPost, "/api/cms/skill-categories", `{"title":"Languages"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Skill category added","id":"languages"}`, rec.Body.String())

	rec = api.json(http.MethodPost, "/api/cms/skill-categories", `{"title":"languages"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.json(http.MethodPost, "/api/cms/skills", `{"categoryRef":"Languages","name":"Go"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.json(http.MethodPost, "/api/cms/skills", `{"categoryRef":"Frameworks","name":"Gin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	doc := api.content()
	require.Len(t, doc.SkillCategories, 1)
	assert.Equal(t, "Languages", doc.SkillCategories[0].Title)
	require.Len(t, doc.SkillCategories[0].Items, 1)
	assert.Equal(t, "Go", doc.SkillCategories[0].Items[0].Name)

	rec = api.do(httptest.NewRequest(http.MethodDelete, "/api/cms/skill-categories/languages", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(httptest.NewRequest(http.MethodDelete, "/api/cms/skills/"+doc.SkillCategories[0].Items[0].ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(httptest.NewRequest(http.MethodDelete, "/api/cms/skill-categories/languages", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProjectUploadScenario(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Portfolio"))
	require.NoError(t, mw.WriteField("tools", "Go, Postgres"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="Home Page.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = io.WriteString(part, "\x89PNG")
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/cms/projects", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := api.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	doc := api.content()
	require.Len(t, doc.Projects, 1)
	project := doc.Projects[0]
	assert.Equal(t, []string{"Go", "Postgres"}, project.Tools)
	require.True(t, strings.HasPrefix(project.Image, "/assets/uploads/projects/home-page-"), project.Image)

	rec = api.do(httptest.NewRequest(http.MethodGet, project.Image, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "\x89PNG", rec.Body.String())

	rec = api.do(httptest.NewRequest(http.MethodDelete, "/api/cms/projects/"+project.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(httptest.NewRequest(http.MethodDelete, "/api/cms/projects/"+project.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BodyLimit(t *testing.T) {
	api := newTestAPI(t)
	api.login()

	big := `{"name":"` + strings.Repeat("a", 2<<20) + `"}`
	rec := api.json(http.MethodPut, "/api/cms/hero", big)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
