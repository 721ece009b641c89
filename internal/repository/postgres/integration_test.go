//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shohaib/portfolio-cms/internal/model"
	repo "github.com/shohaib/portfolio-cms/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "portfolio_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/portfolio_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestContentRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	cr := repo.NewContentRepository(conn)

	t.Run("hero", func(t *testing.T) {
		require.NoError(t, cr.ReplaceHero(ctx, model.Hero{Name: "N", Title: "T", Tagline: "Tag"}))
		require.NoError(t, cr.ReplaceHero(ctx, model.Hero{Name: "N", Title: "T", Tagline: "Tag"}))

		snap, err := cr.Snapshot(ctx)
		require.NoError(t, err)
		require.NotNil(t, snap.Hero)
		assert.Equal(t, model.Hero{Name: "N", Title: "T", Tagline: "Tag"}, *snap.Hero)
	})

	t.Run("categories and skills", func(t *testing.T) {
		require.NoError(t, cr.CreateSkillCategory(ctx, model.SkillCategory{ID: "languages", Title: "Languages"}))
		assert.ErrorIs(t, cr.CreateSkillCategory(ctx, model.SkillCategory{ID: "languages", Title: "Languages"}), model.ErrConflict)

		assert.ErrorIs(t, cr.CreateSkill(ctx, model.Skill{ID: "orphan", CategoryID: "missing", Name: "Go"}), model.ErrNotFound)
		require.NoError(t, cr.CreateSkill(ctx, model.Skill{ID: "s1", CategoryID: "languages", Name: "Go"}))

		assert.ErrorIs(t, cr.DeleteSkillCategory(ctx, "languages"), model.ErrConflict)
		require.NoError(t, cr.DeleteSkill(ctx, "s1"))
		assert.ErrorIs(t, cr.DeleteSkill(ctx, "s1"), model.ErrNotFound)
		require.NoError(t, cr.DeleteSkillCategory(ctx, "languages"))
	})

	t.Run("projects", func(t *testing.T) {
		require.NoError(t, cr.CreateProject(ctx, model.Project{ID: "p1", Title: "Site", Tools: []string{"Go", "Postgres"}}))

		snap, err := cr.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snap.Projects, 1)
		assert.Equal(t, []string{"Go", "Postgres"}, snap.Projects[0].Tools)

		require.NoError(t, cr.DeleteProject(ctx, "p1"))
		assert.ErrorIs(t, cr.DeleteProject(ctx, "p1"), model.ErrNotFound)
	})

	t.Run("experience", func(t *testing.T) {
		from, err := model.ParseDate("2020-05-01")
		require.NoError(t, err)
		require.NoError(t, cr.CreateExperience(ctx, model.Experience{
			ID: "e1", Company: "Acme", Designation: "Dev", From: &from, Responsibilities: []string{"A", "B"},
		}))

		lead := "Lead"
		got, err := cr.UpdateExperience(ctx, "e1", model.ExperiencePatch{Designation: &lead})
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Company)
		assert.Equal(t, "Lead", got.Designation)
		assert.Equal(t, "2020-05-01", got.From.String())

		require.NoError(t, cr.DeleteExperience(ctx, "e1"))
	})

	t.Run("education", func(t *testing.T) {
		require.NoError(t, cr.CreateEducation(ctx, model.Education{ID: "ed1", Institute: "MIT", Degree: "BSc", Year: "2020", Description: "CS"}))

		snap, err := cr.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snap.Education, 1)
		assert.Equal(t, "MIT", snap.Education[0].Institute)

		require.NoError(t, cr.DeleteEducation(ctx, "ed1"))
	})
}
