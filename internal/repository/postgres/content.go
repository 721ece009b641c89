package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/shohaib/portfolio-cms/internal/model"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

var _ model.ContentStore = (*ContentRepository)(nil)

type ContentRepository struct {
	db *Connection
}

func NewContentRepository(db *Connection) *ContentRepository {
	return &ContentRepository{
		db: db,
	}
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Snapshot reads every table inside one read-only repeatable-read
// transaction so skills and categories come from the same point in time.
func (r *ContentRepository) Snapshot(ctx context.Context) (model.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer tx.Rollback()

	var snap model.Snapshot

	if snap.Hero, err = r.hero(ctx, tx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Categories, err = r.categories(ctx, tx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Skills, err = r.skills(ctx, tx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Projects, err = r.projects(ctx, tx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Experience, err = r.experience(ctx, tx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Education, err = r.education(ctx, tx); err != nil {
		return model.Snapshot{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to finish snapshot: %w", err)
	}

	return snap, nil
}

func (r *ContentRepository) hero(ctx context.Context, q querier) (*model.Hero, error) {
	rows, err := q.QueryContext(ctx, `SELECT name, title, tagline FROM hero LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hero: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var hero model.Hero
	if err := rows.Scan(&hero.Name, &hero.Title, &hero.Tagline); err != nil {
		return nil, fmt.Errorf("failed to scan hero: %w", err)
	}

	return &hero, rows.Err()
}

func (r *ContentRepository) categories(ctx context.Context, q querier) ([]model.SkillCategory, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, title FROM skill_categories ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query skill categories: %w", err)
	}
	defer rows.Close()

	var out []model.SkillCategory
	for rows.Next() {
		var c model.SkillCategory
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, fmt.Errorf("failed to scan skill category: %w", err)
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *ContentRepository) skills(ctx context.Context, q querier) ([]model.Skill, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, category_id, name FROM skills ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var out []model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *ContentRepository) projects(ctx context.Context, q querier) ([]model.Project, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, title, description, link, tools, image FROM projects ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link, textArray(&p.Tools), &p.Image); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

const experienceColumns = `id, company, designation, from_date, to_date, responsibilities, logo`

func (r *ContentRepository) experience(ctx context.Context, q querier) ([]model.Experience, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+experienceColumns+` FROM experience ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query experience: %w", err)
	}
	defer rows.Close()

	var out []model.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *ContentRepository) education(ctx context.Context, q querier) ([]model.Education, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, institute, degree, year, description, image FROM education ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query education: %w", err)
	}
	defer rows.Close()

	var out []model.Education
	for rows.Next() {
		var e model.Education
		if err := rows.Scan(&e.ID, &e.Institute, &e.Degree, &e.Year, &e.Description, &e.Image); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// ReplaceHero swaps the singleton row inside one transaction, so readers
// never see zero hero rows.
func (r *ContentRepository) ReplaceHero(ctx context.Context, hero model.Hero) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin hero replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM hero`); err != nil {
		return fmt.Errorf("failed to delete hero: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO hero (id, name, title, tagline) VALUES (1, $1, $2, $3)`,
		hero.Name, hero.Title, hero.Tagline,
	); err != nil {
		return fmt.Errorf("failed to insert hero: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit hero replace: %w", err)
	}

	return nil
}

func (r *ContentRepository) ListSkillCategories(ctx context.Context) ([]model.SkillCategory, error) {
	return r.categories(ctx, r.db)
}

func (r *ContentRepository) CreateSkillCategory(ctx context.Context, category model.SkillCategory) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO skill_categories (id, title) VALUES ($1, $2)`,
		category.ID, category.Title,
	)
	if isPgError(err, pgUniqueViolation) {
		return fmt.Errorf("%w: category %q already exists", model.ErrConflict, category.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert skill category: %w", err)
	}
	return nil
}

func (r *ContentRepository) DeleteSkillCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if isPgError(err, pgForeignKeyViolation) {
		return fmt.Errorf("%w: category %q still has skills", model.ErrConflict, id)
	}
	return affectedOne(res, err, "skill category")
}

func (r *ContentRepository) CreateSkill(ctx context.Context, skill model.Skill) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO skills (id, category_id, name) VALUES ($1, $2, $3)`,
		skill.ID, skill.CategoryID, skill.Name,
	)
	if isPgError(err, pgForeignKeyViolation) {
		return fmt.Errorf("%w: category %q", model.ErrNotFound, skill.CategoryID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert skill: %w", err)
	}
	return nil
}

func (r *ContentRepository) DeleteSkill(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return affectedOne(res, err, "skill")
}

func (r *ContentRepository) CreateProject(ctx context.Context, project model.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, link, tools, image) VALUES ($1, $2, $3, $4, $5, $6)`,
		project.ID, project.Title, project.Description, project.Link, nonNil(project.Tools), project.Image,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (r *ContentRepository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return affectedOne(res, err, "project")
}

func (r *ContentRepository) CreateExperience(ctx context.Context, e model.Experience) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO experience (`+experienceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Company, e.Designation, dateArg(e.From), dateArg(e.To), nonNil(e.Responsibilities), e.Logo,
	)
	if err != nil {
		return fmt.Errorf("failed to insert experience: %w", err)
	}
	return nil
}

// UpdateExperience locks the row, merges patch and writes it back. An empty
// patch only reads the row.
func (r *ContentRepository) UpdateExperience(ctx context.Context, id string, patch model.ExperiencePatch) (model.Experience, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Experience{}, fmt.Errorf("failed to begin experience update: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT `+experienceColumns+` FROM experience WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return model.Experience{}, fmt.Errorf("failed to query experience: %w", err)
	}
	if !rows.Next() {
		err := rows.Err()
		rows.Close()
		if err != nil {
			return model.Experience{}, fmt.Errorf("failed to query experience: %w", err)
		}
		return model.Experience{}, model.ErrNotFound
	}
	e, err := scanExperience(rows)
	rows.Close()
	if err != nil {
		return model.Experience{}, err
	}

	if patch.Empty() {
		if err := tx.Commit(); err != nil {
			return model.Experience{}, fmt.Errorf("failed to commit experience update: %w", err)
		}
		return e, nil
	}

	patch.Apply(&e)

	if _, err := tx.ExecContext(ctx,
		`UPDATE experience SET company = $2, designation = $3, from_date = $4, to_date = $5, responsibilities = $6, logo = $7 WHERE id = $1`,
		e.ID, e.Company, e.Designation, dateArg(e.From), dateArg(e.To), nonNil(e.Responsibilities), e.Logo,
	); err != nil {
		return model.Experience{}, fmt.Errorf("failed to update experience: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Experience{}, fmt.Errorf("failed to commit experience update: %w", err)
	}

	return e, nil
}

func (r *ContentRepository) DeleteExperience(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM experience WHERE id = $1`, id)
	return affectedOne(res, err, "experience")
}

func (r *ContentRepository) CreateEducation(ctx context.Context, e model.Education) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO education (id, institute, degree, year, description, image) VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Institute, e.Degree, e.Year, e.Description, e.Image,
	)
	if err != nil {
		return fmt.Errorf("failed to insert education: %w", err)
	}
	return nil
}

func (r *ContentRepository) DeleteEducation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM education WHERE id = $1`, id)
	return affectedOne(res, err, "education")
}

func scanExperience(rows *sql.Rows) (model.Experience, error) {
	var (
		e        model.Experience
		from, to sql.NullTime
	)
	if err := rows.Scan(&e.ID, &e.Company, &e.Designation, &from, &to, textArray(&e.Responsibilities), &e.Logo); err != nil {
		return model.Experience{}, fmt.Errorf("failed to scan experience: %w", err)
	}
	e.From = dateFromNull(from)
	e.To = dateFromNull(to)
	return e, nil
}

// textArray adapts a TEXT[] column for database/sql scanning.
func textArray(dst *[]string) sql.Scanner {
	return pgtype.NewMap().SQLScanner(dst)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func dateArg(d *model.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func dateFromNull(t sql.NullTime) *model.Date {
	if !t.Valid {
		return nil
	}
	d := model.NewDate(t.Time.In(time.UTC))
	return &d
}

func affectedOne(res sql.Result, err error, what string) error {
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
