package postgres

import (
	"context"
	"fmt"

	"github.com/shohaib/portfolio-cms/internal/model"
)

// Import replaces every table with the contents of snap in one transaction.
func (r *ContentRepository) Import(ctx context.Context, snap model.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"skills", "skill_categories", "projects", "experience", "education", "hero"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if snap.Hero != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO hero (id, name, title, tagline) VALUES (1, $1, $2, $3)`,
			snap.Hero.Name, snap.Hero.Title, snap.Hero.Tagline,
		); err != nil {
			return fmt.Errorf("failed to import hero: %w", err)
		}
	}
	for _, c := range snap.Categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO skill_categories (id, title) VALUES ($1, $2)`, c.ID, c.Title); err != nil {
			return fmt.Errorf("failed to import category %q: %w", c.ID, err)
		}
	}
	for _, s := range snap.Skills {
		if _, err := tx.ExecContext(ctx, `INSERT INTO skills (id, category_id, name) VALUES ($1, $2, $3)`, s.ID, s.CategoryID, s.Name); err != nil {
			return fmt.Errorf("failed to import skill %q: %w", s.ID, err)
		}
	}
	for _, p := range snap.Projects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, title, description, link, tools, image) VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.Title, p.Description, p.Link, nonNil(p.Tools), p.Image,
		); err != nil {
			return fmt.Errorf("failed to import project %q: %w", p.ID, err)
		}
	}
	for _, e := range snap.Experience {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO experience (`+experienceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, e.Company, e.Designation, dateArg(e.From), dateArg(e.To), nonNil(e.Responsibilities), e.Logo,
		); err != nil {
			return fmt.Errorf("failed to import experience %q: %w", e.ID, err)
		}
	}
	for _, e := range snap.Education {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO education (id, institute, degree, year, description, image) VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, e.Institute, e.Degree, e.Year, e.Description, e.Image,
		); err != nil {
			return fmt.Errorf("failed to import education %q: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	return nil
}
