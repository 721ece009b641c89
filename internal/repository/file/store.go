// Package file implements model.ContentStore on top of a single JSON
// document that is rewritten wholesale on every mutation.
//
// Writers inside one process are serialized. Several processes writing the
// same document are not safe; the product has a single admin.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shohaib/portfolio-cms/internal/model"
)

var _ model.ContentStore = (*Store)(nil)

type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore opens the document at path, creating an empty one if needed.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create content directory: %w", err)
	}

	s := &Store{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		doc := document{}
		doc.normalize()
		if err := s.write(doc); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat content document: %w", err)
	}

	return s, nil
}

func (s *Store) read() (document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return document{}, fmt.Errorf("failed to read content document: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return document{}, fmt.Errorf("failed to decode content document: %w", err)
	}
	doc.normalize()

	return doc, nil
}

// write replaces the document through a temp file so readers never observe
// a partially written file.
func (s *Store) write(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode content document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".content-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp document: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp document: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace content document: %w", err)
	}

	return nil
}

// update runs fn against the current document and persists the result
// unless fn fails.
func (s *Store) update(ctx context.Context, fn func(doc *document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}

	return s.write(doc)
}

func (s *Store) Snapshot(ctx context.Context) (model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return model.Snapshot{}, err
	}

	return doc.snapshot(), nil
}

// Import replaces the whole document with snap.
func (s *Store) Import(ctx context.Context, snap model.Snapshot) error {
	return s.update(ctx, func(doc *document) error {
		*doc = document{
			Hero:       snap.Hero,
			Skills:     snap.Skills,
			Projects:   snap.Projects,
			Experience: snap.Experience,
			Education:  snap.Education,
		}
		for _, c := range snap.Categories {
			doc.SkillCategories = append(doc.SkillCategories, categoryRecord{ID: c.ID, Title: c.Title})
		}
		doc.normalize()
		return nil
	})
}

func (s *Store) ReplaceHero(ctx context.Context, hero model.Hero) error {
	return s.update(ctx, func(doc *document) error {
		doc.Hero = &hero
		return nil
	})
}

func (s *Store) ListSkillCategories(ctx context.Context) ([]model.SkillCategory, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Categories, nil
}

func (s *Store) CreateSkillCategory(ctx context.Context, category model.SkillCategory) error {
	return s.update(ctx, func(doc *document) error {
		if doc.hasCategory(category.ID) {
			return fmt.Errorf("%w: category %q already exists", model.ErrConflict, category.ID)
		}
		doc.SkillCategories = append(doc.SkillCategories, categoryRecord{ID: category.ID, Title: category.Title})
		return nil
	})
}

func (s *Store) DeleteSkillCategory(ctx context.Context, id string) error {
	return s.update(ctx, func(doc *document) error {
		if !doc.hasCategory(id) {
			return model.ErrNotFound
		}
		for _, skill := range doc.Skills {
			if skill.CategoryID == id {
				return fmt.Errorf("%w: category %q still has skills", model.ErrConflict, id)
			}
		}
		doc.SkillCategories, _ = removeFirst(doc.SkillCategories, func(c categoryRecord) bool { return c.ID == id })
		return nil
	})
}

func (s *Store) CreateSkill(ctx context.Context, skill model.Skill) error {
	return s.update(ctx, func(doc *document) error {
		if !doc.hasCategory(skill.CategoryID) {
			return fmt.Errorf("%w: category %q", model.ErrNotFound, skill.CategoryID)
		}
		doc.Skills = append(doc.Skills, skill)
		return nil
	})
}

func (s *Store) DeleteSkill(ctx context.Context, id string) error {
	return s.update(ctx, func(doc *document) error {
		var ok bool
		doc.Skills, ok = removeFirst(doc.Skills, func(sk model.Skill) bool { return sk.ID == id })
		if !ok {
			return model.ErrNotFound
		}
		return nil
	})
}

func (s *Store) CreateProject(ctx context.Context, project model.Project) error {
	return s.update(ctx, func(doc *document) error {
		doc.Projects = append(doc.Projects, project)
		return nil
	})
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.update(ctx, func(doc *document) error {
		var ok bool
		doc.Projects, ok = removeFirst(doc.Projects, func(p model.Project) bool { return p.ID == id })
		if !ok {
			return model.ErrNotFound
		}
		return nil
	})
}

func (s *Store) CreateExperience(ctx context.Context, experience model.Experience) error {
	return s.update(ctx, func(doc *document) error {
		doc.Experience = append(doc.Experience, experience)
		return nil
	})
}

func (s *Store) UpdateExperience(ctx context.Context, id string, patch model.ExperiencePatch) (model.Experience, error) {
	if patch.Empty() {
		snap, err := s.Snapshot(ctx)
		if err != nil {
			return model.Experience{}, err
		}
		for _, e := range snap.Experience {
			if e.ID == id {
				return e, nil
			}
		}
		return model.Experience{}, model.ErrNotFound
	}

	var updated model.Experience
	err := s.update(ctx, func(doc *document) error {
		for i := range doc.Experience {
			if doc.Experience[i].ID == id {
				patch.Apply(&doc.Experience[i])
				updated = doc.Experience[i]
				return nil
			}
		}
		return model.ErrNotFound
	})
	if err != nil {
		return model.Experience{}, err
	}
	return updated, nil
}

func (s *Store) DeleteExperience(ctx context.Context, id string) error {
	return s.update(ctx, func(doc *document) error {
		var ok bool
		doc.Experience, ok = removeFirst(doc.Experience, func(e model.Experience) bool { return e.ID == id })
		if !ok {
			return model.ErrNotFound
		}
		return nil
	})
}

func (s *Store) CreateEducation(ctx context.Context, education model.Education) error {
	return s.update(ctx, func(doc *document) error {
		doc.Education = append(doc.Education, education)
		return nil
	})
}

func (s *Store) DeleteEducation(ctx context.Context, id string) error {
	return s.update(ctx, func(doc *document) error {
		var ok bool
		doc.Education, ok = removeFirst(doc.Education, func(e model.Education) bool { return e.ID == id })
		if !ok {
			return model.ErrNotFound
		}
		return nil
	})
}
