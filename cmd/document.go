package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/shohaib/portfolio-cms/internal/content"
	"github.com/shohaib/portfolio-cms/internal/model"
)

// Documents use the shape served by GET /api/cms/content, so an export can
// be imported again.
type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported document extension %q", filepath.Ext(path))
	}
}

func decodeDocument(raw []byte, f format) (model.Content, error) {
	var doc model.Content
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return model.Content{}, fmt.Errorf("failed to decode yaml document: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return model.Content{}, fmt.Errorf("failed to decode json document: %w", err)
		}
	}
	return doc, nil
}

func encodeDocument(doc model.Content, f format) ([]byte, error) {
	if f == formatYAML {
		return yaml.Marshal(doc)
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(raw, '\n'), nil
}

// toSnapshot flattens doc into store rows. Missing ids are generated;
// categories without an id take the slug of their title.
func toSnapshot(doc model.Content, newID func() string) (model.Snapshot, error) {
	if newID == nil {
		newID = uuid.NewString
	}
	idOr := func(id string) string {
		if id = strings.TrimSpace(id); id != "" {
			return id
		}
		return newID()
	}

	snap := model.Snapshot{
		Categories: []model.SkillCategory{},
		Skills:     []model.Skill{},
		Projects:   make([]model.Project, 0, len(doc.Projects)),
		Experience: make([]model.Experience, 0, len(doc.Experience)),
		Education:  make([]model.Education, 0, len(doc.Education)),
	}
	if doc.Hero != (model.Hero{}) {
		hero := doc.Hero
		snap.Hero = &hero
	}

	seen := make(map[string]bool, len(doc.SkillCategories))
	for _, c := range doc.SkillCategories {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			id = content.Slug(c.Title)
		}
		if id == "" {
			return model.Snapshot{}, fmt.Errorf("category %q has no usable id", c.Title)
		}
		if seen[id] {
			return model.Snapshot{}, fmt.Errorf("duplicate category %q", id)
		}
		seen[id] = true

		snap.Categories = append(snap.Categories, model.SkillCategory{ID: id, Title: c.Title})
		for _, item := range c.Items {
			snap.Skills = append(snap.Skills, model.Skill{ID: idOr(item.ID), CategoryID: id, Name: item.Name})
		}
	}
	for _, p := range doc.Projects {
		p.ID = idOr(p.ID)
		p.Tools = content.Normalize(p.Tools)
		snap.Projects = append(snap.Projects, p)
	}
	for _, e := range doc.Experience {
		e.ID = idOr(e.ID)
		e.Responsibilities = content.Normalize(e.Responsibilities)
		snap.Experience = append(snap.Experience, e)
	}
	for _, e := range doc.Education {
		e.ID = idOr(e.ID)
		snap.Education = append(snap.Education, e)
	}

	return snap, nil
}
