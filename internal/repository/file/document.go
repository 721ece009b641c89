package file

import (
	"fmt"

	"github.com/shohaib/portfolio-cms/internal/model"
)

// document is the on-disk layout: one JSON object holding every collection.
type document struct {
	Hero            *model.Hero        `json:"hero,omitempty"`
	SkillCategories []categoryRecord   `json:"skillCategories"`
	Skills          []model.Skill      `json:"skills"`
	Projects        []model.Project    `json:"projects"`
	Experience      []model.Experience `json:"experience"`
	Education       []model.Education  `json:"education"`
}

// categoryRecord also accepts the older layout where a category carried its
// skill names inline as items.
type categoryRecord struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items,omitempty"`
}

// normalize lifts inline category items into skills and replaces nil
// collections with empty ones.
func (d *document) normalize() {
	for i := range d.SkillCategories {
		c := &d.SkillCategories[i]
		for j, name := range c.Items {
			d.Skills = append(d.Skills, model.Skill{
				ID:         fmt.Sprintf("%s-%d", c.ID, j),
				CategoryID: c.ID,
				Name:       name,
			})
		}
		c.Items = nil
	}
	if d.SkillCategories == nil {
		d.SkillCategories = []categoryRecord{}
	}
	if d.Skills == nil {
		d.Skills = []model.Skill{}
	}
	if d.Projects == nil {
		d.Projects = []model.Project{}
	}
	if d.Experience == nil {
		d.Experience = []model.Experience{}
	}
	if d.Education == nil {
		d.Education = []model.Education{}
	}
}

func (d *document) snapshot() model.Snapshot {
	snap := model.Snapshot{
		Categories: make([]model.SkillCategory, 0, len(d.SkillCategories)),
		Skills:     append([]model.Skill(nil), d.Skills...),
		Projects:   append([]model.Project(nil), d.Projects...),
		Experience: append([]model.Experience(nil), d.Experience...),
		Education:  append([]model.Education(nil), d.Education...),
	}
	if d.Hero != nil {
		hero := *d.Hero
		snap.Hero = &hero
	}
	for _, c := range d.SkillCategories {
		snap.Categories = append(snap.Categories, model.SkillCategory{ID: c.ID, Title: c.Title})
	}
	return snap
}

func (d *document) hasCategory(id string) bool {
	for _, c := range d.SkillCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// removeFirst deletes the first element matching and reports whether one did.
func removeFirst[T any](items []T, match func(T) bool) ([]T, bool) {
	for i, item := range items {
		if match(item) {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}
