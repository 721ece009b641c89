package service

import (
	"context"

	"github.com/shohaib/portfolio-cms/internal/content"
	"github.com/shohaib/portfolio-cms/internal/model"
)

// BuildContent assembles the public document from a snapshot.
//
// Skills are grouped under their category in category order and then in
// insertion order; skills whose category is gone are dropped. When checker
// is non-nil, image and logo references that no longer resolve are cleared.
// Every collection in the result is non-nil.
func BuildContent(ctx context.Context, snapshot model.Snapshot, checker model.ReferenceChecker) model.Content {
	result := model.Content{
		SkillCategories: make([]model.CategoryView, 0, len(snapshot.Categories)),
		Projects:        make([]model.Project, 0, len(snapshot.Projects)),
		Experience:      make([]model.Experience, 0, len(snapshot.Experience)),
		Education:       make([]model.Education, 0, len(snapshot.Education)),
	}

	if snapshot.Hero != nil {
		result.Hero = *snapshot.Hero
	}

	index := make(map[string]int, len(snapshot.Categories))
	for _, c := range snapshot.Categories {
		index[c.ID] = len(result.SkillCategories)
		result.SkillCategories = append(result.SkillCategories, model.CategoryView{
			ID:    c.ID,
			Title: c.Title,
			Items: []model.SkillItem{},
		})
	}
	for _, s := range snapshot.Skills {
		i, ok := index[s.CategoryID]
		if !ok {
			continue
		}
		result.SkillCategories[i].Items = append(result.SkillCategories[i].Items, model.SkillItem{
			ID:   s.ID,
			Name: s.Name,
		})
	}

	for _, p := range snapshot.Projects {
		p.Tools = content.Normalize(p.Tools)
		p.Image = verifiedReference(ctx, checker, p.Image)
		result.Projects = append(result.Projects, p)
	}

	for _, e := range snapshot.Experience {
		e.Responsibilities = content.Normalize(e.Responsibilities)
		e.Logo = verifiedReference(ctx, checker, e.Logo)
		result.Experience = append(result.Experience, e)
	}

	for _, e := range snapshot.Education {
		e.Image = verifiedReference(ctx, checker, e.Image)
		result.Education = append(result.Education, e)
	}

	return result
}

func verifiedReference(ctx context.Context, checker model.ReferenceChecker, reference string) string {
	if reference == "" || checker == nil {
		return reference
	}
	if !checker.ReferenceExists(ctx, reference) {
		return ""
	}
	return reference
}
