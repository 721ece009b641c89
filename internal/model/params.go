package model

// CreateSkillParams holds the input for adding a skill. CategoryRef is a
// category id or title.
type CreateSkillParams struct {
	CategoryRef string
	Name        string
}

// CreateProjectParams holds the input for adding a project.
type CreateProjectParams struct {
	Title       string
	Description string
	Link        string
	Tools       []string
	Image       *File
}

// CreateExperienceParams holds the input for adding an experience entry.
type CreateExperienceParams struct {
	Company          string
	Designation      string
	From             *Date
	To               *Date
	Responsibilities []string
	Logo             *File
}

// UpdateExperienceParams holds a partial experience update. A non-nil Logo
// replaces the stored logo.
type UpdateExperienceParams struct {
	Patch ExperiencePatch
	Logo  *File
}

// CreateEducationParams holds the input for adding an education entry.
type CreateEducationParams struct {
	Institute   string
	Degree      string
	Year        string
	Description string
	Image       *File
}
