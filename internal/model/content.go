package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Hero is the singleton banner shown at the top of the portfolio.
type Hero struct {
	Name    string `json:"name" yaml:"name"`
	Title   string `json:"title" yaml:"title"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// SkillCategory groups skills under a title.
type SkillCategory struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Skill belongs to exactly one SkillCategory.
type Skill struct {
	ID         string `json:"id" yaml:"id"`
	CategoryID string `json:"categoryId" yaml:"categoryId"`
	Name       string `json:"name" yaml:"name"`
}

// Project is a portfolio project entry.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Link        string   `json:"link" yaml:"link"`
	Tools       []string `json:"tools" yaml:"tools"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// Experience is a work history entry.
type Experience struct {
	ID               string   `json:"id" yaml:"id"`
	Company          string   `json:"company" yaml:"company"`
	Designation      string   `json:"designation" yaml:"designation"`
	From             *Date    `json:"from,omitempty" yaml:"from,omitempty"`
	To               *Date    `json:"to,omitempty" yaml:"to,omitempty"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	Logo             string   `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// UnmarshalJSON treats an empty from or to as absent. Older documents stored
// the raw form value, where an empty to marks the current position.
func (e *Experience) UnmarshalJSON(b []byte) error {
	type plain Experience
	if err := json.Unmarshal(b, (*plain)(e)); err != nil {
		return err
	}
	e.dropZeroDates()
	return nil
}

func (e *Experience) UnmarshalYAML(unmarshal func(any) error) error {
	type plain Experience
	if err := unmarshal((*plain)(e)); err != nil {
		return err
	}
	e.dropZeroDates()
	return nil
}

func (e *Experience) dropZeroDates() {
	if e.From != nil && e.From.IsZero() {
		e.From = nil
	}
	if e.To != nil && e.To.IsZero() {
		e.To = nil
	}
}

// ExperiencePatch lists the fields of an Experience to overwrite.
// Nil fields are left untouched.
type ExperiencePatch struct {
	Company          *string
	Designation      *string
	From             **Date
	To               **Date
	Responsibilities *[]string
	Logo             *string
}

// Empty reports whether the patch changes nothing.
func (p ExperiencePatch) Empty() bool {
	return p.Company == nil && p.Designation == nil && p.From == nil &&
		p.To == nil && p.Responsibilities == nil && p.Logo == nil
}

// Apply merges the patch into e.
func (p ExperiencePatch) Apply(e *Experience) {
	if p.Company != nil {
		e.Company = *p.Company
	}
	if p.Designation != nil {
		e.Designation = *p.Designation
	}
	if p.From != nil {
		e.From = *p.From
	}
	if p.To != nil {
		e.To = *p.To
	}
	if p.Responsibilities != nil {
		e.Responsibilities = *p.Responsibilities
	}
	if p.Logo != nil {
		e.Logo = *p.Logo
	}
}

// Education is an education history entry.
type Education struct {
	ID          string `json:"id" yaml:"id"`
	Institute   string `json:"institute" yaml:"institute"`
	Degree      string `json:"degree" yaml:"degree"`
	Year        string `json:"year" yaml:"year"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Snapshot is a raw read of every collection at one point in time.
type Snapshot struct {
	Hero       *Hero
	Categories []SkillCategory
	Skills     []Skill
	Projects   []Project
	Experience []Experience
	Education  []Education
}

// SkillItem is a skill as listed inside its category.
type SkillItem struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CategoryView is a category with its skills attached.
type CategoryView struct {
	ID    string      `json:"id" yaml:"id"`
	Title string      `json:"title" yaml:"title"`
	Items []SkillItem `json:"items" yaml:"items"`
}

// Content is the public content document.
type Content struct {
	Hero            Hero           `json:"hero" yaml:"hero"`
	SkillCategories []CategoryView `json:"skillCategories" yaml:"skillCategories"`
	Projects        []Project      `json:"projects" yaml:"projects"`
	Experience      []Experience   `json:"experience" yaml:"experience"`
	Education       []Education    `json:"education" yaml:"education"`
}

const dateLayout = "2006-01-02"

// Date is a calendar date without time of day.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD or YYYY-MM.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{dateLayout, "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON reads "" and null as the zero Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
