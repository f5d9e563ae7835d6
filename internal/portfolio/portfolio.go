// Package portfolio holds the static content rendered by the terminal and
// used as grounding context for generated answers.
package portfolio

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by a Source that has no content to offer.
var ErrNotFound = errors.New("portfolio not found")

// Snapshot is the complete, read-only portfolio content.
type Snapshot struct {
	Owner        string          `yaml:"owner" json:"owner"`
	Headline     string          `yaml:"headline" json:"headline"`
	AboutMe      string          `yaml:"aboutMe" json:"aboutMe"`
	Skills       []string        `yaml:"skills" json:"skills"`
	SkillCatalog []SkillCategory `yaml:"skillCatalog" json:"skillCatalog"`
	Projects     []Project       `yaml:"projects" json:"projects"`
	Experience   []Experience    `yaml:"experience" json:"experience"`
	Education    []Education     `yaml:"education" json:"education"`
	Contact      []Contact       `yaml:"contact" json:"contact"`
	Resume       Resume          `yaml:"resume" json:"resume"`
}

// SkillCategory groups related skills.
type SkillCategory struct {
	Name   string  `yaml:"name" json:"name"`
	Skills []Skill `yaml:"skills" json:"skills"`
}

// Skill is one catalogue entry with a proficiency level.
type Skill struct {
	Name    string `yaml:"name" json:"name"`
	Level   string `yaml:"level" json:"level"`
	Summary string `yaml:"summary" json:"summary"`
}

// Project is addressed by Name in the `project` command.
type Project struct {
	Name         string `yaml:"name" json:"name"`
	Title        string `yaml:"title" json:"title"`
	Technologies string `yaml:"technologies" json:"technologies"`
	Description  string `yaml:"description" json:"description"`
	Link         string `yaml:"link,omitempty" json:"link,omitempty"`
}

type Experience struct {
	Company     string `yaml:"company" json:"company"`
	Role        string `yaml:"role" json:"role"`
	Period      string `yaml:"period" json:"period"`
	Description string `yaml:"description" json:"description"`
}

type Education struct {
	Institution string `yaml:"institution" json:"institution"`
	Degree      string `yaml:"degree" json:"degree"`
	Period      string `yaml:"period" json:"period"`
	Details     string `yaml:"details,omitempty" json:"details,omitempty"`
}

type Contact struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
	Link  string `yaml:"link" json:"link"`
}

type Resume struct {
	Summary string `yaml:"summary" json:"summary"`
	URL     string `yaml:"url" json:"url"`
}

// Source supplies the current snapshot.
type Source interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Static serves one snapshot held in memory.
type Static struct {
	snap *Snapshot
}

// NewStatic wraps snap. Each call to Snapshot returns a copy.
func NewStatic(snap *Snapshot) *Static {
	return &Static{snap: snap}
}

func (s *Static) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s.snap == nil {
		return nil, ErrNotFound
	}
	return s.snap.Clone(), nil
}

// PromptContext is the subset of a snapshot sent to the model as grounding.
type PromptContext struct {
	AboutMe    string       `json:"aboutMe"`
	Skills     []string     `json:"skills"`
	Projects   []Project    `json:"projects"`
	Experience []Experience `json:"experience"`
	Contact    []Contact    `json:"contact"`
}

// PromptContext extracts the grounding fields. Lists are never nil so they
// encode as [] rather than null.
func (s *Snapshot) PromptContext() PromptContext {
	c := s.Clone()
	pc := PromptContext{
		AboutMe:    c.AboutMe,
		Skills:     c.AllSkills(),
		Projects:   c.Projects,
		Experience: c.Experience,
		Contact:    c.Contact,
	}
	if pc.Projects == nil {
		pc.Projects = []Project{}
	}
	if pc.Experience == nil {
		pc.Experience = []Experience{}
	}
	if pc.Contact == nil {
		pc.Contact = []Contact{}
	}
	return pc
}

// AllSkills returns the flat skill list followed by catalogue entries not
// already present, compared case-insensitively.
func (s *Snapshot) AllSkills() []string {
	seen := make(map[string]bool, len(s.Skills))
	out := make([]string, 0, len(s.Skills))
	add := func(name string) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, name)
	}
	for _, sk := range s.Skills {
		add(sk)
	}
	for _, cat := range s.SkillCatalog {
		for _, sk := range cat.Skills {
			add(sk.Name)
		}
	}
	return out
}

// FindProject matches name case-insensitively against project names.
func (s *Snapshot) FindProject(name string) (Project, bool) {
	name = strings.TrimSpace(name)
	for _, p := range s.Projects {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Project{}, false
}

// FindSkill looks up a catalogue skill by name, ignoring case and
// collapsing inner whitespace.
func (s *Snapshot) FindSkill(name string) (Skill, string, bool) {
	want := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	for _, cat := range s.SkillCatalog {
		for _, sk := range cat.Skills {
			if strings.Join(strings.Fields(strings.ToLower(sk.Name)), " ") == want {
				return sk, cat.Name, true
			}
		}
	}
	return Skill{}, "", false
}

// Clone returns a deep copy.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	c := *s
	c.Skills = append([]string(nil), s.Skills...)
	c.Projects = append([]Project(nil), s.Projects...)
	c.Experience = append([]Experience(nil), s.Experience...)
	c.Education = append([]Education(nil), s.Education...)
	c.Contact = append([]Contact(nil), s.Contact...)
	c.SkillCatalog = nil
	for _, cat := range s.SkillCatalog {
		c.SkillCatalog = append(c.SkillCatalog, SkillCategory{Name: cat.Name, Skills: append([]Skill(nil), cat.Skills...)})
	}
	return &c
}
