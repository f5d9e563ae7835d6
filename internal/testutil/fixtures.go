package testutil

import (
	"github.com/alexanderramin/devterm/internal/portfolio"
)

// SnapshotOption customises a fixture snapshot.
type SnapshotOption func(*portfolio.Snapshot)

// WithProjects replaces the project list.
func WithProjects(projects ...portfolio.Project) SnapshotOption {
	return func(s *portfolio.Snapshot) {
		s.Projects = projects
	}
}

// WithAboutMe replaces the about-me text.
func WithAboutMe(text string) SnapshotOption {
	return func(s *portfolio.Snapshot) {
		s.AboutMe = text
	}
}

// NewTestSnapshot returns a small valid snapshot.
func NewTestSnapshot(opts ...SnapshotOption) *portfolio.Snapshot {
	s := &portfolio.Snapshot{
		Owner:    "Test Owner",
		Headline: "Platform Engineer",
		AboutMe:  "I build platforms.",
		Skills:   []string{"Go", "Kubernetes"},
		SkillCatalog: []portfolio.SkillCategory{
			{Name: "Languages", Skills: []portfolio.Skill{{Name: "Go", Level: "Advanced", Summary: "Services and CLIs."}}},
		},
		Projects: []portfolio.Project{
			{Name: "alpha", Title: "Project Alpha", Technologies: "Go, SQLite", Description: "A CLI tool.", Link: "https://example.com/alpha"},
			{Name: "beta", Title: "Project Beta", Technologies: "Kubernetes", Description: "A cluster operator."},
		},
		Experience: []portfolio.Experience{
			{Company: "Acme", Role: "Engineer", Period: "2020 - 2024", Description: "Built things."},
		},
		Education: []portfolio.Education{
			{Institution: "Test University", Degree: "B.Sc.", Period: "2016 - 2020"},
		},
		Contact: []portfolio.Contact{
			{Name: "Email", Value: "test@example.com", Link: "mailto:test@example.com"},
		},
		Resume: portfolio.Resume{Summary: "Engineer.", URL: "https://example.com/cv.pdf"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
