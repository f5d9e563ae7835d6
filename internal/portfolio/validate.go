package portfolio

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks a snapshot before it is stored or served.
// Returns a slice of all validation errors found.
func Validate(s *Snapshot) []error {
	if s == nil {
		return []error{fmt.Errorf("portfolio is empty")}
	}
	var errs []error

	if strings.TrimSpace(s.AboutMe) == "" {
		errs = append(errs, fmt.Errorf("aboutMe is required"))
	}
	errs = append(errs, validateProjects(s.Projects)...)
	errs = append(errs, validateSkillCatalog(s.SkillCatalog)...)

	for i, e := range s.Experience {
		if e.Company == "" || e.Role == "" {
			errs = append(errs, fmt.Errorf("experience[%d]: company and role are required", i))
		}
	}
	for i, e := range s.Education {
		if e.Institution == "" || e.Degree == "" {
			errs = append(errs, fmt.Errorf("education[%d]: institution and degree are required", i))
		}
	}
	for i, c := range s.Contact {
		if c.Name == "" || c.Value == "" {
			errs = append(errs, fmt.Errorf("contact[%d]: name and value are required", i))
		}
		if c.Link != "" && !validLink(c.Link) {
			errs = append(errs, fmt.Errorf("contact[%d].link: invalid URL %q", i, c.Link))
		}
	}
	if s.Resume.URL != "" && !validLink(s.Resume.URL) {
		errs = append(errs, fmt.Errorf("resume.url: invalid URL %q", s.Resume.URL))
	}

	return errs
}

func validateProjects(projects []Project) []error {
	var errs []error
	seen := make(map[string]bool, len(projects))

	for i, p := range projects {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("projects[%d].name is required", i))
		} else {
			if strings.ContainsAny(p.Name, " \t") {
				errs = append(errs, fmt.Errorf("projects[%d].name %q must be a single word", i, p.Name))
			}
			key := strings.ToLower(p.Name)
			if seen[key] {
				errs = append(errs, fmt.Errorf("projects[%d].name %q is duplicated", i, p.Name))
			}
			seen[key] = true
		}
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d].title is required", i))
		}
		if p.Technologies == "" {
			errs = append(errs, fmt.Errorf("projects[%d].technologies is required", i))
		}
		if p.Description == "" {
			errs = append(errs, fmt.Errorf("projects[%d].description is required", i))
		}
		if p.Link != "" && !validLink(p.Link) {
			errs = append(errs, fmt.Errorf("projects[%d].link: invalid URL %q", i, p.Link))
		}
	}
	return errs
}

func validateSkillCatalog(cats []SkillCategory) []error {
	var errs []error
	for i, cat := range cats {
		if cat.Name == "" {
			errs = append(errs, fmt.Errorf("skillCatalog[%d].name is required", i))
		}
		for j, sk := range cat.Skills {
			if sk.Name == "" {
				errs = append(errs, fmt.Errorf("skillCatalog[%d].skills[%d].name is required", i, j))
			}
		}
	}
	return errs
}

func validLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != "" || u.Path != ""
	default:
		return false
	}
}
