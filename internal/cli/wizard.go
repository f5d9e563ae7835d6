package cli

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/devterm/internal/cli/formatter"
	"github.com/alexanderramin/devterm/internal/portfolio"
)

// devtermHuhTheme returns a huh theme using the Gruvbox palette.
func devtermHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// initAnswers are the fields collected by `devterm init`.
type initAnswers struct {
	Owner    string
	Headline string
	AboutMe  string
	Email    string
	GitHub   string
	Skills   string // comma separated
}

// initForm builds the portfolio wizard. Prefilled answers become defaults.
func initForm(a *initAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Placeholder("Dev User").
				Value(&a.Owner).
				Validate(requireText("name")),
			huh.NewInput().
				Title("Headline").
				Placeholder("Dev/DevOps Engineer").
				Value(&a.Headline).
				Validate(requireText("headline")),
			huh.NewText().
				Title("About me").
				Placeholder("A few sentences for the aboutme command").
				Value(&a.AboutMe),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&a.Email).
				Validate(validateOptionalEmail),
			huh.NewInput().
				Title("GitHub username (optional)").
				Value(&a.GitHub),
			huh.NewInput().
				Title("Skills (comma separated)").
				Placeholder("Go, Kubernetes, Terraform").
				Value(&a.Skills),
		),
	).WithTheme(devtermHuhTheme()).WithShowHelp(false)
}

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func validateOptionalEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return errors.New("not a valid email address")
	}
	return nil
}

// starterSnapshot turns wizard answers into a portfolio with one placeholder
// project the owner is expected to edit.
func starterSnapshot(a initAnswers) *portfolio.Snapshot {
	owner := strings.TrimSpace(a.Owner)
	headline := strings.TrimSpace(a.Headline)
	about := strings.TrimSpace(a.AboutMe)
	if about == "" {
		about = "Hi, I'm " + owner + ", a " + headline + "."
	}

	snap := &portfolio.Snapshot{
		Owner:    owner,
		Headline: headline,
		AboutMe:  about,
		Skills:   splitSkills(a.Skills),
		Projects: []portfolio.Project{{
			Name:         "first-project",
			Title:        "My First Project",
			Technologies: "Go",
			Description:  "Describe what you built, why, and what it changed.",
		}},
		Resume: portfolio.Resume{
			Summary: headline,
		},
	}

	if email := strings.TrimSpace(a.Email); email != "" {
		snap.Contact = append(snap.Contact, portfolio.Contact{Name: "Email", Value: email, Link: "mailto:" + email})
	}
	if gh := strings.Trim(strings.TrimSpace(a.GitHub), "@"); gh != "" {
		snap.Contact = append(snap.Contact, portfolio.Contact{Name: "GitHub", Value: gh, Link: "https://github.com/" + gh})
	}
	return snap
}

func splitSkills(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
