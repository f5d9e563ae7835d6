package intelligence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/devterm/internal/llm"
	"github.com/alexanderramin/devterm/internal/portfolio"
)

// Cooldown categories, one per AI-backed command.
const (
	CategoryAsk               = "ask"
	CategoryProject           = "project"
	CategorySkills            = "skills"
	CategoryPromptSuggestions = "prompt-suggestions"
)

// Categories lists every cooldown category in use.
var Categories = []string{CategoryAsk, CategoryProject, CategorySkills, CategoryPromptSuggestions}

// ErrIncompleteSuggestions means fewer than MinSuggestions usable prompts
// survived sanitizing. It also matches llm.ErrInvalidOutput.
var ErrIncompleteSuggestions = fmt.Errorf("%w: prompt suggestions were incomplete", llm.ErrInvalidOutput)

// ErrInvalidInput wraps every input validation failure.
var ErrInvalidInput = errors.New("invalid flow input")

// Gate admits or rejects an AI call for a category.
type Gate interface {
	Enforce(ctx context.Context, category string) error
}

// Clock supplies the prompt randomization seed.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// AskInput is a visitor question plus the grounding data.
type AskInput struct {
	Question  string                  `json:"question"`
	Portfolio portfolio.PromptContext `json:"portfolio"`
}

type AskOutput struct {
	Answer string `json:"answer"`
}

// ProjectDescriptionInput describes one project to expand on.
type ProjectDescriptionInput struct {
	ProjectName   string `json:"projectName"`
	Technologies  string `json:"technologies"`
	BriefOverview string `json:"briefOverview"`
}

type ProjectDescriptionOutput struct {
	ProjectDescription string `json:"projectDescription"`
}

// SkillsListInput is intentionally empty; skills are grounded in the
// current snapshot.
type SkillsListInput struct{}

// PromptSuggestion is a ready-to-ask question with a short button label.
type PromptSuggestion struct {
	Label    string `json:"label"`
	Question string `json:"question"`
}

type PromptSuggestionsOutput struct {
	Prompts []PromptSuggestion `json:"prompts"`
}

// Prompt suggestion limits, measured in runes after whitespace cleanup.
const (
	MaxLabelLength    = 36
	MaxQuestionLength = 140
	MinSuggestions    = 3
	MaxSuggestions    = 4
)
