package intelligence

import (
	"github.com/alexanderramin/devterm/internal/llm"
	"github.com/alexanderramin/devterm/internal/portfolio"
)

// Flows bundles the AI-backed services used by the terminal.
type Flows struct {
	Ask                AskService
	ProjectDescription ProjectDescriptionService
	Skills             SkillsService
	PromptSuggestions  PromptSuggestionService
}

// NewFlows wires every flow to the same client, gate and content source.
func NewFlows(client llm.Client, gate Gate, source portfolio.Source, clock Clock) *Flows {
	return &Flows{
		Ask:                NewAskService(client, gate),
		ProjectDescription: NewProjectDescriptionService(client, gate),
		Skills:             NewSkillsService(client, gate, source),
		PromptSuggestions:  NewPromptSuggestionService(client, gate, source, clock),
	}
}
