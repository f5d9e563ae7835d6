package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/devterm/internal/llm"
	"github.com/alexanderramin/devterm/internal/portfolio"
	"github.com/alexanderramin/devterm/internal/schema"
)

// SkillsService produces an ordered list of skill names. Duplicates from the
// provider are passed through.
type SkillsService interface {
	List(ctx context.Context, input SkillsListInput) ([]string, error)
}

type skillsService struct {
	deps   flowDeps
	source portfolio.Source
}

func NewSkillsService(client llm.Client, gate Gate, source portfolio.Source) SkillsService {
	return &skillsService{deps: flowDeps{client: client, gate: gate}, source: source}
}

func (s *skillsService) List(ctx context.Context, input SkillsListInput) ([]string, error) {
	if err := validateInput(schema.Object(), input); err != nil {
		return nil, err
	}

	known := "(none)"
	if s.source != nil {
		snap, err := s.source.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading portfolio: %w", err)
		}
		if skills := snap.AllSkills(); len(skills) > 0 {
			known = strings.Join(skills, ", ")
		}
	}

	return generate[[]string](ctx, s.deps, CategorySkills, llm.GenerateRequest{
		Task:         llm.TaskSkills,
		SystemPrompt: jsonOnlySystemPrompt,
		UserPrompt:   fmt.Sprintf(skillsPromptTemplate, known),
	}, skillsOutputShape)
}
