package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/devterm/internal/llm"
)

// ProjectDescriptionService expands a project's overview into a longer
// description.
type ProjectDescriptionService interface {
	Describe(ctx context.Context, input ProjectDescriptionInput) (*ProjectDescriptionOutput, error)
}

type projectDescriptionService struct {
	deps flowDeps
}

func NewProjectDescriptionService(client llm.Client, gate Gate) ProjectDescriptionService {
	return &projectDescriptionService{deps: flowDeps{client: client, gate: gate}}
}

func (s *projectDescriptionService) Describe(ctx context.Context, input ProjectDescriptionInput) (*ProjectDescriptionOutput, error) {
	if err := validateInput(projectDescriptionInputShape, input); err != nil {
		return nil, err
	}

	out, err := generate[ProjectDescriptionOutput](ctx, s.deps, CategoryProject, llm.GenerateRequest{
		Task:         llm.TaskProjectDescription,
		SystemPrompt: jsonOnlySystemPrompt,
		UserPrompt:   fmt.Sprintf(projectDescriptionPromptTemplate, input.ProjectName, input.Technologies, input.BriefOverview),
	}, projectDescriptionOutputShape)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
