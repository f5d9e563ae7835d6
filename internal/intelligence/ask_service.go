package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/devterm/internal/llm"
)

// AskService answers free-form visitor questions about the portfolio.
type AskService interface {
	Answer(ctx context.Context, input AskInput) (*AskOutput, error)
}

type askService struct {
	deps flowDeps
}

// NewAskService creates an AskService backed by client and gate.
func NewAskService(client llm.Client, gate Gate) AskService {
	return &askService{deps: flowDeps{client: client, gate: gate}}
}

func (s *askService) Answer(ctx context.Context, input AskInput) (*AskOutput, error) {
	if err := validateInput(askInputShape, input); err != nil {
		return nil, err
	}

	portfolioJSON, err := json.MarshalIndent(input.Portfolio, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding portfolio context: %w", err)
	}

	out, err := generate[AskOutput](ctx, s.deps, CategoryAsk, llm.GenerateRequest{
		Task:         llm.TaskAsk,
		SystemPrompt: jsonOnlySystemPrompt,
		UserPrompt:   fmt.Sprintf(askPromptTemplate, strings.TrimSpace(input.Question), portfolioJSON),
	}, askOutputShape)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
