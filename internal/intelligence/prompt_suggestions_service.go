package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/devterm/internal/llm"
	"github.com/alexanderramin/devterm/internal/portfolio"
)

// PromptSuggestionService proposes questions a visitor could ask.
type PromptSuggestionService interface {
	Suggest(ctx context.Context) (*PromptSuggestionsOutput, error)
}

type promptSuggestionService struct {
	deps   flowDeps
	source portfolio.Source
	clock  Clock
}

// NewPromptSuggestionService creates the service. A nil clock uses the
// wall clock for the randomization seed.
func NewPromptSuggestionService(client llm.Client, gate Gate, source portfolio.Source, clock Clock) PromptSuggestionService {
	if clock == nil {
		clock = systemClock{}
	}
	return &promptSuggestionService{deps: flowDeps{client: client, gate: gate}, source: source, clock: clock}
}

func (s *promptSuggestionService) Suggest(ctx context.Context) (*PromptSuggestionsOutput, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading portfolio: %w", err)
	}
	contextJSON, err := json.MarshalIndent(snap.PromptContext(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding portfolio context: %w", err)
	}
	seed := s.clock.Now().UTC().Format(time.RFC3339Nano)

	raw, err := generate[PromptSuggestionsOutput](ctx, s.deps, CategoryPromptSuggestions, llm.GenerateRequest{
		Task:         llm.TaskPromptSuggestions,
		SystemPrompt: promptSuggestionsSystemPrompt,
		UserPrompt:   fmt.Sprintf(promptSuggestionsPromptTemplate, seed, contextJSON),
	}, promptSuggestionsOutputShape)
	if err != nil {
		return nil, err
	}

	prompts := dedupeSuggestions(sanitizeSuggestions(raw.Prompts))
	if len(prompts) < MinSuggestions {
		return nil, fmt.Errorf("%w: %d usable of %d", ErrIncompleteSuggestions, len(prompts), len(raw.Prompts))
	}
	if len(prompts) > MaxSuggestions {
		prompts = prompts[:MaxSuggestions]
	}
	return &PromptSuggestionsOutput{Prompts: prompts}, nil
}

// sanitizeSuggestions cleans every entry and drops those whose question is
// empty afterwards. A blank label falls back to the question.
func sanitizeSuggestions(in []PromptSuggestion) []PromptSuggestion {
	out := make([]PromptSuggestion, 0, len(in))
	for _, p := range in {
		question := sanitizeText(p.Question, MaxQuestionLength)
		if question == "" {
			continue
		}
		label := p.Label
		if strings.TrimSpace(label) == "" {
			label = question
		}
		label = sanitizeText(label, MaxLabelLength)
		if label == "" {
			label = question
		}
		out = append(out, PromptSuggestion{Label: label, Question: question})
	}
	return out
}

// dedupeSuggestions keeps the first entry for each case-insensitive
// label::question key.
func dedupeSuggestions(in []PromptSuggestion) []PromptSuggestion {
	seen := make(map[string]bool, len(in))
	out := make([]PromptSuggestion, 0, len(in))
	for _, p := range in {
		key := strings.ToLower(p.Label) + "::" + strings.ToLower(p.Question)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

var quoteReplacer = strings.NewReplacer(`"`, "'", "`", "'")

// sanitizeText replaces quote characters, collapses whitespace and
// truncates to maxRunes.
func sanitizeText(s string, maxRunes int) string {
	s = quoteReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > maxRunes {
		s = strings.TrimSpace(string(runes[:maxRunes]))
	}
	return s
}
