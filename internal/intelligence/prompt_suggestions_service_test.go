package intelligence

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/devterm/internal/llm"
	"github.com/alexanderramin/devterm/internal/portfolio"
	"github.com/alexanderramin/devterm/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2026, 4, 2, 10, 15, 0, 0, time.UTC)

func suggestionsJSON(prompts ...PromptSuggestion) string {
	data, _ := json.Marshal(PromptSuggestionsOutput{Prompts: prompts})
	return string(data)
}

func newSuggestionService(client llm.Client) PromptSuggestionService {
	return NewPromptSuggestionService(client, &recordingGate{}, portfolio.NewStatic(testutil.NewTestSnapshot()), fixedClock{testEpoch})
}

func TestSuggest_DedupesDropsEmptyAndPreservesOrder(t *testing.T) {
	client := &mockLLMClient{response: suggestionsJSON(
		PromptSuggestion{Label: "Top Project", Question: "Which project are you proudest of?"},
		PromptSuggestion{Label: "Team Size", Question: "How large were the teams you worked with?"},
		PromptSuggestion{Label: "TOP PROJECT", Question: "which project are you PROUDEST of?"},
		PromptSuggestion{Label: "Blank", Question: "   \n\t  "},
		PromptSuggestion{Label: "Automation", Question: "What have you automated recently?"},
	)}

	out, err := newSuggestionService(client).Suggest(context.Background())

	require.NoError(t, err)
	want := []PromptSuggestion{
		{Label: "Top Project", Question: "Which project are you proudest of?"},
		{Label: "Team Size", Question: "How large were the teams you worked with?"},
		{Label: "Automation", Question: "What have you automated recently?"},
	}
	if diff := cmp.Diff(want, out.Prompts); diff != "" {
		t.Errorf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestSuggest_CapsAtFour(t *testing.T) {
	client := &mockLLMClient{response: suggestionsJSON(
		PromptSuggestion{Label: "A", Question: "Question one?"},
		PromptSuggestion{Label: "B", Question: "Question two?"},
		PromptSuggestion{Label: "C", Question: "Question three?"},
		PromptSuggestion{Label: "D", Question: "Question four?"},
		PromptSuggestion{Label: "E", Question: "Question five?"},
		PromptSuggestion{Label: "F", Question: "Question six?"},
	)}

	out, err := newSuggestionService(client).Suggest(context.Background())

	require.NoError(t, err)
	require.Len(t, out.Prompts, 4)
	assert.Equal(t, "D", out.Prompts[3].Label)
}

func TestSuggest_IncompleteAfterSanitizing(t *testing.T) {
	client := &mockLLMClient{response: suggestionsJSON(
		PromptSuggestion{Label: "Same", Question: "Same question?"},
		PromptSuggestion{Label: "same", Question: "SAME QUESTION?"},
		PromptSuggestion{Label: "Empty", Question: "  \n "},
		PromptSuggestion{Label: "Other", Question: "Another question?"},
	)}

	_, err := newSuggestionService(client).Suggest(context.Background())

	require.ErrorIs(t, err, ErrIncompleteSuggestions)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestSuggest_OutputShapeEnforced(t *testing.T) {
	cases := map[string]string{
		"too few":       suggestionsJSON(PromptSuggestion{Label: "A", Question: "Q?"}),
		"too many":      suggestionsJSON(make([]PromptSuggestion, 7)...),
		"missing key":   `{"suggestions":[]}`,
		"wrong element": `{"prompts":["a","b","c"]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newSuggestionService(&mockLLMClient{response: raw}).Suggest(context.Background())
			require.ErrorIs(t, err, llm.ErrInvalidOutput)
			assert.NotErrorIs(t, err, ErrIncompleteSuggestions)
		})
	}
}

func TestSuggest_PromptCarriesSeedAndContext(t *testing.T) {
	client := &mockLLMClient{response: suggestionsJSON(
		PromptSuggestion{Label: "A", Question: "Q1?"},
		PromptSuggestion{Label: "B", Question: "Q2?"},
		PromptSuggestion{Label: "C", Question: "Q3?"},
	)}
	gate := &recordingGate{}
	svc := NewPromptSuggestionService(client, gate, portfolio.NewStatic(testutil.NewTestSnapshot()), fixedClock{testEpoch})

	_, err := svc.Suggest(context.Background())

	require.NoError(t, err)
	req := client.lastRequest()
	assert.Equal(t, llm.TaskPromptSuggestions, req.Task)
	assert.Contains(t, req.UserPrompt, "2026-04-02T10:15:00Z")
	assert.Contains(t, req.UserPrompt, "Project Alpha")
	assert.Equal(t, []string{CategoryPromptSuggestions}, gate.categories)
}

func TestSanitizeSuggestions(t *testing.T) {
	longQuestion := strings.Repeat("word ", 40)
	in := []PromptSuggestion{
		{Label: `  "Quoted"   Label `, Question: "What  is\n`this`?"},
		{Label: "", Question: "Label falls back to this question text, which is long"},
		{Label: strings.Repeat("L", 50), Question: longQuestion},
		{Label: "Dropped", Question: " \t "},
	}

	out := sanitizeSuggestions(in)

	require.Len(t, out, 3)
	assert.Equal(t, "'Quoted' Label", out[0].Label)
	assert.Equal(t, "What is 'this'?", out[0].Question)

	assert.Equal(t, "Label falls back to this question te", out[1].Label)
	assert.Len(t, []rune(out[1].Label), MaxLabelLength)

	assert.Len(t, []rune(out[2].Label), MaxLabelLength)
	assert.LessOrEqual(t, len([]rune(out[2].Question)), MaxQuestionLength)
	assert.False(t, strings.HasSuffix(out[2].Question, " "))
}

func TestSanitizeText_TruncatesByRunes(t *testing.T) {
	assert.Equal(t, "ääää", sanitizeText("äääääää", 4))
}

func TestDedupeSuggestions_KeyIncludesBothFields(t *testing.T) {
	in := []PromptSuggestion{
		{Label: "A", Question: "Q"},
		{Label: "A", Question: "Other"},
		{Label: "a", Question: "q"},
	}
	out := dedupeSuggestions(in)
	assert.Equal(t, in[:2], out)
}
