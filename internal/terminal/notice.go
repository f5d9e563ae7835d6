package terminal

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/devterm/internal/cooldown"
	"github.com/alexanderramin/devterm/internal/intelligence"
	"github.com/alexanderramin/devterm/internal/llm"
)

// NoticeKind classifies a failed AI command.
type NoticeKind string

const (
	NoticeCooldown   NoticeKind = "cooldown"
	NoticeConfig     NoticeKind = "config"
	NoticeProvider   NoticeKind = "provider"
	NoticeValidation NoticeKind = "validation"
	NoticeUnknown    NoticeKind = "unknown"
)

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notice is the visitor-facing description of a failure. It never carries
// raw error text.
type Notice struct {
	Kind        NoticeKind `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Severity    Severity   `json:"severity"`
	// RetryAfterSeconds is set for cooldown notices.
	RetryAfterSeconds int `json:"retryAfterSeconds,omitempty"`
}

const genericAIFailure = "Failed to get response from AI model. Please check the server console or your API key."

// Classify maps an AI flow error onto a Notice.
func Classify(err error) Notice {
	var cdErr *cooldown.Error
	var cfgErr *llm.ConfigError

	switch {
	case errors.As(err, &cdErr):
		return cooldownNotice(cdErr.RemainingSeconds)
	case errors.Is(err, cooldown.ErrActive):
		return cooldownNotice(0)
	case errors.As(err, &cfgErr):
		return Notice{
			Kind:        NoticeConfig,
			Title:       "AI configuration missing",
			Description: fmt.Sprintf("Missing %s. Add it to the server environment.", cfgErr.Setting),
			Severity:    SeverityError,
		}
	case errors.Is(err, llm.ErrMissingConfig):
		return Notice{
			Kind:        NoticeConfig,
			Title:       "AI configuration missing",
			Description: "The AI provider is not configured on the server.",
			Severity:    SeverityError,
		}
	case errors.Is(err, intelligence.ErrInvalidInput):
		return Notice{Kind: NoticeValidation, Title: "AI Error", Description: genericAIFailure, Severity: SeverityError}
	case errors.Is(err, llm.ErrProvider), errors.Is(err, llm.ErrInvalidOutput):
		return Notice{
			Kind:        NoticeProvider,
			Title:       "AI provider error",
			Description: "The AI provider returned an error. Please try again later.",
			Severity:    SeverityError,
		}
	default:
		return Notice{Kind: NoticeUnknown, Title: "AI Error", Description: genericAIFailure, Severity: SeverityError}
	}
}

func cooldownNotice(seconds int) Notice {
	duration := "a moment"
	if seconds > 0 {
		duration = fmt.Sprintf("%d seconds", seconds)
	}
	return Notice{
		Kind:              NoticeCooldown,
		Title:             "Cooldown active",
		Description:       fmt.Sprintf("Please wait %s before running this AI command again.", duration),
		Severity:          SeverityInfo,
		RetryAfterSeconds: seconds,
	}
}
