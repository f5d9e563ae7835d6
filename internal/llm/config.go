package llm

import (
	"os"
	"strconv"
	"strings"
)

// Provider selects the generative backend implementation.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
)

// TaskType identifies the kind of generation being performed.
type TaskType string

const (
	TaskAsk                TaskType = "ask"
	TaskProjectDescription TaskType = "project_description"
	TaskSkills             TaskType = "skills"
	TaskPromptSuggestions  TaskType = "prompt_suggestions"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generative text client.
type Config struct {
	Provider   Provider
	LogCalls   bool
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

const (
	defaultOllamaModel = "llama3.2"
	defaultGeminiModel = "gemini-2.5-flash"
)

// DefaultConfig returns a Config targeting a local Ollama instance.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderOllama,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      defaultOllamaModel,
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAsk:                {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 15000},
			TaskProjectDescription: {Temperature: 0.5, MaxTokens: 1024, TimeoutMs: 15000},
			TaskSkills:             {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 10000},
			TaskPromptSuggestions:  {Temperature: 0.9, MaxTokens: 768, TimeoutMs: 10000},
		},
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DEVTERM_AI_PROVIDER"); v != "" {
		switch Provider(strings.ToLower(v)) {
		case ProviderOllama:
			cfg.Provider = ProviderOllama
		case ProviderGemini:
			cfg.Provider = ProviderGemini
			cfg.Model = defaultGeminiModel
			cfg.Endpoint = ""
		}
	}
	if v := os.Getenv("DEVTERM_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DEVTERM_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DEVTERM_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.APIKey = os.Getenv("DEVTERM_AI_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if v := os.Getenv("DEVTERM_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DEVTERM_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAsk, "DEVTERM_AI_ASK_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskProjectDescription, "DEVTERM_AI_PROJECT_DESCRIPTION_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSkills, "DEVTERM_AI_SKILLS_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPromptSuggestions, "DEVTERM_AI_PROMPT_SUGGESTIONS_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// Validate reports the first required setting that is missing for the
// selected provider as a *ConfigError.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.APIKey == "" {
			return &ConfigError{Setting: "DEVTERM_AI_API_KEY"}
		}
	default:
		if c.Endpoint == "" {
			return &ConfigError{Setting: "DEVTERM_AI_ENDPOINT"}
		}
	}
	if c.Model == "" {
		return &ConfigError{Setting: "DEVTERM_AI_MODEL"}
	}
	return nil
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
