package llm

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// geminiClient implements Client using the Google GenAI SDK.
type geminiClient struct {
	cfg      Config
	observer Observer

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiClient creates a Client backed by the Gemini API. The SDK client
// is built on first use.
func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{cfg: cfg, observer: observer}
}

func (c *geminiClient) sdk(ctx context.Context) (*genai.Client, error) {
	c.once.Do(func() {
		c.client, c.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return c.client, c.initErr
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.cfg.APIKey == "" {
		return nil, &ConfigError{Setting: "DEVTERM_AI_API_KEY"}
	}
	client, err := c.sdk(ctx)
	if err != nil {
		return nil, providerError(ErrUnavailable, fmt.Errorf("creating genai client: %w", err))
	}

	temp, maxTok := c.cfg.params(req)
	genCfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(temp)),
		ResponseMIMEType: "application/json",
	}
	if maxTok > 0 {
		genCfg.MaxOutputTokens = int32(maxTok)
	}
	if req.SystemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	return generateWithRetry(ctx, c.cfg, c.observer, ProviderGemini, req.Task, func(ctx context.Context) (string, string, error) {
		result, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(req.UserPrompt), genCfg)
		if err != nil {
			return "", "", err
		}
		text := result.Text()
		if text == "" {
			return "", "", fmt.Errorf("gemini returned no text")
		}
		return text, result.ModelVersion, nil
	})
}

// Available reports whether credentials are present. No request is made.
func (c *geminiClient) Available(context.Context) bool {
	return c.cfg.APIKey != "" && c.cfg.Model != ""
}
