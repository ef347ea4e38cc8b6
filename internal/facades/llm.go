package facades

import (
	"context"
	"errors"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
)

// LLMFacade wraps a hosted chat-completion model behind a single bounded
// call. Every call carries an explicit timeout; callers treat any error as a
// signal to take their deterministic fallback path.
type LLMFacade struct {
	llm     *openai.LLM
	timeout time.Duration
}

// NewLLMFacade creates a facade for an OpenAI-compatible model.
func NewLLMFacade(apiKey, model string, timeout time.Duration) (*LLMFacade, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}

	return &LLMFacade{llm: llm, timeout: timeout}, nil
}

// Complete sends a system/user prompt pair and returns the raw completion text.
func (f *LLMFacade) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, system),
			llms.TextParts(schema.ChatMessageTypeHuman, user),
		},
		llms.WithMaxTokens(maxTokens),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		logger.Log.Errorw("LLM completion failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}

	return resp.Choices[0].Content, nil
}
