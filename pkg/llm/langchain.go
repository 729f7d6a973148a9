package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"
)

// LangChainGateway implements wopr.Gateway through LangChain Go's
// Ollama provider.
type LangChainGateway struct {
	llm     llms.Model
	baseURL string
	model   string
}

func NewLangChainGateway(baseURL, model string, timeout time.Duration) (*LangChainGateway, error) {
	var opts []ollama.Option

	if baseURL != "" {
		opts = append(opts, ollama.WithServerURL(baseURL))
	}
	if model != "" {
		opts = append(opts, ollama.WithModel(model))
	}
	opts = append(opts, ollama.WithHTTPClient(&http.Client{Timeout: timeout}))

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangChain Ollama client: %w", err)
	}

	return &LangChainGateway{
		llm:     llm,
		baseURL: baseURL,
		model:   model,
	}, nil
}

func (g *LangChainGateway) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, userMessage),
	}

	resp, err := g.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("langchain generation failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}

	return resp.Choices[0].Content, nil
}
