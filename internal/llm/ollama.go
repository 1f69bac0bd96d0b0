package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

const (
	// OllamaDefaultBaseURL is the default API base URL for Ollama
	OllamaDefaultBaseURL = "http://localhost:11434/v1"
)

// OllamaProvider implements Provider for local Ollama
// Ollama uses OpenAI-compatible API
type OllamaProvider struct {
	opts Options
}

// NewOllamaProvider creates a new Ollama provider
func NewOllamaProvider(opts Options) *OllamaProvider {
	if opts.BaseURL == "" {
		opts.BaseURL = OllamaDefaultBaseURL
	}
	// Ollama doesn't require API key, set a placeholder
	if opts.APIKey == "" {
		opts.APIKey = "ollama"
	}
	return &OllamaProvider{opts: opts}
}

// Name returns the provider name
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// CreateChatModel creates an Eino ChatModel for Ollama
func (p *OllamaProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	cfg := &openai.ChatModelConfig{
		APIKey:  p.opts.APIKey,
		Model:   p.opts.Model,
		BaseURL: p.opts.BaseURL,
	}

	return openai.NewChatModel(ctx, cfg)
}
